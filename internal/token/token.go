package token

// Token is the unit the scanner produces and the parser consumes one at
// a time under the single-lookahead contract.
//
// Payload fields are kind-specific; only the ones matching Kind are
// meaningful — a single concrete Token struct with a Kind-driven
// interpretation rather than a Go union.
type Token struct {
	Pos     Position
	End     Position
	Literal string // raw source slice for the token, [Pos.Offset:End.Offset)

	Kind Kind

	// HasLineTerminator is true iff at least one LineTerminator code
	// point lies between the previous token's end and this token's
	// start; drives ASI and restricted productions.
	HasLineTerminator bool

	// Identifier / Keyword payload.
	Name              string // decoded name (no escapes) for Identifier and Keyword
	HasAllocatedName  bool   // true if Name required escape decoding
	KeywordKind       KeywordKind
	SecondaryKeyword  KeywordKind // what this token becomes under strict mode
	ContainsEscape    bool        // true if the identifier/keyword spelling contained \u escapes

	// Punctuator payload.
	Punct PunctKind

	// NumericLiteral payload.
	NumericRaw        string // deferred raw span; delayed strtod
	NumericValue      float64
	NumericValueReady bool
	IsBigInt          bool
	StartsWithZero    bool // legacy-octal candidate
	HasNumberSeparator bool

	// StringLiteral payload.
	StringRaw       string
	StringCooked    string
	StringDecoded   bool
	StringHasOctal  bool // legacy octal escape present (sloppy mode only)

	// Template payload (see token.TemplatePart for the cooked/raw pair).
	Template *TemplatePart

	// RegularExpression payload.
	RegexBody  string
	RegexFlags string

	// BooleanLiteral payload.
	BoolValue bool
}

// TemplatePart carries one segment of a template literal: its cooked and
// raw text, head/tail flags, and a deferred syntax error for escape
// sequences that are invalid in an untagged template but legal as the
// raw half of a tagged one.
type TemplatePart struct {
	Cooked        string
	Raw           string
	CookedValid   bool // false when Cooked decoding hit an error
	Head          bool
	Tail          bool
	DeferredError string // non-empty => error to raise if this template is untagged
}

// IsKeyword reports whether the token is exactly the given keyword.
func (t Token) IsKeyword(k KeywordKind) bool {
	return t.Kind == Keyword && t.KeywordKind == k
}

// IsPunct reports whether the token is exactly the given punctuator.
func (t Token) IsPunct(p PunctKind) bool {
	return t.Kind == Punctuator && t.Punct == p
}

// String renders the token for debugging/snapshot output.
func (t Token) String() string {
	switch t.Kind {
	case Identifier:
		return "Identifier(" + t.Name + ")"
	case Keyword:
		return "Keyword(" + t.KeywordKind.String() + ")"
	case Punctuator:
		return "Punct(" + t.Punct.String() + ")"
	case NumericLiteral:
		return "Numeric(" + t.NumericRaw + ")"
	case StringLiteral:
		return "String(" + t.StringRaw + ")"
	case Template:
		return "Template"
	case RegularExpression:
		return "Regex(/" + t.RegexBody + "/" + t.RegexFlags + ")"
	case BooleanLiteral:
		return "Boolean"
	case NullLiteral:
		return "null"
	case EOF:
		return "EOF"
	default:
		return "Invalid(" + t.Literal + ")"
	}
}
