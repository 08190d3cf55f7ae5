package token

// Kind is the token's top-level discriminator. It is a closed set;
// every Token carries exactly one Kind plus a kind-specific payload
// (see Token below).
type Kind uint8

const (
	EOF Kind = iota
	Identifier
	BooleanLiteral
	Keyword
	NullLiteral
	NumericLiteral
	Punctuator
	StringLiteral
	RegularExpression
	Template
	Invalid
)

var kindNames = [...]string{
	EOF:                "EOF",
	Identifier:         "Identifier",
	BooleanLiteral:     "BooleanLiteral",
	Keyword:            "Keyword",
	NullLiteral:        "NullLiteral",
	NumericLiteral:     "NumericLiteral",
	Punctuator:         "Punctuator",
	StringLiteral:      "StringLiteral",
	RegularExpression:  "RegularExpression",
	Template:           "Template",
	Invalid:            "Invalid",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// KeywordKind enumerates every ECMAScript keyword and contextual
// keyword the scanner recognizes. Contextual
// keywords (let, yield, async, await, of, get, set, static) are also
// valid Identifier spellings outside their triggering context; the
// parser decides from the KeywordKind and the surrounding grammar; it
// does not read Token.SecondaryKeyword.
type KeywordKind uint8

const (
	KwNone KeywordKind = iota
	KwBreak
	KwCase
	KwCatch
	KwClass
	KwConst
	KwContinue
	KwDebugger
	KwDefault
	KwDelete
	KwDo
	KwElse
	KwExport
	KwExtends
	KwFinally
	KwFor
	KwFunction
	KwIf
	KwImport
	KwIn
	KwInstanceof
	KwNew
	KwReturn
	KwSuper
	KwSwitch
	KwThis
	KwThrow
	KwTry
	KwTypeof
	KwVar
	KwVoid
	KwWhile
	KwWith
	// Contextual / strict-mode-sensitive keywords.
	KwYield
	KwLet
	KwStatic
	KwAsync
	KwAwait
	KwOf
	KwGet
	KwSet
	KwEnum
	// Future-reserved words, only a SyntaxError in strict mode.
	KwImplements
	KwInterface
	KwPackage
	KwPrivate
	KwProtected
	KwPublic
)

var keywordNames = map[KeywordKind]string{
	KwBreak: "break", KwCase: "case", KwCatch: "catch", KwClass: "class",
	KwConst: "const", KwContinue: "continue", KwDebugger: "debugger",
	KwDefault: "default", KwDelete: "delete", KwDo: "do", KwElse: "else",
	KwExport: "export", KwExtends: "extends", KwFinally: "finally",
	KwFor: "for", KwFunction: "function", KwIf: "if", KwImport: "import",
	KwIn: "in", KwInstanceof: "instanceof", KwNew: "new", KwReturn: "return",
	KwSuper: "super", KwSwitch: "switch", KwThis: "this", KwThrow: "throw",
	KwTry: "try", KwTypeof: "typeof", KwVar: "var", KwVoid: "void",
	KwWhile: "while", KwWith: "with", KwYield: "yield", KwLet: "let",
	KwStatic: "static", KwAsync: "async", KwAwait: "await", KwOf: "of",
	KwGet: "get", KwSet: "set", KwEnum: "enum", KwImplements: "implements",
	KwInterface: "interface", KwPackage: "package", KwPrivate: "private",
	KwProtected: "protected", KwPublic: "public",
}

func (k KeywordKind) String() string {
	if s, ok := keywordNames[k]; ok {
		return s
	}
	return ""
}

// Keywords maps a keyword's textual spelling to its KeywordKind. Built
// once at package init and treated as immutable thereafter.
var Keywords = func() map[string]KeywordKind {
	m := make(map[string]KeywordKind, len(keywordNames))
	for k, s := range keywordNames {
		m[s] = k
	}
	return m
}()

// StrictReservedWords are ordinary Identifier spellings in sloppy mode
// that become SyntaxErrors as binding names once strict mode is
// entered. This excludes `yield`, which already has its own
// KeywordKind because generators need it reserved unconditionally.
var StrictReservedWords = map[string]bool{
	"implements": true, "interface": true, "package": true,
	"private": true, "protected": true, "public": true,
	"static": true, "let": true, "eval": true, "arguments": true,
}

// PunctKind enumerates punctuator operators, including compound
// assignment forms and the optional-chaining family.
type PunctKind uint8

const (
	PNone PunctKind = iota
	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	Dot
	Ellipsis
	Semicolon
	Comma
	Lt
	Gt
	LtEq
	GtEq
	EqEq
	NotEq
	EqEqEq
	NotEqEq
	Plus
	Minus
	Star
	Percent
	StarStar
	PlusPlus
	MinusMinus
	Shl
	Shr
	UShr
	Amp
	Pipe
	Caret
	Bang
	Tilde
	AmpAmp
	PipePipe
	QuestionQuestion
	Question
	QuestionDot
	Colon
	Assign
	PlusAssign
	MinusAssign
	StarAssign
	PercentAssign
	StarStarAssign
	ShlAssign
	ShrAssign
	UShrAssign
	AmpAssign
	PipeAssign
	CaretAssign
	AmpAmpAssign
	PipePipeAssign
	QuestionQuestionAssign
	Arrow
	Slash
	SlashAssign
	Hash // private name sigil `#`
)

var punctNames = map[PunctKind]string{
	LBrace: "{", RBrace: "}", LParen: "(", RParen: ")", LBracket: "[", RBracket: "]",
	Dot: ".", Ellipsis: "...", Semicolon: ";", Comma: ",",
	Lt: "<", Gt: ">", LtEq: "<=", GtEq: ">=", EqEq: "==", NotEq: "!=",
	EqEqEq: "===", NotEqEq: "!==", Plus: "+", Minus: "-", Star: "*",
	Percent: "%", StarStar: "**", PlusPlus: "++", MinusMinus: "--",
	Shl: "<<", Shr: ">>", UShr: ">>>", Amp: "&", Pipe: "|", Caret: "^",
	Bang: "!", Tilde: "~", AmpAmp: "&&", PipePipe: "||",
	QuestionQuestion: "??", Question: "?", QuestionDot: "?.", Colon: ":",
	Assign: "=", PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=",
	PercentAssign: "%=", StarStarAssign: "**=", ShlAssign: "<<=",
	ShrAssign: ">>=", UShrAssign: ">>>=", AmpAssign: "&=", PipeAssign: "|=",
	CaretAssign: "^=", AmpAmpAssign: "&&=", PipePipeAssign: "||=",
	QuestionQuestionAssign: "??=", Arrow: "=>", Slash: "/", SlashAssign: "/=",
	Hash: "#",
}

func (p PunctKind) String() string {
	if s, ok := punctNames[p]; ok {
		return s
	}
	return ""
}
