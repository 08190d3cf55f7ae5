package ast

import "github.com/cwbudde/go-jscore/internal/token"

// Identifier is a binding or reference to a name.
type Identifier struct {
	Base
	Name string
}

func (*Identifier) Kind() Kind       { return KindIdentifier }
func (*Identifier) expressionNode()  {}
func (*Identifier) patternNode()     {}

func NewIdentifier(pos, end token.Position, name string) *Identifier {
	return &Identifier{Base: mkBase(pos, end, name), Name: name}
}

// PrivateName is a `#field` reference inside a class body.
type PrivateName struct {
	Base
	Name string
}

func (*PrivateName) Kind() Kind      { return KindPrivateName }
func (*PrivateName) expressionNode() {}

// NumericLiteral holds a parsed number or (when IsBigInt) a deferred
// BigInt digit string, since BigInt values don't fit float64 (the
// bytecode layer's numeral pool handles the conversion, out of this
// node's concern).
type NumericLiteral struct {
	Base
	Value    float64
	Raw      string
	IsBigInt bool
}

func (*NumericLiteral) Kind() Kind      { return KindNumericLiteral }
func (*NumericLiteral) expressionNode() {}

// StringLiteral holds a cooked string value plus its original source
// text (Raw), since Raw preserves the exact quote style and escape
// sequences a bytecode dump or round-tripping tool needs.
type StringLiteral struct {
	Base
	Value string
	Raw   string
}

func (*StringLiteral) Kind() Kind      { return KindStringLiteral }
func (*StringLiteral) expressionNode() {}

type BooleanLiteral struct {
	Base
	Value bool
}

func (*BooleanLiteral) Kind() Kind      { return KindBooleanLiteral }
func (*BooleanLiteral) expressionNode() {}

type NullLiteral struct{ Base }

func (*NullLiteral) Kind() Kind      { return KindNullLiteral }
func (*NullLiteral) expressionNode() {}

// RegexLiteral holds the unparsed body/flags text; compiling it to a
// regex engine is out of this core's scope (Non-goal: object model).
type RegexLiteral struct {
	Base
	Pattern string
	Flags   string
}

func (*RegexLiteral) Kind() Kind      { return KindRegexLiteral }
func (*RegexLiteral) expressionNode() {}

// TemplateElement is one cooked/raw quasi segment of a template
// literal.
type TemplateElement struct {
	Cooked      string
	CookedValid bool
	Raw         string
	Tail        bool
}

// TemplateLiteral is an untagged template: Quasis has one more element
// than Expressions.
type TemplateLiteral struct {
	Base
	Quasis      []TemplateElement
	Expressions []Expression
}

func (*TemplateLiteral) Kind() Kind      { return KindTemplateLiteral }
func (*TemplateLiteral) expressionNode() {}

// TaggedTemplate is `tag` applied to a TemplateLiteral. The
// cooked/raw arrays for a given call-site template are
// cached and reused across repeated evaluations of the same literal;
// that cache lives at the bytecode/runtime layer (SiteID here is the
// stable per-occurrence key the parser assigns).
type TaggedTemplate struct {
	Base
	Tag      Expression
	Template *TemplateLiteral
	SiteID   int
}

func (*TaggedTemplate) Kind() Kind      { return KindTaggedTemplate }
func (*TaggedTemplate) expressionNode() {}

// ArrayLiteral elements may contain nil (elisions) and SpreadElement.
type ArrayLiteral struct {
	Base
	Elements []Expression
}

func (*ArrayLiteral) Kind() Kind      { return KindArrayLiteral }
func (*ArrayLiteral) expressionNode() {}

type PropertyKind uint8

const (
	PropertyInit PropertyKind = iota
	PropertyGet
	PropertySet
	PropertyMethod
)

// Property is one key/value entry of an ObjectLiteral.
type Property struct {
	Base
	Key       Expression
	Value     Expression
	Computed  bool
	Shorthand bool
	PropKind  PropertyKind
}

func (*Property) Kind() Kind      { return KindProperty }
func (*Property) expressionNode() {}

type ObjectLiteral struct {
	Base
	Properties []Expression // *Property or *SpreadElement
}

func (*ObjectLiteral) Kind() Kind      { return KindObjectLiteral }
func (*ObjectLiteral) expressionNode() {}

// SpreadElement is `...expr` inside an array/object literal or call
// argument list.
type SpreadElement struct {
	Base
	Argument Expression
}

func (*SpreadElement) Kind() Kind      { return KindSpreadElement }
func (*SpreadElement) expressionNode() {}
