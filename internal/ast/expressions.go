package ast

// BinaryExpr covers arithmetic, relational, bitwise, `in`, and
// `instanceof` operators. Logical && / || / ?? get their
// own LogicalExpr node because they short-circuit and the scope
// builder / bytecode compiler must treat them as control flow, not a
// plain value computation.
type BinaryExpr struct {
	Base
	Operator string
	Left     Expression
	Right    Expression
}

func (*BinaryExpr) Kind() Kind      { return KindBinaryExpr }
func (*BinaryExpr) expressionNode() {}

type LogicalExpr struct {
	Base
	Operator string // "&&", "||", "??"
	Left     Expression
	Right    Expression
}

func (*LogicalExpr) Kind() Kind      { return KindLogicalExpr }
func (*LogicalExpr) expressionNode() {}

type UnaryExpr struct {
	Base
	Operator string // "+", "-", "!", "~", "typeof", "void", "delete"
	Argument Expression
	Prefix   bool
}

func (*UnaryExpr) Kind() Kind      { return KindUnaryExpr }
func (*UnaryExpr) expressionNode() {}

// UpdateExpr is ++/-- in either prefix or postfix position.
type UpdateExpr struct {
	Base
	Operator string
	Argument Expression
	Prefix   bool
}

func (*UpdateExpr) Kind() Kind      { return KindUpdateExpr }
func (*UpdateExpr) expressionNode() {}

// AssignmentExpr's Left is an Expression for `=` (any valid simple
// target surfaces its pattern only at scope-resolution time) but a
// Pattern for destructuring assignment; both satisfy Expression since
// Identifier/MemberExpr double as both.
type AssignmentExpr struct {
	Base
	Operator string // "=", "+=", ..., "&&=", "||=", "??="
	Left     Expression
	Right    Expression
}

func (*AssignmentExpr) Kind() Kind      { return KindAssignmentExpr }
func (*AssignmentExpr) expressionNode() {}

type ConditionalExpr struct {
	Base
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (*ConditionalExpr) Kind() Kind      { return KindConditionalExpr }
func (*ConditionalExpr) expressionNode() {}

// CallExpr's Arguments may contain *SpreadElement entries.
type CallExpr struct {
	Base
	Callee    Expression
	Arguments []Expression
	Optional  bool // true if reached via ?.()
}

func (*CallExpr) Kind() Kind      { return KindCallExpr }
func (*CallExpr) expressionNode() {}

type NewExpr struct {
	Base
	Callee    Expression
	Arguments []Expression
}

func (*NewExpr) Kind() Kind      { return KindNewExpr }
func (*NewExpr) expressionNode() {}

// MemberExpr covers both `a.b` (Computed=false, Property is an
// Identifier) and `a[b]` (Computed=true). Optional chaining uses the
// separate OptionalMemberExpr node so the compiler/scope builder can
// see short-circuit boundaries without inspecting a flag buried on
// every link of the chain: the short-circuit must skip the *entire*
// remaining chain, not just the next step.
type MemberExpr struct {
	Base
	Object   Expression
	Property Expression
	Computed bool
}

func (*MemberExpr) Kind() Kind      { return KindMemberExpr }
func (*MemberExpr) expressionNode() {}

// MemberExpr also satisfies Pattern: a destructuring *assignment*
// (unlike a binding pattern) may target any valid assignment target,
// including a member expression (`({x} = obj.y)`), so the cover-grammar
// reinterpretation in internal/parser/cover.go needs this to double as
// a Pattern the same way Identifier already does.
func (*MemberExpr) patternNode() {}

// OptionalMemberExpr is `a?.b` / `a?.[b]`. Optional indicates this
// specific link introduced the `?.`; a chain may mix optional and
// plain links after the first `?.` (e.g. `a?.b.c`), which is why this
// is a distinct node from MemberExpr rather than a flag on it — the
// parser and the short-circuit-emitting compiler both need to know
// precisely where a chain begins.
type OptionalMemberExpr struct {
	Base
	Object   Expression
	Property Expression
	Computed bool
	Optional bool
}

func (*OptionalMemberExpr) Kind() Kind      { return KindOptionalMemberExpr }
func (*OptionalMemberExpr) expressionNode() {}

type OptionalCallExpr struct {
	Base
	Callee    Expression
	Arguments []Expression
	Optional  bool
}

func (*OptionalCallExpr) Kind() Kind      { return KindOptionalCallExpr }
func (*OptionalCallExpr) expressionNode() {}

// SequenceExpr is the comma operator: `a, b, c`.
type SequenceExpr struct {
	Base
	Expressions []Expression
}

func (*SequenceExpr) Kind() Kind      { return KindSequenceExpr }
func (*SequenceExpr) expressionNode() {}

type ThisExpr struct{ Base }

func (*ThisExpr) Kind() Kind      { return KindThisExpr }
func (*ThisExpr) expressionNode() {}

type SuperExpr struct{ Base }

func (*SuperExpr) Kind() Kind      { return KindSuperExpr }
func (*SuperExpr) expressionNode() {}

// YieldExpr's Argument is nil for a bare `yield`. Delegate is true for
// `yield*`.
type YieldExpr struct {
	Base
	Argument Expression
	Delegate bool
}

func (*YieldExpr) Kind() Kind      { return KindYieldExpr }
func (*YieldExpr) expressionNode() {}

type AwaitExpr struct {
	Base
	Argument Expression
}

func (*AwaitExpr) Kind() Kind      { return KindAwaitExpr }
func (*AwaitExpr) expressionNode() {}

// ParenthesizedExpr preserves source parens around its Inner
// expression. Most expressions dissolve parens away during parsing,
// but arrow-function-head disambiguation (a cover grammar) needs to
// know an expression was parenthesized, so the parser keeps
// this node until the arrow/non-arrow decision is made, then normally
// discards it.
type ParenthesizedExpr struct {
	Base
	Inner Expression
}

func (*ParenthesizedExpr) Kind() Kind      { return KindParenthesizedExpr }
func (*ParenthesizedExpr) expressionNode() {}

// MetaProperty covers `new.target` and `import.meta`.
type MetaProperty struct {
	Base
	Meta     string
	Property string
}

func (*MetaProperty) Kind() Kind      { return KindMetaProperty }
func (*MetaProperty) expressionNode() {}
