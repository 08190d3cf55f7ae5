package parser

import (
	"github.com/cwbudde/go-jscore/internal/ast"
	"github.com/cwbudde/go-jscore/internal/perrors"
	"github.com/cwbudde/go-jscore/internal/token"
)

// coverState tracks the facts the parser accumulates while parsing an
// expression that might turn out to be a destructuring target or an
// arrow-function parameter list once more of the grammar is visible
// (a cover grammar). This state is threaded alongside parsing rather
// than recovered by a second pass, tailored to ECMAScript's specific
// cover-grammar ambiguities.
type coverState struct {
	isAssignmentTarget bool
	isBindingElement   bool

	// firstCoverInitializedNameError records the position of the first
	// `{ a = 1 }`-style shorthand-with-default seen while parsing what
	// is, for now, an ObjectLiteral: this shape is a SyntaxError as a
	// plain expression but legal once the literal is reinterpreted as
	// a destructuring pattern. Recorded lazily so parsing the literal
	// doesn't fail immediately; callers that keep it as an expression
	// consult and raise it.
	firstCoverInitializedNameError *perrors.Diagnostic
}

func newCoverState() *coverState { return &coverState{isAssignmentTarget: true, isBindingElement: true} }

// inheritCoverGrammar parses one element of an aggregate that may still
// be reinterpreted as a pattern (an array element, an object property
// value): the element parses with fresh target/binding flags, and its
// verdict is ANDed into the enclosing aggregate's, so one non-binding
// element (`{a: b.c}`) marks the whole literal non-binding while the
// deferred-error slot stays shared with the enclosing context.
func (p *Parser) inheritCoverGrammar(parse func() ast.Expression) ast.Expression {
	prevTarget, prevBinding := p.cover.isAssignmentTarget, p.cover.isBindingElement
	p.cover.isAssignmentTarget, p.cover.isBindingElement = true, true
	expr := parse()
	p.cover.isAssignmentTarget = p.cover.isAssignmentTarget && prevTarget
	p.cover.isBindingElement = p.cover.isBindingElement && prevBinding
	return expr
}

// isolateCoverGrammar runs parse in a fresh cover-grammar context and
// raises any deferred cover-initialized-name error the sub-parse
// recorded: the contexts that isolate (assignment right-hand sides,
// call arguments, initializers, statement-level expressions) are
// exactly the ones no enclosing production can later reinterpret as a
// destructuring pattern, so a `{ a = 1 }` seen inside them is
// definitively an ObjectLiteral and definitively an error.
func (p *Parser) isolateCoverGrammar(parse func() ast.Expression) ast.Expression {
	prev := p.cover
	p.cover = newCoverState()
	expr := parse()
	if d := p.cover.firstCoverInitializedNameError; d != nil {
		p.errors = append(p.errors, d)
	}
	p.cover = prev
	return expr
}

// reinterpretAsPattern converts an already-parsed Expression (parsed as
// part of a cover grammar production — an array/object literal, or the
// parenthesized head of what turned out to be an arrow function) into
// the equivalent Pattern, via the five named cover-grammar rewrites:
// ArrayLiteral -> ArrayPattern, ObjectLiteral -> ObjectPattern,
// AssignmentExpr("=") -> AssignmentPattern, SpreadElement -> RestElement,
// and any already-valid assignment target (Identifier, MemberExpr)
// passed through unchanged.
func (p *Parser) reinterpretAsPattern(n ast.Node) (ast.Pattern, error) {
	if n == nil {
		return nil, perrors.New(perrors.SyntaxError, token.Position{}, "invalid destructuring target")
	}
	switch v := n.(type) {
	case *ast.Identifier:
		return v, nil
	case *ast.ParenthesizedExpr:
		// `(a) = 1` is a legal assignment; the parens dissolve once the
		// target is reinterpreted.
		if v.Inner == nil {
			return nil, p.errorf(v.Pos(), "invalid destructuring target")
		}
		return p.reinterpretAsPattern(v.Inner)
	case *ast.MemberExpr:
		// A member target is a valid assignment-pattern element but
		// can never be a parameter binding; the caller (parameter list
		// vs. destructuring assignment) is expected to reject it where
		// it doesn't belong.
		return v, nil
	case *ast.AssignmentExpr:
		if v.Operator != "=" {
			return nil, p.errorf(v.Pos(), "invalid destructuring default")
		}
		target, err := p.reinterpretAsPattern(v.Left)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentPattern{Left: target, Right: v.Right}, nil
	case *ast.SpreadElement:
		target, err := p.reinterpretAsPattern(v.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.RestElement{Argument: target}, nil
	case *ast.ArrayLiteral:
		elements := make([]ast.Pattern, len(v.Elements))
		for i, el := range v.Elements {
			if el == nil {
				continue
			}
			pat, err := p.reinterpretAsPattern(el)
			if err != nil {
				return nil, err
			}
			elements[i] = pat
		}
		return &ast.ArrayPattern{Elements: elements}, nil
	case *ast.ObjectLiteral:
		var props []ast.ObjectPatternProperty
		var rest *ast.RestElement
		for _, prop := range v.Properties {
			switch pv := prop.(type) {
			case *ast.Property:
				target, err := p.reinterpretAsPattern(pv.Value)
				if err != nil {
					return nil, err
				}
				props = append(props, ast.ObjectPatternProperty{
					Key: pv.Key, Value: target, Computed: pv.Computed, Shorthand: pv.Shorthand,
				})
			case *ast.SpreadElement:
				target, err := p.reinterpretAsPattern(pv.Argument)
				if err != nil {
					return nil, err
				}
				id, ok := target.(*ast.Identifier)
				if !ok {
					return nil, p.errorf(pv.Pos(), "rest element in object pattern must be an identifier")
				}
				rest = &ast.RestElement{Argument: id}
			}
		}
		return &ast.ObjectPattern{Properties: props, Rest: rest}, nil
	default:
		return nil, p.errorf(n.Pos(), "invalid destructuring target")
	}
}
