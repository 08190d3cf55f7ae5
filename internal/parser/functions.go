package parser

import (
	"github.com/cwbudde/go-jscore/internal/ast"
	"github.com/cwbudde/go-jscore/internal/scope"
	"github.com/cwbudde/go-jscore/internal/token"
)

// parseFunctionDecl parses a FunctionDeclaration. The caller has already
// confirmed the current token is `function` but has not consumed it; for
// an `async function` declaration the caller has already consumed the
// leading `async` keyword. The name is declared into the enclosing scope
// before the function's own scope is pushed, since a function
// declaration's name is visible to its own body (recursion) and to
// sibling statements (hoisting).
func (p *Parser) parseFunctionDecl(async bool) ast.Statement {
	start := p.cur.Pos
	p.next() // function
	generator := false
	if p.at(token.Star) {
		generator = true
		p.next()
	}
	var name *ast.Identifier
	if p.cur.Kind == token.Identifier {
		name = p.parseIdentifierName()
	}
	if name != nil {
		p.fnScope.AddVar(name.Name, p.currentBlock().Index)
		p.currentBlock().DeclareFunction(name.Name)
	}
	fn := p.parseFunctionRest(start, name, generator, async)
	return &ast.FunctionDecl{Function: fn}
}

// parseFunctionExpression parses a FunctionExpression. As with
// parseFunctionDecl, the caller has already consumed a leading `async`
// but left `function` as the current token.
func (p *Parser) parseFunctionExpression(async bool) ast.Expression {
	start := p.cur.Pos
	p.next() // function
	generator := false
	if p.at(token.Star) {
		generator = true
		p.next()
	}
	var name *ast.Identifier
	if p.cur.Kind == token.Identifier {
		name = p.parseIdentifierName()
	}
	fn := p.parseFunctionRest(start, name, generator, async)
	return &ast.FunctionExpr{Function: fn}
}

// parseFunctionTail parses the `(params) { body }` tail of an anonymous
// function used as an object-literal method, getter, or setter; the
// property key has already been parsed by the caller.
func (p *Parser) parseFunctionTail(generator, async bool) *ast.FunctionExpr {
	start := p.cur.Pos
	fn := p.parseFunctionRest(start, nil, generator, async)
	return &ast.FunctionExpr{Function: fn}
}

// parseFunctionRest parses a parameter list and a block body under a
// freshly pushed function scope, shared by declarations, expressions,
// and method tails. start is the position of the production's first
// token (the `function` keyword, or the opening `(` for a method tail).
func (p *Parser) parseFunctionRest(start token.Position, name *ast.Identifier, generator, async bool) ast.Function {
	p.pushFunctionScope(scope.FunctionFlags{IsGenerator: generator, IsAsync: async})
	params := p.parseParams()

	prevInFunction := p.inFunction
	prevInLoop, prevInSwitch := p.inLoop, p.inSwitch
	prevStrict := p.scn.StrictMode()
	prevLabels := p.labelSet
	p.inFunction, p.inLoop, p.inSwitch = true, 0, 0
	p.labelSet = nil

	body := p.parseFunctionBody()

	p.inFunction, p.inLoop, p.inSwitch = prevInFunction, prevInLoop, prevInSwitch
	p.labelSet = prevLabels
	p.scn.SetStrictMode(prevStrict)
	p.popFunctionScope()

	return ast.Function{
		Base:      mk(start, p.cur.Pos),
		ID:        name,
		Params:    params,
		Body:      body,
		Generator: generator,
		Async:     async,
	}
}

// parseFunctionBody parses a function's `{ ... }` body at the function's
// own top-level block (block 0), rather than pushing a further nested
// block scope: the function scope created by pushFunctionScope already
// supplies that block lazily through currentBlock.
func (p *Parser) parseFunctionBody() *ast.BlockStmt {
	start := p.cur.Pos
	p.expect(token.LBrace)
	p.pushBlock("function")
	var body []ast.Statement
	inPrologue := true
	for !p.at(token.RBrace) && p.cur.Kind != token.EOF {
		stmt := p.parseStatementListItem()
		if stmt != nil {
			inPrologue = p.applyDirective(stmt, inPrologue)
			body = append(body, stmt)
		}
	}
	p.popBlock()
	p.expect(token.RBrace)
	return &ast.BlockStmt{Base: mk(start, p.cur.Pos), Body: body}
}

// parseParams parses a parenthesized FormalParameters list, declaring
// each parameter into the (already pushed) function scope as it goes.
func (p *Parser) parseParams() []ast.Pattern {
	p.expect(token.LParen)
	var params []ast.Pattern
	for !p.at(token.RParen) && p.cur.Kind != token.EOF {
		if p.at(token.Ellipsis) {
			restStart := p.cur.Pos
			p.next()
			target := p.parseBindingTarget()
			rest := &ast.RestElement{Base: mk(restStart, p.cur.Pos), Argument: target}
			p.fnScope.AddParam(restParamName(target), false)
			params = append(params, rest)
			break // rest parameter must be last; trailing comma already disallowed by grammar
		}
		target := p.parseBindingTarget()
		if p.at(token.Assign) {
			eqStart := target.Pos()
			p.next()
			def := p.isolateCoverGrammar(p.parseAssignmentExpression)
			params = append(params, &ast.AssignmentPattern{Base: mk(eqStart, p.cur.Pos), Left: target, Right: def})
			p.fnScope.AddParam(restParamName(target), false)
		} else {
			name, simple := paramBindingName(target)
			p.fnScope.AddParam(name, simple)
			params = append(params, target)
		}
		if p.at(token.Comma) {
			p.next()
		} else {
			break
		}
	}
	p.expect(token.RParen)
	return params
}

// paramBindingName reports the bound name and simplicity of a parameter
// target for FunctionScope.AddParam/Function.length bookkeeping: only a
// bare identifier is "simple"; destructuring
// targets contribute no single name and are recorded as non-simple.
func paramBindingName(target ast.Pattern) (string, bool) {
	if id, ok := target.(*ast.Identifier); ok {
		return id.Name, true
	}
	return "", false
}

// restParamName is paramBindingName for a defaulted or rest parameter's
// inner target, which is never itself "simple" regardless of what it
// wraps.
func restParamName(target ast.Pattern) string {
	name, _ := paramBindingName(target)
	return name
}

// tryParseArrowFunction reports whether the current position begins an
// ArrowFunction head and, if so, parses and returns it; otherwise it
// returns nil having consumed nothing. The parenthesized-parameter-list
// case is resolved by scanning ahead with bounded, non-consuming token
// lookahead to find the matching `)` and checking whether `=>` follows
// immediately, rather than speculatively parsing and backtracking a
// full expression.
func (p *Parser) tryParseArrowFunction() ast.Expression {
	start := p.cur.Pos

	if p.atKeyword(token.KwAsync) {
		next := p.scn.PeekAt(1)
		if next.HasLineTerminator {
			return nil
		}
		if next.Kind == token.Identifier && p.scn.PeekAt(2).IsPunct(token.Arrow) {
			p.next() // async
			idStart, name := p.cur.Pos, p.cur.Name
			p.next()
			p.pushFunctionScope(scope.FunctionFlags{IsArrow: true, IsAsync: true})
			param := &ast.Identifier{Base: mk(idStart, p.cur.Pos), Name: name}
			p.fnScope.AddParam(name, true)
			return p.finishArrowFunction(start, []ast.Pattern{param}, true)
		}
		if next.IsPunct(token.LParen) && p.isArrowHeadAheadFrom(1) {
			p.next() // async
			p.pushFunctionScope(scope.FunctionFlags{IsArrow: true, IsAsync: true})
			params := p.parseParams()
			return p.finishArrowFunction(start, params, true)
		}
		return nil
	}

	if p.cur.Kind == token.Identifier {
		next := p.scn.PeekAt(1)
		if next.IsPunct(token.Arrow) && !next.HasLineTerminator {
			idStart, name := p.cur.Pos, p.cur.Name
			p.next()
			p.pushFunctionScope(scope.FunctionFlags{IsArrow: true})
			param := &ast.Identifier{Base: mk(idStart, p.cur.Pos), Name: name}
			p.fnScope.AddParam(name, true)
			return p.finishArrowFunction(start, []ast.Pattern{param}, false)
		}
		return nil
	}

	if p.at(token.LParen) && p.isArrowHeadAheadFrom(0) {
		p.pushFunctionScope(scope.FunctionFlags{IsArrow: true})
		params := p.parseParams()
		return p.finishArrowFunction(start, params, false)
	}

	return nil
}

// isArrowHeadAheadFrom reports whether the parenthesized group whose `(`
// sits at lookahead offset fromIdx is immediately followed, after its
// matching `)`, by `=>` on the same line. It only counts parens via
// buffered lookahead tokens; it never builds any AST and never advances
// the parser.
func (p *Parser) isArrowHeadAheadFrom(fromIdx int) bool {
	depth := 0
	for i := fromIdx; i < fromIdx+8192; i++ {
		t := p.scn.PeekAt(i)
		switch {
		case t.Kind == token.EOF:
			return false
		case t.IsPunct(token.LParen):
			depth++
		case t.IsPunct(token.RParen):
			depth--
			if depth == 0 {
				next := p.scn.PeekAt(i + 1)
				return next.IsPunct(token.Arrow) && !next.HasLineTerminator
			}
		}
	}
	return false
}

// finishArrowFunction parses the `=>` and body of an arrow function. The
// caller has already pushed the arrow's own function scope and declared
// every parameter into it (either via parseParams or, for the bare
// single-identifier shortcut, directly) before calling this.
func (p *Parser) finishArrowFunction(start token.Position, params []ast.Pattern, async bool) ast.Expression {
	p.expect(token.Arrow)

	prevInFunction := p.inFunction
	prevInLoop, prevInSwitch := p.inLoop, p.inSwitch
	prevStrict := p.scn.StrictMode()
	prevLabels := p.labelSet
	p.inFunction, p.inLoop, p.inSwitch = true, 0, 0
	p.labelSet = nil

	var body ast.Node
	expression := false
	if p.at(token.LBrace) {
		body = p.parseFunctionBody()
	} else {
		body = p.isolateCoverGrammar(p.parseAssignmentExpression)
		expression = true
	}

	p.inFunction, p.inLoop, p.inSwitch = prevInFunction, prevInLoop, prevInSwitch
	p.labelSet = prevLabels
	p.scn.SetStrictMode(prevStrict)
	p.popFunctionScope()

	fn := ast.Function{
		Base:       mk(start, p.cur.Pos),
		Params:     params,
		Body:       body,
		Async:      async,
		Expression: expression,
	}
	return &ast.ArrowFunctionExpr{Function: fn}
}
