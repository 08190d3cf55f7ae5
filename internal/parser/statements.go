package parser

import (
	"github.com/cwbudde/go-jscore/internal/ast"
	"github.com/cwbudde/go-jscore/internal/scope"
	"github.com/cwbudde/go-jscore/internal/token"
)

// parseStatementListItem is the StatementListItem production: a
// Statement or a Declaration (function, class, let/const). A token
// mismatch anywhere inside the item triggers panic-mode recovery
// (synchronize) before the next item starts, so one syntax error
// doesn't cascade.
func (p *Parser) parseStatementListItem() ast.Statement {
	stmt := p.statementListItem()
	if p.needSync {
		p.needSync = false
		p.synchronize()
	}
	return stmt
}

func (p *Parser) statementListItem() ast.Statement {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	switch {
	case p.atKeyword(token.KwFunction):
		return p.parseFunctionDecl(false)
	case p.atKeyword(token.KwAsync) && p.isAsyncFunctionAhead():
		p.next()
		return p.parseFunctionDecl(true)
	case p.atKeyword(token.KwClass):
		return p.parseClassDeclaration()
	case p.atKeyword(token.KwConst):
		return p.parseVariableStatement(ast.VariableConst)
	case p.atKeyword(token.KwLet) && p.startsLexicalDeclaration():
		return p.parseVariableStatement(ast.VariableLet)
	default:
		return p.parseStatement()
	}
}

// startsLexicalDeclaration disambiguates `let` the declaration keyword
// from `let` used as an ordinary identifier (legal outside strict
// mode): a `let` that begins a declaration is always followed by an
// identifier, `[`, or `{`.
func (p *Parser) startsLexicalDeclaration() bool {
	next := p.scn.PeekAt(1)
	if next.Kind == token.Identifier {
		return true
	}
	if next.Kind == token.Punctuator && (next.Punct == token.LBracket || next.Punct == token.LBrace) {
		return true
	}
	return false
}

// parseModuleItem is the ModuleItem production: a StatementListItem
// plus import/export declarations.
func (p *Parser) parseModuleItem() ast.Statement {
	switch {
	case p.atKeyword(token.KwImport):
		return p.parseImportDeclaration()
	case p.atKeyword(token.KwExport):
		return p.parseExportDeclaration()
	default:
		return p.parseStatementListItem()
	}
}

func (p *Parser) parseStatement() ast.Statement {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	switch {
	case p.at(token.LBrace):
		return p.parseBlockStatement()
	case p.at(token.Semicolon):
		start := p.cur.Pos
		p.next()
		return &ast.EmptyStmt{Base: mk(start, p.cur.Pos)}
	case p.atKeyword(token.KwVar):
		return p.parseVariableStatement(ast.VariableVar)
	case p.atKeyword(token.KwIf):
		return p.parseIfStatement()
	case p.atKeyword(token.KwFor):
		return p.parseForStatement()
	case p.atKeyword(token.KwWhile):
		return p.parseWhileStatement()
	case p.atKeyword(token.KwDo):
		return p.parseDoWhileStatement()
	case p.atKeyword(token.KwSwitch):
		return p.parseSwitchStatement()
	case p.atKeyword(token.KwReturn):
		return p.parseReturnStatement()
	case p.atKeyword(token.KwBreak):
		return p.parseBreakStatement()
	case p.atKeyword(token.KwContinue):
		return p.parseContinueStatement()
	case p.atKeyword(token.KwThrow):
		return p.parseThrowStatement()
	case p.atKeyword(token.KwTry):
		return p.parseTryStatement()
	case p.atKeyword(token.KwWith):
		return p.parseWithStatement()
	case p.atKeyword(token.KwDebugger):
		start := p.cur.Pos
		p.next()
		p.consumeStatementSemicolon()
		return &ast.DebuggerStmt{Base: mk(start, p.cur.Pos)}
	case p.cur.Kind == token.Identifier && p.scn.PeekAt(1).IsPunct(token.Colon):
		return p.parseLabeledStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlockStatement() *ast.BlockStmt {
	start := p.cur.Pos
	p.next() // {
	p.pushBlock("block")
	p.pushBlockScope()
	var body []ast.Statement
	for !p.at(token.RBrace) && p.cur.Kind != token.EOF {
		stmt := p.parseStatementListItem()
		if stmt != nil {
			body = append(body, stmt)
		}
	}
	p.popBlockScope()
	p.popBlock()
	p.expect(token.RBrace)
	return &ast.BlockStmt{Base: mk(start, p.cur.Pos), Body: body}
}

// parseBraceBlockInCurrentScope parses `{ ... }` without opening a new
// block scope, for the catch body whose bindings live in the catch
// parameter's block.
func (p *Parser) parseBraceBlockInCurrentScope() *ast.BlockStmt {
	start := p.cur.Pos
	p.expect(token.LBrace)
	p.pushBlock("block")
	var body []ast.Statement
	for !p.at(token.RBrace) && p.cur.Kind != token.EOF {
		stmt := p.parseStatementListItem()
		if stmt != nil {
			body = append(body, stmt)
		}
	}
	p.popBlock()
	p.expect(token.RBrace)
	return &ast.BlockStmt{Base: mk(start, p.cur.Pos), Body: body}
}

// consumeStatementSemicolon applies automatic semicolon insertion: an
// explicit `;` is always accepted; otherwise ASI kicks in at `}`, at
// end of input, or when the next token follows a line terminator.
func (p *Parser) consumeStatementSemicolon() {
	if p.at(token.Semicolon) {
		p.next()
		return
	}
	if p.at(token.RBrace) || p.cur.Kind == token.EOF || p.cur.HasLineTerminator {
		return
	}
	p.expect(token.Semicolon)
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.cur.Pos
	tok := p.cur
	expr := p.isolateCoverGrammar(p.parseExpression)
	p.consumeStatementSemicolon()
	stmt := &ast.ExpressionStmt{Base: mk(start, p.cur.Pos), Expression: expr}
	if lit, ok := expr.(*ast.StringLiteral); ok && tok.Kind == token.StringLiteral {
		// Directive prologue detection: only the raw source text
		// qualifies, so "use strict" (valid but distinct source text)
		// must not count.
		stmt.Directive = lit.Raw
	}
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	start := p.cur.Pos
	p.next() // if
	p.expect(token.LParen)
	test := p.isolateCoverGrammar(p.parseExpression)
	p.expect(token.RParen)
	cons := p.parseStatement()
	var alt ast.Statement
	if p.atKeyword(token.KwElse) {
		p.next()
		alt = p.parseStatement()
	}
	return &ast.IfStmt{Base: mk(start, p.cur.Pos), Test: test, Consequent: cons, Alternate: alt}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	start := p.cur.Pos
	p.next() // while
	p.expect(token.LParen)
	test := p.isolateCoverGrammar(p.parseExpression)
	p.expect(token.RParen)
	p.inLoop++
	body := p.parseStatement()
	p.inLoop--
	return &ast.WhileStmt{Base: mk(start, p.cur.Pos), Test: test, Body: body}
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	start := p.cur.Pos
	p.next() // do
	p.inLoop++
	body := p.parseStatement()
	p.inLoop--
	p.expectKeyword(token.KwWhile)
	p.expect(token.LParen)
	test := p.isolateCoverGrammar(p.parseExpression)
	p.expect(token.RParen)
	// A trailing `;` after `do...while(...)` is optional even without
	// a line terminator.
	if p.at(token.Semicolon) {
		p.next()
	}
	return &ast.DoWhileStmt{Base: mk(start, p.cur.Pos), Body: body, Test: test}
}

// parseForStatement handles all four for-loop head shapes: C-style
// `for(init;test;update)`, and the three iteration forms `for(x in
// obj)` / `for(x of iterable)` / `for await(x of iterable)`, which
// share a head and only diverge once `in`/`of` is seen after the first
// clause.
func (p *Parser) parseForStatement() ast.Statement {
	start := p.cur.Pos
	p.next() // for
	await := false
	if p.atKeyword(token.KwAwait) {
		await = true
		p.next()
	}
	p.expect(token.LParen)

	var init ast.Node
	declKind := ast.VariableVar
	hasDecl := false
	isLexical := false
	switch {
	case p.at(token.Semicolon):
		// no init
	case p.atKeyword(token.KwVar):
		hasDecl = true
		declKind = ast.VariableVar
	case p.atKeyword(token.KwConst):
		hasDecl, isLexical = true, true
		declKind = ast.VariableConst
	case p.atKeyword(token.KwLet) && p.startsLexicalDeclaration():
		hasDecl, isLexical = true, true
		declKind = ast.VariableLet
	}

	// A lexical for-head gets its own block scope: `let`/`const` bound
	// here must be fresh per iteration, distinct from both the
	// enclosing scope and the loop body's own block.
	var headNames []string
	if isLexical {
		p.pushBlock("for-head")
		p.pushBlockScope()
	}
	popHead := func() {
		if isLexical {
			p.popBlockScope()
			p.popBlock()
		}
	}

	if hasDecl {
		declStart := p.cur.Pos
		p.next() // var/let/const
		target := p.parseBindingTarget()
		if p.atKeyword(token.KwIn) || p.atKeyword(token.KwOf) {
			isOf := p.atKeyword(token.KwOf)
			p.next()
			decl := &ast.VariableDecl{Base: mk(declStart, target.End()), VarKind: declKind, Declarations: []*ast.VariableDeclarator{
				{Base: mk(declStart, target.End()), Target: target},
			}}
			p.declareBindingNames(target, declKind)
			if isLexical {
				headNames = bindingNames(target)
			}
			p.allowIn = false
			right := p.isolateCoverGrammar(p.parseAssignmentExpression)
			p.allowIn = true
			p.expect(token.RParen)
			p.inLoop++
			body := p.parseLoopBody(headNames)
			p.inLoop--
			popHead()
			if isOf {
				return &ast.ForOfStmt{Base: mk(start, p.cur.Pos), Left: decl, Right: right, Body: body, Await: await}
			}
			return &ast.ForInStmt{Base: mk(start, p.cur.Pos), Left: decl, Right: right, Body: body}
		}
		// C-style: finish the VariableDecl's first declarator, then any
		// further comma-separated declarators.
		var initExpr ast.Expression
		if p.at(token.Assign) {
			p.next()
			initExpr = p.isolateCoverGrammar(p.parseAssignmentExpression)
		}
		p.declareBindingNames(target, declKind)
		if isLexical {
			headNames = append(headNames, bindingNames(target)...)
		}
		decls := []*ast.VariableDeclarator{{Base: mk(declStart, p.cur.Pos), Target: target, Init: initExpr}}
		for p.at(token.Comma) {
			p.next()
			t2 := p.parseBindingTarget()
			var i2 ast.Expression
			if p.at(token.Assign) {
				p.next()
				i2 = p.isolateCoverGrammar(p.parseAssignmentExpression)
			}
			p.declareBindingNames(t2, declKind)
			if isLexical {
				headNames = append(headNames, bindingNames(t2)...)
			}
			decls = append(decls, &ast.VariableDeclarator{Base: mk(declStart, p.cur.Pos), Target: t2, Init: i2})
		}
		init = &ast.VariableDecl{Base: mk(declStart, p.cur.Pos), VarKind: declKind, Declarations: decls}
	} else if !p.at(token.Semicolon) {
		p.allowIn = false
		expr := p.parseExpression()
		p.allowIn = true
		if p.atKeyword(token.KwIn) || p.atKeyword(token.KwOf) {
			isOf := p.atKeyword(token.KwOf)
			p.next()
			target, err := p.reinterpretAsPattern(expr)
			if err != nil {
				kw := "in"
				if isOf {
					kw = "of"
				}
				p.errorf(expr.Pos(), "invalid for-%s left-hand side", kw)
			} else {
				p.cover.firstCoverInitializedNameError = nil
			}
			right := p.isolateCoverGrammar(p.parseAssignmentExpression)
			p.expect(token.RParen)
			p.inLoop++
			body := p.parseStatement()
			p.inLoop--
			if isOf {
				return &ast.ForOfStmt{Base: mk(start, p.cur.Pos), Left: target, Right: right, Body: body, Await: await}
			}
			return &ast.ForInStmt{Base: mk(start, p.cur.Pos), Left: target, Right: right, Body: body}
		}
		init = expr
	}

	p.expect(token.Semicolon)
	var test ast.Expression
	if !p.at(token.Semicolon) {
		test = p.isolateCoverGrammar(p.parseExpression)
	}
	p.expect(token.Semicolon)
	var update ast.Expression
	if !p.at(token.RParen) {
		update = p.isolateCoverGrammar(p.parseExpression)
	}
	p.expect(token.RParen)
	p.inLoop++
	body := p.parseLoopBody(headNames)
	p.inLoop--
	popHead()
	return &ast.ForStmt{Base: mk(start, p.cur.Pos), Init: init, Test: test, Update: update, Body: body}
}

// parseLoopBody parses a loop's body statement. When the loop has a
// lexical head (headNames non-empty) and the body is itself a block,
// the block's using-names are seeded with headNames: the body block
// must record a use of the per-iteration binding even when the body
// never syntactically references it, since that using-name edge is
// what later drives the per-iteration copy a closure captured inside
// the loop body needs to see.
func (p *Parser) parseLoopBody(headNames []string) ast.Statement {
	if len(headNames) > 0 && p.at(token.LBrace) {
		return p.parseBlockStatementWithUses(headNames)
	}
	return p.parseStatement()
}

// parseBlockStatementWithUses is parseBlockStatement plus seeding the
// new block's using-names set before its body is parsed.
func (p *Parser) parseBlockStatementWithUses(uses []string) *ast.BlockStmt {
	start := p.cur.Pos
	p.next() // {
	p.pushBlock("block")
	p.pushBlockScope()
	blk := p.currentBlock()
	blk.PerIteration = true
	for _, name := range uses {
		blk.Use(name)
	}
	var body []ast.Statement
	for !p.at(token.RBrace) && p.cur.Kind != token.EOF {
		stmt := p.parseStatementListItem()
		if stmt != nil {
			body = append(body, stmt)
		}
	}
	p.popBlockScope()
	p.popBlock()
	p.expect(token.RBrace)
	return &ast.BlockStmt{Base: mk(start, p.cur.Pos), Body: body}
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	start := p.cur.Pos
	p.next() // switch
	p.expect(token.LParen)
	disc := p.isolateCoverGrammar(p.parseExpression)
	p.expect(token.RParen)
	p.expect(token.LBrace)
	p.pushBlock("switch")
	p.pushBlockScope()
	p.inSwitch++
	var cases []*ast.SwitchCase
	seenDefault := false
	for !p.at(token.RBrace) && p.cur.Kind != token.EOF {
		caseStart := p.cur.Pos
		var test ast.Expression
		if p.atKeyword(token.KwDefault) {
			if seenDefault {
				p.errorf(p.cur.Pos, "multiple default clauses in switch")
			}
			seenDefault = true
			p.next()
		} else {
			p.expectKeyword(token.KwCase)
			test = p.isolateCoverGrammar(p.parseExpression)
		}
		p.expect(token.Colon)
		var body []ast.Statement
		for !p.atKeyword(token.KwCase) && !p.atKeyword(token.KwDefault) && !p.at(token.RBrace) && p.cur.Kind != token.EOF {
			stmt := p.parseStatementListItem()
			if stmt != nil {
				body = append(body, stmt)
			}
		}
		cases = append(cases, &ast.SwitchCase{Base: mk(caseStart, p.cur.Pos), Test: test, Consequent: body})
	}
	p.inSwitch--
	p.popBlockScope()
	p.popBlock()
	p.expect(token.RBrace)
	return &ast.SwitchStmt{Base: mk(start, p.cur.Pos), Discriminant: disc, Cases: cases}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	start := p.cur.Pos
	p.next() // return
	if !p.inFunction {
		p.errorf(start, "illegal return statement")
	}
	var arg ast.Expression
	if !p.at(token.Semicolon) && !p.at(token.RBrace) && p.cur.Kind != token.EOF && !p.cur.HasLineTerminator {
		arg = p.isolateCoverGrammar(p.parseExpression)
	}
	p.consumeStatementSemicolon()
	return &ast.ReturnStmt{Base: mk(start, p.cur.Pos), Argument: arg}
}

func (p *Parser) parseBreakStatement() ast.Statement {
	start := p.cur.Pos
	p.next() // break
	var label *ast.Identifier
	if p.cur.Kind == token.Identifier && !p.cur.HasLineTerminator {
		label = p.parseIdentifierName()
		if !p.hasLabel(label.Name, false) {
			p.errorf(start, "undefined label '%s'", label.Name)
		}
	} else if p.inLoop == 0 && p.inSwitch == 0 {
		p.errorf(start, "illegal break statement")
	}
	p.consumeStatementSemicolon()
	return &ast.BreakStmt{Base: mk(start, p.cur.Pos), Label: label}
}

func (p *Parser) parseContinueStatement() ast.Statement {
	start := p.cur.Pos
	p.next() // continue
	var label *ast.Identifier
	if p.cur.Kind == token.Identifier && !p.cur.HasLineTerminator {
		label = p.parseIdentifierName()
		if !p.hasLabel(label.Name, true) {
			p.errorf(start, "undefined label '%s'", label.Name)
		}
	} else if p.inLoop == 0 {
		p.errorf(start, "illegal continue statement")
	}
	p.consumeStatementSemicolon()
	return &ast.ContinueStmt{Base: mk(start, p.cur.Pos), Label: label}
}

func (p *Parser) parseThrowStatement() ast.Statement {
	start := p.cur.Pos
	p.next() // throw
	if p.cur.HasLineTerminator {
		p.errorf(start, "illegal newline after throw")
	}
	arg := p.isolateCoverGrammar(p.parseExpression)
	p.consumeStatementSemicolon()
	return &ast.ThrowStmt{Base: mk(start, p.cur.Pos), Argument: arg}
}

func (p *Parser) parseTryStatement() ast.Statement {
	start := p.cur.Pos
	p.next() // try
	p.pushBlock("try")
	block := p.parseBlockStatement()
	var handler *ast.CatchClause
	var finalizer *ast.BlockStmt
	if p.atKeyword(token.KwCatch) {
		catchStart := p.cur.Pos
		p.next()
		var param ast.Pattern
		p.pushBlockScope()
		if p.at(token.LParen) {
			p.next()
			param = p.parseBindingTarget()
			p.declareBindingNames(param, ast.VariableLet)
			if id, ok := param.(*ast.Identifier); ok {
				// Annex B: a `var` in the catch body may share a simple
				// catch parameter's name without being a redeclaration.
				p.catchSimple[p.currentBlock()] = id.Name
			}
			p.expect(token.RParen)
		}
		// The catch body shares the parameter's block scope, so a
		// lexical redeclaration of the parameter collides while the
		// Annex-B var case above stays exempt.
		body := p.parseBraceBlockInCurrentScope()
		p.popBlockScope()
		handler = &ast.CatchClause{Base: mk(catchStart, p.cur.Pos), Param: param, Body: body}
	}
	if p.atKeyword(token.KwFinally) {
		p.next()
		finalizer = p.parseBlockStatement()
	}
	p.popBlock()
	if handler == nil && finalizer == nil {
		p.errorf(start, "missing catch or finally after try")
	}
	return &ast.TryStmt{Base: mk(start, p.cur.Pos), Block: block, Handler: handler, Finalizer: finalizer}
}

func (p *Parser) parseWithStatement() ast.Statement {
	start := p.cur.Pos
	if p.isStrict() {
		p.errorf(start, "strict mode code may not include a with statement")
	}
	p.next() // with
	p.expect(token.LParen)
	obj := p.isolateCoverGrammar(p.parseExpression)
	p.expect(token.RParen)
	body := p.parseStatement()
	return &ast.WithStmt{Base: mk(start, p.cur.Pos), Object: obj, Body: body}
}

func (p *Parser) parseLabeledStatement() ast.Statement {
	start := p.cur.Pos
	label := p.parseIdentifierName()
	p.expect(token.Colon)
	for _, l := range p.labelSet {
		if l.name == label.Name {
			p.errorf(start, "label '%s' has already been declared", label.Name)
		}
	}
	// Only a label attached (possibly through further labels) to an
	// iteration statement is a legal `continue` target.
	iter := p.atKeyword(token.KwFor) || p.atKeyword(token.KwWhile) || p.atKeyword(token.KwDo)
	p.labelSet = append(p.labelSet, labelEntry{name: label.Name, iter: iter})
	body := p.parseStatement()
	p.labelSet = p.labelSet[:len(p.labelSet)-1]
	return &ast.LabeledStmt{Base: mk(start, p.cur.Pos), Label: label, Body: body}
}

// parseVariableStatement parses `var`/`let`/`const` in statement
// position, consuming the leading keyword itself.
func (p *Parser) parseVariableStatement(kind ast.VariableKind) ast.Statement {
	start := p.cur.Pos
	p.next() // var/let/const
	var decls []*ast.VariableDeclarator
	for {
		declStart := p.cur.Pos
		target := p.parseBindingTarget()
		var init ast.Expression
		if p.at(token.Assign) {
			p.next()
			init = p.isolateCoverGrammar(p.parseAssignmentExpression)
		} else if kind == ast.VariableConst {
			p.errorf(declStart, "missing initializer in const declaration")
		}
		p.declareBindingNames(target, kind)
		decls = append(decls, &ast.VariableDeclarator{Base: mk(declStart, p.cur.Pos), Target: target, Init: init})
		if p.at(token.Comma) {
			p.next()
			continue
		}
		break
	}
	p.consumeStatementSemicolon()
	return &ast.VariableDecl{Base: mk(start, p.cur.Pos), VarKind: kind, Declarations: decls}
}

// parseBindingTarget parses a BindingIdentifier or a binding pattern.
// Array/object patterns are parsed as their literal expression forms
// and reinterpreted via reinterpretAsPattern (cover.go), the same
// cover-grammar machinery destructuring assignment uses, rather than a
// second hand-written pattern grammar.
func (p *Parser) parseBindingTarget() ast.Pattern {
	switch {
	case p.at(token.LBracket):
		p.cover.isAssignmentTarget, p.cover.isBindingElement = true, true
		lit := p.parseArrayLiteral()
		pat, err := p.reinterpretAsPattern(lit)
		if err != nil || !p.cover.isBindingElement {
			p.errorf(lit.Pos(), "invalid binding pattern")
			return &ast.Identifier{Base: mk(lit.Pos(), lit.End())}
		}
		p.cover.firstCoverInitializedNameError = nil
		return pat
	case p.at(token.LBrace):
		p.cover.isAssignmentTarget, p.cover.isBindingElement = true, true
		lit := p.parseObjectLiteral()
		pat, err := p.reinterpretAsPattern(lit)
		if err != nil || !p.cover.isBindingElement {
			p.errorf(lit.Pos(), "invalid binding pattern")
			return &ast.Identifier{Base: mk(lit.Pos(), lit.End())}
		}
		p.cover.firstCoverInitializedNameError = nil
		return pat
	default:
		return p.parseIdentifierName()
	}
}

// declareBindingNames records every name bound by target into the
// current scope: `var` always goes to the enclosing function scope
// (hoisting), `let`/`const` go to the innermost open block. It also
// enforces the collision invariant: a `let`/`const` at block B must not
// collide with another `let`/`const` at B nor with a `var` that hoists
// into B, and (symmetrically) a `var` must not collide with a
// `let`/`const` in any block it hoists through.
func (p *Parser) declareBindingNames(target ast.Pattern, kind ast.VariableKind) {
	pos := target.Pos()
	for _, name := range bindingNames(target) {
		if p.isStrict() && token.StrictReservedWords[name] {
			p.errorf(pos, "identifier '%s' is reserved in strict mode", name)
		}
		if kind == ast.VariableVar {
			if p.blockChainDeclaresLexical(name) {
				p.redeclarationError(pos, name)
			}
			p.fnScope.AddVar(name, p.currentBlock().Index)
			continue
		}
		lk := scope.LexicalLet
		if kind == ast.VariableConst {
			lk = scope.LexicalConst
		}
		blk := p.currentBlock()
		if blockDeclaresLexical(blk, name) || p.varHoistsThrough(name, blk.Index) {
			p.redeclarationError(pos, name)
		}
		blk.DeclareLexical(name, lk)
	}
}

// varHoistsThrough reports whether an already-recorded `var` of the
// given name hoists through block b: its declaration block is b itself
// or a block nested (transitively) inside b, so the var's path to the
// function body passes through b.
func (p *Parser) varHoistsThrough(name string, b uint16) bool {
	for _, vd := range p.fnScope.VarDecls {
		if vd.Name != name {
			continue
		}
		idx := vd.BlockIndex
		for {
			if idx == b {
				return true
			}
			blk := p.fnScope.Blocks[idx]
			if !blk.HasParent {
				break
			}
			idx = blk.ParentIndex
		}
	}
	return false
}

// hasLabel reports whether name is in the active label set;
// continueOnly restricts the search to labels attached to an iteration
// statement.
func (p *Parser) hasLabel(name string, continueOnly bool) bool {
	for _, l := range p.labelSet {
		if l.name == name && (!continueOnly || l.iter) {
			return true
		}
	}
	return false
}

// redeclarationError reports a SyntaxError naming the identifier and
// stating it has already been declared.
func (p *Parser) redeclarationError(pos token.Position, name string) {
	p.errorf(pos, "Identifier '%s' has already been declared", name)
}

// blockDeclaresLexical reports whether blk's own lexical-name list
// already declares name.
func blockDeclaresLexical(blk *scope.BlockScope, name string) bool {
	for _, l := range blk.Lexical {
		if l.Name == name {
			return true
		}
	}
	return false
}

// blockChainDeclaresLexical walks from the currently open block outward
// to the function's top-level block, reporting whether any block along
// that chain (the set of blocks a `var` in the current block hoists
// through) already declares name as `let`/`const`.
func (p *Parser) blockChainDeclaresLexical(name string) bool {
	idx := p.currentBlock().Index
	for {
		blk := p.fnScope.Blocks[idx]
		if blockDeclaresLexical(blk, name) && p.catchSimple[blk] != name {
			return true
		}
		if !blk.HasParent {
			return false
		}
		idx = blk.ParentIndex
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// bindingNames flattens a Pattern down to the plain names it binds.
func bindingNames(pat ast.Pattern) []string {
	switch v := pat.(type) {
	case nil:
		return nil
	case *ast.Identifier:
		return []string{v.Name}
	case *ast.AssignmentPattern:
		return bindingNames(v.Left)
	case *ast.RestElement:
		return bindingNames(v.Argument)
	case *ast.ArrayPattern:
		var names []string
		for _, el := range v.Elements {
			names = append(names, bindingNames(el)...)
		}
		return names
	case *ast.ObjectPattern:
		var names []string
		for _, prop := range v.Properties {
			names = append(names, bindingNames(prop.Value)...)
		}
		if v.Rest != nil {
			names = append(names, bindingNames(v.Rest)...)
		}
		return names
	default:
		return nil
	}
}

func (p *Parser) parseImportDeclaration() ast.Statement {
	start := p.cur.Pos
	p.next() // import
	var specs []ast.Node
	if p.cur.Kind == token.StringLiteral {
		src := p.parseStringLiteralNode()
		p.consumeStatementSemicolon()
		return &ast.ImportDeclaration{Base: mk(start, p.cur.Pos), Source: src}
	}
	if p.cur.Kind == token.Identifier {
		defStart := p.cur.Pos
		local := p.parseIdentifierName()
		specs = append(specs, &ast.ImportDefaultSpecifier{Base: mk(defStart, p.cur.Pos), Local: local})
		if p.at(token.Comma) {
			p.next()
		}
	}
	if p.at(token.Star) {
		nsStart := p.cur.Pos
		p.next()
		p.expectContextual("as")
		local := p.parseIdentifierName()
		specs = append(specs, &ast.ImportNamespaceSpecifier{Base: mk(nsStart, p.cur.Pos), Local: local})
	} else if p.at(token.LBrace) {
		p.next()
		for !p.at(token.RBrace) && p.cur.Kind != token.EOF {
			specStart := p.cur.Pos
			imported := p.parseIdentifierName()
			local := imported
			if p.atContextual("as") {
				p.next()
				local = p.parseIdentifierName()
			}
			specs = append(specs, &ast.ImportSpecifier{Base: mk(specStart, p.cur.Pos), Imported: imported, Local: local})
			p.currentBlock().DeclareLexical(local.Name, scope.LexicalConst)
			if p.at(token.Comma) {
				p.next()
			} else {
				break
			}
		}
		p.expect(token.RBrace)
	}
	p.expectContextual("from")
	src := p.parseStringLiteralNode()
	p.consumeStatementSemicolon()
	return &ast.ImportDeclaration{Base: mk(start, p.cur.Pos), Specifiers: specs, Source: src}
}

// atContextual/expectContextual handle grammar positions where the
// ECMAScript grammar uses a plain identifier with special meaning
// ("as", "from") rather than a reserved word the scanner tags with its
// own KeywordKind.
func (p *Parser) atContextual(name string) bool {
	return p.cur.Kind == token.Identifier && p.cur.Name == name
}

func (p *Parser) expectContextual(name string) {
	if !p.atContextual(name) {
		p.expectedError([]string{name}, p.cur)
		return
	}
	p.next()
}

func (p *Parser) parseExportDeclaration() ast.Statement {
	start := p.cur.Pos
	p.next() // export
	if p.atKeyword(token.KwDefault) {
		p.next()
		var decl ast.Node
		switch {
		case p.atKeyword(token.KwFunction):
			decl = p.parseFunctionDecl(false)
		case p.atKeyword(token.KwAsync) && p.isAsyncFunctionAhead():
			p.next()
			decl = p.parseFunctionDecl(true)
		case p.atKeyword(token.KwClass):
			decl = p.parseClassDeclaration()
		default:
			expr := p.isolateCoverGrammar(p.parseAssignmentExpression)
			p.consumeStatementSemicolon()
			decl = expr
		}
		return &ast.ExportDefaultDeclaration{Base: mk(start, p.cur.Pos), Declaration: decl}
	}
	if p.at(token.Star) {
		p.next()
		var exported *ast.Identifier
		if p.atContextual("as") {
			p.next()
			exported = p.parseIdentifierName()
		}
		p.expectContextual("from")
		src := p.parseStringLiteralNode()
		p.consumeStatementSemicolon()
		return &ast.ExportAllDeclaration{Base: mk(start, p.cur.Pos), Exported: exported, Source: src}
	}
	if p.at(token.LBrace) {
		p.next()
		var specs []ast.ExportSpecifier
		for !p.at(token.RBrace) && p.cur.Kind != token.EOF {
			local := p.parseIdentifierName()
			exported := local
			if p.atContextual("as") {
				p.next()
				exported = p.parseIdentifierName()
			}
			specs = append(specs, ast.ExportSpecifier{Local: local, Exported: exported})
			if p.at(token.Comma) {
				p.next()
			} else {
				break
			}
		}
		p.expect(token.RBrace)
		var src *ast.StringLiteral
		if p.atContextual("from") {
			p.next()
			src = p.parseStringLiteralNode()
		}
		p.consumeStatementSemicolon()
		return &ast.ExportNamedDeclaration{Base: mk(start, p.cur.Pos), Specifiers: specs, Source: src}
	}
	decl := p.parseStatementListItem()
	return &ast.ExportNamedDeclaration{Base: mk(start, p.cur.Pos), Declaration: decl}
}

func (p *Parser) parseStringLiteralNode() *ast.StringLiteral {
	start := p.cur.Pos
	tok := p.cur
	p.next()
	return &ast.StringLiteral{Base: mk(start, p.cur.Pos), Value: tok.StringCooked, Raw: tok.StringRaw}
}
