package parser

import (
	"github.com/cwbudde/go-jscore/internal/ast"
	"github.com/cwbudde/go-jscore/internal/scope"
	"github.com/cwbudde/go-jscore/internal/token"
)

// parseClassDeclaration parses a ClassDeclaration. The current token is
// `class`, not yet consumed.
func (p *Parser) parseClassDeclaration() ast.Statement {
	start := p.cur.Pos
	p.next() // class
	var name *ast.Identifier
	if p.cur.Kind == token.Identifier {
		name = p.parseIdentifierName()
		// A class's own name is block-scoped, unlike a function
		// declaration's var-scoped, hoisted name.
		p.currentBlock().DeclareLexical(name.Name, scope.LexicalLet)
	}
	common := p.parseClassRest(start, name)
	return &ast.ClassDecl{ClassCommon: common}
}

// parseClassExpression parses a ClassExpression; the name, if present,
// is only visible inside the class body itself, but since this parser
// doesn't thread a separate "class-own-name" scope, it is simply left
// undeclared in any enclosing scope (consistent with how the Function
// case already handles FunctionExpr's own optional name).
func (p *Parser) parseClassExpression() ast.Expression {
	start := p.cur.Pos
	p.next() // class
	var name *ast.Identifier
	if p.cur.Kind == token.Identifier {
		name = p.parseIdentifierName()
	}
	common := p.parseClassRest(start, name)
	return &ast.ClassExpr{ClassCommon: common}
}

// parseClassRest parses the optional `extends` clause and the class
// body shared by declarations and expressions.
func (p *Parser) parseClassRest(start token.Position, name *ast.Identifier) ast.ClassCommon {
	var super ast.Expression
	if p.atKeyword(token.KwExtends) {
		p.next()
		super = p.parseCallOrMemberExpression(true)
	}
	body := p.parseClassBody()
	return ast.ClassCommon{Base: mk(start, p.cur.Pos), ID: name, SuperClass: super, Body: body}
}

// parseClassBody parses `{ ClassElement* }`: methods, accessors, and
// fields, each optionally `static`, with private names via `#`, plus
// the duplicate-constructor and static-prototype checks.
func (p *Parser) parseClassBody() *ast.ClassBody {
	start := p.cur.Pos
	p.expect(token.LBrace)
	p.pushBlock("class")

	classScope := scope.NewClassScope(p.currentClassScope())
	p.classStack = append(p.classStack, classScope)
	p.collectPrivateNames(classScope)

	var elements []ast.Node
	sawConstructor := false
	for !p.at(token.RBrace) && p.cur.Kind != token.EOF {
		if p.at(token.Semicolon) {
			p.next()
			continue
		}
		el := p.parseClassElement(&sawConstructor)
		if el != nil {
			elements = append(elements, el)
		}
	}

	p.classStack = p.classStack[:len(p.classStack)-1]
	p.popBlock()
	p.expect(token.RBrace)
	return &ast.ClassBody{Base: mk(start, p.cur.Pos), Body: elements}
}

func (p *Parser) currentClassScope() *scope.ClassScope {
	if len(p.classStack) == 0 {
		return nil
	}
	return p.classStack[len(p.classStack)-1]
}

// collectPrivateNames pre-scans the body's tokens for private-name
// declarations (`#x` immediately followed by `(` for a method/accessor,
// or by `=`/`;`/`}`/newline for a field) so a private-name *reference*
// earlier in the body (e.g. inside an earlier method that calls
// `this.#later()`) still resolves, rather than rejecting forward
// references outright.
func (p *Parser) collectPrivateNames(cs *scope.ClassScope) {
	depth := 0
	for i := 0; ; i++ {
		t := p.scn.PeekAt(i)
		if t.Kind == token.EOF {
			return
		}
		if t.IsPunct(token.LBrace) {
			depth++
		}
		if t.IsPunct(token.RBrace) {
			if depth == 0 {
				return
			}
			depth--
		}
		if depth == 0 && t.IsPunct(token.Hash) {
			if i > 0 {
				if prev := p.scn.PeekAt(i - 1); prev.IsPunct(token.Dot) || prev.IsPunct(token.QuestionDot) {
					continue
				}
			}
			name := p.scn.PeekAt(i + 1)
			after := p.scn.PeekAt(i + 2)
			if after.HasLineTerminator || after.IsPunct(token.LParen) || after.IsPunct(token.Assign) ||
				after.IsPunct(token.Semicolon) || after.IsPunct(token.RBrace) {
				cs.Declare(name.Name)
			}
		}
	}
}

// parseClassElement parses one method, accessor, or field, including its
// `static`/`async`/generator/`get`/`set` modifiers.
func (p *Parser) parseClassElement(sawConstructor *bool) ast.Node {
	start := p.cur.Pos

	static := false
	if p.atKeyword(token.KwStatic) && !p.peekEndsPropertyKey() {
		static = true
		p.next()
	}

	if (p.atKeyword(token.KwGet) || p.atKeyword(token.KwSet)) && !p.peekEndsPropertyKey() {
		kind := ast.MethodGet
		if p.atKeyword(token.KwSet) {
			kind = ast.MethodSet
		}
		p.next()
		key, computed := p.parsePropertyKey()
		if !computed && !static && isConstructorKey(key) {
			p.errorf(start, "class constructor may not be an accessor")
		}
		p.checkStaticPrototype(key, static, start)
		fn := p.parseFunctionTail(false, false)
		return &ast.MethodDefinition{Base: mk(start, p.cur.Pos), Key: key, Value: fn, MethodKind: kind, Computed: computed, Static: static}
	}

	async := false
	generator := false
	if p.atKeyword(token.KwAsync) && !p.peekEndsPropertyKey() {
		async = true
		p.next()
	}
	if p.at(token.Star) {
		generator = true
		p.next()
	}

	key, computed := p.parsePropertyKey()

	if p.at(token.LParen) {
		isCtor := !computed && !static && isConstructorKey(key)
		if isCtor {
			if *sawConstructor {
				p.errorf(start, "a class may only have one constructor")
			}
			*sawConstructor = true
			if generator || async {
				p.errorf(start, "class constructor may not be a generator or async method")
			}
		}
		p.checkStaticPrototype(key, static, start)
		fn := p.parseFunctionTail(generator, async)
		kind := ast.MethodNormal
		if isCtor {
			kind = ast.MethodConstructor
		}
		return &ast.MethodDefinition{Base: mk(start, p.cur.Pos), Key: key, Value: fn, MethodKind: kind, Computed: computed, Static: static}
	}

	// Field (property) definition, with an optional initializer,
	// terminated by ASI the same way a statement is.
	p.checkStaticPrototype(key, static, start)
	var value ast.Expression
	if p.at(token.Assign) {
		p.next()
		value = p.parseAssignmentExpression()
	}
	p.consumeStatementSemicolon()
	return &ast.PropertyDefinition{Base: mk(start, p.cur.Pos), Key: key, Value: value, Computed: computed, Static: static}
}

// peekEndsPropertyKey reports whether the next token would end a
// property/method definition at the current position, meaning a
// `static`/`get`/`set`/`async` keyword seen here is actually that
// element's own (shorthand) key rather than a modifier.
func (p *Parser) peekEndsPropertyKey() bool {
	next := p.scn.PeekAt(1)
	if next.IsPunct(token.LParen) || next.IsPunct(token.Assign) || next.IsPunct(token.Semicolon) ||
		next.IsPunct(token.RBrace) {
		return true
	}
	return false
}

// checkStaticPrototype enforces the rule that a static class element
// may not be named `prototype`.
func (p *Parser) checkStaticPrototype(key ast.Expression, static bool, pos token.Position) {
	if !static {
		return
	}
	if id, ok := key.(*ast.Identifier); ok && id.Name == "prototype" {
		p.errorf(pos, "class may not have static property named prototype")
	}
}

func isConstructorKey(key ast.Expression) bool {
	id, ok := key.(*ast.Identifier)
	return ok && id.Name == "constructor"
}
