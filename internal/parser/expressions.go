package parser

import (
	"github.com/cwbudde/go-jscore/internal/ast"
	"github.com/cwbudde/go-jscore/internal/perrors"
	"github.com/cwbudde/go-jscore/internal/token"
)

// parseExpression parses a full Expression, including the comma
// operator, used wherever the grammar
// wants the widest expression form (expression statements, for-loop
// init/update clauses outside parens).
func (p *Parser) parseExpression() ast.Expression {
	first := p.parseAssignmentExpression()
	if !p.at(token.Comma) {
		return first
	}
	exprs := []ast.Expression{first}
	start := first.Pos()
	for p.at(token.Comma) {
		p.next()
		exprs = append(exprs, p.parseAssignmentExpression())
	}
	return &ast.SequenceExpr{Base: mk(start, p.cur.Pos), Expressions: exprs}
}

// AssignmentExpression covers destructuring assignment, the full
// compound-assignment operator family, the conditional (ternary)
// expression, and arrow-function detection via the cover grammar: a parenthesized expression or a bare identifier seen
// here may turn out to be an arrow function's parameter list once `=>`
// is seen, which is why tryParseArrowFunction gets the first chance at
// the input, before parseConditionalExpression and any binary operator
// parsing commit to it.
func (p *Parser) parseAssignmentExpression() ast.Expression {
	if !p.enter() {
		return &ast.Identifier{}
	}
	defer p.leave()

	// `yield` is an expression only inside a generator body; elsewhere
	// it stays an ordinary (contextual) identifier in sloppy code.
	if p.atKeyword(token.KwYield) && p.fnScope.Flags.IsGenerator {
		return p.parseYieldExpression()
	}

	if arrow := p.tryParseArrowFunction(); arrow != nil {
		return arrow
	}

	start := p.cur.Pos
	p.cover.isAssignmentTarget, p.cover.isBindingElement = true, true
	left := p.parseConditionalExpression()

	if p.cur.Kind == token.Punctuator && assignmentOperators[p.cur.Punct] {
		op := p.cur.Punct.String()
		p.next()
		if !p.cover.isAssignmentTarget {
			p.errorf(left.Pos(), "invalid assignment target")
		} else if _, err := p.reinterpretAsPattern(left); err != nil {
			p.errorf(left.Pos(), "invalid assignment target")
		} else {
			// The left side is a pattern now; a shorthand-with-default
			// recorded while parsing it is legitimate after all.
			p.cover.firstCoverInitializedNameError = nil
		}
		right := p.isolateCoverGrammar(p.parseAssignmentExpression)
		if op != "=" {
			// A compound assignment can never be a pattern element; a
			// plain `=` still can (`[a = 1] = q`, default values).
			p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
		}
		return &ast.AssignmentExpr{Base: mk(start, p.cur.Pos), Operator: op, Left: left, Right: right}
	}
	return left
}

// mk builds the span every node's embedded ast.Base carries. Defined
// once here and reused by every node-construction site across this
// package's files.
func mk(start, end token.Position) ast.Base { return ast.Base{StartPos: start, EndPos: end} }

func (p *Parser) parseYieldExpression() ast.Expression {
	start := p.cur.Pos
	p.next() // yield
	delegate := false
	if p.at(token.Star) {
		delegate = true
		p.next()
	}
	var arg ast.Expression
	if !p.cur.HasLineTerminator && canStartExpression(p.cur) {
		arg = p.parseAssignmentExpression()
	}
	return &ast.YieldExpr{Base: mk(start, p.cur.Pos), Argument: arg, Delegate: delegate}
}

func canStartExpression(t token.Token) bool {
	switch t.Kind {
	case token.EOF:
		return false
	}
	if t.Kind == token.Punctuator {
		switch t.Punct {
		case token.RParen, token.RBrace, token.RBracket, token.Semicolon, token.Comma, token.Colon:
			return false
		}
	}
	return true
}

func (p *Parser) parseConditionalExpression() ast.Expression {
	start := p.cur.Pos
	test := p.parseCoalesceExpression()
	if !p.at(token.Question) {
		return test
	}
	p.next()
	cons := p.parseAssignmentExpression()
	p.expect(token.Colon)
	alt := p.parseAssignmentExpression()
	p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
	return &ast.ConditionalExpr{Base: mk(start, p.cur.Pos), Test: test, Consequent: cons, Alternate: alt}
}

// parseCoalesceExpression handles `??`'s special rule that it cannot be
// mixed directly with `&&`/`||` without parentheses; since this parser
// doesn't reject that mixing syntactically (left as a later semantic
// check), it simply binds `??` at its own precedence band like any
// other LogicalExpr operator.
func (p *Parser) parseCoalesceExpression() ast.Expression {
	return p.parseBinaryExpression(COALESCE)
}

// parseBinaryExpression implements precedence-climbing over
// binaryPrecedence, a Pratt-style infix loop with a LogicalExpr split
// for short-circuit operators and right-associative handling for `**`.
func (p *Parser) parseBinaryExpression(minPrec int) ast.Expression {
	left := p.parseUnaryExpression()
	for {
		prec, op, ok := p.currentBinaryOp()
		if !ok || prec < minPrec {
			return left
		}
		start := left.Pos()
		p.next()
		nextMin := prec + 1
		if op == "**" {
			nextMin = prec // right-associative
		}
		right := p.parseBinaryExpression(nextMin)
		p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
		switch op {
		case "&&", "||", "??":
			left = &ast.LogicalExpr{Base: mk(start, p.cur.Pos), Operator: op, Left: left, Right: right}
		default:
			left = &ast.BinaryExpr{Base: mk(start, p.cur.Pos), Operator: op, Left: left, Right: right}
		}
	}
}

func (p *Parser) currentBinaryOp() (int, string, bool) {
	if p.cur.Kind == token.Punctuator {
		if prec, ok := binaryPrecedence[p.cur.Punct]; ok {
			return prec, p.cur.Punct.String(), true
		}
		return 0, "", false
	}
	if p.cur.Kind == token.Keyword {
		switch p.cur.KeywordKind {
		case token.KwInstanceof:
			return RELATION, "instanceof", true
		case token.KwIn:
			if p.allowIn {
				return RELATION, "in", true
			}
		}
	}
	return 0, "", false
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	start := p.cur.Pos
	if p.cur.Kind == token.Punctuator {
		switch p.cur.Punct {
		case token.Bang, token.Tilde, token.Plus, token.Minus:
			op := p.cur.Punct.String()
			p.next()
			arg := p.parseUnaryExpression()
			p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
			return &ast.UnaryExpr{Base: mk(start, p.cur.Pos), Operator: op, Argument: arg, Prefix: true}
		case token.PlusPlus, token.MinusMinus:
			op := p.cur.Punct.String()
			p.next()
			arg := p.parseUnaryExpression()
			p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
			return &ast.UpdateExpr{Base: mk(start, p.cur.Pos), Operator: op, Argument: arg, Prefix: true}
		}
	}
	if p.cur.Kind == token.Keyword {
		switch p.cur.KeywordKind {
		case token.KwTypeof, token.KwVoid, token.KwDelete:
			op := p.cur.KeywordKind.String()
			p.next()
			arg := p.parseUnaryExpression()
			p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
			return &ast.UnaryExpr{Base: mk(start, p.cur.Pos), Operator: op, Argument: arg, Prefix: true}
		case token.KwAwait:
			// `await` is an operator only in async function bodies and at
			// a module's top level; elsewhere it binds as an identifier.
			if p.fnScope.Flags.IsAsync || (p.isModule && !p.inFunction) {
				p.next()
				arg := p.parseUnaryExpression()
				p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
				return &ast.AwaitExpr{Base: mk(start, p.cur.Pos), Argument: arg}
			}
		}
	}
	return p.parseExponentExpression()
}

// parseExponentExpression handles `**`'s one grammar wrinkle: its left
// operand may not be an unparenthesized unary expression (`-x ** 2` is
// a SyntaxError), so exponent binds a postfix-update expression on the
// left rather than recursing back into parseUnaryExpression.
func (p *Parser) parseExponentExpression() ast.Expression {
	base := p.parseUpdateExpression()
	if p.at(token.StarStar) {
		start := base.Pos()
		p.next()
		right := p.parseUnaryExpression()
		p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
		return &ast.BinaryExpr{Base: mk(start, p.cur.Pos), Operator: "**", Left: base, Right: right}
	}
	return base
}

func (p *Parser) parseUpdateExpression() ast.Expression {
	expr := p.parseCallOrMemberExpression(true)
	if !p.cur.HasLineTerminator && p.cur.Kind == token.Punctuator &&
		(p.cur.Punct == token.PlusPlus || p.cur.Punct == token.MinusMinus) {
		op := p.cur.Punct.String()
		start := expr.Pos()
		p.next()
		p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
		return &ast.UpdateExpr{Base: mk(start, p.cur.Pos), Operator: op, Argument: expr, Prefix: false}
	}
	return expr
}

// parseCallOrMemberExpression parses a primary expression followed by
// any chain of `.prop`, `[expr]`, `(args)`, `?.`, and tagged-template
// suffixes. allowCall is false while parsing a `new` callee without
// parens (`new a.b.C` must not itself consume the call that follows).
func (p *Parser) parseCallOrMemberExpression(allowCall bool) ast.Expression {
	var expr ast.Expression
	if p.atKeyword(token.KwNew) {
		expr = p.parseNewExpression()
	} else {
		expr = p.parsePrimaryExpression()
	}
	sawOptional := false
	start := expr.Pos()
	for {
		switch {
		case p.at(token.Dot):
			p.next()
			var name ast.Expression
			if p.at(token.Hash) {
				name = p.parsePrivateNameRef()
			} else {
				name = p.parseIdentifierName()
			}
			if sawOptional {
				p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
				expr = &ast.OptionalMemberExpr{Base: mk(start, p.cur.Pos), Object: expr, Property: name, Computed: false}
			} else {
				p.cover.isAssignmentTarget, p.cover.isBindingElement = true, false
				expr = &ast.MemberExpr{Base: mk(start, p.cur.Pos), Object: expr, Property: name, Computed: false}
			}
		case p.at(token.QuestionDot):
			p.next()
			sawOptional = true
			p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
			switch {
			case p.at(token.LBracket):
				p.next()
				prop := p.parseExpression()
				p.expect(token.RBracket)
				expr = &ast.OptionalMemberExpr{Base: mk(start, p.cur.Pos), Object: expr, Property: prop, Computed: true, Optional: true}
			case p.at(token.LParen):
				args := p.parseArguments()
				expr = &ast.OptionalCallExpr{Base: mk(start, p.cur.Pos), Callee: expr, Arguments: args, Optional: true}
			default:
				var name ast.Expression
				if p.at(token.Hash) {
					name = p.parsePrivateNameRef()
				} else {
					name = p.parseIdentifierName()
				}
				expr = &ast.OptionalMemberExpr{Base: mk(start, p.cur.Pos), Object: expr, Property: name, Computed: false, Optional: true}
			}
		case p.at(token.LBracket):
			p.next()
			prop := p.parseExpression()
			p.expect(token.RBracket)
			if sawOptional {
				p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
				expr = &ast.OptionalMemberExpr{Base: mk(start, p.cur.Pos), Object: expr, Property: prop, Computed: true}
			} else {
				p.cover.isAssignmentTarget, p.cover.isBindingElement = true, false
				expr = &ast.MemberExpr{Base: mk(start, p.cur.Pos), Object: expr, Property: prop, Computed: true}
			}
		case p.at(token.LParen) && allowCall:
			args := p.parseArguments()
			p.cover.isAssignmentTarget, p.cover.isBindingElement = false, false
			if sawOptional {
				expr = &ast.OptionalCallExpr{Base: mk(start, p.cur.Pos), Callee: expr, Arguments: args}
			} else {
				expr = &ast.CallExpr{Base: mk(start, p.cur.Pos), Callee: expr, Arguments: args}
			}
		case p.cur.Kind == token.Template:
			tmpl := p.parseTemplateLiteral(true)
			expr = &ast.TaggedTemplate{Base: mk(start, p.cur.Pos), Tag: expr, Template: tmpl, SiteID: p.nextSiteID()}
		default:
			return expr
		}
	}
}

func (p *Parser) nextSiteID() int {
	p.siteID++
	return p.siteID
}

func (p *Parser) parseNewExpression() ast.Expression {
	start := p.cur.Pos
	p.next() // new
	if p.at(token.Dot) {
		p.next()
		prop := p.parseIdentifierName()
		return &ast.MetaProperty{Base: mk(start, p.cur.Pos), Meta: "new", Property: prop.Name}
	}
	callee := p.parseCallOrMemberExpression(false)
	var args []ast.Expression
	if p.at(token.LParen) {
		args = p.parseArguments()
	}
	return &ast.NewExpr{Base: mk(start, p.cur.Pos), Callee: callee, Arguments: args}
}

func (p *Parser) parseArguments() []ast.Expression {
	p.expect(token.LParen)
	var args []ast.Expression
	for !p.at(token.RParen) && p.cur.Kind != token.EOF {
		if p.at(token.Ellipsis) {
			start := p.cur.Pos
			p.next()
			arg := p.isolateCoverGrammar(p.parseAssignmentExpression)
			args = append(args, &ast.SpreadElement{Base: mk(start, p.cur.Pos), Argument: arg})
		} else {
			args = append(args, p.isolateCoverGrammar(p.parseAssignmentExpression))
		}
		if p.at(token.Comma) {
			p.next()
		} else {
			break
		}
	}
	p.expect(token.RParen)
	return args
}

func (p *Parser) parseIdentifierName() *ast.Identifier {
	start := p.cur.Pos
	name := p.cur.Name
	if p.cur.Kind == token.Keyword {
		name = p.cur.KeywordKind.String()
	}
	p.next()
	return &ast.Identifier{Base: mk(start, p.cur.Pos), Name: name}
}

func (p *Parser) parsePrimaryExpression() ast.Expression {
	start := p.cur.Pos
	switch p.cur.Kind {
	case token.Identifier:
		name := p.cur.Name
		p.next()
		id := &ast.Identifier{Base: mk(start, p.cur.Pos), Name: name}
		p.currentBlock().Use(name)
		return id
	case token.NumericLiteral:
		tok := p.cur
		p.checkStrictLiteral(tok)
		p.next()
		return &ast.NumericLiteral{Base: mk(start, p.cur.Pos), Value: tok.NumericValue, Raw: tok.NumericRaw, IsBigInt: tok.IsBigInt}
	case token.StringLiteral:
		tok := p.cur
		p.checkStrictLiteral(tok)
		p.next()
		return &ast.StringLiteral{Base: mk(start, p.cur.Pos), Value: tok.StringCooked, Raw: tok.StringRaw}
	case token.BooleanLiteral:
		tok := p.cur
		p.next()
		return &ast.BooleanLiteral{Base: mk(start, p.cur.Pos), Value: tok.BoolValue}
	case token.NullLiteral:
		p.next()
		return &ast.NullLiteral{Base: mk(start, p.cur.Pos)}
	case token.RegularExpression:
		tok := p.cur
		p.next()
		return &ast.RegexLiteral{Base: mk(start, p.cur.Pos), Pattern: tok.RegexBody, Flags: tok.RegexFlags}
	case token.Template:
		return p.parseTemplateLiteral(false)
	case token.Punctuator:
		switch p.cur.Punct {
		case token.Slash, token.SlashAssign:
			// The scanner tokenized `/` as division by default; parser
			// context says an expression was expected here, so rescan
			// it as a RegularExpressionLiteral.
			tok := p.rescanAsRegex()
			return &ast.RegexLiteral{Base: mk(start, p.cur.Pos), Pattern: tok.RegexBody, Flags: tok.RegexFlags}
		case token.LParen:
			return p.parseParenthesizedExpression()
		case token.LBracket:
			return p.parseArrayLiteral()
		case token.LBrace:
			return p.parseObjectLiteral()
		case token.Hash:
			// `#x in obj` brand-check position.
			return p.parsePrivateNameRef()
		}
	case token.Keyword:
		switch p.cur.KeywordKind {
		case token.KwThis:
			p.next()
			return &ast.ThisExpr{Base: mk(start, p.cur.Pos)}
		case token.KwSuper:
			p.next()
			return &ast.SuperExpr{Base: mk(start, p.cur.Pos)}
		case token.KwFunction:
			return p.parseFunctionExpression(false)
		case token.KwClass:
			return p.parseClassExpression()
		case token.KwAsync:
			if p.isAsyncFunctionAhead() {
				p.next()
				return p.parseFunctionExpression(true)
			}
			name := p.cur.KeywordKind.String()
			p.next()
			return &ast.Identifier{Base: mk(start, p.cur.Pos), Name: name}
		case token.KwImport:
			p.next()
			if p.at(token.Dot) {
				p.next()
				prop := p.parseIdentifierName()
				return &ast.MetaProperty{Base: mk(start, p.cur.Pos), Meta: "import", Property: prop.Name}
			}
			args := p.parseArguments()
			return &ast.CallExpr{Base: mk(start, p.cur.Pos), Callee: &ast.Identifier{Base: mk(start, start), Name: "import"}, Arguments: args}
		default:
			// A contextual keyword used as an ordinary identifier
			// (let, of, get, set, static, yield outside a generator). A
			// genuinely reserved word falls through to the error below.
			if isContextualKeyword(p.cur.KeywordKind) {
				name := p.cur.KeywordKind.String()
				p.next()
				id := &ast.Identifier{Base: mk(start, p.cur.Pos), Name: name}
				p.currentBlock().Use(name)
				return id
			}
		}
	}
	p.expectedError([]string{"expression"}, p.cur)
	p.next()
	return &ast.Identifier{Base: mk(start, p.cur.Pos), Name: ""}
}

// isContextualKeyword reports whether k is only reserved in specific
// grammatical contexts and otherwise binds as a plain identifier.
func isContextualKeyword(k token.KeywordKind) bool {
	switch k {
	case token.KwLet, token.KwOf, token.KwGet, token.KwSet, token.KwStatic,
		token.KwYield, token.KwAwait, token.KwAsync:
		return true
	}
	return false
}

// parsePrivateNameRef parses a `#name` reference and checks it resolves
// to a private name declared by this class or an enclosing one.
func (p *Parser) parsePrivateNameRef() *ast.PrivateName {
	start := p.cur.Pos
	p.next() // #
	name := p.cur.Name
	p.next()
	if cs := p.currentClassScope(); cs == nil || !cs.Resolve(name) {
		p.errorf(start, "private field '#%s' must be declared in an enclosing class", name)
	}
	return &ast.PrivateName{Base: mk(start, p.cur.Pos), Name: name}
}

func (p *Parser) rescanAsRegex() token.Token {
	slashPos := p.cur.Pos
	tok := p.scn.RescanRegex(slashPos)
	p.cur = p.scn.Lookahead()
	return tok
}

func (p *Parser) isAsyncFunctionAhead() bool {
	next := p.scn.PeekAt(1)
	return next.IsKeyword(token.KwFunction) && !p.cur.HasLineTerminator
}

func (p *Parser) parseParenthesizedExpression() ast.Expression {
	start := p.cur.Pos
	p.next() // (
	if p.at(token.RParen) {
		// Only valid as an empty arrow parameter list; the caller
		// (tryParseArrowFunction) handles this shape before we ever
		// get here in practice, but guard anyway.
		p.next()
		return &ast.ParenthesizedExpr{Base: mk(start, p.cur.Pos)}
	}
	inner := p.parseExpression()
	p.expect(token.RParen)
	return &ast.ParenthesizedExpr{Base: mk(start, p.cur.Pos), Inner: inner}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	start := p.cur.Pos
	p.next() // [
	var elements []ast.Expression
	for !p.at(token.RBracket) && p.cur.Kind != token.EOF {
		if p.at(token.Comma) {
			elements = append(elements, nil)
			p.next()
			continue
		}
		if p.at(token.Ellipsis) {
			spreadStart := p.cur.Pos
			p.next()
			arg := p.inheritCoverGrammar(p.parseAssignmentExpression)
			elements = append(elements, &ast.SpreadElement{Base: mk(spreadStart, p.cur.Pos), Argument: arg})
		} else {
			elements = append(elements, p.inheritCoverGrammar(p.parseAssignmentExpression))
		}
		if p.at(token.Comma) {
			p.next()
		} else {
			break
		}
	}
	p.expect(token.RBracket)
	return &ast.ArrayLiteral{Base: mk(start, p.cur.Pos), Elements: elements}
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	start := p.cur.Pos
	p.next() // {
	var props []ast.Expression
	for !p.at(token.RBrace) && p.cur.Kind != token.EOF {
		if p.at(token.Ellipsis) {
			spreadStart := p.cur.Pos
			p.next()
			arg := p.inheritCoverGrammar(p.parseAssignmentExpression)
			props = append(props, &ast.SpreadElement{Base: mk(spreadStart, p.cur.Pos), Argument: arg})
		} else {
			props = append(props, p.parseObjectProperty())
		}
		if p.at(token.Comma) {
			p.next()
		} else {
			break
		}
	}
	p.expect(token.RBrace)
	return &ast.ObjectLiteral{Base: mk(start, p.cur.Pos), Properties: props}
}

func (p *Parser) parseObjectProperty() ast.Expression {
	start := p.cur.Pos

	if (p.atKeyword(token.KwGet) || p.atKeyword(token.KwSet)) && !p.peekStartsPropertyEnd() {
		kind := ast.PropertyGet
		if p.atKeyword(token.KwSet) {
			kind = ast.PropertySet
		}
		p.next()
		key, computed := p.parsePropertyKey()
		fn := p.parseFunctionTail(false, false)
		return &ast.Property{Base: mk(start, p.cur.Pos), Key: key, Value: fn, Computed: computed, PropKind: kind}
	}

	async := false
	generator := false
	if p.atKeyword(token.KwAsync) && !p.peekStartsPropertyEnd() {
		async = true
		p.next()
	}
	if p.at(token.Star) {
		generator = true
		p.next()
	}

	key, computed := p.parsePropertyKey()

	if p.at(token.LParen) {
		fn := p.parseFunctionTail(generator, async)
		return &ast.Property{Base: mk(start, p.cur.Pos), Key: key, Value: fn, Computed: computed, PropKind: ast.PropertyMethod}
	}
	if p.at(token.Colon) {
		p.next()
		val := p.inheritCoverGrammar(p.parseAssignmentExpression)
		return &ast.Property{Base: mk(start, p.cur.Pos), Key: key, Value: val, Computed: computed, PropKind: ast.PropertyInit}
	}
	// Shorthand: `{ a }` or `{ a = default }`. The latter is only valid
	// once reinterpreted as a destructuring pattern (cover.go's
	// reinterpretAsPattern accepts an AssignmentExpr Value for exactly
	// this reason), so it records the deferred cover-initialized-name
	// error that an isolating context raises if no reinterpretation
	// ever happens.
	id, _ := key.(*ast.Identifier)
	if p.at(token.Assign) {
		p.next()
		def := p.isolateCoverGrammar(p.parseAssignmentExpression)
		if p.cover.firstCoverInitializedNameError == nil {
			d := perrors.New(perrors.SyntaxError, start, "invalid shorthand property initializer")
			d.Source = p.source
			p.cover.firstCoverInitializedNameError = d
		}
		val := ast.Expression(&ast.AssignmentExpr{Base: mk(start, p.cur.Pos), Operator: "=", Left: id, Right: def})
		return &ast.Property{Base: mk(start, p.cur.Pos), Key: key, Value: val, Computed: computed, Shorthand: true, PropKind: ast.PropertyInit}
	}
	return &ast.Property{Base: mk(start, p.cur.Pos), Key: key, Value: id, Computed: computed, Shorthand: true, PropKind: ast.PropertyInit}
}

// peekStartsPropertyEnd reports whether the token after the current
// one would end the property (`,`, `}`, `(`, `:`, `=`), meaning `get`/
// `set`/`async` here is the property's own (shorthand) key rather than
// an accessor/async marker.
func (p *Parser) peekStartsPropertyEnd() bool {
	next := p.scn.PeekAt(1)
	if next.Kind != token.Punctuator {
		return false
	}
	switch next.Punct {
	case token.Comma, token.RBrace, token.LParen, token.Colon, token.Assign:
		return true
	}
	return false
}

func (p *Parser) parsePropertyKey() (ast.Expression, bool) {
	start := p.cur.Pos
	if p.at(token.LBracket) {
		p.next()
		key := p.isolateCoverGrammar(p.parseAssignmentExpression)
		p.expect(token.RBracket)
		return key, true
	}
	if p.at(token.Hash) {
		p.next()
		name := p.cur.Name
		p.next()
		return &ast.PrivateName{Base: mk(start, p.cur.Pos), Name: name}, false
	}
	switch p.cur.Kind {
	case token.StringLiteral:
		tok := p.cur
		p.checkStrictLiteral(tok)
		p.next()
		return &ast.StringLiteral{Base: mk(start, p.cur.Pos), Value: tok.StringCooked, Raw: tok.StringRaw}, false
	case token.NumericLiteral:
		tok := p.cur
		p.checkStrictLiteral(tok)
		p.next()
		return &ast.NumericLiteral{Base: mk(start, p.cur.Pos), Value: tok.NumericValue, Raw: tok.NumericRaw}, false
	default:
		return p.parseIdentifierName(), false
	}
}

// parseTemplateLiteral parses a template literal. tagged reports whether
// a tag expression precedes it: an escape-sequence error deferred by the
// scanner (token.TemplatePart.DeferredError) is discarded for a tagged
// template (the tag still receives the raw strings) but raised for an
// untagged one.
func (p *Parser) parseTemplateLiteral(tagged bool) *ast.TemplateLiteral {
	start := p.cur.Pos
	var quasis []ast.TemplateElement
	var exprs []ast.Expression
	tok := p.cur
	p.checkTemplatePart(tok, tagged)
	quasis = append(quasis, templateElementFromToken(tok))
	tail := tok.Template != nil && tok.Template.Tail
	p.next()
	for !tail {
		exprs = append(exprs, p.parseExpression())
		if !p.at(token.RBrace) {
			p.expectedError([]string{"}"}, p.cur)
			break
		}
		next := p.scn.RescanTemplateTail()
		p.cur = p.scn.Lookahead()
		p.checkTemplatePart(next, tagged)
		quasis = append(quasis, templateElementFromToken(next))
		tail = next.Template != nil && next.Template.Tail
	}
	return &ast.TemplateLiteral{Base: mk(start, p.cur.Pos), Quasis: quasis, Expressions: exprs}
}

func (p *Parser) checkTemplatePart(tok token.Token, tagged bool) {
	if tagged || tok.Template == nil || tok.Template.DeferredError == "" {
		return
	}
	p.errorf(tok.Pos, tok.Template.DeferredError)
}

func templateElementFromToken(tok token.Token) ast.TemplateElement {
	if tok.Template == nil {
		return ast.TemplateElement{}
	}
	return ast.TemplateElement{
		Cooked: tok.Template.Cooked, Raw: tok.Template.Raw,
		CookedValid: tok.Template.CookedValid, Tail: tok.Template.Tail,
	}
}
