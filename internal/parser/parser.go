// Package parser implements a recursive-descent, Pratt-style parser for
// the ECMAScript expression grammar plus a direct recursive-descent
// parser for statements, classes, and functions. It produces the
// internal/ast node set and threads an internal/scope tree alongside
// parsing, rather than recovering scope information in a separate
// post-parse walk.
package parser

import (
	"github.com/cwbudde/go-jscore/internal/ast"
	"github.com/cwbudde/go-jscore/internal/perrors"
	"github.com/cwbudde/go-jscore/internal/scanner"
	"github.com/cwbudde/go-jscore/internal/scope"
	"github.com/cwbudde/go-jscore/internal/token"
)

// Precedence levels for binary/logical operators, lowest to highest.
// ASSIGN sits above COALESCE (an assignment's RHS may itself use `??`),
// ARROW precedes everything (an arrow function is the lowest-precedence prefix-parsed
// production at the head of an AssignmentExpression), and EXPONENT sits
// above unary (right-associative, binds tighter than `*`/`/` but must
// not swallow a leading unary operator on its left operand).
const (
	_ int = iota
	LOWEST
	SEQUENCE // ,
	ASSIGN   // = += -= ... **= &&= ||= ??=
	ARROW    // => head
	CONDITIONAL
	COALESCE  // ??
	LOGOR     // ||
	LOGAND    // &&
	BITOR     // |
	BITXOR    // ^
	BITAND    // &
	EQUALITY  // == != === !==
	RELATION  // < > <= >= instanceof in
	SHIFT     // << >> >>>
	ADDITIVE  // + -
	MULT      // * / %
	EXPONENT  // **
	UNARY     // ! ~ + - typeof void delete await
	UPDATE    // ++ -- (postfix)
	CALL      // f(...)  a.b  a[b]  a?.b  new
)

var binaryPrecedence = map[token.PunctKind]int{
	token.QuestionQuestion: COALESCE,
	token.PipePipe:         LOGOR,
	token.AmpAmp:           LOGAND,
	token.Pipe:             BITOR,
	token.Caret:            BITXOR,
	token.Amp:              BITAND,
	token.EqEq:             EQUALITY,
	token.NotEq:             EQUALITY,
	token.EqEqEq:            EQUALITY,
	token.NotEqEq:           EQUALITY,
	token.Lt:                RELATION,
	token.Gt:                RELATION,
	token.LtEq:              RELATION,
	token.GtEq:              RELATION,
	token.Shl:               SHIFT,
	token.Shr:               SHIFT,
	token.UShr:              SHIFT,
	token.Plus:              ADDITIVE,
	token.Minus:             ADDITIVE,
	token.Star:              MULT,
	token.Slash:             MULT,
	token.Percent:           MULT,
	token.StarStar:          EXPONENT,
}

var assignmentOperators = map[token.PunctKind]bool{
	token.Assign: true, token.PlusAssign: true, token.MinusAssign: true,
	token.StarAssign: true, token.PercentAssign: true, token.StarStarAssign: true,
	token.ShlAssign: true, token.ShrAssign: true, token.UShrAssign: true,
	token.AmpAssign: true, token.PipeAssign: true, token.CaretAssign: true,
	token.AmpAmpAssign: true, token.PipePipeAssign: true, token.QuestionQuestionAssign: true,
}

// maxParseDepth bounds expression/statement recursion so malicious or
// accidentally-generated deeply nested input fails with a catchable
// RangeError instead of overflowing the Go call stack. One counter is
// checked on entry to statementListItem, parseStatement and
// parseAssignmentExpression only; a chain of prefix operators or of
// `new` recurses through parseUnaryExpression/parseNewExpression
// without passing those entry points and is not counted.
const maxParseDepth = 10000

// Parser is a single-use recursive-descent parser over one Scanner.
type Parser struct {
	scn    *scanner.Scanner
	source string

	cur token.Token

	errors        []*perrors.Diagnostic
	blockStack    []string
	depth         int
	depthReported bool
	cover         *coverState
	needSync      bool

	// labelSet tracks the labels in scope for break/continue validation;
	// iter marks labels attached to an iteration statement (the only
	// kind continue may target).
	labelSet []labelEntry

	// catchSimple maps a catch clause's block scope to its simple
	// (plain-identifier) parameter name, for the Annex-B allowance that
	// lets `var e` inside the catch body share the catch parameter's
	// name.
	catchSimple map[*scope.BlockScope]string

	isModule          bool
	strictFromOutside bool
	startLine         int
	startColumn       int

	fnScope       *scope.FunctionScope
	blockIdxStack []uint16
	blockIdxSave  [][]uint16
	classStack    []*scope.ClassScope

	// siteID numbers tagged-template call sites within one parse; the
	// bytecode layer keys its per-site cooked/raw array cache on it.
	siteID int

	inFunction bool
	inLoop     int
	inSwitch   int
	allowIn    bool
}

// Option configures a Parser at construction.
type Option func(*Parser)

// WithModuleSyntax parses input as a Module (always strict, allows
// import/export) instead of a Script.
func WithModuleSyntax(module bool) Option {
	return func(p *Parser) { p.isModule = module }
}

// WithStrictFromOutside seeds the parse as if it opened with a "use
// strict" directive, for an embedder that is itself strict-mode code
// calling eval/Function on this source.
func WithStrictFromOutside(strict bool) Option {
	return func(p *Parser) { p.strictFromOutside = strict }
}

// WithStartPosition offsets every reported line/column by an
// embedder-supplied starting point. Both are 1-based; values <= 0 are
// ignored.
func WithStartPosition(line, column int) Option {
	return func(p *Parser) { p.startLine, p.startColumn = line, column }
}

type labelEntry struct {
	name string
	iter bool
}

// New creates a Parser over source.
func New(source string, opts ...Option) *Parser {
	p := &Parser{source: source, allowIn: true, cover: newCoverState(), catchSimple: make(map[*scope.BlockScope]string)}
	for _, opt := range opts {
		opt(p)
	}
	strict := p.isModule || p.strictFromOutside
	scanOpts := []scanner.Option{scanner.WithModuleSyntax(p.isModule)}
	if strict {
		scanOpts = append(scanOpts, scanner.WithStrictMode(true))
	}
	if p.startLine > 0 || p.startColumn > 0 {
		scanOpts = append(scanOpts, scanner.WithStartPosition(p.startLine, p.startColumn))
	}
	p.scn = scanner.New(source, scanOpts...)
	p.cur = p.scn.Lookahead()
	p.fnScope = scope.NewFunctionScope(nil, "", scope.FunctionFlags{IsStrict: strict})
	p.fnScope.AddBlock(0, false)
	return p
}

// AllErrors returns every diagnostic this parser accumulated, combining
// its own with whatever the underlying scanner collected.
func (p *Parser) AllErrors() []*perrors.Diagnostic {
	all := append([]*perrors.Diagnostic{}, p.scn.Errors()...)
	return append(all, p.errors...)
}

func (p *Parser) next() token.Token {
	consumed := p.scn.Advance()
	p.cur = p.scn.Lookahead()
	return consumed
}

func (p *Parser) at(k token.PunctKind) bool        { return p.cur.IsPunct(k) }
func (p *Parser) atKeyword(k token.KeywordKind) bool { return p.cur.IsKeyword(k) }

func (p *Parser) expect(k token.PunctKind) (token.Token, bool) {
	if !p.at(k) {
		p.expectedError([]string{k.String()}, p.cur)
		return p.cur, false
	}
	return p.next(), true
}

func (p *Parser) expectKeyword(k token.KeywordKind) (token.Token, bool) {
	if !p.atKeyword(k) {
		p.expectedError([]string{k.String()}, p.cur)
		return p.cur, false
	}
	return p.next(), true
}

func (p *Parser) enter() bool {
	if p.depth >= maxParseDepth {
		if !p.depthReported { // report once, not at every frame of the unwind
			p.depthReported = true
			d := perrors.New(perrors.RangeError, p.cur.Pos, "too much recursion")
			d.Source = p.source
			p.errors = append(p.errors, d)
		}
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leave() { p.depth-- }

// isStrict reports whether the function currently being parsed (or the
// top-level script/module) is strict-mode code.
func (p *Parser) isStrict() bool { return p.fnScope.Flags.IsStrict }

// checkStrictLiteral raises the strict-mode early errors: a non-zero
// legacy octal escape inside a string, and a
// legacy-octal or NonOctalDecimalIntegerLiteral (leading "0" followed by
// another digit with no radix prefix) numeric literal.
func (p *Parser) checkStrictLiteral(tok token.Token) {
	if !p.isStrict() {
		return
	}
	switch tok.Kind {
	case token.StringLiteral:
		if tok.StringHasOctal {
			p.errorf(tok.Pos, "octal escape sequences are not allowed in strict mode")
		}
	case token.NumericLiteral:
		if tok.StartsWithZero && !tok.IsBigInt && len(tok.Literal) > 1 {
			c := tok.Literal[1]
			if c >= '0' && c <= '9' {
				p.errorf(tok.Pos, "octal literals are not allowed in strict mode")
			}
		}
	}
}

// applyDirective processes one statement of a possible directive
// prologue, switching into strict mode when the raw "use strict"
// directive is seen. Returns whether the prologue continues past stmt.
func (p *Parser) applyDirective(stmt ast.Statement, inPrologue bool) bool {
	if !inPrologue {
		return false
	}
	es, ok := stmt.(*ast.ExpressionStmt)
	if !ok || es.Directive == "" {
		return false
	}
	if es.Directive == `"use strict"` || es.Directive == `'use strict'` {
		p.applyUseStrict(es.Pos())
	}
	return true
}

// applyUseStrict switches the function being parsed into strict mode,
// enforcing the early errors strict entry triggers: the directive is
// illegal after a non-simple parameter list, and an already-parsed
// parameter named by a strict reserved word becomes an error
// retroactively.
func (p *Parser) applyUseStrict(pos token.Position) {
	if p.fnScope.Flags.HasParameterOtherThanIdentifier {
		p.errorf(pos, "illegal 'use strict' directive in function with non-simple parameter list")
	}
	p.fnScope.Flags.IsStrict = true
	p.scn.SetStrictMode(true)
	for _, name := range p.fnScope.Params {
		if token.StrictReservedWords[name] {
			p.errorf(pos, "parameter name '%s' is reserved in strict mode", name)
		}
	}
}

// currentBlock returns the block scope currently open in the function
// being parsed, creating the function's implicit top-level block on
// first use.
func (p *Parser) currentBlock() *scope.BlockScope {
	if len(p.blockIdxStack) == 0 {
		if len(p.fnScope.Blocks) == 0 {
			p.fnScope.AddBlock(0, false)
		}
		return p.fnScope.Blocks[0]
	}
	return p.fnScope.Blocks[p.blockIdxStack[len(p.blockIdxStack)-1]]
}

func (p *Parser) pushBlockScope() {
	// Even the first nested block of a function hangs off the
	// function's own top-level block (index 0, created lazily by
	// currentBlock), so walking ParentIndex from any block always
	// reaches the function body's block before stopping.
	parent := p.currentBlock()
	blk := p.fnScope.AddBlock(parent.Index, true)
	p.blockIdxStack = append(p.blockIdxStack, blk.Index)
}

func (p *Parser) popBlockScope() {
	p.blockIdxStack = p.blockIdxStack[:len(p.blockIdxStack)-1]
}

func (p *Parser) pushFunctionScope(flags scope.FunctionFlags) {
	// Strict mode is inherited: a function nested in strict code is
	// itself strict even without its own directive.
	if p.fnScope != nil && p.fnScope.Flags.IsStrict {
		flags.IsStrict = true
	}
	p.fnScope = scope.NewFunctionScope(p.fnScope, "", flags)
	p.blockIdxSave = append(p.blockIdxSave, p.blockIdxStack)
	p.blockIdxStack = nil
}

func (p *Parser) popFunctionScope() *scope.FunctionScope {
	fn := p.fnScope
	fn.Collapse()
	p.fnScope = fn.Parent
	// Restore the enclosing function's open-block stack, saved when
	// this scope was pushed.
	if n := len(p.blockIdxSave); n > 0 {
		p.blockIdxStack = p.blockIdxSave[n-1]
		p.blockIdxSave = p.blockIdxSave[:n-1]
	} else {
		p.blockIdxStack = nil
	}
	return fn
}

// ParseProgram parses source as a Script.
func ParseProgram(source string, opts ...Option) (*ast.Program, []*perrors.Diagnostic) {
	prog, _, errs := ParseProgramScope(source, opts...)
	return prog, errs
}

// ParseProgramScope parses source as a Script, additionally returning the
// root FunctionScope (the implicit top-level function scope) built
// alongside the AST, for callers (e.g. pkg/jscore) that want the scope
// tree without re-walking the program.
func ParseProgramScope(source string, opts ...Option) (*ast.Program, *scope.FunctionScope, []*perrors.Diagnostic) {
	opts = append(opts, WithModuleSyntax(false))
	p := New(source, opts...)
	startPos := p.cur.Pos
	var body []ast.Statement
	inPrologue := true
	for p.cur.Kind != token.EOF {
		stmt := p.parseStatementListItem()
		if stmt != nil {
			inPrologue = p.applyDirective(stmt, inPrologue)
			body = append(body, stmt)
		}
	}
	root := p.popFunctionScope()
	prog := &ast.Program{Body: body}
	prog.StartPos, prog.EndPos = startPos, p.cur.Pos
	return prog, root, p.AllErrors()
}

// ParseModule parses source as a Module (always strict; allows
// import/export declarations).
func ParseModule(source string, opts ...Option) (*ast.Module, []*perrors.Diagnostic) {
	mod, _, errs := ParseModuleScope(source, opts...)
	return mod, errs
}

// ParseModuleScope parses source as a Module, additionally returning the
// root FunctionScope. See ParseProgramScope.
func ParseModuleScope(source string, opts ...Option) (*ast.Module, *scope.FunctionScope, []*perrors.Diagnostic) {
	opts = append(opts, WithModuleSyntax(true))
	p := New(source, opts...)
	startPos := p.cur.Pos
	var body []ast.Statement
	for p.cur.Kind != token.EOF {
		stmt := p.parseModuleItem()
		if stmt != nil {
			body = append(body, stmt)
		}
	}
	root := p.popFunctionScope()
	mod := &ast.Module{Body: body}
	mod.StartPos, mod.EndPos = startPos, p.cur.Pos
	return mod, root, p.AllErrors()
}
