package parser

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-jscore/internal/ast"
	"github.com/cwbudde/go-jscore/internal/scope"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, errs := ParseProgram(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors for %q: %v", src, errs)
	}
	return prog
}

// TestLexicalShadowingInNestedBlockIsNotACollision checks that
// shadowing across nested blocks is not a collision.
func TestLexicalShadowingInNestedBlockIsNotACollision(t *testing.T) {
	_, root, errs := ParseProgramScope("let x = 1; { let x = 2; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(root.Blocks) == 0 || !blockDeclaresLexical(root.Blocks[0], "x") {
		t.Fatalf("expected the root block to declare lexical 'x', got %+v", root.Blocks)
	}
	found := false
	for _, b := range root.Blocks[1:] {
		if blockDeclaresLexical(b, "x") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a child block to also declare lexical 'x', got %+v", root.Blocks)
	}
}

// TestDuplicateLexicalDeclarationSameScopeErrors checks that a `var` and a
// `let` of the same name in the same function body collide.
func TestDuplicateLexicalDeclarationSameScopeErrors(t *testing.T) {
	_, errs := ParseProgram("function f() { var x; let x; }")
	if len(errs) == 0 {
		t.Fatal("expected a redeclaration SyntaxError")
	}
	found := false
	for _, e := range errs {
		if strings.Contains(e.Message, "x") && strings.Contains(e.Message, "already been declared") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a SyntaxError naming 'x' and stating it was already declared, got %v", errs)
	}
}

func TestVarCollidesWithLexicalInOuterBlock(t *testing.T) {
	// The nested `var x` hoists through the block that declared `let x`,
	// so the collision must be reported even though the two declarations
	// sit at different nesting depths.
	_, errs := ParseProgram("function f() { let x; { var x; } }")
	if len(errs) == 0 {
		t.Fatal("expected a redeclaration SyntaxError for a var hoisting through an outer let")
	}
	found := false
	for _, e := range errs {
		if strings.Contains(e.Message, "x") && strings.Contains(e.Message, "already been declared") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a SyntaxError naming 'x' and stating it was already declared, got %v", errs)
	}
}

func TestEmptyBlockLeavesNoResidualScope(t *testing.T) {
	// A block that binds nothing collapses away entirely: its record
	// must not survive in the function's block list, only its
	// using-names folded into the parent.
	_, root, errs := ParseProgramScope("var x = 1; { x; } { 1; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(root.Blocks) != 1 {
		t.Fatalf("expected only the function's top-level block to survive, got %d: %+v", len(root.Blocks), root.Blocks)
	}
	if !containsName(root.Blocks[0].UsingNames, "x") {
		t.Errorf("expected the collapsed block's use of 'x' to fold into the top block, got %v", root.Blocks[0].UsingNames)
	}
}

func TestDuplicateLexicalDeclarationReverseOrderAlsoErrors(t *testing.T) {
	_, errs := ParseProgram("function f() { let x; var x; }")
	if len(errs) == 0 {
		t.Fatal("expected a redeclaration SyntaxError regardless of declaration order")
	}
}

func TestRepeatedVarDeclarationIsLegal(t *testing.T) {
	// `var` redeclares the same function-scoped binding; this must not
	// trip the collision check that guards let/const.
	prog := parseOK(t, "var x; var x = 1;")
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Body))
	}
}

func TestCatchParameterDoesNotCollideWithOuterVar(t *testing.T) {
	parseOK(t, "var e; try {} catch (e) { let e2 = e; }")
}

// TestAsyncArrowForbiddenAcrossLineTerminator checks that a line terminator between `async` and its arrow parameter list
// forbids the async-arrow reading.
func TestAsyncArrowForbiddenAcrossLineTerminator(t *testing.T) {
	prog := parseOK(t, "async\nx => x")
	if len(prog.Body) != 2 {
		t.Fatalf("expected two statements (an ASI-terminated 'async' and a separate arrow), got %d", len(prog.Body))
	}
	first, ok := prog.Body[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("first statement is %T, want *ast.ExpressionStmt", prog.Body[0])
	}
	id, ok := first.Expression.(*ast.Identifier)
	if !ok || id.Name != "async" {
		t.Fatalf("expected the first statement to be the bare identifier 'async', got %#v", first.Expression)
	}
	second, ok := prog.Body[1].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.ExpressionStmt", prog.Body[1])
	}
	arrow, ok := second.Expression.(*ast.ArrowFunctionExpr)
	if !ok {
		t.Fatalf("expected the second statement to be an arrow function, got %#v", second.Expression)
	}
	if arrow.Async {
		t.Error("the arrow must not be async: the newline after 'async' breaks the async-arrow cover grammar")
	}
}

func TestAsyncArrowOnSameLineIsAsync(t *testing.T) {
	prog := parseOK(t, "async x => x")
	if len(prog.Body) != 1 {
		t.Fatalf("expected one statement, got %d", len(prog.Body))
	}
	stmt := prog.Body[0].(*ast.ExpressionStmt)
	arrow, ok := stmt.Expression.(*ast.ArrowFunctionExpr)
	if !ok || !arrow.Async {
		t.Fatalf("expected an async arrow, got %#v", stmt.Expression)
	}
}

// TestPrivateFieldAccess exercises private class fields
// and private-member access.
func TestPrivateFieldAccess(t *testing.T) {
	prog := parseOK(t, "class C { #p; get(o){ return o.#p; } }")
	decl, ok := prog.Body[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected a ClassDecl, got %T", prog.Body[0])
	}
	var sawField, sawAccess bool
	for _, member := range decl.Body.Body {
		switch m := member.(type) {
		case *ast.PropertyDefinition:
			if pn, ok := m.Key.(*ast.PrivateName); ok && pn.Name == "p" {
				sawField = true
			}
		case *ast.MethodDefinition:
			fn := m.Value
			block, ok := fn.Body.(*ast.BlockStmt)
			if !ok || len(block.Body) == 0 {
				continue
			}
			ret, ok := block.Body[0].(*ast.ReturnStmt)
			if !ok {
				continue
			}
			mem, ok := ret.Argument.(*ast.MemberExpr)
			if !ok {
				continue
			}
			if pn, ok := mem.Property.(*ast.PrivateName); ok && pn.Name == "p" {
				sawAccess = true
			}
		}
	}
	if !sawField {
		t.Error("expected to find the private field declaration '#p'")
	}
	if !sawAccess {
		t.Error("expected to find a member expression referencing the private field '#p'")
	}
}

// TestForOfHeadAndBodyBlocks checks that a for-of loop
// over a lexical binding gets its own head block distinct from the
// loop body's block, and the body block records a use of the
// per-iteration binding even though the body never references it.
func TestForOfHeadAndBodyBlocks(t *testing.T) {
	prog, root, errs := ParseProgramScope("for (let i of [1,2,3]) { }")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	stmt, ok := prog.Body[0].(*ast.ForOfStmt)
	if !ok {
		t.Fatalf("expected a ForOfStmt, got %T", prog.Body[0])
	}
	if _, ok := stmt.Left.(*ast.VariableDecl); !ok {
		t.Fatalf("expected Left to be a VariableDecl, got %T", stmt.Left)
	}

	var headBlock *scope.BlockScope
	for _, b := range root.Blocks {
		if blockDeclaresLexical(b, "i") {
			headBlock = b
		}
	}
	if headBlock == nil {
		t.Fatalf("expected a head block declaring lexical 'i', got %+v", root.Blocks)
	}

	bodyHasUse := false
	for _, b := range root.Blocks {
		if b != headBlock && containsName(b.UsingNames, "i") {
			bodyHasUse = true
		}
	}
	if !bodyHasUse {
		t.Errorf("expected a body block distinct from the head block to have 'i' in its using-names, got %+v", root.Blocks)
	}
}

func TestCoverInitializedNameRejectedAsExpression(t *testing.T) {
	// `{ a = 1 }` is only meaningful as a destructuring pattern; kept as
	// a plain ObjectLiteral it must raise the deferred
	// cover-initialized-name error.
	for _, src := range []string{
		"var x = { a = 1 };",
		"({ a = 1 });",
		"f({ a = 1 });",
	} {
		_, errs := ParseProgram(src)
		if len(errs) == 0 {
			t.Errorf("%q: expected a SyntaxError for a shorthand property initializer outside a pattern", src)
		}
	}
}

func TestCoverInitializedNameLegalWhenDestructured(t *testing.T) {
	for _, src := range []string{
		"({ a = 1 } = q);",
		"[{ a = 1 }] = q;",
		"var { a = 1 } = q;",
		"for ({ a = 1 } of q) { }",
		"(({ a = 1 }) => a)(q);",
	} {
		if _, errs := ParseProgram(src); len(errs) != 0 {
			t.Errorf("%q: unexpected errors: %v", src, errs)
		}
	}
}

func TestDestructuringBindingPatterns(t *testing.T) {
	prog := parseOK(t, "const { a, b: [c, ...d] } = obj;")
	decl := prog.Body[0].(*ast.VariableDecl)
	pat, ok := decl.Declarations[0].Target.(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("expected an ObjectPattern, got %T", decl.Declarations[0].Target)
	}
	if len(pat.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(pat.Properties))
	}
}

func TestClassExtendsAndSuperCall(t *testing.T) {
	prog := parseOK(t, "class B extends A { constructor() { super(); } }")
	decl := prog.Body[0].(*ast.ClassDecl)
	if decl.SuperClass == nil {
		t.Fatal("expected a SuperClass expression")
	}
}

func TestOptionalChainShortCircuitsWholeChain(t *testing.T) {
	// `a?.b.c` must not evaluate `.c` when `a` is nullish: the parser
	// encodes this with OptionalMemberExpr rather than flagging every
	// link, so a plain member access chained off an optional one must
	// still reach the parser as a distinct, inspectable node.
	prog := parseOK(t, "a?.b.c;")
	stmt := prog.Body[0].(*ast.ExpressionStmt)
	outer, ok := stmt.Expression.(*ast.OptionalMemberExpr)
	if !ok {
		t.Fatalf("expected the outer `.c` access to stay inside the optional chain, got %T", stmt.Expression)
	}
	if outer.Optional {
		t.Error("the `.c` link did not itself introduce `?.`; only the chain membership is inherited")
	}
	inner, ok := outer.Object.(*ast.OptionalMemberExpr)
	if !ok || !inner.Optional {
		t.Fatalf("expected the `?.b` link to be the optional one, got %#v", outer.Object)
	}
}

func TestTaggedTemplateAssignsStableSiteID(t *testing.T) {
	prog := parseOK(t, "tag`a${1}b`; tag`c${2}d`;")
	first := prog.Body[0].(*ast.ExpressionStmt).Expression.(*ast.TaggedTemplate)
	second := prog.Body[1].(*ast.ExpressionStmt).Expression.(*ast.TaggedTemplate)
	if first.SiteID == second.SiteID {
		t.Errorf("expected distinct call sites to get distinct SiteID values, both got %d", first.SiteID)
	}
}

func TestModuleImportExport(t *testing.T) {
	mod, errs := ParseModule(`import { a } from "m"; export const b = a;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(mod.Body) != 2 {
		t.Fatalf("expected 2 module items, got %d", len(mod.Body))
	}
}

func TestReturnOutsideFunctionIsIllegal(t *testing.T) {
	_, errs := ParseProgram("return 1;")
	if len(errs) == 0 {
		t.Error("expected an illegal-return error at top level")
	}
}

func TestNestedFunctionPreservesEnclosingBlockStack(t *testing.T) {
	// After g is parsed, `let b` must land in the same block as
	// `let a`, not fall back to the function body's top-level block.
	_, root, errs := ParseProgramScope("function f() { { let a; function g() {} let b; } }")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected one child scope for f, got %d", len(root.Children))
	}
	f := root.Children[0]
	found := false
	for _, b := range f.Blocks {
		if blockDeclaresLexical(b, "a") {
			if !blockDeclaresLexical(b, "b") {
				t.Errorf("expected 'b' to be declared in the same block as 'a', got %+v", b)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a block declaring 'a', got %+v", f.Blocks)
	}
}

func TestArrowParameterCoverForms(t *testing.T) {
	for _, src := range []string{
		"(a, b) => a + b;",
		"(a = 1) => a;",
		"(...a) => a;",
		"({a}) => a;",
		"([a]) => a;",
		"() => 1;",
	} {
		if _, errs := ParseProgram(src); len(errs) != 0 {
			t.Errorf("%q: unexpected errors: %v", src, errs)
		}
	}
	if _, errs := ParseProgram("(a, b) = 1;"); len(errs) == 0 {
		t.Error("(a, b) = 1 must not parse: a comma expression is not an assignment target")
	}
}

func TestParenthesizedAssignmentTargetIsLegal(t *testing.T) {
	parseOK(t, "(a) = 1;")
}

func TestUseStrictDirectiveSwitchesFunctionStrict(t *testing.T) {
	// The directive makes the body strict: a legacy octal literal after
	// it is rejected, while the same literal parses without it.
	if _, errs := ParseProgram(`function f() { "use strict"; return 010; }`); len(errs) == 0 {
		t.Error("expected a strict-mode octal error after a 'use strict' directive")
	}
	parseOK(t, "function f() { return 010; }")
	// Strict mode ends with the function: a sibling can still use octal.
	parseOK(t, `function f() { "use strict"; } var x = 010;`)
	// ...and is inherited by nested functions.
	if _, errs := ParseProgram(`function f() { "use strict"; function g() { return 010; } }`); len(errs) == 0 {
		t.Error("expected strict mode to be inherited by a nested function")
	}
}

func TestUseStrictDirectiveRejectedAfterNonSimpleParams(t *testing.T) {
	if _, errs := ParseProgram(`function f(a = 1) { "use strict"; }`); len(errs) == 0 {
		t.Error("expected a SyntaxError for 'use strict' after a non-simple parameter list")
	}
}

func TestStrictModeReservedBindingNames(t *testing.T) {
	if _, errs := ParseProgram(`"use strict"; var let = 1;`); len(errs) == 0 {
		t.Error("expected 'let' to be rejected as a binding name in strict code")
	}
	parseOK(t, "var let = 1;") // legal in sloppy code
	if _, errs := ParseProgram(`"use strict"; var eval = 1;`); len(errs) == 0 {
		t.Error("expected 'eval' to be rejected as a binding name in strict code")
	}
}

func TestStrictModeRejectsWith(t *testing.T) {
	if _, errs := ParseProgram(`"use strict"; with (o) { }`); len(errs) == 0 {
		t.Error("expected a SyntaxError for `with` in strict code")
	}
	parseOK(t, "with (o) { }")
}

func TestVarMayShadowLexicalFromOutsideItsBlock(t *testing.T) {
	// The let sits in a block the var does not hoist through, so there
	// is no collision in either direction.
	parseOK(t, "var x; { let x; }")
	parseOK(t, "{ let x; } var x;")
}

func TestAnnexBCatchParameterVarRedeclaration(t *testing.T) {
	// Annex B lets a `var` in the catch body share a simple catch
	// parameter's name.
	parseOK(t, "try {} catch (e) { var e; }")
	// A lexical redeclaration of the parameter is still an error.
	if _, errs := ParseProgram("try {} catch (e) { let e; }"); len(errs) == 0 {
		t.Error("expected `let e` to collide with the catch parameter")
	}
}

func TestLabelValidation(t *testing.T) {
	parseOK(t, "outer: for (;;) { break outer; }")
	parseOK(t, "outer: for (;;) { continue outer; }")
	if _, errs := ParseProgram("for (;;) { break missing; }"); len(errs) == 0 {
		t.Error("expected an undefined-label error for `break missing`")
	}
	if _, errs := ParseProgram("lbl: { continue lbl; }"); len(errs) == 0 {
		t.Error("expected an error: continue may only target a loop label")
	}
}

func TestConstructorMayNotBeAccessorOrGenerator(t *testing.T) {
	for _, src := range []string{
		"class C { get constructor() {} }",
		"class C { set constructor(v) {} }",
		"class C { *constructor() {} }",
		"class C { async constructor() {} }",
	} {
		if _, errs := ParseProgram(src); len(errs) == 0 {
			t.Errorf("%q: expected a constructor-restriction SyntaxError", src)
		}
	}
	// `static` and computed keys are not the constructor; a getter named
	// by them is fine.
	parseOK(t, "class C { static get constructor() { return 1; } }")
	parseOK(t, `class C { get ["constructor"]() { return 1; } }`)
}

func TestUnresolvedPrivateNameIsError(t *testing.T) {
	if _, errs := ParseProgram("class C { get(o) { return o.#missing; } }"); len(errs) == 0 {
		t.Error("expected an error for a private name no enclosing class declares")
	}
}

func TestUntaggedTemplateInvalidEscapeIsError(t *testing.T) {
	// An invalid escape is deferred by the scanner and raised by the
	// parser only when the template is untagged; a tag still receives
	// the raw text.
	if _, errs := ParseProgram("`bad \\u{ZZ} escape`;"); len(errs) == 0 {
		t.Error("expected an invalid-escape error in an untagged template")
	}
	parseOK(t, "tag`bad \\xZZ escape`;")
}

func TestTooMuchRecursionIsCaught(t *testing.T) {
	src := strings.Repeat("(", maxParseDepth+10) + "1" + strings.Repeat(")", maxParseDepth+10)
	_, errs := ParseProgram(src)
	if len(errs) == 0 {
		t.Error("expected a RangeError for runaway expression nesting")
	}
}
