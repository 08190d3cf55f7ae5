package scope

import (
	"testing"
)

func TestFunctionScopeAddParamLength(t *testing.T) {
	fs := NewFunctionScope(nil, "f", FunctionFlags{})

	fs.AddParam("a", true)
	fs.AddParam("b", true)
	fs.AddParam("c", false) // destructuring or default: Length stops advancing here
	fs.AddParam("d", true)

	if fs.ParamCount != 4 {
		t.Fatalf("expected ParamCount 4, got %d", fs.ParamCount)
	}
	if fs.Length != 2 {
		t.Errorf("expected Length 2 (params before first non-simple), got %d", fs.Length)
	}
	if !fs.Flags.HasParameterOtherThanIdentifier {
		t.Error("expected HasParameterOtherThanIdentifier to be set")
	}
}

func TestFunctionScopeChildren(t *testing.T) {
	outer := NewFunctionScope(nil, "outer", FunctionFlags{})
	inner := NewFunctionScope(outer, "inner", FunctionFlags{IsArrow: true})

	if len(outer.Children) != 1 || outer.Children[0] != inner {
		t.Fatalf("expected inner to be registered as outer's only child")
	}
	if inner.Parent != outer {
		t.Error("expected inner.Parent == outer")
	}
}

func TestBlockScopeCollapseEmptyBlock(t *testing.T) {
	fs := NewFunctionScope(nil, "f", FunctionFlags{})
	top := fs.AddBlock(0, false)
	inner := fs.AddBlock(top.Index, true)
	inner.Use("x")
	inner.Use("y")

	fs.Collapse()

	if len(top.UsingNames) != 2 {
		t.Fatalf("expected top to inherit inner's using-names, got %v", top.UsingNames)
	}
	if len(fs.Blocks) != 1 || fs.Blocks[0] != top {
		t.Errorf("expected the collapsed block's record to be dropped, got %d blocks", len(fs.Blocks))
	}
}

func TestBlockScopeCollapseKeepsPerIterationBlock(t *testing.T) {
	fs := NewFunctionScope(nil, "f", FunctionFlags{})
	top := fs.AddBlock(0, false)
	body := fs.AddBlock(top.Index, true)
	body.PerIteration = true
	body.Use("i")

	fs.Collapse()

	if len(fs.Blocks) != 2 {
		t.Fatalf("expected the per-iteration body block to survive, got %d blocks", len(fs.Blocks))
	}
	if len(body.UsingNames) != 1 || body.UsingNames[0] != "i" {
		t.Errorf("expected the body block to keep its own using-names, got %v", body.UsingNames)
	}
	if len(top.UsingNames) != 0 {
		t.Errorf("expected top not to absorb a surviving block's using-names, got %v", top.UsingNames)
	}
}

func TestBlockScopeCollapsePreservesNonEmptyBlock(t *testing.T) {
	fs := NewFunctionScope(nil, "f", FunctionFlags{})
	top := fs.AddBlock(0, false)
	inner := fs.AddBlock(top.Index, true)
	inner.DeclareLexical("x", LexicalLet)
	inner.Use("x")

	fs.Collapse()

	if len(top.UsingNames) != 0 {
		t.Error("expected a block with a lexical declaration not to collapse")
	}
	if len(inner.Lexical) != 1 {
		t.Error("expected inner's lexical declaration to survive")
	}
}

func TestBlockScopeCollapseReparentsGrandchildren(t *testing.T) {
	fs := NewFunctionScope(nil, "f", FunctionFlags{})
	top := fs.AddBlock(0, false)
	middle := fs.AddBlock(top.Index, true) // empty: declares nothing, should collapse
	leaf := fs.AddBlock(middle.Index, true)
	leaf.DeclareLexical("z", LexicalConst)

	fs.Collapse()

	if leaf.ParentIndex != top.Index {
		t.Errorf("expected leaf to be reparented to top after middle collapsed, got parent index %d", leaf.ParentIndex)
	}
	if len(fs.Blocks) != 2 {
		t.Errorf("expected middle's record to be dropped, got %d blocks", len(fs.Blocks))
	}
}

func TestClassScopeResolveThroughEnclosing(t *testing.T) {
	outer := NewClassScope(nil)
	outer.Declare("secret")
	inner := NewClassScope(outer)

	if !inner.Resolve("secret") {
		t.Error("expected inner class scope to resolve a private name declared by an enclosing class")
	}
	if inner.Resolve("missing") {
		t.Error("expected Resolve to fail for an undeclared private name")
	}
}
