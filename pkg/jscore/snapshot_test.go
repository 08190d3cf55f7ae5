package jscore

import (
	"bytes"
	"testing"

	"github.com/cwbudde/go-jscore/internal/bytecode"
	"github.com/cwbudde/go-jscore/internal/value"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestDumpASTSnapshot pins the JSON AST dump of a representative
// program against a recorded snapshot: a snapshot catches an
// accidental shape change in DumpAST that a narrower field-by-field
// assertion would miss.
func TestDumpASTSnapshot(t *testing.T) {
	result := ParseProgram("function add(a, b = 1) { return a + b; }\nconst r = add(1, 2);")
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	data, err := DumpAST(result.Node(), FormatJSON, "")
	if err != nil {
		t.Fatalf("DumpAST: %v", err)
	}
	snaps.MatchSnapshot(t, "ast", string(data))
}

// TestDumpScopeTreeSnapshot pins the scope-tree JSON dump for a
// function with a nested lexical block, asserting the whole shape
// (indices, parent links, using-names) in one comparison.
func TestDumpScopeTreeSnapshot(t *testing.T) {
	result := ParseProgram("function outer(x) { let y = x; { let z = y + 1; } }")
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	data, err := DumpScopeTree(result.Scope, FormatJSON)
	if err != nil {
		t.Fatalf("DumpScopeTree: %v", err)
	}
	snaps.MatchSnapshot(t, "scope_tree", string(data))
}

// TestDisassemblySnapshot pins a disassembly listing against a
// recorded snapshot, the same "record the rendered text, diff future
// runs against it" idiom as the two dump snapshots above.
func TestDisassemblySnapshot(t *testing.T) {
	b := bytecode.NewByteCodeBlock("snapshot")
	defer b.Release()

	lit := b.AddLiteral(value.FromInt32(42))
	b.Emit1(bytecode.OpLoadLiteral, lit)
	b.Emit0(bytecode.OpLoadUndefined)
	b.Emit0(bytecode.OpReturn)
	if err := b.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	var out bytes.Buffer
	bytecode.NewDisassembler(b, &out).Disassemble()
	snaps.MatchSnapshot(t, "disassembly", out.String())
}
