package ast

import (
	"encoding/json"
	"testing"

	"github.com/cwbudde/go-jscore/internal/token"
)

func TestKindStringCoversEveryConstant(t *testing.T) {
	// kindNames is a closed map (kind_string.go); every Kind constant
	// from KindProgram through KindExportAllDeclaration must have an
	// entry, or String() silently falls back to "Unknown".
	for k := KindProgram; k <= KindExportAllDeclaration; k++ {
		if s := k.String(); s == "Unknown" {
			t.Errorf("Kind %d has no name in kindNames", k)
		}
	}
}

func TestKindStringUnknown(t *testing.T) {
	var k Kind = 255
	if s := k.String(); s == "" {
		t.Error("an out-of-range Kind should still render something, not an empty string")
	}
}

func TestKindMarshalJSON(t *testing.T) {
	data, err := json.Marshal(KindBinaryExpr)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("dumped Kind is not a JSON string: %v", err)
	}
	if s != "BinaryExpression" {
		t.Errorf("got %q, want %q", s, "BinaryExpression")
	}
}

func TestBasePosEndTokenLiteral(t *testing.T) {
	start := token.Position{Line: 1, Column: 1, Offset: 0}
	end := token.Position{Line: 1, Column: 4, Offset: 3}
	id := NewIdentifier(start, end, "foo")

	if id.Pos() != start {
		t.Errorf("Pos() = %v, want %v", id.Pos(), start)
	}
	if id.End() != end {
		t.Errorf("End() = %v, want %v", id.End(), end)
	}
	if id.Kind() != KindIdentifier {
		t.Errorf("Kind() = %v, want KindIdentifier", id.Kind())
	}
}

func TestIdentifierSatisfiesExpressionAndPattern(t *testing.T) {
	pos := token.Position{Line: 1, Column: 1}
	id := NewIdentifier(pos, pos, "x")

	var _ Expression = id
	var _ Pattern = id
}

func TestMemberExprSatisfiesPattern(t *testing.T) {
	// `({x} = obj.y)` reinterprets a MemberExpr as an assignment target
	// (internal/parser/cover.go); MemberExpr must double as a Pattern
	// for that reinterpretation to typecheck.
	var _ Pattern = (*MemberExpr)(nil)
}

func TestPrivateNameIsExpressionNotPattern(t *testing.T) {
	pos := token.Position{Line: 1, Column: 1}
	pn := &PrivateName{Base: mkBase(pos, pos, "#p"), Name: "p"}
	var _ Expression = pn
	var n Node = pn
	if _, ok := n.(Pattern); ok {
		t.Error("PrivateName must not satisfy Pattern")
	}
	if pn.Kind() != KindPrivateName {
		t.Errorf("Kind() = %v, want KindPrivateName", pn.Kind())
	}
}
