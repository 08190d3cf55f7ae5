package jscore

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cwbudde/go-jscore/internal/perrors"
)

func TestParseProgramOK(t *testing.T) {
	result := ParseProgram("let x = 1; { let x = 2; }")
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Program == nil {
		t.Fatal("expected non-nil Program")
	}
	if result.Module != nil {
		t.Fatal("expected nil Module for Script mode")
	}
	if result.Scope == nil {
		t.Fatal("expected a root scope tree")
	}
	if n := result.Node(); n != result.Program {
		t.Errorf("Node() should return Program in Script mode")
	}
}

func TestParseProgramDuplicateLexicalDeclarationErrors(t *testing.T) {
	result := ParseProgram("function f() { var x; let x; }")
	if result.OK() {
		t.Fatal("expected a duplicate-declaration SyntaxError")
	}
	found := false
	for _, d := range result.Errors {
		if d.Kind == perrors.SyntaxError && strings.Contains(d.Message, "x") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a SyntaxError mentioning %q, got %v", "x", result.Errors)
	}
}

func TestParseModule(t *testing.T) {
	result := Parse(`import { a } from "m"; export const b = a;`, ParseOptions{Mode: Module})
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Module == nil {
		t.Fatal("expected non-nil Module")
	}
	if result.Program != nil {
		t.Fatal("expected nil Program for Module mode")
	}
}

func TestParseStrictFromOutside(t *testing.T) {
	result := Parse("var x = 1;", ParseOptions{StrictFromOutside: true})
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if !result.Scope.Flags.IsStrict {
		t.Error("expected StrictFromOutside to mark the root scope strict")
	}

	withOctal := Parse("var x = 010;", ParseOptions{StrictFromOutside: true})
	if withOctal.OK() {
		t.Error("expected a strict-mode legacy octal SyntaxError under StrictFromOutside")
	}
}

func TestParseStartPosition(t *testing.T) {
	result := Parse("1 +;", ParseOptions{StartLine: 5, StartColumn: 10})
	if result.OK() {
		t.Fatal("expected a SyntaxError")
	}
	if result.Errors[0].Pos.Line != 5 {
		t.Errorf("expected error on line 5, got %d", result.Errors[0].Pos.Line)
	}
}

func TestLexTokenStream(t *testing.T) {
	result := Lex("let x = 1;", LexOptions{})
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected lex errors: %v", result.Errors)
	}
	if len(result.Tokens) == 0 {
		t.Fatal("expected at least one token")
	}
	if result.Tokens[len(result.Tokens)-1].String() == "" {
		t.Fatal("expected EOF token to render a non-empty description")
	}
}

func TestDumpASTRoundTripsAsJSON(t *testing.T) {
	result := ParseProgram("const x = 1 + 2;")
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	data, err := DumpAST(result.Node(), FormatJSON, "")
	if err != nil {
		t.Fatalf("DumpAST: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("dumped AST is not valid JSON: %v\n%s", err, data)
	}
	if decoded["type"] != "Program" {
		t.Errorf("expected top-level type Program, got %v", decoded["type"])
	}
}

func TestDumpASTSelect(t *testing.T) {
	result := ParseProgram("1 + 2;")
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	data, err := DumpAST(result.Node(), FormatJSON, "Body.0.type")
	if err != nil {
		t.Fatalf("DumpAST: %v", err)
	}
	if strings.Trim(string(data), `"`) != "ExpressionStatement" {
		t.Errorf(`expected "ExpressionStatement", got %s`, data)
	}
}

func TestDumpScopeTree(t *testing.T) {
	result := ParseProgram("function f(a, b = 1) { let x; }")
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	data, err := DumpScopeTree(result.Scope, FormatJSON)
	if err != nil {
		t.Fatalf("DumpScopeTree: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("dumped scope tree is not valid JSON: %v\n%s", err, data)
	}
	children, _ := decoded["children"].([]interface{})
	if len(children) != 1 {
		t.Fatalf("expected one child function scope for f, got %d", len(children))
	}
}
