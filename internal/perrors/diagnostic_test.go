package perrors

import (
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/go-jscore/internal/token"
)

func TestNewSubstitutesPlaceholders(t *testing.T) {
	d := New(SyntaxError, token.Position{Line: 1, Column: 1}, "Identifier '%s' has already been declared", "x")
	if d.Message != "Identifier 'x' has already been declared" {
		t.Errorf("got %q", d.Message)
	}
	if d.Kind != SyntaxError {
		t.Errorf("Kind = %v, want SyntaxError", d.Kind)
	}
}

func TestNewSubstitutesUpToTwoPlaceholders(t *testing.T) {
	d := New(TypeError, token.Position{}, "cannot convert %s to %s", "object", "primitive value")
	if d.Message != "cannot convert object to primitive value" {
		t.Errorf("got %q", d.Message)
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = New(RangeError, token.Position{Line: 3, Column: 5}, "too much recursion")
	if !strings.Contains(err.Error(), "RangeError") {
		t.Errorf("Error() = %q, expected it to mention the Kind", err.Error())
	}
}

func TestFormatIncludesSourceContextCaret(t *testing.T) {
	d := New(SyntaxError, token.Position{Line: 2, Column: 5}, "unexpected token")
	d.Source = "let x = 1;\nlet y = ;"
	out := d.Format(false)
	if !strings.Contains(out, "let y = ;") {
		t.Errorf("expected the offending source line in output, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("expected a caret pointing at the column, got:\n%s", out)
	}
}

func TestFormatWithoutSourceOmitsContext(t *testing.T) {
	d := New(SyntaxError, token.Position{Line: 1, Column: 1}, "boom")
	out := d.Format(false)
	if strings.Contains(out, "|") {
		t.Errorf("expected no source-context gutter when Source is unset, got:\n%s", out)
	}
}

func TestWithSuggestionAndWithNoteChainAndAppear(t *testing.T) {
	d := New(SyntaxError, token.Position{Line: 1, Column: 1}, "missing semicolon")
	d.WithSuggestion("insert ';' here").WithNote("automatic semicolon insertion does not apply here")
	out := d.Format(false)
	if !strings.Contains(out, "help: insert ';' here") {
		t.Errorf("expected suggestion in output, got:\n%s", out)
	}
	if !strings.Contains(out, "note: automatic semicolon insertion does not apply here") {
		t.Errorf("expected note in output, got:\n%s", out)
	}
}

func TestAsDiagnosticUnwrapsAndRejectsOtherErrors(t *testing.T) {
	d := New(SyntaxError, token.Position{}, "boom")
	if got, ok := AsDiagnostic(d); !ok || got != d {
		t.Errorf("expected AsDiagnostic to unwrap a *Diagnostic")
	}
	if _, ok := AsDiagnostic(errors.New("not a diagnostic")); ok {
		t.Error("expected AsDiagnostic to reject a non-Diagnostic error")
	}
}

func TestFormatWithFileNamesFileAndPosition(t *testing.T) {
	d := New(SyntaxError, token.Position{Line: 7, Column: 2}, "boom")
	d.File = "main.js"
	out := d.Format(false)
	if !strings.Contains(out, "main.js:7:2") {
		t.Errorf("expected file:line:col in output, got:\n%s", out)
	}
}
