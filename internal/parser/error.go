package parser

import (
	"fmt"

	"github.com/cwbudde/go-jscore/internal/perrors"
	"github.com/cwbudde/go-jscore/internal/token"
)

// StructuredDiagnostic wraps a plain *perrors.Diagnostic with parser
// context (expected tokens, what was actually found, the block the
// error happened inside). Most parse errors only need the plain
// diagnostic; this richer form is
// reserved for errors where naming what was expected meaningfully
// improves the message (missing closing delimiters, a token that could
// have started several different productions).
type StructuredDiagnostic struct {
	*perrors.Diagnostic
	Expected  []string
	Actual    string
	BlockKind string // "function", "class", "block", "switch", "try", ... or "" outside any of them
}

func (e *StructuredDiagnostic) Error() string {
	if len(e.Expected) == 0 {
		return e.Diagnostic.Error()
	}
	return fmt.Sprintf("%s (expected one of %v, found %s)", e.Diagnostic.Error(), e.Expected, e.Actual)
}

func (p *Parser) errorf(pos token.Position, template string, args ...string) *perrors.Diagnostic {
	d := perrors.New(perrors.SyntaxError, pos, template, args...)
	d.Source = p.source
	p.errors = append(p.errors, d)
	return d
}

func (p *Parser) expectedError(expected []string, actual token.Token) *StructuredDiagnostic {
	d := perrors.New(perrors.SyntaxError, actual.Pos, "unexpected token %s", describeToken(actual))
	d.Source = p.source
	se := &StructuredDiagnostic{Expected: expected, Actual: describeToken(actual), Diagnostic: d}
	if len(p.blockStack) > 0 {
		se.BlockKind = p.blockStack[len(p.blockStack)-1]
	}
	p.errors = append(p.errors, se.Diagnostic)
	p.needSync = true
	return se
}

func describeToken(t token.Token) string {
	if t.Kind == token.EOF {
		return "end of input"
	}
	if t.Literal != "" {
		return t.Literal
	}
	return t.Kind.String()
}

// Errors returns every diagnostic accumulated while parsing, in source
// order. The parser does not stop at the first error: it synchronizes
// (see synchronize in error_recovery.go) and keeps going so tooling can
// report more than one mistake per run.
func (p *Parser) Errors() []*perrors.Diagnostic { return p.errors }
