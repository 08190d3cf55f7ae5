// Package perrors implements the single propagating error channel shared
// by the scanner and the parser.
package perrors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-jscore/internal/token"
)

// Kind is the closed set of error taxonomy codes a diagnostic may
// carry. Downstream bytecode-emission errors, though out of this
// core's scope to produce, are expected to reuse the same set.
type Kind string

const (
	SyntaxError    Kind = "SyntaxError"
	ReferenceError Kind = "ReferenceError"
	TypeError      Kind = "TypeError"
	RangeError     Kind = "RangeError"
	URIError       Kind = "URIError"
	EvalError      Kind = "EvalError"
)

// Diagnostic is the uniform thrown/returned error every scanner and
// parser failure path produces: a message with up to two argument
// substitutions, an optional longer description, a source position,
// and an error code, with a Kind and %s-style templated messages
// instead of a single free-form string.
type Diagnostic struct {
	Kind        Kind
	Message     string
	Description string
	Pos         token.Position
	Source      string // full source text, for caret-context formatting
	File        string

	Suggestions []string
	Notes       []string
}

// New builds a Diagnostic, substituting up to two %s placeholders in
// template.
func New(kind Kind, pos token.Position, template string, args ...string) *Diagnostic {
	msg := template
	for _, a := range args {
		msg = strings.Replace(msg, "%s", a, 1)
	}
	return &Diagnostic{Kind: kind, Message: msg, Pos: pos}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic with a source-context caret.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", d.Kind, d.File, d.Pos.Line, d.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d\n", d.Kind, d.Pos.Line, d.Pos.Column)
	}

	if line := d.sourceLine(d.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	for _, s := range d.Suggestions {
		sb.WriteString("\n  help: ")
		sb.WriteString(s)
	}
	for _, n := range d.Notes {
		sb.WriteString("\n  note: ")
		sb.WriteString(n)
	}

	return sb.String()
}

func (d *Diagnostic) sourceLine(lineNum int) string {
	if d.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// WithSuggestion appends a suggestion and returns the receiver for
// chaining.
func (d *Diagnostic) WithSuggestion(s string) *Diagnostic {
	d.Suggestions = append(d.Suggestions, s)
	return d
}

// WithNote appends a note and returns the receiver for chaining.
func (d *Diagnostic) WithNote(n string) *Diagnostic {
	d.Notes = append(d.Notes, n)
	return d
}

// AsDiagnostic unwraps a generic error to *Diagnostic, if it is one.
func AsDiagnostic(err error) (*Diagnostic, bool) {
	d, ok := err.(*Diagnostic)
	return d, ok
}
