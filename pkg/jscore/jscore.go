// Package jscore is the embedder-facing façade over this module's
// ECMAScript front end: the scanner and the parser/scope builder. It does
// not add behavior of its own beyond option plumbing, dump helpers and the
// module-request loader LoadRequests — every parse/scan path
// runs through internal/scanner and internal/parser exactly as they are,
// as a thin public package sitting in front of internal/*.
package jscore

import (
	"github.com/cwbudde/go-jscore/internal/ast"
	"github.com/cwbudde/go-jscore/internal/parser"
	"github.com/cwbudde/go-jscore/internal/perrors"
	"github.com/cwbudde/go-jscore/internal/scope"
)

// Mode selects Script or Module grammar entry point.
type Mode int

const (
	Script Mode = iota
	Module
)

// ParseOptions carries an embedder's input for an eval/Function
// constructor call site: a mode, a starting (line, column) for error
// reporting, and a strict-from-outside flag. Each field actually changes
// the resulting parse (see Parse below); fields an embedder might
// reasonably also supply (whether the call site sits inside a `with`,
// or is itself in a position where `super`/`new.target`/`arguments`
// would be legal) are deliberately absent rather than present and
// silently ignored: this front end has no static-semantics pass
// enforcing where those forms may appear, so threading such flags
// through would only decorate the struct without changing behavior.
type ParseOptions struct {
	Mode Mode

	// StartLine and StartColumn offset reported diagnostic/node
	// positions to match where this source sits in a larger embedder
	// buffer. Both are 1-based; zero means "start at 1:1".
	StartLine   int
	StartColumn int

	StrictFromOutside bool
}

// Result is the output of a successful or failed parse: either a
// Program/Module AST node plus its root scope tree, or a set of
// diagnostics.
type Result struct {
	Program *ast.Program // nil when Options.Mode == Module
	Module  *ast.Module  // nil when Options.Mode == Script
	Scope   *scope.FunctionScope
	Errors  []*perrors.Diagnostic

	// Records is the module's static import/export interface; nil for
	// Script parses and for Module parses that produced diagnostics.
	Records *ast.ModuleRecords
}

// Node returns the parsed root node (*ast.Program or *ast.Module).
func (r *Result) Node() ast.Node {
	if r.Module != nil {
		return r.Module
	}
	return r.Program
}

// OK reports whether the parse produced no diagnostics.
func (r *Result) OK() bool { return len(r.Errors) == 0 }

// Parse runs the front end over source per opts.Mode, returning the AST,
// its root scope tree, and any diagnostics.
func Parse(source string, opts ParseOptions) *Result {
	var popts []parser.Option
	if opts.StrictFromOutside {
		popts = append(popts, parser.WithStrictFromOutside(true))
	}
	if opts.StartLine > 0 || opts.StartColumn > 0 {
		popts = append(popts, parser.WithStartPosition(opts.StartLine, opts.StartColumn))
	}
	if opts.Mode == Module {
		mod, root, errs := parser.ParseModuleScope(source, popts...)
		res := &Result{Module: mod, Scope: root, Errors: errs}
		if mod != nil && len(errs) == 0 {
			res.Records = mod.Records()
		}
		return res
	}
	prog, root, errs := parser.ParseProgramScope(source, popts...)
	return &Result{Program: prog, Scope: root, Errors: errs}
}

// ParseProgram is a convenience wrapper around Parse for Script mode.
func ParseProgram(source string) *Result {
	return Parse(source, ParseOptions{Mode: Script})
}

// ParseModule is a convenience wrapper around Parse for Module mode.
func ParseModule(source string) *Result {
	return Parse(source, ParseOptions{Mode: Module})
}
