package jscore

import (
	"github.com/cwbudde/go-jscore/internal/perrors"
	"github.com/cwbudde/go-jscore/internal/scanner"
	"github.com/cwbudde/go-jscore/internal/token"
)

// LexOptions configures a standalone tokenize pass (`jscore lex`),
// independent of the parser.
type LexOptions struct {
	Module bool
	Strict bool
}

// LexResult is every token the scanner produced for one source buffer,
// plus whatever diagnostics it collected along the way.
type LexResult struct {
	Tokens []token.Token
	Errors []*perrors.Diagnostic
}

// Lex runs the scanner to completion, collecting every token up to and
// including EOF. This is a diagnostic/tooling entry point (`cmd/jscore
// lex`): the parser itself never materializes a full token slice; it
// holds the lookahead token plus whatever its PeekAt calls have
// buffered.
func Lex(source string, opts LexOptions) *LexResult {
	var sopts []scanner.Option
	sopts = append(sopts, scanner.WithModuleSyntax(opts.Module))
	if opts.Strict || opts.Module {
		sopts = append(sopts, scanner.WithStrictMode(true))
	}
	scn := scanner.New(source, sopts...)

	var toks []token.Token
	for {
		t := scn.Lookahead()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			break
		}
		scn.Advance()
	}
	return &LexResult{Tokens: toks, Errors: scn.Errors()}
}
