package parser

import "github.com/cwbudde/go-jscore/internal/token"

// pushBlock/popBlock thread a stack of block-kind names through
// parsing, tagged with this grammar's block vocabulary
// ("function"/"class"/"block"/"switch"/"try"/"for-head").
// It exists purely for error messages: StructuredDiagnostic.BlockKind
// names the innermost block an error happened inside.
func (p *Parser) pushBlock(kind string) {
	p.blockStack = append(p.blockStack, kind)
}

func (p *Parser) popBlock() {
	if len(p.blockStack) > 0 {
		p.blockStack = p.blockStack[:len(p.blockStack)-1]
	}
}

// synchronize implements panic-mode error recovery: after reporting an
// error, skip tokens until one that plausibly starts a new statement,
// so a single syntax error doesn't cascade into dozens of spurious
// follow-on errors, using this grammar's statement-starter keywords and
// the semicolon-as-boundary heuristic.
func (p *Parser) synchronize() {
	for {
		tok := p.cur
		if tok.Kind == token.EOF {
			return
		}
		if tok.IsPunct(token.Semicolon) {
			p.next()
			return
		}
		if tok.IsPunct(token.RBrace) {
			return
		}
		if tok.Kind == token.Keyword {
			switch tok.KeywordKind {
			case token.KwVar, token.KwLet, token.KwConst, token.KwFunction,
				token.KwClass, token.KwIf, token.KwFor, token.KwWhile,
				token.KwReturn, token.KwThrow, token.KwTry, token.KwSwitch,
				token.KwBreak, token.KwContinue, token.KwDo:
				return
			}
		}
		p.next()
	}
}
