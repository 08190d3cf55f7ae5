package scanner

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-jscore/internal/token"
)

func collectTokens(t *testing.T, input string, opts ...Option) []token.Token {
	t.Helper()
	s := New(input, opts...)
	var toks []token.Token
	for {
		tok := s.Advance()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestNextTokenBasic(t *testing.T) {
	input := `var x = 5;
	x = x + 10;
	`

	tests := []struct {
		kind    token.Kind
		literal string
	}{
		{token.Keyword, "var"},
		{token.Identifier, "x"},
		{token.Punctuator, "="},
		{token.NumericLiteral, "5"},
		{token.Punctuator, ";"},
		{token.Identifier, "x"},
		{token.Punctuator, "="},
		{token.Identifier, "x"},
		{token.Punctuator, "+"},
		{token.NumericLiteral, "10"},
		{token.Punctuator, ";"},
		{token.EOF, ""},
	}

	toks := collectTokens(t, input)
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(tests))
	}
	for i, tt := range tests {
		if toks[i].Kind != tt.kind {
			t.Errorf("tokens[%d] - kind wrong. expected=%v, got=%v (literal=%q)", i, tt.kind, toks[i].Kind, toks[i].Literal)
		}
		if toks[i].Literal != tt.literal {
			t.Errorf("tokens[%d] - literal wrong. expected=%q, got=%q", i, tt.literal, toks[i].Literal)
		}
	}
}

func TestKeywordRecognition(t *testing.T) {
	input := "break case catch class const continue debugger default delete do else export extends finally for function if import in instanceof new return super switch this throw try typeof var void while with"
	toks := collectTokens(t, input)
	for i, tok := range toks {
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind != token.Keyword {
			t.Errorf("token %d (%q) expected Keyword, got %v", i, tok.Literal, tok.Kind)
		}
	}
}

func TestContextualKeywordsScanAsKeywords(t *testing.T) {
	// yield/let/async/await/of/get/set/static are their own KeywordKind
	// but the scanner always tags them Keyword; the parser decides
	// whether they bind as identifiers based on context.
	toks := collectTokens(t, "let async yield")
	want := []token.KeywordKind{token.KwLet, token.KwAsync, token.KwYield}
	for i, k := range want {
		if toks[i].Kind != token.Keyword || toks[i].KeywordKind != k {
			t.Errorf("token %d: got kind=%v kw=%v, want Keyword %v", i, toks[i].Kind, toks[i].KeywordKind, k)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	cases := []struct {
		input string
		value float64
		big   bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"3.14", 3.14, false},
		{"1e3", 1000, false},
		{"0x1F", 31, false},
		{"0o17", 15, false},
		{"0b101", 5, false},
		{"1_000_000", 1000000, false},
		{"10n", 0, true},
	}
	for _, c := range cases {
		toks := collectTokens(t, c.input)
		tok := toks[0]
		if tok.Kind != token.NumericLiteral {
			t.Fatalf("input %q: expected NumericLiteral, got %v", c.input, tok.Kind)
		}
		if tok.IsBigInt != c.big {
			t.Errorf("input %q: IsBigInt = %v, want %v", c.input, tok.IsBigInt, c.big)
		}
		if !c.big && (!tok.NumericValueReady || tok.NumericValue != c.value) {
			t.Errorf("input %q: NumericValue = %v (ready=%v), want %v", c.input, tok.NumericValue, tok.NumericValueReady, c.value)
		}
	}
}

func TestNumberSeparatorRejected(t *testing.T) {
	// Each of these must fail to scan
	// cleanly as a numeric literal, reporting at least one scanner error.
	cases := []string{
		"1__0",
		"10_",
		"0_x10",
		"0x_1",
		"1_e2",
		"1e_2",
		"0_1",
		"1.0_",
		"0b_1",
		"0o_1",
	}
	for _, input := range cases {
		s := New(input)
		for {
			tok := s.Advance()
			if tok.Kind == token.EOF {
				break
			}
		}
		if len(s.Errors()) == 0 {
			t.Errorf("input %q: expected a numeric separator error, got none", input)
		}
	}
}

func TestLegacyOctalNumber(t *testing.T) {
	toks := collectTokens(t, "017")
	tok := toks[0]
	if !tok.NumericValueReady || tok.NumericValue != 15 {
		t.Errorf("legacy octal 017 = %v, want 15", tok.NumericValue)
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	cases := []struct {
		input  string
		cooked string
	}{
		{`"hello"`, "hello"},
		{`'it\'s'`, "it's"},
		{`"\n\t\\"`, "\n\t\\"},
		{`"\x41"`, "A"},
		{`"A"`, "A"},
		{`"\u{1F600}"`, "\U0001F600"},
	}
	for _, c := range cases {
		toks := collectTokens(t, c.input)
		tok := toks[0]
		if tok.Kind != token.StringLiteral {
			t.Fatalf("input %q: expected StringLiteral, got %v", c.input, tok.Kind)
		}
		if tok.StringCooked != c.cooked {
			t.Errorf("input %q: cooked = %q, want %q", c.input, tok.StringCooked, c.cooked)
		}
	}
}

func TestUnterminatedStringProducesError(t *testing.T) {
	s := New(`"abc`)
	tok := s.Advance()
	if tok.Kind != token.StringLiteral {
		t.Fatalf("expected StringLiteral even when unterminated, got %v", tok.Kind)
	}
	if len(s.Errors()) == 0 {
		t.Errorf("expected a diagnostic for an unterminated string literal")
	}
}

func TestTemplateNoSubstitution(t *testing.T) {
	toks := collectTokens(t, "`hello ${`")
	_ = toks
	s := New("`hello`")
	tok := s.Advance()
	if tok.Kind != token.Template || tok.Template == nil {
		t.Fatalf("expected Template token, got %v", tok.Kind)
	}
	if !tok.Template.Head || !tok.Template.Tail {
		t.Errorf("no-substitution template should be both head and tail")
	}
	if tok.Template.Cooked != "hello" {
		t.Errorf("cooked = %q, want %q", tok.Template.Cooked, "hello")
	}
}

func TestTemplateHeadAndRescanTail(t *testing.T) {
	s := New("`a${1}b`")
	tok := s.Advance()
	if tok.Kind != token.Template || !tok.Template.Head || tok.Template.Tail {
		t.Fatalf("expected TemplateHead, got %+v", tok)
	}
	// Parser would consume the expression `1` then hit `}`, which it
	// hands back to the scanner via RescanTemplateTail starting at `}`.
	s.Advance() // 1
	tail := s.RescanTemplateTail()
	if tail.Kind != token.Template || tail.Template == nil || tail.Template.Head || !tail.Template.Tail || tail.Template.Cooked != "b" {
		t.Errorf("expected TemplateTail with cooked %q, got %+v", "b", tail)
	}
}

func TestRegexRescan(t *testing.T) {
	s := New("/abc/g")
	slashPos := s.Lookahead().Pos
	tok := s.RescanRegex(slashPos)
	if tok.Kind != token.RegularExpression {
		t.Fatalf("expected RegularExpression, got %v", tok.Kind)
	}
	if tok.RegexBody != "abc" || tok.RegexFlags != "g" {
		t.Errorf("got body=%q flags=%q, want abc/g", tok.RegexBody, tok.RegexFlags)
	}
}

func TestPunctuatorMaximalMunch(t *testing.T) {
	cases := []struct {
		input string
		want  token.PunctKind
	}{
		{">>>=", token.UShrAssign},
		{">>>", token.UShr},
		{">>=", token.ShrAssign},
		{">>", token.Shr},
		{"**=", token.StarStarAssign},
		{"**", token.StarStar},
		{"?.", token.QuestionDot},
		{"??=", token.QuestionQuestionAssign},
		{"??", token.QuestionQuestion},
		{"=>", token.Arrow},
		{"...", token.Ellipsis},
	}
	for _, c := range cases {
		toks := collectTokens(t, c.input)
		if toks[0].Punct != c.want || toks[0].Literal != c.input {
			t.Errorf("input %q: got punct=%v literal=%q, want %v", c.input, toks[0].Punct, toks[0].Literal, c.want)
		}
	}
}

func TestOptionalChainNotConfusedWithTernaryDigit(t *testing.T) {
	// `a?.3:b` must scan `?` then `.3` (a number), not `?.` then `3`,
	// since ?.<digit> is grammatically a conditional expression with a
	// decimal-literal consequent.
	toks := collectTokens(t, "a?.3:b")
	if toks[1].Punct != token.Question {
		t.Fatalf("expected bare '?' before a digit, got %v", toks[1].Punct)
	}
	if toks[2].Kind != token.NumericLiteral || toks[2].Literal != ".3" {
		t.Errorf("expected numeric literal '.3', got kind=%v literal=%q", toks[2].Kind, toks[2].Literal)
	}
}

func TestASILineTerminatorFlag(t *testing.T) {
	toks := collectTokens(t, "a\nb")
	if toks[0].HasLineTerminator {
		t.Errorf("first token should not have a preceding line terminator")
	}
	if !toks[1].HasLineTerminator {
		t.Errorf("second token should have HasLineTerminator set for ASI")
	}
}

func TestCommentsAreSkippedAndDoNotSuppressASIFlag(t *testing.T) {
	toks := collectTokens(t, "a /* comment\nspanning lines */ b")
	if !toks[1].HasLineTerminator {
		t.Errorf("a line terminator inside a skipped block comment must still set HasLineTerminator")
	}
}

func TestBOMIsStripped(t *testing.T) {
	toks := collectTokens(t, "\ufeffvar x")
	if toks[0].Kind != token.Keyword || toks[0].KeywordKind != token.KwVar {
		t.Fatalf("expected 'var' as first token after BOM strip, got %+v", toks[0])
	}
}

func TestHashbangSkippedOnlyAtStart(t *testing.T) {
	toks := collectTokens(t, "#!/usr/bin/env node\nvar x")
	if toks[0].Kind != token.Keyword || toks[0].KeywordKind != token.KwVar {
		t.Fatalf("expected hashbang line to be skipped, got %+v", toks[0])
	}
}

func TestTokenRangesConcatenateToSourceMinusTrivia(t *testing.T) {
	// For any accepted source, concatenating every token's raw slice
	// reproduces the source with whitespace and comments deleted.
	src := "var x = 1 + 2; /* c */ x++; // t"
	toks := collectTokens(t, src)
	var got strings.Builder
	for _, tok := range toks {
		got.WriteString(tok.Literal)
	}
	if got.String() != "varx=1+2;x++;" {
		t.Errorf("token ranges concatenate to %q, want %q", got.String(), "varx=1+2;x++;")
	}
}

func TestLookaheadIsIdempotent(t *testing.T) {
	s := New("foo bar")
	a := s.Lookahead()
	b := s.Lookahead()
	if a != b {
		t.Errorf("repeated Lookahead() calls must return the identical token")
	}
}

func TestPeekAtAndSaveRestoreState(t *testing.T) {
	s := New("a b c")
	st := s.SaveState()

	second := s.PeekAt(1)
	if second.Name != "b" {
		t.Fatalf("PeekAt(1) = %q, want %q", second.Name, "b")
	}

	first := s.Advance()
	if first.Name != "a" {
		t.Fatalf("Advance() = %q, want %q", first.Name, "a")
	}

	s.RestoreState(st)
	again := s.Advance()
	if again.Name != "a" {
		t.Errorf("after RestoreState, Advance() = %q, want %q", again.Name, "a")
	}
}

func TestIdentifierUnicodeEscape(t *testing.T) {
	toks := collectTokens(t, `\u0061bc`)
	if toks[0].Kind != token.Identifier || toks[0].Name != "abc" {
		t.Fatalf("expected identifier 'abc' via escape, got %+v", toks[0])
	}
	if !toks[0].ContainsEscape {
		t.Errorf("ContainsEscape should be true")
	}
}

func TestHTMLCommentsDisabledInModuleSyntax(t *testing.T) {
	toks := collectTokens(t, "a <!-- b", WithModuleSyntax(true))
	if toks[1].Kind != token.Punctuator || toks[1].Punct != token.Lt {
		t.Fatalf("expected '<' to scan as a punctuator in module code, got %+v", toks[1])
	}
}
