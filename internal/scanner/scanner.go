// Package scanner implements the lexical scanner: a stateful cursor
// over source producing one token at a time under a single-token
// lookahead contract, built around a rune-based cursor, functional
// options, Peek(n) buffering, and save/restore state, targeting
// ECMAScript lexical grammar.
package scanner

import (
	"unicode/utf8"

	"github.com/cwbudde/go-jscore/internal/perrors"
	"github.com/cwbudde/go-jscore/internal/token"
)

// Scanner is a cursor over JavaScript source text.
//
// Column positions are counted in runes, and a UTF-8 BOM at byte 0 is
// stripped before scanning begins. Internally this scans the Go
// (UTF-8) string directly rather than transcoding to UTF-16/Latin-1
// first: Go's string type already gives safe, O(1)-amortized rune
// iteration, and nothing later in the pipeline needs UTF-16 code units
// specifically.
type Scanner struct {
	input  string
	errors []*perrors.Diagnostic

	position     int // byte offset of ch
	readPosition int // byte offset of the rune after ch
	line         int
	column       int // rune count from line start
	ch           rune

	strictMode        bool
	allowHTMLComments bool
	hashbangEligible  bool // still at the very start of input

	lookahead     *token.Token // the single buffered lookahead token
	tokenBuffer   []token.Token
}

// Option configures a Scanner at construction.
type Option func(*Scanner)

// WithStrictMode seeds the scanner in strict mode (e.g. for module code
// or a caller-supplied "use strict" context).
func WithStrictMode(strict bool) Option {
	return func(s *Scanner) { s.strictMode = strict }
}

// WithModuleSyntax scans input as Module source, which disables the
// legacy HTML-comment forms (`<!--`, `-->`) Annex B permits only in
// scripts.
func WithModuleSyntax(module bool) Option {
	return func(s *Scanner) { s.allowHTMLComments = !module }
}

// WithStartPosition seeds the scanner's line/column counters so that
// reported positions are relative to an embedder-supplied starting
// point, used by eval/Function-constructor call sites whose source is
// a substring of a larger buffer. line and column are both 1-based;
// values <= 0 leave the default 1,1 start untouched.
func WithStartPosition(line, column int) Option {
	return func(s *Scanner) {
		if line > 0 {
			s.line = line
		}
		if column > 0 {
			s.column = column - 1
		}
	}
}

// New creates a Scanner over input, stripping a UTF-8 BOM if present.
func New(input string, opts ...Option) *Scanner {
	if len(input) >= 3 && input[0] == 0xEF && input[1] == 0xBB && input[2] == 0xBF {
		input = input[3:]
	}

	s := &Scanner{
		input:             input,
		line:              1,
		column:            0,
		allowHTMLComments: true,
		hashbangEligible:  true,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.readChar()
	s.skipHashbang()
	s.primeLookahead()
	return s
}

// SetStrictMode updates strict-mode status mid-scan, used when the
// parser discovers a "use strict" directive prologue.
func (s *Scanner) SetStrictMode(strict bool) { s.strictMode = strict }

func (s *Scanner) StrictMode() bool { return s.strictMode }

// Errors returns all accumulated scanner diagnostics.
func (s *Scanner) Errors() []*perrors.Diagnostic { return s.errors }

func (s *Scanner) addError(msg string, pos token.Position) {
	d := perrors.New(perrors.SyntaxError, pos, msg)
	d.Source = s.input
	s.errors = append(s.errors, d)
}

func (s *Scanner) currentPos() token.Position {
	return token.Position{Line: s.line, Column: s.column, Offset: s.position}
}

func (s *Scanner) readChar() {
	if s.readPosition >= len(s.input) {
		s.ch = 0
		s.position = s.readPosition
		s.column++
		return
	}
	r, size := utf8.DecodeRuneInString(s.input[s.readPosition:])
	s.ch = r
	s.position = s.readPosition
	s.readPosition += size
	s.column++
	if r == utf8.RuneError && size == 1 {
		s.addError("invalid UTF-8 encoding", s.currentPos())
	}
	// CRLF counts as a single line terminator; a lone CR, LF, or
	// U+2028/U+2029 each start a new line.
	if r == '\n' || r == ' ' || r == ' ' || (r == '\r' && s.peekChar() != '\n') {
		s.line++
		s.column = 0
	}
}

func (s *Scanner) peekChar() rune {
	if s.readPosition >= len(s.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.readPosition:])
	return r
}

func (s *Scanner) peekCharN(n int) rune {
	pos := s.readPosition
	for i := 0; i < n-1 && pos < len(s.input); i++ {
		_, size := utf8.DecodeRuneInString(s.input[pos:])
		pos += size
	}
	if pos >= len(s.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.input[pos:])
	return r
}

func (s *Scanner) match(expected rune) bool {
	if s.peekChar() != expected {
		return false
	}
	s.readChar()
	return true
}

func (s *Scanner) skipHashbang() {
	if !s.hashbangEligible {
		return
	}
	s.hashbangEligible = false
	if s.ch == '#' && s.peekChar() == '!' {
		for s.ch != '\n' && s.ch != 0 {
			s.readChar()
		}
	}
}

// State captures the scanner's position for backtracking (controlled
// rewinds via SaveState/RestoreState).
type State struct {
	position, readPosition, line, column int
	ch                                   rune
	lookahead                            *token.Token
	tokenBuffer                          []token.Token
}

func (s *Scanner) SaveState() State {
	buf := make([]token.Token, len(s.tokenBuffer))
	copy(buf, s.tokenBuffer)
	return State{
		position: s.position, readPosition: s.readPosition,
		line: s.line, column: s.column, ch: s.ch,
		lookahead: s.lookahead, tokenBuffer: buf,
	}
}

func (s *Scanner) RestoreState(st State) {
	s.position, s.readPosition = st.position, st.readPosition
	s.line, s.column, s.ch = st.line, st.column, st.ch
	s.lookahead = st.lookahead
	s.tokenBuffer = st.tokenBuffer
}

// Lookahead returns the single buffered token ahead without consuming
// it. Calling Lookahead() repeatedly returns the identical token
// (idempotent peek).
func (s *Scanner) Lookahead() token.Token {
	return *s.lookahead
}

// Advance consumes the lookahead token and scans the next one into its
// place, returning the token that was just consumed.
func (s *Scanner) Advance() token.Token {
	consumed := *s.lookahead
	var next token.Token
	if len(s.tokenBuffer) > 0 {
		next = s.tokenBuffer[0]
		s.tokenBuffer = s.tokenBuffer[1:]
	} else {
		next = s.rawScanToken()
	}
	s.lookahead = &next
	return consumed
}

func (s *Scanner) primeLookahead() {
	tok := s.rawScanToken()
	s.lookahead = &tok
}

// PeekAt returns the token n positions past the current lookahead
// without consuming anything, buffering as needed. PeekAt(0) is
// equivalent to Lookahead(). This is parser-internal lookahead beyond
// the one-token contract (used for decisions such as `async` `(` on the
// same line, arrow-head detection, and the class-body private-name
// pre-scan, which may peek far ahead) — it never replaces
// Lookahead/Advance as the scanner's public contract.
func (s *Scanner) PeekAt(n int) token.Token {
	if n == 0 {
		return s.Lookahead()
	}
	for len(s.tokenBuffer) < n {
		s.tokenBuffer = append(s.tokenBuffer, s.rawScanToken())
	}
	return s.tokenBuffer[n-1]
}
