package scanner

import "github.com/cwbudde/go-jscore/internal/token"

// isLineTerminator reports the ECMAScript LineTerminator code points: LF,
// CR, U+2028 LINE SEPARATOR, U+2029 PARAGRAPH SEPARATOR.
func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == ' ' || r == ' '
}

// isWhitespace reports the ECMAScript WhiteSpace code points this
// scanner recognizes, plus the line terminators (which also count as
// whitespace for token separation, but are tracked separately for ASI).
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\u00a0', '\ufeff':
		return true
	}
	return isLineTerminator(r)
}

// rawScanToken skips whitespace and comments (tracking
// hasLineTerminator), then dispatches on the current character to
// produce exactly one token.
func (s *Scanner) rawScanToken() token.Token {
	sawNewline := s.skipWhitespaceAndComments()

	pos := s.currentPos()

	if s.ch == 0 {
		return s.finish(token.Token{Kind: token.EOF, Pos: pos, End: pos}, sawNewline)
	}

	switch {
	case s.ch == '"' || s.ch == '\'':
		return s.finish(s.scanString(pos), sawNewline)
	case s.ch == '`':
		return s.finish(s.scanTemplate(pos, true), sawNewline)
	case isDigit(s.ch):
		return s.finish(s.scanNumber(pos), sawNewline)
	case s.ch == '.' && isDigit(s.peekChar()):
		return s.finish(s.scanNumber(pos), sawNewline)
	case isIdentifierStart(s.ch) || s.ch == '\\':
		return s.finish(s.scanIdentifierOrKeyword(pos), sawNewline)
	default:
		return s.finish(s.scanPunctuator(pos), sawNewline)
	}
}

func (s *Scanner) finish(tok token.Token, sawNewline bool) token.Token {
	tok.HasLineTerminator = sawNewline
	if tok.End.IsZero() {
		tok.End = s.currentPos()
	}
	return tok
}

// skipWhitespaceAndComments advances past whitespace, line comments,
// block comments, and (in non-module source) the legacy HTML comment
// forms, returning true iff a line terminator appeared anywhere in the
// skipped span.
func (s *Scanner) skipWhitespaceAndComments() bool {
	sawNewline := false
	for {
		switch {
		case isLineTerminator(s.ch):
			sawNewline = true
			s.readChar()
		case isWhitespace(s.ch):
			s.readChar()
		case s.ch == '/' && s.peekChar() == '/':
			s.skipLineComment()
		case s.ch == '/' && s.peekChar() == '*':
			if nl := s.skipBlockComment(); nl {
				sawNewline = true
			}
		case s.allowHTMLComments && s.ch == '<' && s.peekChar() == '!' &&
			s.peekCharN(2) == '-' && s.peekCharN(3) == '-':
			s.skipLineComment()
		case s.allowHTMLComments && sawNewline && s.ch == '-' && s.peekChar() == '-' && s.peekCharN(2) == '>':
			s.skipLineComment()
		default:
			return sawNewline
		}
	}
}

func (s *Scanner) skipLineComment() {
	for s.ch != 0 && !isLineTerminator(s.ch) {
		s.readChar()
	}
}

// skipBlockComment consumes a /* */ comment, returning true if it
// contained a line terminator (which still forces HasLineTerminator on
// the next token even though the comment itself isn't a LineTerminator).
func (s *Scanner) skipBlockComment() bool {
	sawNewline := false
	startPos := s.currentPos()
	s.readChar() // consume '/'
	s.readChar() // consume '*'
	for {
		if s.ch == 0 {
			s.addError("unterminated block comment", startPos)
			return sawNewline
		}
		if isLineTerminator(s.ch) {
			sawNewline = true
		}
		if s.ch == '*' && s.peekChar() == '/' {
			s.readChar()
			s.readChar()
			return sawNewline
		}
		s.readChar()
	}
}
