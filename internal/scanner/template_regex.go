package scanner

import (
	"strings"

	"github.com/cwbudde/go-jscore/internal/token"
)

// scanTemplate scans a NoSubstitutionTemplate or TemplateHead (isHead
// true) starting at a backtick, or a TemplateMiddle/TemplateTail when
// re-entered via RescanTemplateTail after the parser has consumed a
// `${ ... }` substitution. The parser drives re-lexing for this
// context-sensitive production.
func (s *Scanner) scanTemplate(pos token.Position, isHead bool) token.Token {
	s.readChar() // consume opening ` or }

	var cooked strings.Builder
	cookedValid := true
	rawStart := s.position

	for {
		switch {
		case s.ch == 0:
			s.addError("unterminated template literal", pos)
			return s.finishTemplate(pos, rawStart, cooked.String(), cookedValid, isHead, true)
		case s.ch == '`':
			raw := s.input[rawStart:s.position]
			s.readChar() // consume closing `
			return s.finishTemplateWithRaw(pos, raw, cooked.String(), cookedValid, isHead, true)
		case s.ch == '$' && s.peekChar() == '{':
			raw := s.input[rawStart:s.position]
			s.readChar() // consume $
			s.readChar() // consume {
			return s.finishTemplateWithRaw(pos, raw, cooked.String(), cookedValid, isHead, false)
		case s.ch == '\\':
			s.readChar()
			if !s.scanTemplateEscape(&cooked) {
				cookedValid = false
			}
		case s.ch == '\r':
			cooked.WriteRune('\n')
			s.readChar()
			if s.ch == '\n' {
				s.readChar()
			}
		default:
			cooked.WriteRune(s.ch)
			s.readChar()
		}
	}
}

func (s *Scanner) finishTemplate(pos token.Position, rawStart int, cooked string, cookedValid, head, tail bool) token.Token {
	raw := s.input[rawStart:s.position]
	return s.finishTemplateWithRaw(pos, raw, cooked, cookedValid, head, tail)
}

func (s *Scanner) finishTemplateWithRaw(pos token.Position, raw, cooked string, cookedValid, head, tail bool) token.Token {
	end := s.currentPos()
	part := &token.TemplatePart{
		Raw:         raw,
		Cooked:      cooked,
		CookedValid: cookedValid,
		Head:        head,
		Tail:        tail,
	}
	if !cookedValid {
		part.DeferredError = "invalid escape sequence in template literal"
	}
	return token.Token{
		Kind:     token.Template,
		Pos:      pos,
		End:      end,
		Literal:  s.input[pos.Offset:end.Offset],
		Template: part,
	}
}

// scanTemplateEscape mirrors scanEscapeSequence but legacy octal escapes
// are always invalid in templates (TemplateCharacter forbids
// LegacyOctalEscapeSequence and NonOctalDecimalEscapeSequence
// unconditionally) and an invalid escape doesn't abort scanning — it
// just marks the cooked value invalid, since a tagged template's raw
// strings must still be produced even when cooked decoding fails.
func (s *Scanner) scanTemplateEscape(out *strings.Builder) bool {
	switch s.ch {
	case '0':
		if isDigit(s.peekChar()) {
			s.skipDigits()
			return false
		}
		out.WriteRune(0)
		s.readChar()
		return true
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		s.skipDigits()
		return false
	case 'x':
		s.readChar()
		r, ok := s.readUnicodeEscapeBody2Digit()
		if !ok {
			return false
		}
		out.WriteRune(r)
		return true
	case 'u':
		s.readChar()
		r, ok := s.readTemplateUnicodeEscapeBody()
		if !ok {
			return false
		}
		out.WriteRune(r)
		return true
	case 'n':
		out.WriteRune('\n')
		s.readChar()
	case 't':
		out.WriteRune('\t')
		s.readChar()
	case 'r':
		out.WriteRune('\r')
		s.readChar()
	case 'b':
		out.WriteRune('\b')
		s.readChar()
	case 'f':
		out.WriteRune('\f')
		s.readChar()
	case 'v':
		out.WriteRune('\v')
		s.readChar()
	case '\r':
		s.readChar()
		if s.ch == '\n' {
			s.readChar()
		}
	case '\n':
		s.readChar()
	default:
		out.WriteRune(s.ch)
		s.readChar()
	}
	return true
}

// readTemplateUnicodeEscapeBody mirrors readUnicodeEscapeBody but never
// reports: inside a template the error is deferred onto the token, so a
// tag function can still observe the raw text.
func (s *Scanner) readTemplateUnicodeEscapeBody() (rune, bool) {
	if s.ch == '{' {
		s.readChar()
		val, digits := 0, 0
		for s.ch != '}' && s.ch != 0 && s.ch != '`' {
			d, ok := hexDigitValue(s.ch)
			if !ok || val > 0x10FFFF {
				return 0, false
			}
			val = val*16 + d
			digits++
			s.readChar()
		}
		if s.ch != '}' {
			return 0, false
		}
		s.readChar()
		if digits == 0 || val > 0x10FFFF {
			return 0, false
		}
		return rune(val), true
	}
	val := 0
	for i := 0; i < 4; i++ {
		d, ok := hexDigitValue(s.ch)
		if !ok {
			return 0, false
		}
		val = val*16 + d
		s.readChar()
	}
	return rune(val), true
}

func (s *Scanner) skipDigits() {
	for isDigit(s.ch) {
		s.readChar()
	}
}

// RescanTemplateTail is called by the parser after it has parsed the
// expression inside `${ ... }` and consumed up to (but not past) the
// closing `}`; it re-enters template-literal scanning from that `}`
// rather than treating it as a punctuator.
func (s *Scanner) RescanTemplateTail() token.Token {
	// The closing `}` is the current lookahead, scanned as a punctuator;
	// rewind to it and reinterpret from there. Any tokens buffered past
	// it were scanned under the wrong interpretation and are dropped.
	brace := *s.lookahead
	s.readCharAt(brace.Pos.Offset)
	s.line, s.column = brace.Pos.Line, brace.Pos.Column
	s.tokenBuffer = nil

	tok := s.scanTemplate(brace.Pos, false)
	next := s.rawScanToken()
	s.lookahead = &next
	return tok
}

// RescanRegex is called by the parser when it determines, from
// grammatical context, that a `/` or `/=` token it already consumed as
// a lookahead must instead have begun a RegularExpressionLiteral (the scanner
// cannot decide this by itself without parser context). slashPos is the position of the original `/`
// token.
func (s *Scanner) RescanRegex(slashPos token.Position) token.Token {
	s.readCharAt(slashPos.Offset)
	s.line, s.column = slashPos.Line, slashPos.Column
	s.tokenBuffer = nil

	tok := s.scanRegexBody(slashPos)
	next := s.rawScanToken()
	s.lookahead = &next
	return tok
}

func (s *Scanner) readCharAt(offset int) {
	s.readPosition = offset
	s.readChar()
}

func (s *Scanner) scanRegexBody(pos token.Position) token.Token {
	bodyStart := s.position
	s.readChar() // consume opening '/'

	inClass := false
	for {
		switch {
		case s.ch == 0 || isLineTerminator(s.ch):
			s.addError("unterminated regular expression literal", pos)
			body := s.input[bodyStart+1 : s.position]
			return s.finishRegex(pos, body, "")
		case s.ch == '\\':
			s.readChar()
			if s.ch != 0 {
				s.readChar()
			}
		case s.ch == '[':
			inClass = true
			s.readChar()
		case s.ch == ']':
			inClass = false
			s.readChar()
		case s.ch == '/' && !inClass:
			body := s.input[bodyStart+1 : s.position]
			s.readChar() // consume closing '/'
			flagsStart := s.position
			for isIdentifierPart(s.ch) {
				s.readChar()
			}
			flags := s.input[flagsStart:s.position]
			return s.finishRegex(pos, body, flags)
		default:
			s.readChar()
		}
	}
}

func (s *Scanner) finishRegex(pos token.Position, body, flags string) token.Token {
	end := s.currentPos()
	return token.Token{
		Kind:       token.RegularExpression,
		Pos:        pos,
		End:        end,
		Literal:    s.input[pos.Offset:end.Offset],
		RegexBody:  body,
		RegexFlags: flags,
	}
}
