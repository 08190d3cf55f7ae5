package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"

	"github.com/cwbudde/go-jscore/internal/token"
)

// identifierStartTable/identifierPartTable are built once at package
// init, in a one-time bootstrap, and treated as immutable thereafter,
// by merging Go's per-category unicode.RangeTables with
// x/text/unicode/rangetable.Merge into a single table each, so the
// hot-path classification below is one unicode.Is call instead of a
// loop over several tables.
//
// This approximates ECMAScript's IdentifierStart/IdentifierPart
// productions using category tables rather than the exact Unicode
// ID_Start/ID_Continue property data: Letter/Letter-Number (start) and
// additionally Mark/Decimal-Number/Connector-Punctuation (part) cover the
// overwhelming majority of real identifiers, at the cost of a few exotic
// Unicode_ID_Start code points outside those categories not being
// recognized.
var (
	identifierStartTable = rangetable.Merge(unicode.L, unicode.Nl)
	identifierPartTable  = rangetable.Merge(unicode.L, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
)

// isIdentifierStart approximates ECMAScript's IdentifierStart production
// (UnicodeIDStart | $ | _).
func isIdentifierStart(r rune) bool {
	if r == '$' || r == '_' {
		return true
	}
	return unicode.Is(identifierStartTable, r)
}

// isIdentifierPart approximates IdentifierPart (IdentifierStart |
// UnicodeIDContinue | ZWNJ | ZWJ).
func isIdentifierPart(r rune) bool {
	if r == '$' || r == '_' {
		return true
	}
	if r == '‌' || r == '‍' { // ZWNJ, ZWJ
		return true
	}
	return unicode.Is(identifierPartTable, r)
}

// scanIdentifierOrKeyword scans an IdentifierName, decoding \u escapes as
// it goes, then classifies the result as a Keyword (its SecondaryKeyword
// set to the same kind), a boolean/null literal, or a plain Identifier.
func (s *Scanner) scanIdentifierOrKeyword(pos token.Position) token.Token {
	var b strings.Builder
	sawEscape := false

	for isIdentifierPart(s.ch) || s.ch == '\\' {
		if s.ch == '\\' {
			sawEscape = true
			r, ok := s.decodeUnicodeEscapeInIdentifier(b.Len() == 0)
			if !ok {
				break
			}
			b.WriteRune(r)
			continue
		}
		b.WriteRune(s.ch)
		s.readChar()
	}

	name := b.String()
	end := s.currentPos()

	tok := token.Token{Kind: token.Identifier, Pos: pos, End: end, Name: name, ContainsEscape: sawEscape, HasAllocatedName: sawEscape}
	if !sawEscape {
		tok.Literal = s.input[pos.Offset:end.Offset]
	}

	if kw, ok := token.Keywords[name]; ok {
		if sawEscape {
			s.addError("keyword must not contain escaped characters", pos)
		}
		tok.Kind = token.Keyword
		tok.KeywordKind = kw
		tok.SecondaryKeyword = kw
		return tok
	}

	if name == "true" || name == "false" {
		tok.Kind = token.BooleanLiteral
		tok.BoolValue = name == "true"
		return tok
	}
	if name == "null" {
		tok.Kind = token.NullLiteral
		return tok
	}

	if token.StrictReservedWords[name] {
		tok.SecondaryKeyword = token.KwNone // reclassified only by the parser, which knows strict-mode status
	}

	return tok
}

// decodeUnicodeEscapeInIdentifier decodes a \uXXXX or \u{...} escape at
// the current position (s.ch == '\\'), requiring the resulting rune to
// itself be a valid identifier character. isFirst controls whether the
// start or continue test is applied.
func (s *Scanner) decodeUnicodeEscapeInIdentifier(isFirst bool) (rune, bool) {
	start := s.currentPos()
	s.readChar() // consume backslash
	if s.ch != 'u' {
		s.addError("invalid identifier escape sequence", start)
		return 0, false
	}
	s.readChar() // consume 'u'

	r, ok := s.readUnicodeEscapeBody(start)
	if !ok {
		return 0, false
	}

	valid := r >= 0
	if isFirst {
		valid = valid && isIdentifierStart(r)
	} else {
		valid = valid && isIdentifierPart(r)
	}
	if !valid {
		s.addError("invalid Unicode escape sequence", start)
		return 0, false
	}
	return r, true
}

// readUnicodeEscapeBody reads the XXXX or {...} body of a \u escape,
// with s.ch positioned just after the 'u'.
func (s *Scanner) readUnicodeEscapeBody(start token.Position) (rune, bool) {
	if s.ch == '{' {
		s.readChar()
		val := 0
		digits := 0
		for s.ch != '}' {
			d, ok := hexDigitValue(s.ch)
			if !ok {
				s.addError("invalid Unicode escape sequence", start)
				return 0, false
			}
			val = val*16 + d
			digits++
			if val > 0x10FFFF {
				s.addError("Unicode escape value out of range", start)
				return 0, false
			}
			s.readChar()
		}
		s.readChar() // consume '}'
		if digits == 0 {
			s.addError("invalid Unicode escape sequence", start)
			return 0, false
		}
		return rune(val), true
	}

	val := 0
	for i := 0; i < 4; i++ {
		d, ok := hexDigitValue(s.ch)
		if !ok {
			s.addError("invalid Unicode escape sequence", start)
			return 0, false
		}
		val = val*16 + d
		s.readChar()
	}
	return rune(val), true
}

func hexDigitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// runeLen reports the UTF-8 byte length of r.
func runeLen(r rune) int { return utf8.RuneLen(r) }
