package scanner

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-jscore/internal/token"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }

func isHexDigit(r rune) bool {
	_, ok := hexDigitValue(r)
	return ok
}

// scanNumber scans a NumericLiteral, covering decimal, hex, octal,
// binary, legacy octal, the BigInt 'n' suffix, and '_' numeric
// separators. Separators are stripped and the token's NumericValue is
// parsed eagerly; it is left unparsed (NumericValueReady=false) only
// for BigInt literals and for text that fails to parse.
func (s *Scanner) scanNumber(pos token.Position) token.Token {
	var raw strings.Builder
	startsWithZero := s.ch == '0'
	hasSeparator := false
	isBigInt := false
	isLegacyOctal := false

	writeDigits := func(pred func(rune) bool) int {
		lastWasSeparator := false
		atRunStart := true
		digits := 0
		for pred(s.ch) || s.ch == '_' {
			if s.ch == '_' {
				if lastWasSeparator || atRunStart {
					s.addError("numeric separator not allowed here", s.currentPos())
				}
				hasSeparator = true
				lastWasSeparator = true
				atRunStart = false
				s.readChar()
				continue
			}
			raw.WriteRune(s.ch)
			digits++
			lastWasSeparator = false
			atRunStart = false
			s.readChar()
		}
		if lastWasSeparator {
			s.addError("numeric separator not allowed at the end of a number", s.currentPos())
		}
		return digits
	}

	switch {
	case s.ch == '0' && (s.peekChar() == 'x' || s.peekChar() == 'X'):
		raw.WriteRune(s.ch)
		s.readChar()
		raw.WriteRune(s.ch)
		s.readChar()
		if writeDigits(isHexDigit) == 0 {
			s.addError("missing digits after radix prefix", s.currentPos())
		}
	case s.ch == '0' && (s.peekChar() == 'o' || s.peekChar() == 'O'):
		raw.WriteRune(s.ch)
		s.readChar()
		raw.WriteRune(s.ch)
		s.readChar()
		if writeDigits(isOctalDigit) == 0 {
			s.addError("missing digits after radix prefix", s.currentPos())
		}
	case s.ch == '0' && (s.peekChar() == 'b' || s.peekChar() == 'B'):
		raw.WriteRune(s.ch)
		s.readChar()
		raw.WriteRune(s.ch)
		s.readChar()
		if writeDigits(func(r rune) bool { return r == '0' || r == '1' }) == 0 {
			s.addError("missing digits after radix prefix", s.currentPos())
		}
	case s.ch == '0' && isOctalDigit(s.peekChar()):
		// Legacy octal: 0 followed by octal digits, no separators or
		// BigInt suffix permitted (only reachable outside strict mode;
		// the parser rejects it when strict).
		isLegacyOctal = true
		raw.WriteRune(s.ch)
		s.readChar()
		for isOctalDigit(s.ch) {
			raw.WriteRune(s.ch)
			s.readChar()
		}
		if isDigit(s.ch) { // 08 / 09 are legacy decimal, not octal
			isLegacyOctal = false
			for isDigit(s.ch) {
				raw.WriteRune(s.ch)
				s.readChar()
			}
		}
	default:
		if startsWithZero && s.ch == '0' && s.peekChar() == '_' {
			// A lone "0" can never take a trailing separator: the
			// DecimalIntegerLiteral grammar only permits "0" standing
			// alone or as a NonOctalDecimalIntegerLiteral (08, 09), never
			// followed by a separator.
			raw.WriteRune(s.ch)
			s.readChar()
			s.addError("numeric separator not allowed here", s.currentPos())
			hasSeparator = true
			s.readChar() // consume the '_'
		}
		writeDigits(isDigit)
		if s.ch == '.' {
			raw.WriteRune(s.ch)
			s.readChar()
			writeDigits(isDigit)
		}
		if s.ch == 'e' || s.ch == 'E' {
			raw.WriteRune(s.ch)
			s.readChar()
			if s.ch == '+' || s.ch == '-' {
				raw.WriteRune(s.ch)
				s.readChar()
			}
			writeDigits(isDigit)
		}
	}

	if s.ch == 'n' && !isLegacyOctal {
		isBigInt = true
		s.readChar()
	}

	if isIdentifierStart(s.ch) || isDigit(s.ch) {
		s.addError("identifier starts immediately after numeric literal", s.currentPos())
	}

	end := s.currentPos()
	rawText := raw.String()
	tok := token.Token{
		Kind:               token.NumericLiteral,
		Pos:                pos,
		End:                end,
		Literal:            s.input[pos.Offset:end.Offset],
		NumericRaw:         rawText,
		IsBigInt:           isBigInt,
		StartsWithZero:     startsWithZero,
		HasNumberSeparator: hasSeparator,
	}

	clean := rawText
	if hasSeparator {
		clean = strings.ReplaceAll(clean, "_", "")
	}
	if !isBigInt {
		if v, ok := parseNumericLiteral(clean, isLegacyOctal); ok {
			tok.NumericValue = v
			tok.NumericValueReady = true
		}
	}

	return tok
}

// parseNumericLiteral converts cleaned numeral text (separators
// stripped) to its float64 value. Legacy octal text carries no 0o
// prefix so it's parsed specially.
func parseNumericLiteral(text string, legacyOctal bool) (float64, bool) {
	if legacyOctal {
		n, err := strconv.ParseUint(text, 8, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}
	if len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X' || text[1] == 'o' || text[1] == 'O' || text[1] == 'b' || text[1] == 'B') {
		base := 16
		switch text[1] {
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		n, err := strconv.ParseUint(text[2:], base, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
