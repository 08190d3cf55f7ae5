package scanner

import "github.com/cwbudde/go-jscore/internal/token"

// scanPunctuator scans the longest matching Punctuator at the current
// position using a hand-written maximal-munch cascade over
// ECMAScript's punctuator set (optional chaining, nullish assignment,
// exponentiation, private-name `#`).
func (s *Scanner) scanPunctuator(pos token.Position) token.Token {
	ch := s.ch
	s.readChar()

	mk := func(p token.PunctKind) token.Token {
		end := s.currentPos()
		return token.Token{Kind: token.Punctuator, Pos: pos, End: end, Literal: s.input[pos.Offset:end.Offset], Punct: p}
	}

	switch ch {
	case '{':
		return mk(token.LBrace)
	case '}':
		return mk(token.RBrace)
	case '(':
		return mk(token.LParen)
	case ')':
		return mk(token.RParen)
	case '[':
		return mk(token.LBracket)
	case ']':
		return mk(token.RBracket)
	case ';':
		return mk(token.Semicolon)
	case ',':
		return mk(token.Comma)
	case ':':
		return mk(token.Colon)
	case '~':
		return mk(token.Tilde)
	case '#':
		return mk(token.Hash)

	case '.':
		if s.ch == '.' && s.peekChar() == '.' {
			s.readChar()
			s.readChar()
			return mk(token.Ellipsis)
		}
		return mk(token.Dot)

	case '?':
		switch {
		case s.ch == '.' && !isDigit(s.peekChar()):
			s.readChar()
			return mk(token.QuestionDot)
		case s.ch == '?' && s.peekChar() == '=':
			s.readChar()
			s.readChar()
			return mk(token.QuestionQuestionAssign)
		case s.ch == '?':
			s.readChar()
			return mk(token.QuestionQuestion)
		}
		return mk(token.Question)

	case '<':
		switch {
		case s.ch == '<' && s.peekChar() == '=':
			s.readChar()
			s.readChar()
			return mk(token.ShlAssign)
		case s.ch == '<':
			s.readChar()
			return mk(token.Shl)
		case s.ch == '=':
			s.readChar()
			return mk(token.LtEq)
		}
		return mk(token.Lt)

	case '>':
		switch {
		case s.ch == '>' && s.peekChar() == '>' && s.peekCharN(2) == '=':
			s.readChar()
			s.readChar()
			s.readChar()
			return mk(token.UShrAssign)
		case s.ch == '>' && s.peekChar() == '>':
			s.readChar()
			s.readChar()
			return mk(token.UShr)
		case s.ch == '>' && s.peekChar() == '=':
			s.readChar()
			s.readChar()
			return mk(token.ShrAssign)
		case s.ch == '>':
			s.readChar()
			return mk(token.Shr)
		case s.ch == '=':
			s.readChar()
			return mk(token.GtEq)
		}
		return mk(token.Gt)

	case '=':
		switch {
		case s.ch == '=' && s.peekChar() == '=':
			s.readChar()
			s.readChar()
			return mk(token.EqEqEq)
		case s.ch == '=':
			s.readChar()
			return mk(token.EqEq)
		case s.ch == '>':
			s.readChar()
			return mk(token.Arrow)
		}
		return mk(token.Assign)

	case '!':
		switch {
		case s.ch == '=' && s.peekChar() == '=':
			s.readChar()
			s.readChar()
			return mk(token.NotEqEq)
		case s.ch == '=':
			s.readChar()
			return mk(token.NotEq)
		}
		return mk(token.Bang)

	case '+':
		switch {
		case s.ch == '+':
			s.readChar()
			return mk(token.PlusPlus)
		case s.ch == '=':
			s.readChar()
			return mk(token.PlusAssign)
		}
		return mk(token.Plus)

	case '-':
		switch {
		case s.ch == '-':
			s.readChar()
			return mk(token.MinusMinus)
		case s.ch == '=':
			s.readChar()
			return mk(token.MinusAssign)
		}
		return mk(token.Minus)

	case '*':
		switch {
		case s.ch == '*' && s.peekChar() == '=':
			s.readChar()
			s.readChar()
			return mk(token.StarStarAssign)
		case s.ch == '*':
			s.readChar()
			return mk(token.StarStar)
		case s.ch == '=':
			s.readChar()
			return mk(token.StarAssign)
		}
		return mk(token.Star)

	case '/':
		if s.ch == '=' {
			s.readChar()
			return mk(token.SlashAssign)
		}
		return mk(token.Slash)

	case '%':
		if s.ch == '=' {
			s.readChar()
			return mk(token.PercentAssign)
		}
		return mk(token.Percent)

	case '&':
		switch {
		case s.ch == '&' && s.peekChar() == '=':
			s.readChar()
			s.readChar()
			return mk(token.AmpAmpAssign)
		case s.ch == '&':
			s.readChar()
			return mk(token.AmpAmp)
		case s.ch == '=':
			s.readChar()
			return mk(token.AmpAssign)
		}
		return mk(token.Amp)

	case '|':
		switch {
		case s.ch == '|' && s.peekChar() == '=':
			s.readChar()
			s.readChar()
			return mk(token.PipePipeAssign)
		case s.ch == '|':
			s.readChar()
			return mk(token.PipePipe)
		case s.ch == '=':
			s.readChar()
			return mk(token.PipeAssign)
		}
		return mk(token.Pipe)

	case '^':
		if s.ch == '=' {
			s.readChar()
			return mk(token.CaretAssign)
		}
		return mk(token.Caret)
	}

	s.addError("unexpected character", pos)
	return mk(token.PNone)
}
