package lexer

import (
	"tstrip/internal/diag"
	"tstrip/internal/token"
)

// scanOperatorOrPunct scans punctuation and operators greedily, longest
// match first.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	mk := func(kind token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	b := lx.cursor.Peek()
	switch b {
	case '(':
		lx.cursor.Bump()
		return mk(token.LParen)
	case ')':
		lx.cursor.Bump()
		return mk(token.RParen)
	case '{':
		lx.cursor.Bump()
		return mk(token.LBrace)
	case '}':
		lx.cursor.Bump()
		return mk(token.RBrace)
	case '[':
		lx.cursor.Bump()
		return mk(token.LBracket)
	case ']':
		lx.cursor.Bump()
		return mk(token.RBracket)
	case ';':
		lx.cursor.Bump()
		return mk(token.Semicolon)
	case ',':
		lx.cursor.Bump()
		return mk(token.Comma)
	case '@':
		lx.cursor.Bump()
		return mk(token.At)
	case '~':
		lx.cursor.Bump()
		return mk(token.Tilde)
	case ':':
		lx.cursor.Bump()
		return mk(token.Colon)

	case '.':
		if lx.try3('.', '.', '.') {
			return mk(token.DotDotDot)
		}
		lx.cursor.Bump()
		return mk(token.Dot)

	case '?':
		if lx.try3('?', '?', '=') {
			return mk(token.QQAssign)
		}
		if lx.try2('?', '?') {
			return mk(token.QuestionQuestion)
		}
		// '?.' only when not followed by a digit: 'x?.5:y' is ternary
		if b1 := lx.cursor.PeekAt(1); b1 == '.' && !isDec(lx.cursor.PeekAt(2)) {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return mk(token.QuestionDot)
		}
		lx.cursor.Bump()
		return mk(token.Question)

	case '=':
		if lx.try3('=', '=', '=') {
			return mk(token.EqEqEq)
		}
		if lx.try2('=', '=') {
			return mk(token.EqEq)
		}
		if lx.try2('=', '>') {
			return mk(token.Arrow)
		}
		lx.cursor.Bump()
		return mk(token.Assign)

	case '!':
		if lx.try3('!', '=', '=') {
			return mk(token.BangEqEq)
		}
		if lx.try2('!', '=') {
			return mk(token.BangEq)
		}
		lx.cursor.Bump()
		return mk(token.Bang)

	case '+':
		if lx.try2('+', '+') {
			return mk(token.PlusPlus)
		}
		if lx.try2('+', '=') {
			return mk(token.PlusAssign)
		}
		lx.cursor.Bump()
		return mk(token.Plus)

	case '-':
		if lx.try2('-', '-') {
			return mk(token.MinusMinus)
		}
		if lx.try2('-', '=') {
			return mk(token.MinusAssign)
		}
		lx.cursor.Bump()
		return mk(token.Minus)

	case '*':
		if lx.try3('*', '*', '=') {
			return mk(token.StarStarAssign)
		}
		if lx.try2('*', '*') {
			return mk(token.StarStar)
		}
		if lx.try2('*', '=') {
			return mk(token.StarAssign)
		}
		lx.cursor.Bump()
		return mk(token.Star)

	case '/':
		if lx.try2('/', '=') {
			return mk(token.SlashAssign)
		}
		lx.cursor.Bump()
		return mk(token.Slash)

	case '%':
		if lx.try2('%', '=') {
			return mk(token.PercentAssign)
		}
		lx.cursor.Bump()
		return mk(token.Percent)

	case '<':
		if lx.try3('<', '<', '=') {
			return mk(token.ShlAssign)
		}
		if lx.try2('<', '<') {
			return mk(token.Shl)
		}
		if lx.try2('<', '=') {
			return mk(token.LtEq)
		}
		lx.cursor.Bump()
		return mk(token.Lt)

	case '>':
		// Always a single Gt. Nested generics end in '>>' and '>>=' runs
		// (Array<Array<T>>= x), so compounding here would glom type closers.
		// The parser re-joins adjacent Gt runs into >>, >>>, >=, >>= when it
		// is parsing an expression.
		lx.cursor.Bump()
		return mk(token.Gt)

	case '&':
		if lx.try3('&', '&', '=') {
			return mk(token.AndAndAssign)
		}
		if lx.try2('&', '&') {
			return mk(token.AndAnd)
		}
		if lx.try2('&', '=') {
			return mk(token.AmpAssign)
		}
		lx.cursor.Bump()
		return mk(token.Amp)

	case '|':
		if lx.try3('|', '|', '=') {
			return mk(token.OrOrAssign)
		}
		if lx.try2('|', '|') {
			return mk(token.OrOr)
		}
		if lx.try2('|', '=') {
			return mk(token.PipeAssign)
		}
		lx.cursor.Bump()
		return mk(token.Pipe)

	case '^':
		if lx.try2('^', '=') {
			return mk(token.CaretAssign)
		}
		lx.cursor.Bump()
		return mk(token.Caret)
	}

	lx.cursor.Bump()
	tok := mk(token.Invalid)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unexpected character")
	return tok
}
