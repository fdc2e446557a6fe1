package lexer

import (
	"tstrip/internal/diag"
	"tstrip/internal/token"
)

// scanRegex scans a regular expression literal, including flags. Character
// classes suspend the meaning of '/' until the ']'.
func (lx *Lexer) scanRegex() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	inClass := false
	closed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
		switch b {
		case '\\':
			lx.cursor.Bump()
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				closed = true
			}
		}
		if closed {
			break
		}
	}

	if !closed {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedRegex, sp, "unterminated regular expression literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	// flags
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.RegexLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
