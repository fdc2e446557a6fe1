package lexer

import (
	"tstrip/internal/diag"
	"tstrip/internal/token"
)

// scanNumber scans decimal, hex, binary, octal, and legacy-octal-free
// numeric literals, with '_' separators, exponents, and a bigint 'n' suffix.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	legacyOctal := false
	if lx.cursor.Peek() == '0' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
			switch b1 {
			case 'x', 'X':
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.scanDigits(isHex)
				return lx.finishNumber(start)
			case 'b', 'B':
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.scanDigits(isBin)
				return lx.finishNumber(start)
			case 'o', 'O':
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.scanDigits(isOct)
				return lx.finishNumber(start)
			}
			// '0' straight into a digit: a legacy octal (or zero-padded
			// decimal) literal. Scan it whole, then reject.
			legacyOctal = isDec(b1)
		}
	}

	// integer part (may be empty for ".5")
	lx.scanDigits(isDec)

	// fraction
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.scanDigits(isDec)
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// "1e" followed by a non-digit: the 'e' belongs to what follows
			lx.cursor.Reset(mark)
		} else {
			lx.scanDigits(isDec)
		}
	}

	if legacyOctal {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "octal literals are not allowed; use the '0o' prefix")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	return lx.finishNumber(start)
}

func (lx *Lexer) scanDigits(ok func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if ok(b) {
			lx.cursor.Bump()
			continue
		}
		// numeric separator between digits
		if b == '_' && ok(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			continue
		}
		break
	}
}

func (lx *Lexer) finishNumber(start Mark) token.Token {
	// bigint suffix
	lx.cursor.Eat('n')

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// a number may not run straight into an identifier: 3in, 0x1G
	if b := lx.cursor.Peek(); isIdentStartByte(b) || isDec(b) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		full := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, full, "invalid numeric literal")
		return token.Token{Kind: token.Invalid, Span: full, Text: string(lx.file.Content[full.Start:full.End])}
	}

	return token.Token{Kind: token.NumberLit, Span: sp, Text: text}
}
