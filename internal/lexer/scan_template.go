package lexer

import (
	"tstrip/internal/diag"
	"tstrip/internal/token"
)

// scanTemplate scans from an opening backtick to either the closing backtick
// (TemplateFull) or the first interpolation '${' (TemplateHead, which opens
// an entry on the template stack).
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '`'
	return lx.scanTemplateRest(start, true)
}

// scanTemplateContinue resumes template scanning at the '}' that closes an
// interpolation, producing TemplateMiddle or TemplateTail.
func (lx *Lexer) scanTemplateContinue() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '}'
	return lx.scanTemplateRest(start, false)
}

func (lx *Lexer) scanTemplateRest(start Mark, opening bool) token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			lx.cursor.Bump()

		case b == '`':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			kind := token.TemplateFull
			if !opening {
				kind = token.TemplateTail
				lx.popTemplate()
			}
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}

		case b == '$' && lx.cursor.PeekAt(1) == '{':
			lx.cursor.Bump()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			kind := token.TemplateHead
			if opening {
				lx.templates = append(lx.templates, 0)
			} else {
				kind = token.TemplateMiddle
			}
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}

		default:
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if !opening {
		lx.popTemplate()
	}
	lx.errLex(diag.LexUnterminatedTemplate, sp, "unterminated template literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) popTemplate() {
	if n := len(lx.templates); n > 0 {
		lx.templates = lx.templates[:n-1]
	}
}
