package lexer

import (
	"tstrip/internal/diag"
	"tstrip/internal/source"
)

// Reporter is a thin sink for lexical errors; the lexer only calls it and
// keeps scanning. Formatting is the caller's concern.
type Reporter interface {
	Report(code diag.Code, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // may be nil: errors are dropped but lexing continues
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}
