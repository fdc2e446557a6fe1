package lexer

import (
	"tstrip/internal/source"
	"tstrip/internal/token"
)

// Lexer produces TypeScript tokens over a single source file.
//
// Two pieces of scanner state cross token boundaries: the kind of the
// previous significant token (slash disambiguation between division and a
// regex literal) and a stack of brace depths for open template literals
// (so '}' can resume template scanning instead of closing a block).
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1-token lookahead buffer
	hold   []token.Trivia // pending leading trivia
	prev   token.Kind     // last significant token handed out
	// templates holds one brace-depth counter per open template literal.
	templates []uint32
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
		prev:   token.Invalid,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		lx.prev = tok.Kind
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
		tok.Leading = lx.hold
		tok.NewlineBefore = triviaHasNewline(lx.hold)
		lx.hold = nil
		lx.prev = token.EOF
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '`':
		tok = lx.scanTemplate()

	case ch == '}' && lx.atTemplateBoundary():
		tok = lx.scanTemplateContinue()

	case ch == '/' && lx.regexAllowed():
		tok = lx.scanRegex()

	case ch == '#':
		tok = lx.scanPrivateIdent()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch) || lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	// Track nested braces inside template interpolations.
	if n := len(lx.templates); n > 0 {
		switch tok.Kind {
		case token.LBrace:
			lx.templates[n-1]++
		case token.RBrace:
			lx.templates[n-1]--
		}
	}

	tok.Leading = lx.hold
	tok.NewlineBefore = triviaHasNewline(lx.hold)
	lx.hold = nil
	lx.prev = tok.Kind
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	prev := lx.prev
	t := lx.Next()
	lx.look = &t
	lx.prev = prev // Peek must not disturb slash disambiguation
	return t
}

// atTemplateBoundary reports whether the current '}' closes a template
// interpolation rather than a block.
func (lx *Lexer) atTemplateBoundary() bool {
	n := len(lx.templates)
	return n > 0 && lx.templates[n-1] == 0
}

// regexAllowed applies the standard prev-token heuristic: a slash starts a
// regex literal unless the previous token could end an expression.
func (lx *Lexer) regexAllowed() bool {
	switch lx.prev {
	case token.Ident, token.PrivateIdent,
		token.NumberLit, token.StringLit, token.RegexLit,
		token.TemplateFull, token.TemplateTail,
		token.RParen, token.RBracket,
		token.PlusPlus, token.MinusMinus,
		token.KwThis, token.KwSuper, token.KwTrue, token.KwFalse, token.KwNull:
		return false
	}
	// Contextual words in identifier position also end expressions, except
	// the operator-like ones.
	if token.IsContextual(lx.prev) {
		switch lx.prev {
		case token.KwAwait, token.KwYield, token.KwOf, token.KwAs,
			token.KwSatisfies, token.KwKeyof, token.KwIs:
			return true
		default:
			return false
		}
	}
	return true
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func triviaHasNewline(trivia []token.Trivia) bool {
	for i := range trivia {
		if trivia[i].HasNewline() {
			return true
		}
	}
	return false
}
