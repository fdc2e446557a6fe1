package token

import (
	"tstrip/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
	// NewlineBefore reports whether any leading trivia contains a line
	// terminator. Regex detection and ASI both want this bit without
	// rescanning the trivia.
	NewlineBefore bool
}

// IsLiteral reports whether the token is a literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, RegexLit, TemplateFull, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsIdentLike reports whether the token may occupy an identifier position.
// Contextual keywords qualify; reserved words do not.
func (t Token) IsIdentLike() bool {
	return t.Kind == Ident || IsContextual(t.Kind)
}

// IsKeyword reports whether the token is a reserved or contextual word.
func (t Token) IsKeyword() bool {
	return IsReserved(t.Kind) || IsContextual(t.Kind)
}

// IsAssignOp reports whether the token is an assignment operator.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign,
		PercentAssign, StarStarAssign, ShlAssign, ShrAssign, UShrAssign,
		AmpAssign, PipeAssign, CaretAssign, AndAndAssign, OrOrAssign, QQAssign:
		return true
	default:
		return false
	}
}
