package token

import "tstrip/internal/source"

// TriviaKind classifies non-semantic source text attached to tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

// Trivia is a run of whitespace or a comment preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// HasNewline reports whether the trivia contains a line terminator.
// Block comments may span lines, so the text is checked, not just the kind.
func (tr Trivia) HasNewline() bool {
	if tr.Kind == TriviaNewline {
		return true
	}
	for i := 0; i < len(tr.Text); i++ {
		if tr.Text[i] == '\n' {
			return true
		}
	}
	return false
}
