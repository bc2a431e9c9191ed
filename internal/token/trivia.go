package token

import "speclint/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	TriviaLineContinuation
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "space"
	case TriviaNewline:
		return "newline"
	case TriviaLineComment:
		return "comment"
	case TriviaBlockComment:
		return "block-comment"
	case TriviaLineContinuation:
		return "continuation"
	}
	return "trivia"
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
