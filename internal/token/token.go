package token

import (
	"speclint/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a string, symbol, numeric,
// percent, regexp, boolean, or nil literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case SymbolLit, StringLit, PercentLit, RegexpLit, IntLit, FloatLit, KwTrue, KwFalse, KwNil:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a structural keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwDo, KwEnd, KwDef, KwIf, KwUnless, KwCase, KwWhile, KwUntil, KwFor,
		KwBegin, KwClass, KwModule, KwThen, KwElse, KwElsif, KwWhen, KwIn,
		KwRescue, KwEnsure, KwReturn, KwYield, KwAnd, KwOr, KwNot, KwNil,
		KwTrue, KwFalse, KwSelf, KwBreak, KwNext, KwSuper:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is a plain or constant identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == ConstIdent }

// OpensWithEnd reports whether the keyword always opens a block that a
// matching 'end' must close. 'if'/'unless'/'while'/'until' are excluded:
// they only open a block in statement position, which the parser decides.
func (t Token) OpensWithEnd() bool {
	switch t.Kind {
	case KwDo, KwDef, KwCase, KwBegin, KwClass, KwModule, KwFor:
		return true
	default:
		return false
	}
}

// HasNewlineBefore reports whether any leading trivia contains a newline.
func (t Token) HasNewlineBefore() bool {
	for _, tr := range t.Leading {
		if tr.Kind == TriviaNewline {
			return true
		}
	}
	return false
}
