package lexer

import (
	"speclint/internal/diag"
	"speclint/internal/token"
)

// scanOperatorOrPunct сканирует операторы и пунктуацию (максимально жадно).
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	kind := token.Invalid
	switch b {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semicolon
	case '~':
		kind = token.Tilde
	case '^':
		kind = token.Caret
	case '?':
		kind = token.Question

	case '.':
		kind = token.Dot
		if lx.cursor.Eat('.') {
			kind = token.DotDot
			if lx.cursor.Eat('.') {
				kind = token.DotDotDot
			}
		}

	case '=':
		kind = token.Assign
		switch {
		case lx.cursor.Eat('='):
			kind = token.EqEq
			if lx.cursor.Eat('=') {
				kind = token.EqEqEq
			}
		case lx.cursor.Eat('>'):
			kind = token.Arrow
		case lx.cursor.Eat('~'):
			kind = token.Match
		}

	case '!':
		kind = token.Bang
		switch {
		case lx.cursor.Eat('='):
			kind = token.BangEq
		case lx.cursor.Eat('~'):
			kind = token.NotMatch
		}

	case '<':
		kind = token.Lt
		switch {
		case lx.cursor.Eat('='):
			kind = token.LtEq
			if lx.cursor.Eat('>') {
				kind = token.Spaceship
			}
		case lx.cursor.Eat('<'):
			kind = token.Shl
		}

	case '>':
		kind = token.Gt
		if lx.cursor.Eat('=') {
			kind = token.GtEq
		}

	case '+':
		kind = token.Plus
		if lx.cursor.Eat('=') {
			kind = token.PlusAssign
		}

	case '-':
		kind = token.Minus
		switch {
		case lx.cursor.Eat('='):
			kind = token.MinusAssign
		case lx.cursor.Eat('>'):
			kind = token.RArrow
		}

	case '*':
		kind = token.Star
		switch {
		case lx.cursor.Eat('*'):
			kind = token.StarStar
		case lx.cursor.Eat('='):
			kind = token.StarAssign
		}

	case '/':
		kind = token.Slash
		if lx.cursor.Eat('=') {
			kind = token.SlashAssign
		}

	case '%':
		kind = token.Percent

	case '|':
		kind = token.Pipe
		if lx.cursor.Eat('|') {
			kind = token.PipePipe
			if lx.cursor.Eat('=') {
				kind = token.OrAssign
			}
		}

	case '&':
		kind = token.Amp
		switch {
		case lx.cursor.Eat('&'):
			kind = token.AmpAmp
			if lx.cursor.Eat('=') {
				kind = token.AndAssign
			}
		case lx.cursor.Eat('.'):
			kind = token.SafeNav
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if kind == token.Invalid {
		lx.errLex(diag.LexUnknownChar, sp, "unknown character "+text)
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
