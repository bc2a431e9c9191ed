package lexer

import (
	"speclint/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор, константу или ключевое слово.
// Идентификаторы методов могут заканчиваться на '?' или '!'.
// 'ident:' без пробела перед ':' — это label (хэш-ключ).
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	first := lx.cursor.Bump()

	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// '?' / '!' как часть имени метода, но не перед '=' (это != или оператор)
	if b0, b1, ok := lx.cursor.Peek2(); ok && (b0 == '?' || b0 == '!') && b1 != '=' {
		lx.cursor.Bump()
	} else if !ok && (lx.cursor.Peek() == '?' || lx.cursor.Peek() == '!') {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: sp, Text: text}
	}

	kind := token.Ident
	if isUpper(first) {
		kind = token.ConstIdent
	}

	// label: двоеточие сразу за именем, но не '::'
	if b0, b1, ok2 := lx.cursor.Peek2(); ok2 && b0 == ':' && b1 != ':' {
		lx.cursor.Bump()
		sp = lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: token.Label,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	return token.Token{Kind: kind, Span: sp, Text: text}
}

// scanIVar сканирует @name (и @@name как тот же вид).
func (lx *Lexer) scanIVar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'
	lx.cursor.Eat('@')
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.IVar,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanGVar сканирует $name.
func (lx *Lexer) scanGVar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.GVar,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
