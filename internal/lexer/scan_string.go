package lexer

import (
	"speclint/internal/diag"
	"speclint/internal/token"
)

// scanString сканирует '...' или "..." одной лексемой.
// В двойных кавычках поддерживаются escape-последовательности и
// интерполяция #{...} (с вложенными скобками).
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка

	terminated := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			terminated = true
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		if quote == '"' && b == '#' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '{' {
				lx.cursor.Bump() // '#'
				lx.cursor.Bump() // '{'
				depth := 1
				for !lx.cursor.EOF() && depth > 0 {
					switch lx.cursor.Bump() {
					case '{':
						depth++
					case '}':
						depth--
					}
				}
				continue
			}
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	if !terminated {
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	}
	return token.Token{
		Kind: token.StringLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanSymbolOrColon различает ':', '::', :name и :"строковые" символы.
func (lx *Lexer) scanSymbolOrColon() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // ':'

	if lx.cursor.Peek() == ':' {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.ColonColon, Span: sp, Text: "::"}
	}

	b := lx.cursor.Peek()
	switch {
	case isIdentStartByte(b) || b == '_':
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if b2 := lx.cursor.Peek(); b2 == '?' || b2 == '!' {
			lx.cursor.Bump()
		}
	case b == '"' || b == '\'':
		lx.scanString(b)
	default:
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Colon, Span: sp, Text: ":"}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.SymbolLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// isPercentLiteralStart распознаёт %w[...], %i(...), %q{...} и т.п.
// '%' считается литералом только в позиции выражения.
func (lx *Lexer) isPercentLiteralStart() bool {
	if !lx.inExprPosition() {
		return false
	}
	_, b1, ok := lx.cursor.Peek2()
	if !ok {
		return false
	}
	if isPercentDelimiter(b1) {
		return true
	}
	switch b1 {
	case 'w', 'W', 'i', 'I', 'q', 'Q', 'r', 's':
		b2 := lx.cursor.PeekAt(2)
		return isPercentDelimiter(b2)
	}
	return false
}

func isPercentDelimiter(b byte) bool {
	switch b {
	case '[', '(', '{', '<', '|', '!', '/':
		return true
	}
	return false
}

func closingDelimiter(open byte) byte {
	switch open {
	case '[':
		return ']'
	case '(':
		return ')'
	case '{':
		return '}'
	case '<':
		return '>'
	}
	return open
}

// scanPercentLiteral сканирует %w[...] и родственные литералы одной лексемой.
// Скобочные разделители поддерживают вложенность.
func (lx *Lexer) scanPercentLiteral() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '%'

	sigil := byte(0)
	if !isPercentDelimiter(lx.cursor.Peek()) {
		sigil = lx.cursor.Bump()
	}

	open := lx.cursor.Bump()
	closing := closingDelimiter(open)
	depth := 1

	for !lx.cursor.EOF() && depth > 0 {
		b := lx.cursor.Bump()
		switch b {
		case '\\':
			lx.cursor.Bump()
		case open:
			if closing != open {
				depth++
			}
		case closing:
			depth--
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedPercent, sp, "unterminated percent literal")
	}

	kind := token.PercentLit
	if sigil == 'r' {
		kind = token.RegexpLit
	}
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanRegexp сканирует /.../ с модификаторами.
func (lx *Lexer) scanRegexp() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	terminated := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump()
			continue
		}
		if b == '/' {
			terminated = true
			break
		}
		if b == '\n' {
			// регулярки не переживают перевод строки — это было деление
			break
		}
	}

	if !terminated {
		lx.cursor.Reset(start)
		lx.cursor.Bump() // '/'
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Slash, Span: sp, Text: "/"}
	}

	// модификаторы: /re/im
	for isIdentStartByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.RegexpLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// isHeredocStart распознаёт <<~EOS / <<-EOS / <<EOS в позиции выражения.
func (lx *Lexer) isHeredocStart() bool {
	if !lx.inExprPosition() {
		return false
	}
	_, b1, ok := lx.cursor.Peek2()
	if !ok {
		return false
	}
	if b1 != '<' {
		return false
	}
	b2 := lx.cursor.PeekAt(2)
	if b2 == '~' || b2 == '-' {
		b3 := lx.cursor.PeekAt(3)
		return isUpper(b3) || b3 == '"' || b3 == '\''
	}
	return isUpper(b2)
}

// scanHeredoc сканирует маркер heredoc (<<~TEXT) одной строковой лексемой.
// Тело живёт после конца текущей строки: остаток строки — в том числе
// закрывающие скобки в eq(<<~TEXT) — лексится обычным образом, а тело
// съедается как trivia на переходе к следующей строке.
func (lx *Lexer) scanHeredoc() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '<'
	lx.cursor.Bump() // '<'
	if b := lx.cursor.Peek(); b == '~' || b == '-' {
		lx.cursor.Bump()
	}

	quote := byte(0)
	if b := lx.cursor.Peek(); b == '"' || b == '\'' {
		quote = b
		lx.cursor.Bump()
	}

	tagStart := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tag := string(lx.file.Content[uint32(tagStart):lx.cursor.Off])
	if quote != 0 {
		lx.cursor.Eat(quote)
	}

	lx.pending = append(lx.pending, tag)

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.StringLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func trimHeredocLine(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	j := len(line)
	for j > i && (line[j-1] == ' ' || line[j-1] == '\t' || line[j-1] == '\r') {
		j--
	}
	return line[i:j]
}
