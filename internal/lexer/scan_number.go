package lexer

import (
	"speclint/internal/diag"
	"speclint/internal/token"
)

// scanNumber сканирует целые и дробные литералы (с '_' разделителями,
// 0x/0b/0o префиксами).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X' || b1 == 'b' || b1 == 'B' || b1 == 'o' || b1 == 'O') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digits := 0
		for isRadixDigit(lx.cursor.Peek(), b1) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
			digits++
		}
		sp := lx.cursor.SpanFrom(start)
		if digits == 0 {
			lx.errLex(diag.LexBadNumber, sp, "missing digits after radix prefix")
		}
		return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// дробная часть: '.' только если за ней цифра (иначе это вызов метода)
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	// экспонента
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// не экспонента, откатываемся
			lx.cursor.Reset(mark)
		} else {
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func isRadixDigit(b, radix byte) bool {
	switch radix {
	case 'x', 'X':
		return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	case 'b', 'B':
		return b == '0' || b == '1'
	default:
		return b >= '0' && b <= '7'
	}
}
