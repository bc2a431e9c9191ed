package lexer

import (
	"speclint/internal/diag"
	"speclint/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ' и '\t' коалесцируются в один TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline
// - #... до \n -> TriviaLineComment
// - =begin ... =end (только с начала строки) -> TriviaBlockComment
// - \<newline> -> TriviaLineContinuation
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		// space/tabs
		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		// newlines (коалесцируем подряд)
		if b == '\n' {
			if len(lx.pending) > 0 {
				lx.consumeHeredocBodies(start)
				continue
			}
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		// # comment to end of line
		if b == '#' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaLineComment,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		// =begin ... =end block comment, only at line start
		if b == '=' && lx.cursor.AtLineStart() && lx.lineStartsWith("=begin") {
			lx.scanBlockCommentIntoHold()
			continue
		}

		// line continuation
		if b == '\\' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				lx.hold = append(lx.hold, token.Trivia{
					Kind: token.TriviaLineContinuation,
					Span: sp,
					Text: string(lx.file.Content[sp.Start:sp.End]),
				})
				continue
			}
		}

		// нет больше trivia
		break
	}

	// маркер heredoc без перевода строки после него
	if lx.cursor.EOF() && len(lx.pending) > 0 {
		for _, tag := range lx.pending {
			lx.errLex(diag.LexUnterminatedString, lx.EmptySpan(), "unterminated heredoc "+tag)
		}
		lx.pending = lx.pending[:0]
	}
}

// consumeHeredocBodies съедает тела heredoc, открытых на закончившейся строке:
// от '\n' до строк-терминаторов в порядке открытия маркеров.
func (lx *Lexer) consumeHeredocBodies(start Mark) {
	lx.cursor.Bump() // '\n'
	for _, tag := range lx.pending {
		terminated := false
		for !lx.cursor.EOF() {
			lineStart := lx.cursor.Mark()
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			line := string(lx.file.Content[uint32(lineStart):lx.cursor.Off])
			if !lx.cursor.EOF() {
				lx.cursor.Bump() // '\n'
			}
			if trimHeredocLine(line) == tag {
				terminated = true
				break
			}
		}
		if !terminated {
			lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated heredoc "+tag)
		}
	}
	lx.pending = lx.pending[:0]

	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: token.TriviaNewline,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func (lx *Lexer) lineStartsWith(prefix string) bool {
	for i := 0; i < len(prefix); i++ {
		if lx.cursor.PeekAt(uint32(i)) != prefix[i] {
			return false
		}
	}
	return true
}

// scanBlockCommentIntoHold потребляет =begin ... =end включая завершающую строку.
func (lx *Lexer) scanBlockCommentIntoHold() {
	start := lx.cursor.Mark()
	// съедаем строку с =begin
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}

	terminated := false
	for !lx.cursor.EOF() {
		lx.cursor.Bump() // '\n'
		if lx.lineStartsWith("=end") {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			terminated = true
			break
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if !terminated {
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated =begin comment")
	}
	lx.hold = append(lx.hold, token.Trivia{
		Kind: token.TriviaBlockComment,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
