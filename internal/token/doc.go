// Package token defines lexical token kinds and trivia for spec files.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Comments (# ... and =begin/=end) are represented as leading Trivia and
//     never appear in the main token stream.
//   - DSL words (describe, context, it, let, subject, before, ...) are plain
//     identifiers. They are classified by the parser, not the lexer.
package token
