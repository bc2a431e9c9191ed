// Package parser строит структурное дерево spec-файла из потока токенов.
//
// The parser is deliberately shallow: it classifies statements by their head
// word (describe, it, let, before, ...), tracks block nesting and argument
// lists, and leaves everything else as opaque BlockNode statements. Full
// expression parsing is not needed to check layout and naming conventions.
package parser
