// Package rules contains the style checks applied to parsed spec files.
//
// Каждое правило — независимая проверка дерева с фиксированным кодом и
// kebab-case идентификатором. Движок запускает правила в порядке кодов и
// гарантирует, что сбой одного правила не прерывает остальные.
package rules
