// Package driver связывает конвейер проверки: обход файлов, параллельный
// запуск lexer/parser/rules по каждому из них, кеш результатов и код выхода.
package driver
