package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"speclint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "speclint",
	Short: "Style checker for behavior-driven spec files",
	Long:  `speclint checks *_spec.rb files against layout and naming conventions`,
}

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 200, "maximum number of diagnostics per file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled решает, красить ли вывод, по флагу --color и типу потока.
func colorEnabled(mode string, out *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}
