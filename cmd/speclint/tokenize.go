package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"speclint/internal/diag"
	"speclint/internal/lexer"
	"speclint/internal/source"
	"speclint/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file>",
	Short: "Dump the token stream of a spec file",
	Long:  `Tokenize a single spec file and print every token with its position; useful for debugging the lexer`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().Bool("trivia", false, "include leading trivia of every token")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	showTrivia, err := cmd.Flags().GetBool("trivia")
	if err != nil {
		return fmt.Errorf("failed to get trivia flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	file := fileSet.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	out := cmd.OutOrStdout()
	for {
		tok := lx.Next()
		pos, _ := fileSet.Resolve(tok.Span)
		if showTrivia {
			for _, tr := range tok.Leading {
				trPos, _ := fileSet.Resolve(tr.Span)
				fmt.Fprintf(out, "%4d:%-3d   trivia %v %q\n", trPos.Line, trPos.Col, tr.Kind, tr.Text)
			}
		}
		fmt.Fprintf(out, "%4d:%-3d %s %q\n", pos.Line, pos.Col, tok.Kind, tok.Text)
		if tok.Kind == token.EOF {
			break
		}
	}

	if bag.Len() > 0 {
		bag.Sort()
		fmt.Fprint(out, diag.FormatTextDiagnostics(bag.Items(), fileSet))
	}
	return nil
}
