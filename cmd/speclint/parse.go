package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"speclint/internal/ast"
	"speclint/internal/diag"
	"speclint/internal/lexer"
	"speclint/internal/parser"
	"speclint/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file>",
	Short: "Dump the structural tree of a spec file",
	Long:  `Parse a single spec file and print the tree of groups, examples, bindings and hooks`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
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
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	tree := parser.ParseFile(lx, parser.Options{Reporter: reporter})

	out := cmd.OutOrStdout()
	for _, root := range tree.Roots {
		dumpNode(out, root, 0)
	}

	if bag.Len() > 0 {
		bag.Sort()
		fmt.Fprint(out, diag.FormatTextDiagnostics(bag.Items(), fileSet))
	}
	return nil
}

// dumpNode печатает узел и его детей с отступом по глубине.
func dumpNode(w io.Writer, n ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch node := n.(type) {
	case *ast.GroupNode:
		fmt.Fprintf(w, "%sgroup %s %q [%d-%d]\n", indent, node.GroupKind, node.DescriptionText(), node.StartLine(), node.EndLine())
	case *ast.ExampleNode:
		desc := node.Description
		if !node.HasDescription {
			desc = "<one-liner>"
		}
		fmt.Fprintf(w, "%sexample %s %q expectations=%d [%d-%d]\n", indent, node.ExampleKind, desc, len(node.Expectations), node.StartLine(), node.EndLine())
	case *ast.BindingNode:
		fmt.Fprintf(w, "%sbinding %s %q [%d-%d]\n", indent, node.BindingKind, node.Name, node.StartLine(), node.EndLine())
	case *ast.HookNode:
		scope := node.Scope.String()
		if scope == "" {
			scope = "(default)"
		}
		fmt.Fprintf(w, "%shook %s %s [%d-%d]\n", indent, node.HookKind, scope, node.StartLine(), node.EndLine())
	default:
		fmt.Fprintf(w, "%sblock [%d-%d]\n", indent, n.StartLine(), n.EndLine())
	}
	for _, child := range n.Children() {
		dumpNode(w, child, depth+1)
	}
}
