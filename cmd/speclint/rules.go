package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"speclint/internal/diag"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List all style rules",
	Long:  `List every style rule with its code and short description`,
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "text", "output format (text|json)")
}

type ruleInfo struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

func runRules(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	infos := make([]ruleInfo, 0, len(diag.RuleCodes()))
	for _, code := range diag.RuleCodes() {
		infos = append(infos, ruleInfo{
			Code:  code.ID(),
			Name:  code.Name(),
			Title: code.Title(),
		})
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "text":
		for _, info := range infos {
			fmt.Fprintf(out, "%s  %-40s %s\n", info.Code, info.Name, info.Title)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be text or json)", format)
	}
}
