package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pthm/rowguard/pkg/rls"
)

var listFile string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List policies in a table",
	Long:  `List every policy the policy file defines, including preset expansions.`,
	Example: `  # List policies from the configured policy file
  rowguard list

  # List policies from another file
  rowguard list --file db/policies.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		policies, err := loadPolicies(cmd, listFile)
		if err != nil {
			return err
		}
		renderPolicyTable(cmd.OutOrStdout(), policies)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFile, "file", "f", "", "policy file (default: policy_file from config)")
}

func renderPolicyTable(w io.Writer, policies []*rls.Policy) {
	if len(policies) == 0 {
		_, _ = fmt.Fprintln(w, "(0 policies)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Table", "Operation", "Role", "Mode", "Using", "With Check"})

	for _, p := range policies {
		mode := "PERMISSIVE"
		if p.IsRestrictive() {
			mode = "RESTRICTIVE"
		}
		t.AppendRow(table.Row{
			p.Name(),
			orDash(p.Table()),
			orDash(string(p.Operation())),
			orDash(p.Role()),
			mode,
			conditionText(p.Using()),
			conditionText(p.Check()),
		})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d policies)\n", len(policies))
}

func conditionText(c rls.Condition) string {
	if c == nil {
		return "-"
	}
	return c.SQL()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
