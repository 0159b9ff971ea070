package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/rowguard/internal/cli"
	"github.com/pthm/rowguard/pkg/rls"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the policy file",
	Long: `Decode the policy file, build every policy and render it.

Fails with exit code 3 if the file cannot be decoded, a condition is
malformed, or a policy is missing its table or operation. The SQL itself is
not checked against a database.`,
	Example: `  # Validate the configured policy file
  rowguard validate

  # Validate a specific file
  rowguard validate --file db/policies.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		policies, err := loadPolicies(cmd, validateFile)
		if err != nil {
			return err
		}

		for _, p := range policies {
			if _, err := p.SQLWithOptions(rls.RenderOptions{IncludeIndexes: true}); err != nil {
				return cli.PolicyFileError("validating policies", err)
			}
		}

		if !quiet {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Policy file is valid. Found %d policies:\n", len(policies))
			for _, p := range policies {
				fmt.Fprintf(out, "  - %s (%s on %s)\n", p.Name(), p.Operation(), p.Table())
			}
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "policy file (default: policy_file from config)")
}
