package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/rowguard/internal/cli"
	"github.com/pthm/rowguard/pkg/rls"
)

var (
	renderFile      string
	renderIndexes   bool
	renderReplace   bool
	renderOut       string
	renderWatch     bool
	renderExtractor string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render CREATE POLICY statements",
	Long: `Render every policy in the policy file as PostgreSQL SQL.

Explicit policies come first, in file order, followed by preset expansions.
With --watch the file is re-rendered every time it changes until interrupted.`,
	Example: `  # Print policies to stdout
  rowguard render

  # Include index suggestions and DROP POLICY IF EXISTS guards
  rowguard render --indexes --replace

  # Keep a migration file up to date while editing
  rowguard render --file db/policies.yaml --out db/policies.sql --watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := columnExtractor(resolveString(renderExtractor, cfg.Render.Extractor))
		if err != nil {
			return cli.ConfigError("resolving extractor", err)
		}

		opts := rls.RenderOptions{
			IncludeIndexes: resolveBool(renderIndexes, cfg.Render.Indexes),
			Extractor:      extractor,
		}
		replace := resolveBool(renderReplace, cfg.Render.Replace)
		out := resolveString(renderOut, cfg.Render.Output)

		render := func() error {
			policies, err := loadPolicies(cmd, renderFile)
			if err != nil {
				return err
			}
			sql, err := renderPolicies(policies, opts, replace)
			if err != nil {
				return cli.PolicyFileError("rendering policies", err)
			}
			return writeOutput(cmd, out, sql, len(policies))
		}

		if !renderWatch {
			return render()
		}

		debounce, err := cfg.DebounceInterval()
		if err != nil {
			return cli.ConfigError("resolving watch settings", err)
		}
		return cli.Watch(cmd.Context(), cfg.ResolvedPolicyFile(renderFile), debounce, render)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "policy file (default: policy_file from config)")
	renderCmd.Flags().BoolVar(&renderIndexes, "indexes", false, "append CREATE INDEX IF NOT EXISTS suggestions")
	renderCmd.Flags().BoolVar(&renderReplace, "replace", false, "precede each policy with DROP POLICY IF EXISTS")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "write SQL to this file instead of stdout")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "re-render whenever the policy file changes")
	renderCmd.Flags().StringVar(&renderExtractor, "extractor", "", "index column inference: pattern or comparison")
}

// columnExtractor maps an extractor name to its implementation.
func columnExtractor(name string) (rls.ColumnExtractor, error) {
	switch strings.ToLower(name) {
	case "", "pattern":
		return rls.PatternExtractor{}, nil
	case "comparison":
		return rls.ComparisonExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extractor %q (want pattern or comparison)", name)
	}
}

// renderPolicies renders the policies separated by blank lines. With replace,
// each CREATE POLICY is preceded by its DROP POLICY IF EXISTS.
func renderPolicies(policies []*rls.Policy, opts rls.RenderOptions, replace bool) (string, error) {
	if !replace {
		sql, err := rls.RenderAll(policies, opts)
		if err != nil {
			return "", err
		}
		return sql + "\n", nil
	}

	parts := make([]string, 0, len(policies))
	for _, p := range policies {
		drop, err := p.DropSQL()
		if err != nil {
			return "", err
		}
		create, err := p.SQLWithOptions(opts)
		if err != nil {
			return "", err
		}
		parts = append(parts, drop+"\n"+create)
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}

// writeOutput writes sql to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path, sql string, count int) error {
	logger := cli.Logger(cmd.Context())

	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), sql)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return cli.GeneralError("creating output directory", err)
		}
	}
	if err := os.WriteFile(path, []byte(sql), 0o644); err != nil {
		return cli.GeneralError("writing output", err)
	}
	logger.Info("policies written", "file", path, "policies", count)
	return nil
}
