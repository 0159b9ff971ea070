package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pthm/rowguard/internal/cli"
	"github.com/pthm/rowguard/pkg/policyfile"
	"github.com/pthm/rowguard/pkg/rls"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "rowguard",
	Short: "PostgreSQL row-level security policy generator",
	Long: `rowguard - PostgreSQL row-level security policy generator

Rowguard turns a YAML description of row-level security policies into
CREATE POLICY statements, with optional index suggestions for the columns
the policies filter on.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for help/completion/version commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		logger, err := cli.NewLogger(cmd.ErrOrStderr(), cfg.Log, verbose, quiet)
		if err != nil {
			return cli.ConfigError("configuring logger", err)
		}
		cmd.SetContext(cli.WithLogger(cmd.Context(), logger))
		logger.Debug("configuration loaded", "config", configPath, "policy_file", cfg.PolicyFile)

		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command group IDs
const (
	groupPolicy  = "policy"
	groupUtility = "utility"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover rowguard.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupPolicy, Title: "Policies:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	renderCmd.GroupID = groupPolicy
	listCmd.GroupID = groupPolicy
	validateCmd.GroupID = groupPolicy
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)

	configCmd.GroupID = groupUtility
	versionCmd.GroupID = groupUtility
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context, which ends watch mode cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		cli.ExitWithError(err)
	}
}

// loadPolicies reads and builds the policy file chosen by flagPath or the
// configuration.
func loadPolicies(cmd *cobra.Command, flagPath string) ([]*rls.Policy, error) {
	path := cfg.ResolvedPolicyFile(flagPath)
	cli.Logger(cmd.Context()).Debug("loading policy file", "file", path)

	policies, err := policyfile.Load(path)
	if err != nil {
		return nil, cli.PolicyFileError("loading policy file", err)
	}
	return policies, nil
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveBool returns true if any of the provided values is true.
func resolveBool(values ...bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}
