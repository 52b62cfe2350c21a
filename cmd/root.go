package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matrun/matrun/internal/config"
	"github.com/matrun/matrun/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "matrun",
	Short:        "Build and test matrix runner",
	Long:         "Matrun — matrix runner that tests a project across runtimes and framework versions, with quality and docs gates.",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatrix(cmd, nil)
	},
}

// Execute runs the CLI. Cancelling ctx stops in-flight environments;
// finished ones keep their reports.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to matrun.yaml (overrides MATRUN_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to the history database (overrides MATRUN_DB env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(qualityCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(selfcheckCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig finds and parses the config, returning it together with
// the project root every relative path in it resolves against.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	flagPath, _ := cmd.Flags().GetString("config")
	path, err := config.Find(flagPath)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, filepath.Dir(path), nil
}

// resolveDBPath returns the history database path using --db flag
// (highest priority), then MATRUN_DB env var, then the default XDG
// path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}
