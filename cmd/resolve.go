package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matrun/matrun/internal/deps"
	"github.com/matrun/matrun/internal/engine"
	"github.com/matrun/matrun/internal/matrix"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [env...]",
	Short: "Resolve and lock dependencies without running tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, root, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		envs := matrix.Expand(cfg.Matrix)
		envs, err = matrix.Select(envs, args)
		if err != nil {
			return err
		}

		nameWidth := 0
		for _, e := range envs {
			if len(e.Name) > nameWidth {
				nameWidth = len(e.Name)
			}
		}

		eng := engine.New(cfg, root)
		failed := 0
		for _, env := range envs {
			lock, err := eng.Resolve(env)
			if err != nil {
				failed++
				fmt.Printf("✗ %-*s  %v\n", nameWidth, env.Name, err)
				continue
			}
			workspace := filepath.Join(root, engine.WorkspaceDir, env.Name)
			if err := os.MkdirAll(workspace, 0o755); err != nil {
				return err
			}
			if err := lock.Write(filepath.Join(workspace, "lock.json")); err != nil {
				return err
			}
			fmt.Printf("✓ %-*s  %s\n", nameWidth, env.Name, pinSummary(lock))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d environments failed to resolve", failed, len(envs))
		}
		return nil
	},
}

// pinSummary renders the locked pins on one line.
func pinSummary(lock *deps.Lockfile) string {
	if len(lock.Packages) == 0 {
		return "(no dependencies)"
	}
	pins := make([]string, len(lock.Packages))
	for i, p := range lock.Packages {
		pins[i] = p.Name + " " + p.Version
	}
	return strings.Join(pins, ", ")
}
