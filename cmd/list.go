package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matrun/matrun/internal/matrix"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the environments the matrix expands to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		envs := matrix.Expand(cfg.Matrix)
		if len(envs) == 0 {
			fmt.Println("The matrix expands to no environments.")
			return nil
		}

		fmt.Printf("%-28s  %-10s  %s\n", "Environment", "Runtime", "Framework")
		fmt.Println(strings.Repeat("─", 56))
		for _, e := range envs {
			fw := "-"
			if e.HasFramework() {
				fw = e.Framework + " " + e.Range
			}
			fmt.Printf("%-28s  %-10s  %s\n", e.Name, e.Runtime.Name, fw)
		}
		return nil
	},
}
