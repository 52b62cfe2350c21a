package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matrun/matrun/internal/docsgate"
	"github.com/matrun/matrun/internal/runner"
	"github.com/matrun/matrun/internal/ui"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Run the documentation gate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, root, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		gate := docsgate.New(cfg, root, runner.NewLocal())
		run := gate.Run(cmd.Context())

		fmt.Print(ui.GateSummary(run))
		if err := recordGate(cmd, run); err != nil {
			fmt.Fprintln(os.Stderr, "warning: history not recorded:", err)
		}
		if !run.Passed() {
			return fmt.Errorf("docs gate failed")
		}
		return nil
	},
}
