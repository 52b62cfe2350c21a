package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matrun/matrun/internal/quality"
	"github.com/matrun/matrun/internal/report"
	"github.com/matrun/matrun/internal/runner"
	"github.com/matrun/matrun/internal/ui"
)

var qualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Run the quality gate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, root, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		gate := quality.New(cfg, root, runner.NewLocal())
		run := gate.Run(cmd.Context())

		fmt.Print(ui.GateSummary(run))
		if err := recordGate(cmd, run); err != nil {
			fmt.Fprintln(os.Stderr, "warning: history not recorded:", err)
		}
		if !run.Passed() {
			return fmt.Errorf("quality gate failed")
		}
		return nil
	},
}

// recordGate saves a gate run to history, best effort.
func recordGate(cmd *cobra.Command, run *report.GateRun) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.Runs().SaveGate(context.Background(), run)
}
