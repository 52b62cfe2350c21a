package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matrun/matrun/internal/store"
	"github.com/matrun/matrun/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent matrix and gate runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		runs, err := st.Runs().List(ctx, limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		fmt.Printf("%-8s  %-19s  %-8s  %-16s  %s\n",
			"Run", "Started", "Kind", "Project", "Outcome")
		fmt.Println(strings.Repeat("─", 76))
		for _, r := range runs {
			fmt.Printf("%-8s  %-19s  %-8s  %-16s  %s\n",
				shortID(r.RunID),
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				r.Kind,
				r.Project,
				r.Outcome,
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <run-id> [env]",
	Short: "Show one recorded run, or one of its environments",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		summary, err := findRun(ctx, st, args[0])
		if err != nil {
			return err
		}

		if len(args) == 2 {
			rep, err := st.Runs().Env(ctx, summary.RunID, args[1])
			if err != nil {
				return err
			}
			fmt.Print(ui.EnvDetail(rep, 0))
			return nil
		}

		if summary.Kind == "matrix" {
			run, err := st.Runs().Matrix(ctx, summary.RunID)
			if err != nil {
				return err
			}
			fmt.Print(ui.MatrixSummary(run, 0))
			return nil
		}
		gate, err := st.Runs().Gate(ctx, summary.RunID)
		if err != nil {
			return err
		}
		fmt.Print(ui.GateSummary(gate))
		return nil
	},
}

// findRun matches a run id prefix against the recorded history, so the
// dispatch between matrix and gate views knows which kind it has.
func findRun(ctx context.Context, st *store.Store, prefix string) (store.RunSummary, error) {
	runs, err := st.Runs().List(ctx, 0)
	if err != nil {
		return store.RunSummary{}, err
	}

	var matches []store.RunSummary
	for _, r := range runs {
		if strings.HasPrefix(r.RunID, prefix) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return store.RunSummary{}, fmt.Errorf("no run matches %q", prefix)
	case 1:
		return matches[0], nil
	}

	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = shortID(m.RunID)
	}
	return store.RunSummary{}, fmt.Errorf("run id %q is ambiguous (matches %s)", prefix, strings.Join(ids, ", "))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}
