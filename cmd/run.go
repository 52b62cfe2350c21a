package cmd

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matrun/matrun/internal/artifacts"
	"github.com/matrun/matrun/internal/config"
	"github.com/matrun/matrun/internal/engine"
	"github.com/matrun/matrun/internal/matrix"
	"github.com/matrun/matrun/internal/report"
	"github.com/matrun/matrun/internal/ui"
	"github.com/matrun/matrun/internal/watch"
)

var runCmd = &cobra.Command{
	Use:   "run [env...]",
	Short: "Run the test matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatrix(cmd, args)
	},
}

// runMatrix executes the matrix, or the named slice of it, prints the
// summary and records the run. A failing environment fails the
// command, but only after every environment had its turn.
func runMatrix(cmd *cobra.Command, names []string) error {
	ctx := cmd.Context()
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	envs := matrix.Expand(cfg.Matrix)
	if len(envs) == 0 {
		return fmt.Errorf("the matrix expands to no environments")
	}
	envs, err = matrix.Select(envs, names)
	if err != nil {
		return err
	}

	eng := engine.New(cfg, root)
	var run *report.MatrixRun
	if watchFlag, _ := cmd.Flags().GetBool("watch"); watchFlag {
		run, err = watch.Run(ctx, eng, cfg.Project, envs)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		if run == nil {
			return fmt.Errorf("interrupted")
		}
	} else {
		eng.Logs = os.Stderr
		run = eng.Run(ctx, envs)
	}

	fmt.Print(ui.MatrixSummary(run, cfg.Test.Coverage.Min))

	reportPath, _ := cmd.Flags().GetString("json")
	if reportPath == "" {
		reportPath = filepath.Join(root, engine.WorkspaceDir, "report.json")
	}
	if err := os.MkdirAll(filepath.Dir(reportPath), 0o755); err != nil {
		return err
	}
	if err := report.WriteJSON(reportPath, run); err != nil {
		return err
	}

	if err := recordMatrix(cmd, run); err != nil {
		fmt.Fprintln(os.Stderr, "warning: history not recorded:", err)
	}

	if publish, _ := cmd.Flags().GetBool("publish"); publish {
		if err := publishRun(ctx, cfg, root, run, reportPath); err != nil {
			fmt.Fprintln(os.Stderr, "warning: publish failed:", err)
		}
	}

	passed, failed, errored := run.Counts()
	if failed+errored > 0 {
		return fmt.Errorf("%d of %d environments failed", failed+errored, passed+failed+errored)
	}
	return nil
}

// recordMatrix saves the run to history. The run context may already
// be cancelled at this point; partial results still deserve a record.
func recordMatrix(cmd *cobra.Command, run *report.MatrixRun) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.Runs().SaveMatrix(context.Background(), run)
}

// publishRun uploads the report plus each environment's lockfile and
// coverage profile. Endpoint and credentials come from MATRUN_S3_*
// variables; the config file can point publishing at its own bucket
// and prefix.
func publishRun(ctx context.Context, cfg *config.Config, root string, run *report.MatrixRun, reportPath string) error {
	pcfg, err := artifacts.ConfigFromEnv()
	if err != nil {
		return err
	}
	if cfg.Publish.Bucket != "" {
		pcfg.Bucket = cfg.Publish.Bucket
	}
	if cfg.Publish.Prefix != "" {
		pcfg.Prefix = cfg.Publish.Prefix
	}

	pub, err := artifacts.NewPublisher(pcfg)
	if err != nil {
		return err
	}
	if err := pub.EnsureBucket(ctx); err != nil {
		return err
	}

	files := []artifacts.File{{Name: "report.json", Path: reportPath}}
	for _, env := range run.Envs {
		workspace := filepath.Join(root, engine.WorkspaceDir, env.Env)
		for _, name := range []string{"lock.json", "cover.out"} {
			p := filepath.Join(workspace, name)
			if _, err := os.Stat(p); err == nil {
				files = append(files, artifacts.File{Name: path.Join(env.Env, name), Path: p})
			}
		}
	}

	objects, err := pub.Publish(ctx, run.RunID, files)
	if err != nil {
		return err
	}
	for _, obj := range objects {
		fmt.Printf("published %s (%d bytes, sha256 %.12s)\n", obj.Key, obj.Size, obj.SHA256)
	}
	return nil
}

func init() {
	runCmd.Flags().Bool("watch", false, "Render live progress while the matrix runs")
	runCmd.Flags().String("json", "", "Write the JSON report to this path instead of .matrun/report.json")
	runCmd.Flags().Bool("publish", false, "Upload the report and per-environment artifacts to the object store")
}
