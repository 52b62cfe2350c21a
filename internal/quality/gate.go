// Package quality runs the quality gate: external lint commands,
// forward-compat lint, the source checks, and a terminal selfcheck.
// Steps run in a fixed order and stop at the first failure. Package
// marker fixtures exist exactly for the duration of the gate.
package quality

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/matrun/matrun/internal/checks"
	"github.com/matrun/matrun/internal/config"
	"github.com/matrun/matrun/internal/report"
	"github.com/matrun/matrun/internal/runner"
	"github.com/matrun/matrun/internal/selfcheck"
)

// maxDiagnostics caps the findings listed per step; the rest are
// summarized.
const maxDiagnostics = 50

// Gate executes the quality gate for one project.
type Gate struct {
	cfg     *config.Config
	root    string
	backend runner.Backend
}

// New builds a gate. The backend runs the configured lint and compat
// commands; the source checks run in-process.
func New(cfg *config.Config, root string, backend runner.Backend) *Gate {
	return &Gate{cfg: cfg, root: root, backend: backend}
}

// Run executes the gate and returns its report. The error taxonomy
// lives in step statuses; Run itself only fails by returning a report
// with a failed or errored step.
func (g *Gate) Run(ctx context.Context) *report.GateRun {
	run := &report.GateRun{
		RunID:     uuid.NewString(),
		Gate:      "quality",
		Project:   g.cfg.Project,
		StartedAt: time.Now(),
	}
	defer func() { run.FinishedAt = time.Now() }()

	fixtures := checks.NewFixtures(g.root, g.cfg.Quality.Fixtures)
	if err := fixtures.Create(); err != nil {
		run.Steps = append(run.Steps, report.GateStep{
			Name:   "fixtures",
			Status: report.StatusError,
			Error:  err.Error(),
		})
		return run
	}
	defer func() {
		if err := fixtures.Remove(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: removing lint fixtures: %v\n", err)
		}
	}()

	for _, step := range g.steps() {
		result := step(ctx)
		run.Steps = append(run.Steps, result)
		if result.Status != report.StatusPassed {
			break
		}
	}
	return run
}

type stepFunc func(ctx context.Context) report.GateStep

// steps lists the gate in execution order. Selfcheck is always last,
// so a green gate also certifies the config.
func (g *Gate) steps() []stepFunc {
	var steps []stepFunc
	if len(g.cfg.Quality.Lint) > 0 {
		steps = append(steps, g.commandStep("lint", g.cfg.Quality.Lint))
	}
	if len(g.cfg.Quality.Compat) > 0 {
		steps = append(steps, g.commandStep("compat", g.cfg.Quality.Compat))
	}
	steps = append(steps,
		g.checkStep(checks.NewStyle(g.cfg.Quality.Style)),
		g.checkStep(checks.NewDocComment(g.cfg.Quality.Doc)),
		g.checkStep(checks.NewImportOrder(g.cfg.Quality.Imports)),
		g.selfcheckStep,
	)
	return steps
}

func (g *Gate) commandStep(name string, commands [][]string) stepFunc {
	return func(ctx context.Context) report.GateStep {
		step := report.GateStep{Name: name, Status: report.StatusPassed}
		start := time.Now()
		defer func() { step.DurationMS = time.Since(start).Milliseconds() }()

		env := runner.BuildEnv(nil, append(append([]string(nil), runner.ToolPassEnv...), g.cfg.Test.PassEnv...))
		for _, argv := range commands {
			res, err := g.backend.Run(ctx, runner.Step{
				Name:    name,
				Command: argv,
				Dir:     g.root,
				Env:     env,
			})
			if err != nil {
				step.Status = report.StatusError
				step.Error = err.Error()
				return step
			}
			if res.ExitCode != 0 {
				step.Status = report.StatusFailed
				step.Output = report.Tail(string(res.Stdout)+string(res.Stderr), 20)
				step.Error = fmt.Sprintf("%s exited with code %d", argv[0], res.ExitCode)
				return step
			}
		}
		return step
	}
}

type sourceCheck interface {
	Name() string
	Run(root string) ([]checks.Diagnostic, error)
}

func (g *Gate) checkStep(check sourceCheck) stepFunc {
	return func(ctx context.Context) report.GateStep {
		step := report.GateStep{Name: check.Name(), Status: report.StatusPassed}
		start := time.Now()
		defer func() { step.DurationMS = time.Since(start).Milliseconds() }()

		if err := ctx.Err(); err != nil {
			step.Status = report.StatusError
			step.Error = err.Error()
			return step
		}

		diags, err := check.Run(g.root)
		if err != nil {
			step.Status = report.StatusError
			step.Error = err.Error()
			return step
		}
		if len(diags) > 0 {
			step.Status = report.StatusFailed
			step.Diagnostics = capDiagnostics(checks.Strings(diags))
		}
		return step
	}
}

func (g *Gate) selfcheckStep(ctx context.Context) report.GateStep {
	step := report.GateStep{Name: "selfcheck", Status: report.StatusPassed}
	start := time.Now()
	defer func() { step.DurationMS = time.Since(start).Milliseconds() }()

	if problems := selfcheck.Run(g.cfg, g.root); len(problems) > 0 {
		step.Status = report.StatusFailed
		step.Diagnostics = capDiagnostics(selfcheck.Strings(problems))
	}
	return step
}

func capDiagnostics(all []string) []string {
	if len(all) <= maxDiagnostics {
		return all
	}
	capped := append([]string(nil), all[:maxDiagnostics]...)
	return append(capped, fmt.Sprintf("... and %d more", len(all)-maxDiagnostics))
}
