package docsgate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar"
	"github.com/google/uuid"

	"github.com/matrun/matrun/internal/checks"
	"github.com/matrun/matrun/internal/config"
	"github.com/matrun/matrun/internal/report"
	"github.com/matrun/matrun/internal/runner"
)

// maxDiagnostics caps the findings listed per step.
const maxDiagnostics = 50

// Gate executes the documentation gate for one project.
type Gate struct {
	cfg     *config.Config
	root    string
	backend runner.Backend
}

// New builds a gate. The backend runs the configured build commands;
// linting and validation run in-process.
func New(cfg *config.Config, root string, backend runner.Backend) *Gate {
	return &Gate{cfg: cfg, root: root, backend: backend}
}

// Run executes doclint, stub removal, the build, and metadata
// validation in order, stopping at the first failure.
func (g *Gate) Run(ctx context.Context) *report.GateRun {
	run := &report.GateRun{
		RunID:     uuid.NewString(),
		Gate:      "docs",
		Project:   g.cfg.Project,
		StartedAt: time.Now(),
	}
	defer func() { run.FinishedAt = time.Now() }()

	steps := []func(context.Context) report.GateStep{
		g.doclintStep,
		g.stubsStep,
		g.buildStep,
		g.metadataStep,
	}
	for _, step := range steps {
		result := step(ctx)
		run.Steps = append(run.Steps, result)
		if result.Status != report.StatusPassed {
			break
		}
	}
	return run
}

func (g *Gate) doclintStep(ctx context.Context) report.GateStep {
	step := report.GateStep{Name: "doclint", Status: report.StatusPassed}
	start := time.Now()
	defer func() { step.DurationMS = time.Since(start).Milliseconds() }()

	diags, err := NewDocLint(g.cfg.Docs).Run(g.root)
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

// stubsStep deletes stale generated stubs before the rebuild. A
// pattern that matches nothing removes nothing, so running the step
// twice is harmless.
func (g *Gate) stubsStep(ctx context.Context) report.GateStep {
	step := report.GateStep{Name: "stubs", Status: report.StatusPassed}
	start := time.Now()
	defer func() { step.DurationMS = time.Since(start).Milliseconds() }()

	var removed []string
	for _, pattern := range g.cfg.Docs.Stubs {
		matches, err := doublestar.Glob(filepath.Join(g.root, filepath.FromSlash(pattern)))
		if err != nil {
			step.Status = report.StatusError
			step.Error = fmt.Sprintf("stub pattern %q: %v", pattern, err)
			return step
		}
		sort.Strings(matches)
		for _, match := range matches {
			if err := os.Remove(match); err != nil {
				if os.IsNotExist(err) {
					continue
				}
				step.Status = report.StatusError
				step.Error = err.Error()
				return step
			}
			if rel, err := filepath.Rel(g.root, match); err == nil {
				removed = append(removed, filepath.ToSlash(rel))
			}
		}
	}
	if len(removed) > 0 {
		step.Output = "removed " + strings.Join(removed, ", ")
	}
	return step
}

// buildStep rebuilds the documentation from clean: the previous build
// output is dropped, then the configured commands run in order.
func (g *Gate) buildStep(ctx context.Context) report.GateStep {
	step := report.GateStep{Name: "build", Status: report.StatusPassed}
	start := time.Now()
	defer func() { step.DurationMS = time.Since(start).Milliseconds() }()

	if err := os.RemoveAll(filepath.Join(g.root, filepath.FromSlash(g.cfg.Docs.BuildDir))); err != nil {
		step.Status = report.StatusError
		step.Error = fmt.Sprintf("clean %s: %v", g.cfg.Docs.BuildDir, err)
		return step
	}

	env := runner.BuildEnv(g.cfg.Docs.Env, append(append([]string(nil), runner.ToolPassEnv...), g.cfg.Test.PassEnv...))
	for _, argv := range g.cfg.Docs.Build {
		res, err := g.backend.Run(ctx, runner.Step{
			Name:    "build",
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

// metadataStep validates the package metadata documents. With none
// configured it falls back to the README, the document indexes
// render.
func (g *Gate) metadataStep(ctx context.Context) report.GateStep {
	step := report.GateStep{Name: "metadata", Status: report.StatusPassed}
	start := time.Now()
	defer func() { step.DurationMS = time.Since(start).Milliseconds() }()

	files := g.cfg.Docs.Metadata
	if len(files) == 0 {
		if _, err := os.Stat(filepath.Join(g.root, "README.md")); err == nil {
			files = []string{"README.md"}
		}
	}

	var all []checks.Diagnostic
	for _, rel := range files {
		diags, err := ValidateMetadata(g.root, rel)
		if err != nil {
			step.Status = report.StatusError
			step.Error = err.Error()
			return step
		}
		all = append(all, diags...)
	}
	if len(all) > 0 {
		step.Status = report.StatusFailed
		step.Diagnostics = capDiagnostics(checks.Strings(all))
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
