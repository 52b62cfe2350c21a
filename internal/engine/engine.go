// Package engine executes the test matrix. Each environment resolves
// its own dependency set against the version index, runs setup and
// the test command on the configured backend, and produces a run
// report. Environments are independent: one failing never stops the
// rest.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dagger.io/dagger"
	"github.com/google/uuid"

	"github.com/matrun/matrun/internal/config"
	"github.com/matrun/matrun/internal/coverage"
	"github.com/matrun/matrun/internal/deps"
	"github.com/matrun/matrun/internal/matrix"
	"github.com/matrun/matrun/internal/report"
	"github.com/matrun/matrun/internal/runner"
)

// WorkspaceDir is the project-relative directory holding per
// environment state: lockfiles and coverage profiles.
const WorkspaceDir = ".matrun"

// containerWorkspace is where the per-environment workspace is
// mounted inside containers.
const containerWorkspace = "/matrun"

// outputTailLines bounds the command output kept in failure reports.
const outputTailLines = 20

// Event notifies a UI about engine progress. Report is set once the
// environment finished.
type Event struct {
	Env    string
	Stage  string
	Report *report.EnvReport
}

// Engine runs environments sequentially on the configured backend.
type Engine struct {
	cfg  *config.Config
	root string

	// Logs receives backend noise such as container build output.
	Logs io.Writer

	// Notify, when set, receives progress events.
	Notify func(Event)
}

// New builds an engine rooted at the project directory.
func New(cfg *config.Config, root string) *Engine {
	return &Engine{cfg: cfg, root: root, Logs: io.Discard}
}

func (e *Engine) notify(ev Event) {
	if e.Notify != nil {
		e.Notify(ev)
	}
}

// Run executes every environment and reports all of them. The matrix
// never short-circuits: a failure in one environment does not skip
// those after it.
func (e *Engine) Run(ctx context.Context, envs []matrix.Environment) *report.MatrixRun {
	run := &report.MatrixRun{
		RunID:     uuid.NewString(),
		Project:   e.cfg.Project,
		StartedAt: time.Now(),
	}
	defer func() { run.FinishedAt = time.Now() }()

	var client *dagger.Client
	if e.cfg.Test.Backend == "container" {
		var err error
		client, err = runner.Connect(ctx, e.Logs)
		if err != nil {
			for _, env := range envs {
				rep := e.brokenEnv(env, err)
				run.Envs = append(run.Envs, rep)
				e.notify(Event{Env: env.Name, Report: &rep})
			}
			return run
		}
		defer client.Close()
	}

	for _, env := range envs {
		rep := e.runEnv(ctx, client, env)
		run.Envs = append(run.Envs, rep)
		e.notify(Event{Env: env.Name, Report: &rep})
	}
	return run
}

func (e *Engine) brokenEnv(env matrix.Environment, err error) report.EnvReport {
	return report.EnvReport{
		Env:       env.Name,
		Runtime:   env.Runtime.Name,
		Framework: env.Framework,
		Range:     env.Range,
		Status:    report.StatusError,
		Stage:     report.StageSetup,
		Error:     err.Error(),
	}
}

func (e *Engine) runEnv(ctx context.Context, client *dagger.Client, env matrix.Environment) (rep report.EnvReport) {
	rep = report.EnvReport{
		Env:       env.Name,
		Runtime:   env.Runtime.Name,
		Framework: env.Framework,
		Range:     env.Range,
		Status:    report.StatusPassed,
	}
	start := time.Now()
	defer func() { rep.DurationMS = time.Since(start).Milliseconds() }()

	timeout := e.cfg.Test.TimeoutDuration()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	fail := func(stage string, status report.Status, err error) report.EnvReport {
		rep.Stage = stage
		rep.Status = status
		rep.Error = err.Error()
		if timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			rep.Error = fmt.Sprintf("timed out after %s", timeout)
		}
		return rep
	}

	e.notify(Event{Env: env.Name, Stage: report.StageResolve})
	rep.Stage = report.StageResolve
	workspace := filepath.Join(e.root, WorkspaceDir, env.Name)
	if err := os.MkdirAll(workspace, 0o755); err != nil {
		return fail(report.StageResolve, report.StatusError, err)
	}

	lock, err := e.Resolve(env)
	if err != nil {
		return fail(report.StageResolve, report.StatusError, err)
	}
	// The lockfile lands in the workspace before the container mounts
	// it, so commands on either backend can read it.
	if err := lock.Write(filepath.Join(workspace, "lock.json")); err != nil {
		return fail(report.StageResolve, report.StatusError, err)
	}
	rep.Lockfile = lock

	backend, paths, err := e.backend(client, env, workspace)
	if err != nil {
		return fail(report.StageSetup, report.StatusError, err)
	}

	cmdEnv := runner.BuildEnv(e.cfg.Test.Env, e.cfg.Test.PassEnv)
	for k, v := range env.Runtime.Env {
		cmdEnv[k] = v
	}
	cmdEnv["MATRUN_ENV"] = env.Name
	cmdEnv["MATRUN_LOCKFILE"] = paths.lock
	cmdEnv["COVERPROFILE"] = paths.cover

	if len(e.cfg.Test.Setup) > 0 {
		e.notify(Event{Env: env.Name, Stage: report.StageSetup})
		rep.Stage = report.StageSetup
		for _, argv := range e.cfg.Test.Setup {
			res, err := backend.Run(ctx, runner.Step{Name: "setup", Command: argv, Dir: e.stepDir(), Env: cmdEnv})
			if err != nil {
				return fail(report.StageSetup, report.StatusError, err)
			}
			if res.ExitCode != 0 {
				rep.ExitCode = res.ExitCode
				rep.OutputTail = report.Tail(string(res.Stdout)+string(res.Stderr), outputTailLines)
				return fail(report.StageSetup, report.StatusError, fmt.Errorf("%s exited with code %d", argv[0], res.ExitCode))
			}
		}
	}

	e.notify(Event{Env: env.Name, Stage: report.StageTest})
	rep.Stage = report.StageTest
	res, err := backend.Run(ctx, runner.Step{
		Name:    "test",
		Command: substituteCover(e.cfg.Test.Command, paths.cover),
		Dir:     e.stepDir(),
		Env:     cmdEnv,
	})
	if err != nil {
		return fail(report.StageTest, report.StatusError, err)
	}
	rep.ExitCode = res.ExitCode
	if res.ExitCode != 0 {
		rep.Status = report.StatusFailed
		rep.OutputTail = report.Tail(string(res.Stdout)+string(res.Stderr), outputTailLines)
	}

	e.collectCoverage(ctx, backend, paths, &rep)
	return rep
}

// Resolve merges the manifest requirements with the environment's
// framework pin and locks the set against the version index. With
// nothing declared the lockfile is empty and the index is not needed.
func (e *Engine) Resolve(env matrix.Environment) (*deps.Lockfile, error) {
	manifests := make([]string, len(e.cfg.Deps.Manifests))
	for i, m := range e.cfg.Deps.Manifests {
		manifests[i] = filepath.Join(e.root, m)
	}
	reqs, err := deps.ParseManifests(manifests)
	if err != nil {
		return nil, err
	}
	if env.HasFramework() {
		pin, err := deps.RangeRequirement(env.Package, env.Range)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, pin)
	}
	reqs = deps.Merge(reqs)
	if len(reqs) == 0 {
		return &deps.Lockfile{}, nil
	}

	idx, err := deps.LoadIndex(filepath.Join(e.root, e.cfg.Deps.Index))
	if err != nil {
		return nil, err
	}
	return deps.Resolve(reqs, idx)
}

// envPaths are the per-environment file locations as the commands see
// them, plus the host-side coverage location.
type envPaths struct {
	lock      string
	cover     string
	coverHost string
}

func (e *Engine) backend(client *dagger.Client, env matrix.Environment, workspace string) (runner.Backend, envPaths, error) {
	coverHost := filepath.Join(workspace, "cover.out")
	if e.cfg.Test.Backend == "container" {
		c, err := runner.NewContainer(client, runner.ContainerConfig{
			Image:   env.Runtime.Image,
			Source:  e.root,
			Exclude: e.cfg.Test.Excludes,
			Mounts:  map[string]string{workspace: containerWorkspace},
		})
		if err != nil {
			return nil, envPaths{}, err
		}
		return c, envPaths{
			lock:      containerWorkspace + "/lock.json",
			cover:     containerWorkspace + "/cover.out",
			coverHost: coverHost,
		}, nil
	}
	return runner.NewLocal(), envPaths{
		lock:      filepath.Join(workspace, "lock.json"),
		cover:     coverHost,
		coverHost: coverHost,
	}, nil
}

func (e *Engine) stepDir() string {
	if e.cfg.Test.Backend == "container" {
		return ""
	}
	return e.root
}

// collectCoverage attaches the profile the test command wrote, when
// it wrote one. Coverage is reporting, not gating, unless a minimum
// is configured.
func (e *Engine) collectCoverage(ctx context.Context, backend runner.Backend, paths envPaths, rep *report.EnvReport) {
	if c, ok := backend.(*runner.Container); ok {
		// Workspace mounts are snapshots; in-container writes come
		// back only through an explicit export.
		if err := c.Export(ctx, paths.cover, paths.coverHost); err != nil && e.cfg.Test.Coverage.Min <= 0 {
			return
		}
	}

	prof, err := coverage.ParseFile(paths.coverHost)
	if err != nil {
		if min := e.cfg.Test.Coverage.Min; min > 0 && rep.Status == report.StatusPassed {
			rep.Status = report.StatusFailed
			rep.Error = fmt.Sprintf("no usable coverage profile: %v", err)
		}
		return
	}
	rep.Coverage = prof
	rep.CoveragePercent = prof.Percent()

	if min := e.cfg.Test.Coverage.Min; min > 0 && rep.Status == report.StatusPassed && rep.CoveragePercent < min {
		rep.Status = report.StatusFailed
		rep.Error = fmt.Sprintf("coverage %.1f%% is below the %.1f%% minimum", rep.CoveragePercent, min)
	}
}

// substituteCover expands the ${COVERPROFILE} placeholder in the test
// argv. The same path is also exported as the COVERPROFILE variable
// for shell-wrapped commands.
func substituteCover(command []string, path string) []string {
	out := make([]string, len(command))
	for i, arg := range command {
		out[i] = strings.ReplaceAll(arg, "${COVERPROFILE}", path)
	}
	return out
}
