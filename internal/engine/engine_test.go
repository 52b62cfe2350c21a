package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matrun/matrun/internal/config"
	"github.com/matrun/matrun/internal/matrix"
	"github.com/matrun/matrun/internal/report"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func runMatrix(t *testing.T, root, yaml string) (*config.Config, *report.MatrixRun) {
	t.Helper()
	cfg, err := config.Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	run := New(cfg, root).Run(context.Background(), matrix.Expand(cfg.Matrix))
	return cfg, run
}

func TestRun_FailureDoesNotStopOtherEnvironments(t *testing.T) {
	root := writeTree(t, nil)
	_, run := runMatrix(t, root, `
project: demo
matrix:
  runtimes:
    - name: go1
      command: sh
    - name: go2
      command: sh
test:
  command: ["sh", "-c", "[ \"$MATRUN_ENV\" != go1 ]"]
`)

	if len(run.Envs) != 2 {
		t.Fatalf("reported %d environments, want 2", len(run.Envs))
	}
	first, second := run.Envs[0], run.Envs[1]
	if first.Env != "go1" || first.Status != report.StatusFailed {
		t.Errorf("go1 = %s/%s, want go1/failed", first.Env, first.Status)
	}
	if first.Stage != report.StageTest || first.ExitCode != 1 {
		t.Errorf("go1 stage/exit = %s/%d, want test/1", first.Stage, first.ExitCode)
	}
	if second.Env != "go2" || second.Status != report.StatusPassed {
		t.Errorf("go2 = %s/%s, want go2/passed", second.Env, second.Status)
	}
	if run.RunID == "" {
		t.Error("RunID is empty")
	}
	passed, failed, errored := run.Counts()
	if passed != 1 || failed != 1 || errored != 0 {
		t.Errorf("Counts = %d/%d/%d, want 1/1/0", passed, failed, errored)
	}
}

func TestRun_ResolveFailureIsIsolated(t *testing.T) {
	root := writeTree(t, map[string]string{
		"deps/index.yaml": "packages:\n  chi: [\"5.1.0\", \"5.1.2\"]\n",
	})
	_, run := runMatrix(t, root, `
project: demo
matrix:
  runtimes:
    - name: go1
      command: sh
  frameworks:
    - name: chi
      package: chi
      ranges: ["v5.1", "v9.9"]
deps:
  index: deps/index.yaml
test:
  command: ["sh", "-c", "true"]
`)

	if len(run.Envs) != 2 {
		t.Fatalf("reported %d environments, want 2", len(run.Envs))
	}

	resolved := run.Envs[0]
	if resolved.Status != report.StatusPassed {
		t.Fatalf("%s = %s (%s), want passed", resolved.Env, resolved.Status, resolved.Error)
	}
	if v, ok := resolved.Lockfile.Version("chi"); !ok || v != "v5.1.2" {
		t.Errorf("locked chi = %q, want v5.1.2", v)
	}
	lockPath := filepath.Join(root, WorkspaceDir, resolved.Env, "lock.json")
	if _, err := os.Stat(lockPath); err != nil {
		t.Errorf("lockfile not written: %v", err)
	}

	broken := run.Envs[1]
	if broken.Status != report.StatusError || broken.Stage != report.StageResolve {
		t.Errorf("%s = %s at %s, want error at resolve", broken.Env, broken.Status, broken.Stage)
	}
	if !strings.Contains(broken.Error, "chi") {
		t.Errorf("Error = %q, want the unsatisfiable package named", broken.Error)
	}
	if _, err := os.Stat(filepath.Join(root, WorkspaceDir, broken.Env, "lock.json")); !os.IsNotExist(err) {
		t.Error("a lockfile was written for the unresolvable environment")
	}
}

func TestRun_CoverageCollected(t *testing.T) {
	root := writeTree(t, nil)
	_, run := runMatrix(t, root, `
project: demo
matrix:
  runtimes:
    - name: go1
      command: sh
test:
  command: ["sh", "-c", 'printf "mode: set\nexample.com/m/a.go:1.1,2.2 2 1\nexample.com/m/a.go:3.3,4.4 2 0\n" > ${COVERPROFILE}']
`)

	rep := run.Envs[0]
	if rep.Status != report.StatusPassed {
		t.Fatalf("status = %s (%s), want passed", rep.Status, rep.Error)
	}
	if rep.Coverage == nil {
		t.Fatal("no coverage attached")
	}
	if rep.CoveragePercent != 50 {
		t.Errorf("CoveragePercent = %v, want 50", rep.CoveragePercent)
	}
	if _, err := os.Stat(filepath.Join(root, WorkspaceDir, "go1", "cover.out")); err != nil {
		t.Errorf("profile not in the workspace: %v", err)
	}
}

func TestRun_CoverageMinimumGates(t *testing.T) {
	root := writeTree(t, nil)
	_, run := runMatrix(t, root, `
project: demo
matrix:
  runtimes:
    - name: go1
      command: sh
test:
  command: ["sh", "-c", 'printf "mode: set\nexample.com/m/a.go:1.1,2.2 2 1\nexample.com/m/a.go:3.3,4.4 2 0\n" > ${COVERPROFILE}']
  coverage:
    min: 90
`)

	rep := run.Envs[0]
	if rep.Status != report.StatusFailed {
		t.Fatalf("status = %s, want failed under the minimum", rep.Status)
	}
	if !strings.Contains(rep.Error, "below") {
		t.Errorf("Error = %q, want the shortfall explained", rep.Error)
	}
	if rep.CoveragePercent != 50 {
		t.Errorf("CoveragePercent = %v, want 50", rep.CoveragePercent)
	}
}

func TestRun_SetupFailureSkipsTest(t *testing.T) {
	root := writeTree(t, nil)
	_, run := runMatrix(t, root, `
project: demo
matrix:
  runtimes:
    - name: go1
      command: sh
test:
  setup:
    - ["sh", "-c", "echo no toolchain >&2; exit 7"]
  command: ["sh", "-c", "touch ran-anyway"]
`)

	rep := run.Envs[0]
	if rep.Status != report.StatusError || rep.Stage != report.StageSetup {
		t.Fatalf("got %s at %s, want error at setup", rep.Status, rep.Stage)
	}
	if rep.ExitCode != 7 {
		t.Errorf("ExitCode = %d, want 7", rep.ExitCode)
	}
	if !strings.Contains(rep.OutputTail, "no toolchain") {
		t.Errorf("OutputTail = %q, want the setup output", rep.OutputTail)
	}
	if _, err := os.Stat(filepath.Join(root, "ran-anyway")); !os.IsNotExist(err) {
		t.Error("test command ran after a failed setup")
	}
}

func TestRun_TimeoutBoundsTheEnvironment(t *testing.T) {
	root := writeTree(t, nil)
	_, run := runMatrix(t, root, `
project: demo
matrix:
  runtimes:
    - name: go1
      command: sh
test:
  command: ["sh", "-c", "sleep 5"]
  timeout: 300ms
`)

	rep := run.Envs[0]
	if rep.Status != report.StatusError {
		t.Fatalf("status = %s, want error", rep.Status)
	}
	if !strings.Contains(rep.Error, "timed out after") {
		t.Errorf("Error = %q, want a timeout message", rep.Error)
	}
	if rep.DurationMS > 3000 {
		t.Errorf("environment took %dms, the timeout did not bite", rep.DurationMS)
	}
}

func TestRun_LockfileReachableFromCommands(t *testing.T) {
	root := writeTree(t, map[string]string{
		"deps/base.list":  "chi >=v5.0.0\n",
		"deps/index.yaml": "packages:\n  chi: [\"5.1.2\"]\n",
	})
	_, run := runMatrix(t, root, `
project: demo
matrix:
  runtimes:
    - name: go1
      command: sh
deps:
  manifests:
    - deps/base.list
  index: deps/index.yaml
test:
  command: ["sh", "-c", "grep -q chi \"$MATRUN_LOCKFILE\""]
`)

	rep := run.Envs[0]
	if rep.Status != report.StatusPassed {
		t.Fatalf("status = %s (%s), want passed; the lockfile env var should point at the written lockfile",
			rep.Status, rep.Error)
	}
}

func TestRun_RuntimeEnvOverridesTestEnv(t *testing.T) {
	root := writeTree(t, nil)
	_, run := runMatrix(t, root, `
project: demo
matrix:
  runtimes:
    - name: go1
      command: sh
    - name: go2
      command: sh
      env:
        FLAVOR: special
test:
  env:
    FLAVOR: regular
  command: ["sh", "-c", "echo \"$FLAVOR\" > flavor-$MATRUN_ENV"]
`)

	if passed, failed, errored := run.Counts(); passed != 2 || failed != 0 || errored != 0 {
		t.Fatalf("Counts = %d/%d/%d, want 2/0/0", passed, failed, errored)
	}
	for env, want := range map[string]string{"go1": "regular", "go2": "special"} {
		got, err := os.ReadFile(filepath.Join(root, "flavor-"+env))
		if err != nil {
			t.Fatalf("%s: %v", env, err)
		}
		if flavor := strings.TrimSpace(string(got)); flavor != want {
			t.Errorf("%s saw FLAVOR=%q, want %q", env, flavor, want)
		}
	}
}

func TestRun_EmitsProgressEvents(t *testing.T) {
	root := writeTree(t, nil)
	cfg, err := config.Parse([]byte(`
project: demo
matrix:
  runtimes:
    - name: go1
      command: sh
test:
  setup:
    - ["sh", "-c", "true"]
  command: ["sh", "-c", "true"]
`))
	if err != nil {
		t.Fatal(err)
	}

	eng := New(cfg, root)
	var events []Event
	eng.Notify = func(ev Event) { events = append(events, ev) }
	eng.Run(context.Background(), matrix.Expand(cfg.Matrix))

	var stages []string
	var finished int
	for _, ev := range events {
		if ev.Report != nil {
			finished++
			continue
		}
		stages = append(stages, ev.Stage)
	}
	if got, want := strings.Join(stages, " "), "resolve setup test"; got != want {
		t.Errorf("stage events = %q, want %q", got, want)
	}
	if finished != 1 {
		t.Errorf("finish events = %d, want 1", finished)
	}
}

func TestSubstituteCover(t *testing.T) {
	got := substituteCover([]string{"go", "test", "-coverprofile=${COVERPROFILE}", "./..."}, "/tmp/c.out")
	if got[2] != "-coverprofile=/tmp/c.out" {
		t.Errorf("substituted arg = %q", got[2])
	}
	if got[0] != "go" || got[3] != "./..." {
		t.Errorf("untouched args changed: %v", got)
	}
}
