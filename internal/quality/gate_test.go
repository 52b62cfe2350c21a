package quality

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matrun/matrun/internal/config"
	"github.com/matrun/matrun/internal/report"
	"github.com/matrun/matrun/internal/runner"
)

const cleanSource = `// Package demo is a gate test subject.
package demo

// Greet returns a greeting.
func Greet() string { return "hi" }
`

func writeProject(t *testing.T, files map[string]string) string {
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

func runGate(t *testing.T, root, yaml string) *report.GateRun {
	t.Helper()
	cfg, err := config.Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return New(cfg, root, runner.NewLocal()).Run(context.Background())
}

func stepNames(run *report.GateRun) []string {
	names := make([]string, 0, len(run.Steps))
	for _, s := range run.Steps {
		names = append(names, s.Name)
	}
	return names
}

func TestGate_CleanProjectPasses(t *testing.T) {
	root := writeProject(t, map[string]string{"demo.go": cleanSource})
	run := runGate(t, root, `
project: demo
matrix:
  runtimes:
    - name: sh
test:
  command: ["sh", "-c", "true"]
quality:
  lint:
    - ["sh", "-c", "true"]
`)

	if !run.Passed() {
		t.Fatalf("gate failed: %+v", run.Steps)
	}
	got := strings.Join(stepNames(run), " ")
	want := "lint style doccomment imports selfcheck"
	if got != want {
		t.Errorf("step order = %q, want %q", got, want)
	}
	if run.Gate != "quality" {
		t.Errorf("Gate = %q, want quality", run.Gate)
	}
	if run.RunID == "" {
		t.Error("RunID is empty")
	}
}

func TestGate_CompatRunsAfterLint(t *testing.T) {
	root := writeProject(t, map[string]string{"demo.go": cleanSource})
	run := runGate(t, root, `
project: demo
matrix:
  runtimes:
    - name: sh
test:
  command: ["sh", "-c", "true"]
quality:
  lint:
    - ["sh", "-c", "true"]
  compat:
    - ["sh", "-c", "true"]
`)

	if !run.Passed() {
		t.Fatalf("gate failed: %+v", run.Steps)
	}
	names := stepNames(run)
	if names[0] != "lint" || names[1] != "compat" {
		t.Errorf("first steps = %v, want lint then compat", names[:2])
	}
}

func TestGate_FixtureExistsDuringLint(t *testing.T) {
	root := writeProject(t, map[string]string{"demo.go": cleanSource})
	fixture := "vendorstubs/fake/fake.go"
	run := runGate(t, root, `
project: demo
matrix:
  runtimes:
    - name: sh
test:
  command: ["sh", "-c", "true"]
quality:
  lint:
    - ["sh", "-c", "test -f vendorstubs/fake/fake.go"]
  fixtures:
    - vendorstubs/fake/fake.go
`)

	// The lint command probes for the fixture, so a pass proves the
	// marker was on disk before lint ran.
	if !run.Passed() {
		t.Fatalf("gate failed, fixture missing during lint: %+v", run.Steps)
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(fixture))); !os.IsNotExist(err) {
		t.Errorf("fixture %s still on disk after the gate", fixture)
	}
}

func TestGate_FixtureRemovedOnFailure(t *testing.T) {
	long := "// Package demo is a gate test subject.\npackage demo\n\nvar filler = \"" +
		strings.Repeat("x", 150) + "\"\n"
	root := writeProject(t, map[string]string{"demo.go": long})
	run := runGate(t, root, `
project: demo
matrix:
  runtimes:
    - name: sh
test:
  command: ["sh", "-c", "true"]
quality:
  lint:
    - ["sh", "-c", "true"]
  fixtures:
    - vendorstubs/fake/fake.go
`)

	if run.Passed() {
		t.Fatal("gate passed despite an overlong line")
	}
	last := run.Steps[len(run.Steps)-1]
	if last.Name != "style" || last.Status != report.StatusFailed {
		t.Errorf("last step = %s/%s, want style/failed", last.Name, last.Status)
	}
	if _, err := os.Stat(filepath.Join(root, "vendorstubs", "fake", "fake.go")); !os.IsNotExist(err) {
		t.Error("fixture survived a failing gate")
	}
}

func TestGate_StopsAtFirstFailure(t *testing.T) {
	root := writeProject(t, map[string]string{"demo.go": cleanSource})
	run := runGate(t, root, `
project: demo
matrix:
  runtimes:
    - name: sh
test:
  command: ["sh", "-c", "true"]
quality:
  lint:
    - ["sh", "-c", "echo lint broke; exit 3"]
`)

	if len(run.Steps) != 1 {
		t.Fatalf("ran %d steps after a lint failure, want 1: %v", len(run.Steps), stepNames(run))
	}
	step := run.Steps[0]
	if step.Status != report.StatusFailed {
		t.Errorf("Status = %s, want failed", step.Status)
	}
	if !strings.Contains(step.Error, "code 3") {
		t.Errorf("Error = %q, want the exit code", step.Error)
	}
	if !strings.Contains(step.Output, "lint broke") {
		t.Errorf("Output = %q, want the command output", step.Output)
	}
}

func TestGate_CheckFindingsBecomeDiagnostics(t *testing.T) {
	undocumented := "// Package demo is a gate test subject.\npackage demo\n\nfunc Greet() string { return \"hi\" }\n"
	root := writeProject(t, map[string]string{"demo.go": undocumented})
	run := runGate(t, root, `
project: demo
matrix:
  runtimes:
    - name: sh
test:
  command: ["sh", "-c", "true"]
`)

	last := run.Steps[len(run.Steps)-1]
	if last.Name != "doccomment" || last.Status != report.StatusFailed {
		t.Fatalf("last step = %s/%s, want doccomment/failed", last.Name, last.Status)
	}
	if len(last.Diagnostics) != 1 || !strings.Contains(last.Diagnostics[0], "DC003") {
		t.Errorf("Diagnostics = %v, want one DC003 finding", last.Diagnostics)
	}
}

func TestGate_SelfcheckIsTerminal(t *testing.T) {
	root := writeProject(t, map[string]string{"demo.go": cleanSource})
	run := runGate(t, root, `
project: demo
matrix:
  runtimes:
    - name: definitely-not-a-command-on-this-host
test:
  command: ["sh", "-c", "true"]
`)

	last := run.Steps[len(run.Steps)-1]
	if last.Name != "selfcheck" || last.Status != report.StatusFailed {
		t.Fatalf("last step = %s/%s, want selfcheck/failed", last.Name, last.Status)
	}
	if len(last.Diagnostics) == 0 || !strings.Contains(last.Diagnostics[0], "runtime") {
		t.Errorf("Diagnostics = %v, want a runtime problem", last.Diagnostics)
	}
}

func TestCapDiagnostics(t *testing.T) {
	var all []string
	for i := 0; i < maxDiagnostics+7; i++ {
		all = append(all, "finding")
	}
	capped := capDiagnostics(all)
	if len(capped) != maxDiagnostics+1 {
		t.Fatalf("len = %d, want %d", len(capped), maxDiagnostics+1)
	}
	if capped[maxDiagnostics] != "... and 7 more" {
		t.Errorf("summary line = %q", capped[maxDiagnostics])
	}
}
