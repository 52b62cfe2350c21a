package docsgate

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

const docsProjectConfig = `
project: demo
matrix:
  runtimes:
    - name: sh
test:
  command: ["sh", "-c", "true"]
docs:
  stubs:
    - docs/api/*.md
  build:
    - ["sh", "-c", "mkdir -p docs/_build && echo ok > docs/_build/index.html"]
`

func runDocsGate(t *testing.T, root, yaml string) *report.GateRun {
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

func TestDocsGate_OrderAndPass(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":       "# demo\n\nA fine project.\n",
		"docs/index.md":   "# Guide\n",
		"docs/api/gen.md": "# generated\n",
	})
	run := runDocsGate(t, root, docsProjectConfig)

	if !run.Passed() {
		t.Fatalf("gate failed: %+v", run.Steps)
	}
	got := strings.Join(stepNames(run), " ")
	if want := "doclint stubs build metadata"; got != want {
		t.Errorf("step order = %q, want %q", got, want)
	}
	if run.Gate != "docs" {
		t.Errorf("Gate = %q, want docs", run.Gate)
	}
	if _, err := os.Stat(filepath.Join(root, "docs", "_build", "index.html")); err != nil {
		t.Errorf("build output missing: %v", err)
	}
}

func TestDocsGate_StubRemovalIsIdempotent(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":       "# demo\n",
		"docs/index.md":   "# Guide\n",
		"docs/api/one.md": "# one\n",
		"docs/api/two.md": "# two\n",
	})

	first := runDocsGate(t, root, docsProjectConfig)
	if !first.Passed() {
		t.Fatalf("first run failed: %+v", first.Steps)
	}
	stubs := first.Steps[1]
	if !strings.Contains(stubs.Output, "docs/api/one.md") || !strings.Contains(stubs.Output, "docs/api/two.md") {
		t.Errorf("stubs Output = %q, want both removals listed", stubs.Output)
	}
	if _, err := os.Stat(filepath.Join(root, "docs", "api", "one.md")); !os.IsNotExist(err) {
		t.Error("stub one.md survived the gate")
	}

	// Nothing left to delete; the second run must succeed anyway.
	second := runDocsGate(t, root, docsProjectConfig)
	if !second.Passed() {
		t.Fatalf("second run failed: %+v", second.Steps)
	}
	if out := second.Steps[1].Output; out != "" {
		t.Errorf("second stubs Output = %q, want empty", out)
	}
}

func TestDocsGate_FailsFastOnDoclint(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":       "# demo\n\n" + strings.Repeat("x", 200) + "\n",
		"docs/index.md":   "# Guide\n",
		"docs/api/one.md": "# one\n",
	})
	run := runDocsGate(t, root, docsProjectConfig)

	if len(run.Steps) != 1 {
		t.Fatalf("ran %d steps after a doclint failure, want 1: %v", len(run.Steps), stepNames(run))
	}
	if run.Steps[0].Status != report.StatusFailed {
		t.Errorf("Status = %s, want failed", run.Steps[0].Status)
	}
	if _, err := os.Stat(filepath.Join(root, "docs", "api", "one.md")); err != nil {
		t.Error("stub removed although the gate stopped before the stubs step")
	}
}

func TestDocsGate_BuildFailureCarriesOutput(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":     "# demo\n",
		"docs/index.md": "# Guide\n",
	})
	run := runDocsGate(t, root, `
project: demo
matrix:
  runtimes:
    - name: sh
test:
  command: ["sh", "-c", "true"]
docs:
  build:
    - ["sh", "-c", "echo kaboom >&2; exit 2"]
`)

	names := stepNames(run)
	if want := "doclint stubs build"; strings.Join(names, " ") != want {
		t.Fatalf("steps = %v, want %q", names, want)
	}
	build := run.Steps[2]
	if build.Status != report.StatusFailed {
		t.Errorf("Status = %s, want failed", build.Status)
	}
	if !strings.Contains(build.Output, "kaboom") {
		t.Errorf("Output = %q, want the command output", build.Output)
	}
	if !strings.Contains(build.Error, "code 2") {
		t.Errorf("Error = %q, want the exit code", build.Error)
	}
}

func TestDocsGate_BuildCleansPreviousOutput(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":              "# demo\n",
		"docs/index.md":          "# Guide\n",
		"docs/_build/stale.html": "old\n",
	})
	run := runDocsGate(t, root, docsProjectConfig)

	if !run.Passed() {
		t.Fatalf("gate failed: %+v", run.Steps)
	}
	if _, err := os.Stat(filepath.Join(root, "docs", "_build", "stale.html")); !os.IsNotExist(err) {
		t.Error("stale build output survived the clean rebuild")
	}
}

func TestDocsGate_MetadataFallsBackToReadme(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":     "# demo\n\nSee [there][nowhere].\n",
		"docs/index.md": "# Guide\n",
	})
	run := runDocsGate(t, root, docsProjectConfig)

	last := run.Steps[len(run.Steps)-1]
	if last.Name != "metadata" || last.Status != report.StatusFailed {
		t.Fatalf("last step = %s/%s, want metadata/failed", last.Name, last.Status)
	}
	if len(last.Diagnostics) != 1 || !strings.Contains(last.Diagnostics[0], CodeMetaDanglingRef) {
		t.Errorf("Diagnostics = %v, want one %s finding", last.Diagnostics, CodeMetaDanglingRef)
	}
}
