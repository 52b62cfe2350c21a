package selfcheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matrun/matrun/internal/config"
)

func soundProject(t *testing.T) (string, *config.Config) {
	t.Helper()
	root := t.TempDir()

	write := func(rel, content string) {
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("deps/base.list", "github.com/google/uuid>=v1.5\n")
	write("deps/index.yaml", `packages:
  github.com/google/uuid: ["v1.6.0"]
  github.com/go-chi/chi/v5: ["v5.1.2"]
`)
	write("docs/index.md", "# demo\n")
	write("README.md", "# demo\n")

	cfg, err := config.Parse([]byte(`
project: demo
matrix:
  runtimes:
    - name: sh
      command: sh
  frameworks:
    - name: chi
      package: github.com/go-chi/chi/v5
      ranges: ["v5.1"]
deps:
  manifests: ["deps/base.list"]
  index: deps/index.yaml
test:
  command: ["sh", "-c", "true"]
docs:
  metadata: ["README.md"]
`))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return root, cfg
}

func TestRun_SoundConfig(t *testing.T) {
	root, cfg := soundProject(t)
	if problems := Run(cfg, root); len(problems) != 0 {
		t.Errorf("problems = %v, want none", problems)
	}
}

func TestRun_MissingRuntimeCommand(t *testing.T) {
	root, cfg := soundProject(t)
	cfg.Matrix.Runtimes[0].Command = "no-such-binary-2f8a"

	problems := Run(cfg, root)
	if !hasProblem(problems, "matrix", "not found in PATH") {
		t.Errorf("problems = %v, want missing runtime command", problems)
	}
}

func TestRun_BrokenManifest(t *testing.T) {
	root, cfg := soundProject(t)
	if err := os.WriteFile(filepath.Join(root, "deps/base.list"), []byte("broken>=nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	problems := Run(cfg, root)
	if !hasProblem(problems, "deps", "manifest") {
		t.Errorf("problems = %v, want manifest problem", problems)
	}
}

func TestRun_RequirementNotInIndex(t *testing.T) {
	root, cfg := soundProject(t)
	if err := os.WriteFile(filepath.Join(root, "deps/base.list"), []byte("example.com/ghost\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	problems := Run(cfg, root)
	if !hasProblem(problems, "deps", "not in the version index") {
		t.Errorf("problems = %v, want missing package", problems)
	}
}

func TestRun_UnsatisfiableFrameworkRange(t *testing.T) {
	root, cfg := soundProject(t)
	cfg.Matrix.Frameworks[0].Ranges = []string{"v9.9"}

	problems := Run(cfg, root)
	if !hasProblem(problems, "matrix", "satisfies range") {
		t.Errorf("problems = %v, want unsatisfiable range", problems)
	}
}

func TestRun_MissingDocsPieces(t *testing.T) {
	root, cfg := soundProject(t)
	if err := os.Remove(filepath.Join(root, "README.md")); err != nil {
		t.Fatal(err)
	}
	if err := os.RemoveAll(filepath.Join(root, "docs")); err != nil {
		t.Fatal(err)
	}

	problems := Run(cfg, root)
	if !hasProblem(problems, "docs", "not a directory") {
		t.Errorf("problems = %v, want missing docs source", problems)
	}
	if !hasProblem(problems, "docs", "does not exist") {
		t.Errorf("problems = %v, want missing metadata file", problems)
	}
}

func TestRun_MissingImportScope(t *testing.T) {
	root, cfg := soundProject(t)
	cfg.Quality.Imports.Scopes = []string{"./nowhere"}

	problems := Run(cfg, root)
	if !hasProblem(problems, "quality", "not a directory") {
		t.Errorf("problems = %v, want missing scope", problems)
	}
}

func hasProblem(problems []Problem, area, fragment string) bool {
	for _, p := range problems {
		if p.Area == area && strings.Contains(p.Message, fragment) {
			return true
		}
	}
	return false
}
