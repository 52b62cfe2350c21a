package matrix

import (
	"strings"
	"testing"

	"github.com/matrun/matrun/internal/config"
)

func testMatrix() config.Matrix {
	return config.Matrix{
		Runtimes: []config.Runtime{
			{Name: "go1.24", Command: "go1.24"},
			{Name: "go1.25", Command: "go"},
		},
		Frameworks: []config.Framework{
			{Name: "chi", Package: "github.com/go-chi/chi/v5", Ranges: []string{"v5.1", "v5.2"}},
		},
	}
}

func TestExpand_CrossProduct(t *testing.T) {
	envs := Expand(testMatrix())
	if len(envs) != 4 {
		t.Fatalf("expanded %d environments, want 4", len(envs))
	}

	wantNames := []string{
		"go1.24-chi-v5.1",
		"go1.24-chi-v5.2",
		"go1.25-chi-v5.1",
		"go1.25-chi-v5.2",
	}
	for i, want := range wantNames {
		if envs[i].Name != want {
			t.Errorf("envs[%d].Name = %q, want %q", i, envs[i].Name, want)
		}
	}

	if envs[0].Package != "github.com/go-chi/chi/v5" {
		t.Errorf("Package = %q", envs[0].Package)
	}
	if envs[0].Runtime.Command != "go1.24" {
		t.Errorf("Runtime.Command = %q", envs[0].Runtime.Command)
	}
}

func TestExpand_Excludes(t *testing.T) {
	m := testMatrix()
	m.Exclude = []config.MatrixExclude{
		{Runtime: "go1.24", Framework: "chi", Range: "v5.2"},
	}

	envs := Expand(m)
	if len(envs) != 3 {
		t.Fatalf("expanded %d environments, want 3", len(envs))
	}
	for _, e := range envs {
		if e.Name == "go1.24-chi-v5.2" {
			t.Error("excluded environment still present")
		}
	}
}

func TestExpand_ExcludeWholeRuntime(t *testing.T) {
	m := testMatrix()
	m.Exclude = []config.MatrixExclude{{Runtime: "go1.24"}}

	envs := Expand(m)
	if len(envs) != 2 {
		t.Fatalf("expanded %d environments, want 2", len(envs))
	}
	for _, e := range envs {
		if e.Runtime.Name == "go1.24" {
			t.Errorf("environment %s should be excluded", e.Name)
		}
	}
}

func TestExpand_NoFrameworkAxis(t *testing.T) {
	m := config.Matrix{Runtimes: []config.Runtime{{Name: "go1.25"}}}

	envs := Expand(m)
	if len(envs) != 1 {
		t.Fatalf("expanded %d environments, want 1", len(envs))
	}
	if envs[0].Name != "go1.25" {
		t.Errorf("Name = %q, want go1.25", envs[0].Name)
	}
	if envs[0].HasFramework() {
		t.Error("HasFramework() = true, want false")
	}
	if envs[0].Label() != "go1.25" {
		t.Errorf("Label() = %q", envs[0].Label())
	}
}

func TestSelect(t *testing.T) {
	envs := Expand(testMatrix())

	all, err := Select(envs, nil)
	if err != nil {
		t.Fatalf("Select(nil): %v", err)
	}
	if len(all) != len(envs) {
		t.Errorf("Select(nil) returned %d, want all %d", len(all), len(envs))
	}

	picked, err := Select(envs, []string{"go1.25-chi-v5.2", "go1.24-chi-v5.1"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if picked[0].Name != "go1.25-chi-v5.2" || picked[1].Name != "go1.24-chi-v5.1" {
		t.Errorf("Select order = %s, %s; want request order", picked[0].Name, picked[1].Name)
	}
}

func TestSelect_Unknown(t *testing.T) {
	_, err := Select(Expand(testMatrix()), []string{"go9.99-chi-v5.1"})
	if err == nil {
		t.Fatal("expected error for unknown environment")
	}
	if !strings.Contains(err.Error(), "go1.24-chi-v5.1") {
		t.Errorf("error %q should list known environments", err)
	}
}

func TestLabel(t *testing.T) {
	e := Environment{
		Name:      "go1.24-chi-v5.1",
		Runtime:   config.Runtime{Name: "go1.24"},
		Framework: "chi",
		Range:     "v5.1",
	}
	if got := e.Label(); got != "go1.24 / chi v5.1" {
		t.Errorf("Label() = %q", got)
	}
}
