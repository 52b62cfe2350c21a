package watch

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/matrun/matrun/internal/config"
	"github.com/matrun/matrun/internal/engine"
	"github.com/matrun/matrun/internal/matrix"
	"github.com/matrun/matrun/internal/report"
)

func testEnvs() []matrix.Environment {
	return []matrix.Environment{
		{
			Name:      "go1.24-chi-v5.1",
			Runtime:   config.Runtime{Name: "go1.24", Image: "golang:1.24"},
			Framework: "chi",
			Package:   "github.com/go-chi/chi/v5",
			Range:     "v5.1",
		},
		{
			Name:      "go1.25-chi-v5.1",
			Runtime:   config.Runtime{Name: "go1.25", Image: "golang:1.25"},
			Framework: "chi",
			Package:   "github.com/go-chi/chi/v5",
			Range:     "v5.1",
		},
	}
}

func testModel(cancel func()) Model {
	events := make(chan engine.Event, 8)
	return newModel("router", testEnvs(), events, cancel, func() *report.MatrixRun {
		return &report.MatrixRun{}
	})
}

func TestModel_RowsStartPending(t *testing.T) {
	m := testModel(nil)
	view := m.render()
	if !strings.Contains(view, "waiting") {
		t.Errorf("expected pending rows in view, got:\n%s", view)
	}
	if !strings.Contains(view, "go1.24-chi-v5.1") {
		t.Errorf("expected env name in view, got:\n%s", view)
	}
}

func TestModel_ProgressAdvancesStage(t *testing.T) {
	m := testModel(nil)
	out, cmd := m.Update(progressMsg{Env: "go1.24-chi-v5.1", Stage: report.StageResolve})
	m = out.(Model)
	if cmd == nil {
		t.Fatal("expected a re-listen command after a progress event")
	}
	if !strings.Contains(m.render(), "resolving dependencies") {
		t.Errorf("expected stage label in view, got:\n%s", m.render())
	}
}

func TestModel_FinishedRowShowsOutcome(t *testing.T) {
	m := testModel(nil)

	passed := &report.EnvReport{
		Env: "go1.24-chi-v5.1", Status: report.StatusPassed,
		Stage: report.StageTest, DurationMS: 1200,
	}
	out, _ := m.Update(progressMsg{Env: "go1.24-chi-v5.1", Report: passed})
	m = out.(Model)

	failed := &report.EnvReport{
		Env: "go1.25-chi-v5.1", Status: report.StatusFailed,
		Stage: report.StageTest, ExitCode: 1, DurationMS: 900,
	}
	out, _ = m.Update(progressMsg{Env: "go1.25-chi-v5.1", Report: failed})
	m = out.(Model)

	view := m.render()
	if !strings.Contains(view, "passed in") {
		t.Errorf("expected passed outcome in view, got:\n%s", view)
	}
	if !strings.Contains(view, "tests failed (exit 1)") {
		t.Errorf("expected failed outcome in view, got:\n%s", view)
	}
}

func TestModel_RunDoneQuits(t *testing.T) {
	m := testModel(nil)
	run := &report.MatrixRun{RunID: "abc"}
	out, cmd := m.Update(runDoneMsg{run: run})
	m = out.(Model)
	if cmd == nil {
		t.Fatal("expected a quit command when the run finishes")
	}
	if m.final != run {
		t.Error("expected the finished run to be captured")
	}
}

func TestModel_InterruptCancelsThenQuits(t *testing.T) {
	cancelled := false
	m := testModel(func() { cancelled = true })

	out, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	m = out.(Model)
	if !cancelled {
		t.Error("expected the first interrupt to cancel the engine")
	}
	if cmd != nil {
		t.Error("expected the first interrupt to keep the view open")
	}
	if !strings.Contains(m.render(), "cancelling") {
		t.Errorf("expected cancelling notice in view, got:\n%s", m.render())
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Error("expected the second interrupt to quit")
	}
}

func TestStageLabel(t *testing.T) {
	tests := []struct {
		stage string
		want  string
	}{
		{report.StageResolve, "resolving dependencies"},
		{report.StageSetup, "running setup"},
		{report.StageTest, "running tests"},
		{"custom", "custom"},
	}
	for _, tt := range tests {
		if got := stageLabel(tt.stage); got != tt.want {
			t.Errorf("stageLabel(%q) = %q, want %q", tt.stage, got, tt.want)
		}
	}
}
