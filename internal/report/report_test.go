package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matrun/matrun/internal/coverage"
)

func sampleRun() *MatrixRun {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &MatrixRun{
		RunID:      "run-1",
		Project:    "demo",
		StartedAt:  start,
		FinishedAt: start.Add(21 * time.Second),
		Envs: []EnvReport{
			{
				Env: "go1.24-chi-v5.1", Runtime: "go1.24", Framework: "chi", Range: "v5.1",
				Status: StatusPassed, Stage: StageTest, DurationMS: 9000,
				CoveragePercent: 84.2,
				Coverage: &coverage.Profile{Mode: "set", Files: []coverage.FileCoverage{
					{Name: "a.go", Statements: 10, Covered: 8, Missing: []coverage.LineRange{{Start: 4, End: 9}}},
				}},
			},
			{
				Env: "go1.25-chi-v5.1", Runtime: "go1.25", Framework: "chi", Range: "v5.1",
				Status: StatusFailed, Stage: StageTest, ExitCode: 1, DurationMS: 12000,
				OutputTail: "--- FAIL: TestThing\nFAIL",
			},
		},
	}
}

func TestMatrixRun_PassedAndCounts(t *testing.T) {
	m := sampleRun()
	if m.Passed() {
		t.Error("Passed() = true with a failed env")
	}

	passed, failed, errored := m.Counts()
	if passed != 1 || failed != 1 || errored != 0 {
		t.Errorf("Counts() = %d/%d/%d, want 1/1/0", passed, failed, errored)
	}

	m.Envs[1].Status = StatusPassed
	if !m.Passed() {
		t.Error("Passed() = false with all envs passed")
	}
}

func TestGateRun_Passed(t *testing.T) {
	g := &GateRun{Steps: []GateStep{
		{Name: "lint", Status: StatusPassed},
		{Name: "style", Status: StatusFailed},
	}}
	if g.Passed() {
		t.Error("Passed() = true with failed step")
	}
}

func TestTail(t *testing.T) {
	in := "one\ntwo\nthree\nfour\n"
	if got := Tail(in, 2); got != "three\nfour" {
		t.Errorf("Tail = %q, want %q", got, "three\nfour")
	}
	if got := Tail(in, 10); got != "one\ntwo\nthree\nfour" {
		t.Errorf("Tail with slack = %q", got)
	}
	if got := Tail("", 3); got != "" {
		t.Errorf("Tail of empty = %q", got)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteJSON(path, sampleRun()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var m MatrixRun
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.RunID != "run-1" || len(m.Envs) != 2 {
		t.Errorf("round trip lost data: %+v", m)
	}
	if m.Envs[0].Coverage == nil || m.Envs[0].Coverage.Files[0].Missing[0].Start != 4 {
		t.Error("coverage detail lost in round trip")
	}
}
