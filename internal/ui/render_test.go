package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/matrun/matrun/internal/coverage"
	"github.com/matrun/matrun/internal/deps"
	"github.com/matrun/matrun/internal/report"
)

func testRun() *report.MatrixRun {
	start := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return &report.MatrixRun{
		RunID:      "aabbccdd-0000-1111-2222-333344445555",
		Project:    "router",
		StartedAt:  start,
		FinishedAt: start.Add(21 * time.Second),
		Envs: []report.EnvReport{
			{
				Env: "go1.24-chi-v5.1", Runtime: "go1.24",
				Framework: "chi", Range: "v5.1",
				Status: report.StatusPassed, Stage: report.StageTest,
				CoveragePercent: 84.2,
				Coverage: &coverage.Profile{
					Mode: "set",
					Files: []coverage.FileCoverage{
						{Name: "mux.go", Statements: 10, Covered: 8,
							Missing: []coverage.LineRange{{Start: 4, End: 5}}},
					},
				},
				Lockfile: &deps.Lockfile{Packages: []deps.LockedPackage{
					{Name: "chi", Version: "v5.1.2"},
				}},
				DurationMS: 12300,
			},
			{
				Env: "go1.25-chi-v5.1", Runtime: "go1.25",
				Framework: "chi", Range: "v5.1",
				Status: report.StatusFailed, Stage: report.StageTest,
				ExitCode: 1, OutputTail: "--- FAIL: TestRouter",
				DurationMS: 9000,
			},
		},
	}
}

func TestMatrixSummary(t *testing.T) {
	out := MatrixSummary(testRun(), 0)

	for _, want := range []string{
		"go1.24-chi-v5.1",
		"go1.25-chi-v5.1",
		"84.2%",
		"tests failed (exit 1)",
		"--- FAIL: TestRouter",
		"1 passed, 1 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestMatrixSummary_AllPassed(t *testing.T) {
	run := testRun()
	run.Envs = run.Envs[:1]
	out := MatrixSummary(run, 0)
	if !strings.Contains(out, "1 passed in") {
		t.Errorf("expected clean tally, got:\n%s", out)
	}
	if strings.Contains(out, "failed") {
		t.Errorf("clean run should not mention failures:\n%s", out)
	}
}

func TestGateSummary(t *testing.T) {
	start := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	run := &report.GateRun{
		RunID: "gate-1", Gate: "quality", Project: "router",
		StartedAt: start, FinishedAt: start.Add(2 * time.Second),
		Steps: []report.GateStep{
			{Name: "lint", Status: report.StatusPassed, DurationMS: 1200},
			{Name: "style", Status: report.StatusFailed, DurationMS: 100,
				Diagnostics: []string{"mux.go:14: ST001 line is 134 characters, limit 120"}},
		},
	}

	out := GateSummary(run)
	for _, want := range []string{"lint", "style", "ST001", "quality gate failed in"} {
		if !strings.Contains(out, want) {
			t.Errorf("gate summary missing %q:\n%s", want, out)
		}
	}
}

func TestEnvDetail(t *testing.T) {
	run := testRun()
	out := EnvDetail(&run.Envs[0], 80)

	for _, want := range []string{
		"go1.24",
		"chi v5.1",
		"chi v5.1.2",
		"mux.go misses 4-5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("env detail missing %q:\n%s", want, out)
		}
	}
}

func TestEnvDetail_ErroredEnv(t *testing.T) {
	e := &report.EnvReport{
		Env: "go1.24-chi-v9.9", Runtime: "go1.24",
		Framework: "chi", Range: "v9.9",
		Status: report.StatusError, Stage: report.StageResolve,
		Error: `no version of "chi" satisfies >=v9.9,<v9.10`,
	}
	out := EnvDetail(e, 0)
	if !strings.Contains(out, "resolve") {
		t.Errorf("expected failing stage in detail:\n%s", out)
	}
	if !strings.Contains(out, "satisfies") {
		t.Errorf("expected error text in detail:\n%s", out)
	}
}
