package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matrun/matrun/internal/coverage"
	"github.com/matrun/matrun/internal/deps"
	"github.com/matrun/matrun/internal/report"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func sampleMatrixRun(runID string, started time.Time) *report.MatrixRun {
	return &report.MatrixRun{
		RunID:      runID,
		Project:    "demo",
		StartedAt:  started,
		FinishedAt: started.Add(90 * time.Second),
		Envs: []report.EnvReport{
			{
				Env:             "go1.24-chi-v5.1",
				Runtime:         "go1.24",
				Framework:       "chi",
				Range:           "v5.1",
				Status:          report.StatusPassed,
				Stage:           report.StageTest,
				CoveragePercent: 84.2,
				Coverage: &coverage.Profile{
					Mode: "set",
					Files: []coverage.FileCoverage{
						{Name: "a.go", Statements: 10, Covered: 8, Missing: []coverage.LineRange{{Start: 4, End: 5}}},
					},
				},
				Lockfile: &deps.Lockfile{
					Packages: []deps.LockedPackage{{Name: "chi", Version: "v5.1.2"}},
				},
				DurationMS: 61000,
			},
			{
				Env:        "go1.24-chi-v5.2",
				Runtime:    "go1.24",
				Framework:  "chi",
				Range:      "v5.2",
				Status:     report.StatusFailed,
				Stage:      report.StageTest,
				ExitCode:   1,
				OutputTail: "--- FAIL: TestRouter",
				DurationMS: 29000,
			},
		},
	}
}

func TestMatrixRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Runs()
	ctx := context.Background()

	saved := sampleMatrixRun("11111111-2222-3333-4444-555555555555", time.Now().UTC().Truncate(time.Second))
	if err := repo.SaveMatrix(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Matrix(ctx, "11111111")
	if err != nil {
		t.Fatalf("retrieve by prefix: %v", err)
	}
	if got.RunID != saved.RunID || got.Project != "demo" {
		t.Errorf("got run %s/%s, want %s/demo", got.RunID, got.Project, saved.RunID)
	}
	if len(got.Envs) != 2 {
		t.Fatalf("retrieved %d env reports, want 2", len(got.Envs))
	}
	if got.Envs[0].Env != "go1.24-chi-v5.1" || got.Envs[1].Env != "go1.24-chi-v5.2" {
		t.Errorf("env order = %s, %s", got.Envs[0].Env, got.Envs[1].Env)
	}

	first := got.Envs[0]
	if v, ok := first.Lockfile.Version("chi"); !ok || v != "v5.1.2" {
		t.Errorf("lockfile chi = %q, want v5.1.2", v)
	}
	if first.Coverage == nil || len(first.Coverage.Files) != 1 {
		t.Fatalf("coverage not preserved: %+v", first.Coverage)
	}
	if missing := first.Coverage.Files[0].Missing; len(missing) != 1 || missing[0].Start != 4 {
		t.Errorf("missing ranges = %v, want [4-5]", missing)
	}
}

func TestEnvReportsIndividuallyRetrievable(t *testing.T) {
	s := openTestStore(t)
	repo := s.Runs()
	ctx := context.Background()

	run := sampleMatrixRun("aaaaaaaa-0000-0000-0000-000000000000", time.Now())
	if err := repo.SaveMatrix(ctx, run); err != nil {
		t.Fatal(err)
	}

	// Every environment of a run is addressable on its own, the
	// failing one included.
	for _, env := range run.Envs {
		got, err := repo.Env(ctx, "aaaaaaaa", env.Env)
		if err != nil {
			t.Fatalf("Env(%s): %v", env.Env, err)
		}
		if got.Status != env.Status || got.ExitCode != env.ExitCode {
			t.Errorf("Env(%s) = %s/%d, want %s/%d", env.Env, got.Status, got.ExitCode, env.Status, env.ExitCode)
		}
	}

	if _, err := repo.Env(ctx, "aaaaaaaa", "no-such-env"); err == nil {
		t.Error("expected an error for an unknown environment")
	}
}

func TestGateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Runs()
	ctx := context.Background()

	started := time.Now().UTC().Truncate(time.Second)
	saved := &report.GateRun{
		RunID:     "bbbbbbbb-0000-0000-0000-000000000000",
		Gate:      "quality",
		Project:   "demo",
		StartedAt: started,
		Steps: []report.GateStep{
			{Name: "lint", Status: report.StatusPassed, DurationMS: 1200},
			{Name: "style", Status: report.StatusFailed, Diagnostics: []string{"a.go:3: ST001 line is 130 characters, limit 120"}},
		},
	}
	if err := repo.SaveGate(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Gate(ctx, "bbbbbbbb")
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if got.Gate != "quality" || len(got.Steps) != 2 {
		t.Fatalf("got %s with %d steps, want quality with 2", got.Gate, len(got.Steps))
	}
	if got.Steps[1].Diagnostics[0] != saved.Steps[1].Diagnostics[0] {
		t.Errorf("diagnostics not preserved: %v", got.Steps[1].Diagnostics)
	}
	if got.Passed() {
		t.Error("a gate with a failed step reads as passed")
	}
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Runs()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	if err := repo.SaveMatrix(ctx, sampleMatrixRun("cccccccc-0000-0000-0000-000000000000", base)); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveGate(ctx, &report.GateRun{
		RunID: "dddddddd-0000-0000-0000-000000000000", Gate: "docs", Project: "demo",
		StartedAt: base.Add(time.Minute),
		Steps:     []report.GateStep{{Name: "doclint", Status: report.StatusPassed}},
	}); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveGate(ctx, &report.GateRun{
		RunID: "eeeeeeee-0000-0000-0000-000000000000", Gate: "quality", Project: "demo",
		StartedAt: base.Add(2 * time.Minute),
		Steps:     []report.GateStep{{Name: "lint", Status: report.StatusPassed}},
	}); err != nil {
		t.Fatal(err)
	}

	all, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("listed %d runs, want 3", len(all))
	}
	if all[0].Kind != "quality" || all[1].Kind != "docs" || all[2].Kind != "matrix" {
		t.Errorf("order = %s, %s, %s, want newest first", all[0].Kind, all[1].Kind, all[2].Kind)
	}
	if all[2].Outcome != "1 passed, 1 failed" {
		t.Errorf("matrix outcome = %q, want counts", all[2].Outcome)
	}

	two, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(two) != 2 {
		t.Errorf("limited list has %d entries, want 2", len(two))
	}
}

func TestAmbiguousPrefix(t *testing.T) {
	s := openTestStore(t)
	repo := s.Runs()
	ctx := context.Background()

	now := time.Now()
	if err := repo.SaveMatrix(ctx, sampleMatrixRun("ffff1111-0000-0000-0000-000000000000", now)); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveMatrix(ctx, sampleMatrixRun("ffff2222-0000-0000-0000-000000000000", now)); err != nil {
		t.Fatal(err)
	}

	_, err := repo.Matrix(ctx, "ffff")
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("err = %v, want an ambiguity error", err)
	}

	if _, err := repo.Matrix(ctx, "ffff1111"); err != nil {
		t.Errorf("unambiguous prefix failed: %v", err)
	}
}
