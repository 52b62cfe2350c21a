package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/matrun/matrun/ent"
	"github.com/matrun/matrun/ent/envreport"
	"github.com/matrun/matrun/ent/gaterun"
	"github.com/matrun/matrun/ent/matrixrun"
	"github.com/matrun/matrun/internal/report"
)

type runRepo struct {
	client *ent.Client
}

func (r *runRepo) SaveMatrix(ctx context.Context, run *report.MatrixRun) error {
	passed, failed, errored := run.Counts()
	_, err := r.client.MatrixRun.Create().
		SetRunID(run.RunID).
		SetProject(run.Project).
		SetStartedAt(run.StartedAt).
		SetFinishedAt(run.FinishedAt).
		SetPassed(passed).
		SetFailed(failed).
		SetErrored(errored).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save matrix run: %w", err)
	}

	for _, env := range run.Envs {
		_, err := r.client.EnvReport.Create().
			SetRunID(run.RunID).
			SetEnv(env.Env).
			SetRuntime(env.Runtime).
			SetFramework(env.Framework).
			SetStatus(string(env.Status)).
			SetStage(env.Stage).
			SetExitCode(env.ExitCode).
			SetCoveragePercent(env.CoveragePercent).
			SetDurationMs(env.DurationMS).
			SetReport(env).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save env report %s: %w", env.Env, err)
		}
	}
	return nil
}

func (r *runRepo) SaveGate(ctx context.Context, run *report.GateRun) error {
	_, err := r.client.GateRun.Create().
		SetRunID(run.RunID).
		SetGate(run.Gate).
		SetProject(run.Project).
		SetStartedAt(run.StartedAt).
		SetFinishedAt(run.FinishedAt).
		SetPassed(run.Passed()).
		SetSteps(run.Steps).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save gate run: %w", err)
	}
	return nil
}

func (r *runRepo) List(ctx context.Context, limit int) ([]RunSummary, error) {
	mq := r.client.MatrixRun.Query().Order(ent.Desc(matrixrun.FieldStartedAt))
	gq := r.client.GateRun.Query().Order(ent.Desc(gaterun.FieldStartedAt))
	if limit > 0 {
		mq = mq.Limit(limit)
		gq = gq.Limit(limit)
	}

	matrixRuns, err := mq.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matrix runs: %w", err)
	}
	gateRuns, err := gq.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list gate runs: %w", err)
	}

	summaries := make([]RunSummary, 0, len(matrixRuns)+len(gateRuns))
	for _, m := range matrixRuns {
		summaries = append(summaries, RunSummary{
			RunID:      m.RunID,
			Kind:       "matrix",
			Project:    m.Project,
			StartedAt:  m.StartedAt,
			FinishedAt: m.FinishedAt,
			Outcome:    matrixOutcome(m.Passed, m.Failed, m.Errored),
		})
	}
	for _, g := range gateRuns {
		outcome := "failed"
		if g.Passed {
			outcome = "passed"
		}
		summaries = append(summaries, RunSummary{
			RunID:      g.RunID,
			Kind:       g.Gate,
			Project:    g.Project,
			StartedAt:  g.StartedAt,
			FinishedAt: g.FinishedAt,
			Outcome:    outcome,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].StartedAt.After(summaries[j].StartedAt)
	})
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

func (r *runRepo) Matrix(ctx context.Context, runID string) (*report.MatrixRun, error) {
	rows, err := r.client.MatrixRun.Query().
		Where(matrixrun.RunIDHasPrefix(runID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query matrix run: %w", err)
	}
	m, err := pickOne(rows, runID, func(m *ent.MatrixRun) string { return m.RunID })
	if err != nil {
		return nil, err
	}

	envRows, err := r.client.EnvReport.Query().
		Where(envreport.RunID(m.RunID)).
		Order(ent.Asc(envreport.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query env reports: %w", err)
	}

	run := &report.MatrixRun{
		RunID:      m.RunID,
		Project:    m.Project,
		StartedAt:  m.StartedAt,
		FinishedAt: m.FinishedAt,
	}
	for _, row := range envRows {
		run.Envs = append(run.Envs, row.Report)
	}
	return run, nil
}

func (r *runRepo) Gate(ctx context.Context, runID string) (*report.GateRun, error) {
	rows, err := r.client.GateRun.Query().
		Where(gaterun.RunIDHasPrefix(runID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query gate run: %w", err)
	}
	g, err := pickOne(rows, runID, func(g *ent.GateRun) string { return g.RunID })
	if err != nil {
		return nil, err
	}

	return &report.GateRun{
		RunID:      g.RunID,
		Gate:       g.Gate,
		Project:    g.Project,
		StartedAt:  g.StartedAt,
		FinishedAt: g.FinishedAt,
		Steps:      g.Steps,
	}, nil
}

func (r *runRepo) Env(ctx context.Context, runID, env string) (*report.EnvReport, error) {
	rows, err := r.client.EnvReport.Query().
		Where(envreport.RunIDHasPrefix(runID), envreport.Env(env)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query env report: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no environment %q in run %q", env, runID)
	}
	row, err := pickOne(rows, runID, func(e *ent.EnvReport) string { return e.RunID })
	if err != nil {
		return nil, err
	}
	rep := row.Report
	return &rep, nil
}

// pickOne narrows a prefix query to exactly one run, naming the
// candidates when the prefix is ambiguous.
func pickOne[T any](rows []T, prefix string, id func(T) string) (T, error) {
	var zero T
	switch len(rows) {
	case 0:
		return zero, fmt.Errorf("no run matches %q", prefix)
	case 1:
		return rows[0], nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		full := id(row)
		if len(full) > 8 {
			full = full[:8]
		}
		ids[i] = full
	}
	return zero, fmt.Errorf("run id %q is ambiguous (matches %s)", prefix, strings.Join(ids, ", "))
}

func matrixOutcome(passed, failed, errored int) string {
	out := fmt.Sprintf("%d passed", passed)
	if failed > 0 {
		out += fmt.Sprintf(", %d failed", failed)
	}
	if errored > 0 {
		out += fmt.Sprintf(", %d errored", errored)
	}
	return out
}
