package store

import (
	"context"
	"time"

	"github.com/matrun/matrun/internal/report"
)

// RunSummary is one line of run history.
type RunSummary struct {
	RunID      string
	Kind       string // "matrix", "quality" or "docs"
	Project    string
	StartedAt  time.Time
	FinishedAt time.Time
	Outcome    string // e.g. "2 passed, 1 failed" or "passed"
}

// RunRepo persists and retrieves matrix and gate runs. Retrieval
// accepts run id prefixes, so a short prefix from the history listing
// is enough.
type RunRepo interface {
	// SaveMatrix stores a matrix run with all its environment
	// reports.
	SaveMatrix(ctx context.Context, run *report.MatrixRun) error

	// SaveGate stores a gate run.
	SaveGate(ctx context.Context, run *report.GateRun) error

	// List returns the most recent runs of every kind, newest first.
	// A limit of zero returns everything.
	List(ctx context.Context, limit int) ([]RunSummary, error)

	// Matrix retrieves a matrix run with its environment reports.
	Matrix(ctx context.Context, runID string) (*report.MatrixRun, error)

	// Gate retrieves a gate run.
	Gate(ctx context.Context, runID string) (*report.GateRun, error)

	// Env retrieves a single environment's report from a matrix run.
	Env(ctx context.Context, runID, env string) (*report.EnvReport, error)
}
