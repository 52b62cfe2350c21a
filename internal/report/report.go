// Package report defines the run records matrun produces: one
// EnvReport per matrix environment, one GateRun per quality or docs
// gate. Reports serialize to JSON for machine consumption; terminal
// rendering lives in the ui package.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/matrun/matrun/internal/coverage"
	"github.com/matrun/matrun/internal/deps"
)

// Status is the outcome of an environment or gate step.
type Status string

const (
	// StatusPassed means everything ran and succeeded.
	StatusPassed Status = "passed"

	// StatusFailed means a command or check reported findings or a
	// non-zero exit.
	StatusFailed Status = "failed"

	// StatusError means the stage could not run at all: unresolvable
	// dependencies, a missing binary, a broken workspace.
	StatusError Status = "error"
)

// Stages of an environment run, in execution order.
const (
	StageResolve = "resolve"
	StageSetup   = "setup"
	StageTest    = "test"
)

// EnvReport is the run report of a single environment. Every
// environment in a run gets one, no matter how its siblings fared.
type EnvReport struct {
	Env       string `json:"env"`
	Runtime   string `json:"runtime"`
	Framework string `json:"framework,omitempty"`
	Range     string `json:"range,omitempty"`

	Status Status `json:"status"`

	// Stage is where the run stopped: the failing stage, or the last
	// stage on success.
	Stage string `json:"stage"`

	// ExitCode is the test command's exit, meaningful for StageTest
	// failures.
	ExitCode int `json:"exit_code"`

	// Error describes a StatusError cause.
	Error string `json:"error,omitempty"`

	Lockfile *deps.Lockfile `json:"lockfile,omitempty"`

	Coverage        *coverage.Profile `json:"coverage,omitempty"`
	CoveragePercent float64           `json:"coverage_percent"`

	// OutputTail is the end of the failing command's combined
	// output, enough to see the failure without the full log.
	OutputTail string `json:"output_tail,omitempty"`

	DurationMS int64 `json:"duration_ms"`
}

// MatrixRun is a full matrix invocation.
type MatrixRun struct {
	RunID      string      `json:"run_id"`
	Project    string      `json:"project"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Envs       []EnvReport `json:"envs"`
}

// Passed reports whether every environment passed.
func (m *MatrixRun) Passed() bool {
	for _, e := range m.Envs {
		if e.Status != StatusPassed {
			return false
		}
	}
	return true
}

// Counts tallies environments by status.
func (m *MatrixRun) Counts() (passed, failed, errored int) {
	for _, e := range m.Envs {
		switch e.Status {
		case StatusPassed:
			passed++
		case StatusFailed:
			failed++
		case StatusError:
			errored++
		}
	}
	return
}

// GateStep is one step of a gate run.
type GateStep struct {
	Name        string   `json:"name"`
	Status      Status   `json:"status"`
	Diagnostics []string `json:"diagnostics,omitempty"`
	Output      string   `json:"output,omitempty"`
	Error       string   `json:"error,omitempty"`
	DurationMS  int64    `json:"duration_ms"`
}

// GateRun is a quality or docs gate invocation. Steps stop at the
// first failure, so the last step is the failing one unless the gate
// passed.
type GateRun struct {
	RunID      string     `json:"run_id"`
	Gate       string     `json:"gate"`
	Project    string     `json:"project"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
	Steps      []GateStep `json:"steps"`
}

// Passed reports whether every executed step passed.
func (g *GateRun) Passed() bool {
	for _, s := range g.Steps {
		if s.Status != StatusPassed {
			return false
		}
	}
	return true
}

// WriteJSON stores any report as indented JSON.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Tail returns the last maxLines lines of s, trimmed of trailing
// whitespace. Failure reports keep the end of the output, where test
// runners put their verdicts.
func Tail(s string, maxLines int) string {
	s = strings.TrimRight(s, " \t\n")
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}
