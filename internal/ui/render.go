// Package ui renders finished runs for the terminal: the matrix
// summary after run, the step list after a gate, and the detail view
// history shows for a single environment.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/matrun/matrun/internal/report"
	"github.com/matrun/matrun/internal/ui/components"
	"github.com/matrun/matrun/internal/ui/theme"
)

const coverBarWidth = 40

// MatrixSummary renders one line per environment plus the tally.
func MatrixSummary(run *report.MatrixRun, coverageMin float64) string {
	var b strings.Builder

	nameWidth := 0
	for _, e := range run.Envs {
		if len(e.Env) > nameWidth {
			nameWidth = len(e.Env)
		}
	}

	for i := range run.Envs {
		e := &run.Envs[i]
		b.WriteString(envLine(e, nameWidth))
		b.WriteString("\n")

		if e.Coverage != nil {
			bar := components.CoverageBar{
				Percent: e.CoveragePercent,
				Minimum: coverageMin,
				Width:   coverBarWidth,
			}
			b.WriteString("      " + bar.View() + "\n")
		}
		if e.Status != report.StatusPassed && e.OutputTail != "" {
			b.WriteString(indentDim(e.OutputTail, "      "))
		}
	}

	passed, failed, errored := run.Counts()
	parts := []string{fmt.Sprintf("%d passed", passed)}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	if errored > 0 {
		parts = append(parts, fmt.Sprintf("%d errored", errored))
	}
	tally := fmt.Sprintf("%s in %s", strings.Join(parts, ", "), runDuration(run.StartedAt, run.FinishedAt))

	b.WriteString("\n")
	if run.Passed() {
		b.WriteString("  " + theme.Pass.Render(tally) + "\n")
	} else {
		b.WriteString("  " + theme.Fail.Render(tally) + "\n")
	}
	return b.String()
}

func envLine(e *report.EnvReport, nameWidth int) string {
	name := fmt.Sprintf("%-*s", nameWidth, e.Env)
	d := (time.Duration(e.DurationMS) * time.Millisecond).Round(100 * time.Millisecond)

	switch e.Status {
	case report.StatusPassed:
		return fmt.Sprintf("  %s %s  %s",
			theme.Pass.Render("✓"),
			theme.Body.Render(name),
			theme.Subtitle.Render(d.String()))
	case report.StatusFailed:
		detail := e.Error
		if detail == "" {
			detail = fmt.Sprintf("tests failed (exit %d)", e.ExitCode)
		}
		return fmt.Sprintf("  %s %s  %s  %s",
			theme.Fail.Render("✗"),
			theme.Body.Render(name),
			theme.Subtitle.Render(d.String()),
			theme.Fail.Render(detail))
	default:
		return fmt.Sprintf("  %s %s  %s  %s",
			theme.Broken.Render("!"),
			theme.Body.Render(name),
			theme.Subtitle.Render(d.String()),
			theme.Broken.Render(e.Stage+": "+e.Error))
	}
}

// GateSummary renders the executed steps of a gate run and the
// verdict.
func GateSummary(run *report.GateRun) string {
	var b strings.Builder

	nameWidth := 0
	for _, s := range run.Steps {
		if len(s.Name) > nameWidth {
			nameWidth = len(s.Name)
		}
	}

	for _, s := range run.Steps {
		b.WriteString(stepLine(s, nameWidth))
		b.WriteString("\n")
		for _, diag := range s.Diagnostics {
			b.WriteString("      " + theme.Subtitle.Render(diag) + "\n")
		}
		if s.Status != report.StatusPassed && s.Output != "" {
			b.WriteString(indentDim(s.Output, "      "))
		}
	}

	b.WriteString("\n")
	verdict := fmt.Sprintf("%s gate %s in %s", run.Gate, verdictWord(run.Passed()), runDuration(run.StartedAt, run.FinishedAt))
	if run.Passed() {
		b.WriteString("  " + theme.Pass.Render(verdict) + "\n")
	} else {
		b.WriteString("  " + theme.Fail.Render(verdict) + "\n")
	}
	return b.String()
}

func stepLine(s report.GateStep, nameWidth int) string {
	name := fmt.Sprintf("%-*s", nameWidth, s.Name)
	d := (time.Duration(s.DurationMS) * time.Millisecond).Round(10 * time.Millisecond)

	switch s.Status {
	case report.StatusPassed:
		return fmt.Sprintf("  %s %s  %s",
			theme.Pass.Render("✓"),
			theme.Body.Render(name),
			theme.Subtitle.Render(d.String()))
	case report.StatusFailed:
		return fmt.Sprintf("  %s %s  %s",
			theme.Fail.Render("✗"),
			theme.Body.Render(name),
			theme.Subtitle.Render(d.String()))
	default:
		return fmt.Sprintf("  %s %s  %s  %s",
			theme.Broken.Render("!"),
			theme.Body.Render(name),
			theme.Subtitle.Render(d.String()),
			theme.Broken.Render(s.Error))
	}
}

// EnvDetail renders everything recorded for one environment: axes,
// outcome, locked versions, coverage and the output tail.
func EnvDetail(e *report.EnvReport, coverageMin float64) string {
	var b strings.Builder

	b.WriteString(envLine(e, len(e.Env)))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			theme.Subtitle.Render(fmt.Sprintf("%-9s", label)),
			theme.Body.Render(value)))
	}

	writeField("runtime", e.Runtime)
	if e.Framework != "" {
		writeField("framework", fmt.Sprintf("%s %s", e.Framework, e.Range))
	}
	writeField("stage", e.Stage)
	if e.Error != "" {
		writeField("error", e.Error)
	}

	if e.Lockfile != nil && len(e.Lockfile.Packages) > 0 {
		pins := make([]string, len(e.Lockfile.Packages))
		for i, p := range e.Lockfile.Packages {
			pins[i] = p.Name + " " + p.Version
		}
		writeField("locked", strings.Join(pins, ", "))
	}

	if e.Coverage != nil {
		b.WriteString("\n")
		bar := components.CoverageBar{
			Label:   "  cover",
			Percent: e.CoveragePercent,
			Minimum: coverageMin,
			Width:   coverBarWidth + 9,
		}
		b.WriteString(bar.View() + "\n")
		for _, f := range e.Coverage.Files {
			if len(f.Missing) == 0 {
				continue
			}
			ranges := make([]string, len(f.Missing))
			for i, r := range f.Missing {
				ranges[i] = r.String()
			}
			b.WriteString(fmt.Sprintf("    %s\n",
				theme.Subtitle.Render(fmt.Sprintf("%s misses %s", f.Name, strings.Join(ranges, ", ")))))
		}
	}

	if e.OutputTail != "" {
		b.WriteString("\n")
		b.WriteString(indentDim(e.OutputTail, "    "))
	}
	return b.String()
}

func indentDim(text, prefix string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		b.WriteString(prefix + theme.Hint.Render(line) + "\n")
	}
	return b.String()
}

func verdictWord(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}

func runDuration(start, end time.Time) string {
	return end.Sub(start).Round(100 * time.Millisecond).String()
}
