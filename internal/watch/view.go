package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/matrun/matrun/internal/report"
	"github.com/matrun/matrun/internal/ui/theme"
)

func (m Model) render() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  matrun"))
	b.WriteString(theme.Subtitle.Render("  " + m.project))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, r := range m.rows {
		if len(r.env.Name) > nameWidth {
			nameWidth = len(r.env.Name)
		}
	}

	for _, r := range m.rows {
		b.WriteString(m.renderRow(r, nameWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.cancelling {
		b.WriteString(theme.Broken.Render("  cancelling, waiting for the engine..."))
	} else {
		b.WriteString(theme.Hint.Render("  ctrl+c cancel"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderRow(r *row, nameWidth int) string {
	name := fmt.Sprintf("%-*s", nameWidth, r.env.Name)

	if r.report != nil {
		return "  " + finishedLine(r.report, name)
	}

	if r.stage != "" {
		return fmt.Sprintf("  %s %s  %s",
			m.spin.View(),
			theme.Body.Render(name),
			theme.Subtitle.Render(stageLabel(r.stage)))
	}

	return fmt.Sprintf("  %s %s  %s",
		theme.Pending.Render("·"),
		theme.Pending.Render(name),
		theme.Pending.Render("waiting"))
}

func finishedLine(rep *report.EnvReport, name string) string {
	d := (time.Duration(rep.DurationMS) * time.Millisecond).Round(100 * time.Millisecond)

	switch rep.Status {
	case report.StatusPassed:
		detail := fmt.Sprintf("passed in %s", d)
		if rep.Coverage != nil {
			detail += fmt.Sprintf(", %.1f%% coverage", rep.CoveragePercent)
		}
		return fmt.Sprintf("%s %s  %s",
			theme.Pass.Render("✓"),
			theme.Body.Render(name),
			theme.Subtitle.Render(detail))

	case report.StatusFailed:
		detail := rep.Error
		if detail == "" {
			detail = fmt.Sprintf("tests failed (exit %d)", rep.ExitCode)
		}
		return fmt.Sprintf("%s %s  %s",
			theme.Fail.Render("✗"),
			theme.Body.Render(name),
			theme.Fail.Render(detail))

	default:
		return fmt.Sprintf("%s %s  %s",
			theme.Broken.Render("!"),
			theme.Body.Render(name),
			theme.Broken.Render(rep.Stage+": "+rep.Error))
	}
}

func stageLabel(stage string) string {
	switch stage {
	case report.StageResolve:
		return "resolving dependencies"
	case report.StageSetup:
		return "running setup"
	case report.StageTest:
		return "running tests"
	default:
		return stage
	}
}
