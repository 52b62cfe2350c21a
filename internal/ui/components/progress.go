package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/matrun/matrun/internal/ui/theme"
)

// CoverageBar displays a horizontal coverage bar. Percent is 0..100.
// With a positive Minimum, a bar below it fills in the failure color.
type CoverageBar struct {
	Label   string
	Percent float64
	Minimum float64
	Width   int
}

// View renders the bar with the percentage at the end.
func (b CoverageBar) View() string {
	var result string

	if b.Label != "" {
		result += theme.Body.Render(b.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 7 // " 100.0%"

	barWidth := b.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * b.Percent / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fillStyle := theme.ProgressFilled
	if b.Minimum > 0 && b.Percent < b.Minimum {
		fillStyle = lipgloss.NewStyle().Background(theme.Error)
	}

	result += fillStyle.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))
	result += theme.Subtitle.Render(fmt.Sprintf(" %5.1f%%", b.Percent))

	return result
}
