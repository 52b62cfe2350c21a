package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — muted terminal tones that stay readable on dark and
// light backgrounds
var (
	Primary   = lipgloss.Color("#7AA2F7") // Blue
	Secondary = lipgloss.Color("#2AC3DE") // Cyan
	Accent    = lipgloss.Color("#BB9AF7") // Purple
	Success   = lipgloss.Color("#9ECE6A") // Green
	Error     = lipgloss.Color("#F7768E") // Rose
	Warn      = lipgloss.Color("#E0AF68") // Amber
	Text      = lipgloss.Color("#C0CAF5") // Pale Blue
	TextDim   = lipgloss.Color("#565F89") // Slate
	BgCard    = lipgloss.Color("#24283B") // Dark Slate
	Border    = lipgloss.Color("#414868") // Steel
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Statuses
var (
	Pass = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Fail = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Broken = lipgloss.NewStyle().
		Foreground(Warn).
		Bold(true)

	Pending = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
