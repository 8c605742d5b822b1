package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette, ink and paper with a vermilion accent.
var (
	Primary   = lipgloss.Color("#E0533D") // Vermilion
	Secondary = lipgloss.Color("#5B8FB9") // Indigo wash
	Accent    = lipgloss.Color("#E8B04B") // Gold leaf
	Success   = lipgloss.Color("#7FB069") // Bamboo
	Error     = lipgloss.Color("#D64550") // Crimson
	Text      = lipgloss.Color("#F4F1EA") // Washi
	TextDim   = lipgloss.Color("#9A958C") // Ash
	BgDark    = lipgloss.Color("#1B1B1E") // Sumi
	BgCard    = lipgloss.Color("#26262B") // Charcoal
	Border    = lipgloss.Color("#3C3C44") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Glyph frames a single kanji shown as a question prompt.
	Glyph = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Primary).
		Padding(1, 4)

	// Reading renders kana readings.
	Reading = lipgloss.NewStyle().
		Foreground(Secondary)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
