package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Entry table
	TableHeader lipgloss.Style
	RowSelected lipgloss.Style
	RowNormal   lipgloss.Style
	Over        lipgloss.Style // deviation at or above target
	Under       lipgloss.Style // deviation below target

	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Entry form
	InputLabel lipgloss.Style
	Dialog     lipgloss.Style

	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	over      lipgloss.TerminalColor
	warning   lipgloss.TerminalColor
	under     lipgloss.TerminalColor
	fg        lipgloss.TerminalColor
	bg        lipgloss.TerminalColor
}

// DefaultStyles returns styles on a fixed 256-color palette, used when no
// theme registry is available.
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:   lipgloss.Color("99"),
		secondary: lipgloss.Color("39"),
		muted:     lipgloss.Color("240"),
		over:      lipgloss.Color("82"),
		warning:   lipgloss.Color("214"),
		under:     lipgloss.Color("196"),
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
	})
}

func newStyles(p palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		TableHeader: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		RowSelected: lipgloss.NewStyle().
			Background(p.muted).
			Bold(true),
		RowNormal: lipgloss.NewStyle(),
		Over: lipgloss.NewStyle().
			Foreground(p.over),
		Under: lipgloss.NewStyle().
			Foreground(p.under),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),

		InputLabel: lipgloss.NewStyle().
			Foreground(p.secondary),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			Width(50),

		Error: lipgloss.NewStyle().
			Foreground(p.under),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.over),
	}
}

// Deviation renders a signed deviation string in the over or under style.
func (s Styles) Deviation(minutes int, text string) string {
	if minutes >= 0 {
		return s.Over.Render(text)
	}
	return s.Under.Render(text)
}
