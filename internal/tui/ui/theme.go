package ui

import (
	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is used when the configured theme is empty or unknown
const DefaultTheme = "dracula"

// ThemeProvider wraps a bubbletint registry holding every built-in tint
type ThemeProvider struct {
	registry *tint.Registry
}

// NewThemeProvider returns a provider set to initialTheme, falling back to
// DefaultTheme when initialTheme is empty or not a known tint ID.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	tints := tint.DefaultTints()

	fallback := findTint(tints, DefaultTheme)
	if fallback == nil && len(tints) > 0 {
		fallback = tints[0]
	}

	tp := &ThemeProvider{registry: tint.NewRegistry(fallback, tints...)}
	if initialTheme != "" {
		tp.registry.SetTintID(initialTheme)
	}
	return tp
}

func findTint(tints []tint.Tint, id string) tint.Tint {
	for _, t := range tints {
		if t.ID() == id {
			return t
		}
	}
	return nil
}

// SetTheme switches to the tint with the given ID. It reports false and
// leaves the current theme unchanged when the ID is unknown.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// NextTheme advances to the next tint and returns its ID.
func (tp *ThemeProvider) NextTheme() string {
	tp.registry.NextTint()
	return tp.registry.ID()
}

// PreviousTheme steps back to the previous tint and returns its ID.
func (tp *ThemeProvider) PreviousTheme() string {
	tp.registry.PreviousTint()
	return tp.registry.ID()
}

// CurrentName returns the ID of the current tint, as stored in the config file.
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the human-readable name of the current tint.
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// Styles builds the style set for the current tint.
func (tp *ThemeProvider) Styles() Styles {
	r := tp.registry
	return newStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		muted:     r.BrightBlack(),
		over:      r.Green(),
		warning:   r.Yellow(),
		under:     r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
	})
}
