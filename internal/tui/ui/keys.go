package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings for the TUI
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	// Period navigation; on the Config tab these cycle themes
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding

	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding

	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding

	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func bind(label, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:   bind("↑/k", "up", "up", "k"),
		Down: bind("↓/j", "down", "down", "j"),

		Prev:  bind("←/h", "previous", "left", "h"),
		Next:  bind("→/l", "next", "right", "l"),
		Today: bind("t", "today", "t"),

		NextTab: bind("tab", "next view", "tab"),
		PrevTab: bind("shift+tab", "prev view", "shift+tab"),
		Tab1:    bind("1", "week", "1"),
		Tab2:    bind("2", "month", "2"),
		Tab3:    bind("3", "config", "3"),

		Select:  bind("enter", "save", "enter"),
		Back:    bind("esc", "cancel", "esc"),
		Quit:    bind("q", "quit", "q", "ctrl+c"),
		Help:    bind("?", "help", "?"),
		Refresh: bind("r", "refresh", "r"),

		New:    bind("n", "new", "n"),
		Edit:   bind("e", "edit", "e"),
		Delete: bind("d", "delete", "d"),
	}
}

// Combine merges bindings into one help entry labelled with the last key
// of each binding, so Combine("prev/next", k.Prev, k.Next) reads "h/l".
func Combine(desc string, bindings ...key.Binding) key.Binding {
	var keys, labels []string
	for _, b := range bindings {
		ks := b.Keys()
		if len(ks) == 0 {
			continue
		}
		keys = append(keys, ks...)
		labels = append(labels, ks[len(ks)-1])
	}
	return bind(strings.Join(labels, "/"), desc, keys...)
}

// GlobalHelp lists the bindings that work on every tab.
func (k KeyMap) GlobalHelp() []key.Binding {
	return []key.Binding{
		Combine("views", k.Tab1, k.Tab2, k.Tab3),
		k.NextTab,
		k.Help,
		k.Quit,
	}
}

// PeriodHelp lists the Week and Month tab bindings.
func (k KeyMap) PeriodHelp() []key.Binding {
	return []key.Binding{
		Combine("prev/next", k.Prev, k.Next),
		k.Today,
		Combine("select", k.Down, k.Up),
		k.New,
		k.Edit,
		k.Delete,
		k.Refresh,
	}
}

// ConfigHelp lists the Config tab bindings.
func (k KeyMap) ConfigHelp() []key.Binding {
	return []key.Binding{
		Combine("theme", k.Prev, k.Next),
		k.Refresh,
	}
}

// FormHelp lists the bindings active while an entry form or prompt is open.
func (k KeyMap) FormHelp() []key.Binding {
	return []key.Binding{
		bind("tab", "switch field", k.NextTab.Keys()...),
		k.Select,
		k.Back,
	}
}
