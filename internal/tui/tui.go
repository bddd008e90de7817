// Package tui provides the terminal user interface for worklog.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/tui/ui"
	"github.com/xolan/worklog/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabWeek Tab = iota
	TabMonth
	TabConfig
)

var tabNames = []string{"Week", "Month", "Config"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	weekView   views.PeriodModel
	monthView  views.PeriodModel
	configView views.ConfigModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates the root model with the week and month views positioned on today
func New(services *service.Services, today time.Time) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabWeek,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		weekView:      views.NewWeekModel(services, styles, keys, today),
		monthView:     views.NewMonthModel(services, styles, keys, today),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.weekView.Init(),
		m.monthView.Init(),
		m.configView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// the entry form and delete prompt see every key
		if !m.isModalInputMode() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.showHelp = !m.showHelp
				return m, nil
			case key.Matches(msg, m.keys.NextTab):
				m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
				return m, nil
			case key.Matches(msg, m.keys.PrevTab):
				m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
				return m, nil
			case key.Matches(msg, m.keys.Tab1):
				m.activeTab = TabWeek
				return m, nil
			case key.Matches(msg, m.keys.Tab2):
				m.activeTab = TabMonth
				return m, nil
			case key.Matches(msg, m.keys.Tab3):
				m.activeTab = TabConfig
				return m, nil
			}
		}
		return m.updateActive(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.weekView.SetSize(m.width, contentHeight)
		m.monthView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		m.styles = m.themeProvider.Styles()

		newTheme := m.themeProvider.CurrentName()
		model, cmd := m.broadcast(ui.ThemeChangedMsg{ThemeName: newTheme, Styles: m.styles})
		return model, tea.Batch(cmd, m.saveThemeConfig(newTheme))
	}

	// Loaded data and change notifications go to every view; each view drops
	// results that are not its own.
	return m.broadcast(msg)
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case TabWeek:
		m.weekView, cmd = m.weekView.Update(msg)
	case TabMonth:
		m.monthView, cmd = m.monthView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}
	return m, cmd
}

func (m Model) broadcast(msg tea.Msg) (Model, tea.Cmd) {
	var weekCmd, monthCmd, configCmd tea.Cmd
	m.weekView, weekCmd = m.weekView.Update(msg)
	m.monthView, monthCmd = m.monthView.Update(msg)
	m.configView, configCmd = m.configView.Update(msg)
	return m, tea.Batch(weekCmd, monthCmd, configCmd)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabWeek:
		b.WriteString(m.weekView.View())
	case TabMonth:
		b.WriteString(m.monthView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// tabHelp returns the bindings specific to the active tab
func (m Model) tabHelp() []key.Binding {
	if m.activeTab == TabConfig {
		return m.keys.ConfigHelp()
	}
	return m.keys.PeriodHelp()
}

func (m Model) renderStatusBar() string {
	bindings := m.keys.FormHelp()
	if !m.isModalInputMode() {
		global := m.keys.GlobalHelp()
		bindings = append(m.tabHelp(), global[0], m.keys.Help, m.keys.Quit)
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s",
			m.styles.StatusKey.Render(b.Help().Key),
			m.styles.StatusHelp.Render(b.Help().Desc)))
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// isModalInputMode reports whether the active view owns the keyboard
func (m Model) isModalInputMode() bool {
	switch m.activeTab {
	case TabWeek:
		return m.weekView.IsInputMode()
	case TabMonth:
		return m.monthView.IsInputMode()
	}
	return false
}

// saveThemeConfig persists the theme and reports the result to the config view
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		return ui.ThemeSavedMsg{ThemeName: themeName, Err: services.Config.SetTheme(themeName)}
	}
}

func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	section := func(title string, bindings []key.Binding) {
		help.WriteString(m.styles.TableHeader.Render(title + ":"))
		help.WriteString("\n")
		for _, b := range bindings {
			fmt.Fprintf(&help, "  %-10s %s\n", b.Help().Key, b.Help().Desc)
		}
		help.WriteString("\n")
	}
	section("Global", m.keys.GlobalHelp())
	section(tabNames[m.activeTab], m.tabHelp())

	help.WriteString(m.styles.StatusHelp.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services, time.Now()), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
