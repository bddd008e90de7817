package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/tui/ui"
)

// ConfigModel shows the effective configuration and cycles the theme
type ConfigModel struct {
	services      *service.Services
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	width  int
	height int

	config config.Config
	path   string
	exists bool
	status string
	err    error
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	return ConfigModel{
		services:      services,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
	}
}

type configLoadedMsg struct {
	config config.Config
	path   string
	exists bool
	err    error
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.load(false)
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			return m, requestTheme(m.themeProvider.NextTheme())
		case key.Matches(msg, m.keys.Prev):
			return m, requestTheme(m.themeProvider.PreviousTheme())
		case key.Matches(msg, m.keys.Refresh):
			m.status = ""
			return m, m.load(true)
		}

	case configLoadedMsg:
		m.err = msg.err
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles

	case ui.ThemeSavedMsg:
		m.err = msg.Err
		m.status = ""
		if msg.Err == nil {
			m.status = "Saved theme " + msg.ThemeName
			return m, m.load(false)
		}
	}

	return m, nil
}

func requestTheme(name string) tea.Cmd {
	return func() tea.Msg {
		return ui.ThemeChangeRequestMsg{ThemeName: name}
	}
}

// load reads the service's current config, re-reading the file first when reload is set
func (m ConfigModel) load(reload bool) tea.Cmd {
	cs := m.services.Config
	return func() tea.Msg {
		var err error
		if reload {
			err = cs.Reload()
		}
		return configLoadedMsg{config: cs.Get(), path: cs.GetPath(), exists: cs.Exists(), err: err}
	}
}

// settings lists the config keys in file order with display values
func (m ConfigModel) settings() [][2]string {
	c := m.config
	dbPath := c.DatabasePath
	if dbPath == "" {
		dbPath = "(default)"
	}
	return [][2]string{
		{"database_driver", c.DatabaseDriver},
		{"database_path", dbPath},
		{"listen_addr", c.ListenAddr},
		{"target_minutes", fmt.Sprintf("%d (%s)", c.TargetMinutes, cli.FormatDuration(c.TargetMinutes))},
		{"reject_equal_times", strconv.FormatBool(c.RejectEqualTimes)},
		{"log_level", c.LogLevel},
		{"theme", fmt.Sprintf("%s (%s)", m.themeProvider.CurrentName(), m.themeProvider.CurrentDisplayName())},
	}
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.StatLabel.Render("Config file:") + m.styles.StatValue.Render(m.path) + "\n")
	b.WriteString(m.styles.StatLabel.Render("Status:"))
	if m.exists {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no config file)"))
	}
	b.WriteString("\n\n")

	for _, kv := range m.settings() {
		b.WriteString(m.styles.StatLabel.Render(kv[0]) + m.styles.StatValue.Render(kv[1]) + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	case m.status != "":
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatusHelp.Render("Press h/l to cycle themes, r to reload the file"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
