package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/stats"
	"github.com/xolan/worklog/internal/timeutil"
	"github.com/xolan/worklog/internal/tui/ui"
)

// Period selects what a PeriodModel shows
type Period int

const (
	PeriodWeek Period = iota
	PeriodMonth
)

type periodMode int

const (
	periodModeNormal periodMode = iota
	periodModeForm
	periodModeDelete
)

// periodData is the part of a week or month summary the view renders
type periodData struct {
	title      string
	start, end time.Time
	entries    []entry.DayEntry
	totalHours float64
	deviation  int
	stats      stats.Statistics
	comparison string
}

// PeriodModel shows one week or month of entries and edits them
type PeriodModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap
	period   Period

	// UI state
	width   int
	height  int
	today   time.Time
	ref     time.Time
	cursor  int
	loading bool
	err     error
	status  string
	data    periodData

	mode periodMode
	form entryForm
}

// NewWeekModel creates the week view, starting at the week containing today
func NewWeekModel(services *service.Services, styles ui.Styles, keys ui.KeyMap, today time.Time) PeriodModel {
	return newPeriodModel(services, styles, keys, PeriodWeek, today)
}

// NewMonthModel creates the month view, starting at the month containing today
func NewMonthModel(services *service.Services, styles ui.Styles, keys ui.KeyMap, today time.Time) PeriodModel {
	return newPeriodModel(services, styles, keys, PeriodMonth, today)
}

func newPeriodModel(services *service.Services, styles ui.Styles, keys ui.KeyMap, period Period, today time.Time) PeriodModel {
	return PeriodModel{
		services: services,
		styles:   styles,
		keys:     keys,
		period:   period,
		today:    today,
		ref:      today,
		loading:  true,
	}
}

// periodLoadedMsg carries a fetched summary back to the view that asked for it
type periodLoadedMsg struct {
	period Period
	ref    time.Time
	data   periodData
	err    error
}

// editLoadedMsg carries the entry to prefill the edit form with
type editLoadedMsg struct {
	period Period
	entry  *entry.TimeEntry
	err    error
}

// entrySavedMsg reports the outcome of an add, edit or delete
type entrySavedMsg struct {
	period Period
	status string
	err    error
}

// Init implements tea.Model
func (m PeriodModel) Init() tea.Cmd {
	return m.load()
}

// Update implements tea.Model
func (m PeriodModel) Update(msg tea.Msg) (PeriodModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case periodModeForm:
			return m.handleFormKey(msg)
		case periodModeDelete:
			return m.handleDeleteKey(msg)
		}
		return m.handleKey(msg)

	case periodLoadedMsg:
		if msg.period != m.period || !msg.ref.Equal(m.ref) {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.data = msg.data
			if m.cursor >= len(m.data.entries) {
				m.cursor = max(0, len(m.data.entries)-1)
			}
		}
		return m, nil

	case editLoadedMsg:
		if msg.period != m.period {
			return m, nil
		}
		if msg.err != nil {
			m.status = ""
			m.err = msg.err
			return m, nil
		}
		m.form = newEditForm(*msg.entry)
		m.mode = periodModeForm
		return m, textinput.Blink

	case entrySavedMsg:
		if msg.period != m.period {
			return m, nil
		}
		if msg.err != nil {
			if m.mode == periodModeForm {
				m.form.err = service.Message(msg.err)
				return m, nil
			}
			m.status = ""
			m.err = msg.err
			return m, nil
		}
		m.mode = periodModeNormal
		m.err = nil
		m.status = msg.status
		return m, func() tea.Msg { return ui.EntriesChangedMsg{} }

	case ui.EntriesChangedMsg:
		return m, m.load()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.mode == periodModeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PeriodModel) handleKey(msg tea.KeyMsg) (PeriodModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.data.entries)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		return m.navigate(-1)
	case key.Matches(msg, m.keys.Next):
		return m.navigate(1)
	case key.Matches(msg, m.keys.Today):
		m.ref = m.today
		m.cursor = 0
		m.status = ""
		return m, m.load()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.load()
	case key.Matches(msg, m.keys.New):
		m.form = newEntryForm(timeutil.FormatDate(m.defaultDate()))
		m.mode = periodModeForm
		m.status = ""
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Edit):
		if e, ok := m.selected(); ok {
			return m, m.loadEdit(e.Date)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selected(); ok {
			m.mode = periodModeDelete
		}
		return m, nil
	}
	return m, nil
}

func (m PeriodModel) handleFormKey(msg tea.KeyMsg) (PeriodModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		return m, m.submit()
	case key.Matches(msg, m.keys.Back):
		m.mode = periodModeNormal
		return m, nil
	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.form.cycle(1)
		return m, textinput.Blink
	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.form.cycle(-1)
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m PeriodModel) handleDeleteKey(msg tea.KeyMsg) (PeriodModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if e, ok := m.selected(); ok {
			m.mode = periodModeNormal
			return m, m.deleteEntry(e.Date)
		}
	case "n", "N", "esc":
		m.mode = periodModeNormal
	}
	return m, nil
}

// navigate moves the view one week or month back or forward
func (m PeriodModel) navigate(step int) (PeriodModel, tea.Cmd) {
	if m.period == PeriodWeek {
		m.ref = m.ref.AddDate(0, 0, 7*step)
	} else {
		m.ref = timeutil.StartOfMonth(m.ref).AddDate(0, step, 0)
	}
	m.cursor = 0
	m.status = ""
	m.loading = true
	return m, m.load()
}

// defaultDate is today when it falls inside the shown period, otherwise the
// period's first day.
func (m PeriodModel) defaultDate() time.Time {
	if m.data.start.IsZero() || timeutil.IsInRange(m.today, m.data.start, m.data.end) {
		return m.today
	}
	return m.data.start
}

func (m PeriodModel) selected() (entry.DayEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.data.entries) {
		return entry.DayEntry{}, false
	}
	return m.data.entries[m.cursor], true
}

// View implements tea.Model
func (m PeriodModel) View() string {
	switch m.mode {
	case periodModeForm:
		return m.form.view(m.styles)
	case periodModeDelete:
		return m.renderDeleteConfirm()
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(m.data.title))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + service.Message(m.err)))
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n\n")
	}

	if len(m.data.entries) == 0 {
		b.WriteString(m.styles.StatusHelp.Render("No entries"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatusHelp.Render("Press 'n' to add a new entry"))
		return b.String()
	}

	b.WriteString(renderEntryTable(m.data.entries, m.data.totalHours, m.data.deviation, m.styles, m.cursor))
	b.WriteString("\n")
	b.WriteString(renderStats(m.data.stats, m.data.comparison, m.styles))
	return b.String()
}

func (m PeriodModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Entry"))
	b.WriteString("\n\n")

	if e, ok := m.selected(); ok {
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("Delete entry for %s (%s-%s, %sh)?",
			e.Date, e.InTime, e.OutTime, cli.FormatHours(e.TotalHours))))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatusHelp.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *PeriodModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m PeriodModel) IsInputMode() bool {
	return m.mode != periodModeNormal
}

// Ref returns the reference date of the shown period
func (m PeriodModel) Ref() time.Time {
	return m.ref
}

// load creates a command to fetch the summary for the current period
func (m PeriodModel) load() tea.Cmd {
	services, period, ref := m.services, m.period, m.ref
	return func() tea.Msg {
		data, err := fetchPeriod(context.Background(), services, period, ref)
		return periodLoadedMsg{period: period, ref: ref, data: data, err: err}
	}
}

func fetchPeriod(ctx context.Context, services *service.Services, period Period, ref time.Time) (periodData, error) {
	if period == PeriodWeek {
		w, err := services.Summary.Week(ctx, ref)
		if err != nil {
			return periodData{}, err
		}
		return periodData{
			title:      fmt.Sprintf("Week %d, %d (%s)", w.Number, w.Year, cli.FormatDateRangeForDisplay(w.Start, w.End)),
			start:      w.Start,
			end:        w.End,
			entries:    w.Entries,
			totalHours: w.TotalHours,
			deviation:  w.DeviationMinutes,
			stats:      w.Stats,
			comparison: w.Comparison,
		}, nil
	}

	mo, err := services.Summary.Month(ctx, ref.Year(), ref.Month())
	if err != nil {
		return periodData{}, err
	}
	return periodData{
		title:      fmt.Sprintf("%s (%d days)", mo.Label, mo.DaysInMonth),
		start:      mo.Start,
		end:        mo.End,
		entries:    mo.Entries,
		totalHours: mo.TotalHours,
		deviation:  mo.DeviationMinutes,
		stats:      mo.Stats,
		comparison: mo.Comparison,
	}, nil
}

func (m PeriodModel) loadEdit(date string) tea.Cmd {
	services, period := m.services, m.period
	return func() tea.Msg {
		e, err := services.Entry.Get(context.Background(), date)
		return editLoadedMsg{period: period, entry: e, err: err}
	}
}

// submit creates a command that adds or updates the entry in the form
func (m PeriodModel) submit() tea.Cmd {
	services, period, today := m.services, m.period, m.today
	editing := m.form.editing
	date, in, out := m.form.values()

	return func() tea.Msg {
		ctx := context.Background()
		if editing {
			e, err := services.Entry.Update(ctx, date, service.UpdateRequest{InTime: in, OutTime: out})
			if err != nil {
				return entrySavedMsg{period: period, err: err}
			}
			return entrySavedMsg{period: period, status: "Entry updated: " + describe(e)}
		}

		if d, err := timeutil.ParseDateArg(date, today); err == nil {
			date = timeutil.FormatDate(d)
		}
		e, err := services.Entry.Add(ctx, service.AddRequest{Date: date, InTime: in, OutTime: out})
		if err != nil {
			return entrySavedMsg{period: period, err: err}
		}
		return entrySavedMsg{period: period, status: "Entry added: " + describe(e)}
	}
}

func (m PeriodModel) deleteEntry(date string) tea.Cmd {
	services, period := m.services, m.period
	return func() tea.Msg {
		if err := services.Entry.Delete(context.Background(), date); err != nil {
			return entrySavedMsg{period: period, err: err}
		}
		return entrySavedMsg{period: period, status: "Entry deleted: " + date}
	}
}

func describe(e *entry.TimeEntry) string {
	return fmt.Sprintf("%s %s-%s (%sh)", e.Date, e.InTime, e.OutTime, cli.FormatHours(e.TotalHours))
}
