package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/tui/ui"
)

const (
	fieldDate = iota
	fieldIn
	fieldOut
)

var fieldLabels = []string{"Date:", "In time:", "Out time:"}

// entryForm collects date, in and out for an add or edit. When editing the
// date is fixed and only the times can be focused.
type entryForm struct {
	editing bool
	inputs  [3]textinput.Model
	focus   int
	err     string
}

func newEntryForm(date string) entryForm {
	f := entryForm{inputs: newFormInputs()}
	f.inputs[fieldDate].SetValue(date)
	f.setFocus(fieldIn)
	return f
}

func newEditForm(e entry.TimeEntry) entryForm {
	f := entryForm{editing: true, inputs: newFormInputs()}
	f.inputs[fieldDate].SetValue(e.Date)
	f.inputs[fieldIn].SetValue(e.InTime)
	f.inputs[fieldOut].SetValue(e.OutTime)
	f.setFocus(fieldIn)
	return f
}

func newFormInputs() [3]textinput.Model {
	placeholders := []string{"YYYY-MM-DD, today or yesterday", "HH:MM", "HH:MM"}
	limits := []int{10, 5, 5}

	var inputs [3]textinput.Model
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = limits[i]
		in.Width = 32
		inputs[i] = in
	}
	return inputs
}

func (f *entryForm) setFocus(field int) {
	f.focus = field
	for i := range f.inputs {
		if i == field {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// cycle moves focus forward or back, skipping the date when editing.
func (f *entryForm) cycle(step int) {
	first := fieldDate
	if f.editing {
		first = fieldIn
	}
	n := len(f.inputs) - first
	next := (f.focus-first+step+n)%n + first
	f.setFocus(next)
}

func (f entryForm) values() (date, in, out string) {
	return strings.TrimSpace(f.inputs[fieldDate].Value()),
		strings.TrimSpace(f.inputs[fieldIn].Value()),
		strings.TrimSpace(f.inputs[fieldOut].Value())
}

func (f entryForm) update(msg tea.Msg) (entryForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f entryForm) view(styles ui.Styles) string {
	var b strings.Builder

	title := "New Entry"
	if f.editing {
		title = "Edit Entry"
	}
	b.WriteString(styles.ViewTitle.Render(title))
	b.WriteString("\n\n")

	for i, label := range fieldLabels {
		if i == f.focus {
			label = "▸ " + label
		}
		b.WriteString(styles.InputLabel.Render(label))
		b.WriteString("\n")
		if f.editing && i == fieldDate {
			b.WriteString(styles.StatValue.Render(f.inputs[i].Value()))
		} else {
			b.WriteString(f.inputs[i].View())
		}
		b.WriteString("\n\n")
	}

	if f.err != "" {
		b.WriteString(styles.Error.Render("Error: " + f.err))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.StatusHelp.Render("Tab to switch fields, Enter to save, Esc to cancel"))
	return b.String()
}
