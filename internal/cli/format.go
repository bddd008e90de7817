// Package cli provides the CLI presentation layer for worklog.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/worktime"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	underStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// FormatDuration formats minutes as a human-readable string
// Examples: "30m", "2h", "1h 30m"
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatHours formats hours with two decimals, e.g. "8.70".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}

// FormatDeviation renders a signed deviation, green when at or over target.
func FormatDeviation(minutes int) string {
	s := worktime.FormatDeviation(minutes)
	if minutes >= 0 {
		return overStyle.Render(s)
	}
	return underStyle.Render(s)
}

// FormatDateRangeForDisplay formats a date range for human-readable display.
func FormatDateRangeForDisplay(start, end time.Time) string {
	if start.Format("2006-01-02") == end.Format("2006-01-02") {
		return start.Format("Mon, Jan 2, 2006")
	}
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

var entryColumns = []struct {
	title string
	width int
}{
	{"Date", 12}, {"Day", 11}, {"In", 7}, {"Out", 7}, {"Hours", 8}, {"Deviation", 10},
}

// FormatEntryTable renders entries as aligned rows with a header and a
// total line. An empty slice renders a single "No entries" line.
func FormatEntryTable(entries []entry.DayEntry, totalHours float64, totalDeviation int) string {
	if len(entries) == 0 {
		return mutedStyle.Render("No entries") + "\n"
	}

	var b strings.Builder
	var header []string
	for _, c := range entryColumns {
		header = append(header, pad(c.title, c.width))
	}
	b.WriteString(headerStyle.Render(strings.Join(header, "")))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 55))
	b.WriteString("\n")

	for _, e := range entries {
		row := []string{
			pad(e.Date, entryColumns[0].width),
			pad(e.Day, entryColumns[1].width),
			pad(e.InTime, entryColumns[2].width),
			pad(e.OutTime, entryColumns[3].width),
			pad(FormatHours(e.TotalHours), entryColumns[4].width),
			FormatDeviation(e.DeviationMinutes),
		}
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("-", 55))
	b.WriteString("\n")
	prefixWidth := entryColumns[0].width + entryColumns[1].width + entryColumns[2].width + entryColumns[3].width
	b.WriteString(pad("Total", prefixWidth))
	b.WriteString(pad(FormatHours(totalHours), entryColumns[4].width))
	b.WriteString(FormatDeviation(totalDeviation))
	b.WriteString("\n")
	return b.String()
}

// pad right-pads s to width visible cells, ignoring ANSI sequences.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s + " "
}
