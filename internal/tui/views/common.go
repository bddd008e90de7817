package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/stats"
	"github.com/xolan/worklog/internal/tui/ui"
	"github.com/xolan/worklog/internal/worktime"
)

var columns = []struct {
	title string
	width int
}{
	{"Date", 12}, {"Day", 11}, {"In", 7}, {"Out", 7}, {"Hours", 8}, {"Deviation", 10},
}

// renderEntryTable renders entries as aligned rows, highlighting the row at
// cursor, followed by a total line.
func renderEntryTable(entries []entry.DayEntry, totalHours float64, deviation int, styles ui.Styles, cursor int) string {
	var b strings.Builder

	var header []string
	for _, c := range columns {
		header = append(header, fit(c.title, c.width))
	}
	b.WriteString(styles.TableHeader.Render(strings.Join(header, "")))
	b.WriteString("\n")

	for i, e := range entries {
		line := fit(e.Date, columns[0].width) +
			fit(e.Day, columns[1].width) +
			fit(e.InTime, columns[2].width) +
			fit(e.OutTime, columns[3].width) +
			fit(cli.FormatHours(e.TotalHours), columns[4].width) +
			styles.Deviation(e.DeviationMinutes, worktime.FormatDeviation(e.DeviationMinutes))

		style := styles.RowNormal
		if i == cursor {
			style = styles.RowSelected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", 55))
	b.WriteString("\n")
	prefix := columns[0].width + columns[1].width + columns[2].width + columns[3].width
	b.WriteString(fit("Total", prefix))
	b.WriteString(fit(cli.FormatHours(totalHours), columns[4].width))
	b.WriteString(styles.Deviation(deviation, worktime.FormatDeviation(deviation)))
	b.WriteString("\n")
	return b.String()
}

func renderStats(s stats.Statistics, comparison string, styles ui.Styles) string {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(styles.StatLabel.Render(label))
		b.WriteString(styles.StatValue.Render(value))
		b.WriteString("\n")
	}

	line("Days worked:", fmt.Sprintf("%d of %d %s", s.EntryCount, s.DaysInRange, cli.Pluralize("day", s.DaysInRange)))
	line("Total time:", fmt.Sprintf("%s (target %s)", cli.FormatDuration(s.TotalMinutes), cli.FormatDuration(s.TargetMinutes)))
	line("Average per day:", worktime.FormatMinutes(int(s.AverageMinutesPerDay+0.5)))
	line("Longest day:", fmt.Sprintf("%s (%s)", s.LongestDay, cli.FormatDuration(s.LongestMinutes)))
	if comparison != "" {
		line("Comparison:", comparison)
	}
	return b.String()
}

// fit right-pads s to width cells
func fit(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s + " "
}
