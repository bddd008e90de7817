package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/stats"
	"github.com/xolan/worklog/internal/worktime"
)

// ShowWeek prints the week containing ref
func ShowWeek(ctx context.Context, deps *cli.Deps, ref time.Time) {
	week, err := deps.Services.Summary.Week(ctx, ref)
	if err != nil {
		fail(deps, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Week %d, %d (%s)\n", week.Number, week.Year, cli.FormatDateRangeForDisplay(week.Start, week.End))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 55))
	_, _ = fmt.Fprint(deps.Stdout, cli.FormatEntryTable(week.Entries, week.TotalHours, week.DeviationMinutes))
	displayStats(deps, week.Stats, week.Comparison)
}

// ShowMonth prints the calendar month containing ref
func ShowMonth(ctx context.Context, deps *cli.Deps, ref time.Time) {
	month, err := deps.Services.Summary.Month(ctx, ref.Year(), ref.Month())
	if err != nil {
		fail(deps, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s (%d days)\n", month.Label, month.DaysInMonth)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 55))
	_, _ = fmt.Fprint(deps.Stdout, cli.FormatEntryTable(month.Entries, month.TotalHours, month.DeviationMinutes))
	displayStats(deps, month.Stats, month.Comparison)
}

func displayStats(deps *cli.Deps, s stats.Statistics, comparison string) {
	if s.EntryCount == 0 {
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintf(deps.Stdout, "Days worked:     %d of %d %s\n", s.EntryCount, s.DaysInRange, cli.Pluralize("day", s.DaysInRange))
	_, _ = fmt.Fprintf(deps.Stdout, "Total time:      %s (target %s)\n", cli.FormatDuration(s.TotalMinutes), cli.FormatDuration(s.TargetMinutes))
	_, _ = fmt.Fprintf(deps.Stdout, "Average per day: %s\n", worktime.FormatMinutes(int(s.AverageMinutesPerDay+0.5)))
	_, _ = fmt.Fprintf(deps.Stdout, "Longest day:     %s (%s)\n", s.LongestDay, cli.FormatDuration(s.LongestMinutes))
	if comparison != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Comparison:      %s\n", comparison)
	}
}
