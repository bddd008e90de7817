package stats

import (
	"fmt"
	"time"

	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/timeutil"
	"github.com/xolan/worklog/internal/worktime"
)

// Statistics contains aggregated statistics for a set of entries
type Statistics struct {
	TotalMinutes     int
	TotalHours       float64 // sum of per-entry hours, rounded to 2 decimals
	DeviationMinutes int     // sum of per-entry deviations
	TargetMinutes    int     // target for the days that have entries
	EntryCount       int
	DaysInRange      int
	// AverageMinutesPerDay is averaged over days with entries, not the whole range.
	AverageMinutesPerDay float64
	LongestDay           string
	LongestMinutes       int
}

// CalculateStatistics computes statistics for entries whose date falls within
// [start, end] (calendar days, inclusive). Entries with unparsable dates are skipped.
func CalculateStatistics(entries []entry.TimeEntry, start, end time.Time, targetMinutes int) Statistics {
	stats := Statistics{
		DaysInRange: daysBetween(start, end),
	}

	var hours float64
	for _, e := range entries {
		day, err := e.Day()
		if err != nil || !timeutil.IsInRange(day, start, end) {
			continue
		}

		// stored deviations use the target in force when the entry was saved
		minutes := e.Minutes()

		stats.EntryCount++
		stats.TotalMinutes += minutes
		stats.DeviationMinutes += e.DeviationMinutes
		hours += e.TotalHours

		if minutes > stats.LongestMinutes {
			stats.LongestMinutes = minutes
			stats.LongestDay = e.Date
		}
	}

	stats.TotalHours = worktime.RoundHours(hours)
	stats.TargetMinutes = stats.EntryCount * targetMinutes
	if stats.EntryCount > 0 {
		stats.AverageMinutesPerDay = float64(stats.TotalMinutes) / float64(stats.EntryCount)
	}

	return stats
}

// Compare describes the change in total time relative to a previous period,
// e.g. "up 2:15 from last week".
func Compare(current, previous Statistics, periodName string) string {
	if previous.EntryCount == 0 {
		return ""
	}
	diff := current.TotalMinutes - previous.TotalMinutes
	switch {
	case diff > 0:
		return fmt.Sprintf("up %s from last %s", worktime.FormatDeviation(diff)[1:], periodName)
	case diff < 0:
		return fmt.Sprintf("down %s from last %s", worktime.FormatDeviation(diff)[1:], periodName)
	default:
		return fmt.Sprintf("same as last %s", periodName)
	}
}

func daysBetween(start, end time.Time) int {
	s := timeutil.StartOfDay(start)
	e := timeutil.StartOfDay(end)
	if e.Before(s) {
		return 0
	}
	days := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
