package stats

import (
	"testing"
	"time"

	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/worktime"
)

// Helper function to create test dates
func makeDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// Helper function to create an entry from clock times
func makeEntry(t *testing.T, date, in, out string) entry.TimeEntry {
	t.Helper()
	res, err := worktime.Compute(in, out)
	if err != nil {
		t.Fatalf("Compute(%s, %s): %v", in, out, err)
	}
	return entry.TimeEntry{
		Date:             date,
		InTime:           in,
		OutTime:          out,
		TotalHours:       res.TotalHours,
		DeviationMinutes: res.DeviationMinutes,
	}
}

func TestCalculateStatistics_EmptyEntries(t *testing.T) {
	start, end := makeDate(2024, time.January, 15), makeDate(2024, time.January, 21)

	stats := CalculateStatistics(nil, start, end, worktime.TargetMinutes)

	if stats.TotalMinutes != 0 {
		t.Errorf("TotalMinutes = %d, expected 0", stats.TotalMinutes)
	}
	if stats.TotalHours != 0 {
		t.Errorf("TotalHours = %v, expected 0", stats.TotalHours)
	}
	if stats.AverageMinutesPerDay != 0 {
		t.Errorf("AverageMinutesPerDay = %f, expected 0", stats.AverageMinutesPerDay)
	}
	if stats.EntryCount != 0 {
		t.Errorf("EntryCount = %d, expected 0", stats.EntryCount)
	}
	if stats.DaysInRange != 7 {
		t.Errorf("DaysInRange = %d, expected 7", stats.DaysInRange)
	}
}

func TestCalculateStatistics_Week(t *testing.T) {
	start, end := makeDate(2024, time.January, 15), makeDate(2024, time.January, 21)
	entries := []entry.TimeEntry{
		makeEntry(t, "2024-01-15", "09:00", "17:42"), // 522, 8.7, 0
		makeEntry(t, "2024-01-16", "22:00", "06:00"), // 480, 8.0, -42
		makeEntry(t, "2024-01-17", "09:00", "15:06"), // 366, 6.1, -156
	}

	stats := CalculateStatistics(entries, start, end, worktime.TargetMinutes)

	if stats.EntryCount != 3 {
		t.Errorf("EntryCount = %d, expected 3", stats.EntryCount)
	}
	if stats.TotalMinutes != 1368 {
		t.Errorf("TotalMinutes = %d, expected 1368", stats.TotalMinutes)
	}
	if stats.TotalHours != 22.8 {
		t.Errorf("TotalHours = %v, expected 22.8", stats.TotalHours)
	}
	if stats.DeviationMinutes != -198 {
		t.Errorf("DeviationMinutes = %d, expected -198", stats.DeviationMinutes)
	}
	if stats.TargetMinutes != 3*worktime.TargetMinutes {
		t.Errorf("TargetMinutes = %d, expected %d", stats.TargetMinutes, 3*worktime.TargetMinutes)
	}
	if stats.AverageMinutesPerDay != 456 {
		t.Errorf("AverageMinutesPerDay = %f, expected 456", stats.AverageMinutesPerDay)
	}
	if stats.LongestDay != "2024-01-15" || stats.LongestMinutes != 522 {
		t.Errorf("Longest = %s/%d, expected 2024-01-15/522", stats.LongestDay, stats.LongestMinutes)
	}
}

func TestCalculateStatistics_EntriesOutsideRange(t *testing.T) {
	start, end := makeDate(2024, time.January, 15), makeDate(2024, time.January, 21)
	entries := []entry.TimeEntry{
		makeEntry(t, "2024-01-14", "09:00", "17:00"),
		makeEntry(t, "2024-01-15", "09:00", "10:00"),
		makeEntry(t, "2024-01-21", "09:00", "10:00"),
		makeEntry(t, "2024-01-22", "09:00", "17:00"),
		{Date: "garbage", TotalHours: 5},
	}

	stats := CalculateStatistics(entries, start, end, worktime.TargetMinutes)

	if stats.EntryCount != 2 {
		t.Errorf("EntryCount = %d, expected 2 (boundaries inclusive)", stats.EntryCount)
	}
	if stats.TotalMinutes != 120 {
		t.Errorf("TotalMinutes = %d, expected 120", stats.TotalMinutes)
	}
}

func TestCalculateStatistics_MonthRange(t *testing.T) {
	start, end := makeDate(2024, time.February, 1), makeDate(2024, time.February, 29)

	stats := CalculateStatistics([]entry.TimeEntry{makeEntry(t, "2024-02-29", "08:00", "16:00")}, start, end, worktime.TargetMinutes)

	if stats.DaysInRange != 29 {
		t.Errorf("DaysInRange = %d, expected 29", stats.DaysInRange)
	}
	if stats.TotalHours != 8.0 {
		t.Errorf("TotalHours = %v, expected 8", stats.TotalHours)
	}
}

func TestCalculateStatistics_HoursRounding(t *testing.T) {
	start, end := makeDate(2024, time.March, 1), makeDate(2024, time.March, 31)
	var entries []entry.TimeEntry
	for d := 1; d <= 3; d++ {
		// 485 minutes = 8.08 hours each
		entries = append(entries, makeEntry(t, makeDate(2024, time.March, d).Format("2006-01-02"), "09:00", "17:05"))
	}

	stats := CalculateStatistics(entries, start, end, worktime.TargetMinutes)

	if stats.TotalHours != 24.24 {
		t.Errorf("TotalHours = %v, expected 24.24", stats.TotalHours)
	}
	if stats.TotalMinutes != 1455 {
		t.Errorf("TotalMinutes = %d, expected 1455", stats.TotalMinutes)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		prevN    int
		expected string
	}{
		{"no previous data", 600, 0, 0, ""},
		{"up", 600, 465, 1, "up 2:15 from last week"},
		{"down", 465, 600, 1, "down 2:15 from last week"},
		{"same", 600, 600, 1, "same as last week"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(
				Statistics{TotalMinutes: tt.current, EntryCount: 1},
				Statistics{TotalMinutes: tt.previous, EntryCount: tt.prevN},
				"week",
			)
			if got != tt.expected {
				t.Errorf("Compare() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestCalculateStatistics_TargetChangedSinceSave(t *testing.T) {
	start, end := makeDate(2024, time.January, 15), makeDate(2024, time.January, 21)
	entries := []entry.TimeEntry{
		makeEntry(t, "2024-01-15", "09:00", "17:00"), // saved against 522
		makeEntry(t, "2024-01-16", "09:00", "17:05"),
	}

	stats := CalculateStatistics(entries, start, end, 480)

	if stats.TotalMinutes != 965 {
		t.Errorf("TotalMinutes = %d, expected 965", stats.TotalMinutes)
	}
	if stats.LongestMinutes != 485 || stats.LongestDay != "2024-01-16" {
		t.Errorf("longest = %s (%d), expected 2024-01-16 (485)", stats.LongestDay, stats.LongestMinutes)
	}
	if stats.AverageMinutesPerDay != 482.5 {
		t.Errorf("AverageMinutesPerDay = %f, expected 482.5", stats.AverageMinutesPerDay)
	}
	if stats.TargetMinutes != 960 {
		t.Errorf("TargetMinutes = %d, expected 960", stats.TargetMinutes)
	}
}
