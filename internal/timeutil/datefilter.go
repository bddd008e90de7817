// Package timeutil computes the calendar ranges used to summarize entries:
// Monday-anchored weeks and whole calendar months.
package timeutil

import "time"

// DateLayout is the ISO calendar-date layout used for entry keys.
const DateLayout = "2006-01-02"

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns Monday 00:00:00 of the week containing the given time (ISO standard)
// Handles the Sunday edge case where Go's Weekday() returns 0
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return StartOfDay(t).AddDate(0, 0, -(weekday - 1))
}

// EndOfWeek returns the Sunday (00:00:00) closing the week containing t.
// Ranges in this package are inclusive calendar days, not instants.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

// WeekRange returns the Monday and Sunday of the week containing t.
func WeekRange(t time.Time) (start, end time.Time) {
	start = StartOfWeek(t)
	return start, start.AddDate(0, 0, 6)
}

// StartOfMonth returns the first day of the month at 00:00:00 in the same timezone
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthRange returns the first and last calendar day of the given month.
// time.Date normalizes day 0 of the next month to the last day of this one,
// which covers December rollover and leap years.
func MonthRange(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end = time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)
	return start, end
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	_, end := MonthRange(year, month)
	return end.Day()
}

// ISOWeek returns the ISO 8601 year and week number of t.
func ISOWeek(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsInRange reports whether the calendar day of t falls within [start, end] (inclusive).
func IsInRange(t, start, end time.Time) bool {
	day := StartOfDay(t)
	return !day.Before(StartOfDay(start)) && !day.After(StartOfDay(end))
}
