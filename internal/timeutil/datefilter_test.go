package timeutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 15, 17, 42, 9, 123, time.Local)
	got := StartOfDay(in)
	if !got.Equal(date(2024, 3, 15)) {
		t.Errorf("StartOfDay(%v) = %v, expected midnight", in, got)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{"monday stays", date(2024, 1, 15), date(2024, 1, 15)},
		{"wednesday", time.Date(2024, 1, 17, 14, 30, 0, 0, time.Local), date(2024, 1, 15)},
		{"saturday", date(2024, 1, 20), date(2024, 1, 15)},
		{"sunday belongs to previous week", date(2024, 1, 21), date(2024, 1, 15)},
		{"crosses month boundary", date(2024, 3, 1), date(2024, 2, 26)},
		{"crosses year boundary", date(2025, 1, 1), date(2024, 12, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.input)
			if !got.Equal(tt.expected) {
				t.Errorf("StartOfWeek(%s) = %s, expected %s", FormatDate(tt.input), FormatDate(got), FormatDate(tt.expected))
			}
			if got.Weekday() != time.Monday {
				t.Errorf("StartOfWeek returned a %s", got.Weekday())
			}
		})
	}
}

func TestWeekRange(t *testing.T) {
	for d := 1; d <= 31; d++ {
		ref := date(2024, 12, d)
		start, end := WeekRange(ref)
		if start.Weekday() != time.Monday || end.Weekday() != time.Sunday {
			t.Fatalf("WeekRange(%s) = %s..%s, expected Monday..Sunday", FormatDate(ref), FormatDate(start), FormatDate(end))
		}
		if days := int(end.Sub(start).Hours()/24 + 0.5); days != 6 {
			t.Fatalf("WeekRange(%s) spans %d days, expected 6", FormatDate(ref), days)
		}
		if !IsInRange(ref, start, end) {
			t.Fatalf("WeekRange(%s) does not contain its reference date", FormatDate(ref))
		}
	}
}

func TestEndOfWeek(t *testing.T) {
	got := EndOfWeek(date(2024, 1, 17))
	if !got.Equal(date(2024, 1, 21)) {
		t.Errorf("EndOfWeek = %s, expected 2024-01-21", FormatDate(got))
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantStart string
		wantEnd   string
	}{
		{"january", 2024, time.January, "2024-01-01", "2024-01-31"},
		{"leap february", 2024, time.February, "2024-02-01", "2024-02-29"},
		{"common february", 2023, time.February, "2023-02-01", "2023-02-28"},
		{"century non-leap", 1900, time.February, "1900-02-01", "1900-02-28"},
		{"april", 2024, time.April, "2024-04-01", "2024-04-30"},
		{"december rollover", 2024, time.December, "2024-12-01", "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthRange(tt.year, tt.month)
			if FormatDate(start) != tt.wantStart || FormatDate(end) != tt.wantEnd {
				t.Errorf("MonthRange(%d, %s) = %s..%s, expected %s..%s",
					tt.year, tt.month, FormatDate(start), FormatDate(end), tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2000, time.February, 29},
		{2024, time.March, 31},
		{2024, time.June, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.expected {
			t.Errorf("DaysInMonth(%d, %s) = %d, expected %d", tt.year, tt.month, got, tt.expected)
		}
	}
}

func TestStartOfMonth(t *testing.T) {
	got := StartOfMonth(time.Date(2024, 7, 19, 8, 0, 0, 0, time.Local))
	if !got.Equal(date(2024, 7, 1)) {
		t.Errorf("StartOfMonth = %v, expected 2024-07-01", got)
	}
}

func TestISOWeek(t *testing.T) {
	tests := []struct {
		in       time.Time
		wantYear int
		wantWeek int
	}{
		{date(2024, 1, 15), 2024, 3},
		{date(2024, 12, 30), 2025, 1},
		{date(2021, 1, 3), 2020, 53},
	}
	for _, tt := range tests {
		y, w := ISOWeek(tt.in)
		if y != tt.wantYear || w != tt.wantWeek {
			t.Errorf("ISOWeek(%s) = %d-W%d, expected %d-W%d", FormatDate(tt.in), y, w, tt.wantYear, tt.wantWeek)
		}
	}
}

func TestIsInRange(t *testing.T) {
	start, end := date(2024, 1, 15), date(2024, 1, 21)
	tests := []struct {
		name     string
		input    time.Time
		expected bool
	}{
		{"start inclusive", start, true},
		{"end inclusive", end, true},
		{"end late in the day", time.Date(2024, 1, 21, 23, 59, 0, 0, time.Local), true},
		{"middle", date(2024, 1, 18), true},
		{"before", date(2024, 1, 14), false},
		{"after", date(2024, 1, 22), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInRange(tt.input, start, end); got != tt.expected {
				t.Errorf("IsInRange(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
