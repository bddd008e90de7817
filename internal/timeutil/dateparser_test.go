package timeutil

import (
	"strings"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate() unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local)) {
		t.Errorf("ParseDate() = %v", got)
	}
	if FormatDate(got) != "2024-02-29" {
		t.Errorf("FormatDate round trip = %s", FormatDate(got))
	}
}

func TestParseDate_Errors(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"", "cannot be empty"},
		{"2024", "missing month and day"},
		{"2024-01", "missing day"},
		{"15/01/2024", "day-first"},
		{"2024-01-15-01", "too many date parts"},
		{"2024-1-5", "two digits"},
		{"2023-02-29", "two digits and in range"},
		{"yesterday-ish", "invalid date format"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if err == nil {
				t.Fatalf("ParseDate(%q) expected error", tt.input)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("ParseDate(%q) error = %q, expected to contain %q", tt.input, err, tt.contains)
			}
			if !strings.Contains(err.Error(), "YYYY-MM-DD") {
				t.Errorf("error should name the expected format: %q", err)
			}
		})
	}
}

func TestParseDateArg(t *testing.T) {
	now := time.Date(2024, 3, 1, 15, 4, 5, 0, time.Local)
	tests := []struct {
		input    string
		expected string
	}{
		{"today", "2024-03-01"},
		{"TODAY", "2024-03-01"},
		{"t", "2024-03-01"},
		{"yesterday", "2024-02-29"},
		{"y", "2024-02-29"},
		{"2023-12-31", "2023-12-31"},
	}
	for _, tt := range tests {
		got, err := ParseDateArg(tt.input, now)
		if err != nil {
			t.Fatalf("ParseDateArg(%q) unexpected error: %v", tt.input, err)
		}
		if FormatDate(got) != tt.expected {
			t.Errorf("ParseDateArg(%q) = %s, expected %s", tt.input, FormatDate(got), tt.expected)
		}
	}

	if _, err := ParseDateArg("tomorrow", now); err == nil {
		t.Error("ParseDateArg(tomorrow) expected error")
	}
}
