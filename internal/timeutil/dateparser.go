package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	isoPartialRe    = regexp.MustCompile(`^\d{4}-\d{1,2}$`)      // YYYY-MM (missing day)
	yearOnlyRe      = regexp.MustCompile(`^\d{4}$`)              // YYYY (year only)
	euroDateRe      = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`) // DD/MM/YYYY
	tooManyPartsRe  = regexp.MustCompile(`^\d+-\d+-\d+-`)        // Too many separators
	unpaddedISODate = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)
)

// ParseDate parses a strict ISO date (YYYY-MM-DD) at midnight local time.
//
// Valid inputs:
//   - "2024-01-15"
//   - "2024-02-29" (leap day)
//
// Invalid inputs return an error naming the expected format.
func ParseDate(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD, e.g., 2024-01-15)")
	}

	t, err := time.ParseInLocation(DateLayout, input, time.Local)
	if err == nil {
		return t, nil
	}

	return time.Time{}, buildDateParseError(input)
}

// ParseDateArg parses a command-line date: ISO dates plus the keywords
// "today" and "yesterday", resolved against now.
func ParseDateArg(input string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "today", "t":
		return StartOfDay(now), nil
	case "yesterday", "y":
		return StartOfDay(now.AddDate(0, 0, -1)), nil
	}
	return ParseDate(input)
}

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case euroDateRe.MatchString(input):
		return fmt.Errorf("unsupported date '%s': day-first dates are not accepted (use format YYYY-MM-DD)", input)
	case tooManyPartsRe.MatchString(input):
		return fmt.Errorf("invalid date '%s': too many date parts (use format YYYY-MM-DD)", input)
	case unpaddedISODate.MatchString(input):
		return fmt.Errorf("invalid date '%s': month and day must be two digits and in range (use format YYYY-MM-DD)", input)
	default:
		return fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD, e.g., 2024-01-15)", input)
	}
}
