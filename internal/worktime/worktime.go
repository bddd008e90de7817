// Package worktime converts HH:MM clock strings into elapsed work time and
// measures it against the daily target.
package worktime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TargetMinutes is the expected length of a workday: 8 hours 42 minutes.
const TargetMinutes = 8*60 + 42

// maxComponent bounds each clock component so h*60+m cannot overflow.
const maxComponent = 1_000_000

// MinutesPerDay is added to the out-time when a shift wraps past midnight.
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidFormat is returned when a clock string is not two ':'-separated parts.
	ErrInvalidFormat = errors.New("invalid time format: expected HH:MM")
	// ErrInvalidValue is returned when a clock component is not an integer.
	ErrInvalidValue = errors.New("invalid time value")
	// ErrNonPositiveDuration is returned when the elapsed time is zero or negative.
	ErrNonPositiveDuration = errors.New("out time must be after in time")
	// ErrEqualTimes is returned when in and out are equal and Rules.RejectEqualTimes is set.
	ErrEqualTimes = fmt.Errorf("%w: in and out times are equal", ErrNonPositiveDuration)
)

// Result holds the derived values for one in/out pair.
type Result struct {
	ElapsedMinutes   int
	TotalHours       float64
	DeviationMinutes int
}

// Rules configures how durations are computed.
type Rules struct {
	// TargetMinutes is the workday length deviations are measured against.
	TargetMinutes int
	// RejectEqualTimes treats in == out as an error instead of a 24 hour shift.
	RejectEqualTimes bool
}

// DefaultRules returns the standard 522 minute target with equal times
// accepted as a full 24 hour shift.
func DefaultRules() Rules {
	return Rules{TargetMinutes: TargetMinutes}
}

// ValidateShape checks that s splits on ':' into exactly two parts.
// It does not check that the parts are numeric.
func ValidateShape(s string) error {
	if len(strings.Split(s, ":")) != 2 {
		return fmt.Errorf("%w, got %q", ErrInvalidFormat, s)
	}
	return nil
}

// ParseClock converts an HH:MM string into minutes since midnight.
// Components are not range checked beyond overflow: "25:00" yields 1500.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidFormat, s)
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: hours %q", ErrInvalidValue, parts[0])
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: minutes %q", ErrInvalidValue, parts[1])
	}
	if outOfRange(hours) || outOfRange(minutes) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidValue, s)
	}

	return hours*60 + minutes, nil
}

func outOfRange(n int) bool {
	return n < -maxComponent || n > maxComponent
}

// Compute returns elapsed hours and deviation for an in/out pair.
// An out-time at or before the in-time is taken to be on the following day.
func (r Rules) Compute(inTime, outTime string) (Result, error) {
	inMinutes, err := ParseClock(inTime)
	if err != nil {
		return Result{}, err
	}
	outMinutes, err := ParseClock(outTime)
	if err != nil {
		return Result{}, err
	}

	if r.RejectEqualTimes && inMinutes == outMinutes {
		return Result{}, ErrEqualTimes
	}

	if outMinutes <= inMinutes {
		outMinutes += MinutesPerDay
	}

	elapsed := outMinutes - inMinutes
	if elapsed <= 0 {
		return Result{}, fmt.Errorf("%w (%s to %s)", ErrNonPositiveDuration, inTime, outTime)
	}

	return Result{
		ElapsedMinutes:   elapsed,
		TotalHours:       HoursFromMinutes(elapsed),
		DeviationMinutes: elapsed - r.TargetMinutes,
	}, nil
}

// Compute applies DefaultRules.
func Compute(inTime, outTime string) (Result, error) {
	return DefaultRules().Compute(inTime, outTime)
}

// HoursFromMinutes converts minutes to hours rounded half-up to 2 decimals.
func HoursFromMinutes(minutes int) float64 {
	return decimal.NewFromInt(int64(minutes)).DivRound(decimal.NewFromInt(60), 2).InexactFloat64()
}

// RoundHours rounds an accumulated hour total to 2 decimals.
func RoundHours(hours float64) float64 {
	return decimal.NewFromFloat(hours).Round(2).InexactFloat64()
}

// FormatMinutes formats a non-negative minute count as HH:MM.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDeviation formats a signed deviation as +H:MM or -H:MM.
func FormatDeviation(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}
