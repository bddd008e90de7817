package entry

import "time"

// TimeEntry is the work record for one calendar date.
// TotalHours and DeviationMinutes are always derived from InTime and OutTime.
type TimeEntry struct {
	ID               int64     `json:"id,omitempty"`
	Date             string    `json:"date"`
	InTime           string    `json:"in_time"`
	OutTime          string    `json:"out_time"`
	TotalHours       float64   `json:"total_hours"`
	DeviationMinutes int       `json:"deviation_minutes"`
	CreatedAt        time.Time `json:"created_at"`
}

// Day parses Date as a local calendar day.
func (e TimeEntry) Day() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", e.Date, time.Local)
}

// Weekday returns the English weekday name of Date, or "" if Date is not ISO.
func (e TimeEntry) Weekday() string {
	d, err := e.Day()
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}

// Minutes returns TotalHours as whole minutes.
func (e TimeEntry) Minutes() int {
	return int(e.TotalHours*60 + 0.5)
}

// DayEntry is a TimeEntry annotated with its weekday name for display.
type DayEntry struct {
	TimeEntry
	Day string `json:"day"`
}

// Annotate attaches weekday names to entries, preserving order.
func Annotate(entries []TimeEntry) []DayEntry {
	out := make([]DayEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, DayEntry{TimeEntry: e, Day: e.Weekday()})
	}
	return out
}
