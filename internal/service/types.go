// Package service provides the business logic layer for worklog.
// It validates requests, computes durations, and reads and writes the entry
// store, giving the HTTP server, CLI and TUI one shared API.
package service

import (
	"time"

	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/stats"
)

// AddRequest is the input for creating an entry.
type AddRequest struct {
	Date    string `json:"date" form:"date" validate:"required"`
	InTime  string `json:"in_time" form:"in_time" validate:"required"`
	OutTime string `json:"out_time" form:"out_time" validate:"required"`
}

// UpdateRequest is the input for replacing the times of an existing entry.
type UpdateRequest struct {
	InTime  string `json:"in_time" form:"in_time" validate:"required"`
	OutTime string `json:"out_time" form:"out_time" validate:"required"`
}

// WeekSummary holds the entries and totals for one Monday-Sunday week.
type WeekSummary struct {
	Start            time.Time        `json:"-"`
	End              time.Time        `json:"-"`
	StartDate        string           `json:"week_start"`
	EndDate          string           `json:"week_end"`
	Year             int              `json:"week_year"`
	Number           int              `json:"week_number"`
	Entries          []entry.DayEntry `json:"week_entries"`
	TotalHours       float64          `json:"weekly_total_hours"`
	DeviationMinutes int              `json:"weekly_total_deviation"`
	Comparison       string           `json:"comparison,omitempty"`
	Stats            stats.Statistics `json:"-"`
}

// MonthSummary holds the entries and totals for one calendar month.
type MonthSummary struct {
	Start            time.Time        `json:"-"`
	End              time.Time        `json:"-"`
	Year             int              `json:"month_year"`
	Number           int              `json:"month_number"`
	Name             string           `json:"month_full"`
	Label            string           `json:"month_str"`
	DaysInMonth      int              `json:"total_days_in_month"`
	Entries          []entry.DayEntry `json:"month_entries"`
	TotalHours       float64          `json:"monthly_total_hours"`
	DeviationMinutes int              `json:"monthly_total_deviation"`
	Comparison       string           `json:"comparison,omitempty"`
	Stats            stats.Statistics `json:"-"`
}

// Dashboard is the read-only summary shown on the index page.
type Dashboard struct {
	Today         string       `json:"today"`
	CurrentDay    int          `json:"current_day_of_month"`
	TargetMinutes int          `json:"target_minutes"`
	Week          WeekSummary  `json:"week"`
	Month         MonthSummary `json:"month"`
}
