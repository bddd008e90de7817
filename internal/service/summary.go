package service

import (
	"context"
	"time"

	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/stats"
	"github.com/xolan/worklog/internal/storage"
	"github.com/xolan/worklog/internal/timeutil"
)

// SummaryService builds read-only week and month summaries
type SummaryService struct {
	store         storage.Store
	targetMinutes int
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(store storage.Store, targetMinutes int) *SummaryService {
	return &SummaryService{
		store:         store,
		targetMinutes: targetMinutes,
	}
}

// Dashboard returns the week and month containing today.
func (s *SummaryService) Dashboard(ctx context.Context, today time.Time) (*Dashboard, error) {
	week, err := s.Week(ctx, today)
	if err != nil {
		return nil, err
	}

	month, err := s.Month(ctx, today.Year(), today.Month())
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Today:         timeutil.FormatDate(today),
		CurrentDay:    today.Day(),
		TargetMinutes: s.targetMinutes,
		Week:          *week,
		Month:         *month,
	}, nil
}

// Week summarizes the Monday-Sunday week containing ref and compares it
// with the week before.
func (s *SummaryService) Week(ctx context.Context, ref time.Time) (*WeekSummary, error) {
	start, end := timeutil.WeekRange(ref)

	entries, err := s.query(ctx, start, end)
	if err != nil {
		return nil, err
	}
	current := stats.CalculateStatistics(entries, start, end, s.targetMinutes)

	prevStart, prevEnd := timeutil.WeekRange(start.AddDate(0, 0, -7))
	prevEntries, err := s.query(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}
	previous := stats.CalculateStatistics(prevEntries, prevStart, prevEnd, s.targetMinutes)

	year, week := timeutil.ISOWeek(start)
	return &WeekSummary{
		Start:            start,
		End:              end,
		StartDate:        timeutil.FormatDate(start),
		EndDate:          timeutil.FormatDate(end),
		Year:             year,
		Number:           week,
		Entries:          entry.Annotate(entries),
		TotalHours:       current.TotalHours,
		DeviationMinutes: current.DeviationMinutes,
		Comparison:       stats.Compare(current, previous, "week"),
		Stats:            current,
	}, nil
}

// Month summarizes the given calendar month and compares it with the month before.
func (s *SummaryService) Month(ctx context.Context, year int, month time.Month) (*MonthSummary, error) {
	start, end := timeutil.MonthRange(year, month)

	entries, err := s.query(ctx, start, end)
	if err != nil {
		return nil, err
	}
	current := stats.CalculateStatistics(entries, start, end, s.targetMinutes)

	prev := start.AddDate(0, -1, 0)
	prevStart, prevEnd := timeutil.MonthRange(prev.Year(), prev.Month())
	prevEntries, err := s.query(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}
	previous := stats.CalculateStatistics(prevEntries, prevStart, prevEnd, s.targetMinutes)

	return &MonthSummary{
		Start:            start,
		End:              end,
		Year:             year,
		Number:           int(month),
		Name:             month.String(),
		Label:            start.Format("January 2006"),
		DaysInMonth:      timeutil.DaysInMonth(year, month),
		Entries:          entry.Annotate(entries),
		TotalHours:       current.TotalHours,
		DeviationMinutes: current.DeviationMinutes,
		Comparison:       stats.Compare(current, previous, "month"),
		Stats:            current,
	}, nil
}

// TargetMinutes returns the daily target the summaries are measured against.
func (s *SummaryService) TargetMinutes() int {
	return s.targetMinutes
}

func (s *SummaryService) query(ctx context.Context, start, end time.Time) ([]entry.TimeEntry, error) {
	return s.store.QueryRange(ctx, timeutil.FormatDate(start), timeutil.FormatDate(end))
}
