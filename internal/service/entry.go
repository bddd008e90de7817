package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/storage"
	"github.com/xolan/worklog/internal/timeutil"
	"github.com/xolan/worklog/internal/worktime"
)

var validate = validator.New()

// EntryService provides operations for managing work entries
type EntryService struct {
	store storage.Store
	rules worktime.Rules
}

// NewEntryService creates a new EntryService
func NewEntryService(store storage.Store, rules worktime.Rules) *EntryService {
	return &EntryService{
		store: store,
		rules: rules,
	}
}

// Add validates req, computes its duration and stores a new entry.
// Checks run in order: required fields, date format, duplicate date,
// time shape, time values, positive duration.
func (s *EntryService) Add(ctx context.Context, req AddRequest) (*entry.TimeEntry, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	if _, err := timeutil.ParseDate(req.Date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	exists, err := s.store.Exists(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, storage.ErrDuplicateKey
	}

	res, err := s.compute(req.InTime, req.OutTime)
	if err != nil {
		return nil, err
	}

	e := &entry.TimeEntry{
		Date:             req.Date,
		InTime:           req.InTime,
		OutTime:          req.OutTime,
		TotalHours:       res.TotalHours,
		DeviationMinutes: res.DeviationMinutes,
	}
	if err := s.store.Insert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update replaces the times of the entry for date and recomputes its
// derived fields. The date itself is not validated; an unknown date
// yields storage.ErrNotFound.
func (s *EntryService) Update(ctx context.Context, date string, req UpdateRequest) (*entry.TimeEntry, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	res, err := s.compute(req.InTime, req.OutTime)
	if err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, date, req.InTime, req.OutTime, res.TotalHours, res.DeviationMinutes); err != nil {
		return nil, err
	}

	return &entry.TimeEntry{
		Date:             date,
		InTime:           req.InTime,
		OutTime:          req.OutTime,
		TotalHours:       res.TotalHours,
		DeviationMinutes: res.DeviationMinutes,
	}, nil
}

// Delete removes the entry for date. It succeeds whether or not the entry existed.
func (s *EntryService) Delete(ctx context.Context, date string) error {
	if date == "" {
		return ErrMissingField
	}
	return s.store.Delete(ctx, date)
}

// Get returns the entry for date, or storage.ErrNotFound.
func (s *EntryService) Get(ctx context.Context, date string) (*entry.TimeEntry, error) {
	if date == "" {
		return nil, ErrMissingField
	}
	return s.store.Get(ctx, date)
}

// Rules returns the duration rules the service applies.
func (s *EntryService) Rules() worktime.Rules {
	return s.rules
}

func (s *EntryService) compute(inTime, outTime string) (worktime.Result, error) {
	if err := worktime.ValidateShape(inTime); err != nil {
		return worktime.Result{}, err
	}
	if err := worktime.ValidateShape(outTime); err != nil {
		return worktime.Result{}, err
	}
	return s.rules.Compute(inTime, outTime)
}

func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(fields, ", "))
	}
	return err
}
