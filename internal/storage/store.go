// Package storage persists time entries, one row per calendar date.
package storage

import (
	"context"
	"errors"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/osutil"
)

var (
	// ErrDuplicateKey is returned by Insert when an entry already exists for the date.
	ErrDuplicateKey = errors.New("entry already exists for this date")
	// ErrNotFound is returned by Get and Update when no entry exists for the date.
	ErrNotFound = errors.New("entry not found")
)

// Store is the entry store contract. Each operation is a single atomic
// statement; uniqueness of Date is enforced by the backend.
type Store interface {
	Exists(ctx context.Context, date string) (bool, error)
	Get(ctx context.Context, date string) (*entry.TimeEntry, error)
	// QueryRange returns entries with start <= date <= end, ascending by date.
	QueryRange(ctx context.Context, start, end string) ([]entry.TimeEntry, error)
	Insert(ctx context.Context, e *entry.TimeEntry) error
	Update(ctx context.Context, date, inTime, outTime string, totalHours float64, deviationMinutes int) error
	// Delete removes the entry for date. Deleting a missing date is not an error.
	Delete(ctx context.Context, date string) error
	Close() error
}

// DefaultDatabasePath returns <user config dir>/worklog/worklog.db,
// creating the directory if it doesn't exist.
func DefaultDatabasePath() (string, error) {
	return osutil.AppFile(config.AppName, config.DatabaseFile)
}
