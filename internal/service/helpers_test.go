package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/entry"
	"github.com/xolan/worklog/internal/logger"
	"github.com/xolan/worklog/internal/storage"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	s, err := storage.NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "service.db"), logger.NewNop())
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestServices(t *testing.T) *Services {
	t.Helper()
	return NewServices(newTestStore(t), config.DefaultConfig(), filepath.Join(t.TempDir(), "config.toml"))
}

var errDiskFull = errors.New("disk full")

// brokenStore fails every operation with errDiskFull.
type brokenStore struct{}

func (brokenStore) Exists(context.Context, string) (bool, error) { return false, errDiskFull }
func (brokenStore) Get(context.Context, string) (*entry.TimeEntry, error) {
	return nil, errDiskFull
}
func (brokenStore) QueryRange(context.Context, string, string) ([]entry.TimeEntry, error) {
	return nil, errDiskFull
}
func (brokenStore) Insert(context.Context, *entry.TimeEntry) error { return errDiskFull }
func (brokenStore) Update(context.Context, string, string, string, float64, int) error {
	return errDiskFull
}
func (brokenStore) Delete(context.Context, string) error { return errDiskFull }
func (brokenStore) Close() error                         { return nil }
