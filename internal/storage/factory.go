package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/logger"
)

// Open returns the Store selected by cfg.DatabaseDriver.
func Open(ctx context.Context, cfg config.Config, log logger.Logger) (Store, error) {
	switch cfg.DatabaseDriver {
	case config.DriverSQLite, "":
		path := cfg.DatabasePath
		if path == "" {
			var err error
			if path, err = DefaultDatabasePath(); err != nil {
				return nil, fmt.Errorf("failed to resolve database path: %w", err)
			}
		}
		if dir := filepath.Dir(path); path != memoryPath {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
		log.Debugf("opening sqlite store at %s", path)
		return NewSQLiteStore(ctx, path, log)
	case config.DriverPostgres:
		log.Debugf("opening postgres store")
		return NewPostgresStore(ctx, cfg.DatabaseDSN, log)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
}
