package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/logger"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/storage"
)

var (
	// deps is the global dependencies instance used by commands.
	// It is built from the config file on first use; tests replace it with SetDeps.
	deps *cli.Deps

	// store is owned by the built deps and closed by closeStore
	store storage.Store

	// appLog receives storage and server logs
	appLog logger.Logger = logger.NewNop()
)

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *cli.Deps) {
	deps = d
}

// ResetDeps drops the dependencies and closes any store opened for them.
func ResetDeps() {
	closeStore()
	deps = nil
	appLog = logger.NewNop()
}

func closeStore() {
	if store != nil {
		_ = store.Close()
		store = nil
	}
}

// loadDeps returns the global dependencies, loading the config file and
// opening the configured store the first time it is called.
func loadDeps(cmd *cobra.Command) (*cli.Deps, error) {
	if deps != nil {
		return deps, nil
	}

	path := configFlag
	if path == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config file location: %w", err)
		}
		path = p
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("%w\nHint: fix or remove %s (see 'worklog config --init' for a sample)", err, path)
	}

	log, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, err
	}

	st, err := storage.Open(cmd.Context(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseDriver, err)
	}

	appLog = log
	store = st
	deps = cli.NewDeps(service.NewServices(st, cfg, path), cfg)
	return deps, nil
}

// newLogger logs at the configured level for serve and stays silent for
// one-shot commands unless --verbose is set.
func newLogger(cmd *cobra.Command, cfg config.Config) (logger.Logger, error) {
	level := ""
	switch {
	case verboseFlag:
		level = "debug"
	case cmd.Name() == "serve":
		level = cfg.LogLevel
	default:
		return logger.NewNop(), nil
	}

	log, err := logger.New(level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	return log, nil
}

// streams returns deps for commands that only write output and never touch the store.
func streams() *cli.Deps {
	if deps != nil {
		return deps
	}
	return &cli.Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Exit:   os.Exit,
		Now:    time.Now,
	}
}
