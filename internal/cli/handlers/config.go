package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/worklog/internal/cli"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dbPath = "(default)"
	}
	dsn := "(not set)"
	if cfg.DatabaseDSN != "" {
		dsn = "(set)"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "database_driver:    %s\n", cfg.DatabaseDriver)
	_, _ = fmt.Fprintf(deps.Stdout, "database_path:      %s\n", dbPath)
	_, _ = fmt.Fprintf(deps.Stdout, "database_dsn:       %s\n", dsn)
	_, _ = fmt.Fprintf(deps.Stdout, "listen_addr:        %s\n", cfg.ListenAddr)
	_, _ = fmt.Fprintf(deps.Stdout, "target_minutes:     %d (%s)\n", cfg.TargetMinutes, cli.FormatDuration(cfg.TargetMinutes))
	_, _ = fmt.Fprintf(deps.Stdout, "reject_equal_times: %t\n", cfg.RejectEqualTimes)
	_, _ = fmt.Fprintf(deps.Stdout, "log_level:          %s\n", cfg.LogLevel)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:              %s\n", cfg.Theme)
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	if err := deps.Services.Config.Init(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
