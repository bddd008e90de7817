package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/cli/handlers"
)

var initFlag bool

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or create the configuration file",
	Long: `Display the effective configuration for worklog.

worklog works without a configuration file. Defaults:
  database_driver:    sqlite
  database_path:      <config dir>/worklog/worklog.db
  listen_addr:        :5000
  target_minutes:     522 (8h 42m)
  reject_equal_times: false
  log_level:          info
  theme:              dracula

Configuration file location:
  ~/.config/worklog/config.toml          Linux
  %APPDATA%\worklog\config.toml          Windows

Use --init to write a commented sample file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		if initFlag {
			handlers.InitConfig(d)
			return nil
		}
		handlers.ShowConfig(d)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&initFlag, "init", false, "write a sample config file")
}
