package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/cli/handlers"
)

var (
	configFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "Track daily work hours against a target",
	Long: `worklog records one in/out time pair per day and reports how far each
day, week and month is above or below the daily target (8h 42m by default).

Usage:
  worklog                              Show this week's summary
  worklog add <date> <in> <out>        Add an entry (e.g., worklog add today 09:00 17:42)
  worklog edit <date> <in> <out>       Change the times of an entry
  worklog delete <date>                Delete an entry (with confirmation)
  worklog week [--date D]              Show the week containing D
  worklog month [--date D]             Show the month containing D
  worklog serve                        Run the web dashboard
  worklog tui                          Launch the terminal UI

Dates are YYYY-MM-DD, "today" or "yesterday". Times are HH:MM; an out time
at or before the in time counts as the next day.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		handlers.ShowWeek(cmd.Context(), d, d.Now())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default <config dir>/worklog/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"worklog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	defer closeStore()
	return rootCmd.Execute()
}
