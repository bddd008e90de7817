package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive terminal UI.

Views:
  - Week:   the current week, h/l to move between weeks
  - Month:  the current month, h/l to move between months
  - Config: effective settings, h/l to cycle the color theme

Keyboard shortcuts:
  - Tab/Shift+Tab or 1-3: switch views
  - n/e/d: new, edit, delete entry
  - t: back to today
  - ?: help
  - q: quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		if err := tui.Run(d.Services); err != nil {
			_, _ = fmt.Fprintf(d.Stderr, "Error running TUI: %v\n", err)
			d.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
