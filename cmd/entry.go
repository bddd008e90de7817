package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/cli/handlers"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <date> <in> <out>",
	Short: "Add the entry for a day",
	Long: `Add the in and out time for a day. Each day has at most one entry.

Examples:
  worklog add 2024-01-15 09:00 17:42
  worklog add today 08:30 17:00
  worklog add yesterday 22:00 06:00    Overnight shift, 8h`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		handlers.AddEntry(cmd.Context(), d, args[0], args[1], args[2])
		return nil
	},
}

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <date> <in> <out>",
	Short: "Change the times of an existing entry",
	Long: `Replace the in and out time of the entry for a day and recompute its
hours and deviation.

Example:
  worklog edit 2024-01-15 09:00 18:00`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		handlers.EditEntry(cmd.Context(), d, args[0], args[1], args[2])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
}
