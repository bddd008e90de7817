package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/cli/handlers"
)

var yesFlag bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete the entry for a day",
	Long: `Delete the entry for a day.
A confirmation prompt will be shown unless --yes is specified.

Example:
  worklog delete 2024-01-15
  worklog delete yesterday --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		handlers.DeleteEntry(cmd.Context(), d, args[0], yesFlag)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")
}
