package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/cli/handlers"
	"github.com/xolan/worklog/internal/timeutil"
)

var (
	weekDateFlag  string
	monthDateFlag string
)

// weekCmd represents the week command
var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show a week's entries and totals",
	Long: `Show the Monday-Sunday week containing --date (default today) with
per-day hours, deviation from target, totals and a comparison with the
previous week.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		if ref, ok := refDate(d, weekDateFlag); ok {
			handlers.ShowWeek(cmd.Context(), d, ref)
		}
		return nil
	},
}

// monthCmd represents the month command
var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show a month's entries and totals",
	Long: `Show the calendar month containing --date (default today) with per-day
hours, deviation from target, totals and a comparison with the previous month.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		if ref, ok := refDate(d, monthDateFlag); ok {
			handlers.ShowMonth(cmd.Context(), d, ref)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(monthCmd)

	weekCmd.Flags().StringVarP(&weekDateFlag, "date", "d", "", "any day in the week (YYYY-MM-DD, today, yesterday)")
	monthCmd.Flags().StringVarP(&monthDateFlag, "date", "d", "", "any day in the month (YYYY-MM-DD, today, yesterday)")
}

// refDate resolves a --date flag, defaulting to today
func refDate(d *cli.Deps, flag string) (time.Time, bool) {
	now := d.Now()
	if flag == "" {
		return now, true
	}
	ref, err := timeutil.ParseDateArg(flag, now)
	if err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error: %v\n", err)
		d.Exit(1)
		return time.Time{}, false
	}
	return ref, true
}
