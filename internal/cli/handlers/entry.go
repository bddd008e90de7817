package handlers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/service"
	"github.com/xolan/worklog/internal/timeutil"
)

// resolveDate accepts YYYY-MM-DD, "today" or "yesterday".
func resolveDate(deps *cli.Deps, arg string) (string, bool) {
	d, err := timeutil.ParseDateArg(arg, deps.Now())
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return "", false
	}
	return timeutil.FormatDate(d), true
}

// AddEntry creates the entry for dateArg
func AddEntry(ctx context.Context, deps *cli.Deps, dateArg, inTime, outTime string) {
	date, ok := resolveDate(deps, dateArg)
	if !ok {
		return
	}

	e, err := deps.Services.Entry.Add(ctx, service.AddRequest{Date: date, InTime: inTime, OutTime: outTime})
	if err != nil {
		fail(deps, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Entry added successfully: %s %s-%s (%sh, %s)\n",
		e.Date, e.InTime, e.OutTime, cli.FormatHours(e.TotalHours), cli.FormatDeviation(e.DeviationMinutes))
}

// EditEntry replaces the times of the entry for dateArg
func EditEntry(ctx context.Context, deps *cli.Deps, dateArg, inTime, outTime string) {
	date, ok := resolveDate(deps, dateArg)
	if !ok {
		return
	}

	e, err := deps.Services.Entry.Update(ctx, date, service.UpdateRequest{InTime: inTime, OutTime: outTime})
	if err != nil {
		fail(deps, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Entry updated successfully: %s %s-%s (%sh, %s)\n",
		e.Date, e.InTime, e.OutTime, cli.FormatHours(e.TotalHours), cli.FormatDeviation(e.DeviationMinutes))
}

// DeleteEntry deletes the entry for dateArg, asking for confirmation unless skipConfirm is set
func DeleteEntry(ctx context.Context, deps *cli.Deps, dateArg string, skipConfirm bool) {
	date, ok := resolveDate(deps, dateArg)
	if !ok {
		return
	}

	e, err := deps.Services.Entry.Get(ctx, date)
	if err != nil {
		if service.KindOf(err) == service.KindNotFound {
			_, _ = fmt.Fprintf(deps.Stdout, "No entry for %s, nothing to delete\n", date)
			return
		}
		fail(deps, err)
		return
	}

	if !skipConfirm {
		_, _ = fmt.Fprintf(deps.Stdout, "Delete entry: %s %s-%s (%sh)? [y/N]: ",
			e.Date, e.InTime, e.OutTime, cli.FormatHours(e.TotalHours))
		if !confirm(deps.Stdin) {
			_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled.")
			return
		}
	}

	if err := deps.Services.Entry.Delete(ctx, date); err != nil {
		fail(deps, err)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Entry deleted successfully: %s\n", date)
}

func confirm(r io.Reader) bool {
	reader := bufio.NewReader(r)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
