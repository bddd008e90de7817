package handlers

import (
	"fmt"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/service"
)

// hints maps error kinds to a follow-up line printed after the error.
var hints = map[service.Kind]string{
	service.KindMissingField:        "Usage: worklog add <date> <in> <out>",
	service.KindInvalidFormat:       "Use YYYY-MM-DD for dates (or today/yesterday) and HH:MM for times",
	service.KindInvalidValue:        "Hours and minutes must be numbers, e.g. 09:05",
	service.KindNonPositiveDuration: "Out time must be after in time; earlier out times count as the next day",
	service.KindDuplicateKey:        "Use 'worklog edit <date> <in> <out>' to change an existing entry",
	service.KindNotFound:            "Use 'worklog add <date> <in> <out>' to create it",
	service.KindStorageFailure:      "Check database_path / database_dsn in your config file",
}

// fail prints err with a hint for its kind and exits with status 1.
func fail(deps *cli.Deps, err error) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", service.Message(err))
	if hint, ok := hints[service.KindOf(err)]; ok {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}
