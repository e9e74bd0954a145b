// Package todo holds the todo subcommands of the CLI
package todo

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/models"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// Commands returns every todo subcommand, ready to attach to the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		EditCmd(),
		DoneCmd(),
		UndoneCmd(),
		ToggleCmd(),
		DeleteCmd(),
		ReportCmd(),
	}
}

// setup resolves the formatter and the CLI for a running command
func setup(cmd *cobra.Command) (*cli.OutputFormatter, *cli.CLI, error) {
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			return nil, nil, fmtErr
		}
		return nil, nil, &cli.ExitCodeError{Code: cli.ExitError, Err: err}
	}
	return formatter, cliInstance, nil
}

// parseID parses args[0] as a todo ID, reporting failures through formatter
func parseID(formatter *cli.OutputFormatter, args []string) (int, error) {
	if len(args) == 0 {
		return 0, formatter.Usage(errors.New("missing todo ID"), "Pass the ID shown by 'todo list'")
	}

	id, err := cli.ParseTodoID(args[0])
	if err != nil {
		return 0, formatter.Fail(err, "IDs are positive integers shown by 'todo list'")
	}
	return id, nil
}

// failureHint is the suggestion shown with service errors
func failureHint(err error) string {
	switch {
	case todoservice.IsNotFound(err):
		return "Use 'todo list' to see available todos"
	case todoservice.IsValidation(err):
		return fmt.Sprintf("Todo text must be 1 to %d characters and not only spaces", models.MaxTextLength)
	default:
		return ""
	}
}
