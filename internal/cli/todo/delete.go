package todo

import (
	"errors"
	"fmt"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
)

// Overridden in tests.
var (
	confirmDelete   = promptDelete
	stdinIsTerminal = func(cmd *cobra.Command) bool { return cli.IsTerminal(cmd.InOrStdin()) }
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo",
		Long:  "Delete a todo by ID (requires confirmation unless --force, --quiet or --json).",
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)
	return cmd
}

// deleteResult is the JSON payload of the delete command
type deleteResult struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

func (d deleteResult) GetID() int {
	return d.ID
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter, cliInstance, err := setup(cmd)
	if err != nil {
		return err
	}

	id, err := parseID(formatter, args)
	if err != nil {
		return err
	}

	service := cliInstance.App.TodoService
	todo, err := service.GetTodo(ctx, id)
	if err != nil {
		return formatter.Fail(err, failureHint(err))
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force && !formatter.Quiet && !formatter.JSON {
		if !stdinIsTerminal(cmd) {
			err := errors.New("refusing to delete without confirmation: stdin is not a terminal")
			if fmtErr := formatter.ErrorWithSuggestion("CONFIRMATION_REQUIRED", err.Error(), "Pass --force to delete without asking"); fmtErr != nil {
				return fmtErr
			}
			return &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
		}

		ok, err := confirmDelete(todo)
		if err != nil {
			return formatter.Fail(err, "")
		}
		if !ok {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if err := service.DeleteTodo(ctx, id); err != nil {
		return formatter.Fail(err, failureHint(err))
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(deleteResult{ID: id, Deleted: true})
	}

	formatter.Printf("%s todo %s\n", styles.ErrorStyle.Render("Deleted"), styles.IDStyle.Render(itoa(id)))
	return nil
}

// promptDelete asks the user to confirm deleting todo; the default is No
func promptDelete(todo *models.Todo) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete todo #%d: %q?", todo.ID, todo.Text)).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return confirmed, nil
}
