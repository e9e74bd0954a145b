package todo

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// statusChange applies a done-state change to one todo
type statusChange func(ctx context.Context, service todoservice.Service, id int) (*models.Todo, error)

// DoneCmd returns the done subcommand
func DoneCmd() *cobra.Command {
	return statusCmd("done <id>", "Mark a todo done", setDone(true))
}

// UndoneCmd returns the undone subcommand
func UndoneCmd() *cobra.Command {
	return statusCmd("undone <id>", "Mark a todo not done", setDone(false))
}

// ToggleCmd returns the toggle subcommand
func ToggleCmd() *cobra.Command {
	return statusCmd("toggle <id>", "Flip a todo between done and not done",
		func(ctx context.Context, service todoservice.Service, id int) (*models.Todo, error) {
			return service.ToggleTodo(ctx, id)
		})
}

func setDone(done bool) statusChange {
	return func(ctx context.Context, service todoservice.Service, id int) (*models.Todo, error) {
		if err := service.SetDone(ctx, id, done); err != nil {
			return nil, err
		}
		return service.GetTodo(ctx, id)
	}
}

func statusCmd(use, short string, change statusChange) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			formatter, cliInstance, err := setup(cmd)
			if err != nil {
				return err
			}

			id, err := parseID(formatter, args)
			if err != nil {
				return err
			}

			todo, err := change(ctx, cliInstance.App.TodoService, id)
			if err != nil {
				return formatter.Fail(err, failureHint(err))
			}

			if formatter.JSON || formatter.Quiet {
				return formatter.Success(todo)
			}

			state := "not done"
			if todo.Done {
				state = "done"
			}
			formatter.Printf("Todo %s is now %s\n", styles.IDStyle.Render(itoa(todo.ID)), styles.SuccessStyle.Render(state))
			return nil
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}
