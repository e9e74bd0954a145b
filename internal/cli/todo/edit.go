package todo

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id> <text...>",
		Short: "Change a todo's text",
		Long: `Replace the text of a todo. Its done state is left as is.

Examples:
  todo edit 3 buy soy milk instead
`,
		RunE: runEdit,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter, cliInstance, err := setup(cmd)
	if err != nil {
		return err
	}

	id, err := parseID(formatter, args)
	if err != nil {
		return err
	}

	text := cli.JoinText(args[1:])
	service := cliInstance.App.TodoService
	if err := service.UpdateTodo(ctx, todoservice.UpdateTodoRequest{TodoID: id, Text: &text}); err != nil {
		return formatter.Fail(err, failureHint(err))
	}

	todo, err := service.GetTodo(ctx, id)
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(todo)
	}

	formatter.Printf("%s todo %s: %s\n",
		styles.SuccessStyle.Render("Updated"),
		styles.IDStyle.Render(itoa(todo.ID)),
		todo.Text)
	return nil
}
