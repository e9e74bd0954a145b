package todo

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a todo",
		Long: `Add a todo. All arguments are joined with spaces.

Examples:
  todo add buy oat milk

  # Capture the new ID
  ID=$(todo add --quiet call the landlord)

  # Read the text from stdin
  echo "water the plants" | todo add -
`,
		RunE: runAdd,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter, cliInstance, err := setup(cmd)
	if err != nil {
		return err
	}

	text := cli.JoinText(args)
	if text == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return formatter.Fail(err, "")
		}
		text = strings.TrimRight(string(data), "\r\n")
	}

	todo, err := cliInstance.App.TodoService.CreateTodo(ctx, text)
	if err != nil {
		return formatter.Fail(err, failureHint(err))
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(todo)
	}

	formatter.Printf("%s todo %s: %s\n",
		styles.SuccessStyle.Render("Created"),
		styles.IDStyle.Render(itoa(todo.ID)),
		todo.Text)
	return nil
}
