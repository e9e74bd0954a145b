package todo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/report"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Long: `List todos, newest first.

Examples:
  todo list
  todo list --filter undone
  todo list --filter done --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("filter", string(models.FilterAll), "Status filter: all, done, undone")
	cli.AddOutputFlags(cmd)
	return cmd
}

// listResult is the JSON payload of the list command
type listResult struct {
	Filter models.Filter  `json:"filter"`
	Count  int            `json:"count"`
	Todos  []*models.Todo `json:"todos"`
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatter, cliInstance, err := setup(cmd)
	if err != nil {
		return err
	}

	rawFilter, _ := cmd.Flags().GetString("filter")
	filter, err := models.ParseFilter(rawFilter)
	if err != nil {
		return formatter.Fail(err, "Valid filters are: all, done, undone")
	}

	todos, err := cliInstance.App.TodoService.ListTodos(ctx, filter)
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		for _, t := range todos {
			if _, err := fmt.Fprintln(formatter.Out, t.ID); err != nil {
				return err
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(listResult{Filter: filter, Count: len(todos), Todos: todos})
	}

	formatter.Printf("%s", formatList(todos, filter))
	return nil
}

// formatList renders the human-readable list
func formatList(todos []*models.Todo, filter models.Filter) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Todos: "+filter.Title()) + "\n")

	if len(todos) == 0 {
		b.WriteString(styles.SubtitleStyle.Render("No todos yet.") + "\n")
		return b.String()
	}

	width := 0
	for _, t := range todos {
		width = max(width, len(itoa(t.ID)))
	}

	done := 0
	for _, t := range todos {
		box, text := "[ ]", styles.ValueStyle.Render(t.Text)
		if t.Done {
			box, text = "[x]", styles.DoneStyle.Render(t.Text)
			done++
		}

		id := fmt.Sprintf("%*d", width, t.ID)
		fmt.Fprintf(&b, "%s %s  %s", box, styles.IDStyle.Render(id), text)
		if t.FinishedAt != nil {
			b.WriteString(styles.SubtitleStyle.Render("  (finished " + t.FinishedAt.Local().Format(report.DateLayout) + ")"))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%s\n", styles.SubtitleStyle.Render(fmt.Sprintf("%d total, %d done", len(todos), done)))
	return b.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
