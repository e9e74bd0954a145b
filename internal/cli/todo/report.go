package todo

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/report"
)

// reportWidth is the wrap width for rendered reports
const reportWidth = 80

// ReportCmd returns the report subcommand
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the list as a Markdown checklist",
		Long: `Print the list as a Markdown checklist.

On a terminal the Markdown is rendered with colors; otherwise, or with
--plain, the raw Markdown is printed.

Examples:
  todo report
  todo report --filter undone --plain > todos.md
`,
		Args: cobra.NoArgs,
		RunE: runReport,
	}

	cmd.Flags().String("filter", string(models.FilterAll), "Status filter: all, done, undone")
	cmd.Flags().Bool("plain", false, "Print raw Markdown")
	cmd.Flags().String("style", "auto", "Glamour style: auto, dark, light, notty")
	cli.AddOutputFlags(cmd)
	return cmd
}

// reportResult is the JSON payload of the report command
type reportResult struct {
	Filter   models.Filter `json:"filter"`
	Markdown string        `json:"markdown"`
}

func runReport(cmd *cobra.Command, args []string) error {
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

	markdown := report.Markdown(todos, filter)

	if formatter.JSON {
		return formatter.Success(reportResult{Filter: filter, Markdown: markdown})
	}

	plain, _ := cmd.Flags().GetBool("plain")
	if plain || formatter.Quiet || !cli.IsTerminal(cmd.OutOrStdout()) {
		_, err := cmd.OutOrStdout().Write([]byte(markdown))
		return err
	}

	style, _ := cmd.Flags().GetString("style")
	rendered, err := report.Render(markdown, style, reportWidth)
	if err != nil {
		return formatter.Fail(err, "Valid styles are: auto, dark, light, notty")
	}
	_, err = cmd.OutOrStdout().Write([]byte(rendered))
	return err
}
