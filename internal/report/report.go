// Package report renders a todo list as a Markdown checklist
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/todo/internal/models"
)

// DateLayout is how finished dates are printed
const DateLayout = "2006-01-02"

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`#`, `\#`,
	`<`, `\<`,
	`>`, `\>`,
	`|`, `\|`,
)

// escapeMarkdown keeps todo text literal inside a task list item
func escapeMarkdown(text string) string {
	text = markdownEscaper.Replace(text)
	// A leading marker would otherwise start a nested list
	if strings.HasPrefix(text, "-") || strings.HasPrefix(text, "+") {
		text = `\` + text
	}
	return text
}

// Markdown renders todos as a GitHub-style task list under a heading naming
// the filter, followed by a one-line summary.
func Markdown(todos []*models.Todo, filter models.Filter) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Todos: %s\n\n", filter.Title())

	if len(todos) == 0 {
		b.WriteString("_No todos yet._\n")
		return b.String()
	}

	done := 0
	for _, t := range todos {
		box := " "
		if t.Done {
			box = "x"
			done++
		}
		fmt.Fprintf(&b, "- [%s] %s", box, escapeMarkdown(t.Text))
		if t.IsFinished() {
			fmt.Fprintf(&b, " _(finished %s)_", t.FinishedAt.Local().Format(DateLayout))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%d %s, %d done\n", len(todos), plural(len(todos), "todo", "todos"), done)
	return b.String()
}

// Render styles markdown for a terminal of the given width.
// Style "auto" picks light or dark from the terminal; "notty" emits plain text.
func Render(markdown string, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
