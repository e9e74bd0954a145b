package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/tui/state"
)

const (
	// Title is the heading of the screen
	Title = "Todo List"

	// EmptyMessage is shown when the filter matches nothing
	EmptyMessage = "No todos yet."

	// DeletePrompt asks for confirmation before deleting
	DeletePrompt = "Delete todo? y/N"

	finishedLayout = "2006-01-02 15:04"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render(Title),
		m.renderTabs(),
		m.renderInput(),
	)
	footer := m.renderStatusBar()
	if m.uiState.Mode() == state.DeleteConfirmMode {
		footer = lipgloss.JoinVertical(lipgloss.Left, m.styles.confirm.Render(DeletePrompt), footer)
	}

	listLines := 0
	if h := m.uiState.Height(); h > 0 {
		listLines = h - lipgloss.Height(header) - lipgloss.Height(footer)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, m.renderList(listLines), footer)
	if w := m.uiState.Width(); w > 0 {
		content = lipgloss.NewStyle().MaxWidth(w).Render(content)
	}
	view.Content = content
	return view
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(models.Filters))
	for _, f := range models.Filters {
		label := fmt.Sprintf("%s (%d)", f.Title(), m.appState.Count(f))
		style := m.styles.tab
		if f == m.uiState.Filter() {
			style = m.styles.activeTab
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderInput() string {
	box, button := m.styles.input, "Add"
	switch m.uiState.Mode() {
	case state.AddMode:
		box = m.styles.addInput
	case state.EditMode:
		box, button = m.styles.editInput, "Save"
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		box.Render(m.input.View()),
		" ",
		m.styles.buttonLabel.Render("["+button+"]"),
	)
}

// renderList draws the todos, scrolled to keep the cursor within maxLines.
// maxLines of zero means the terminal size is not known yet.
func (m Model) renderList(maxLines int) string {
	todos := m.appState.Todos()
	if len(todos) == 0 {
		return m.styles.empty.Render(EmptyMessage)
	}

	cursor := m.uiState.Cursor()
	rows := make([]string, len(todos))
	for i, todo := range todos {
		rows[i] = m.renderTodo(todo, i == cursor)
	}
	if maxLines > 0 {
		rows = visibleRows(rows, min(cursor, len(rows)-1), maxLines)
	}
	return strings.Join(rows, "\n")
}

// visibleRows returns the run of rows ending near cursor that fits in
// maxLines. Rows above the cursor are kept first so the top of the list
// stays put until the cursor scrolls past the bottom.
func visibleRows(rows []string, cursor, maxLines int) []string {
	start, end := cursor, cursor+1
	used := lipgloss.Height(rows[cursor])
	for start > 0 && used+lipgloss.Height(rows[start-1]) <= maxLines {
		start--
		used += lipgloss.Height(rows[start])
	}
	for end < len(rows) && used+lipgloss.Height(rows[end]) <= maxLines {
		used += lipgloss.Height(rows[end])
		end++
	}
	return rows[start:end]
}

func (m Model) renderTodo(todo *models.Todo, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}

	box, text := "[ ]", m.styles.item.Render(todo.Text)
	if todo.Done {
		box, text = "[x]", m.styles.done.Render(todo.Text)
	}

	line := prefix + box + " " + text
	if selected {
		line = m.styles.selected.Render(line)
	}

	if todo.IsFinished() {
		line += "\n      " + m.styles.finished.Render("Finished: "+todo.FinishedAt.Local().Format(finishedLayout))
	}
	return line
}

func (m Model) renderStatusBar() string {
	bindings := m.keys.normalHelp()
	if m.uiState.Mode() == state.AddMode || m.uiState.Mode() == state.EditMode {
		bindings = m.keys.inputHelp()
	}

	return m.styles.statusBar.Render(
		m.styles.modeBadge.Render(m.uiState.Mode().String()) + "  " + m.help.ShortHelpView(bindings),
	)
}
