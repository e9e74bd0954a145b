package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		m.input.SetWidth(max(msg.Width-16, 10))
		return m, nil

	case todosLoadedMsg:
		m.handleTodosLoaded(msg)
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.logger.Error("todo operation failed", "op", msg.op, "todo_id", msg.id, "error", msg.err)
		}
		return m, m.loadTodos()

	case tea.KeyPressMsg:
		switch m.uiState.Mode() {
		case state.AddMode, state.EditMode:
			return m.updateInput(msg)
		case state.DeleteConfirmMode:
			return m.updateDeleteConfirm(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	// Forward everything else (cursor blink) to the focused input
	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTodosLoaded installs a fresh read; failures keep the previous list
func (m Model) handleTodosLoaded(msg todosLoadedMsg) {
	// Any read started before the latest one is stale, including reads
	// for a filter the user already left
	if !m.uiState.IsLatestLoad(msg.seq) {
		m.logger.Debug("dropping stale todo read", "seq", msg.seq, "filter", msg.filter)
		return
	}
	if msg.err != nil {
		m.logger.Error("failed to load todos", "filter", msg.filter, "error", msg.err)
		return
	}
	m.appState.SetTodos(msg.todos, msg.total, msg.done)
	m.uiState.ClampCursor(len(msg.todos))
}

func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	count := len(m.appState.Todos())

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.uiState.MoveCursor(-1, count)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.uiState.MoveCursor(1, count)
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.uiState.SetMode(state.AddMode)
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Edit):
		todo := m.selectedTodo()
		if todo == nil {
			return m, nil
		}
		m.uiState.SetTarget(state.EditMode, todo.ID)
		m.input.SetValue(todo.Text)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if todo := m.selectedTodo(); todo != nil {
			return m, m.toggleTodo(todo.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if todo := m.selectedTodo(); todo != nil {
			m.uiState.SetTarget(state.DeleteConfirmMode, todo.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextFilter):
		return m.setFilter(m.uiState.Filter().Next())
	case key.Matches(msg, m.keys.FilterAll):
		return m.setFilter(models.FilterAll)
	case key.Matches(msg, m.keys.FilterDone):
		return m.setFilter(models.FilterDone)
	case key.Matches(msg, m.keys.FilterUndone):
		return m.setFilter(models.FilterUndone)
	}

	return m, nil
}

func (m Model) setFilter(f models.Filter) (tea.Model, tea.Cmd) {
	m.uiState.SetFilter(f)
	return m, m.loadTodos()
}

func (m Model) updateInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}

		var cmd tea.Cmd
		if m.uiState.Mode() == state.EditMode {
			cmd = m.editTodo(m.uiState.TargetID(), text)
		} else {
			cmd = m.createTodo(text)
		}
		m.closeInput()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// closeInput clears and blurs the input and returns to NormalMode
func (m *Model) closeInput() {
	m.input.Reset()
	m.input.Blur()
	m.uiState.SetMode(state.NormalMode)
}

func (m Model) updateDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	id := m.uiState.TargetID()
	m.uiState.SetMode(state.NormalMode)

	// Anything but an explicit yes cancels
	if key.Matches(msg, m.keys.Confirm) {
		return m, m.deleteTodo(id)
	}
	return m, nil
}
