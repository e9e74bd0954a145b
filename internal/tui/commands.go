package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todo/internal/models"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// loadTodos reads the list for the active filter along with the tab counts
func (m Model) loadTodos() tea.Cmd {
	ctx, service, filter := m.ctx, m.service, m.uiState.Filter()
	seq := m.uiState.NextLoadSeq()

	return func() tea.Msg {
		msg := todosLoadedMsg{seq: seq, filter: filter}

		msg.todos, msg.err = service.ListTodos(ctx, filter)
		if msg.err != nil {
			return msg
		}
		if msg.total, msg.err = service.CountTodos(ctx, models.FilterAll); msg.err != nil {
			return msg
		}
		msg.done, msg.err = service.CountTodos(ctx, models.FilterDone)
		return msg
	}
}

// mutate runs op against the service; the result triggers a reload
func (m Model) mutate(op string, id int, fn func(ctx context.Context, service todoservice.Service) error) tea.Cmd {
	ctx, service := m.ctx, m.service

	return func() tea.Msg {
		return mutationDoneMsg{op: op, id: id, err: fn(ctx, service)}
	}
}

func (m Model) createTodo(text string) tea.Cmd {
	return m.mutate("create", 0, func(ctx context.Context, service todoservice.Service) error {
		_, err := service.CreateTodo(ctx, text)
		return err
	})
}

func (m Model) editTodo(id int, text string) tea.Cmd {
	return m.mutate("edit", id, func(ctx context.Context, service todoservice.Service) error {
		return service.UpdateTodo(ctx, todoservice.UpdateTodoRequest{TodoID: id, Text: &text})
	})
}

func (m Model) toggleTodo(id int) tea.Cmd {
	return m.mutate("toggle", id, func(ctx context.Context, service todoservice.Service) error {
		_, err := service.ToggleTodo(ctx, id)
		return err
	})
}

func (m Model) deleteTodo(id int) tea.Cmd {
	return m.mutate("delete", id, func(ctx context.Context, service todoservice.Service) error {
		return service.DeleteTodo(ctx, id)
	})
}
