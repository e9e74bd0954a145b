package state

import "github.com/thenoetrevino/todo/internal/models"

// AppState holds the data last read from storage.
type AppState struct {
	todos []*models.Todo

	// Counts across all filters, for the tab bar
	total int
	done  int
}

// NewAppState creates an empty AppState.
func NewAppState() *AppState {
	return &AppState{todos: []*models.Todo{}}
}

// Todos returns the visible todos.
func (s *AppState) Todos() []*models.Todo {
	return s.todos
}

// SetTodos replaces the visible todos and the counts.
func (s *AppState) SetTodos(todos []*models.Todo, total, done int) {
	if todos == nil {
		todos = []*models.Todo{}
	}
	s.todos = todos
	s.total = total
	s.done = done
}

// Todo returns the todo at index i, or nil when out of range.
func (s *AppState) Todo(i int) *models.Todo {
	if i < 0 || i >= len(s.todos) {
		return nil
	}
	return s.todos[i]
}

// Count returns the number of todos matching filter.
func (s *AppState) Count(filter models.Filter) int {
	switch filter {
	case models.FilterDone:
		return s.done
	case models.FilterUndone:
		return s.total - s.done
	default:
		return s.total
	}
}
