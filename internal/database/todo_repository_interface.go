package database

import (
	"context"

	"github.com/thenoetrevino/todo/internal/models"
)

// TodoReader defines read operations for todos.
type TodoReader interface {
	ListTodos(ctx context.Context, filter models.Filter) ([]*models.Todo, error)
	GetTodo(ctx context.Context, id int) (*models.Todo, error)
	CountTodos(ctx context.Context, filter models.Filter) (int, error)
}

// TodoWriter defines write operations for todos.
type TodoWriter interface {
	CreateTodo(ctx context.Context, text string) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id int, patch models.Patch) error
	DeleteTodo(ctx context.Context, id int) error
}

// TodoRepository combines all todo-related operations.
type TodoRepository interface {
	Initialize(ctx context.Context) error
	TodoReader
	TodoWriter
}
