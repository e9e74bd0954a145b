package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
)

// Service defines all todo-related business operations
type Service interface {
	// Initialize ensures the storage schema exists; safe to call repeatedly
	Initialize(ctx context.Context) error

	// Read operations
	ListTodos(ctx context.Context, filter models.Filter) ([]*models.Todo, error)
	GetTodo(ctx context.Context, id int) (*models.Todo, error)
	CountTodos(ctx context.Context, filter models.Filter) (int, error)

	// Write operations
	CreateTodo(ctx context.Context, text string) (*models.Todo, error)
	UpdateTodo(ctx context.Context, req UpdateTodoRequest) error
	DeleteTodo(ctx context.Context, id int) error

	// Status changes
	SetDone(ctx context.Context, id int, done bool) error
	ToggleTodo(ctx context.Context, id int) (*models.Todo, error)
}

// UpdateTodoRequest encapsulates all data needed to update a todo
// Fields with pointers are optional - nil means don't update
type UpdateTodoRequest struct {
	TodoID int
	Text   *string
	Done   *bool
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new todo service
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s *service) Initialize(ctx context.Context) error {
	return s.repo.Initialize(ctx)
}

func (s *service) ListTodos(ctx context.Context, filter models.Filter) ([]*models.Todo, error) {
	todos, err := s.repo.ListTodos(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

func (s *service) GetTodo(ctx context.Context, id int) (*models.Todo, error) {
	if id <= 0 {
		return nil, ErrInvalidTodoID
	}
	todo, err := s.repo.GetTodo(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return todo, nil
}

func (s *service) CountTodos(ctx context.Context, filter models.Filter) (int, error) {
	return s.repo.CountTodos(ctx, filter)
}

// CreateTodo normalizes and validates text before inserting
func (s *service) CreateTodo(ctx context.Context, text string) (*models.Todo, error) {
	clean, err := normalizeText(text)
	if err != nil {
		return nil, err
	}

	todo, err := s.repo.CreateTodo(ctx, clean)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Info("todo created", "id", todo.ID)
	return todo, nil
}

// UpdateTodo handles partial updates with validation
func (s *service) UpdateTodo(ctx context.Context, req UpdateTodoRequest) error {
	if req.TodoID <= 0 {
		return ErrInvalidTodoID
	}

	patch := models.Patch{Done: req.Done}
	if req.Text != nil {
		clean, err := normalizeText(*req.Text)
		if err != nil {
			return err
		}
		patch.Text = &clean
	}

	if err := s.repo.UpdateTodo(ctx, req.TodoID, patch); err != nil {
		return fmt.Errorf("failed to update todo: %w", mapNotFound(err))
	}

	s.logger.Info("todo updated", "id", req.TodoID,
		"text_changed", req.Text != nil, "done_changed", req.Done != nil)
	return nil
}

func (s *service) DeleteTodo(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidTodoID
	}

	if err := s.repo.DeleteTodo(ctx, id); err != nil {
		return fmt.Errorf("failed to delete todo: %w", mapNotFound(err))
	}

	s.logger.Info("todo deleted", "id", id)
	return nil
}

// SetDone marks a todo done or undone
func (s *service) SetDone(ctx context.Context, id int, done bool) error {
	return s.UpdateTodo(ctx, UpdateTodoRequest{TodoID: id, Done: &done})
}

// ToggleTodo flips the done flag and returns the updated todo
func (s *service) ToggleTodo(ctx context.Context, id int) (*models.Todo, error) {
	current, err := s.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.SetDone(ctx, id, !current.Done); err != nil {
		return nil, err
	}

	return s.GetTodo(ctx, id)
}

// normalizeText trims surrounding whitespace and composes the text to NFC
// so visually identical input is stored identically.
func normalizeText(text string) (string, error) {
	clean := norm.NFC.String(strings.TrimSpace(text))
	if clean == "" {
		return "", ErrEmptyText
	}
	if utf8.RuneCountInString(clean) > models.MaxTextLength {
		return "", ErrTextTooLong
	}
	return clean, nil
}

// mapNotFound swaps the repository's not-found error for ErrTodoNotFound
func mapNotFound(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return ErrTodoNotFound
	}
	return err
}
