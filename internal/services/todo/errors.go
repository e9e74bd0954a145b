package todo

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/todo/internal/models"
)

// Todo-related errors
var (
	// Validation errors
	ErrEmptyText     = fmt.Errorf("%w: todo text cannot be empty", models.ErrValidation)
	ErrTextTooLong   = fmt.Errorf("%w: todo text cannot exceed %d characters", models.ErrValidation, models.MaxTextLength)
	ErrInvalidTodoID = fmt.Errorf("%w: invalid todo ID", models.ErrValidation)

	// ErrTodoNotFound wraps models.ErrNotFound
	ErrTodoNotFound = fmt.Errorf("todo %w", models.ErrNotFound)
)

// IsNotFound reports whether err means the todo does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}

// IsValidation reports whether err is an input validation failure
func IsValidation(err error) bool {
	return errors.Is(err, models.ErrValidation)
}
