package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/todo/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage failures and anything that doesn't fit below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: bad arguments or flags, refusing to prompt without a terminal.
	ExitUsage = 2

	// ExitNotFound indicates the requested todo was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: empty text, bad IDs, unknown filters.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command.
// The error has already been reported to the user when it is returned.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the exit code the process should return
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}

// ErrorCode maps an error to the machine-readable code printed in JSON mode
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, models.ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, models.ErrNotFound):
		return "TODO_NOT_FOUND"
	case errors.Is(err, models.ErrStorageUnavailable):
		return "STORAGE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}
