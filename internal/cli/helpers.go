package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/todo/internal/models"
)

// ParseTodoID parses a positional todo ID argument
func ParseTodoID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid todo ID %q", models.ErrValidation, arg)
	}
	return id, nil
}

// JoinText joins positional words into a todo's text
func JoinText(args []string) string {
	return strings.Join(args, " ")
}
