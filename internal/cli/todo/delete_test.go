package todo

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/models"
)

// stubPrompt replaces the terminal check and confirmation for one test
func stubPrompt(t *testing.T, terminal bool, answer bool, err error) *int {
	t.Helper()

	calls := 0
	origConfirm, origTerminal := confirmDelete, stdinIsTerminal
	confirmDelete = func(*models.Todo) (bool, error) {
		calls++
		return answer, err
	}
	stdinIsTerminal = func(*cobra.Command) bool { return terminal }
	t.Cleanup(func() {
		confirmDelete, stdinIsTerminal = origConfirm, origTerminal
	})
	return &calls
}

func countAll(t *testing.T, c *cli.CLI) int {
	t.Helper()
	n, err := c.App.TodoService.CountTodos(context.Background(), models.FilterAll)
	require.NoError(t, err)
	return n
}

func TestDelete_Force(t *testing.T) {
	c := newTestCLI(t)
	seed(t, c)
	calls := stubPrompt(t, true, false, nil)

	res := run(t, c, "delete", "--force", "2")
	require.NoError(t, res.err)
	assert.Equal(t, "Deleted todo 2\n", res.stdout)
	assert.Zero(t, *calls)
	assert.Equal(t, 2, countAll(t, c))
}

func TestDelete_Confirmed(t *testing.T) {
	c := newTestCLI(t)
	seed(t, c)
	calls := stubPrompt(t, true, true, nil)

	res := run(t, c, "delete", "1")
	require.NoError(t, res.err)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, 2, countAll(t, c))
}

func TestDelete_Declined(t *testing.T) {
	c := newTestCLI(t)
	seed(t, c)
	stubPrompt(t, true, false, nil)

	res := run(t, c, "delete", "1")
	require.NoError(t, res.err)
	assert.Equal(t, "Cancelled\n", res.stdout)
	assert.Equal(t, 3, countAll(t, c))
}

func TestDelete_PromptError(t *testing.T) {
	c := newTestCLI(t)
	seed(t, c)
	stubPrompt(t, true, false, errors.New("user aborted"))

	res := run(t, c, "delete", "1")
	require.Error(t, res.err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(res.err))
	assert.Equal(t, 3, countAll(t, c))
}

func TestDelete_NoTerminalRequiresForce(t *testing.T) {
	c := newTestCLI(t)
	seed(t, c)
	calls := stubPrompt(t, false, true, nil)

	res := run(t, c, "delete", "1")
	require.Error(t, res.err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(res.err))
	assert.Contains(t, res.stderr, "--force")
	assert.Zero(t, *calls)
	assert.Equal(t, 3, countAll(t, c))
}

func TestDelete_QuietAndJSONSkipPrompt(t *testing.T) {
	c := newTestCLI(t)
	seed(t, c)
	calls := stubPrompt(t, false, false, nil)

	res := run(t, c, "delete", "--quiet", "1")
	require.NoError(t, res.err)
	assert.Equal(t, "1\n", res.stdout)

	res = run(t, c, "delete", "--json", "2")
	require.NoError(t, res.err)
	assert.JSONEq(t, `{"success":true,"data":{"id":2,"deleted":true}}`, res.stdout)

	assert.Zero(t, *calls)
	assert.Equal(t, 1, countAll(t, c))
}

func TestDelete_NotFoundLeavesRows(t *testing.T) {
	c := newTestCLI(t)
	seed(t, c)
	stubPrompt(t, true, true, nil)

	res := run(t, c, "delete", "--force", "42")
	require.Error(t, res.err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(res.err))
	assert.Contains(t, res.stderr, "Suggestion: Use 'todo list' to see available todos")
	assert.Equal(t, 3, countAll(t, c))
}
