package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todo/internal/database"
)

// FixedNow is the clock used by test repositories
var FixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

// SetupTestRepo creates an in-memory database with full schema
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()

	db, err := database.Open(context.Background(), database.Options{Path: database.MemoryPath})
	require.NoError(t, err, "failed to create test database")

	repo := database.NewRepository(db, database.WithClock(func() time.Time { return FixedNow }))
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

// CreateTestTodo inserts a todo and returns its ID
func CreateTestTodo(t *testing.T, repo *database.Repository, text string, done bool) int {
	t.Helper()

	todo, err := repo.CreateTodo(context.Background(), text)
	require.NoError(t, err, "failed to create todo %q", text)

	if done {
		require.NoError(t, repo.UpdateTodo(context.Background(), todo.ID, patchDone(true)))
	}
	return todo.ID
}

// DiscardLogger returns a logger that drops every record
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
