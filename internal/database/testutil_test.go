package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedNow is the clock used by repositories under test
var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

// setupTestRepo opens an in-memory database with the full schema
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := Open(context.Background(), Options{Path: MemoryPath})
	require.NoError(t, err, "failed to open test database")

	repo := NewRepository(db, WithClock(func() time.Time { return fixedNow }))
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

// createTodos inserts one todo per text and returns them in insertion order
func createTodos(t *testing.T, repo *Repository, texts ...string) []int {
	t.Helper()

	ids := make([]int, 0, len(texts))
	for _, text := range texts {
		todo, err := repo.CreateTodo(context.Background(), text)
		require.NoError(t, err, "failed to create %q", text)
		ids = append(ids, todo.ID)
	}
	return ids
}

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }
