package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todo/internal/models"
)

func TestCreateTodo(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	todo, err := repo.CreateTodo(ctx, "Buy milk")
	require.NoError(t, err)

	assert.NotZero(t, todo.ID)
	assert.Equal(t, "Buy milk", todo.Text)
	assert.False(t, todo.Done)
	assert.Nil(t, todo.FinishedAt)
	assert.False(t, todo.CreatedAt.IsZero(), "created_at should be set by storage")
}

func TestCreateTodo_EmptyTextRejected(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	createTodos(t, repo, "existing")

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := repo.CreateTodo(ctx, text)
		require.Error(t, err, "text %q", text)
		assert.True(t, errors.Is(err, models.ErrValidation), "text %q", text)
	}

	count, err := repo.CountTodos(ctx, models.FilterAll)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "list count must be unchanged")
}

func TestCreateTodo_IncreasesListByOne(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	createTodos(t, repo, "one", "two")

	before, err := repo.ListTodos(ctx, models.FilterAll)
	require.NoError(t, err)

	_, err = repo.CreateTodo(ctx, "three")
	require.NoError(t, err)

	after, err := repo.ListTodos(ctx, models.FilterAll)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	var texts []string
	for _, todo := range after {
		texts = append(texts, todo.Text)
	}
	assert.Contains(t, texts, "three")
}

func TestCreateTodo_UniqueIDs(t *testing.T) {
	repo := setupTestRepo(t)
	ids := createTodos(t, repo, "a", "b", "c")

	seen := map[int]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}

func TestListTodos_EmptyIsNotAnError(t *testing.T) {
	repo := setupTestRepo(t)

	for _, filter := range models.Filters {
		todos, err := repo.ListTodos(context.Background(), filter)
		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	}
}

func TestListTodos_NewestFirst(t *testing.T) {
	repo := setupTestRepo(t)
	createTodos(t, repo, "first", "second", "third")

	todos, err := repo.ListTodos(context.Background(), models.FilterAll)
	require.NoError(t, err)
	require.Len(t, todos, 3)
	assert.Equal(t, "third", todos[0].Text)
	assert.Equal(t, "second", todos[1].Text)
	assert.Equal(t, "first", todos[2].Text)
}

func TestListTodos_FiltersPartitionAll(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	ids := createTodos(t, repo, "a", "b", "c", "d", "e")

	require.NoError(t, repo.UpdateTodo(ctx, ids[1], models.Patch{Done: boolPtr(true)}))
	require.NoError(t, repo.UpdateTodo(ctx, ids[3], models.Patch{Done: boolPtr(true)}))

	all, err := repo.ListTodos(ctx, models.FilterAll)
	require.NoError(t, err)
	done, err := repo.ListTodos(ctx, models.FilterDone)
	require.NoError(t, err)
	undone, err := repo.ListTodos(ctx, models.FilterUndone)
	require.NoError(t, err)

	doneIDs := map[int]bool{}
	for _, todo := range done {
		assert.True(t, todo.Done)
		doneIDs[todo.ID] = true
	}
	union := map[int]bool{}
	for id := range doneIDs {
		union[id] = true
	}
	for _, todo := range undone {
		assert.False(t, todo.Done)
		assert.False(t, doneIDs[todo.ID], "todo %d is in both done and undone", todo.ID)
		union[todo.ID] = true
	}

	assert.Len(t, done, 2)
	assert.Len(t, undone, 3)
	assert.Len(t, union, len(all))
	for _, todo := range all {
		assert.True(t, union[todo.ID], "todo %d missing from done ∪ undone", todo.ID)
	}
}

func TestListTodos_InvalidFilter(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.ListTodos(context.Background(), models.Filter("archived"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestCountTodos(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	ids := createTodos(t, repo, "a", "b", "c")
	require.NoError(t, repo.UpdateTodo(ctx, ids[0], models.Patch{Done: boolPtr(true)}))

	tests := []struct {
		filter models.Filter
		want   int
	}{
		{models.FilterAll, 3},
		{models.FilterDone, 1},
		{models.FilterUndone, 2},
	}
	for _, tt := range tests {
		got, err := repo.CountTodos(ctx, tt.filter)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "filter %s", tt.filter)
	}
}

func TestUpdateTodo_ToggleSetsAndClearsFinishedAt(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	id := createTodos(t, repo, "toggle me")[0]

	require.NoError(t, repo.UpdateTodo(ctx, id, models.Patch{Done: boolPtr(true)}))
	got, err := repo.GetTodo(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Done)
	require.NotNil(t, got.FinishedAt)
	assert.True(t, got.FinishedAt.Equal(fixedNow), "finished_at = %v, want %v", got.FinishedAt, fixedNow)

	require.NoError(t, repo.UpdateTodo(ctx, id, models.Patch{Done: boolPtr(false)}))
	got, err = repo.GetTodo(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Done)
	assert.Nil(t, got.FinishedAt)
}

func TestUpdateTodo_DoneTwiceKeepsOriginalTimestamp(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	id := createTodos(t, repo, "finish once")[0]

	require.NoError(t, repo.UpdateTodo(ctx, id, models.Patch{Done: boolPtr(true)}))

	repo.TodoRepo.now = func() time.Time { return fixedNow.Add(48 * time.Hour) }
	require.NoError(t, repo.UpdateTodo(ctx, id, models.Patch{Done: boolPtr(true)}))

	got, err := repo.GetTodo(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.FinishedAt)
	assert.True(t, got.FinishedAt.Equal(fixedNow))
}

func TestUpdateTodo_TextOnlyLeavesStatus(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	id := createTodos(t, repo, "draft")[0]
	require.NoError(t, repo.UpdateTodo(ctx, id, models.Patch{Done: boolPtr(true)}))

	require.NoError(t, repo.UpdateTodo(ctx, id, models.Patch{Text: strPtr("final")}))

	got, err := repo.GetTodo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Text)
	assert.True(t, got.Done)
	assert.NotNil(t, got.FinishedAt)
}

func TestUpdateTodo_NotFound(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	err := repo.UpdateTodo(ctx, 999, models.Patch{Text: strPtr("ghost")})
	assert.True(t, errors.Is(err, models.ErrNotFound))

	err = repo.UpdateTodo(ctx, 999, models.Patch{})
	assert.True(t, errors.Is(err, models.ErrNotFound), "empty patch still checks existence")
}

func TestUpdateTodo_EmptyTextRejected(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	id := createTodos(t, repo, "keep")[0]

	err := repo.UpdateTodo(ctx, id, models.Patch{Text: strPtr("  ")})
	assert.True(t, errors.Is(err, models.ErrValidation))

	got, err := repo.GetTodo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "keep", got.Text)
}

func TestDeleteTodo(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	ids := createTodos(t, repo, "delete me", "keep me")

	require.NoError(t, repo.DeleteTodo(ctx, ids[0]))

	_, err := repo.GetTodo(ctx, ids[0])
	assert.True(t, errors.Is(err, models.ErrNotFound))

	todos, err := repo.ListTodos(ctx, models.FilterAll)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "keep me", todos[0].Text)
}

func TestDeleteTodo_NotFoundLeavesRows(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	createTodos(t, repo, "a", "b")

	err := repo.DeleteTodo(ctx, 12345)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	count, err := repo.CountTodos(ctx, models.FilterAll)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGetTodo_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetTodo(context.Background(), 1)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
