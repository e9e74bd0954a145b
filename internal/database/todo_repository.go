package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/todo/internal/models"
)

const todoColumns = `id, text, done, finished_at, created_at`

// TodoRepo handles all todo-related database operations.
type TodoRepo struct {
	db  *sql.DB
	now func() time.Time
}

// Initialize ensures the schema exists. Safe to call any number of times.
func (r *TodoRepo) Initialize(ctx context.Context) error {
	if err := runMigrations(ctx, r.db); err != nil {
		return fmt.Errorf("%w: failed to ensure schema: %w", models.ErrStorageUnavailable, err)
	}
	return nil
}

// ListTodos returns the todos matching filter, newest first.
// An empty slice is a valid result.
func (r *TodoRepo) ListTodos(ctx context.Context, filter models.Filter) ([]*models.Todo, error) {
	where, err := filterClause(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos`+where+` ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return todos, nil
}

// GetTodo retrieves a single todo by ID
func (r *TodoRepo) GetTodo(ctx context.Context, id int) (*models.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)

	todo, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("todo %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo %d: %w", id, err)
	}
	return todo, nil
}

// CountTodos returns the number of todos matching filter
func (r *TodoRepo) CountTodos(ctx context.Context, filter models.Filter) (int, error) {
	where, err := filterClause(filter)
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos`+where).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}
	return count, nil
}

// CreateTodo inserts a new, not yet done todo
func (r *TodoRepo) CreateTodo(ctx context.Context, text string) (*models.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: todo text cannot be empty", models.ErrValidation)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (text, done) VALUES (?, 0)`, text)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new todo id: %w", err)
	}

	// Retrieve the created todo to get the timestamp
	return r.GetTodo(ctx, int(id))
}

// TimestampLayout is how finished_at is written. Both SQLite drivers parse it
// back into a time.Time, so a file written by one can be read by the other.
const TimestampLayout = "2006-01-02 15:04:05.999999999-07:00"

// UpdateTodo applies the supplied fields of patch to a single row.
// Setting Done also sets or clears finished_at in the same statement;
// marking an already finished todo done again keeps its original timestamp.
func (r *TodoRepo) UpdateTodo(ctx context.Context, id int, patch models.Patch) error {
	if patch.IsEmpty() {
		_, err := r.GetTodo(ctx, id)
		return err
	}

	var (
		sets []string
		args []any
	)
	if patch.Text != nil {
		if strings.TrimSpace(*patch.Text) == "" {
			return fmt.Errorf("%w: todo text cannot be empty", models.ErrValidation)
		}
		sets = append(sets, "text = ?")
		args = append(args, *patch.Text)
	}
	if patch.Done != nil {
		sets = append(sets,
			"done = ?",
			"finished_at = CASE WHEN ? THEN COALESCE(finished_at, ?) ELSE NULL END",
		)
		args = append(args, *patch.Done, *patch.Done, r.clock().UTC().Format(TimestampLayout))
	}
	args = append(args, id)

	result, err := r.db.ExecContext(ctx,
		`UPDATE todos SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("failed to update todo %d: %w", id, err)
	}

	return requireAffected(result, id)
}

// DeleteTodo removes a todo from the database
func (r *TodoRepo) DeleteTodo(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}

	return requireAffected(result, id)
}

func (r *TodoRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func filterClause(filter models.Filter) (string, error) {
	switch filter {
	case models.FilterAll, "":
		return "", nil
	case models.FilterDone:
		return " WHERE done = 1", nil
	case models.FilterUndone:
		return " WHERE done = 0", nil
	default:
		return "", fmt.Errorf("%w: invalid filter %q", models.ErrValidation, filter)
	}
}

func requireAffected(result sql.Result, id int) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("todo %d: %w", id, models.ErrNotFound)
	}
	return nil
}

func scanTodo(row rowScanner) (*models.Todo, error) {
	var (
		todo       models.Todo
		finishedAt sql.NullTime
		createdAt  sql.NullTime
	)
	if err := row.Scan(&todo.ID, &todo.Text, &todo.Done, &finishedAt, &createdAt); err != nil {
		return nil, err
	}
	todo.FinishedAt = NullTimeToPtr(finishedAt)
	todo.CreatedAt = NullTimeToTime(createdAt)
	return &todo, nil
}
