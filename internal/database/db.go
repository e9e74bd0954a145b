// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/todo/internal/models"
)

// Registered driver names
const (
	// DriverModernc is the pure Go driver and the default
	DriverModernc = "sqlite"
	// DriverCgo is github.com/mattn/go-sqlite3, available when built with cgo
	DriverCgo = "sqlite3"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Options controls how the database is opened
type Options struct {
	Path   string
	Driver string
}

// DefaultPath returns ~/.todo/todos.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".todo", "todos.db"), nil
}

// Open opens (creating if needed) the database file, applies pragmas and
// ensures the schema exists. Every failure wraps models.ErrStorageUnavailable.
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	driver := opts.Driver
	if driver == "" {
		driver = DriverModernc
	}
	if driver != DriverModernc && driver != DriverCgo {
		return nil, fmt.Errorf("%w: unknown driver %q", models.ErrStorageUnavailable, driver)
	}

	path := opts.Path
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, fmt.Errorf("%w: %w", models.ErrStorageUnavailable, err)
		}
	}

	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: failed to create directory: %w", models.ErrStorageUnavailable, err)
		}
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", models.ErrStorageUnavailable, err)
	}

	// SQLite only supports one writer; a single connection also keeps
	// :memory: databases alive for the lifetime of the pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("%w: database ping failed: %w", models.ErrStorageUnavailable, err)
	}

	if err := applyPragmas(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("%w: %w", models.ErrStorageUnavailable, err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("%w: failed to run migrations: %w", models.ErrStorageUnavailable, err)
	}

	slog.Debug("database opened", "path", path, "driver", driver)
	return db, nil
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		// SQLite will retry for this duration on a locked database
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}
	return nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
