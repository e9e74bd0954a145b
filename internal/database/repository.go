package database

import (
	"database/sql"
	"time"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TodoRepo
	db *sql.DB
}

// RepositoryOption configures a Repository
type RepositoryOption func(*Repository)

// WithClock overrides the time source used for finished_at
func WithClock(now func() time.Time) RepositoryOption {
	return func(r *Repository) {
		r.TodoRepo.now = now
	}
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB, opts ...RepositoryOption) *Repository {
	r := &Repository{
		TodoRepo: &TodoRepo{db: db, now: time.Now},
		db:       db,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Close closes the underlying database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
