package app

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/todo/internal/database"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo *database.Repository

	logger *slog.Logger

	// Service layer (business logic)
	TodoService todoservice.Service
}

// New creates a new App over an open database.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	var repoOpts []database.RepositoryOption
	if cfg.now != nil {
		repoOpts = append(repoOpts, database.WithClock(cfg.now))
	}
	repo := database.NewRepository(db, repoOpts...)

	return &App{
		repo:        repo,
		logger:      cfg.logger,
		TodoService: todoservice.NewService(repo, cfg.logger),
	}
}

// Open opens the database described by dbOpts and builds the App on it.
func Open(ctx context.Context, dbOpts database.Options, opts ...Option) (*App, error) {
	db, err := database.Open(ctx, dbOpts)
	if err != nil {
		return nil, err
	}
	return New(db, opts...), nil
}

// Logger returns the logger shared by the services
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.repo.Close()
}
