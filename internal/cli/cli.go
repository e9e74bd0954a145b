package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	closers []io.Closer
}

// Options selects the config file and database for NewCLI.
// Empty fields fall back to the environment, the config file, then defaults.
type Options struct {
	ConfigPath string
	DBPath     string
	Logger     *slog.Logger
}

// New wraps an already built App
func New(application *app.App, cfg *config.Config) *CLI {
	if cfg == nil {
		cfg = config.Default()
	}
	return &CLI{App: application, Config: cfg}
}

// NewCLI loads configuration and opens the database
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbOpts := database.Options{
		Path:   cfg.Database.Path,
		Driver: cfg.Database.Driver,
	}
	if opts.DBPath != "" {
		dbOpts.Path = opts.DBPath
	}

	var appOpts []app.Option
	if opts.Logger != nil {
		appOpts = append(appOpts, app.WithLogger(opts.Logger))
	}

	application, err := app.Open(ctx, dbOpts, appOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return New(application, cfg), nil
}

// AddCloser registers a resource released by Close, after the App
func (c *CLI) AddCloser(closer io.Closer) {
	c.closers = append(c.closers, closer)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	var firstErr error
	if c.App != nil {
		firstErr = c.App.Close()
	}
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
