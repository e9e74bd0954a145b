package core

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todo/internal/config"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
	"github.com/thenoetrevino/todo/internal/tui"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
func New(ctx context.Context, service todoservice.Service, cfg *config.Config, logger *slog.Logger) *App {
	model := tui.InitialModel(ctx, service, cfg, logger)
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update delegates to Model.Update and stores the result.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := a.model.Update(msg)
	if m, ok := updatedModel.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View renders the current state of the application.
func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
