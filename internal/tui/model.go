package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/models"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
	"github.com/thenoetrevino/todo/internal/tui/state"
	"github.com/thenoetrevino/todo/internal/tui/theme"
)

// Placeholder is shown in the empty text input
const Placeholder = "Write a todo..."

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	service todoservice.Service
	logger  *slog.Logger

	appState *state.AppState
	uiState  *state.UIState

	input  textinput.Model
	keys   keyMap
	help   help.Model
	styles styles
}

// InitialModel creates the TUI model. The list is read by Init.
func InitialModel(ctx context.Context, service todoservice.Service, cfg *config.Config, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	theme.Init(cfg.ColorScheme)

	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = ""
	ti.CharLimit = models.MaxTextLength

	return Model{
		ctx:      ctx,
		service:  service,
		logger:   logger,
		appState: state.NewAppState(),
		uiState:  state.NewUIState(),
		input:    ti,
		keys:     newKeyMap(cfg.KeyMappings),
		help:     help.New(),
		styles:   newStyles(),
	}
}

// Init reads the initial list
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.loadTodos()
}

// selectedTodo returns the todo under the cursor, or nil for an empty list
func (m Model) selectedTodo() *models.Todo {
	return m.appState.Todo(m.uiState.Cursor())
}

// Mode returns the current interaction mode
func (m Model) Mode() state.Mode {
	return m.uiState.Mode()
}

// Filter returns the active status filter
func (m Model) Filter() models.Filter {
	return m.uiState.Filter()
}

// Todos returns the todos currently on screen
func (m Model) Todos() []*models.Todo {
	return m.appState.Todos()
}
