package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/models"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
	"github.com/thenoetrevino/todo/internal/testutil"
	"github.com/thenoetrevino/todo/internal/tui/state"
)

func TestMain(m *testing.M) {
	time.Local = time.UTC
	os.Exit(m.Run())
}

// setupTestModel builds a model over an in-memory database and runs Init
func setupTestModel(t *testing.T, items ...string) (Model, todoservice.Service) {
	t.Helper()

	service := todoservice.NewService(testutil.SetupTestRepo(t), testutil.DiscardLogger())
	for _, text := range items {
		_, err := service.CreateTodo(context.Background(), text)
		require.NoError(t, err)
	}

	return setupModelWithService(t, service), service
}

func setupModelWithService(t *testing.T, service todoservice.Service) Model {
	t.Helper()

	m := InitialModel(context.Background(), service, config.Default(), testutil.DiscardLogger())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return drain(t, m, m.Init())
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update must return a tui.Model")
	return model, cmd
}

// drain runs storage commands synchronously, feeding their results back
// into the model until no storage work is left
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()

	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case todosLoadedMsg, mutationDoneMsg:
			m, cmd = update(t, m, msg)
		default:
			return m
		}
	}
	return m
}

// keyPress builds a key press the way the terminal reports it
func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: k})
}

// press sends keys and drains any storage work they start
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = update(t, m, keyPress(k))
		if m.Mode() == state.NormalMode {
			m = drain(t, m, cmd)
		}
	}
	return m
}

// typeText types text into the focused input
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()

	for _, r := range text {
		k := string(r)
		if r == ' ' {
			k = "space"
		}
		m, _ = update(t, m, keyPress(k))
	}
	return m
}

func render(m Model) string {
	return ansi.Strip(m.View().Content)
}

func texts(todos []*models.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, todo := range todos {
		out = append(out, todo.Text)
	}
	return out
}

func TestInit_EmptyList(t *testing.T) {
	m, _ := setupTestModel(t)

	assert.Empty(t, m.Todos())
	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, models.FilterAll, m.Filter())

	view := m.View()
	assert.True(t, view.AltScreen)
	out := render(m)
	assert.Contains(t, out, Title)
	assert.Contains(t, out, EmptyMessage)
	assert.Contains(t, out, Placeholder)
	assert.Contains(t, out, "All (0)")
}

func TestInit_LoadsNewestFirst(t *testing.T) {
	m, _ := setupTestModel(t, "first", "second", "third")

	assert.Equal(t, []string{"third", "second", "first"}, texts(m.Todos()))
	assert.Contains(t, render(m), "> [ ] third")
}

func TestAddTodo(t *testing.T) {
	m, service := setupTestModel(t)

	m = press(t, m, "a")
	require.Equal(t, state.AddMode, m.Mode())
	assert.True(t, m.input.Focused())

	m = typeText(t, m, "Buy milk")
	m = press(t, m, "enter")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, []string{"Buy milk"}, texts(m.Todos()))
	assert.Empty(t, m.input.Value())
	assert.False(t, m.input.Focused())

	count, err := service.CountTodos(context.Background(), models.FilterAll)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAddTodo_WhitespaceIgnored(t *testing.T) {
	m, service := setupTestModel(t)

	m = press(t, m, "a")
	m = typeText(t, m, "   ")
	m, cmd := update(t, m, keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, state.AddMode, m.Mode())

	count, err := service.CountTodos(context.Background(), models.FilterAll)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAddTodo_TypingBindingKeys(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "a")
	m = typeText(t, m, "qed")

	assert.Equal(t, state.AddMode, m.Mode(), "bound keys are text while typing")
	assert.Equal(t, "qed", m.input.Value())
}

func TestAddTodo_EscCancels(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "a")
	m = typeText(t, m, "never mind")
	m = press(t, m, "esc")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Empty(t, m.input.Value())
	assert.Empty(t, m.Todos())
}

func TestEditTodo(t *testing.T) {
	m, _ := setupTestModel(t, "Buy milk")

	m = press(t, m, "e")
	require.Equal(t, state.EditMode, m.Mode())
	assert.Equal(t, "Buy milk", m.input.Value())
	assert.Contains(t, render(m), "[Save]")

	m = typeText(t, m, " today")
	m = press(t, m, "enter")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, []string{"Buy milk today"}, texts(m.Todos()))
	assert.Contains(t, render(m), "[Add]")
}

func TestEditTodo_EmptyListIgnored(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "e")
	assert.Equal(t, state.NormalMode, m.Mode())
}

func TestToggleTodo(t *testing.T) {
	m, _ := setupTestModel(t, "Pay rent")

	m = press(t, m, "space")

	require.Len(t, m.Todos(), 1)
	todo := m.Todos()[0]
	assert.True(t, todo.Done)
	require.NotNil(t, todo.FinishedAt)
	assert.True(t, testutil.FixedNow.Equal(*todo.FinishedAt))
	assert.Contains(t, render(m), "[x] Pay rent")
	assert.Contains(t, render(m), "Finished: 2025-03-14 09:26")

	m = press(t, m, "enter")

	todo = m.Todos()[0]
	assert.False(t, todo.Done)
	assert.Nil(t, todo.FinishedAt)
	assert.NotContains(t, render(m), "Finished:")
}

func TestDeleteTodo_Confirmed(t *testing.T) {
	m, _ := setupTestModel(t, "keep", "drop")

	m = press(t, m, "d")
	require.Equal(t, state.DeleteConfirmMode, m.Mode())
	assert.Contains(t, render(m), DeletePrompt)

	m = press(t, m, "y")

	assert.Equal(t, state.NormalMode, m.Mode())
	assert.Equal(t, []string{"keep"}, texts(m.Todos()))
}

func TestDeleteTodo_DefaultIsNo(t *testing.T) {
	for _, k := range []string{"n", "esc", "enter"} {
		t.Run(k, func(t *testing.T) {
			m, _ := setupTestModel(t, "keep", "also keep")

			m = press(t, m, "d", k)

			assert.Equal(t, state.NormalMode, m.Mode())
			assert.Len(t, m.Todos(), 2)
			assert.NotContains(t, render(m), DeletePrompt)
		})
	}
}

func TestFilters(t *testing.T) {
	m, service := setupTestModel(t, "a1", "a2", "a3")
	todos, err := service.ListTodos(context.Background(), models.FilterAll)
	require.NoError(t, err)
	require.NoError(t, service.SetDone(context.Background(), todos[1].ID, true))

	m = press(t, m, "tab")
	assert.Equal(t, models.FilterDone, m.Filter())
	assert.Equal(t, []string{"a2"}, texts(m.Todos()))

	m = press(t, m, "tab")
	assert.Equal(t, models.FilterUndone, m.Filter())
	assert.Equal(t, []string{"a3", "a1"}, texts(m.Todos()))
	out := render(m)
	assert.Contains(t, out, "All (3)")
	assert.Contains(t, out, "Done (1)")
	assert.Contains(t, out, "Undone (2)")

	m = press(t, m, "tab")
	assert.Equal(t, models.FilterAll, m.Filter())

	m = press(t, m, "2")
	assert.Equal(t, models.FilterDone, m.Filter())
	m = press(t, m, "3")
	assert.Equal(t, models.FilterUndone, m.Filter())
	m = press(t, m, "1")
	assert.Equal(t, models.FilterAll, m.Filter())
	assert.Len(t, m.Todos(), 3)
}

func TestToggleUnderFilterRemovesItem(t *testing.T) {
	m, _ := setupTestModel(t, "only")

	m = press(t, m, "3", "space")

	assert.Equal(t, models.FilterUndone, m.Filter())
	assert.Empty(t, m.Todos())
	assert.Contains(t, render(m), EmptyMessage)
}

func TestNavigation(t *testing.T) {
	m, _ := setupTestModel(t, "one", "two", "three")

	m = press(t, m, "j", "j", "j")
	assert.Equal(t, 2, m.uiState.Cursor())
	assert.Equal(t, "one", m.selectedTodo().Text)

	m = press(t, m, "k", "up")
	assert.Equal(t, 0, m.uiState.Cursor())

	m = press(t, m, "down", "d", "y")
	assert.Equal(t, []string{"three", "one"}, texts(m.Todos()))
	assert.Equal(t, 1, m.uiState.Cursor())

	m = press(t, m, "d", "y")
	assert.Equal(t, 0, m.uiState.Cursor(), "cursor is clamped after the last row goes")
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m, _ := setupTestModel(t)

			_, cmd := update(t, m, keyPress(k))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

// failingService fails every mutation and optionally every read
type failingService struct {
	todoservice.Service
	failReads bool
}

var errDiskGone = errors.New("disk gone")

func (f *failingService) ListTodos(ctx context.Context, filter models.Filter) ([]*models.Todo, error) {
	if f.failReads {
		return nil, errDiskGone
	}
	return f.Service.ListTodos(ctx, filter)
}

func (f *failingService) CreateTodo(context.Context, string) (*models.Todo, error) {
	return nil, errDiskGone
}

func (f *failingService) ToggleTodo(context.Context, int) (*models.Todo, error) {
	return nil, errDiskGone
}

func (f *failingService) DeleteTodo(context.Context, int) error {
	return errDiskGone
}

func TestStorageErrorsAreSwallowed(t *testing.T) {
	_, service := setupTestModel(t, "survivor")
	failing := &failingService{Service: service}
	m := setupModelWithService(t, failing)

	m = press(t, m, "space")
	m = press(t, m, "d", "y")
	m = press(t, m, "a")
	m = typeText(t, m, "lost")
	m = press(t, m, "enter")

	assert.Equal(t, state.NormalMode, m.Mode())
	require.Len(t, m.Todos(), 1)
	assert.Equal(t, "survivor", m.Todos()[0].Text)
	assert.False(t, m.Todos()[0].Done)
}

func TestFailedReloadKeepsPreviousList(t *testing.T) {
	_, service := setupTestModel(t, "visible")
	failing := &failingService{Service: service}
	m := setupModelWithService(t, failing)
	require.Len(t, m.Todos(), 1)

	failing.failReads = true
	m = press(t, m, "space")

	assert.Equal(t, []string{"visible"}, texts(m.Todos()))
}

func TestOutOfOrderLoadsKeepNewest(t *testing.T) {
	ctx := context.Background()
	m, service := setupTestModel(t, "first")

	older := m.loadTodos()
	olderMsg := older()

	_, err := service.CreateTodo(ctx, "second")
	require.NoError(t, err)
	newer := m.loadTodos()

	m, _ = update(t, m, newer())
	require.Equal(t, []string{"second", "first"}, texts(m.Todos()))

	// The slower read finishes last and must not roll the list back
	m, _ = update(t, m, olderMsg)
	assert.Equal(t, []string{"second", "first"}, texts(m.Todos()))
	assert.Equal(t, 2, m.appState.Count(models.FilterAll))
}

func TestListScrollsWithinWindowHeight(t *testing.T) {
	items := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		items = append(items, fmt.Sprintf("item %02d", i))
	}
	m, _ := setupTestModel(t, items...)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 12})

	out := render(m)
	assert.LessOrEqual(t, lipgloss.Height(out), 12)
	assert.Contains(t, out, "> [ ] item 20")
	assert.NotContains(t, out, "item 01")

	for range 19 {
		m = press(t, m, "down")
	}

	out = render(m)
	assert.LessOrEqual(t, lipgloss.Height(out), 12)
	assert.Contains(t, out, "> [ ] item 01")
	assert.NotContains(t, out, "item 20")
}

func TestViewFitsWindowWidth(t *testing.T) {
	m, _ := setupTestModel(t, strings.Repeat("long ", 40))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 24})

	for _, line := range strings.Split(render(m), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40, "line %q", line)
	}
}

func TestStaleLoadIgnored(t *testing.T) {
	m, _ := setupTestModel(t, "current")

	m, _ = update(t, m, todosLoadedMsg{filter: models.FilterDone, todos: []*models.Todo{{ID: 99, Text: "stale"}}})

	assert.Equal(t, []string{"current"}, texts(m.Todos()))
}
