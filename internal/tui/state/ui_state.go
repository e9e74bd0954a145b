package state

import "github.com/thenoetrevino/todo/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	AddMode                       // Typing a new todo
	EditMode                      // Rewriting the selected todo
	DeleteConfirmMode             // Confirming deletion of the selected todo
)

// String returns the mode name shown in the status bar
func (m Mode) String() string {
	switch m {
	case AddMode:
		return "ADD"
	case EditMode:
		return "EDIT"
	case DeleteConfirmMode:
		return "DELETE"
	default:
		return "NORMAL"
	}
}

// UIState manages the user interface state: the cursor, the active filter,
// terminal dimensions, the current interaction mode and in-flight reads.
type UIState struct {
	// cursor is the index of the selected todo in the visible list
	cursor int

	filter models.Filter

	width  int
	height int

	mode Mode

	// targetID is the todo being edited or pending deletion
	targetID int

	// loadSeq numbers list reads; only the latest one is applied
	loadSeq uint64
}

// NewUIState creates a UIState in NormalMode showing all todos.
func NewUIState() *UIState {
	return &UIState{
		filter: models.FilterAll,
		mode:   NormalMode,
	}
}

// Cursor returns the index of the selected todo.
func (s *UIState) Cursor() int {
	return s.cursor
}

// SetCursor moves the cursor without bounds checking; see ClampCursor.
func (s *UIState) SetCursor(i int) {
	s.cursor = i
}

// MoveCursor moves the cursor by delta, staying within [0, count).
func (s *UIState) MoveCursor(delta, count int) {
	s.cursor += delta
	s.ClampCursor(count)
}

// ClampCursor keeps the cursor inside a list of count items.
func (s *UIState) ClampCursor(count int) {
	if s.cursor >= count {
		s.cursor = count - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// Filter returns the active status filter.
func (s *UIState) Filter() models.Filter {
	return s.filter
}

// SetFilter switches the filter and resets the cursor to the top.
func (s *UIState) SetFilter(f models.Filter) {
	s.filter = f
	s.cursor = 0
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
// Returning to NormalMode forgets the target todo.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
	if mode == NormalMode {
		s.targetID = 0
	}
}

// TargetID returns the todo being edited or deleted.
func (s *UIState) TargetID() int {
	return s.targetID
}

// SetTarget enters mode for the todo with the given ID.
func (s *UIState) SetTarget(mode Mode, id int) {
	s.mode = mode
	s.targetID = id
}

// NextLoadSeq starts a new list read and returns its sequence number.
// Reads started earlier become stale.
func (s *UIState) NextLoadSeq() uint64 {
	s.loadSeq++
	return s.loadSeq
}

// IsLatestLoad reports whether seq belongs to the most recently started read.
func (s *UIState) IsLatestLoad(seq uint64) bool {
	return seq == s.loadSeq
}
