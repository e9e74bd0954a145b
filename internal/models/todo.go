package models

import "time"

// Todo represents a single item on the list
type Todo struct {
	ID         int        `json:"id"`
	Text       string     `json:"text"`
	Done       bool       `json:"done"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// GetID lets output formatters print just the identifier in quiet mode.
func (t *Todo) GetID() int {
	return t.ID
}

// IsFinished reports whether the todo carries a completion timestamp.
func (t *Todo) IsFinished() bool {
	return t.FinishedAt != nil
}

// Patch is a partial update for a todo.
// Nil fields are left unchanged.
type Patch struct {
	Text *string
	Done *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Text == nil && p.Done == nil
}
