package tui

import "github.com/thenoetrevino/todo/internal/models"

// todosLoadedMsg carries a fresh read of the list for filter.
// seq orders reads so a slow one cannot overwrite a newer result.
type todosLoadedMsg struct {
	seq    uint64
	filter models.Filter
	todos  []*models.Todo
	total  int
	done   int
	err    error
}

// mutationDoneMsg reports the outcome of a create, update, toggle or delete
type mutationDoneMsg struct {
	op  string
	id  int
	err error
}
