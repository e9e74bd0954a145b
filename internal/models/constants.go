package models

import (
	"fmt"
	"strings"
)

// Filter selects which todos a list query returns
type Filter string

const (
	FilterAll    Filter = "all"
	FilterDone   Filter = "done"
	FilterUndone Filter = "undone"
)

// Filters lists every filter in display order
var Filters = []Filter{FilterAll, FilterDone, FilterUndone}

// ParseFilter maps a user-supplied string to a Filter.
// The empty string means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FilterAll):
		return FilterAll, nil
	case string(FilterDone):
		return FilterDone, nil
	case string(FilterUndone):
		return FilterUndone, nil
	default:
		return "", fmt.Errorf("%w: invalid filter %q (must be: all, done, undone)", ErrValidation, s)
	}
}

// Title returns the label shown on filter tabs
func (f Filter) Title() string {
	switch f {
	case FilterDone:
		return "Done"
	case FilterUndone:
		return "Undone"
	default:
		return "All"
	}
}

// Next cycles to the following filter, wrapping around
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// MaxTextLength is the maximum number of runes in a todo's text
const MaxTextLength = 500
