package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Todos
	AddTodo    string `yaml:"add_todo"`
	EditTodo   string `yaml:"edit_todo"`
	DeleteTodo string `yaml:"delete_todo"`
	ToggleTodo string `yaml:"toggle_todo"`

	// Filters
	NextFilter   string `yaml:"next_filter"`
	FilterAll    string `yaml:"filter_all"`
	FilterDone   string `yaml:"filter_done"`
	FilterUndone string `yaml:"filter_undone"`

	// Navigation
	PrevTodo string `yaml:"prev_todo"`
	NextTodo string `yaml:"next_todo"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTodo:    "a",
		EditTodo:   "e",
		DeleteTodo: "d",
		ToggleTodo: "space",

		NextFilter:   "tab",
		FilterAll:    "1",
		FilterDone:   "2",
		FilterUndone: "3",

		PrevTodo: "k",
		NextTodo: "j",

		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.AddTodo, defaults.AddTodo)
	fill(&k.EditTodo, defaults.EditTodo)
	fill(&k.DeleteTodo, defaults.DeleteTodo)
	fill(&k.ToggleTodo, defaults.ToggleTodo)
	fill(&k.NextFilter, defaults.NextFilter)
	fill(&k.FilterAll, defaults.FilterAll)
	fill(&k.FilterDone, defaults.FilterDone)
	fill(&k.FilterUndone, defaults.FilterUndone)
	fill(&k.PrevTodo, defaults.PrevTodo)
	fill(&k.NextTodo, defaults.NextTodo)
	fill(&k.Quit, defaults.Quit)
}
