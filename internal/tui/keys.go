package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/todo/internal/config"
)

// keyMap binds the configured key mappings to actions
type keyMap struct {
	Add          key.Binding
	Edit         key.Binding
	Delete       key.Binding
	Toggle       key.Binding
	NextFilter   key.Binding
	FilterAll    key.Binding
	FilterDone   key.Binding
	FilterUndone key.Binding
	Up           key.Binding
	Down         key.Binding
	Quit         key.Binding

	// Input and confirmation keys are fixed
	Submit  key.Binding
	Cancel  key.Binding
	Confirm key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Add:          key.NewBinding(key.WithKeys(km.AddTodo), key.WithHelp(km.AddTodo, "add")),
		Edit:         key.NewBinding(key.WithKeys(km.EditTodo), key.WithHelp(km.EditTodo, "edit")),
		Delete:       key.NewBinding(key.WithKeys(km.DeleteTodo), key.WithHelp(km.DeleteTodo, "delete")),
		Toggle:       key.NewBinding(key.WithKeys(km.ToggleTodo, "enter"), key.WithHelp(km.ToggleTodo, "toggle")),
		NextFilter:   key.NewBinding(key.WithKeys(km.NextFilter), key.WithHelp(km.NextFilter, "filter")),
		FilterAll:    key.NewBinding(key.WithKeys(km.FilterAll), key.WithHelp(km.FilterAll, "all")),
		FilterDone:   key.NewBinding(key.WithKeys(km.FilterDone), key.WithHelp(km.FilterDone, "done")),
		FilterUndone: key.NewBinding(key.WithKeys(km.FilterUndone), key.WithHelp(km.FilterUndone, "undone")),
		Up:           key.NewBinding(key.WithKeys(km.PrevTodo, "up"), key.WithHelp(km.PrevTodo+"/↑", "up")),
		Down:         key.NewBinding(key.WithKeys(km.NextTodo, "down"), key.WithHelp(km.NextTodo+"/↓", "down")),
		Quit:         key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),

		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
	}
}

// normalHelp lists the bindings shown in the status bar in NormalMode
func (k keyMap) normalHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Toggle, k.Delete, k.NextFilter, k.Quit}
}

// inputHelp lists the bindings shown while typing
func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
