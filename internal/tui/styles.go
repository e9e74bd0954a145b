package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/todo/internal/tui/theme"
)

// styles holds every style the screen renders with, built from the theme
type styles struct {
	title       lipgloss.Style
	tab         lipgloss.Style
	activeTab   lipgloss.Style
	item        lipgloss.Style
	selected    lipgloss.Style
	done        lipgloss.Style
	finished    lipgloss.Style
	empty       lipgloss.Style
	input       lipgloss.Style
	addInput    lipgloss.Style
	editInput   lipgloss.Style
	confirm     lipgloss.Style
	statusBar   lipgloss.Style
	modeBadge   lipgloss.Style
	buttonLabel lipgloss.Style
}

func newStyles() styles {
	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.InputBorder)).
		Padding(0, 1)

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Title)).
			MarginBottom(1),
		tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Padding(0, 1),
		activeTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)).
			Underline(true).
			Padding(0, 1),
		item: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Normal)),
		selected: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.SelectedBg)),
		done: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color(theme.DoneText)),
		finished: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(theme.Subtle)),
		empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Padding(1, 2),
		input:     inputBox,
		addInput:  inputBox.BorderForeground(lipgloss.Color(theme.Create)),
		editInput: inputBox.BorderForeground(lipgloss.Color(theme.Edit)),
		confirm: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Delete)),
		statusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			MarginTop(1),
		modeBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)),
		buttonLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)),
	}
}
