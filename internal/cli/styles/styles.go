package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todo/internal/config/colors"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	IDStyle       lipgloss.Style
	DoneStyle     lipgloss.Style // For finished todo text
	ValueStyle    lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Plain()
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	IDStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	DoneStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(scheme.DoneText))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Delete))
}

// Plain disables all styling. It is the state until Init is called.
func Plain() {
	TitleStyle = lipgloss.NewStyle()
	SubtitleStyle = lipgloss.NewStyle()
	IDStyle = lipgloss.NewStyle()
	DoneStyle = lipgloss.NewStyle()
	ValueStyle = lipgloss.NewStyle()
	SuccessStyle = lipgloss.NewStyle()
	ErrorStyle = lipgloss.NewStyle()
}
