package theme

import "github.com/thenoetrevino/todo/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent      string
	Create      string
	Edit        string
	Delete      string
	SelectedBg  string
	DoneText    string
	InputBorder string
	Title       string
	Subtle      string
	Normal      string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Accent = scheme.Accent
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	SelectedBg = scheme.SelectedBg
	DoneText = scheme.DoneText
	InputBorder = scheme.InputBorder
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
}
