package colors

// Default returns the default color scheme (blue accent)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#007AFF",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#D9534F",

		SelectedBg:  "#3A3A3A",
		DoneText:    "#999999",
		InputBorder: "#DDDDDD",

		Title:  "#D0D0D0",
		Subtle: "#666666",
		Normal: "#D0D0D0",
	}
}
