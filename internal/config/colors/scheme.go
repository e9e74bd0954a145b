package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (selected filter tab, cursor)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // input while adding
	Edit   string `yaml:"edit"`   // input while editing
	Delete string `yaml:"delete"` // delete confirmation

	// List colors
	SelectedBg  string `yaml:"selected_bg"`
	DoneText    string `yaml:"done_text"`
	InputBorder string `yaml:"input_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // muted/placeholder text
	Normal string `yaml:"normal"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Create, preset.Create)
	fill(&c.Edit, preset.Edit)
	fill(&c.Delete, preset.Delete)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.DoneText, preset.DoneText)
	fill(&c.InputBorder, preset.InputBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
}
