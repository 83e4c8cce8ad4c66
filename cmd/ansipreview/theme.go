package main

import "github.com/charmbracelet/lipgloss"

// previewTheme is a trimmed palette for the demo's chrome: the screen
// frame, status line and key hints. View renders with Border, Highlight
// and TextDim; Text is kept in the table but not rendered.
type previewTheme struct {
	Name      string
	Border    lipgloss.Color
	Text      lipgloss.Color
	TextDim   lipgloss.Color
	Highlight lipgloss.Color
}

var previewThemes = map[string]previewTheme{
	"dark": {
		Name:      "dark",
		Border:    lipgloss.Color("#45475A"),
		Text:      lipgloss.Color("#CDD6F4"),
		TextDim:   lipgloss.Color("#6C7086"),
		Highlight: lipgloss.Color("#F5C2E7"),
	},
	"light": {
		Name:      "light",
		Border:    lipgloss.Color("#CBD5E1"),
		Text:      lipgloss.Color("#1E293B"),
		TextDim:   lipgloss.Color("#94A3B8"),
		Highlight: lipgloss.Color("#A855F7"),
	},
	"dracula": {
		Name:      "dracula",
		Border:    lipgloss.Color("#44475A"),
		Text:      lipgloss.Color("#F8F8F2"),
		TextDim:   lipgloss.Color("#6272A4"),
		Highlight: lipgloss.Color("#FF79C6"),
	},
	"nord": {
		Name:      "nord",
		Border:    lipgloss.Color("#434C5E"),
		Text:      lipgloss.Color("#ECEFF4"),
		TextDim:   lipgloss.Color("#4C566A"),
		Highlight: lipgloss.Color("#88C0D0"),
	},
	"solarized": {
		Name:      "solarized",
		Border:    lipgloss.Color("#073642"),
		Text:      lipgloss.Color("#839496"),
		TextDim:   lipgloss.Color("#586E75"),
		Highlight: lipgloss.Color("#B58900"),
	},
}

func themeOrDefault(name string) previewTheme {
	if t, ok := previewThemes[name]; ok {
		return t
	}
	return previewThemes["dark"]
}
