package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/radpat/internal/colormap"
)

// Theme defines the explorer colour scheme. Plot colours the Braille
// panels, Accent marks the selected control.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Plot   lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Error  lipgloss.Color
}

var (
	ThemeNight = Theme{
		Name:   "night",
		Title:  lipgloss.Color("#00ffff"),
		Plot:   lipgloss.Color("#00ccff"),
		Accent: lipgloss.Color("#ff88ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666688"),
		Border: lipgloss.Color("#444466"),
		Error:  lipgloss.Color("#ff4444"),
	}

	ThemePhosphor = Theme{
		Name:   "phosphor",
		Title:  lipgloss.Color("#88ff88"),
		Plot:   lipgloss.Color("#00ff00"),
		Accent: lipgloss.Color("#ffff00"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Border: lipgloss.Color("#003300"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Title:  lipgloss.Color("#ffffff"),
		Plot:   lipgloss.Color("#cccccc"),
		Accent: lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Border: lipgloss.Color("#444444"),
		Error:  lipgloss.Color("#ff0000"),
	}

	// ThemeHeat takes its colours from the surface colour map.
	ThemeHeat = Theme{
		Name:   "heat",
		Title:  hexOf(colormap.For(1)),
		Plot:   hexOf(colormap.For(0.75)),
		Accent: hexOf(colormap.For(0.25)),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  hexOf(colormap.For(0)),
		Border: lipgloss.Color("#2d1b2e"),
		Error:  lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{
		ThemeNight,
		ThemePhosphor,
		ThemeMinimal,
		ThemeHeat,
	}
)

// GetTheme returns a theme by name, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func hexOf(c colormap.Color) lipgloss.Color {
	hex, _ := colormap.Hex(c)
	return lipgloss.Color(hex)
}
