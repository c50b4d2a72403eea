package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the terminal colour scheme.
type Theme struct {
	Name   string
	Helix  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
}

var (
	ThemeMono = Theme{
		Name:   "mono",
		Helix:  lipgloss.Color("#ffffff"),
		Text:   lipgloss.Color("#8c8c8c"),
		Muted:  lipgloss.Color("#3c3c3c"),
		Accent: lipgloss.Color("#ffffff"),
	}

	ThemeRetro = Theme{
		Name:   "retro",
		Helix:  lipgloss.Color("#00ff00"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Helix:  lipgloss.Color("#0077be"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#ffd700"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Helix:  lipgloss.Color("#ff6b6b"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Accent: lipgloss.Color("#ff9ff3"),
	}

	Themes = []Theme{ThemeMono, ThemeRetro, ThemeOcean, ThemeSunset}
)

// GetTheme returns a theme by name, falling back to mono.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMono
}

// NextTheme cycles through Themes.
func NextTheme(cur Theme) Theme {
	for i, t := range Themes {
		if t.Name == cur.Name {
			return Themes[(i+1)%len(Themes)]
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
