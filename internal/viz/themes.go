package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name        string
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Accent      lipgloss.Color
	Background  lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Button      lipgloss.Color
	ButtonHover lipgloss.Color
	Warning     lipgloss.Color
}

// Available themes
var (
	ThemeDefault = Theme{
		Name:        "default",
		Primary:     lipgloss.Color("#ffffff"),
		Secondary:   lipgloss.Color("#ffff00"), // Sun
		Accent:      lipgloss.Color("#00ccff"),
		Background:  lipgloss.Color("#000000"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#888888"),
		Button:      lipgloss.Color("#323232"),
		ButtonHover: lipgloss.Color("#646464"),
		Warning:     lipgloss.Color("#ffaa00"),
	}

	ThemeRetroGreen = Theme{
		Name:        "retro",
		Primary:     lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:   lipgloss.Color("#00cc00"),
		Accent:      lipgloss.Color("#88ff88"),
		Background:  lipgloss.Color("#001100"),
		Text:        lipgloss.Color("#00ff00"),
		Muted:       lipgloss.Color("#005500"),
		Button:      lipgloss.Color("#003300"),
		ButtonHover: lipgloss.Color("#006600"),
		Warning:     lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:        "ocean",
		Primary:     lipgloss.Color("#0077be"),
		Secondary:   lipgloss.Color("#00a8cc"),
		Accent:      lipgloss.Color("#ffd700"),
		Background:  lipgloss.Color("#001a33"),
		Text:        lipgloss.Color("#e0f0ff"),
		Muted:       lipgloss.Color("#4488aa"),
		Button:      lipgloss.Color("#0a2a4a"),
		ButtonHover: lipgloss.Color("#1a4a7a"),
		Warning:     lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:        "sunset",
		Primary:     lipgloss.Color("#ff6b6b"), // Coral
		Secondary:   lipgloss.Color("#feca57"),
		Accent:      lipgloss.Color("#ff9ff3"),
		Background:  lipgloss.Color("#2d1b2e"),
		Text:        lipgloss.Color("#fff5f5"),
		Muted:       lipgloss.Color("#8b6b8c"),
		Button:      lipgloss.Color("#4a2b4c"),
		ButtonHover: lipgloss.Color("#6e4270"),
		Warning:     lipgloss.Color("#ffc048"),
	}

	// Default theme
	CurrentTheme = ThemeDefault

	// All available themes
	Themes = []Theme{
		ThemeDefault,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
