package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the flight viewer.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Landed  lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeFairway = Theme{
		Name:    "fairway",
		Primary: lipgloss.Color("86"),
		Accent:  lipgloss.Color("49"),
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("245"),
		Landed:  lipgloss.Color("82"),
		Warning: lipgloss.Color("220"),
	}

	ThemeLinks = Theme{
		Name:    "links",
		Primary: lipgloss.Color("#c8b273"),
		Accent:  lipgloss.Color("#7fa35b"),
		Text:    lipgloss.Color("#f0ead6"),
		Muted:   lipgloss.Color("#8a8470"),
		Landed:  lipgloss.Color("#9acd32"),
		Warning: lipgloss.Color("#ff8c42"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Landed:  lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	Themes = []Theme{ThemeFairway, ThemeLinks, ThemeMinimal}
)

// GetTheme returns a theme by name, falling back to fairway.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeFairway
}

// NextTheme returns the theme after t in Themes.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
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

type styles struct {
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style
	landed lipgloss.Style
	warn   lipgloss.Style
	canvas lipgloss.Style
	stats  lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		header: lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		graph:  lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		landed: lipgloss.NewStyle().Foreground(t.Landed).Bold(true),
		warn:   lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		canvas: lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 2),
		stats:  lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(1, 2).Width(40),
	}
}
