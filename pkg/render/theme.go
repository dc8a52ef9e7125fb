package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles for chrome the program itself draws.
// Sanitized replies carry their own ANSI codes and never pass through it.
type Theme struct {
	Name    string
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
	}
}

// MonoTheme returns a style-free theme for pipes and NO_COLOR.
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Success: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
	}
}

// ThemeFor returns the theme matching the resolved color mode.
func ThemeFor(colors bool) Theme {
	if colors {
		return DefaultTheme()
	}
	return MonoTheme()
}
