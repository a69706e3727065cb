package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorLoginAccent    lipgloss.Color = "#6200ee"
	colorRegisterAccent lipgloss.Color = "#1e88e5"
	colorError          lipgloss.Color = "#e53935"
	colorText           lipgloss.Color = "#eeeeee"
	colorSubtle         lipgloss.Color = "#9e9e9e"
	colorSurface        lipgloss.Color = "#2b2b2b"
)

// theme is the set of styles one screen renders with, derived from its
// accent color.
type theme struct {
	title     lipgloss.Style
	subtitle  lipgloss.Style
	label     lipgloss.Style
	focused   lipgloss.Style
	button    lipgloss.Style
	busy      lipgloss.Style
	link      lipgloss.Style
	help      lipgloss.Style
	alert     lipgloss.Style
	alertText lipgloss.Style
	container lipgloss.Style
}

func newTheme(accent lipgloss.Color) theme {
	return theme{
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		subtitle: lipgloss.NewStyle().Foreground(colorSubtle).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(colorSubtle),
		focused:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		button: lipgloss.NewStyle().
			Foreground(colorText).
			Background(accent).
			Padding(0, 3).
			MarginTop(1),
		busy: lipgloss.NewStyle().Foreground(accent).MarginTop(1),
		link: lipgloss.NewStyle().Foreground(accent).Underline(true),
		help: lipgloss.NewStyle().Foreground(colorSubtle).MarginTop(1),
		alert: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Background(colorSurface).
			Padding(1, 2),
		alertText: lipgloss.NewStyle().Foreground(colorError).Bold(true),
		container: lipgloss.NewStyle().Padding(1, 4),
	}
}
