package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tendant/simple-notes/pkg/navigator"
)

// Screen is one routed view. The App owns exactly one at a time and
// replaces it on navigation, which discards its state.
type Screen interface {
	Route() navigator.Route
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
}

// NavigateMsg asks the App to replace the current screen.
type NavigateMsg struct {
	Route navigator.Route
}

func navigate(route navigator.Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}

// settledMsg carries the outcome of a session call back to the screen
// that issued it.
type settledMsg struct {
	err error
}
