package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tendant/simple-notes/pkg/navigator"
)

// HomeScreen is the authenticated area.
type HomeScreen struct {
	text  labels
	theme theme
}

func NewHomeScreen(locale string) *HomeScreen {
	return &HomeScreen{
		text:  labelsFor(locale),
		theme: newTheme(colorLoginAccent),
	}
}

func (s *HomeScreen) Route() navigator.Route { return navigator.RouteHome }

func (s *HomeScreen) Init() tea.Cmd { return nil }

func (s *HomeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "l":
			return s, navigate(navigator.RouteLogin)
		case "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *HomeScreen) View() string {
	return s.theme.container.Render(
		s.theme.title.Render(s.text.homeTitle) + "\n" +
			s.text.homeBody + "\n" +
			s.theme.help.Render(s.text.homeHelp),
	)
}
