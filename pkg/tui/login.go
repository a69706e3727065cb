package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	apperrors "github.com/tendant/simple-notes/pkg/errors"
	"github.com/tendant/simple-notes/pkg/navigator"
	"github.com/tendant/simple-notes/pkg/sessionapi"
	"github.com/tendant/simple-notes/pkg/workflow"
)

// LoginScreen collects email and password and signs in.
type LoginScreen struct {
	form *form
}

func NewLoginScreen(ctx context.Context, client sessionapi.Client, policy workflow.Policy) *LoginScreen {
	text := labelsFor(policy.Locale)
	cfg := formConfig{
		title:  text.loginTitle,
		button: text.loginButton,
		busy:   text.loginBusy,
		link:   text.loginLink,
		other:  navigator.RouteRegister,
		fields: []field{fieldEmail, fieldPassword},
		accent: colorLoginAccent,
	}
	return &LoginScreen{form: newForm(ctx, cfg, workflow.LoginFlow(policy), client, text)}
}

func (s *LoginScreen) Route() navigator.Route { return navigator.RouteLogin }

func (s *LoginScreen) Init() tea.Cmd { return s.form.init() }

func (s *LoginScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	return s, s.form.update(msg)
}

func (s *LoginScreen) View() string { return s.form.view() }

// State returns the current form state.
func (s *LoginScreen) State() workflow.State { return s.form.state }

// Alert returns the alert being shown, nil when none.
func (s *LoginScreen) Alert() *apperrors.Error { return s.form.alert }
