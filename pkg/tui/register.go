package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	apperrors "github.com/tendant/simple-notes/pkg/errors"
	"github.com/tendant/simple-notes/pkg/navigator"
	"github.com/tendant/simple-notes/pkg/sessionapi"
	"github.com/tendant/simple-notes/pkg/workflow"
)

// RegisterScreen collects email, password and confirmation and creates an
// account. On success it returns to the login screen.
type RegisterScreen struct {
	form *form
}

func NewRegisterScreen(ctx context.Context, client sessionapi.Client, policy workflow.Policy) *RegisterScreen {
	text := labelsFor(policy.Locale)
	cfg := formConfig{
		title:  text.registerTitle,
		button: text.registerButton,
		busy:   text.registerBusy,
		link:   text.registerLink,
		other:  navigator.RouteLogin,
		fields: []field{fieldEmail, fieldPassword, fieldConfirmation},
		accent: colorRegisterAccent,
	}
	return &RegisterScreen{form: newForm(ctx, cfg, workflow.RegisterFlow(policy), client, text)}
}

func (s *RegisterScreen) Route() navigator.Route { return navigator.RouteRegister }

func (s *RegisterScreen) Init() tea.Cmd { return s.form.init() }

func (s *RegisterScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	return s, s.form.update(msg)
}

func (s *RegisterScreen) View() string { return s.form.view() }

func (s *RegisterScreen) State() workflow.State { return s.form.state }

func (s *RegisterScreen) Alert() *apperrors.Error { return s.form.alert }
