package tui

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-notes/pkg/messages"
	"github.com/tendant/simple-notes/pkg/navigator"
	"github.com/tendant/simple-notes/pkg/sessionapi"
	"github.com/tendant/simple-notes/pkg/workflow"
)

type countingClient struct {
	loginErr    error
	registerErr error
	logins      atomic.Int32
	registers   atomic.Int32
	lastEmail   string
	lastPass    string
}

func (c *countingClient) Login(ctx context.Context, email, password string) error {
	c.logins.Add(1)
	c.lastEmail, c.lastPass = email, password
	return c.loginErr
}

func (c *countingClient) Register(ctx context.Context, email, password string) error {
	c.registers.Add(1)
	c.lastEmail, c.lastPass = email, password
	return c.registerErr
}

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func apply(t *testing.T, a *App, msg tea.Msg) (*App, tea.Cmd) {
	t.Helper()
	next, cmd := a.Update(msg)
	got, ok := next.(*App)
	if !ok {
		t.Fatalf("Update returned %T, want *App", next)
	}
	return got, cmd
}

func press(t *testing.T, a *App, msg tea.KeyMsg) *App {
	t.Helper()
	a, _ = apply(t, a, msg)
	return a
}

func typeText(t *testing.T, a *App, s string) *App {
	t.Helper()
	for _, r := range s {
		a = press(t, a, keyMsg(string(r)))
	}
	return a
}

// drain runs cmd and feeds back the messages this package produces.
// Spinner and cursor ticks are dropped since they re-arm timers.
func drain(t *testing.T, a *App, cmd tea.Cmd) (*App, bool) {
	t.Helper()
	quit := false
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 64 {
			t.Fatal("command chain exceeded max depth")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			quit = true
		case settledMsg, NavigateMsg:
			var next tea.Cmd
			a, next = apply(t, a, msg)
			queue = append(queue, next)
		}
	}
	return a, quit
}

func loginState(t *testing.T, a *App) workflow.State {
	t.Helper()
	s, ok := a.Screen().(*LoginScreen)
	require.True(t, ok, "screen is %T", a.Screen())
	return s.State()
}

func fillLogin(t *testing.T, a *App, email, password string) *App {
	t.Helper()
	a = typeText(t, a, email)
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	return typeText(t, a, password)
}

func TestApp_StartsOnLogin(t *testing.T) {
	a := NewApp(&countingClient{}, workflow.DefaultPolicy())
	assert.Equal(t, navigator.RouteLogin, a.Router().Current())
	assert.Equal(t, navigator.RouteLogin, a.Screen().Route())
	assert.Contains(t, a.View(), "Sign in")
}

func TestApp_LoginSuccessNavigatesHome(t *testing.T) {
	client := &countingClient{}
	a := NewApp(client, workflow.DefaultPolicy())
	a = fillLogin(t, a, "a@b.com", "secret")
	assert.Equal(t, workflow.State{Email: "a@b.com", Password: "secret"}, loginState(t, a))

	a, cmd := apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, loginState(t, a).InProgress())
	assert.Contains(t, a.View(), "Signing in...")

	a, _ = drain(t, a, cmd)

	assert.Equal(t, int32(1), client.logins.Load())
	assert.Equal(t, "a@b.com", client.lastEmail)
	assert.Equal(t, navigator.RouteHome, a.Router().Current())
	_, ok := a.Screen().(*HomeScreen)
	assert.True(t, ok)
}

func TestApp_DuplicateEnterCallsOnce(t *testing.T) {
	client := &countingClient{}
	a := NewApp(client, workflow.DefaultPolicy())
	a = fillLogin(t, a, "a@b.com", "secret")

	a, first := apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a, second := apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, second)

	// typing is frozen while submitting
	a = typeText(t, a, "zzz")
	assert.Equal(t, "secret", loginState(t, a).Password)

	a, _ = drain(t, a, first)
	assert.Equal(t, int32(1), client.logins.Load())
	assert.Equal(t, navigator.RouteHome, a.Router().Current())
}

func TestApp_LoginValidationAlert(t *testing.T) {
	client := &countingClient{}
	a := NewApp(client, workflow.DefaultPolicy())
	a = typeText(t, a, "a@b.com")

	a, cmd := apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	screen := a.Screen().(*LoginScreen)
	require.NotNil(t, screen.Alert())
	assert.Equal(t, "All fields are required", screen.Alert().Message)
	assert.Contains(t, a.View(), "All fields are required")
	assert.Zero(t, client.logins.Load())

	// the alert is modal
	a = typeText(t, a, "x")
	assert.Equal(t, "a@b.com", loginState(t, a).Email)

	a = press(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, a.Screen().(*LoginScreen).Alert())
	assert.False(t, loginState(t, a).InProgress())
}

func TestApp_LoginRejected(t *testing.T) {
	client := &countingClient{loginErr: errors.New("401")}
	a := NewApp(client, workflow.DefaultPolicy())
	a = fillLogin(t, a, "a@b.com", "wrong")

	a, cmd := apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a, _ = drain(t, a, cmd)

	assert.Equal(t, navigator.RouteLogin, a.Router().Current())
	screen := a.Screen().(*LoginScreen)
	require.NotNil(t, screen.Alert())
	assert.Equal(t, "Incorrect user or password", screen.Alert().Message)
	assert.False(t, screen.State().InProgress())

	// dismiss and retry is allowed
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
}

func TestApp_RegisterFlow(t *testing.T) {
	client := &countingClient{}
	a := NewApp(client, workflow.DefaultPolicy())

	a, cmd := apply(t, a, tea.KeyMsg{Type: tea.KeyCtrlN})
	a, _ = drain(t, a, cmd)
	require.Equal(t, navigator.RouteRegister, a.Router().Current())
	screen, ok := a.Screen().(*RegisterScreen)
	require.True(t, ok)
	assert.Contains(t, a.View(), "Create account")

	a = typeText(t, a, "new@b.com")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, "1234567")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, "1234567")

	a, cmd = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	require.NotNil(t, screen.Alert())
	assert.Equal(t, "Password must be at least 8 characters", screen.Alert().Message)
	assert.Zero(t, client.registers.Load())

	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a = press(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	a = typeText(t, a, "8")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, "8")
	assert.Equal(t, workflow.State{Email: "new@b.com", Password: "12345678", Confirmation: "12345678"}, screen.State())

	a, cmd = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a, _ = drain(t, a, cmd)

	assert.Equal(t, int32(1), client.registers.Load())
	assert.Equal(t, navigator.RouteLogin, a.Router().Current())
	// a fresh login screen with empty credentials
	assert.Equal(t, workflow.State{}, loginState(t, a))
}

func TestApp_RegisterRejected(t *testing.T) {
	client := &countingClient{registerErr: errors.New("conflict")}
	a := NewApp(client, workflow.DefaultPolicy(), WithInitialRoute(navigator.RouteRegister))

	a = typeText(t, a, "new@b.com")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, "password1")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, "password1")

	a, cmd := apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a, _ = drain(t, a, cmd)

	screen := a.Screen().(*RegisterScreen)
	require.NotNil(t, screen.Alert())
	assert.Equal(t, "Registration error", screen.Alert().Message)
	assert.Equal(t, navigator.RouteRegister, a.Router().Current())
}

func TestApp_HomeKeys(t *testing.T) {
	a := NewApp(&countingClient{}, workflow.DefaultPolicy(), WithInitialRoute(navigator.RouteHome))
	assert.Contains(t, a.View(), "You are signed in.")

	_, cmd := apply(t, a, keyMsg("q"))
	_, quit := drain(t, a, cmd)
	assert.True(t, quit)

	a, cmd = apply(t, a, keyMsg("l"))
	a, _ = drain(t, a, cmd)
	assert.Equal(t, navigator.RouteLogin, a.Router().Current())
}

func TestApp_CtrlCQuits(t *testing.T) {
	a := NewApp(&countingClient{}, workflow.DefaultPolicy())
	_, cmd := apply(t, a, tea.KeyMsg{Type: tea.KeyCtrlC})
	_, quit := drain(t, a, cmd)
	assert.True(t, quit)
}

func TestApp_SpanishLabels(t *testing.T) {
	policy := workflow.Policy{Locale: messages.LocaleSpanish}
	a := NewApp(sessionapi.ClientFuncs{}, policy)
	assert.Contains(t, a.View(), "Iniciar sesión")

	a, _ = apply(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, a.View(), "Todos los campos son obligatorios")
}

func TestApp_WindowSize(t *testing.T) {
	a := NewApp(&countingClient{}, workflow.DefaultPolicy())
	a, cmd := apply(t, a, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	assert.Contains(t, a.View(), "Sign in")
}
