package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tendant/simple-notes/pkg/navigator"
	"github.com/tendant/simple-notes/pkg/sessionapi"
	"github.com/tendant/simple-notes/pkg/workflow"
)

// App is the root tea.Model. It keeps the router and the single mounted
// screen, and mounts a fresh screen whenever the route is replaced.
type App struct {
	ctx    context.Context
	client sessionapi.Client
	policy workflow.Policy
	router *navigator.Router

	screen Screen
	width  int
	height int
}

// Option configures an App
type Option func(*App)

// WithContext sets the context session calls run under
func WithContext(ctx context.Context) Option {
	return func(a *App) {
		a.ctx = ctx
	}
}

// WithInitialRoute mounts route instead of the login screen
func WithInitialRoute(route navigator.Route) Option {
	return func(a *App) {
		a.router = navigator.NewRouter(route)
	}
}

func NewApp(client sessionapi.Client, policy workflow.Policy, opts ...Option) *App {
	a := &App{
		ctx:    context.Background(),
		client: client,
		policy: policy,
		router: navigator.NewRouter(navigator.RouteLogin),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.screen = a.mount(a.router.Current())
	return a
}

// Router exposes the navigation state
func (a *App) Router() *navigator.Router { return a.router }

// Screen returns the mounted screen
func (a *App) Screen() Screen { return a.screen }

func (a *App) mount(route navigator.Route) Screen {
	switch route {
	case navigator.RouteRegister:
		return NewRegisterScreen(a.ctx, a.client, a.policy)
	case navigator.RouteHome:
		return NewHomeScreen(a.policy.Locale)
	default:
		return NewLoginScreen(a.ctx, a.client, a.policy)
	}
}

func (a *App) Init() tea.Cmd {
	return a.screen.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case NavigateMsg:
		a.router.Replace(msg.Route)
		a.screen = a.mount(msg.Route)
		slog.Debug("Screen mounted", "route", msg.Route)
		return a, a.screen.Init()
	}

	var cmd tea.Cmd
	a.screen, cmd = a.screen.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	view := a.screen.View()
	if a.width == 0 || a.height == 0 {
		return view
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, view)
}
