package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	apperrors "github.com/tendant/simple-notes/pkg/errors"
	"github.com/tendant/simple-notes/pkg/navigator"
	"github.com/tendant/simple-notes/pkg/sessionapi"
	"github.com/tendant/simple-notes/pkg/workflow"
)

type field int

const (
	fieldEmail field = iota
	fieldPassword
	fieldConfirmation
)

// formConfig is what distinguishes the login form from the registration form
type formConfig struct {
	title  string
	button string
	busy   string
	link   string
	other  navigator.Route
	fields []field
	accent lipgloss.Color
}

// form drives a workflow.Flow from the event loop. The remote call runs in
// a tea.Cmd and comes back as a settledMsg; every state change happens in
// update.
type form struct {
	ctx    context.Context
	cfg    formConfig
	flow   workflow.Flow
	client sessionapi.Client
	text   labels
	theme  theme

	state   workflow.State
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model
	alert   *apperrors.Error
}

func newForm(ctx context.Context, cfg formConfig, flow workflow.Flow, client sessionapi.Client, text labels) *form {
	f := &form{
		ctx:    ctx,
		cfg:    cfg,
		flow:   flow,
		client: client,
		text:   text,
		theme:  newTheme(cfg.accent),
	}
	for _, fl := range cfg.fields {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 256
		switch fl {
		case fieldEmail:
			in.Placeholder = "user@example.com"
		case fieldPassword, fieldConfirmation:
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		f.inputs = append(f.inputs, in)
	}
	f.inputs[0].Focus()
	f.spinner = spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(f.theme.busy))
	return f
}

func (f *form) init() tea.Cmd {
	return textinput.Blink
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case settledMsg:
		return f.settle(msg.err)
	case spinner.TickMsg:
		if !f.state.InProgress() {
			return nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return f.key(msg)
	}

	// cursor blink and the like
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) key(msg tea.KeyMsg) tea.Cmd {
	if f.alert != nil {
		switch msg.String() {
		case "enter", "esc":
			f.alert = nil
		}
		return nil
	}
	if f.state.InProgress() {
		return nil
	}

	switch msg.String() {
	case "enter":
		return f.submit()
	case "tab", "down":
		return f.setFocus((f.focus + 1) % len(f.inputs))
	case "shift+tab", "up":
		return f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
	case "ctrl+n":
		return navigate(f.cfg.other)
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.sync()
	return cmd
}

func (f *form) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// sync copies the input values into the workflow state
func (f *form) sync() {
	for i, fl := range f.cfg.fields {
		v := f.inputs[i].Value()
		switch fl {
		case fieldEmail:
			f.state = f.state.WithEmail(v)
		case fieldPassword:
			f.state = f.state.WithPassword(v)
		case fieldConfirmation:
			f.state = f.state.WithConfirmation(v)
		}
	}
}

func (f *form) submit() tea.Cmd {
	t := f.flow.Begin(f.state)
	f.state = t.State
	if t.Err != nil {
		slog.Debug("Submission rejected", "flow", f.flow.Name(), "code", t.Err.Code)
		f.alert = t.Err
		return nil
	}
	if !t.Call {
		return nil
	}

	slog.Debug("Submitting", "flow", f.flow.Name())
	ctx, flow, client, s := f.ctx, f.flow, f.client, f.state
	call := func() tea.Msg {
		return settledMsg{err: flow.Call(ctx, client, s)}
	}
	return tea.Batch(call, f.spinner.Tick)
}

func (f *form) settle(callErr error) tea.Cmd {
	if !f.state.InProgress() {
		return nil
	}
	t := f.flow.Settle(f.state, callErr)
	f.state = t.State
	if t.Err != nil {
		slog.Info("Session call failed", "flow", f.flow.Name(), "code", apperrors.GetCode(callErr), "error", callErr)
		f.alert = t.Err
		return nil
	}
	slog.Debug("Session call succeeded", "flow", f.flow.Name(), "route", t.Route)
	return navigate(t.Route)
}

func (f *form) label(fl field) string {
	switch fl {
	case fieldPassword:
		return f.text.password
	case fieldConfirmation:
		return f.text.confirmation
	default:
		return f.text.email
	}
}

func (f *form) view() string {
	var b strings.Builder
	b.WriteString(f.theme.title.Render(f.cfg.title))
	b.WriteString("\n")

	for i, fl := range f.cfg.fields {
		style := f.theme.label
		if i == f.focus {
			style = f.theme.focused
		}
		b.WriteString(style.Render(f.label(fl)))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n\n")
	}

	if f.state.InProgress() {
		b.WriteString(f.theme.busy.Render(f.spinner.View() + " " + f.cfg.busy))
	} else {
		b.WriteString(f.theme.button.Render(f.cfg.button))
	}
	b.WriteString("\n\n")
	b.WriteString(f.theme.link.Render(f.cfg.link))
	b.WriteString("\n")
	b.WriteString(f.theme.help.Render(f.text.formHelp))

	body := f.theme.container.Render(b.String())
	if f.alert == nil {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, f.alertView())
}

func (f *form) alertView() string {
	content := f.theme.alertText.Render(f.alert.Message) + "\n\n" + f.theme.help.Render(f.text.alertDismiss)
	return f.theme.alert.Render(content)
}
