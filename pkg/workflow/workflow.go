package workflow

import (
	"context"
	"log/slog"
	"sync"

	apperrors "github.com/tendant/simple-notes/pkg/errors"
	"github.com/tendant/simple-notes/pkg/navigator"
	"github.com/tendant/simple-notes/pkg/sessionapi"
)

// Alerter is the user-visible error surface. Alert receives errors whose
// Message is the literal text to show.
type Alerter interface {
	Alert(err *apperrors.Error)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(err *apperrors.Error)

func (f AlertFunc) Alert(err *apperrors.Error) { f(err) }

// Result is what one Submit produced.
type Result struct {
	State State
	// Err is the reported failure, nil on success or when skipped.
	Err *apperrors.Error
	// Route is where the workflow navigated, empty unless it succeeded.
	Route navigator.Route
	// Skipped is set when a submission was already in flight.
	Skipped bool
}

// Workflow binds a Flow to one screen instance. It is safe for concurrent
// use: the Submitting status guards against duplicate submissions and the
// lock is never held across the remote call.
type Workflow struct {
	flow      Flow
	client    sessionapi.Client
	navigator navigator.Navigator
	alerter   Alerter
	logger    *slog.Logger

	mu    sync.Mutex
	state State
}

// Option configures a Workflow
type Option func(*Workflow)

// WithAlerter sets the callback that receives every reported failure
func WithAlerter(a Alerter) Option {
	return func(w *Workflow) {
		w.alerter = a
	}
}

// WithLogger sets the logger, slog.Default() otherwise
func WithLogger(l *slog.Logger) Option {
	return func(w *Workflow) {
		w.logger = l
	}
}

// New creates a workflow for flow with empty credentials.
func New(flow Flow, client sessionapi.Client, nav navigator.Navigator, opts ...Option) *Workflow {
	w := &Workflow{
		flow:      flow,
		client:    client,
		navigator: nav,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewLogin creates a login workflow.
func NewLogin(client sessionapi.Client, nav navigator.Navigator, p Policy, opts ...Option) *Workflow {
	return New(LoginFlow(p), client, nav, opts...)
}

// NewRegister creates a registration workflow.
func NewRegister(client sessionapi.Client, nav navigator.Navigator, p Policy, opts ...Option) *Workflow {
	return New(RegisterFlow(p), client, nav, opts...)
}

// State returns a snapshot of the form state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// InProgress reports whether a submission is in flight.
func (w *Workflow) InProgress() bool {
	return w.State().InProgress()
}

func (w *Workflow) SetEmail(v string) {
	w.update(func(s State) State { return s.WithEmail(v) })
}

func (w *Workflow) SetPassword(v string) {
	w.update(func(s State) State { return s.WithPassword(v) })
}

func (w *Workflow) SetConfirmation(v string) {
	w.update(func(s State) State { return s.WithConfirmation(v) })
}

// Reset clears the credentials, as when the screen mounts again. It does
// nothing while a submission is in flight.
func (w *Workflow) Reset() {
	w.update(func(s State) State {
		if s.InProgress() {
			return s
		}
		return State{}
	})
}

func (w *Workflow) update(fn func(State) State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = fn(w.state)
}

// Submit runs the precondition chain and, when it passes, the remote call.
// It blocks until the call settles. Failures are passed to the Alerter and
// returned in the Result; success replaces the route after the in-flight
// status has been cleared.
func (w *Workflow) Submit(ctx context.Context) Result {
	w.mu.Lock()
	begin := w.flow.Begin(w.state)
	w.state = begin.State
	w.mu.Unlock()

	if !begin.Call {
		if begin.Err == nil {
			w.logger.Debug("Submission ignored, already in flight", "flow", w.flow.Name())
			return Result{State: begin.State, Skipped: true}
		}
		w.logger.Debug("Submission rejected", "flow", w.flow.Name(), "code", begin.Err.Code)
		w.alert(begin.Err)
		return Result{State: begin.State, Err: begin.Err}
	}

	w.logger.Debug("Submitting", "flow", w.flow.Name())
	callErr := w.flow.Call(ctx, w.client, begin.State)

	w.mu.Lock()
	settle := w.flow.Settle(w.state, callErr)
	w.state = settle.State
	w.mu.Unlock()

	if settle.Err != nil {
		w.logger.Info("Session call failed", "flow", w.flow.Name(), "code", apperrors.GetCode(callErr), "error", callErr)
		w.alert(settle.Err)
		return Result{State: settle.State, Err: settle.Err}
	}

	w.logger.Debug("Session call succeeded", "flow", w.flow.Name(), "route", settle.Route)
	w.navigator.Replace(settle.Route)
	return Result{State: settle.State, Route: settle.Route}
}

func (w *Workflow) alert(err *apperrors.Error) {
	if w.alerter != nil {
		w.alerter.Alert(err)
	}
}
