package workflow

import (
	"context"
	"fmt"
	"unicode/utf8"

	apperrors "github.com/tendant/simple-notes/pkg/errors"
	"github.com/tendant/simple-notes/pkg/messages"
	"github.com/tendant/simple-notes/pkg/navigator"
	"github.com/tendant/simple-notes/pkg/sessionapi"
	"github.com/tendant/simple-notes/pkg/validation"
)

// DefaultMinPasswordLength is the registration minimum when the policy sets none.
const DefaultMinPasswordLength = 8

// Policy carries the tunables of both flows.
type Policy struct {
	MinPasswordLength int
	Locale            string
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{
		MinPasswordLength: DefaultMinPasswordLength,
		Locale:            messages.LocaleEnglish,
	}
}

func (p Policy) minPasswordLength() int {
	if p.MinPasswordLength <= 0 {
		return DefaultMinPasswordLength
	}
	return p.MinPasswordLength
}

// Transition is the result of applying one event to a State.
type Transition struct {
	State State
	// Err is the user-visible failure to report, if any.
	Err *apperrors.Error
	// Route is set when the screen must navigate.
	Route navigator.Route
	// Call is set when the remote operation must be issued.
	Call bool
}

// Flow describes one credential workflow: its precondition chain, the remote
// operation it delegates to, and where it goes on success. Flows are values
// and hold no per-screen state.
type Flow struct {
	name    string
	check   func(State) *apperrors.Error
	call    func(ctx context.Context, c sessionapi.Client, email, password string) error
	failure apperrors.ErrorCode
	success navigator.Route
	catalog messages.Catalog
}

// LoginFlow validates email and password, calls Login and goes to the
// authenticated area.
func LoginFlow(p Policy) Flow {
	cat := messages.New(p.Locale)
	return Flow{
		name:  "login",
		check: func(s State) *apperrors.Error { return CheckLogin(s, cat) },
		call: func(ctx context.Context, c sessionapi.Client, email, password string) error {
			return c.Login(ctx, email, password)
		},
		failure: apperrors.ErrCodeInvalidCredentials,
		success: navigator.RouteHome,
		catalog: cat,
	}
}

// RegisterFlow validates email, password and confirmation, calls Register and
// goes back to the login entry point.
func RegisterFlow(p Policy) Flow {
	cat := messages.New(p.Locale)
	minLen := p.minPasswordLength()
	return Flow{
		name:  "register",
		check: func(s State) *apperrors.Error { return CheckRegistration(s, minLen, cat) },
		call: func(ctx context.Context, c sessionapi.Client, email, password string) error {
			return c.Register(ctx, email, password)
		},
		failure: apperrors.ErrCodeRegistrationFailed,
		success: navigator.RouteLogin,
		catalog: cat,
	}
}

// Name is "login" or "register".
func (f Flow) Name() string { return f.name }

// Catalog returns the message catalog the flow reports with.
func (f Flow) Catalog() messages.Catalog { return f.catalog }

// Begin handles a submission. A submission while one is in flight returns
// the state unchanged with nothing to do. A failed precondition returns an
// Idle state and the error. Otherwise the state becomes Submitting and
// Call is set.
func (f Flow) Begin(s State) Transition {
	if s.InProgress() {
		return Transition{State: s}
	}
	if err := f.check(s); err != nil {
		s.Status = Idle
		return Transition{State: s, Err: err}
	}
	s.Status = Submitting
	return Transition{State: s, Call: true}
}

// Call issues the remote operation for s. A panicking client is reported as
// an ordinary failure so the submission always settles.
func (f Flow) Call(ctx context.Context, c sessionapi.Client, s State) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.Internal(fmt.Sprintf("session call panicked: %v", r))
		}
	}()
	return f.call(ctx, c, s.Email, s.Password)
}

// Settle applies the outcome of Call. The returned state is never
// Submitting. Every remote failure is reported with the flow's single
// failure message; the cause stays wrapped for logging.
func (f Flow) Settle(s State, callErr error) Transition {
	if callErr != nil {
		s.Status = Idle
		return Transition{
			State: s,
			Err:   apperrors.Wrap(callErr, f.failure, f.catalog.Text(f.failure)),
		}
	}
	s.Status = NavigatedAway
	return Transition{State: s, Route: f.success}
}

// CheckLogin runs the login precondition chain and returns the first failure.
func CheckLogin(s State, cat messages.Catalog) *apperrors.Error {
	if s.Email == "" || s.Password == "" {
		return cat.Error(apperrors.ErrCodeMissingRequired)
	}
	if !validation.IsValidEmail(s.Email) {
		return cat.Error(apperrors.ErrCodeInvalidEmail)
	}
	return nil
}

// CheckRegistration runs the registration precondition chain and returns
// the first failure. Password length is counted in characters.
func CheckRegistration(s State, minPasswordLength int, cat messages.Catalog) *apperrors.Error {
	if s.Email == "" || s.Password == "" || s.Confirmation == "" {
		return cat.Error(apperrors.ErrCodeMissingRequired)
	}
	if s.Password != s.Confirmation {
		return cat.Error(apperrors.ErrCodePasswordMismatch)
	}
	if !validation.IsValidEmail(s.Email) {
		return cat.Error(apperrors.ErrCodeInvalidEmail)
	}
	if utf8.RuneCountInString(s.Password) < minPasswordLength {
		return cat.Error(apperrors.ErrCodePasswordTooShort, minPasswordLength).
			WithDetail("min_length", minPasswordLength)
	}
	return nil
}
