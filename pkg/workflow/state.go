package workflow

import "fmt"

// Status is the submission status of one screen instance.
type Status int

const (
	// Idle accepts input and submissions.
	Idle Status = iota
	// Submitting has a remote call in flight; submissions are ignored.
	Submitting
	// NavigatedAway means the workflow succeeded and the screen was replaced.
	NavigatedAway
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case NavigatedAway:
		return "navigated_away"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// State is the screen-local form state. It is created empty when a screen
// mounts and discarded when the screen is replaced.
type State struct {
	Email        string
	Password     string
	Confirmation string
	Status       Status
}

// InProgress reports whether a submission is in flight.
func (s State) InProgress() bool {
	return s.Status == Submitting
}

// WithEmail returns s with the email replaced. Input is ignored while a
// submission is in flight.
func (s State) WithEmail(v string) State {
	if !s.InProgress() {
		s.Email = v
	}
	return s
}

// WithPassword returns s with the password replaced.
func (s State) WithPassword(v string) State {
	if !s.InProgress() {
		s.Password = v
	}
	return s
}

// WithConfirmation returns s with the confirmation replaced.
func (s State) WithConfirmation(v string) State {
	if !s.InProgress() {
		s.Confirmation = v
	}
	return s
}
