// Package workflow implements the validate, submit, navigate sequence behind
// the login and registration screens.
//
// # Overview
//
// A Flow is a pure description of one workflow. Its two transitions take a
// State and return a Transition:
//
//	t := flow.Begin(state)        // precondition chain, Idle -> Submitting
//	if t.Call {
//		err := flow.Call(ctx, client, t.State)
//		t = flow.Settle(t.State, err) // Submitting -> Idle | NavigatedAway
//	}
//
// Begin on a state that is already Submitting does nothing, which is what
// keeps a second tap from issuing a second call.
//
// Workflow wraps a Flow for callers that block on Submit (the headless CLI,
// tests). The terminal screens drive the Flow directly from their event loop
// and run Call in a tea.Cmd.
//
// # Precondition chains
//
// Login:
//  1. email and password non-empty
//  2. email well formed
//
// Registration:
//  1. email, password and confirmation non-empty
//  2. password equals confirmation
//  3. email well formed
//  4. password at least Policy.MinPasswordLength characters (default 8)
//
// Every remote failure collapses into one message per flow: "Incorrect user
// or password" for login, "Registration error" for registration.
package workflow
