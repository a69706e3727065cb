package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	apperrors "github.com/tendant/simple-notes/pkg/errors"
	"github.com/tendant/simple-notes/pkg/navigator"
	"github.com/tendant/simple-notes/pkg/sessionapi"
	"github.com/tendant/simple-notes/pkg/workflow"
)

// runHeadless drives one workflow without the terminal UI. The password,
// and for register the confirmation, are read one per line from stdin.
// It returns the process exit code.
func runHeadless(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, client sessionapi.Client, policy workflow.Policy) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "usage: notes login|register <email>")
		return 2
	}
	command, email := args[0], args[1]

	var arrived navigator.Route
	nav := navigator.NavigatorFunc(func(route navigator.Route) { arrived = route })
	alerter := workflow.AlertFunc(func(err *apperrors.Error) { fmt.Fprintln(stderr, err.Message) })

	var w *workflow.Workflow
	switch command {
	case "login":
		w = workflow.NewLogin(client, nav, policy, workflow.WithAlerter(alerter))
	case "register":
		w = workflow.NewRegister(client, nav, policy, workflow.WithAlerter(alerter))
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", command)
		return 2
	}

	lines := bufio.NewScanner(stdin)
	readLine := func() string {
		if lines.Scan() {
			return lines.Text()
		}
		return ""
	}

	w.SetEmail(email)
	w.SetPassword(readLine())
	if command == "register" {
		w.SetConfirmation(readLine())
	}

	res := w.Submit(ctx)
	if res.Err != nil {
		return 1
	}
	fmt.Fprintln(stdout, arrived)
	return 0
}
