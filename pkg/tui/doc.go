// Package tui renders the credential screens as a Bubble Tea program.
//
//	app := tui.NewApp(client, policy)
//	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
//
// Routes map to screens: "/" is LoginScreen, "/register" is RegisterScreen
// and "/inicio" is HomeScreen. Navigation always mounts a new screen, so
// credentials never survive a route change.
//
// Keys on the forms: enter submits, tab and shift+tab move between fields,
// ctrl+n switches between sign in and registration. While a request is in
// flight the form ignores input. Alerts are modal and close with enter or
// esc. ctrl+c quits from anywhere.
package tui
