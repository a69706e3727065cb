package tui

import "github.com/tendant/simple-notes/pkg/messages"

// labels holds the static screen text for one locale
type labels struct {
	loginTitle     string
	loginButton    string
	loginBusy      string
	loginLink      string
	registerTitle  string
	registerButton string
	registerBusy   string
	registerLink   string
	email          string
	password       string
	confirmation   string
	homeTitle      string
	homeBody       string
	alertDismiss   string
	formHelp       string
	homeHelp       string
}

var labelTables = map[string]labels{
	messages.LocaleEnglish: {
		loginTitle:     "Sign in",
		loginButton:    "Sign in",
		loginBusy:      "Signing in...",
		loginLink:      "No account? ctrl+n to register",
		registerTitle:  "Create account",
		registerButton: "Register",
		registerBusy:   "Registering...",
		registerLink:   "Already have an account? ctrl+n to sign in",
		email:          "Email",
		password:       "Password",
		confirmation:   "Confirm password",
		homeTitle:      "Notes",
		homeBody:       "You are signed in.",
		alertDismiss:   "enter: ok",
		formHelp:       "tab: next field • enter: submit • ctrl+c: quit",
		homeHelp:       "l: sign out • q: quit",
	},
	messages.LocaleSpanish: {
		loginTitle:     "Iniciar sesión",
		loginButton:    "Ingresar",
		loginBusy:      "Ingresando...",
		loginLink:      "¿No tienes cuenta? ctrl+n para registrarte",
		registerTitle:  "Crear cuenta",
		registerButton: "Registrarse",
		registerBusy:   "Registrando...",
		registerLink:   "¿Ya tienes cuenta? ctrl+n para iniciar sesión",
		email:          "Correo electrónico",
		password:       "Contraseña",
		confirmation:   "Confirmar contraseña",
		homeTitle:      "Notas",
		homeBody:       "Sesión iniciada.",
		alertDismiss:   "enter: aceptar",
		formHelp:       "tab: siguiente campo • enter: enviar • ctrl+c: salir",
		homeHelp:       "l: cerrar sesión • q: salir",
	},
}

func labelsFor(locale string) labels {
	if l, ok := labelTables[locale]; ok {
		return l
	}
	return labelTables[messages.LocaleEnglish]
}
