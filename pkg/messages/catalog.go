package messages

import (
	"fmt"

	apperrors "github.com/tendant/simple-notes/pkg/errors"
)

// Supported locales
const (
	LocaleEnglish = "en"
	LocaleSpanish = "es"
)

// Locales lists every locale with a translation table, default first.
var Locales = []string{LocaleEnglish, LocaleSpanish}

var tables = map[string]map[apperrors.ErrorCode]string{
	LocaleEnglish: {
		apperrors.ErrCodeMissingRequired:    "All fields are required",
		apperrors.ErrCodeInvalidEmail:       "Invalid email",
		apperrors.ErrCodePasswordMismatch:   "Passwords do not match",
		apperrors.ErrCodePasswordTooShort:   "Password must be at least %d characters",
		apperrors.ErrCodeInvalidCredentials: "Incorrect user or password",
		apperrors.ErrCodeRegistrationFailed: "Registration error",
	},
	LocaleSpanish: {
		apperrors.ErrCodeMissingRequired:    "Todos los campos son obligatorios",
		apperrors.ErrCodeInvalidEmail:       "Correo electrónico inválido",
		apperrors.ErrCodePasswordMismatch:   "Las contraseñas no coinciden",
		apperrors.ErrCodePasswordTooShort:   "La contraseña debe tener al menos %d caracteres",
		apperrors.ErrCodeInvalidCredentials: "Usuario o contraseña incorrecto",
		apperrors.ErrCodeRegistrationFailed: "Error al registrar",
	},
}

// Catalog resolves user-visible alert text for error codes in one locale.
// The zero value is an English catalog.
type Catalog struct {
	locale string
}

// New returns a catalog for locale, falling back to English when the locale
// has no table.
func New(locale string) Catalog {
	if _, ok := tables[locale]; !ok {
		locale = LocaleEnglish
	}
	return Catalog{locale: locale}
}

// Locale returns the locale the catalog resolves to.
func (c Catalog) Locale() string {
	if c.locale == "" {
		return LocaleEnglish
	}
	return c.locale
}

// Text returns the message for code formatted with args. Unknown codes
// return the code itself so nothing is ever shown blank.
func (c Catalog) Text(code apperrors.ErrorCode, args ...any) string {
	format, ok := tables[c.Locale()][code]
	if !ok {
		format, ok = tables[LocaleEnglish][code]
	}
	if !ok {
		return string(code)
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Error builds a structured error whose message is the localized text.
func (c Catalog) Error(code apperrors.ErrorCode, args ...any) *apperrors.Error {
	return apperrors.New(code, c.Text(code, args...))
}
