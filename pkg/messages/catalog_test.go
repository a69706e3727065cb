package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "github.com/tendant/simple-notes/pkg/errors"
)

func TestCatalogText(t *testing.T) {
	en := New(LocaleEnglish)
	es := New(LocaleSpanish)

	t.Run("English", func(t *testing.T) {
		assert.Equal(t, "All fields are required", en.Text(apperrors.ErrCodeMissingRequired))
		assert.Equal(t, "Incorrect user or password", en.Text(apperrors.ErrCodeInvalidCredentials))
		assert.Equal(t, "Password must be at least 8 characters", en.Text(apperrors.ErrCodePasswordTooShort, 8))
	})

	t.Run("Spanish", func(t *testing.T) {
		assert.Equal(t, "Todos los campos son obligatorios", es.Text(apperrors.ErrCodeMissingRequired))
		assert.Equal(t, "Las contraseñas no coinciden", es.Text(apperrors.ErrCodePasswordMismatch))
		assert.Equal(t, "Correo electrónico inválido", es.Text(apperrors.ErrCodeInvalidEmail))
		assert.Equal(t, "La contraseña debe tener al menos 8 caracteres", es.Text(apperrors.ErrCodePasswordTooShort, 8))
		assert.Equal(t, "Usuario o contraseña incorrecto", es.Text(apperrors.ErrCodeInvalidCredentials))
		assert.Equal(t, "Error al registrar", es.Text(apperrors.ErrCodeRegistrationFailed))
	})

	t.Run("Fallbacks", func(t *testing.T) {
		assert.Equal(t, LocaleEnglish, New("fr").Locale())
		assert.Equal(t, LocaleEnglish, Catalog{}.Locale())
		assert.Equal(t, "Invalid email", Catalog{}.Text(apperrors.ErrCodeInvalidEmail))
		assert.Equal(t, "TOKEN_INVALID", en.Text(apperrors.ErrCodeTokenInvalid))
	})

	t.Run("EveryLocaleCoversEnglish", func(t *testing.T) {
		for _, locale := range Locales {
			for code := range tables[LocaleEnglish] {
				_, ok := tables[locale][code]
				assert.True(t, ok, "%s missing %s", locale, code)
			}
		}
	})
}

func TestCatalogError(t *testing.T) {
	err := New(LocaleSpanish).Error(apperrors.ErrCodeInvalidEmail)
	assert.Equal(t, apperrors.ErrCodeInvalidEmail, err.Code)
	assert.Equal(t, "Correo electrónico inválido", err.Message)
}
