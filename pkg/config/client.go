package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jinzhu/copier"
	"github.com/tendant/simple-notes/pkg/messages"
	"github.com/tendant/simple-notes/pkg/validation"
	"github.com/tendant/simple-notes/pkg/workflow"
)

// ClientConfig configures the notes client binary
type ClientConfig struct {
	APIURL            string `env:"NOTES_API_URL" env-default:"http://localhost:4000"`
	APIPrefix         string `env:"NOTES_API_PREFIX" env-default:"/api/session"`
	Embedded          bool   `env:"NOTES_EMBEDDED" env-default:"false"`
	Locale            string `env:"NOTES_LOCALE" env-default:"en"`
	MinPasswordLength int    `env:"NOTES_MIN_PASSWORD_LENGTH" env-default:"8"`
	LogFile           string `env:"NOTES_LOG_FILE"`
	LogLevel          string `env:"NOTES_LOG_LEVEL" env-default:"info"`
}

// LoadClientConfig reads NOTES_* variables and validates them.
func LoadClientConfig() (ClientConfig, error) {
	var cfg ClientConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read client config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the client configuration. The API URL is only required
// when the session service is remote.
func (c ClientConfig) Validate() error {
	return validation.Validate(
		func() validation.ValidationErrors {
			errs := validation.CollectErrors(
				validation.RequireOneOf("NOTES_LOCALE", c.Locale, messages.Locales),
				validation.RequirePositive("NOTES_MIN_PASSWORD_LENGTH", c.MinPasswordLength),
				validation.RequireOneOf("NOTES_LOG_LEVEL", c.LogLevel, LogLevels),
			)
			if !c.Embedded {
				if err := validation.RequireValidURL("NOTES_API_URL", c.APIURL); err != nil {
					errs = append(errs, *err)
				}
			}
			return errs
		},
	)
}

// Policy returns the workflow policy described by the configuration.
func (c ClientConfig) Policy() workflow.Policy {
	policy := workflow.DefaultPolicy()
	copier.Copy(&policy, &c)
	return policy
}
