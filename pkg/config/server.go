package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	dbutils "github.com/tendant/db-utils/db"
	"github.com/tendant/simple-notes/pkg/validation"
)

// Account store backends
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// DatabaseConfig holds PostgreSQL connection settings for the account store
type DatabaseConfig struct {
	Host     string `env:"SESSIOND_PG_HOST" env-default:"localhost"`
	Port     uint16 `env:"SESSIOND_PG_PORT" env-default:"5432"`
	Database string `env:"SESSIOND_PG_DATABASE" env-default:"notes_db"`
	User     string `env:"SESSIOND_PG_USER" env-default:"notes"`
	Password string `env:"SESSIOND_PG_PASSWORD" env-default:"pwd"`
}

// ToDbConfig converts the config to a db-utils DbConfig
func (d DatabaseConfig) ToDbConfig() dbutils.DbConfig {
	return dbutils.DbConfig{
		Host:     d.Host,
		Port:     d.Port,
		Database: d.Database,
		User:     d.User,
		Password: d.Password,
	}
}

// JwtConfig holds access token settings
type JwtConfig struct {
	Secret   string        `env:"SESSIOND_JWT_SECRET" env-default:"very-secure-jwt-secret"`
	TokenTTL time.Duration `env:"SESSIOND_TOKEN_TTL" env-default:"1h"`
}

// ServerConfig configures the development session service
type ServerConfig struct {
	Prefix            string `env:"SESSIOND_PREFIX" env-default:"/api/session"`
	Store             string `env:"SESSIOND_STORE" env-default:"memory"`
	MinPasswordLength int    `env:"SESSIOND_MIN_PASSWORD_LENGTH" env-default:"8"`
	LogLevel          string `env:"SESSIOND_LOG_LEVEL" env-default:"info"`
	DatabaseConfig    DatabaseConfig
	JwtConfig         JwtConfig
}

// LoadServerConfig reads SESSIOND_* variables into cfg and validates them.
func LoadServerConfig(cfg *ServerConfig) error {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("failed to read server config: %w", err)
	}
	return cfg.Validate()
}

func (c ServerConfig) Validate() error {
	return validation.Validate(
		func() validation.ValidationErrors {
			errs := validation.CollectErrors(
				validation.RequireNonEmpty("SESSIOND_JWT_SECRET", c.JwtConfig.Secret),
				validation.RequirePositiveDuration("SESSIOND_TOKEN_TTL", c.JwtConfig.TokenTTL),
				validation.RequirePositive("SESSIOND_MIN_PASSWORD_LENGTH", c.MinPasswordLength),
				validation.RequireOneOf("SESSIOND_STORE", c.Store, []string{StoreMemory, StorePostgres}),
				validation.RequireOneOf("SESSIOND_LOG_LEVEL", c.LogLevel, LogLevels),
			)
			if c.Store == StorePostgres {
				if err := validation.RequireNonEmpty("SESSIOND_PG_HOST", c.DatabaseConfig.Host); err != nil {
					errs = append(errs, *err)
				}
			}
			return errs
		},
	)
}
