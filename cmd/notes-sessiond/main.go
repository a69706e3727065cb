package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/jwtauth/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"
	"github.com/tendant/simple-notes/pkg/accounts"
	"github.com/tendant/simple-notes/pkg/config"
)

type Config struct {
	ServerConfig config.ServerConfig
	AppConfig    app.AppConfig
}

func main() {
	cfg := Config{}
	if err := config.LoadServerConfig(&cfg.ServerConfig); err != nil {
		slog.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}
	cleanenv.ReadEnv(&cfg.AppConfig)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     config.ParseLogLevel(cfg.ServerConfig.LogLevel),
	}))
	slog.SetDefault(logger)

	repo, err := newRepository(context.Background(), cfg.ServerConfig)
	if err != nil {
		slog.Error("Failed creating account repository", "store", cfg.ServerConfig.Store, "err", err)
		os.Exit(1)
	}

	jwtConfig := cfg.ServerConfig.JwtConfig
	issuer := accounts.NewTokenIssuer(jwtConfig.Secret, jwtConfig.TokenTTL)
	service := accounts.NewService(repo, issuer,
		accounts.WithMinPasswordLength(cfg.ServerConfig.MinPasswordLength),
	)
	tokenAuth := jwtauth.New("HS256", []byte(jwtConfig.Secret), nil)

	server := app.DefaultApp()
	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	server.R.Mount(cfg.ServerConfig.Prefix, accounts.Handler(accounts.NewHandle(service, tokenAuth)))
	slog.Info("Session service routes mounted", "prefix", cfg.ServerConfig.Prefix, "store", cfg.ServerConfig.Store)

	server.Run()
}

func newRepository(ctx context.Context, cfg config.ServerConfig) (accounts.Repository, error) {
	if cfg.Store != config.StorePostgres {
		return accounts.NewInMemoryRepository(), nil
	}

	dbConfig := cfg.DatabaseConfig.ToDbConfig()
	pool, err := dbutils.NewDbPool(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host, "port", dbConfig.Port, "user", dbConfig.User)
		return nil, err
	}
	return accounts.NewPostgresRepository(pool)
}
