package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tendant/simple-notes/pkg/accounts"
	"github.com/tendant/simple-notes/pkg/config"
	"github.com/tendant/simple-notes/pkg/sessionapi"
	"github.com/tendant/simple-notes/pkg/tui"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage:\n  %s                    start the terminal UI\n  %s login <email>      sign in, password on stdin\n  %s register <email>   register, password and confirmation on stdin\n",
			os.Args[0], os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.LoadClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	client := newClient(cfg)
	policy := cfg.Policy()
	ctx := context.Background()

	if flag.NArg() > 0 {
		code := runHeadless(ctx, flag.Args(), os.Stdin, os.Stdout, os.Stderr, client, policy)
		closeLog()
		os.Exit(code)
	}

	app := tui.NewApp(client, policy, tui.WithContext(ctx))
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		slog.Error("Terminal UI failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger writes to NOTES_LOG_FILE, or nowhere, since the terminal
// belongs to the UI.
func newLogger(cfg config.ClientConfig) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: config.ParseLogLevel(cfg.LogLevel)}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
}

func newClient(cfg config.ClientConfig) sessionapi.Client {
	if cfg.Embedded {
		slog.Info("Using embedded session service")
		svc := accounts.NewService(
			accounts.NewInMemoryRepository(),
			accounts.NewTokenIssuer("embedded", accounts.DefaultTokenTTL),
			accounts.WithMinPasswordLength(cfg.MinPasswordLength),
		)
		return embeddedClient(svc)
	}
	slog.Info("Using session API", "url", cfg.APIURL, "prefix", cfg.APIPrefix)
	return sessionapi.NewHTTPClient(cfg.APIURL, sessionapi.WithPrefix(cfg.APIPrefix))
}

// embeddedClient calls the account service in-process
func embeddedClient(svc *accounts.Service) sessionapi.Client {
	return sessionapi.ClientFuncs{
		LoginFunc: func(ctx context.Context, email, password string) error {
			_, err := svc.Login(ctx, email, password)
			return err
		},
		RegisterFunc: func(ctx context.Context, email, password string) error {
			_, err := svc.Register(ctx, email, password)
			return err
		},
	}
}
