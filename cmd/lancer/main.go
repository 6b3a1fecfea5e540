package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/lancer/internal/auth"
	"github.com/alexanderramin/lancer/internal/cli"
	"github.com/alexanderramin/lancer/internal/config"
	"github.com/alexanderramin/lancer/internal/db"
	"github.com/alexanderramin/lancer/internal/domain"
	"github.com/alexanderramin/lancer/internal/live"
	"github.com/alexanderramin/lancer/internal/logging"
	"github.com/alexanderramin/lancer/internal/repository"
	"github.com/alexanderramin/lancer/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	accountRepo := repository.NewSQLiteAccountRepo(database)
	authSessionRepo := repository.NewSQLiteAuthSessionRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	clientRepo := repository.NewSQLiteClientRepo(database)
	paymentRepo := repository.NewSQLitePaymentRepo(database)

	// Wire the auth session and the live mirror. The mirror follows the
	// session: it starts watching on sign-in and tears down on sign-out.
	session := auth.NewSession()
	defer session.Close()

	hub := live.NewHub()
	mirror := live.NewMirror(projectRepo, clientRepo, paymentRepo, hub, log)
	ctx := context.Background()
	session.Subscribe(func(identity *domain.Identity) {
		if identity == nil {
			mirror.Stop()
			return
		}
		mirror.Start(ctx, identity.ID)
	})

	authSvc := auth.NewService(accountRepo, authSessionRepo,
		auth.NewFileTokenStore(cfg.SessionPath), session, log)
	if err := authSvc.Start(ctx); err != nil {
		// A broken persisted session degrades to signed-out.
		log.Warn("restoring session failed", "error", err)
	}

	app := &cli.App{
		Auth:     authSvc,
		Session:  session,
		Hub:      hub,
		Mirror:   mirror,
		Projects: service.NewProjectService(projectRepo, session, hub, log),
		Clients:  service.NewClientService(clientRepo, session, hub, log),
		Payments: service.NewPaymentService(paymentRepo, session, hub, log),
	}

	// Detect interactive terminal for form-based prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
