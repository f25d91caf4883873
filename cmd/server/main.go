// Package main implements the entry point for the account service, a REST
// API that manages customer accounts stored in PostgreSQL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/accounts-api/internal/config"
	"github.com/phrazzld/accounts-api/internal/platform/logger"
	"github.com/phrazzld/accounts-api/internal/platform/postgres"
)

// options holds the parsed command line flags.
type options struct {
	migrate string
}

// main is the entry point for the account service.
// It loads configuration, sets up logging, connects to the database and
// either runs a migration command or serves HTTP until interrupted.
func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("Account service exited with error", "error", err)
		os.Exit(1)
	}
}

// run executes the service with the given command line arguments.
func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := initializeApp()
	if err != nil {
		return err
	}
	log := slog.Default()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.migrate != "" {
		return runMigrationCommand(ctx, cfg, opts.migrate, log)
	}

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := migrateDatabase(ctx, db, postgres.MigrateUp, log); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.Run(ctx)
}

// parseFlags parses the command line. Usage errors are written to output.
func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.migrate, "migrate", "",
		"run a migration command (up, down, reset, status, version) and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.migrate != "" && !isMigrationCommand(opts.migrate) {
		return options{}, fmt.Errorf("%w: %q", errUnknownMigrationCommand, opts.migrate)
	}

	return opts, nil
}

var errUnknownMigrationCommand = errors.New("unknown migration command")

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"auto_migrate", cfg.Database.AutoMigrate)
	slog.Debug("Database configuration", "url", maskDatabaseURL(cfg.Database.URL))

	return cfg, nil
}
