package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/accounts-api/internal/config"
	"github.com/phrazzld/accounts-api/internal/platform/postgres"
)

// isMigrationCommand reports whether command is a supported goose command.
func isMigrationCommand(command string) bool {
	return slices.Contains(postgres.MigrationCommands, command)
}

// runMigrationCommand connects to the configured database, runs command and
// closes the connection.
func runMigrationCommand(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	return migrateDatabase(ctx, db, command, logger)
}

// migrateDatabase runs a migration command, tagging every log line of the
// operation with a correlation ID.
func migrateDatabase(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	migrationLogger := logger.With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"command", command,
	)

	startTime := time.Now()
	migrationLogger.Info("Starting migration operation",
		"operation", fmt.Sprintf("goose %s", command))

	if err := postgres.Migrate(ctx, db, command, migrationLogger); err != nil {
		migrationLogger.Error("Migration operation failed",
			"error", err,
			"duration_ms", time.Since(startTime).Milliseconds())
		return err
	}

	migrationLogger.Info("Migration operation completed",
		"duration_ms", time.Since(startTime).Milliseconds())
	return nil
}

// maskDatabaseURL masks the password in a database URL for safe logging.
func maskDatabaseURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}

	if parsedURL.User != nil {
		if _, hasPassword := parsedURL.User.Password(); hasPassword {
			parsedURL.User = url.UserPassword(parsedURL.User.Username(), "xxxxx")
		}
	}

	return parsedURL.String()
}

// extractHostFromURL extracts the hostname from a database URL for logging
func extractHostFromURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "unknown"
	}

	return parsedURL.Hostname()
}
