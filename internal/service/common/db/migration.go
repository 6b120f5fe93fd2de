/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
)

// MigrationsTable is the table where golang-migrate records the applied version
const MigrationsTable = "schema_migrations"

// migrationConnectTimeout is passed to the pgx driver in seconds
const migrationConnectTimeout = 10

// MigrationURL returns the golang-migrate database URL for the configuration
func MigrationURL(pgc PgConfig) string {
	return fmt.Sprintf("%s&connect_timeout=%d&x-migrations-table=%s",
		pgc.URL("pgx5"), migrationConnectTimeout, MigrationsTable)
}

// migrationLogger sends golang-migrate messages to slog at debug level
type migrationLogger struct{}

func (migrationLogger) Printf(format string, v ...interface{}) {
	slog.Debug(fmt.Sprintf(format, v...))
}

func (migrationLogger) Verbose() bool {
	return true
}

// RunMigrations applies every pending migration of the source and returns the resulting schema
// version. Canceling the context stops after the migration in progress.
func RunMigrations(ctx context.Context, pgc PgConfig, src source.Driver) (uint, error) {
	m, err := migrate.NewWithSourceInstance("iofs", src, MigrationURL(pgc))
	if err != nil {
		return 0, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	m.Log = migrationLogger{}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			slog.Warn("Failed to close migrations", "source", srcErr, "database", dbErr)
		}
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			slog.Info("Stopping migrations after the current step")
			m.GracefulStop <- true
		case <-done:
		}
	}()

	start := time.Now()
	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("Schema is up to date")
	case err != nil:
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	slog.Info("Migrations completed", "version", version, "duration", time.Since(start))
	return version, nil
}
