/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package payroll

import (
	"context"
	"embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/epms-project/epms/internal/service/common/db"
)

//go:embed db/migrations/*.sql
var migrations embed.FS

// migrationSource returns the embedded payroll migrations
func migrationSource() (source.Driver, error) {
	driver, err := iofs.New(migrations, "db/migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to create migrations source: %w", err)
	}
	return driver, nil
}

// StartMigration brings the payroll schema to the latest version. SIGINT and SIGTERM stop it
// after the current step.
func StartMigration(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver, err := migrationSource()
	if err != nil {
		return err
	}

	pgConfig, err := db.GetPgConfig()
	if err != nil {
		return fmt.Errorf("failed to get database configuration: %w", err)
	}

	if _, err := db.RunMigrations(ctx, pgConfig, driver); err != nil {
		return fmt.Errorf("failed to migrate payroll schema: %w", err)
	}
	return nil
}
