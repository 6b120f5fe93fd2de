/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"github.com/epms-project/epms/internal/service/common/auth"
	"github.com/epms-project/epms/internal/service/common/db"
	"github.com/epms-project/epms/internal/service/payroll/api"
	"github.com/epms-project/epms/internal/service/payroll/db/models"
	"github.com/epms-project/epms/internal/service/payroll/db/repo"
)

// adminEnvPrefix is the prefix of the initial admin environment variables
const adminEnvPrefix = "EPMS_ADMIN"

// GetAdminConfig loads the initial admin account from the environment
func GetAdminConfig() (api.AdminConfig, error) {
	var config api.AdminConfig
	if err := envconfig.Process(adminEnvPrefix, &config); err != nil {
		return config, fmt.Errorf("failed to process admin environment variables: %w", err)
	}
	return config, nil
}

// EnsureAdmin creates the initial admin account when there are no users at all.  It reports whether the account was
// created.
func EnsureAdmin(ctx context.Context, repository repo.RepositoryInterface, admin api.AdminConfig) (bool, error) {
	count, err := repository.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	if _, err := createUser(ctx, repository, admin.Username, admin.Password, models.RoleAdmin); err != nil {
		return false, fmt.Errorf("failed to create initial admin: %w", err)
	}
	slog.WarnContext(ctx, "Created the initial admin account, change its password",
		"username", admin.Username)
	return true, nil
}

// createUser validates the password, hashes it and stores the user
func createUser(ctx context.Context, repository repo.RepositoryInterface, username, password, role string,
) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is mandatory")
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("unknown role '%s'", role)
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, err //nolint:wrapcheck
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return repository.CreateUser(ctx, &models.User{ //nolint:wrapcheck
		Username: username,
		Password: hash,
		Role:     role,
	})
}

// CreateUser connects to the database and creates a user
func CreateUser(ctx context.Context, username, password, role string) error {
	pgConfig, err := db.GetPgConfig()
	if err != nil {
		return fmt.Errorf("failed to get database configuration: %w", err)
	}
	pool, err := db.NewPgxPool(ctx, pgConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}
	defer pool.Close()

	user, err := createUser(ctx, &repo.PayrollRepository{Db: pool}, username, password, role)
	if err != nil {
		return fmt.Errorf("failed to create user '%s': %w", username, err)
	}
	slog.InfoContext(ctx, "User created", "id", user.ID, "username", user.Username, "role", user.Role)
	return nil
}
