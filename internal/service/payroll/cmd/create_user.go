/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/epms-project/epms/internal"
	"github.com/epms-project/epms/internal/exit"
	"github.com/epms-project/epms/internal/service/payroll"
	"github.com/epms-project/epms/internal/service/payroll/db/models"
)

// Names of the flags:
const (
	usernameFlagName = "username"
	roleFlagName     = "role"
)

// CreateUser creates the `payroll-server create-user` command. The password is always read from the first line of
// the standard input so that it does not show up in the process list.
func CreateUser() *cobra.Command {
	result := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE:  runCreateUser,
	}
	flags := result.Flags()
	_ = flags.String(usernameFlagName, "", "Name of the user.")
	_ = flags.String(roleFlagName, models.RoleUser,
		fmt.Sprintf("Role of the user, '%s' or '%s'.", models.RoleAdmin, models.RoleUser))
	_ = result.MarkFlagRequired(usernameFlagName)
	return result
}

// readPassword returns the first line of the input without the line terminator
func readPassword(cmd *cobra.Command) (string, error) {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return "", errors.New("password is missing from the standard input")
	}
	return strings.TrimRight(scanner.Text(), "\r"), nil
}

func runCreateUser(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := internal.LoggerFromContext(ctx)
	flags := cmd.Flags()

	username, err := flags.GetString(usernameFlagName)
	if err != nil {
		return fmt.Errorf("failed to get flag '%s': %w", usernameFlagName, err)
	}
	role, err := flags.GetString(roleFlagName)
	if err != nil {
		return fmt.Errorf("failed to get flag '%s': %w", roleFlagName, err)
	}
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	if err := payroll.CreateUser(ctx, username, password, role); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", slog.String("error", err.Error()))
		return exit.Failure
	}
	return nil
}
