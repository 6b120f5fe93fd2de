/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/epms-project/epms/internal"
	"github.com/epms-project/epms/internal/exit"
	"github.com/epms-project/epms/internal/service/payroll"
)

// Migrate creates the `payroll-server migrate` command
func Migrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run migrations all the way up",
		Long:  `This runs before the server starts, for example from an init container.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := payroll.StartMigration(ctx); err != nil {
				internal.LoggerFromContext(ctx).ErrorContext(ctx, "Failed to do migration",
					slog.String("error", err.Error()))
				return exit.Failure
			}
			return nil
		},
	}
}
