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
	"github.com/epms-project/epms/internal/network"
	"github.com/epms-project/epms/internal/service/common/auth"
	"github.com/epms-project/epms/internal/service/payroll"
	"github.com/epms-project/epms/internal/service/payroll/api"
)

// Names of the flags:
const (
	corsOriginFlagName      = "cors-origin"
	uiDirFlagName           = "ui-dir"
	cookieSecureFlagName    = "cookie-secure"
	sessionLifetimeFlagName = "session-lifetime"
)

// Serve creates the `payroll-server serve` command
func Serve() *cobra.Command {
	c := &serveCommand{}
	result := &cobra.Command{
		Use:   "serve",
		Short: "Start payroll server",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.setFlags(result)
	return result
}

// serveCommand contains the data and logic needed to run the `serve` command
type serveCommand struct {
	config api.PayrollServerConfig
}

// setFlags creates the flag instances for the server
func (c *serveCommand) setFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	network.AddListenerFlags(flags, network.APIListener, network.APIAddress)
	flags.StringSliceVar(
		&c.config.CORSOrigins,
		corsOriginFlagName,
		[]string{"http://localhost:3000"},
		"Origin allowed to send credentialed cross origin requests. Can be repeated.",
	)
	flags.StringVar(
		&c.config.UIDir,
		uiDirFlagName,
		"",
		"Directory containing the pre-built front end. Not served when empty.",
	)
	flags.BoolVar(
		&c.config.CookieSecure,
		cookieSecureFlagName,
		false,
		"Send the session cookie only over HTTPS.",
	)
	flags.DurationVar(
		&c.config.SessionLifetime,
		sessionLifetimeFlagName,
		auth.DefaultLifetime,
		"Lifetime of a session.",
	)
}

// run executes the `serve` command
func (c *serveCommand) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := internal.LoggerFromContext(ctx)

	admin, err := payroll.GetAdminConfig()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load admin configuration", slog.String("error", err.Error()))
		return exit.Config
	}
	c.config.Admin = admin
	c.config.Listener = network.NewListener().
		SetLogger(logger).
		SetFlags(cmd.Flags(), network.APIListener)

	if err := payroll.Serve(&c.config); err != nil {
		logger.ErrorContext(ctx, "Failed to start payroll server", slog.String("error", err.Error()))
		return exit.Failure
	}
	return nil
}
