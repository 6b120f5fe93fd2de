/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	common "github.com/epms-project/epms/internal/service/common/api"
	"github.com/epms-project/epms/internal/service/common/api/middleware"
	"github.com/epms-project/epms/internal/service/common/auth"
	"github.com/epms-project/epms/internal/service/common/db"
	"github.com/epms-project/epms/internal/service/payroll/api"
	"github.com/epms-project/epms/internal/service/payroll/api/openapi"
	"github.com/epms-project/epms/internal/service/payroll/db/repo"
)

// Payroll server config values
const (
	readTimeout  = 5 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 120 * time.Second
)

// Serve starts the payroll server
func Serve(config *api.PayrollServerConfig) error {
	slog.Info("Starting payroll server")
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Channel for shutdown signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case sig := <-shutdown:
			slog.Info("Shutdown signal received", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	pgConfig, err := db.GetPgConfig()
	if err != nil {
		return fmt.Errorf("failed to get database configuration: %w", err)
	}

	// Init DB client
	pool, err := db.NewPgxPool(ctx, pgConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}
	defer func() {
		slog.Info("Closing DB connection")
		pool.Close()
	}()

	// Init the repository
	repository := &repo.PayrollRepository{
		Db: pool,
	}

	if _, err := EnsureAdmin(ctx, repository, config.Admin); err != nil {
		return err
	}

	// Sessions share the pool with the repository
	store := auth.NewPgxStore(pool)
	sessions := auth.NewSessions(store, auth.SessionConfig{
		Lifetime:     config.SessionLifetime,
		CookieSecure: config.CookieSecure,
	})

	// Init server
	server := api.PayrollServer{
		Config:   config,
		Repo:     repository,
		Sessions: sessions,
	}

	// This also validates the OpenAPI document
	swagger, err := openapi.GetSwagger()
	if err != nil {
		return fmt.Errorf("failed to get swagger: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := middleware.NewHTTPMetrics(registry)

	router := http.NewServeMux()
	server.RegisterRoutes(router, swagger)
	router.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
	})

	// The first middleware listed is the innermost one
	handler := middleware.ChainHandlers(router,
		httpMetrics.Middleware(),
		middleware.ErrorJsonifier(),
		sessions.LoadAndSave(),
		middleware.LogDuration(),
		middleware.RequestID(),
		middleware.TrailingSlashStripper(),
		corsHandler.Handler,
	)

	listener, err := config.Listener.Build()
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	// Server config
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		ErrorLog:     slog.NewLogLogger(slog.Default().Handler(), slog.LevelError),
	}

	// Start session cleanup
	storeErrors := make(chan error, 1)
	go func() {
		slog.Info("Starting session cleanup")
		if err := store.Run(ctx); err != nil {
			storeErrors <- err
		}
	}()

	// Start server
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info(fmt.Sprintf("Listening on %s", listener.Addr()))
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	defer func() {
		// Cancel the context in case it wasn't already canceled
		cancel()
		// Shutdown the http server
		slog.Info("Shutting down server")
		if err := common.GracefulShutdown(srv); err != nil {
			slog.Error("error shutting down server", "error", err)
		}
	}()

	// Blocking select
	select {
	case err := <-serverErrors:
		return fmt.Errorf("error starting server: %w", err)
	case err := <-storeErrors:
		return fmt.Errorf("error cleaning up sessions: %w", err)
	case <-ctx.Done():
		slog.Info("Process shutting down")
	}

	return nil
}
