/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package db

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kelseyhightower/envconfig"
)

// PgConfig defines the attributes used to reach the database.  Values are loaded from the
// environment using the EPMS_DB prefix (e.g., EPMS_DB_HOST, EPMS_DB_PASSWORD).
type PgConfig struct {
	Host     string `default:"localhost"`
	Port     string `default:"5432"`
	User     string `default:"epms"`
	Password string `required:"true"`
	Database string `envconfig:"NAME" default:"epms"`
	SSLMode  string `envconfig:"SSLMODE" default:"disable"`
	MaxConns int32  `envconfig:"MAX_CONNS" default:"10"`
}

// envPrefix is the prefix of every database related environment variable
const envPrefix = "EPMS_DB"

// GetPgConfig loads the database configuration from the environment
func GetPgConfig() (PgConfig, error) {
	var cfg PgConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to process database environment variables: %w", err)
	}
	return cfg, nil
}

// URL returns the connection string for the given scheme.  The pgx pool uses "postgres" while the
// migration driver uses "pgx5".
func (c PgConfig) URL(scheme string) string {
	u := url.URL{
		Scheme: scheme,
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, c.Port),
		Path:   c.Database,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// NewPgxPool get a concurrency safe pool of connection
func NewPgxPool(ctx context.Context, cfg PgConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL("postgres"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	poolConfig.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database connection pool established", "host", cfg.Host, "database", cfg.Database)
	return pool, nil
}
