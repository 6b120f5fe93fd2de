/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"

	"github.com/epms-project/epms/internal/service/common/utils"
)

const (
	sessionsTable      = "sessions"
	sessionsConstraint = "sessions_pkey"

	// DefaultCleanupInterval is how often expired sessions are removed
	DefaultCleanupInterval = 5 * time.Minute
)

// PgxStore keeps scs sessions in the sessions table.  Expired rows are ignored on read and removed by Run.
type PgxStore struct {
	db              utils.DBQuery
	cleanupInterval time.Duration
}

// Interface compile enforcement
var _ scs.CtxStore = (*PgxStore)(nil)

// NewPgxStore creates a store using the given connection pool
func NewPgxStore(db utils.DBQuery) *PgxStore {
	return &PgxStore{
		db:              db,
		cleanupInterval: DefaultCleanupInterval,
	}
}

// SetCleanupInterval changes how often expired sessions are removed
func (s *PgxStore) SetCleanupInterval(interval time.Duration) *PgxStore {
	s.cleanupInterval = interval
	return s
}

// FindCtx returns the data of an unexpired session
func (s *PgxStore) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	query := psql.Select(
		sm.Columns(psql.Quote("data")),
		sm.From(sessionsTable),
		sm.Where(psql.Quote("token").EQ(psql.Arg(token)).
			And(psql.Quote("expiry").GT(psql.Raw("current_timestamp")))),
	)
	sql, args, err := query.Build()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build session query: %w", err)
	}

	var data []byte
	err = s.db.QueryRow(ctx, sql, args...).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to find session: %w", err)
	}
	return data, true, nil
}

// CommitCtx adds or replaces a session
func (s *PgxStore) CommitCtx(ctx context.Context, token string, data []byte, expiry time.Time) error {
	query := psql.Insert(
		im.Into(sessionsTable, "token", "data", "expiry"),
		im.Values(psql.Arg(token, data, expiry)),
	)
	query.Apply(im.OnConflictOnConstraint(sessionsConstraint).DoUpdate(
		im.SetExcluded("data"),
		im.SetExcluded("expiry"),
	))
	sql, args, err := query.Build()
	if err != nil {
		return fmt.Errorf("failed to build session upsert: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

// DeleteCtx removes a session.  Deleting a missing session is not an error.
func (s *PgxStore) DeleteCtx(ctx context.Context, token string) error {
	sql, args, err := psql.Delete(
		dm.From(sessionsTable),
		dm.Where(psql.Quote("token").EQ(psql.Arg(token))),
	).Build()
	if err != nil {
		return fmt.Errorf("failed to build session delete: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Find implements scs.Store
func (s *PgxStore) Find(token string) ([]byte, bool, error) {
	return s.FindCtx(context.Background(), token)
}

// Commit implements scs.Store
func (s *PgxStore) Commit(token string, data []byte, expiry time.Time) error {
	return s.CommitCtx(context.Background(), token, data, expiry)
}

// Delete implements scs.Store
func (s *PgxStore) Delete(token string) error {
	return s.DeleteCtx(context.Background(), token)
}

// DeleteExpired removes every expired session and returns how many were removed
func (s *PgxStore) DeleteExpired(ctx context.Context) (int64, error) {
	sql, args, err := psql.Delete(
		dm.From(sessionsTable),
		dm.Where(psql.Quote("expiry").LT(psql.Raw("current_timestamp"))),
	).Build()
	if err != nil {
		return 0, fmt.Errorf("failed to build expired session delete: %w", err)
	}

	result, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return result.RowsAffected(), nil
}

// Run removes expired sessions periodically until the context is canceled
func (s *PgxStore) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Session cleanup stopped")
			return nil
		case <-ticker.C:
			count, err := s.DeleteExpired(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				slog.Error("Failed to delete expired sessions", "error", err)
				continue
			}
			if count > 0 {
				slog.Debug("Deleted expired sessions", "count", count)
			}
		}
	}
}
