/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package utils

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/epms-project/epms/internal/service/common/db"
)

// DBQuery is the subset of the pgx pool/transaction API used by the repositories.  Both
// *pgxpool.Pool, pgx.Tx and pgxmock.PgxPoolIface satisfy it.
type DBQuery interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Find retrieves a specific tuple from the database table specified by its primary key.  ErrNotFound is returned
// if no record matched.
func Find[T db.Model](ctx context.Context, db DBQuery, key any) (*T, error) {
	var record T
	e := psql.Quote(record.PrimaryKey()).EQ(psql.Arg(key))
	records, err := Search[T](ctx, db, e)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		slog.Debug("No entity found", "key", key, "table", record.TableName())
		return nil, ErrNotFound
	}
	return &records[0], nil
}

// FindAll retrieves all tuples from the database table specified.  If no records are found then an empty array is
// returned.
func FindAll[T db.Model](ctx context.Context, db DBQuery, orderBy ...string) ([]T, error) {
	return Search[T](ctx, db, nil, orderBy...)
}

// Search retrieves the tuples matching the expression.  A nil expression matches every tuple.  The result is
// ordered by the listed columns, or by the primary key if none are listed.
func Search[T db.Model](ctx context.Context, db DBQuery, expr bob.Expression, orderBy ...string) ([]T, error) {
	var record T
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(quoted(GetAllColumns(record))...),
		sm.From(record.TableName()),
	}
	if expr != nil {
		mods = append(mods, sm.Where(expr))
	}
	if len(orderBy) == 0 {
		orderBy = []string{record.PrimaryKey()}
	}
	for _, column := range orderBy {
		mods = append(mods, sm.OrderBy(psql.Quote(column)))
	}

	sql, args, err := psql.Select(mods...).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return ExecuteCollectRows[T](ctx, db, sql, args)
}

// Count returns the number of tuples matching the expression; a nil expression counts the whole table.
func Count[T db.Model](ctx context.Context, db DBQuery, expr bob.Expression) (int64, error) {
	var record T
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("count(*)")),
		sm.From(record.TableName()),
	}
	if expr != nil {
		mods = append(mods, sm.Where(expr))
	}

	sql, args, err := psql.Select(mods...).Build()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count '%s': %w", record.TableName(), err)
	}
	return count, nil
}

// Create inserts a record of the requested model type.  Only the listed fields are written so that database
// defaults (serial keys, timestamps) apply to the others; all columns are returned.
func Create[T db.Model](ctx context.Context, db DBQuery, record T, fields ...string) (*T, error) {
	query := psql.Insert(im.Into(record.TableName()))
	query.Expression.Columns = GetColumns(record, fields)
	query.Apply(
		im.Values(psql.Arg(GetFieldValues(record, fields)...)),
		im.Returning(quoted(GetAllColumns(record))...),
	)

	sql, args, err := query.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create insert expression: %w", err)
	}

	records, err := ExecuteCollectRows[T](ctx, db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into '%s': %w", record.TableName(), err)
	}
	if len(records) != 1 {
		return nil, fmt.Errorf("expected 1 inserted record in '%s', got %d", record.TableName(), len(records))
	}
	return &records[0], nil
}

// Update overwrites the listed fields of the record with a matching primary key and returns the stored tuple.
// ErrNotFound is returned if no tuple matched.
func Update[T db.Model](ctx context.Context, db DBQuery, key any, record T, fields ...string) (*T, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update in '%s'", record.TableName())
	}

	columns := GetColumns(record, fields)
	values := GetFieldValues(record, fields)
	mods := []bob.Mod[*dialect.UpdateQuery]{um.Table(record.TableName())}
	for i, column := range columns {
		mods = append(mods, um.SetCol(column).ToArg(values[i]))
	}
	mods = append(mods,
		um.Where(psql.Quote(record.PrimaryKey()).EQ(psql.Arg(key))),
		um.Returning(quoted(GetAllColumns(record))...),
	)

	sql, args, err := psql.Update(mods...).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create update expression: %w", err)
	}

	records, err := ExecuteCollectRows[T](ctx, db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("failed to update '%s/%v': %w", record.TableName(), key, err)
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return &records[0], nil
}

// Delete deletes the tuples matching the expression and returns how many were removed.  The caller decides whether
// zero is an error.
func Delete[T db.Model](ctx context.Context, db DBQuery, expr bob.Expression) (int64, error) {
	var record T
	query := psql.Delete(
		dm.From(record.TableName()),
		dm.Where(expr),
	)

	sql, params, err := query.Build()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query for '%s': %w", record.TableName(), err)
	}

	result, err := db.Exec(ctx, sql, params...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from '%s': %w", record.TableName(), ClassifyError(err))
	}

	return result.RowsAffected(), nil
}

// ExecuteCollectRows runs a query and maps every returned row onto T by column name.  Constraint violations are
// classified so that callers can test them with errors.Is.
func ExecuteCollectRows[T any](ctx context.Context, db DBQuery, sql string, args []any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", ClassifyError(err))
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to collect rows: %w", ClassifyError(err))
	}
	if records == nil {
		records = []T{}
	}

	return records, nil
}
