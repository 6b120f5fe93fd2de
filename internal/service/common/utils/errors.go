/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a lookup by key matched no tuple
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write collides with a unique constraint or a dependent row
	ErrConflict = errors.New("record conflicts with existing data")
	// ErrInvalidReference is returned when a write references a row that does not exist
	ErrInvalidReference = errors.New("record references a missing entity")
	// ErrInvalidValue is returned when a write is rejected by a check or not-null constraint, or a value
	// does not fit its column
	ErrInvalidValue = errors.New("record violates a value constraint")
)

// ConstraintError wraps a database constraint violation with the sentinel that classifies it
type ConstraintError struct {
	Kind       error
	Constraint string
	Column     string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" && e.Column != "" {
		return fmt.Sprintf("%s (column %q)", e.Kind, e.Column)
	}
	return fmt.Sprintf("%s (constraint %q)", e.Kind, e.Constraint)
}

func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// ClassifyError maps PostgreSQL integrity violations onto the package sentinels.  Any other error
// is returned unchanged.
func ClassifyError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return &ConstraintError{Kind: ErrConflict, Constraint: pgErr.ConstraintName, Err: err}
	case pgerrcode.ForeignKeyViolation:
		// A delete that is blocked by dependents is a conflict; an insert/update that points to
		// nothing is a bad reference.
		if isRestrictViolation(pgErr) {
			return &ConstraintError{Kind: ErrConflict, Constraint: pgErr.ConstraintName, Err: err}
		}
		return &ConstraintError{Kind: ErrInvalidReference, Constraint: pgErr.ConstraintName, Err: err}
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return &ConstraintError{Kind: ErrInvalidValue, Constraint: pgErr.ConstraintName, Err: err}
	case pgerrcode.StringDataRightTruncationDataException, pgerrcode.NumericValueOutOfRange:
		return &ConstraintError{Kind: ErrInvalidValue, Column: pgErr.ColumnName, Err: err}
	}
	return err
}

// isRestrictViolation detects the "update or delete on table ... violates foreign key" flavour of
// the foreign key error, which PostgreSQL reports with the same SQLSTATE as a missing parent.
func isRestrictViolation(pgErr *pgconn.PgError) bool {
	return strings.HasPrefix(pgErr.Message, "update or delete")
}
