/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package models

import (
	"time"

	"github.com/epms-project/epms/internal/service/common/db"
)

// Interface compile enforcement
var _ db.Model = (*User)(nil)

// Roles a user can have
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a record in the users table.  Password holds the bcrypt hash, never the clear
// text value.
type User struct {
	ID        int        `db:"id"`
	Username  string     `db:"username"`
	Password  string     `db:"password"`
	Role      string     `db:"role"`
	CreatedAt *time.Time `db:"created_at"`
}

// TableName returns the table name associated to this model
func (r User) TableName() string {
	return "users"
}

// PrimaryKey returns the primary key column associated to this model
func (r User) PrimaryKey() string { return "id" }

// OnConflict returns the column or constraint to be used in the UPSERT operation
func (r User) OnConflict() string { return "users_username_key" }

// IsAdmin reports whether the user has the admin role
func (r User) IsAdmin() bool { return r.Role == RoleAdmin }

// ValidRole reports whether the value is a known role
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
