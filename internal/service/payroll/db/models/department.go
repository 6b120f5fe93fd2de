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
var _ db.Model = (*Department)(nil)

// Department represents a record in the department table.
type Department struct {
	DepartmentCode string     `db:"department_code"`
	DepartmentName string     `db:"department_name"`
	GrossSalary    float64    `db:"gross_salary"`
	CreatedAt      *time.Time `db:"created_at"`
}

// TableName returns the table name associated to this model
func (r Department) TableName() string {
	return "department"
}

// PrimaryKey returns the primary key column associated to this model
func (r Department) PrimaryKey() string { return "department_code" }

// OnConflict returns the column or constraint to be used in the UPSERT operation
func (r Department) OnConflict() string { return "" }
