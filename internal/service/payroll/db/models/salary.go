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
var _ db.Model = (*Salary)(nil)

// Salary represents a record in the salary table.  There is at most one record per employee and
// month, and NetSalary always equals GrossSalary minus TotalDeduction.
type Salary struct {
	ID             int        `db:"id"`
	EmployeeNumber int        `db:"employee_number"`
	GrossSalary    float64    `db:"gross_salary"`
	TotalDeduction float64    `db:"total_deduction"`
	NetSalary      float64    `db:"net_salary"`
	Month          string     `db:"month"`
	CreatedAt      *time.Time `db:"created_at"`
}

// TableName returns the table name associated to this model
func (r Salary) TableName() string {
	return "salary"
}

// PrimaryKey returns the primary key column associated to this model
func (r Salary) PrimaryKey() string { return "id" }

// OnConflict returns the column or constraint to be used in the UPSERT operation
func (r Salary) OnConflict() string { return "salary_employee_month_key" }

// SalaryWritableFields lists the fields set by create and update requests
var SalaryWritableFields = []string{"EmployeeNumber", "GrossSalary", "TotalDeduction", "NetSalary", "Month"}

// SalaryDetail is a salary joined with the employee and department it belongs to.
type SalaryDetail struct {
	ID             int     `db:"id"`
	EmployeeNumber int     `db:"employee_number"`
	FirstName      string  `db:"first_name"`
	LastName       string  `db:"last_name"`
	Position       string  `db:"position"`
	DepartmentCode string  `db:"department_code"`
	DepartmentName string  `db:"department_name"`
	GrossSalary    float64 `db:"gross_salary"`
	TotalDeduction float64 `db:"total_deduction"`
	NetSalary      float64 `db:"net_salary"`
	Month          string  `db:"month"`
}

// SalaryFilter narrows the salary listing.  Nil fields are not applied.
type SalaryFilter struct {
	Month          *string
	EmployeeNumber *int
}
