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
var _ db.Model = (*Employee)(nil)

// Gender values accepted by the employee table
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Employee represents a record in the employee table.  EmployeeNumber is assigned by the database.
type Employee struct {
	EmployeeNumber int        `db:"employee_number"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	Position       string     `db:"position"`
	Address        string     `db:"address"`
	Telephone      string     `db:"telephone"`
	Gender         string     `db:"gender"`
	HiredDate      time.Time  `db:"hired_date"`
	DepartmentCode string     `db:"department_code"`
	CreatedAt      *time.Time `db:"created_at"`
}

// TableName returns the table name associated to this model
func (r Employee) TableName() string {
	return "employee"
}

// PrimaryKey returns the primary key column associated to this model
func (r Employee) PrimaryKey() string { return "employee_number" }

// OnConflict returns the column or constraint to be used in the UPSERT operation
func (r Employee) OnConflict() string { return "" }

// EmployeeWritableFields lists the fields set by create and update requests
var EmployeeWritableFields = []string{
	"FirstName", "LastName", "Position", "Address", "Telephone", "Gender", "HiredDate", "DepartmentCode",
}
