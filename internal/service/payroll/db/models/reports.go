/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package models

// ReportRow is one line of the monthly payroll report
type ReportRow struct {
	FirstName      string  `db:"first_name"`
	LastName       string  `db:"last_name"`
	Position       string  `db:"position"`
	DepartmentName string  `db:"department_name"`
	NetSalary      float64 `db:"net_salary"`
	Month          string  `db:"month"`
}

// DepartmentCount is the number of employees assigned to a department
type DepartmentCount struct {
	Department string `db:"department"`
	Count      int64  `db:"count"`
}

// Stats are the dashboard totals
type Stats struct {
	Employees   int64
	Departments int64
	TotalSalary float64
}
