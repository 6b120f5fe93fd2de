/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

// Package types holds the JSON documents exchanged by the payroll API.  They mirror the schemas of
// the embedded OpenAPI document.
package types

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Department defines model for Department.
type Department struct {
	DepartmentCode string     `json:"departmentCode"`
	DepartmentName string     `json:"departmentName"`
	GrossSalary    float64    `json:"grossSalary"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

// DepartmentUpdate defines model for DepartmentUpdate.
type DepartmentUpdate struct {
	DepartmentName string  `json:"departmentName"`
	GrossSalary    float64 `json:"grossSalary"`
}

// Employee defines model for Employee.
type Employee struct {
	EmployeeNumber int                `json:"employeeNumber"`
	FirstName      string             `json:"firstName"`
	LastName       string             `json:"lastName"`
	Position       string             `json:"position"`
	Address        string             `json:"address"`
	Telephone      string             `json:"telephone"`
	Gender         string             `json:"gender"`
	HiredDate      openapi_types.Date `json:"hiredDate"`
	DepartmentCode string             `json:"departmentCode"`
	CreatedAt      *time.Time         `json:"createdAt,omitempty"`
}

// EmployeeInput defines model for EmployeeInput.
type EmployeeInput struct {
	FirstName      string             `json:"firstName"`
	LastName       string             `json:"lastName"`
	Position       string             `json:"position"`
	Address        string             `json:"address"`
	Telephone      string             `json:"telephone"`
	Gender         string             `json:"gender"`
	HiredDate      openapi_types.Date `json:"hiredDate"`
	DepartmentCode string             `json:"departmentCode"`
}

// Salary defines model for Salary.
type Salary struct {
	Id             int        `json:"id"`
	EmployeeNumber int        `json:"employeeNumber"`
	GrossSalary    float64    `json:"grossSalary"`
	TotalDeduction float64    `json:"totalDeduction"`
	NetSalary      float64    `json:"netSalary"`
	Month          string     `json:"month"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

// SalaryInput defines model for SalaryInput.  Missing gross and net values are derived.
type SalaryInput struct {
	EmployeeNumber int      `json:"employeeNumber"`
	GrossSalary    *float64 `json:"grossSalary,omitempty"`
	TotalDeduction float64  `json:"totalDeduction"`
	NetSalary      *float64 `json:"netSalary,omitempty"`
	Month          string   `json:"month"`
}

// SalaryDetail defines model for SalaryDetail.
type SalaryDetail struct {
	Id             int     `json:"id"`
	EmployeeNumber int     `json:"employeeNumber"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Position       string  `json:"position"`
	DepartmentCode string  `json:"departmentCode"`
	DepartmentName string  `json:"departmentName"`
	GrossSalary    float64 `json:"grossSalary"`
	TotalDeduction float64 `json:"totalDeduction"`
	NetSalary      float64 `json:"netSalary"`
	Month          string  `json:"month"`
}

// ReportRow defines model for ReportRow.
type ReportRow struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Position       string  `json:"position"`
	DepartmentName string  `json:"departmentName"`
	NetSalary      float64 `json:"netSalary"`
	Month          string  `json:"month"`
}

// Stats defines model for Stats.
type Stats struct {
	Employee    int64   `json:"employee"`
	Department  int64   `json:"department"`
	TotalSalary float64 `json:"totalSalary"`
}

// DepartmentCount defines model for DepartmentCount.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// User defines model for User.
type User struct {
	Id        int        `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest defines model for RegisterRequest.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// PasswordChange defines model for PasswordChange.
type PasswordChange struct {
	Password string `json:"password"`
}

// AuthResponse defines model for AuthResponse.
type AuthResponse struct {
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// MessageResponse defines model for MessageResponse.
type MessageResponse struct {
	Message string `json:"message"`
}

// ExportFormat defines the spreadsheet formats of the report export.
type ExportFormat string

// Defines values for ExportFormat.
const (
	Csv  ExportFormat = "csv"
	Xlsx ExportFormat = "xlsx"
)
