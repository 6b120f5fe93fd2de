/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package models

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/epms-project/epms/internal/service/payroll/api/types"
)

// DepartmentToModel converts a DB tuple to an API model
func DepartmentToModel(record *Department) types.Department {
	return types.Department{
		DepartmentCode: record.DepartmentCode,
		DepartmentName: record.DepartmentName,
		GrossSalary:    record.GrossSalary,
		CreatedAt:      record.CreatedAt,
	}
}

// EmployeeToModel converts a DB tuple to an API model
func EmployeeToModel(record *Employee) types.Employee {
	return types.Employee{
		EmployeeNumber: record.EmployeeNumber,
		FirstName:      record.FirstName,
		LastName:       record.LastName,
		Position:       record.Position,
		Address:        record.Address,
		Telephone:      record.Telephone,
		Gender:         record.Gender,
		HiredDate:      openapi_types.Date{Time: record.HiredDate},
		DepartmentCode: record.DepartmentCode,
		CreatedAt:      record.CreatedAt,
	}
}

// EmployeeFromModel converts an API request to a DB tuple
func EmployeeFromModel(input *types.EmployeeInput) Employee {
	return Employee{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Position:       input.Position,
		Address:        input.Address,
		Telephone:      input.Telephone,
		Gender:         input.Gender,
		HiredDate:      input.HiredDate.Time,
		DepartmentCode: input.DepartmentCode,
	}
}

// SalaryToModel converts a DB tuple to an API model
func SalaryToModel(record *Salary) types.Salary {
	return types.Salary{
		Id:             record.ID,
		EmployeeNumber: record.EmployeeNumber,
		GrossSalary:    record.GrossSalary,
		TotalDeduction: record.TotalDeduction,
		NetSalary:      record.NetSalary,
		Month:          record.Month,
		CreatedAt:      record.CreatedAt,
	}
}

// SalaryDetailToModel converts a joined salary row to an API model
func SalaryDetailToModel(record *SalaryDetail) types.SalaryDetail {
	return types.SalaryDetail{
		Id:             record.ID,
		EmployeeNumber: record.EmployeeNumber,
		FirstName:      record.FirstName,
		LastName:       record.LastName,
		Position:       record.Position,
		DepartmentCode: record.DepartmentCode,
		DepartmentName: record.DepartmentName,
		GrossSalary:    record.GrossSalary,
		TotalDeduction: record.TotalDeduction,
		NetSalary:      record.NetSalary,
		Month:          record.Month,
	}
}

// ReportRowToModel converts a report row to an API model
func ReportRowToModel(record *ReportRow) types.ReportRow {
	return types.ReportRow{
		FirstName:      record.FirstName,
		LastName:       record.LastName,
		Position:       record.Position,
		DepartmentName: record.DepartmentName,
		NetSalary:      record.NetSalary,
		Month:          record.Month,
	}
}

// DepartmentCountToModel converts a distribution row to an API model
func DepartmentCountToModel(record *DepartmentCount) types.DepartmentCount {
	return types.DepartmentCount{
		Department: record.Department,
		Count:      record.Count,
	}
}

// StatsToModel converts the dashboard totals to an API model
func StatsToModel(record *Stats) types.Stats {
	return types.Stats{
		Employee:    record.Employees,
		Department:  record.Departments,
		TotalSalary: record.TotalSalary,
	}
}

// UserToModel converts a DB tuple to an API model.  The password hash is never exposed.
func UserToModel(record *User) types.User {
	return types.User{
		Id:        record.ID,
		Username:  record.Username,
		Role:      record.Role,
		CreatedAt: record.CreatedAt,
	}
}
