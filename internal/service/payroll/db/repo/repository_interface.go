/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package repo

import (
	"context"

	"github.com/epms-project/epms/internal/service/payroll/db/models"
)

//go:generate mockgen -source=repository_interface.go -destination=generated/mock_repo.generated.go -package=generated

// RepositoryInterface defines the interface for the payroll repository
type RepositoryInterface interface {
	// Health
	Ping(ctx context.Context) error

	// Department methods
	GetDepartments(ctx context.Context) ([]models.Department, error)
	GetDepartment(ctx context.Context, code string) (*models.Department, error)
	CreateDepartment(ctx context.Context, department *models.Department) (*models.Department, error)
	UpdateDepartment(ctx context.Context, code string, department *models.Department) (*models.Department, error)
	DeleteDepartment(ctx context.Context, code string) error

	// Employee methods
	GetEmployees(ctx context.Context, departmentCode *string) ([]models.Employee, error)
	GetEmployee(ctx context.Context, number int) (*models.Employee, error)
	CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, number int, employee *models.Employee) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, number int) error

	// Salary methods
	GetSalaries(ctx context.Context, filter models.SalaryFilter) ([]models.SalaryDetail, error)
	GetSalary(ctx context.Context, id int) (*models.Salary, error)
	GetEmployeeGrossSalary(ctx context.Context, number int) (float64, error)
	CreateSalary(ctx context.Context, salary *models.Salary) (*models.Salary, error)
	UpdateSalary(ctx context.Context, id int, salary *models.Salary) (*models.Salary, error)
	DeleteSalary(ctx context.Context, id int) error

	// Report and statistics methods
	GetPayrollReport(ctx context.Context, month *string) ([]models.ReportRow, error)
	CountEmployees(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
	GetTotalNetSalary(ctx context.Context) (float64, error)
	GetDepartmentDistribution(ctx context.Context) ([]models.DepartmentCount, error)

	// User methods
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUserPassword(ctx context.Context, id int, hash string) error
	DeleteUser(ctx context.Context, id int) error
	CountUsers(ctx context.Context) (int64, error)
}
