/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"

	"github.com/epms-project/epms/internal/service/common/utils"
	"github.com/epms-project/epms/internal/service/payroll/db/models"
)

// ErrDepartmentInUse is returned when deleting a department that still has employees
var ErrDepartmentInUse = fmt.Errorf("cannot delete department with existing employees: %w", utils.ErrConflict)

// ErrEmployeeNotFound is returned when a salary refers to an unknown employee
var ErrEmployeeNotFound = fmt.Errorf("employee does not exist: %w", utils.ErrInvalidReference)

// DB is the database handle used by the repository.  *pgxpool.Pool and pgxmock.PgxPoolIface
// implement it.
type DB interface {
	utils.DBQuery
	Ping(ctx context.Context) error
}

// PayrollRepository defines the database repository for the payroll tables
type PayrollRepository struct {
	Db DB
}

// Interface compile enforcement
var _ RepositoryInterface = (*PayrollRepository)(nil)

// Ping checks that the database is reachable
func (r *PayrollRepository) Ping(ctx context.Context) error {
	if err := r.Db.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// GetDepartments returns the list of Department records ordered by code or an empty list if none exist; otherwise an
// error
func (r *PayrollRepository) GetDepartments(ctx context.Context) ([]models.Department, error) {
	return utils.FindAll[models.Department](ctx, r.Db)
}

// GetDepartment returns the Department record matching the code or ErrNotFound if no record matched; otherwise an error
func (r *PayrollRepository) GetDepartment(ctx context.Context, code string) (*models.Department, error) {
	return utils.Find[models.Department](ctx, r.Db, code)
}

// CreateDepartment inserts a Department record.  A duplicate code results in ErrConflict.
func (r *PayrollRepository) CreateDepartment(ctx context.Context, department *models.Department) (*models.Department, error) {
	return utils.Create[models.Department](ctx, r.Db, *department, "DepartmentCode", "DepartmentName", "GrossSalary")
}

// UpdateDepartment changes the name and gross salary of a department
func (r *PayrollRepository) UpdateDepartment(ctx context.Context, code string, department *models.Department) (*models.Department, error) {
	return utils.Update[models.Department](ctx, r.Db, code, *department, "DepartmentName", "GrossSalary")
}

// DeleteDepartment removes a department that has no employees.  ErrDepartmentInUse is returned while employees are
// assigned to it and ErrNotFound if it does not exist.
func (r *PayrollRepository) DeleteDepartment(ctx context.Context, code string) error {
	employees, err := utils.Count[models.Employee](ctx, r.Db, psql.Quote("department_code").EQ(psql.Arg(code)))
	if err != nil {
		return err
	}
	if employees > 0 {
		return ErrDepartmentInUse
	}

	count, err := utils.Delete[models.Department](ctx, r.Db, psql.Quote(models.Department{}.PrimaryKey()).EQ(psql.Arg(code)))
	if err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return ErrDepartmentInUse
		}
		return err
	}
	if count == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// GetEmployees returns the Employee records ordered by number, optionally restricted to one department
func (r *PayrollRepository) GetEmployees(ctx context.Context, departmentCode *string) ([]models.Employee, error) {
	var e bob.Expression
	if departmentCode != nil {
		e = psql.Quote("department_code").EQ(psql.Arg(*departmentCode))
	}
	return utils.Search[models.Employee](ctx, r.Db, e)
}

// GetEmployee returns the Employee record matching the number or ErrNotFound if no record matched; otherwise an error
func (r *PayrollRepository) GetEmployee(ctx context.Context, number int) (*models.Employee, error) {
	return utils.Find[models.Employee](ctx, r.Db, number)
}

// CreateEmployee inserts an Employee record; the employee number is assigned by the database.  An unknown department
// results in ErrInvalidReference.
func (r *PayrollRepository) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	return utils.Create[models.Employee](ctx, r.Db, *employee, models.EmployeeWritableFields...)
}

// UpdateEmployee replaces every writable field of an employee
func (r *PayrollRepository) UpdateEmployee(ctx context.Context, number int, employee *models.Employee) (*models.Employee, error) {
	return utils.Update[models.Employee](ctx, r.Db, number, *employee, models.EmployeeWritableFields...)
}

// DeleteEmployee removes an employee together with their salary records
func (r *PayrollRepository) DeleteEmployee(ctx context.Context, number int) error {
	count, err := utils.Delete[models.Employee](ctx, r.Db, psql.Quote(models.Employee{}.PrimaryKey()).EQ(psql.Arg(number)))
	if err != nil {
		return err
	}
	if count == 0 {
		return utils.ErrNotFound
	}
	return nil
}

const salaryDetailQuery = `SELECT s.id, s.employee_number, e.first_name, e.last_name, e.position, e.department_code,
d.department_name, s.gross_salary, s.total_deduction, s.net_salary, s.month
FROM salary s
JOIN employee e ON e.employee_number = s.employee_number
JOIN department d ON d.department_code = e.department_code`

// GetSalaries returns the salaries joined with their employee and department, newest month first
func (r *PayrollRepository) GetSalaries(ctx context.Context, filter models.SalaryFilter) ([]models.SalaryDetail, error) {
	var conditions []string
	var args []any
	if filter.Month != nil {
		conditions = append(conditions, "s.month = ?")
		args = append(args, psql.Arg(*filter.Month))
	}
	if filter.EmployeeNumber != nil {
		conditions = append(conditions, "s.employee_number = ?")
		args = append(args, psql.Arg(*filter.EmployeeNumber))
	}

	query := salaryDetailQuery
	if len(conditions) > 0 {
		query = fmt.Sprintf("%s WHERE %s", query, strings.Join(conditions, " AND "))
	}
	query += " ORDER BY s.month DESC, e.last_name, e.first_name"

	sql, params, err := psql.RawQuery(query, args...).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return utils.ExecuteCollectRows[models.SalaryDetail](ctx, r.Db, sql, params)
}

// GetSalary returns the Salary record matching the id or ErrNotFound if no record matched; otherwise an error
func (r *PayrollRepository) GetSalary(ctx context.Context, id int) (*models.Salary, error) {
	return utils.Find[models.Salary](ctx, r.Db, id)
}

// GetEmployeeGrossSalary returns the gross salary of the department the employee belongs to.  ErrEmployeeNotFound is
// returned for an unknown employee.
func (r *PayrollRepository) GetEmployeeGrossSalary(ctx context.Context, number int) (float64, error) {
	sql, args, err := psql.RawQuery(`SELECT d.gross_salary FROM employee e
JOIN department d ON d.department_code = e.department_code
WHERE e.employee_number = ?`, psql.Arg(number)).Build()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	type grossSalary struct {
		GrossSalary float64 `db:"gross_salary"`
	}
	rows, err := utils.ExecuteCollectRows[grossSalary](ctx, r.Db, sql, args)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, ErrEmployeeNotFound
	}
	return rows[0].GrossSalary, nil
}

// CreateSalary inserts a Salary record.  A second record for the same employee and month results in ErrConflict and
// an unknown employee in ErrInvalidReference.
func (r *PayrollRepository) CreateSalary(ctx context.Context, salary *models.Salary) (*models.Salary, error) {
	return utils.Create[models.Salary](ctx, r.Db, *salary, models.SalaryWritableFields...)
}

// UpdateSalary replaces every writable field of a salary
func (r *PayrollRepository) UpdateSalary(ctx context.Context, id int, salary *models.Salary) (*models.Salary, error) {
	return utils.Update[models.Salary](ctx, r.Db, id, *salary, models.SalaryWritableFields...)
}

// DeleteSalary removes a salary record
func (r *PayrollRepository) DeleteSalary(ctx context.Context, id int) error {
	count, err := utils.Delete[models.Salary](ctx, r.Db, psql.Quote(models.Salary{}.PrimaryKey()).EQ(psql.Arg(id)))
	if err != nil {
		return err
	}
	if count == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// GetPayrollReport returns the net salary of every employee for the month, or for every month when none is given
func (r *PayrollRepository) GetPayrollReport(ctx context.Context, month *string) ([]models.ReportRow, error) {
	query := `SELECT e.first_name, e.last_name, e.position, d.department_name, s.net_salary, s.month
FROM salary s
JOIN employee e ON e.employee_number = s.employee_number
JOIN department d ON d.department_code = e.department_code`
	var args []any
	if month != nil {
		query += " WHERE s.month = ?"
		args = append(args, psql.Arg(*month))
	}
	query += " ORDER BY s.month DESC, d.department_name, e.last_name, e.first_name"

	sql, params, err := psql.RawQuery(query, args...).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return utils.ExecuteCollectRows[models.ReportRow](ctx, r.Db, sql, params)
}

// CountEmployees returns the number of employees
func (r *PayrollRepository) CountEmployees(ctx context.Context) (int64, error) {
	return utils.Count[models.Employee](ctx, r.Db, nil)
}

// CountDepartments returns the number of departments
func (r *PayrollRepository) CountDepartments(ctx context.Context) (int64, error) {
	return utils.Count[models.Department](ctx, r.Db, nil)
}

// GetTotalNetSalary returns the sum of every net salary, 0 when there are none
func (r *PayrollRepository) GetTotalNetSalary(ctx context.Context) (float64, error) {
	sql, args, err := psql.RawQuery("SELECT COALESCE(SUM(net_salary), 0)::float8 AS total FROM salary").Build()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var total float64
	if err := r.Db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum salaries: %w", err)
	}
	return total, nil
}

// GetDepartmentDistribution returns the number of employees of every department, including empty ones
func (r *PayrollRepository) GetDepartmentDistribution(ctx context.Context) ([]models.DepartmentCount, error) {
	sql, args, err := psql.RawQuery(`SELECT d.department_name AS department, COUNT(e.employee_number) AS count
FROM department d
LEFT JOIN employee e ON e.department_code = d.department_code
GROUP BY d.department_code, d.department_name
ORDER BY d.department_name`).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return utils.ExecuteCollectRows[models.DepartmentCount](ctx, r.Db, sql, args)
}

// GetUsers returns every user ordered by id
func (r *PayrollRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	return utils.FindAll[models.User](ctx, r.Db)
}

// GetUser returns the User record matching the id or ErrNotFound if no record matched; otherwise an error
func (r *PayrollRepository) GetUser(ctx context.Context, id int) (*models.User, error) {
	return utils.Find[models.User](ctx, r.Db, id)
}

// GetUserByUsername returns the User record matching the username or ErrNotFound if no record matched; otherwise an
// error
func (r *PayrollRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	records, err := utils.Search[models.User](ctx, r.Db, psql.Quote("username").EQ(psql.Arg(username)))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, utils.ErrNotFound
	}
	return &records[0], nil
}

// CreateUser inserts a User record.  A duplicate username results in ErrConflict.
func (r *PayrollRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	return utils.Create[models.User](ctx, r.Db, *user, "Username", "Password", "Role")
}

// UpdateUserPassword stores a new password hash for the user
func (r *PayrollRepository) UpdateUserPassword(ctx context.Context, id int, hash string) error {
	_, err := utils.Update[models.User](ctx, r.Db, id, models.User{Password: hash}, "Password")
	return err
}

// DeleteUser removes a user
func (r *PayrollRepository) DeleteUser(ctx context.Context, id int) error {
	count, err := utils.Delete[models.User](ctx, r.Db, psql.Quote(models.User{}.PrimaryKey()).EQ(psql.Arg(id)))
	if err != nil {
		return err
	}
	if count == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// CountUsers returns the number of users
func (r *PayrollRepository) CountUsers(ctx context.Context) (int64, error) {
	return utils.Count[models.User](ctx, r.Db, nil)
}
