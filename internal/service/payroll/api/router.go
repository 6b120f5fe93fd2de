/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/epms-project/epms/internal/service/common/api/middleware"
	"github.com/epms-project/epms/internal/service/common/auth"
	"github.com/epms-project/epms/internal/service/payroll/db/models"
)

// access is the level of authorization a route requires
type access int

const (
	public access = iota
	authenticated
	adminOnly
)

// RegisterRoutes registers the API, health and UI handlers on the router.  Every API request is validated against the
// document before the session user is checked.
func (s *PayrollServer) RegisterRoutes(router *http.ServeMux, swagger *openapi3.T) {
	validate := middleware.OpenAPIValidation(swagger)
	authenticate := auth.Authenticator(s.Sessions, s.resolveUser)
	admin := auth.Authorizer(models.RoleAdmin)

	handle := func(pattern string, handler http.HandlerFunc, level access) {
		var wrappers []middleware.Middleware
		switch level {
		case adminOnly:
			wrappers = append(wrappers, admin, authenticate)
		case authenticated:
			wrappers = append(wrappers, authenticate)
		}
		wrappers = append(wrappers, validate)
		router.Handle(pattern, middleware.ChainHandlers(handler, wrappers...))
	}

	// Auth
	handle("POST /api/auth/login", s.Login, public)
	handle("POST /api/auth/logout", s.Logout, public)
	handle("GET /api/auth/check-session", s.CheckSession, public)
	handle("GET /api/auth/me", s.GetCurrentUser, public)
	handle("POST /api/auth/register", s.Register, adminOnly)

	// Departments
	handle("GET /api/departments", s.GetDepartments, authenticated)
	handle("GET /api/departments/{departmentCode}", s.GetDepartment, authenticated)
	handle("POST /api/departments", s.CreateDepartment, adminOnly)
	handle("PUT /api/departments/{departmentCode}", s.UpdateDepartment, adminOnly)
	handle("DELETE /api/departments/{departmentCode}", s.DeleteDepartment, adminOnly)

	// Employees
	handle("GET /api/employees", s.GetEmployees, authenticated)
	handle("GET /api/employees/{employeeNumber}", s.GetEmployee, authenticated)
	handle("POST /api/employees", s.CreateEmployee, authenticated)
	handle("PUT /api/employees/{employeeNumber}", s.UpdateEmployee, authenticated)
	handle("DELETE /api/employees/{employeeNumber}", s.DeleteEmployee, adminOnly)

	// Salaries
	handle("GET /api/salaries", s.GetSalaries, authenticated)
	handle("GET /api/salaries/{salaryId}", s.GetSalary, authenticated)
	handle("POST /api/salaries", s.CreateSalary, authenticated)
	handle("PUT /api/salaries/{salaryId}", s.UpdateSalary, authenticated)
	handle("DELETE /api/salaries/{salaryId}", s.DeleteSalary, adminOnly)

	// Reports and statistics
	handle("GET /api/reports", s.GetPayrollReport, authenticated)
	handle("GET /api/reports/export", s.ExportPayrollReport, authenticated)
	handle("GET /api/stats", s.GetStats, authenticated)
	handle("GET /api/stats/department-distribution", s.GetDepartmentDistribution, authenticated)

	// Users
	handle("GET /api/users", s.GetUsers, adminOnly)
	handle("DELETE /api/users/{userId}", s.DeleteUser, adminOnly)
	handle("PUT /api/users/{userId}/password", s.ChangePassword, authenticated)

	router.HandleFunc("GET /healthz", s.HealthCheck)

	// Unknown API paths always get a problem details document, other paths go to the UI when there is one
	router.HandleFunc("/api/", middleware.NotFoundFunc())
	if s.Config != nil && s.Config.UIDir != "" {
		router.Handle("/", UIHandler(s.Config.UIDir))
	} else {
		router.HandleFunc("/", middleware.NotFoundFunc())
	}
}
