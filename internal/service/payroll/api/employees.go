/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"k8s.io/utils/ptr"

	svcutils "github.com/epms-project/epms/internal/service/common/utils"
	"github.com/epms-project/epms/internal/service/payroll/api/types"
	"github.com/epms-project/epms/internal/service/payroll/db/models"
)

var genders = []string{models.GenderMale, models.GenderFemale, models.GenderOther}

// validateEmployee normalizes the input and returns a message describing the first problem found, if any
func validateEmployee(input *types.EmployeeInput) string {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Position = strings.TrimSpace(input.Position)
	input.DepartmentCode = strings.TrimSpace(input.DepartmentCode)
	switch {
	case input.FirstName == "" || input.LastName == "":
		return "firstName and lastName are required"
	case input.Position == "":
		return "position is required"
	case input.DepartmentCode == "":
		return "departmentCode is required"
	case !slices.Contains(genders, input.Gender):
		return fmt.Sprintf("gender must be one of %s", strings.Join(genders, ", "))
	case input.HiredDate.IsZero():
		return "hiredDate is required"
	}
	return ""
}

// employeeWriteError reports an unknown department as a bad request; anything else is mapped as usual
func employeeWriteError(w http.ResponseWriter, r *http.Request, err error, input *types.EmployeeInput, subject string) {
	if errors.Is(err, svcutils.ErrInvalidReference) {
		badRequest(w, fmt.Sprintf("department '%s' does not exist", input.DepartmentCode))
		return
	}
	respondError(w, r, err, subject)
}

// GetEmployees receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) GetEmployees(w http.ResponseWriter, r *http.Request) {
	var departmentCode *string
	if value := r.URL.Query().Get("departmentCode"); value != "" {
		departmentCode = ptr.To(value)
	}

	records, err := s.Repo.GetEmployees(r.Context(), departmentCode)
	if err != nil {
		respondError(w, r, fmt.Errorf("failed to get employees: %w", err), "employees")
		return
	}

	objects := make([]types.Employee, len(records))
	for i, record := range records {
		objects[i] = models.EmployeeToModel(&record)
	}
	writeJSON(w, r, http.StatusOK, objects)
}

// GetEmployee receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) GetEmployee(w http.ResponseWriter, r *http.Request) {
	number, err := intPathValue(r, "employeeNumber")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	record, err := s.Repo.GetEmployee(r.Context(), number)
	if err != nil {
		respondError(w, r, err, fmt.Sprintf("employee %d", number))
		return
	}
	writeJSON(w, r, http.StatusOK, models.EmployeeToModel(record))
}

// CreateEmployee receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var input types.EmployeeInput
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, err.Error())
		return
	}
	if problem := validateEmployee(&input); problem != "" {
		badRequest(w, problem)
		return
	}

	employee := models.EmployeeFromModel(&input)
	record, err := s.Repo.CreateEmployee(r.Context(), &employee)
	if err != nil {
		employeeWriteError(w, r, err, &input, "employee")
		return
	}
	writeJSON(w, r, http.StatusCreated, models.EmployeeToModel(record))
}

// UpdateEmployee receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	number, err := intPathValue(r, "employeeNumber")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var input types.EmployeeInput
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, err.Error())
		return
	}
	if problem := validateEmployee(&input); problem != "" {
		badRequest(w, problem)
		return
	}

	employee := models.EmployeeFromModel(&input)
	record, err := s.Repo.UpdateEmployee(r.Context(), number, &employee)
	if err != nil {
		employeeWriteError(w, r, err, &input, fmt.Sprintf("employee %d", number))
		return
	}
	writeJSON(w, r, http.StatusOK, models.EmployeeToModel(record))
}

// DeleteEmployee receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	number, err := intPathValue(r, "employeeNumber")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := s.Repo.DeleteEmployee(r.Context(), number); err != nil {
		respondError(w, r, err, fmt.Sprintf("employee %d", number))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
