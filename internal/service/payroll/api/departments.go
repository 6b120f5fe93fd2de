/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/epms-project/epms/internal/service/payroll/api/types"
	"github.com/epms-project/epms/internal/service/payroll/db/models"
)

// GetDepartments receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) GetDepartments(w http.ResponseWriter, r *http.Request) {
	records, err := s.Repo.GetDepartments(r.Context())
	if err != nil {
		respondError(w, r, fmt.Errorf("failed to get departments: %w", err), "departments")
		return
	}

	objects := make([]types.Department, len(records))
	for i, record := range records {
		objects[i] = models.DepartmentToModel(&record)
	}
	writeJSON(w, r, http.StatusOK, objects)
}

// GetDepartment receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) GetDepartment(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("departmentCode")
	record, err := s.Repo.GetDepartment(r.Context(), code)
	if err != nil {
		respondError(w, r, err, fmt.Sprintf("department '%s'", code))
		return
	}
	writeJSON(w, r, http.StatusOK, models.DepartmentToModel(record))
}

// CreateDepartment receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var input types.Department
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, err.Error())
		return
	}
	input.DepartmentCode = strings.TrimSpace(input.DepartmentCode)
	input.DepartmentName = strings.TrimSpace(input.DepartmentName)
	if input.DepartmentCode == "" || input.DepartmentName == "" {
		badRequest(w, "departmentCode and departmentName are required")
		return
	}
	if input.GrossSalary < 0 {
		badRequest(w, "grossSalary cannot be negative")
		return
	}

	record, err := s.Repo.CreateDepartment(r.Context(), &models.Department{
		DepartmentCode: input.DepartmentCode,
		DepartmentName: input.DepartmentName,
		GrossSalary:    roundCents(input.GrossSalary),
	})
	if err != nil {
		respondError(w, r, err, fmt.Sprintf("department '%s'", input.DepartmentCode))
		return
	}
	writeJSON(w, r, http.StatusCreated, models.DepartmentToModel(record))
}

// UpdateDepartment receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("departmentCode")
	var input types.DepartmentUpdate
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, err.Error())
		return
	}
	input.DepartmentName = strings.TrimSpace(input.DepartmentName)
	if input.DepartmentName == "" {
		badRequest(w, "departmentName is required")
		return
	}
	if input.GrossSalary < 0 {
		badRequest(w, "grossSalary cannot be negative")
		return
	}

	record, err := s.Repo.UpdateDepartment(r.Context(), code, &models.Department{
		DepartmentName: input.DepartmentName,
		GrossSalary:    roundCents(input.GrossSalary),
	})
	if err != nil {
		respondError(w, r, err, fmt.Sprintf("department '%s'", code))
		return
	}
	writeJSON(w, r, http.StatusOK, models.DepartmentToModel(record))
}

// DeleteDepartment receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("departmentCode")
	if err := s.Repo.DeleteDepartment(r.Context(), code); err != nil {
		respondError(w, r, err, fmt.Sprintf("department '%s'", code))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
