/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"

	"k8s.io/utils/ptr"

	svcutils "github.com/epms-project/epms/internal/service/common/utils"
	"github.com/epms-project/epms/internal/service/payroll/api/types"
	"github.com/epms-project/epms/internal/service/payroll/db/models"
)

// monthPattern matches a YYYY-MM month
var monthPattern = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)

// errInvalidSalary is wrapped by every validation failure of a salary request
var errInvalidSalary = errors.New("invalid salary")

func invalidSalary(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errInvalidSalary, fmt.Sprintf(format, args...))
}

// resolveSalary validates a salary request and derives the amounts it omits.  The gross salary defaults to the
// gross salary of the employee's department and the net salary is gross minus deduction.
func (s *PayrollServer) resolveSalary(ctx context.Context, input *types.SalaryInput) (*models.Salary, error) {
	if input.EmployeeNumber <= 0 {
		return nil, invalidSalary("employeeNumber is required")
	}
	if !monthPattern.MatchString(input.Month) {
		return nil, invalidSalary("month '%s' must use the YYYY-MM format", input.Month)
	}
	if input.TotalDeduction < 0 {
		return nil, invalidSalary("totalDeduction cannot be negative")
	}

	var gross float64
	if input.GrossSalary != nil {
		gross = *input.GrossSalary
	} else {
		departmentGross, err := s.Repo.GetEmployeeGrossSalary(ctx, input.EmployeeNumber)
		if err != nil {
			return nil, err
		}
		gross = departmentGross
	}
	gross = roundCents(gross)
	deduction := roundCents(input.TotalDeduction)

	if gross < 0 {
		return nil, invalidSalary("grossSalary cannot be negative")
	}
	if deduction > gross {
		return nil, invalidSalary("totalDeduction %.2f exceeds grossSalary %.2f", deduction, gross)
	}

	net := roundCents(gross - deduction)
	if input.NetSalary != nil && math.Abs(*input.NetSalary-net) > centsTolerance {
		return nil, invalidSalary("netSalary %.2f does not match grossSalary minus totalDeduction (%.2f)",
			*input.NetSalary, net)
	}

	return &models.Salary{
		EmployeeNumber: input.EmployeeNumber,
		GrossSalary:    gross,
		TotalDeduction: deduction,
		NetSalary:      net,
		Month:          input.Month,
	}, nil
}

// salaryWriteError reports validation failures as bad requests; anything else is mapped as usual
func salaryWriteError(w http.ResponseWriter, r *http.Request, err error, input *types.SalaryInput) {
	if errors.Is(err, errInvalidSalary) {
		badRequest(w, err.Error())
		return
	}
	respondError(w, r, err, fmt.Sprintf("salary of employee %d for %s", input.EmployeeNumber, input.Month))
}

// GetSalaries receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) GetSalaries(w http.ResponseWriter, r *http.Request) {
	var filter models.SalaryFilter
	query := r.URL.Query()
	if month := query.Get("month"); month != "" {
		if !monthPattern.MatchString(month) {
			badRequest(w, fmt.Sprintf("month '%s' must use the YYYY-MM format", month))
			return
		}
		filter.Month = ptr.To(month)
	}
	if value := query.Get("employeeNumber"); value != "" {
		number, err := strconv.Atoi(value)
		if err != nil {
			badRequest(w, fmt.Sprintf("invalid employeeNumber '%s'", value))
			return
		}
		filter.EmployeeNumber = ptr.To(number)
	}

	records, err := s.Repo.GetSalaries(r.Context(), filter)
	if err != nil {
		respondError(w, r, fmt.Errorf("failed to get salaries: %w", err), "salaries")
		return
	}

	objects := make([]types.SalaryDetail, len(records))
	for i, record := range records {
		objects[i] = models.SalaryDetailToModel(&record)
	}
	writeJSON(w, r, http.StatusOK, objects)
}

// GetSalary receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) GetSalary(w http.ResponseWriter, r *http.Request) {
	id, err := intPathValue(r, "salaryId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	record, err := s.Repo.GetSalary(r.Context(), id)
	if err != nil {
		respondError(w, r, err, fmt.Sprintf("salary %d", id))
		return
	}
	writeJSON(w, r, http.StatusOK, models.SalaryToModel(record))
}

// CreateSalary receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) CreateSalary(w http.ResponseWriter, r *http.Request) {
	var input types.SalaryInput
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, err.Error())
		return
	}

	salary, err := s.resolveSalary(r.Context(), &input)
	if err != nil {
		salaryWriteError(w, r, err, &input)
		return
	}

	record, err := s.Repo.CreateSalary(r.Context(), salary)
	if err != nil {
		salaryWriteError(w, r, err, &input)
		return
	}
	writeJSON(w, r, http.StatusCreated, models.SalaryToModel(record))
}

// UpdateSalary receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	id, err := intPathValue(r, "salaryId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var input types.SalaryInput
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, err.Error())
		return
	}

	salary, err := s.resolveSalary(r.Context(), &input)
	if err != nil {
		salaryWriteError(w, r, err, &input)
		return
	}

	record, err := s.Repo.UpdateSalary(r.Context(), id, salary)
	if errors.Is(err, svcutils.ErrNotFound) {
		respondError(w, r, err, fmt.Sprintf("salary %d", id))
		return
	} else if err != nil {
		salaryWriteError(w, r, err, &input)
		return
	}
	writeJSON(w, r, http.StatusOK, models.SalaryToModel(record))
}

// DeleteSalary receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) DeleteSalary(w http.ResponseWriter, r *http.Request) {
	id, err := intPathValue(r, "salaryId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := s.Repo.DeleteSalary(r.Context(), id); err != nil {
		respondError(w, r, err, fmt.Sprintf("salary %d", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
