/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/epms-project/epms/internal/service/payroll/api/types"
	"github.com/epms-project/epms/internal/service/payroll/db/models"
)

// GetStats receives the API request to this endpoint, executes the request, and responds appropriately.  The totals
// are queried concurrently.
func (s *PayrollServer) GetStats(w http.ResponseWriter, r *http.Request) {
	var stats models.Stats
	group, ctx := errgroup.WithContext(r.Context())
	group.Go(func() (err error) {
		stats.Employees, err = s.Repo.CountEmployees(ctx)
		return
	})
	group.Go(func() (err error) {
		stats.Departments, err = s.Repo.CountDepartments(ctx)
		return
	})
	group.Go(func() (err error) {
		stats.TotalSalary, err = s.Repo.GetTotalNetSalary(ctx)
		return
	})
	if err := group.Wait(); err != nil {
		respondError(w, r, fmt.Errorf("failed to get stats: %w", err), "stats")
		return
	}

	writeJSON(w, r, http.StatusOK, models.StatsToModel(&stats))
}

// GetDepartmentDistribution receives the API request to this endpoint, executes the request, and responds
// appropriately
func (s *PayrollServer) GetDepartmentDistribution(w http.ResponseWriter, r *http.Request) {
	records, err := s.Repo.GetDepartmentDistribution(r.Context())
	if err != nil {
		respondError(w, r, fmt.Errorf("failed to get department distribution: %w", err), "distribution")
		return
	}

	objects := make([]types.DepartmentCount, len(records))
	for i, record := range records {
		objects[i] = models.DepartmentCountToModel(&record)
	}
	writeJSON(w, r, http.StatusOK, objects)
}
