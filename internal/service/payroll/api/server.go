/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/epms-project/epms/internal/network"
	"github.com/epms-project/epms/internal/service/common/api/middleware"
	"github.com/epms-project/epms/internal/service/common/auth"
	svcutils "github.com/epms-project/epms/internal/service/common/utils"
	"github.com/epms-project/epms/internal/service/payroll/db/repo"
)

// PayrollServerConfig defines the configuration attributes of the payroll server
type PayrollServerConfig struct {
	Listener        *network.ListenerBuilder
	CORSOrigins     []string
	UIDir           string
	CookieSecure    bool
	SessionLifetime time.Duration
	Admin           AdminConfig
}

// AdminConfig defines the account created when the users table is empty.  Values are loaded from the
// environment using the EPMS_ADMIN prefix.
type AdminConfig struct {
	Username string `default:"admin"`
	Password string `default:"admin123"`
}

// Validate checks every attribute and reports all the problems found at once
func (c *PayrollServerConfig) Validate() error {
	var result *multierror.Error
	if c.Listener == nil {
		result = multierror.Append(result, errors.New("listener is mandatory"))
	}
	if c.SessionLifetime <= 0 {
		result = multierror.Append(result, fmt.Errorf("session lifetime must be positive, got %s", c.SessionLifetime))
	}
	if slices.Contains(c.CORSOrigins, "*") {
		result = multierror.Append(result, errors.New("wildcard CORS origin cannot be used with session cookies"))
	}
	if c.UIDir != "" {
		info, err := os.Stat(c.UIDir)
		switch {
		case err != nil:
			result = multierror.Append(result, fmt.Errorf("failed to access UI directory: %w", err))
		case !info.IsDir():
			result = multierror.Append(result, fmt.Errorf("UI path '%s' is not a directory", c.UIDir))
		}
	}
	if c.Admin.Username == "" {
		result = multierror.Append(result, errors.New("initial admin username is mandatory"))
	}
	if err := auth.ValidatePassword(c.Admin.Password); err != nil {
		result = multierror.Append(result, fmt.Errorf("initial admin password: %w", err))
	}
	return result.ErrorOrNil() //nolint:wrapcheck
}

// SessionManager binds users to the sessions of the requests
type SessionManager interface {
	auth.SessionReader
	Login(ctx context.Context, user auth.UserInfo) error
	Logout(ctx context.Context) error
}

// PayrollServer defines the instance attributes for an instance of a payroll server
type PayrollServer struct {
	Config   *PayrollServerConfig
	Repo     repo.RepositoryInterface
	Sessions SessionManager
}

// centsTolerance is the largest accepted difference between a supplied and a computed amount
const centsTolerance = 0.01

// roundCents rounds an amount to two decimals
func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}

// writeJSON writes a JSON document with the given status code
func writeJSON(w http.ResponseWriter, r *http.Request, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.WarnContext(r.Context(), "failed to write response", "error", err)
	}
}

// decodeBody unmarshals the request body, rejecting unknown fields
func decodeBody(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// intPathValue parses a numeric path parameter
func intPathValue(r *http.Request, name string) (int, error) {
	// Identifiers are SERIAL columns
	value, err := strconv.ParseInt(r.PathValue(name), 10, 32)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("invalid %s '%s'", name, r.PathValue(name))
	}
	return int(value), nil
}

// badRequest writes a 400 problem details response
func badRequest(w http.ResponseWriter, detail string) {
	middleware.ProblemDetails(w, detail, http.StatusBadRequest)
}

// respondError maps a repository error onto a problem details response.  The subject names the entity the request
// addressed and is used in the not found message.  Unclassified errors are logged and reported without details.
func respondError(w http.ResponseWriter, r *http.Request, err error, subject string) {
	switch {
	case errors.Is(err, svcutils.ErrNotFound):
		middleware.ProblemDetails(w, fmt.Sprintf("%s not found", subject), http.StatusNotFound)
	case errors.Is(err, repo.ErrDepartmentInUse):
		middleware.ProblemDetails(w, "Cannot delete department with existing employees", http.StatusConflict)
	case errors.Is(err, svcutils.ErrConflict):
		middleware.ProblemDetails(w, fmt.Sprintf("%s already exists", subject), http.StatusConflict)
	case errors.Is(err, repo.ErrEmployeeNotFound):
		badRequest(w, "employee does not exist")
	case errors.Is(err, svcutils.ErrInvalidReference), errors.Is(err, svcutils.ErrInvalidValue):
		badRequest(w, err.Error())
	default:
		slog.ErrorContext(r.Context(), "request failed", "subject", subject, "error", err)
		middleware.ProblemDetails(w, "internal server error", http.StatusInternalServerError)
	}
}

// HealthCheck reports whether the database is reachable
func (s *PayrollServer) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.Repo.Ping(ctx); err != nil {
		slog.ErrorContext(r.Context(), "health check failed", "error", err)
		middleware.ProblemDetails(w, "database is unreachable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
