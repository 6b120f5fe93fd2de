/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/epms-project/epms/internal/service/common/api/middleware"
	"github.com/epms-project/epms/internal/service/common/auth"
	"github.com/epms-project/epms/internal/service/payroll/api/types"
	"github.com/epms-project/epms/internal/service/payroll/db/models"
)

// GetUsers receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) GetUsers(w http.ResponseWriter, r *http.Request) {
	records, err := s.Repo.GetUsers(r.Context())
	if err != nil {
		respondError(w, r, fmt.Errorf("failed to get users: %w", err), "users")
		return
	}

	objects := make([]types.User, len(records))
	for i, record := range records {
		objects[i] = models.UserToModel(&record)
	}
	writeJSON(w, r, http.StatusOK, objects)
}

// DeleteUser receives the API request to this endpoint, executes the request, and responds appropriately.  Users
// cannot delete their own account.
func (s *PayrollServer) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := intPathValue(r, "userId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	current, ok := auth.UserFrom(r.Context())
	if !ok {
		middleware.ProblemDetails(w, "authentication required", http.StatusUnauthorized)
		return
	}
	if current.ID == id {
		middleware.ProblemDetails(w, "cannot delete your own account", http.StatusConflict)
		return
	}

	if err := s.Repo.DeleteUser(r.Context(), id); err != nil {
		respondError(w, r, err, fmt.Sprintf("user %d", id))
		return
	}
	slog.InfoContext(r.Context(), "User deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// ChangePassword receives the API request to this endpoint, executes the request, and responds appropriately.
// Admins can change any password, other users only their own.
func (s *PayrollServer) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, err := intPathValue(r, "userId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	current, ok := auth.UserFrom(r.Context())
	if !ok {
		middleware.ProblemDetails(w, "authentication required", http.StatusUnauthorized)
		return
	}
	if current.Role != models.RoleAdmin && current.ID != id {
		middleware.ProblemDetails(w,
			fmt.Sprintf("Authorization not allowed for user '%s'", current.Username), http.StatusForbidden)
		return
	}

	var input types.PasswordChange
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := auth.ValidatePassword(input.Password); err != nil {
		badRequest(w, err.Error())
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		respondError(w, r, err, "user")
		return
	}
	if err := s.Repo.UpdateUserPassword(r.Context(), id, hash); err != nil {
		respondError(w, r, err, fmt.Sprintf("user %d", id))
		return
	}
	// Other sessions of the user are now stale, the current one is kept
	if current.ID == id {
		renewed := *current
		renewed.Stamp = auth.PasswordStamp(hash)
		if err := s.Sessions.Login(r.Context(), renewed); err != nil {
			respondError(w, r, err, "session")
			return
		}
	}
	slog.InfoContext(r.Context(), "Password changed", "id", id, "by", current.Username)
	writeJSON(w, r, http.StatusOK, types.MessageResponse{Message: "Password updated successfully"})
}
