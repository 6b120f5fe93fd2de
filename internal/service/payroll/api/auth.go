/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/epms-project/epms/internal/service/common/api/middleware"
	"github.com/epms-project/epms/internal/service/common/auth"
	svcutils "github.com/epms-project/epms/internal/service/common/utils"
	"github.com/epms-project/epms/internal/service/payroll/api/types"
	"github.com/epms-project/epms/internal/service/payroll/db/models"
)

// invalidCredentials is the only detail given when a login fails, whatever the reason
const invalidCredentials = "invalid credentials"

func userInfo(user *models.User) auth.UserInfo {
	return auth.UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Stamp:    auth.PasswordStamp(user.Password),
	}
}

// resolveUser is the auth.UserResolver backed by the users table
func (s *PayrollServer) resolveUser(ctx context.Context, id int) (*auth.UserInfo, error) {
	record, err := s.Repo.GetUser(ctx, id)
	if errors.Is(err, svcutils.ErrNotFound) {
		return nil, auth.ErrUnknownUser
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	info := userInfo(record)
	return &info, nil
}

func sessionUser(info *auth.UserInfo) *types.User {
	return &types.User{Id: info.ID, Username: info.Username, Role: info.Role}
}

// Login receives the API request to this endpoint, verifies the credentials and binds the user to the session
func (s *PayrollServer) Login(w http.ResponseWriter, r *http.Request) {
	var input types.LoginRequest
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, err.Error())
		return
	}
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || input.Password == "" {
		badRequest(w, "username and password are required")
		return
	}

	user, err := s.Repo.GetUserByUsername(r.Context(), input.Username)
	switch {
	case errors.Is(err, svcutils.ErrNotFound):
		// Unknown users cost the same bcrypt comparison as wrong passwords
		auth.CheckPassword("", input.Password)
		slog.InfoContext(r.Context(), "Login failed", "username", input.Username, "reason", "unknown user")
		middleware.ProblemDetails(w, invalidCredentials, http.StatusUnauthorized)
		return
	case err != nil:
		respondError(w, r, fmt.Errorf("failed to get user: %w", err), "user")
		return
	}

	if !auth.CheckPassword(user.Password, input.Password) {
		slog.InfoContext(r.Context(), "Login failed", "username", input.Username, "reason", "wrong password")
		middleware.ProblemDetails(w, invalidCredentials, http.StatusUnauthorized)
		return
	}

	info := userInfo(user)
	if err := s.Sessions.Login(r.Context(), info); err != nil {
		respondError(w, r, err, "session")
		return
	}

	slog.InfoContext(r.Context(), "User logged in", "username", user.Username, "role", user.Role)
	writeJSON(w, r, http.StatusOK, types.AuthResponse{
		Message: "Login successful",
		User:    sessionUser(&info),
	})
}

// Register receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) Register(w http.ResponseWriter, r *http.Request) {
	var input types.RegisterRequest
	if err := decodeBody(r, &input); err != nil {
		badRequest(w, err.Error())
		return
	}
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" {
		badRequest(w, "username is required")
		return
	}
	if err := auth.ValidatePassword(input.Password); err != nil {
		badRequest(w, err.Error())
		return
	}
	if !models.ValidRole(input.Role) {
		badRequest(w, fmt.Sprintf("role must be '%s' or '%s'", models.RoleAdmin, models.RoleUser))
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		respondError(w, r, err, "user")
		return
	}
	record, err := s.Repo.CreateUser(r.Context(), &models.User{
		Username: input.Username,
		Password: hash,
		Role:     input.Role,
	})
	if err != nil {
		respondError(w, r, err, fmt.Sprintf("user '%s'", input.Username))
		return
	}

	slog.InfoContext(r.Context(), "User registered", "username", record.Username, "role", record.Role)
	user := models.UserToModel(record)
	writeJSON(w, r, http.StatusCreated, types.AuthResponse{
		Message: "User registered successfully",
		User:    &user,
	})
}

// Logout receives the API request to this endpoint and destroys the session
func (s *PayrollServer) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.Sessions.Logout(r.Context()); err != nil {
		respondError(w, r, err, "session")
		return
	}
	writeJSON(w, r, http.StatusOK, types.MessageResponse{Message: "Logout successful"})
}

// CheckSession receives the API request to this endpoint and reports the user bound to the session
func (s *PayrollServer) CheckSession(w http.ResponseWriter, r *http.Request) {
	info, err := auth.CurrentUser(r.Context(), s.Sessions, s.resolveUser)
	if errors.Is(err, auth.ErrNotAuthenticated) {
		middleware.ProblemDetails(w, "not authenticated", http.StatusUnauthorized)
		return
	} else if err != nil {
		respondError(w, r, err, "user")
		return
	}
	writeJSON(w, r, http.StatusOK, types.AuthResponse{User: sessionUser(info)})
}

// GetCurrentUser receives the API request to this endpoint and returns the stored record of the session user
func (s *PayrollServer) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	info, ok := s.Sessions.User(r.Context())
	if !ok {
		middleware.ProblemDetails(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	record, err := s.Repo.GetUser(r.Context(), info.ID)
	if errors.Is(err, svcutils.ErrNotFound) {
		middleware.ProblemDetails(w, "not authenticated", http.StatusUnauthorized)
		return
	} else if err != nil {
		respondError(w, r, err, "user")
		return
	}
	if auth.PasswordStamp(record.Password) != info.Stamp {
		middleware.ProblemDetails(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	writeJSON(w, r, http.StatusOK, models.UserToModel(record))
}
