/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/epms-project/epms/internal/service/common/api/middleware"
)

// Session defaults
const (
	DefaultCookieName = "user_sid"
	DefaultLifetime   = time.Hour
)

// Keys of the values kept in a session
const (
	userIDKey   = "userID"
	usernameKey = "username"
	roleKey     = "role"
	stampKey    = "stamp"
)

// SessionConfig defines the cookie attributes of the sessions
type SessionConfig struct {
	CookieName   string
	Lifetime     time.Duration
	CookieSecure bool
}

// Sessions binds authenticated users to cookie based sessions
type Sessions struct {
	Manager *scs.SessionManager
}

// Interface compile enforcement
var _ SessionReader = (*Sessions)(nil)

// NewSessions creates the session manager backed by the given store
func NewSessions(store scs.Store, config SessionConfig) *Sessions {
	manager := scs.New()
	manager.Store = store
	manager.Lifetime = DefaultLifetime
	if config.Lifetime > 0 {
		manager.Lifetime = config.Lifetime
	}
	manager.Cookie.Name = DefaultCookieName
	if config.CookieName != "" {
		manager.Cookie.Name = config.CookieName
	}
	manager.Cookie.HttpOnly = true
	manager.Cookie.Path = "/"
	manager.Cookie.Persist = true
	manager.Cookie.SameSite = http.SameSiteLaxMode
	manager.Cookie.Secure = config.CookieSecure
	manager.ErrorFunc = func(w http.ResponseWriter, r *http.Request, err error) {
		slog.ErrorContext(r.Context(), "Session error", "error", err)
		middleware.ProblemDetails(w, "session storage is unavailable", http.StatusInternalServerError)
	}
	return &Sessions{Manager: manager}
}

// LoadAndSave is the middleware that loads the session of every request and saves it afterwards
func (s *Sessions) LoadAndSave() middleware.Middleware {
	return s.Manager.LoadAndSave
}

// Login binds the user to the session.  The token is renewed to prevent session fixation.
func (s *Sessions) Login(ctx context.Context, user UserInfo) error {
	if err := s.Manager.RenewToken(ctx); err != nil {
		return fmt.Errorf("failed to renew session token: %w", err)
	}
	s.Manager.Put(ctx, userIDKey, user.ID)
	s.Manager.Put(ctx, usernameKey, user.Username)
	s.Manager.Put(ctx, roleKey, user.Role)
	s.Manager.Put(ctx, stampKey, user.Stamp)
	return nil
}

// Logout destroys the session
func (s *Sessions) Logout(ctx context.Context) error {
	if err := s.Manager.Destroy(ctx); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// User returns the user bound to the session, if any
func (s *Sessions) User(ctx context.Context) (*UserInfo, bool) {
	if !s.Manager.Exists(ctx, userIDKey) {
		return nil, false
	}
	return &UserInfo{
		ID:       s.Manager.GetInt(ctx, userIDKey),
		Username: s.Manager.GetString(ctx, usernameKey),
		Role:     s.Manager.GetString(ctx, roleKey),
		Stamp:    s.Manager.GetString(ctx, stampKey),
	}, true
}
