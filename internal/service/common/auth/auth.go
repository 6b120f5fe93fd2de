/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/epms-project/epms/internal/logging"
	"github.com/epms-project/epms/internal/service/common/api/middleware"
)

// UserInfo is the identity stored in an authenticated session
type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	// Stamp is the PasswordStamp of the password hash the session was opened with
	Stamp string `json:"-"`
}

// ErrUnknownUser is returned by a UserResolver when the user has been deleted
var ErrUnknownUser = errors.New("user no longer exists")

// ErrNotAuthenticated is returned by CurrentUser when the request has no valid session
var ErrNotAuthenticated = errors.New("authentication required")

// UserResolver returns the stored state of a user, with the stamp of its current password
type UserResolver func(ctx context.Context, id int) (*UserInfo, error)

// CurrentUser returns the session user as currently stored.  Sessions of deleted users, or opened before the last
// password change, are rejected with ErrNotAuthenticated.  A nil resolver trusts the session.
func CurrentUser(ctx context.Context, sessions SessionReader, resolve UserResolver) (*UserInfo, error) {
	user, ok := sessions.User(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	if resolve == nil {
		return user, nil
	}
	current, err := resolve(ctx, user.ID)
	switch {
	case errors.Is(err, ErrUnknownUser):
		slog.InfoContext(ctx, "Session of a deleted user rejected", "id", user.ID, "username", user.Username)
		return nil, ErrNotAuthenticated
	case err != nil:
		return nil, fmt.Errorf("failed to resolve session user %d: %w", user.ID, err)
	}
	if current.Stamp != user.Stamp {
		slog.InfoContext(ctx, "Session opened before a password change rejected", "username", current.Username)
		return nil, ErrNotAuthenticated
	}
	return current, nil
}

// SessionReader returns the user bound to the session of the request context, if any
type SessionReader interface {
	User(ctx context.Context) (*UserInfo, bool)
}

type userContextKey struct{}

// WithUser returns a copy of the context carrying the user
func WithUser(ctx context.Context, user *UserInfo) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFrom returns the user placed in the context by the Authenticator
func UserFrom(ctx context.Context) (*UserInfo, bool) {
	user, ok := ctx.Value(userContextKey{}).(*UserInfo)
	return user, ok && user != nil
}

// Authenticator defines an authentication handler that resolves the user from the session cookie of the request.
// Requests without a valid session are rejected with 401.  The role comes from the resolver, not from the session, so
// role changes and deletions apply to open sessions.  Authorization is performed in a later step.
func Authenticator(sessions SessionReader, resolve UserResolver) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user, err := CurrentUser(req.Context(), sessions, resolve)
			if errors.Is(err, ErrNotAuthenticated) {
				middleware.ProblemDetails(w, ErrNotAuthenticated.Error(), http.StatusUnauthorized)
				return
			} else if err != nil {
				slog.ErrorContext(req.Context(), "Failed to authenticate request", "error", err)
				middleware.ProblemDetails(w, "internal server error", http.StatusInternalServerError)
				return
			}

			// Load the user details into the context so that the Authorizer and the handlers have access to it.
			ctx := WithUser(req.Context(), user)
			ctx = logging.AppendCtx(ctx, slog.String("user", user.Username))

			// Proceed to the next layer of handler
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// Authorizer defines an authorization handler that only lets through users holding one of the roles.  This must be
// executed after the Authenticator handler so that the user is attached to the context.
func Authorizer(roles ...string) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user, ok := UserFrom(req.Context())
			if !ok {
				middleware.ProblemDetails(w, "user not in context", http.StatusUnauthorized)
				return
			}

			if !slices.Contains(roles, user.Role) {
				msg := fmt.Sprintf("Authorization not allowed for user '%s'", user.Username)
				slog.DebugContext(req.Context(), msg, "role", user.Role, "method", req.Method, "path", req.URL.Path)
				middleware.ProblemDetails(w, msg, http.StatusForbidden)
				return
			}

			// Proceed to the next layer of handler
			next.ServeHTTP(w, req)
		})
	}
}
