/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type NoopSessions struct {
	called bool
	user   *UserInfo
}

func (s *NoopSessions) User(_ context.Context) (*UserInfo, bool) {
	s.called = true
	return s.user, s.user != nil
}

type NoopHandler struct {
	called  bool
	request *http.Request
}

func (h *NoopHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.request = r
	w.WriteHeader(http.StatusOK)
}

var _ = Describe("Authenticator", func() {
	var (
		sessions *NoopSessions
		stored   map[int]UserInfo
		lookups  int
		failure  error
		next     *NoopHandler
		recorder *httptest.ResponseRecorder
		handler  http.Handler
	)

	resolve := func(_ context.Context, id int) (*UserInfo, error) {
		lookups++
		if failure != nil {
			return nil, failure
		}
		user, ok := stored[id]
		if !ok {
			return nil, ErrUnknownUser
		}
		return &user, nil
	}

	serve := func() {
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	}

	BeforeEach(func() {
		sessions = &NoopSessions{user: &UserInfo{ID: 1, Username: "admin", Role: "admin", Stamp: "s1"}}
		stored = map[int]UserInfo{1: {ID: 1, Username: "admin", Role: "admin", Stamp: "s1"}}
		lookups = 0
		failure = nil
		next = &NoopHandler{}
		recorder = httptest.NewRecorder()
		handler = Authenticator(sessions, resolve)(next)
	})

	It("Places the session user in the request context", func() {
		serve()
		Expect(sessions.called).To(BeTrue())
		Expect(lookups).To(Equal(1))
		Expect(next.called).To(BeTrue())
		user, ok := UserFrom(next.request.Context())
		Expect(ok).To(BeTrue())
		Expect(user.Username).To(Equal("admin"))
	})

	It("Rejects requests without a session user", func() {
		sessions.user = nil
		serve()
		Expect(next.called).To(BeFalse())
		Expect(lookups).To(BeZero())
		Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		Expect(recorder.Body.String()).To(ContainSubstring("authentication required"))
	})

	It("Rejects the open session of a deleted user", func() {
		delete(stored, 1)
		serve()
		Expect(next.called).To(BeFalse())
		Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
	})

	It("Rejects a session opened before a password change", func() {
		stored[1] = UserInfo{ID: 1, Username: "admin", Role: "admin", Stamp: "s2"}
		serve()
		Expect(next.called).To(BeFalse())
		Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
	})

	It("Uses the stored role instead of the one in the session", func() {
		stored[1] = UserInfo{ID: 1, Username: "admin", Role: "user", Stamp: "s1"}
		handler = Authenticator(sessions, resolve)(Authorizer("admin")(next))
		serve()
		Expect(next.called).To(BeFalse())
		Expect(recorder.Code).To(Equal(http.StatusForbidden))
	})

	It("Fails when the user cannot be resolved", func() {
		failure = errors.New("connection refused")
		serve()
		Expect(next.called).To(BeFalse())
		Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		Expect(recorder.Body.String()).ToNot(ContainSubstring("connection refused"))
	})

	It("Trusts the session without a resolver", func() {
		handler = Authenticator(sessions, nil)(next)
		serve()
		Expect(next.called).To(BeTrue())
	})
})

var _ = Describe("Authorizer", func() {
	var (
		next     *NoopHandler
		recorder *httptest.ResponseRecorder
		handler  http.Handler
		request  func(user *UserInfo) *http.Request
	)

	BeforeEach(func() {
		next = &NoopHandler{}
		recorder = httptest.NewRecorder()
		handler = Authorizer("admin")(next)
		request = func(user *UserInfo) *http.Request {
			req := httptest.NewRequest(http.MethodDelete, "/api/employees/1", nil)
			if user != nil {
				req = req.WithContext(WithUser(req.Context(), user))
			}
			return req
		}
	})

	It("Authorizes a user holding the role", func() {
		handler.ServeHTTP(recorder, request(&UserInfo{ID: 1, Username: "admin", Role: "admin"}))
		Expect(next.called).To(BeTrue())
		Expect(recorder.Code).To(Equal(http.StatusOK))
	})

	It("Forbids a user without the role", func() {
		handler.ServeHTTP(recorder, request(&UserInfo{ID: 2, Username: "clerk", Role: "user"}))
		Expect(next.called).To(BeFalse())
		Expect(recorder.Code).To(Equal(http.StatusForbidden))
		Expect(recorder.Body.String()).To(ContainSubstring("Authorization not allowed for user 'clerk'"))
	})

	It("Fails the request if the user is not in the context", func() {
		handler.ServeHTTP(recorder, request(nil))
		Expect(next.called).To(BeFalse())
		Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		Expect(recorder.Body.String()).To(ContainSubstring("user not in context"))
	})

	It("Accepts any of several roles", func() {
		handler = Authorizer("admin", "user")(next)
		handler.ServeHTTP(recorder, request(&UserInfo{ID: 2, Username: "clerk", Role: "user"}))
		Expect(next.called).To(BeTrue())
	})
})
