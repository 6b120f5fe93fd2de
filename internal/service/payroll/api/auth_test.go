/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/epms-project/epms/internal/service/common/auth"
	svcutils "github.com/epms-project/epms/internal/service/common/utils"
	"github.com/epms-project/epms/internal/service/payroll/api/types"
	"github.com/epms-project/epms/internal/service/payroll/db/models"
)

var _ = Describe("Authentication", func() {
	var h *harness

	BeforeEach(func() {
		h = newHarness(&PayrollServerConfig{})
	})

	Describe("Login", func() {
		It("returns the user and an http only session cookie", func() {
			user := clerkUser
			user.Password = testPasswordHash
			h.repo.EXPECT().GetUserByUsername(gomock.Any(), "clerk").Return(&user, nil)

			recorder := h.do(http.MethodPost, "/api/auth/login", `{"username":"clerk","password":"secret1"}`, nil)
			Expect(recorder.Code).To(Equal(http.StatusOK))
			response := decode[types.AuthResponse](recorder)
			Expect(response.Message).To(Equal("Login successful"))
			Expect(response.User).To(Equal(&types.User{Id: 2, Username: "clerk", Role: models.RoleUser}))
			Expect(recorder.Body.String()).ToNot(ContainSubstring("password"))

			cookies := recorder.Result().Cookies()
			Expect(cookies).To(ContainElement(And(
				HaveField("Name", auth.DefaultCookieName),
				HaveField("HttpOnly", true),
			)))
		})

		It("rejects a wrong password", func() {
			user := clerkUser
			user.Password = testPasswordHash
			h.repo.EXPECT().GetUserByUsername(gomock.Any(), "clerk").Return(&user, nil)

			recorder := h.do(http.MethodPost, "/api/auth/login", `{"username":"clerk","password":"wrong"}`, nil)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(problem(recorder).Detail).To(Equal(invalidCredentials))
		})

		It("gives the same answer for an unknown user", func() {
			h.repo.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, svcutils.ErrNotFound)

			recorder := h.do(http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"secret1"}`, nil)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(problem(recorder).Detail).To(Equal(invalidCredentials))
		})

		It("requires both fields", func() {
			recorder := h.do(http.MethodPost, "/api/auth/login", `{"username":"clerk"}`, nil)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Session", func() {
		It("reports no session without a cookie", func() {
			recorder := h.do(http.MethodGet, "/api/auth/check-session", "", nil)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))

			recorder = h.do(http.MethodGet, "/api/auth/me", "", nil)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("reports the session user until logout", func() {
			cookie := h.login(clerkUser)

			recorder := h.do(http.MethodGet, "/api/auth/check-session", "", cookie)
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(decode[types.AuthResponse](recorder).User.Username).To(Equal("clerk"))

			recorder = h.do(http.MethodGet, "/api/auth/me", "", cookie)
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(decode[types.User](recorder).Role).To(Equal(models.RoleUser))

			recorder = h.do(http.MethodPost, "/api/auth/logout", "", cookie)
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(decode[types.MessageResponse](recorder).Message).To(Equal("Logout successful"))

			recorder = h.do(http.MethodGet, "/api/auth/check-session", "", cookie)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("treats a deleted user as logged out", func() {
			cookie := h.login(clerkUser)
			delete(h.users, clerkUser.ID)

			recorder := h.do(http.MethodGet, "/api/auth/me", "", cookie)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Register", func() {
		var admin *http.Cookie

		BeforeEach(func() {
			admin = h.login(adminUser)
		})

		It("stores a hashed password", func() {
			h.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, user *models.User) (*models.User, error) {
					Expect(user.Username).To(Equal("newbie"))
					Expect(user.Role).To(Equal(models.RoleUser))
					Expect(user.Password).ToNot(Equal("newpass1"))
					Expect(auth.CheckPassword(user.Password, "newpass1")).To(BeTrue())
					created := *user
					created.ID = 3
					return &created, nil
				})

			recorder := h.do(http.MethodPost, "/api/auth/register",
				`{"username":"newbie","password":"newpass1","role":"user"}`, admin)
			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(decode[types.AuthResponse](recorder).User.Id).To(Equal(3))
		})

		It("rejects a short password", func() {
			recorder := h.do(http.MethodPost, "/api/auth/register",
				`{"username":"newbie","password":"abc","role":"user"}`, admin)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(problem(recorder).Detail).To(Equal(auth.ErrPasswordTooShort.Error()))
		})

		It("rejects an unknown role", func() {
			recorder := h.do(http.MethodPost, "/api/auth/register",
				`{"username":"newbie","password":"newpass1","role":"root"}`, admin)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("reports a duplicate username as a conflict", func() {
			h.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
				Return(nil, &svcutils.ConstraintError{Kind: svcutils.ErrConflict, Constraint: "users_username_key"})

			recorder := h.do(http.MethodPost, "/api/auth/register",
				`{"username":"admin","password":"newpass1","role":"admin"}`, admin)
			Expect(recorder.Code).To(Equal(http.StatusConflict))
			Expect(problem(recorder).Detail).To(Equal("user 'admin' already exists"))
		})

		It("is reserved to admins", func() {
			clerk := h.login(clerkUser)
			recorder := h.do(http.MethodPost, "/api/auth/register",
				`{"username":"newbie","password":"newpass1","role":"admin"}`, clerk)
			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})
	})
})

var _ = Describe("Users", func() {
	var h *harness

	BeforeEach(func() {
		h = newHarness(&PayrollServerConfig{})
	})

	It("lists users without their passwords", func() {
		admin := h.login(adminUser)
		h.repo.EXPECT().GetUsers(gomock.Any()).Return([]models.User{
			{ID: 1, Username: "admin", Password: testPasswordHash, Role: models.RoleAdmin},
		}, nil)

		recorder := h.do(http.MethodGet, "/api/users", "", admin)
		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(recorder.Body.String()).ToNot(ContainSubstring(testPasswordHash))
		Expect(decode[[]types.User](recorder)).To(HaveLen(1))
	})

	It("refuses to let an admin delete their own account", func() {
		admin := h.login(adminUser)

		recorder := h.do(http.MethodDelete, "/api/users/1", "", admin)
		Expect(recorder.Code).To(Equal(http.StatusConflict))
	})

	It("deletes another account", func() {
		admin := h.login(adminUser)
		h.repo.EXPECT().DeleteUser(gomock.Any(), 2).Return(nil)

		recorder := h.do(http.MethodDelete, "/api/users/2", "", admin)
		Expect(recorder.Code).To(Equal(http.StatusNoContent))
	})

	It("ends the open sessions of a deleted admin", func() {
		oldAdmin := h.login(models.User{ID: 5, Username: "old-admin", Role: models.RoleAdmin})
		admin := h.login(adminUser)
		h.repo.EXPECT().DeleteUser(gomock.Any(), 5).DoAndReturn(func(_ any, id int) error {
			delete(h.users, id)
			return nil
		})

		recorder := h.do(http.MethodDelete, "/api/users/5", "", admin)
		Expect(recorder.Code).To(Equal(http.StatusNoContent))

		recorder = h.do(http.MethodGet, "/api/users", "", oldAdmin)
		Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
	})

	It("applies a role change to open sessions", func() {
		admin := h.login(models.User{ID: 5, Username: "demoted", Role: models.RoleAdmin})
		demoted := h.users[5]
		demoted.Role = models.RoleUser
		h.users[5] = demoted

		recorder := h.do(http.MethodGet, "/api/users", "", admin)
		Expect(recorder.Code).To(Equal(http.StatusForbidden))
	})

	Describe("ChangePassword", func() {
		It("ends the other sessions of the user", func() {
			laptop := h.login(clerkUser)
			phone := h.login(clerkUser)
			h.repo.EXPECT().UpdateUserPassword(gomock.Any(), 2, gomock.Any()).
				DoAndReturn(func(_ any, id int, hash string) error {
					user := h.users[id]
					user.Password = hash
					h.users[id] = user
					return nil
				})

			recorder := h.do(http.MethodPut, "/api/users/2/password", `{"password":"changed1"}`, laptop)
			Expect(recorder.Code).To(Equal(http.StatusOK))
			renewed := sessionCookie(recorder)
			Expect(renewed).ToNot(BeNil())

			recorder = h.do(http.MethodGet, "/api/auth/check-session", "", phone)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))

			recorder = h.do(http.MethodGet, "/api/auth/check-session", "", renewed)
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("lets users change their own password", func() {
			clerk := h.login(clerkUser)
			h.repo.EXPECT().UpdateUserPassword(gomock.Any(), 2, gomock.Any()).
				DoAndReturn(func(_ any, _ int, hash string) error {
					Expect(auth.CheckPassword(hash, "changed1")).To(BeTrue())
					return nil
				})

			recorder := h.do(http.MethodPut, "/api/users/2/password", `{"password":"changed1"}`, clerk)
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("forbids changing the password of someone else", func() {
			clerk := h.login(clerkUser)

			recorder := h.do(http.MethodPut, "/api/users/1/password", `{"password":"changed1"}`, clerk)
			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})

		It("lets admins change any password", func() {
			admin := h.login(adminUser)
			h.repo.EXPECT().UpdateUserPassword(gomock.Any(), 7, gomock.Any()).Return(svcutils.ErrNotFound)

			recorder := h.do(http.MethodPut, "/api/users/7/password", `{"password":"changed1"}`, admin)
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})
