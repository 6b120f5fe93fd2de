/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package auth

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pashagolub/pgxmock/v4"
)

var _ = Describe("PgxStore", func() {
	var (
		ctx   context.Context
		mock  pgxmock.PgxPoolIface
		store *PgxStore
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		mock, err = pgxmock.NewPool()
		Expect(err).ToNot(HaveOccurred())
		store = NewPgxStore(mock)
	})

	AfterEach(func() {
		Expect(mock.ExpectationsWereMet()).To(Succeed())
		mock.Close()
	})

	It("finds an unexpired session", func() {
		mock.ExpectQuery(`SELECT "data" FROM sessions WHERE (.+)"token" = \$1(.+)"expiry" > current_timestamp`).
			WithArgs("tok").
			WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow([]byte("payload")))

		data, found, err := store.FindCtx(ctx, "tok")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(data).To(Equal([]byte("payload")))
	})

	It("reports a missing session without an error", func() {
		mock.ExpectQuery(`SELECT "data" FROM sessions`).
			WithArgs("gone").
			WillReturnRows(pgxmock.NewRows([]string{"data"}))

		data, found, err := store.Find("gone")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeFalse())
		Expect(data).To(BeNil())
	})

	It("upserts a session", func() {
		expiry := time.Now().Add(time.Hour)
		mock.ExpectExec(`INSERT INTO sessions (.+) ON CONFLICT ON CONSTRAINT "?sessions_pkey"? DO UPDATE SET`).
			WithArgs("tok", []byte("payload"), expiry).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		Expect(store.CommitCtx(ctx, "tok", []byte("payload"), expiry)).To(Succeed())
	})

	It("deletes a session", func() {
		mock.ExpectExec(`DELETE FROM sessions WHERE`).
			WithArgs("tok").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		Expect(store.Delete("tok")).To(Succeed())
	})

	It("wraps database errors", func() {
		mock.ExpectExec(`DELETE FROM sessions WHERE`).
			WithArgs("tok").
			WillReturnError(fmt.Errorf("connection reset"))

		Expect(store.DeleteCtx(ctx, "tok")).To(MatchError(ContainSubstring("connection reset")))
	})

	It("removes expired sessions until canceled", func() {
		mock.ExpectExec(`DELETE FROM sessions WHERE (.+)"expiry" < current_timestamp`).
			WillReturnResult(pgxmock.NewResult("DELETE", 4))

		runCtx, cancel := context.WithCancel(ctx)
		store.SetCleanupInterval(10 * time.Millisecond)
		done := make(chan error, 1)
		go func() { done <- store.Run(runCtx) }()

		Eventually(func() error { return mock.ExpectationsWereMet() }).Should(Succeed())
		cancel()
		Eventually(done).Should(Receive(BeNil()))
	})
})
