// SPDX-FileCopyrightText: Red Hat
//
// SPDX-License-Identifier: Apache-2.0
package api_test

import (
	"errors"
	"net"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/epms-project/epms/internal/service/common/api"
)

var _ = Describe("GracefulShutdown", func() {
	It("stops a running server", func() {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).ToNot(HaveOccurred())

		srv := &http.Server{
			Handler:           http.NotFoundHandler(),
			ReadHeaderTimeout: time.Second,
		}
		served := make(chan error, 1)
		go func() {
			served <- srv.Serve(listener)
		}()

		Expect(api.GracefulShutdown(srv)).To(Succeed())
		Eventually(served).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	It("succeeds for a server that never started", func() {
		srv := &http.Server{ReadHeaderTimeout: time.Second}
		err := api.GracefulShutdown(srv)
		Expect(errors.Is(err, http.ErrServerClosed)).To(BeFalse())
		Expect(err).ToNot(HaveOccurred())
	})
})
