/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package internal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/gomega"

	"github.com/epms-project/epms/internal/logging"
)

var _ = Describe("Tool", func() {
	var logger *slog.Logger

	BeforeEach(func() {
		var err error

		// Create a logger:
		logger, err = logging.NewLogger().
			SetWriter(GinkgoWriter).
			SetLevel("debug").
			Build()
		Expect(err).ToNot(HaveOccurred())
	})

	It("Can't be created without at least one argument", func() {
		tool, err := NewTool().
			SetLogger(logger).
			SetIn(&bytes.Buffer{}).
			SetOut(io.Discard).
			SetErr(io.Discard).
			Build()
		Expect(err).To(HaveOccurred())
		msg := err.Error()
		Expect(msg).To(ContainSubstring("binary"))
		Expect(msg).To(ContainSubstring("required"))
		Expect(tool).To(BeNil())
	})

	It("Can't be created standard input stream", func() {
		tool, err := NewTool().
			SetLogger(logger).
			AddArgs("epms").
			SetOut(io.Discard).
			SetErr(io.Discard).
			Build()
		Expect(err).To(HaveOccurred())
		msg := err.Error()
		Expect(msg).To(ContainSubstring("input"))
		Expect(msg).To(ContainSubstring("mandatory"))
		Expect(tool).To(BeNil())
	})

	It("Can't be created standard output stream", func() {
		tool, err := NewTool().
			SetLogger(logger).
			AddArgs("epms").
			SetIn(&bytes.Buffer{}).
			SetErr(io.Discard).
			Build()
		Expect(err).To(HaveOccurred())
		msg := err.Error()
		Expect(msg).To(ContainSubstring("output"))
		Expect(msg).To(ContainSubstring("mandatory"))
		Expect(tool).To(BeNil())
	})

	It("Can't be created standard error stream", func() {
		tool, err := NewTool().
			SetLogger(logger).
			AddArgs("epms").
			SetIn(&bytes.Buffer{}).
			SetOut(io.Discard).
			Build()
		Expect(err).To(HaveOccurred())
		msg := err.Error()
		Expect(msg).To(ContainSubstring("error"))
		Expect(msg).To(ContainSubstring("mandatory"))
		Expect(tool).To(BeNil())
	})

	It("Runs the selected sub-command with the tool and logger in the context", func() {
		var seenTool *Tool
		var seenLogger *slog.Logger
		tool, err := NewTool().
			SetLogger(logger).
			AddArgs("epms", "inspect").
			SetIn(&bytes.Buffer{}).
			SetOut(io.Discard).
			SetErr(io.Discard).
			AddCommand(func() *cobra.Command {
				return &cobra.Command{
					Use: "inspect",
					RunE: func(cmd *cobra.Command, args []string) error {
						seenTool = ToolFromContext(cmd.Context())
						seenLogger = LoggerFromContext(cmd.Context())
						return nil
					},
				}
			}).
			Build()
		Expect(err).ToNot(HaveOccurred())

		Expect(tool.Run(context.Background())).To(Succeed())
		Expect(seenTool).To(BeIdenticalTo(tool))
		Expect(seenLogger).To(BeIdenticalTo(logger))
	})

	It("Builds the logger from the command line flags", func() {
		out := &bytes.Buffer{}
		var seenLogger *slog.Logger
		tool, err := NewTool().
			AddArgs("epms", "--log-level", "debug", "inspect").
			SetIn(&bytes.Buffer{}).
			SetOut(out).
			SetErr(io.Discard).
			AddCommand(func() *cobra.Command {
				return &cobra.Command{
					Use: "inspect",
					RunE: func(cmd *cobra.Command, args []string) error {
						seenLogger = LoggerFromContext(cmd.Context())
						seenLogger.Debug("probing")
						return nil
					},
				}
			}).
			Build()
		Expect(err).ToNot(HaveOccurred())

		Expect(tool.Run(context.Background())).To(Succeed())
		Expect(seenLogger).ToNot(BeNil())
		Expect(tool.Logger()).To(BeIdenticalTo(seenLogger))
		Expect(out.String()).To(ContainSubstring("probing"))
	})

	It("Returns the error of the sub-command", func() {
		failure := errors.New("boom")
		tool, err := NewTool().
			SetLogger(logger).
			AddArgs("epms", "fail").
			SetIn(&bytes.Buffer{}).
			SetOut(io.Discard).
			SetErr(io.Discard).
			AddCommand(func() *cobra.Command {
				return &cobra.Command{
					Use:  "fail",
					RunE: func(cmd *cobra.Command, args []string) error { return failure },
				}
			}).
			Build()
		Expect(err).ToNot(HaveOccurred())
		Expect(tool.Run(context.Background())).To(MatchError(failure))
	})
})
