/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
)

var _ = Describe("Logger", func() {
	var buffer *bytes.Buffer

	BeforeEach(func() {
		buffer = &bytes.Buffer{}
	})

	// single builds a logger writing to the buffer, runs the given function and returns the only
	// message that was written.
	single := func(builder *LoggerBuilder, write func(*slog.Logger)) map[string]any {
		logger, err := builder.SetWriter(io.MultiWriter(buffer, GinkgoWriter)).Build()
		ExpectWithOffset(1, err).ToNot(HaveOccurred())
		write(logger)
		messages := Parse(buffer)
		ExpectWithOffset(1, messages).To(HaveLen(1))
		return messages[0]
	}

	flagsFor := func(args ...string) *pflag.FlagSet {
		flags := pflag.NewFlagSet("", pflag.ContinueOnError)
		AddFlags(flags)
		ExpectWithOffset(1, flags.Parse(args)).To(Succeed())
		return flags
	}

	It("Rejects unknown level", func() {
		logger, err := NewLogger().SetWriter(buffer).SetLevel("junk").Build()
		Expect(err).To(HaveOccurred())
		msg := err.Error()
		Expect(msg).To(ContainSubstring("level"))
		Expect(msg).To(ContainSubstring("junk"))
		Expect(msg).To(ContainSubstring("unknown"))
		Expect(logger).To(BeNil())
	})

	It("Writes time in UTC with RFC3339 format", func() {
		msg := single(NewLogger().SetLevel("debug"), func(l *slog.Logger) { l.Info("") })
		ts, err := time.Parse(time.RFC3339, msg["time"].(string))
		Expect(err).ToNot(HaveOccurred())
		zone, offset := ts.Zone()
		Expect(zone).To(Equal("UTC"))
		Expect(offset).To(BeZero())
	})

	DescribeTable("Writes the level name",
		func(write func(*slog.Logger), expected string) {
			msg := single(NewLogger().SetLevel("debug"), write)
			Expect(msg["level"]).To(Equal(expected))
		},
		Entry("error", func(l *slog.Logger) { l.Error("") }, "ERROR"),
		Entry("warn", func(l *slog.Logger) { l.Warn("") }, "WARN"),
		Entry("info", func(l *slog.Logger) { l.Info("") }, "INFO"),
		Entry("debug", func(l *slog.Logger) { l.Debug("") }, "DEBUG"),
	)

	It("Doesn't write debug messages by default", func() {
		logger, err := NewLogger().SetWriter(buffer).Build()
		Expect(err).ToNot(HaveOccurred())
		logger.Debug("")
		Expect(buffer.Len()).To(BeZero())
	})

	It("Writes to the explicitly provided file", func() {
		file := filepath.Join(GinkgoT().TempDir(), "epms.log")

		logger, err := NewLogger().SetLevel("debug").SetFile(file).Build()
		Expect(err).ToNot(HaveOccurred())
		logger.Info("my message")

		info, err := os.Stat(file)
		Expect(err).ToNot(HaveOccurred())
		Expect(info.Mode() & 0o600).To(Equal(os.FileMode(0o600)))
		Expect(info.Mode() & 0o111).To(BeZero())
		data, err := os.ReadFile(file)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("my message"))
	})

	It("Writes to the configured standard error stream", func() {
		logger, err := NewLogger().SetErr(buffer).SetFile("stderr").Build()
		Expect(err).ToNot(HaveOccurred())
		logger.Info("to stderr")
		Expect(buffer.String()).To(ContainSubstring("to stderr"))
	})

	It("Adds custom and pid fields", func() {
		msg := single(NewLogger().AddField("service", "payroll").AddField("pid", "%p"),
			func(l *slog.Logger) { l.Info("my message") })
		Expect(msg).To(HaveKeyWithValue("service", "payroll"))
		Expect(msg).To(HaveKeyWithValue("pid", BeNumerically("==", os.Getpid())))
	})

	It("Honors log file and level flags", func() {
		file := filepath.Join(GinkgoT().TempDir(), "epms.log")
		logger, err := NewLogger().
			SetFlags(flagsFor("--log-level", "info", "--log-file", file)).
			Build()
		Expect(err).ToNot(HaveOccurred())

		logger.Info("good message")
		logger.Debug("bad message")

		data, err := os.ReadFile(file)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("good message"))
		Expect(string(data)).ToNot(ContainSubstring("bad message"))
	})

	It("Honors mixed field and fields flags", func() {
		flags := flagsFor(
			"--log-field", "my-field=my-value,with-comma",
			"--log-fields", "your-field=your-value,our-field=our-value",
			"--log-field", "my-pid=%p",
		)
		msg := single(NewLogger().SetFlags(flags), func(l *slog.Logger) { l.Info("my message") })
		Expect(msg).To(HaveKeyWithValue("my-field", "my-value,with-comma"))
		Expect(msg).To(HaveKeyWithValue("your-field", "your-value"))
		Expect(msg).To(HaveKeyWithValue("our-field", "our-value"))
		Expect(msg).To(HaveKeyWithValue("my-pid", BeNumerically("==", os.Getpid())))
	})

	It("Redacts marked fields and passwords by default", func() {
		msg := single(NewLogger(), func(l *slog.Logger) {
			l.Info("User created", "username", "alice", "password", "secret1", "!hash", "$2a$10$x")
		})
		Expect(msg).To(HaveKeyWithValue("username", "alice"))
		Expect(msg).To(HaveKeyWithValue("password", "***"))
		Expect(msg).To(HaveKeyWithValue("hash", "***"))
	})

	It("Redacts additional sensitive keys", func() {
		msg := single(NewLogger().AddSensitiveKey("telephone"), func(l *slog.Logger) {
			l.Info("Employee created", "telephone", "0788000000")
		})
		Expect(msg).To(HaveKeyWithValue("telephone", "***"))
	})

	It("Doesn't redact when disabled by flag", func() {
		msg := single(NewLogger().SetFlags(flagsFor("--log-redact=false")), func(l *slog.Logger) {
			l.Info("my message", "!my-field", "my-value", "password", "secret1")
		})
		Expect(msg).To(HaveKeyWithValue("my-field", "my-value"))
		Expect(msg).To(HaveKeyWithValue("password", "secret1"))
	})

	It("Redacts in derived loggers", func() {
		msg := single(NewLogger(), func(l *slog.Logger) {
			l.With("!my-field", "my-value").WithGroup("my-group").Info("message", "!your-field", "your-value")
		})
		Expect(msg).To(HaveKeyWithValue("my-field", "***"))
		Expect(msg).To(HaveKeyWithValue("my-group", HaveKeyWithValue("your-field", "***")))
	})

	It("Adds attributes stored in the context", func() {
		ctx := AppendCtx(context.Background(), slog.String("requestId", "abc"))
		ctx = AppendCtx(ctx, slog.String("user", "alice"))
		msg := single(NewLogger(), func(l *slog.Logger) { l.InfoContext(ctx, "handled") })
		Expect(msg).To(HaveKeyWithValue("requestId", "abc"))
		Expect(msg).To(HaveKeyWithValue("user", "alice"))
	})

	It("Doesn't leak attributes between sibling contexts", func() {
		parent := AppendCtx(context.Background(), slog.String("requestId", "abc"))
		_ = AppendCtx(parent, slog.String("user", "alice"))
		msg := single(NewLogger(), func(l *slog.Logger) { l.InfoContext(parent, "handled") })
		Expect(msg).ToNot(HaveKey("user"))
	})
})
