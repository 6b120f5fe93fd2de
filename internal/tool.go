/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/epms-project/epms/internal/logging"
)

// ToolBuilder contains the data and logic needed to create an instance of the command line
// tool. Don't create instances of this directly, use the NewTool function instead.
type ToolBuilder struct {
	logger   *slog.Logger
	args     []string
	in       io.Reader
	out      io.Writer
	err      io.Writer
	commands []func() *cobra.Command
}

// Tool is an instance of the command line tool. Don't create instances of this directly, use the
// NewTool function instead.
type Tool struct {
	logger   *slog.Logger
	args     []string
	in       io.Reader
	out      io.Writer
	err      io.Writer
	commands []func() *cobra.Command
	root     *cobra.Command
}

// NewTool creates a builder that can then be used to configure and create an instance of the
// command line tool.
func NewTool() *ToolBuilder {
	return &ToolBuilder{}
}

// SetLogger sets the logger that the tool will use. This is optional, when it isn't set the logger
// is created from the logging flags of the command line.
func (b *ToolBuilder) SetLogger(value *slog.Logger) *ToolBuilder {
	b.logger = value
	return b
}

// AddArgs adds command line arguments. The first one must be the name of the binary.
func (b *ToolBuilder) AddArgs(values ...string) *ToolBuilder {
	b.args = append(b.args, values...)
	return b
}

// SetIn sets the standard input stream. This is mandatory.
func (b *ToolBuilder) SetIn(value io.Reader) *ToolBuilder {
	b.in = value
	return b
}

// SetOut sets the standard output stream. This is mandatory.
func (b *ToolBuilder) SetOut(value io.Writer) *ToolBuilder {
	b.out = value
	return b
}

// SetErr sets the standard error output stream. This is mandatory.
func (b *ToolBuilder) SetErr(value io.Writer) *ToolBuilder {
	b.err = value
	return b
}

// AddCommand adds a function that creates a sub-command of the root command.
func (b *ToolBuilder) AddCommand(value func() *cobra.Command) *ToolBuilder {
	b.commands = append(b.commands, value)
	return b
}

// Build uses the data stored in the builder to create a new instance of the command line tool.
func (b *ToolBuilder) Build() (*Tool, error) {
	if len(b.args) == 0 {
		return nil, errors.New("at least one argument containing the name of the binary is required")
	}
	if b.in == nil {
		return nil, errors.New("standard input stream is mandatory")
	}
	if b.out == nil {
		return nil, errors.New("standard output stream is mandatory")
	}
	if b.err == nil {
		return nil, errors.New("standard error stream is mandatory")
	}

	return &Tool{
		logger:   b.logger,
		args:     slices.Clone(b.args),
		in:       b.in,
		out:      b.out,
		err:      b.err,
		commands: slices.Clone(b.commands),
	}, nil
}

// Run runs the tool with the arguments given when it was built.
func (t *Tool) Run(ctx context.Context) error {
	t.root = t.createRoot()
	t.root.SetArgs(t.args[1:])
	t.root.SetIn(t.in)
	t.root.SetOut(t.out)
	t.root.SetErr(t.err)

	ctx = ToolIntoContext(ctx, t)
	if t.logger != nil {
		ctx = LoggerIntoContext(ctx, t.logger)
	}
	if err := t.root.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}
	return nil
}

// Logger returns the logger of the tool. It is nil until the root command has started running.
func (t *Tool) Logger() *slog.Logger {
	return t.logger
}

// In returns the standard input stream of the tool.
func (t *Tool) In() io.Reader {
	return t.in
}

// Out returns the standard output stream of the tool.
func (t *Tool) Out() io.Writer {
	return t.out
}

// Err returns the standard error stream of the tool.
func (t *Tool) Err() io.Writer {
	return t.err
}

func (t *Tool) createRoot() *cobra.Command {
	root := &cobra.Command{
		Use:               "epms",
		Short:             "Employee payroll management service",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: t.configureLogger,
	}
	logging.AddFlags(root.PersistentFlags())
	for _, create := range t.commands {
		root.AddCommand(create())
	}
	return root
}

// configureLogger creates the logger from the command line flags, unless one was given explicitly,
// and makes it the default so that packages using the slog top level functions share it.
func (t *Tool) configureLogger(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if t.logger == nil {
		logger, err := logging.NewLogger().
			SetOut(t.out).
			SetErr(t.err).
			SetFlags(cmd.Flags()).
			Build()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		t.logger = logger
		ctx = LoggerIntoContext(ctx, logger)
		cmd.SetContext(ctx)
	}
	slog.SetDefault(t.logger)
	t.logger.DebugContext(ctx, "Logger configured", slog.String("command", cmd.CommandPath()))
	return nil
}
