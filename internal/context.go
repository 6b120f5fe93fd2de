/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package internal

import (
	"context"
	"log/slog"
)

type contextKey int

const (
	toolKey contextKey = iota
	loggerKey
)

// ToolIntoContext returns a copy of the context that carries the tool.
func ToolIntoContext(ctx context.Context, tool *Tool) context.Context {
	return context.WithValue(ctx, toolKey, tool)
}

// ToolFromContext returns the tool stored by ToolIntoContext. Commands only run inside a tool, so
// a missing tool is a programming error and causes a panic.
func ToolFromContext(ctx context.Context) *Tool {
	tool, ok := ctx.Value(toolKey).(*Tool)
	if !ok || tool == nil {
		panic("context doesn't contain the tool")
	}
	return tool
}

// LoggerIntoContext returns a copy of the context that carries the logger.
func LoggerIntoContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext returns the logger stored by LoggerIntoContext, or the process default
// logger when there is none.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
