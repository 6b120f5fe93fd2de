/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/epms-project/epms/internal"
)

// Version creates and returns the `version` command.
func Version() *cobra.Command {
	c := NewVersionCommand()
	return &cobra.Command{
		Use:   "version",
		Short: "Prints version information",
		Long:  "Prints the commit and time the binary was built from",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
}

// VersionCommand contains the data and logic needed to run the `version` command.
type VersionCommand struct {
	readBuildInfo func() (*debug.BuildInfo, bool)
}

// NewVersionCommand creates a new runner that knows how to execute the `version` command.
func NewVersionCommand() *VersionCommand {
	return &VersionCommand{
		readBuildInfo: debug.ReadBuildInfo,
	}
}

// BuildVersion is the version information embedded in the binary
type BuildVersion struct {
	Commit    string
	Time      string
	GoVersion string
}

func (c *VersionCommand) run(cmd *cobra.Command, argv []string) error {
	ctx := cmd.Context()
	logger := internal.LoggerFromContext(ctx)

	version := c.Get()
	logger.DebugContext(
		ctx,
		"Version",
		slog.String("commit", version.Commit),
		slog.String("time", version.Time),
	)
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\ntime: %s\ngo: %s\n",
		version.Commit, version.Time, version.GoVersion)
	if err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	return nil
}

// Get returns the values recorded by the Go toolchain, or "unknown" for the missing ones.
func (c *VersionCommand) Get() BuildVersion {
	result := BuildVersion{
		Commit:    unknownSettingValue,
		Time:      unknownSettingValue,
		GoVersion: unknownSettingValue,
	}
	info, ok := c.readBuildInfo()
	if !ok {
		return result
	}
	if info.GoVersion != "" {
		result.GoVersion = info.GoVersion
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == vcsRevisionSettingKey && s.Value != "":
			result.Commit = s.Value
		case s.Key == vcsTimeSettingKey && s.Value != "":
			result.Time = s.Value
		}
	}
	return result
}

// Names of build settings we are interested on:
const (
	vcsRevisionSettingKey = "vcs.revision"
	vcsTimeSettingKey     = "vcs.time"
)

// Fallback value for unknown settings:
const unknownSettingValue = "unknown"
