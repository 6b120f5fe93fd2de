/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package logging

import "github.com/spf13/pflag"

// AddFlags adds the flags related to logging to the given flag set.
func AddFlags(set *pflag.FlagSet) {
	_ = set.String(
		levelFlagName,
		"info",
		"Log level. Possible values are 'debug', 'info', 'warn' and 'error'.",
	)
	_ = set.String(
		fileFlagName,
		"stdout",
		"Log file. The value can also be 'stdout' or 'stderr' to write to the "+
			"standard output or error stream of the process.",
	)
	_ = set.StringArray(
		fieldFlagName,
		[]string{},
		"Field to add to all log messages, written as 'name=value'. The special value "+
			"'%p' adds a field named 'pid' containing the process identifier.",
	)
	_ = set.StringSlice(
		fieldsFlagName,
		[]string{},
		"Comma separated list of fields to add to all log messages. See '--log-field' "+
			"for the accepted values.",
	)
	_ = set.Bool(
		redactFlagName,
		true,
		"Replace passwords, session tokens and fields marked as sensitive with '***'.",
	)
}

// Names of the flags:
const (
	levelFlagName  = "log-level"
	fileFlagName   = "log-file"
	fieldFlagName  = "log-field"
	fieldsFlagName = "log-fields"
	redactFlagName = "log-redact"
)
