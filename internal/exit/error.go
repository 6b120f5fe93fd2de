/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

// Package exit carries process exit codes from commands up to main, which is the only place
// that calls os.Exit.
package exit

import "fmt"

// Error is returned by a command that has already reported its problem and only needs the
// process to end with the given code.
type Error int

// Exit codes used by the commands:
const (
	// Failure is the generic code for a command that could not complete.
	Failure Error = 1

	// Config is used when the configuration taken from flags or the environment is invalid.
	Config Error = 2
)

func (e Error) Error() string {
	return fmt.Sprintf("exit code %d", int(e))
}

// Code returns the process exit code.
func (e Error) Code() int {
	return int(e)
}
