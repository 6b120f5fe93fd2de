/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	payrollcmd "github.com/epms-project/epms/internal/service/payroll/cmd"

	"github.com/epms-project/epms/internal"
	"github.com/epms-project/epms/internal/cmd"
	"github.com/epms-project/epms/internal/exit"
)

func main() {
	// Create a context:
	ctx := context.Background()

	// Create the tool:
	tool, err := internal.NewTool().
		AddArgs(os.Args...).
		SetIn(os.Stdin).
		SetOut(os.Stdout).
		SetErr(os.Stderr).
		AddCommand(cmd.Version).
		AddCommand(payrollcmd.GetPayrollRootCmd).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}

	// Run the tool:
	err = tool.Run(ctx)
	if err != nil {
		var exitError exit.Error
		ok := errors.As(err, &exitError)
		if ok {
			os.Exit(exitError.Code())
		} else {
			fmt.Fprintf(os.Stderr, "%s\n", err.Error())
			os.Exit(1)
		}
	}
}
