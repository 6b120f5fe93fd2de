/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GetPayrollRootCmd creates the root command of the payroll server
func GetPayrollRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "payroll-server",
		Short: "All things needed for the payroll server",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to do. Use sub-commands instead.")
		},
	}
	root.AddCommand(Serve(), Migrate(), CreateUser())
	return root
}
