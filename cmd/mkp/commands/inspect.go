// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the size, profit range and LP optimum of an instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inst, err := a.loadInstance()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "instance:   %d\n", inst.Number())
			fmt.Fprintf(w, "items:      %d\n", inst.ItemCount())
			fmt.Fprintf(w, "resources:  %d\n", inst.ResourceCount())
			fmt.Fprintf(w, "max profit: %d\n", inst.MaxProfit())
			if lp, ok := inst.LPOptimum(); ok {
				fmt.Fprintf(w, "lp optimum: %.4f\n", lp)
			} else {
				fmt.Fprintln(w, "lp optimum: unavailable")
			}

			return nil
		},
	}
	addInstanceFlags(cmd.Flags())

	return cmd
}
