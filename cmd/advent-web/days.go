package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List the implemented days and whether an input is stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := newService().Days(cmd.Context())
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DAY\tTITLE\tINPUT")
		for _, d := range infos {
			mark := "-"
			if d.HasInput {
				mark = "yes"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\n", d.Number, d.Title, mark)
		}
		return tw.Flush()
	},
}
