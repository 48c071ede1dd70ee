package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-pmecc/internal/crypto/curves"
	"github.com/smallyu/go-pmecc/pkg/ecc"
)

func (a *app) curvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the registered curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFIELD\tBITS\tORDER BITS\tREFERENCE")
			for _, c := range ecc.Curves() {
				ref := "-"
				if _, err := curves.Reference(c.Name()); err == nil {
					ref = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
					c.Name(), c.Field().Name(), c.BitSize(), c.Order().BitLen(), ref)
			}
			return w.Flush()
		},
	}
}
