package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate POINT",
		Short: "Check that a SEC1 hex point lies on the curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.curve()
			if err != nil {
				return err
			}
			p, err := decodePoint(w.Unwrap(), args[0])
			if err != nil {
				a.log.Info("rejected point", zap.String("curve", w.Name()), zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid %s\n", p)
			return nil
		},
	}
}
