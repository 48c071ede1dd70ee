package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-pmecc/internal/crypto/curves"
	"github.com/smallyu/go-pmecc/pkg/bn"
)

func (a *app) verifyCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check random multiplications against the reference implementation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return errors.Errorf("count must be positive, got %d", count)
			}
			w, err := a.curve()
			if err != nil {
				return err
			}
			ref, err := curves.Reference(w.Name())
			if err != nil {
				return errors.Wrapf(err, "curve %s", w.Name())
			}

			scalars := make([]*bn.Int, count)
			for i := range scalars {
				k, err := w.NewScalar()
				if err != nil {
					return errors.Wrap(err, "failed to generate scalar")
				}
				scalars[i] = bn.FromBig(k)
			}

			// Generator first, then a random base point.
			if _, err := a.multiplyAll(cmd.Context(), w.Unwrap().G(), scalars, ref); err != nil {
				return err
			}
			base := w.Unwrap().G().Multiply(scalars[0])
			if _, err := a.multiplyAll(cmd.Context(), base, scalars, ref); err != nil {
				return err
			}

			a.log.Info("verified", zap.String("curve", w.Name()), zap.Int("count", count))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d products match\n", w.Name(), 2*count, 2*count)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 16, "Number of random scalars")
	return cmd
}
