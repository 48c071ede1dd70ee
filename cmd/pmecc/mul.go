package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-pmecc/internal/crypto/curves"
	"github.com/smallyu/go-pmecc/pkg/bn"
	"github.com/smallyu/go-pmecc/pkg/ecc"
)

func (a *app) mulCmd() *cobra.Command {
	var (
		point      string
		compressed bool
		reference  bool
	)
	cmd := &cobra.Command{
		Use:   "mul SCALAR...",
		Short: "Multiply a point by one or more hex scalars",
		Long: "Multiply the generator, or the SEC1 point given with --point, by each\n" +
			"scalar. Scalars are processed concurrently and printed in order.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.curve()
			if err != nil {
				return err
			}
			c := w.Unwrap()

			base := c.G()
			if point != "" {
				if base, err = decodePoint(c, point); err != nil {
					return err
				}
			}

			var ref curves.Curve
			if reference {
				if ref, err = curves.Reference(c.Name()); err != nil {
					return errors.Wrapf(err, "curve %s", c.Name())
				}
			}

			scalars := make([]*bn.Int, len(args))
			for i, s := range args {
				if scalars[i], err = bn.FromHex(s); err != nil {
					return errors.Wrapf(err, "scalar %q", s)
				}
			}

			results, err := a.multiplyAll(cmd.Context(), base, scalars, ref)
			if err != nil {
				return err
			}
			for i, p := range results {
				enc := p.Marshal()
				if compressed {
					enc = p.MarshalCompressed()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", args[i], hex.EncodeToString(enc))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&point, "point", "p", "", "SEC1 hex encoding of the base point (default generator)")
	flags.BoolVar(&compressed, "compressed", false, "Print compressed encodings")
	flags.BoolVar(&reference, "reference", false, "Check every product against the reference implementation")
	return cmd
}

// multiplyAll computes k*base for every scalar, one goroutine per scalar. With
// a reference curve each product is checked against it.
func (a *app) multiplyAll(ctx context.Context, base *ecc.Point, scalars []*bn.Int, ref curves.Curve) ([]*ecc.Point, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	// Fill the shared table once before fanning out.
	base.Multiples()

	results := make([]*ecc.Point, len(scalars))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, k := range scalars {
		i, k := i, k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			p := base.Multiply(k)
			a.log.Debug("multiplied",
				zap.String("curve", base.Curve().Name()),
				zap.Int("bits", k.BitLen()),
				zap.Duration("elapsed", time.Since(start)))

			if ref != nil {
				if err := checkReference(ref, base, k, p); err != nil {
					return err
				}
			}
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkReference(ref curves.Curve, base *ecc.Point, k *bn.Int, p *ecc.Point) error {
	bx, by := new(big.Int), new(big.Int)
	if !base.IsIdentity() {
		bx, by = base.X().Big(), base.Y().Big()
	}
	x, y := ref.ScalarMult(bx, by, k.Big())

	wx, wy := new(big.Int), new(big.Int)
	if !p.IsIdentity() {
		wx, wy = p.X().Big(), p.Y().Big()
	}
	if x.Cmp(wx) != 0 || y.Cmp(wy) != 0 {
		return errors.Errorf("reference mismatch for scalar %s on %s", k, base.Curve().Name())
	}
	return nil
}

func decodePoint(c *ecc.Curve, s string) (*ecc.Point, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "point is not hex")
	}
	p, err := ecc.Unmarshal(c, b)
	if err != nil {
		return nil, errors.Wrap(err, "invalid point")
	}
	return p, nil
}
