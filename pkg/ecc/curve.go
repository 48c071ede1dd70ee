// Package ecc implements short Weierstrass curve arithmetic y^2 = x^3 + ax + b
// over the pseudo-Mersenne fields of package bn.
//
// Points are immutable. Affine points memoize a table of their first sixteen
// multiples on first use, so repeated scalar multiplications of the same point
// (typically a curve generator) only pay for it once. Intermediate results of
// doubling and addition are kept in Jacobian coordinates and are only
// approximately reduced; a single modular inversion converts the final result
// back to canonical affine form.
package ecc

import "github.com/smallyu/go-pmecc/pkg/bn"

var (
	one   = bn.NewInt(1)
	three = bn.NewInt(3)
	four  = bn.NewInt(4)
	eight = bn.NewInt(8)
)

// Curve is a short Weierstrass curve over a prime field together with its
// generator and the generator's order.
type Curve struct {
	name  string
	field *bn.Field
	r     *bn.Int
	a     *bn.Int
	b     *bn.Int
	g     *Point
}

// NewCurve builds a curve over field with group order r, coefficients a and b
// and generator (gx, gy). The arguments are copied.
func NewCurve(name string, field *bn.Field, r, a, b, gx, gy *bn.Int) *Curve {
	c := &Curve{
		name:  name,
		field: field,
		r:     r.Copy().Normalize(),
		a:     a.Copy().Normalize(),
		b:     b.Copy().Normalize(),
	}
	c.g = NewPoint(c, gx, gy)
	return c
}

// Name returns the registry name of c.
func (c *Curve) Name() string {
	return c.name
}

// Field returns the field the curve is defined over.
func (c *Curve) Field() *bn.Field {
	return c.field
}

// Order returns the order of the generator.
func (c *Curve) Order() *bn.Int {
	return c.r.Copy()
}

// A returns the coefficient a as a field element in [0, p).
func (c *Curve) A() *bn.Int {
	return c.canonical(c.a)
}

// B returns the coefficient b as a field element in [0, p).
func (c *Curve) B() *bn.Int {
	return c.canonical(c.b)
}

// G returns the generator.
func (c *Curve) G() *Point {
	return c.g
}

// BitSize returns the bit length of the field prime.
func (c *Curve) BitSize() int {
	return c.field.Exponent()
}

func (c *Curve) reduce(x *bn.Int) *bn.Int {
	return bn.Reduce(x, c.field)
}

// canonical returns a fully reduced copy of x.
func (c *Curve) canonical(x *bn.Int) *bn.Int {
	return bn.FullReduce(x.Copy(), c.field)
}

// scalar maps a negative k into [0, r).
func (c *Curve) scalar(k *bn.Int) *bn.Int {
	if k.Sign() < 0 {
		return k.Mod(c.r)
	}
	return k
}

func (c *Curve) String() string {
	return c.name
}
