package ecc

import (
	"fmt"

	"github.com/smallyu/go-pmecc/pkg/bn"
)

// JacobianPoint represents the affine point (x/z^2, y/z^3). Coordinates are
// only approximately reduced between operations.
type JacobianPoint struct {
	curve    *Curve
	x, y, z  *bn.Int
	identity bool
}

// NewJacobianPoint returns the point (x, y, z) on curve. The coordinates are
// copied.
func NewJacobianPoint(curve *Curve, x, y, z *bn.Int) *JacobianPoint {
	return &JacobianPoint{curve: curve, x: x.Copy(), y: y.Copy(), z: z.Copy()}
}

// IsIdentity reports whether j is the point at infinity.
func (j *JacobianPoint) IsIdentity() bool {
	return j.identity
}

// Curve returns the curve j lies on.
func (j *JacobianPoint) Curve() *Curve {
	return j.curve
}

// Double returns 2*j.
func (j *JacobianPoint) Double() *JacobianPoint {
	if j.identity {
		return j
	}
	c := j.curve

	y2 := c.reduce(j.y.Square())
	z4 := c.reduce(j.z.Square().Square())
	s := c.reduce(y2.Mul(j.x)).Mul(four)
	m := c.reduce(j.x.Square().Mul(three).Add(c.a.Mul(z4)))

	x := c.reduce(m.Square().Sub(s.Add(s)))
	y := c.reduce(m.Mul(s.Sub(x)).Sub(y2.Square().Mul(eight)))
	z := c.reduce(j.y.Add(j.y).Mul(j.z))

	return &JacobianPoint{curve: c, x: x, y: y, z: z}
}

// Add returns j + p for an affine p. It panics if the points lie on different
// curves.
func (j *JacobianPoint) Add(p *Point) *JacobianPoint {
	if j.curve != p.curve {
		panic("ecc: points must be on the same curve to add them")
	}
	if j.identity {
		return p.ToJacobian()
	}
	if p.identity {
		return j
	}
	c := j.curve

	sz2 := c.reduce(j.z.Square())
	sz3 := c.reduce(sz2.Mul(j.z))
	h := c.reduce(p.x.Mul(sz2).Sub(j.x))
	py := c.reduce(p.y.Mul(sz3))

	if c.canonical(h).IsZero() {
		// Same x: either the same point or its inverse.
		if c.canonical(j.y).Equal(c.canonical(py)) {
			return j.Double()
		}
		return &JacobianPoint{curve: c, identity: true}
	}

	d := c.reduce(py.Sub(j.y))
	h2 := c.reduce(h.Square())
	h3 := c.reduce(h2.Mul(h))

	x1 := c.reduce(d.Square())
	x2 := c.reduce(h3.Add(j.x.Add(j.x).Mul(h2)))
	x := c.reduce(x1.Sub(x2))

	y1 := c.reduce(j.x.Mul(h2).Sub(x).Mul(d))
	y2 := c.reduce(j.y.Mul(h3))
	y := c.reduce(y1.Sub(y2))

	z := c.reduce(j.z.Mul(h))

	return &JacobianPoint{curve: c, x: x, y: y, z: z}
}

// Multiply returns k*affine, where affine is the affine form of j and
// supplies the table of multiples. The scalar is consumed four bits at a time
// from the most significant limb down: four doublings, then one addition of
// the matching multiple.
func (j *JacobianPoint) Multiply(k *bn.Int, affine *Point) *JacobianPoint {
	if j.curve != affine.curve {
		panic("ecc: points must be on the same curve")
	}
	limbs := j.curve.scalar(k).Limbs()
	m := affine.Multiples()

	out := &JacobianPoint{curve: j.curve, identity: true}
	for i := len(limbs) - 1; i >= 0; i-- {
		for s := bn.Radix - 4; s >= 0; s -= 4 {
			out = out.Double().Double().Double().Double().Add(m[limbs[i]>>uint(s)&0xF])
		}
	}
	return out
}

// ToAffine converts j to canonical affine coordinates with one modular
// inversion of z. A zero z yields the identity.
func (j *JacobianPoint) ToAffine() *Point {
	c := j.curve
	if j.identity {
		return Identity(c)
	}
	z := c.canonical(j.z)
	if z.IsZero() {
		return Identity(c)
	}
	zi, err := z.ModInverse(c.field.Modulus())
	if err != nil {
		// z is a nonzero element of a prime field.
		panic(fmt.Sprintf("ecc: %s: cannot invert z: %v", c, err))
	}
	zi2 := c.reduce(zi.Square())
	return &Point{
		curve: c,
		x:     bn.FullReduce(j.x.Mul(zi2), c.field),
		y:     bn.FullReduce(j.y.Mul(zi2.Mul(zi)), c.field),
	}
}

// Negate returns -j = (x, -y, z).
func (j *JacobianPoint) Negate() *JacobianPoint {
	if j.identity {
		return j
	}
	c := j.curve
	y := bn.FullReduce(c.field.Modulus().Sub(j.y), c.field)
	return &JacobianPoint{curve: c, x: j.x, y: y, z: j.z}
}

// IsValid reports whether j satisfies y^2 = b*z^6 + x*(a*z^4 + x^2). The
// identity is valid.
func (j *JacobianPoint) IsValid() bool {
	if j.identity {
		return true
	}
	c := j.curve
	z2 := c.reduce(j.z.Square())
	z4 := c.reduce(z2.Square())
	z6 := c.reduce(z4.Mul(z2))

	lhs := c.canonical(j.y.Square())
	inner := c.reduce(c.a.Mul(z4).Add(j.x.Square()))
	rhs := bn.FullReduce(c.b.Mul(z6).Add(j.x.Mul(inner)), c.field)
	return lhs.Equal(rhs)
}
