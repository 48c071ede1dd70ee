package ecc

import (
	"fmt"
	"sync"

	"github.com/smallyu/go-pmecc/pkg/bn"
)

// Point is an affine curve point or the point at infinity. Coordinates are
// always canonical field elements.
type Point struct {
	curve    *Curve
	x, y     *bn.Int
	identity bool

	once      sync.Once
	multiples []*Point
}

// NewPoint returns the point (x, y) on curve. The coordinates are copied and
// reduced into [0, p); NewPoint does not check the curve equation, use
// IsValid for that.
func NewPoint(curve *Curve, x, y *bn.Int) *Point {
	return &Point{
		curve: curve,
		x:     curve.canonical(x),
		y:     curve.canonical(y),
	}
}

// Identity returns the point at infinity of curve.
func Identity(curve *Curve) *Point {
	return &Point{curve: curve, identity: true}
}

// Curve returns the curve p lies on.
func (p *Point) Curve() *Curve {
	return p.curve
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.identity
}

// X returns a copy of the x coordinate, or nil for the identity.
func (p *Point) X() *bn.Int {
	if p.identity {
		return nil
	}
	return p.x.Copy()
}

// Y returns a copy of the y coordinate, or nil for the identity.
func (p *Point) Y() *bn.Int {
	if p.identity {
		return nil
	}
	return p.y.Copy()
}

// ToJacobian returns p with z = 1.
func (p *Point) ToJacobian() *JacobianPoint {
	if p.identity {
		return &JacobianPoint{curve: p.curve, identity: true}
	}
	return &JacobianPoint{curve: p.curve, x: p.x, y: p.y, z: one}
}

// Multiples returns 0*p through 15*p. The table is computed on first use and
// shared by every later call; callers must not modify the returned slice.
func (p *Point) Multiples() []*Point {
	p.once.Do(func() {
		m := make([]*Point, 16)
		m[0] = Identity(p.curve)
		m[1] = p
		j := p.ToJacobian().Double()
		m[2] = j.ToAffine()
		for i := 3; i < len(m); i++ {
			j = j.Add(p)
			m[i] = j.ToAffine()
		}
		p.multiples = m
	})
	return p.multiples
}

// Multiply returns k*p using a fixed 4-bit window over p's multiples. A
// negative k is first reduced modulo the curve order.
func (p *Point) Multiply(k *bn.Int) *Point {
	return p.ToJacobian().Multiply(k, p).ToAffine()
}

// Add returns p + q. It panics if the points lie on different curves.
func (p *Point) Add(q *Point) *Point {
	return p.ToJacobian().Add(q).ToAffine()
}

// Double returns 2*p.
func (p *Point) Double() *Point {
	return p.ToJacobian().Double().ToAffine()
}

// Negate returns -p = (x, p - y).
func (p *Point) Negate() *Point {
	if p.identity {
		return p
	}
	c := p.curve
	y := bn.FullReduce(c.field.Modulus().Sub(p.y), c.field)
	return &Point{curve: c, x: p.x, y: y}
}

// IsValid reports whether p satisfies y^2 = b + x*(a + x^2). The identity is
// valid.
func (p *Point) IsValid() bool {
	if p.identity {
		return true
	}
	c := p.curve
	lhs := c.canonical(p.y.Square())
	rhs := bn.FullReduce(c.b.Add(p.x.Mul(c.reduce(c.a.Add(p.x.Square())))), c.field)
	return lhs.Equal(rhs)
}

// Equal reports whether p and q are the same point on the same curve.
func (p *Point) Equal(q *Point) bool {
	if p.curve != q.curve {
		return false
	}
	if p.identity || q.identity {
		return p.identity == q.identity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

func (p *Point) String() string {
	if p.identity {
		return fmt.Sprintf("%s(identity)", p.curve)
	}
	return fmt.Sprintf("%s(%s, %s)", p.curve, p.x, p.y)
}

// SumOfTwoMultiplies returns k1*p1 + k2*p2 with a single doubling chain shared
// by both scalars. It panics if the points lie on different curves.
func SumOfTwoMultiplies(k1 *bn.Int, p1 *Point, k2 *bn.Int, p2 *Point) *Point {
	if p1.curve != p2.curve {
		panic("ecc: points must be on the same curve")
	}
	c := p1.curve
	l1, l2 := c.scalar(k1).Limbs(), c.scalar(k2).Limbs()
	m1, m2 := p1.Multiples(), p2.Multiples()

	n := len(l1)
	if len(l2) > n {
		n = len(l2)
	}
	out := &JacobianPoint{curve: c, identity: true}
	for i := n - 1; i >= 0; i-- {
		w1, w2 := limb(l1, i), limb(l2, i)
		for s := bn.Radix - 4; s >= 0; s -= 4 {
			out = out.Double().Double().Double().Double().
				Add(m1[w1>>uint(s)&0xF]).
				Add(m2[w2>>uint(s)&0xF])
		}
	}
	return out.ToAffine()
}

func limb(l []int64, i int) int64 {
	if i < len(l) {
		return l[i]
	}
	return 0
}
