package curves

import (
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-pmecc/pkg/bn"
	"github.com/smallyu/go-pmecc/pkg/ecc"
)

// ErrNoReference is returned by Reference for curves without an independent
// implementation to check against.
var ErrNoReference = errors.New("curves: no reference implementation")

// Curve defines the big.Int view of a short Weierstrass curve. The point at
// infinity is (0, 0), as in crypto/elliptic.
type Curve interface {
	// Name returns the registry name of the curve.
	Name() string

	// Params returns the curve parameters (P, N, B, Gx, Gy)
	Params() *elliptic.CurveParams

	// NewScalar generates a random scalar in Z_n
	NewScalar() (*big.Int, error)

	// ScalarBaseMult computes k * G (base point multiplication)
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int)

	// ScalarMult computes k * P
	ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int)

	// Add combines two points
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int)

	// IsOnCurve reports whether (x, y) satisfies the curve equation.
	IsOnCurve(x, y *big.Int) bool
}

// Weierstrass adapts an ecc.Curve to the Curve interface.
type Weierstrass struct {
	curve  *ecc.Curve
	params *elliptic.CurveParams
}

// NewWeierstrass wraps c.
func NewWeierstrass(c *ecc.Curve) *Weierstrass {
	g := c.G()
	return &Weierstrass{
		curve: c,
		params: &elliptic.CurveParams{
			P:       c.Field().Modulus().Big(),
			N:       c.Order().Big(),
			B:       c.B().Big(),
			Gx:      g.X().Big(),
			Gy:      g.Y().Big(),
			BitSize: c.BitSize(),
			Name:    c.Name(),
		},
	}
}

// ByName returns the Weierstrass adapter for a registered curve.
func ByName(name string) (*Weierstrass, error) {
	c, err := ecc.CurveByName(name)
	if err != nil {
		return nil, err
	}
	return NewWeierstrass(c), nil
}

// Unwrap returns the underlying curve.
func (c *Weierstrass) Unwrap() *ecc.Curve {
	return c.curve
}

func (c *Weierstrass) Name() string {
	return c.curve.Name()
}

// Params returns a copy of the curve parameters. The coefficient a is not
// part of elliptic.CurveParams, so its methods must not be used.
func (c *Weierstrass) Params() *elliptic.CurveParams {
	p := *c.params
	return &p
}

func (c *Weierstrass) NewScalar() (*big.Int, error) {
	return newScalar(c.params.N)
}

func (c *Weierstrass) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return affine(c.curve.G().Multiply(bn.FromBig(k)))
}

func (c *Weierstrass) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	return affine(c.point(Px, Py).Multiply(bn.FromBig(k)))
}

func (c *Weierstrass) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return affine(c.point(x1, y1).Add(c.point(x2, y2)))
}

func (c *Weierstrass) IsOnCurve(x, y *big.Int) bool {
	if x.Sign() < 0 || y.Sign() < 0 || x.Cmp(c.params.P) >= 0 || y.Cmp(c.params.P) >= 0 {
		return false
	}
	return c.point(x, y).IsValid()
}

func (c *Weierstrass) point(x, y *big.Int) *ecc.Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return ecc.Identity(c.curve)
	}
	return ecc.NewPoint(c.curve, bn.FromBig(x), bn.FromBig(y))
}

func affine(p *ecc.Point) (*big.Int, *big.Int) {
	if p.IsIdentity() {
		return new(big.Int), new(big.Int)
	}
	return p.X().Big(), p.Y().Big()
}

type Secp256k1 struct{}

func (c *Secp256k1) Name() string {
	return ecc.K256.Name()
}

func (c *Secp256k1) Params() *elliptic.CurveParams {
	return secp256k1.S256().Params()
}

func (c *Secp256k1) NewScalar() (*big.Int, error) {
	return newScalar(c.Params().N)
}

func (c *Secp256k1) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().ScalarBaseMult(scalarBytes(k, c.Params().N))
}

func (c *Secp256k1) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().ScalarMult(Px, Py, scalarBytes(k, c.Params().N))
}

func (c *Secp256k1) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return secp256k1.S256().Add(x1, y1, x2, y2)
}

func (c *Secp256k1) IsOnCurve(x, y *big.Int) bool {
	return secp256k1.S256().IsOnCurve(x, y)
}

// NewSecp256k1 returns a new instance of the Secp256k1 curve wrapper
func NewSecp256k1() Curve {
	return &Secp256k1{}
}

// NIST wraps a crypto/elliptic curve.
type NIST struct {
	name  string
	curve elliptic.Curve
}

func (c *NIST) Name() string {
	return c.name
}

func (c *NIST) Params() *elliptic.CurveParams {
	return c.curve.Params()
}

func (c *NIST) NewScalar() (*big.Int, error) {
	return newScalar(c.Params().N)
}

func (c *NIST) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return c.curve.ScalarBaseMult(scalarBytes(k, c.Params().N))
}

func (c *NIST) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	return c.curve.ScalarMult(Px, Py, scalarBytes(k, c.Params().N))
}

func (c *NIST) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return c.curve.Add(x1, y1, x2, y2)
}

func (c *NIST) IsOnCurve(x, y *big.Int) bool {
	return c.curve.IsOnCurve(x, y)
}

// Reference returns an independent implementation of the named curve:
// decred's secp256k1 for k256 and crypto/elliptic for the NIST curves.
func Reference(name string) (Curve, error) {
	switch name {
	case ecc.K256.Name():
		return NewSecp256k1(), nil
	case ecc.C224.Name():
		return &NIST{name: name, curve: elliptic.P224()}, nil
	case ecc.C256.Name():
		return &NIST{name: name, curve: elliptic.P256()}, nil
	case ecc.C384.Name():
		return &NIST{name: name, curve: elliptic.P384()}, nil
	case ecc.C521.Name():
		return &NIST{name: name, curve: elliptic.P521()}, nil
	}
	return nil, ErrNoReference
}

func newScalar(n *big.Int) (*big.Int, error) {
	// Generate random integer in [0, N-1]
	k, err := rand.Int(rand.Reader, n)
	if err != nil {
		return nil, err
	}
	return k, nil
}

// scalarBytes reduces k into [0, n) so negative and oversized scalars agree
// with ecc.Point.Multiply.
func scalarBytes(k, n *big.Int) []byte {
	return new(big.Int).Mod(k, n).Bytes()
}
