package ecc

import (
	"fmt"

	"github.com/smallyu/go-pmecc/pkg/bn"
)

// SEC1 format bytes.
const (
	formatIdentity     = 0x00
	formatCompressed   = 0x02
	formatUncompressed = 0x04
)

// Marshal encodes p in SEC1 uncompressed form 0x04 || x || y. The identity
// encodes as the single byte 0x00.
func (p *Point) Marshal() []byte {
	if p.identity {
		return []byte{formatIdentity}
	}
	n := p.curve.field.ByteLen()
	out := make([]byte, 0, 1+2*n)
	out = append(out, formatUncompressed)
	out = append(out, p.x.Bytes(n)...)
	return append(out, p.y.Bytes(n)...)
}

// MarshalCompressed encodes p in SEC1 compressed form (0x02 | y&1) || x. The
// identity encodes as the single byte 0x00.
func (p *Point) MarshalCompressed() []byte {
	if p.identity {
		return []byte{formatIdentity}
	}
	n := p.curve.field.ByteLen()
	out := make([]byte, 0, 1+n)
	out = append(out, formatCompressed|byte(p.y.Bit(0)))
	return append(out, p.x.Bytes(n)...)
}

// Unmarshal decodes a SEC1 point produced by Marshal or MarshalCompressed and
// checks that it lies on curve. Compressed points can only be decoded on
// fields with p = 3 mod 4.
func Unmarshal(curve *Curve, data []byte) (*Point, error) {
	n := curve.field.ByteLen()
	switch {
	case len(data) == 1 && data[0] == formatIdentity:
		return Identity(curve), nil

	case len(data) == 1+2*n && data[0] == formatUncompressed:
		x, err := curve.element(data[1 : 1+n])
		if err != nil {
			return nil, err
		}
		y, err := curve.element(data[1+n:])
		if err != nil {
			return nil, err
		}
		p := &Point{curve: curve, x: x, y: y}
		if !p.IsValid() {
			return nil, makeError(ErrPointNotOnCurve,
				fmt.Sprintf("ecc: %s: point is not on the curve", curve))
		}
		return p, nil

	case len(data) == 1+n && data[0]&^1 == formatCompressed:
		x, err := curve.element(data[1:])
		if err != nil {
			return nil, err
		}
		y, err := curve.decompress(x, uint(data[0]&1))
		if err != nil {
			return nil, err
		}
		return &Point{curve: curve, x: x, y: y}, nil
	}
	return nil, makeError(ErrInvalidEncoding,
		fmt.Sprintf("ecc: %s: invalid point encoding of %d bytes", curve, len(data)))
}

// element decodes a big-endian field element, rejecting values >= p.
func (c *Curve) element(b []byte) (*bn.Int, error) {
	v := bn.FromBytes(b)
	if v.GreaterEqual(c.field.Modulus()) {
		return nil, makeError(ErrInvalidEncoding,
			fmt.Sprintf("ecc: %s: coordinate is not a field element", c))
	}
	return v, nil
}

// decompress solves y^2 = x^3 + ax + b for the root with the given parity,
// using y = rhs^((p+1)/4).
func (c *Curve) decompress(x *bn.Int, odd uint) (*bn.Int, error) {
	p := c.field.Modulus()
	if p.Limbs()[0]&3 != 3 {
		return nil, makeError(ErrInvalidEncoding,
			fmt.Sprintf("ecc: %s: point compression is not supported on this field", c))
	}
	rhs := bn.FullReduce(c.b.Add(x.Mul(c.reduce(c.a.Add(x.Square())))), c.field)

	e := p.Add(one).Rsh(2)
	y, err := rhs.ModPow(e, p)
	if err != nil {
		return nil, err
	}
	if !c.canonical(y.Square()).Equal(rhs) {
		return nil, makeError(ErrPointNotOnCurve,
			fmt.Sprintf("ecc: %s: x is not on the curve", c))
	}
	if uint(y.Bit(0)) != odd {
		if y.IsZero() {
			return nil, makeError(ErrInvalidEncoding,
				fmt.Sprintf("ecc: %s: zero y has no odd root", c))
		}
		y = p.Sub(y).Normalize()
	}
	return y, nil
}
