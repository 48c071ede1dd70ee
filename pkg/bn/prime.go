package bn

import "fmt"

// Coeff is one correction term Mul*2^Bit of a pseudo-Mersenne prime.
type Coeff struct {
	Bit int
	Mul int64
}

// Field describes a pseudo-Mersenne prime p = 2^exponent + sum(Mul_i*2^Bit_i)
// together with the tables used to reduce values modulo p by folding high
// limbs back down instead of dividing. A Field is immutable once built and
// may be shared freely.
type Field struct {
	name     string
	exponent int
	modulus  *Int

	// modOffset is the number of limbs needed to hold a value below 2^exponent.
	modOffset int
	// minOffset is how many limbs can be folded before carries must be
	// propagated.
	minOffset int

	// Approximate reduction: a limb popped from position ll is folded into
	// ll+offset[k] with weight -factor[k].
	offset []int
	factor []int64

	// Exact reduction of the bits of the top limb at or above 2^exponent:
	// they are folded into limb modOffset-1+fullOffset[k] with weight
	// -fullFactor[k].
	fullOffset []int
	fullFactor []int64
	fullMask   int64
	topBits    uint
}

// NewField builds the field for 2^exponent + sum(coeffs). Every coefficient
// bit must lie in [0, exponent). NewField panics on malformed parameters.
func NewField(name string, exponent int, coeffs []Coeff) *Field {
	if exponent <= 0 {
		panic(fmt.Sprintf("bn: field %s: exponent must be positive", name))
	}
	mo := (exponent + Radix - 1) / Radix
	f := &Field{
		name:       name,
		exponent:   exponent,
		modOffset:  mo,
		minOffset:  mo,
		offset:     make([]int, len(coeffs)),
		factor:     make([]int64, len(coeffs)),
		fullOffset: make([]int, len(coeffs)),
		fullFactor: make([]int64, len(coeffs)),
		topBits:    uint(exponent - Radix*(mo-1)),
	}
	f.fullMask = ^(int64(1)<<f.topBits - 1)

	modulus := one.Lsh(uint(exponent))
	for k, c := range coeffs {
		if c.Bit < 0 || c.Bit >= exponent {
			panic(fmt.Sprintf("bn: field %s: coefficient bit %d out of range", name, c.Bit))
		}
		d := c.Bit - exponent
		off := -((-d + Radix - 1) / Radix)
		f.offset[k] = off
		f.factor[k] = c.Mul << uint(d-off*Radix)
		if -off < f.minOffset {
			f.minOffset = -off
		}

		f.fullOffset[k] = c.Bit/Radix - (mo - 1)
		f.fullFactor[k] = c.Mul << uint(c.Bit%Radix)

		modulus.addM(NewInt(c.Mul).Lsh(uint(c.Bit)))
	}
	f.modulus = modulus.Normalize()
	return f
}

// Name returns the registry name of the field.
func (f *Field) Name() string {
	return f.name
}

// Exponent returns e for p = 2^e - ...
func (f *Field) Exponent() int {
	return f.exponent
}

// ModOffset returns the number of limbs of a fully reduced value.
func (f *Field) ModOffset() int {
	return f.modOffset
}

// Modulus returns a copy of p.
func (f *Field) Modulus() *Int {
	return f.modulus.Copy()
}

// ByteLen returns the number of bytes needed to encode an element.
func (f *Field) ByteLen() int {
	return (f.exponent + 7) / 8
}

// Reduce performs an approximate reduction of x modulo f in place and
// returns x. The most significant limbs are popped while x is longer than
// modOffset limbs and folded back down through the offset/factor table.
// The result is congruent to x but may be negative or exceed p by a small
// multiple.
func Reduce(x *Int, f *Field) *Int {
	if len(x.limbs) == 0 {
		x.limbs = []int64{0}
	}
	if zero.GreaterEqual(x) {
		x.addM(f.modulus)
	}

	i := f.minOffset
	for len(x.limbs) > f.modOffset {
		ll := len(x.limbs) - 1
		l := x.limbs[ll]
		x.limbs = x.limbs[:ll]
		for k, off := range f.offset {
			x.limbs[ll+off] -= f.factor[k] * l
		}

		i--
		if i == 0 {
			x.limbs = append(x.limbs, 0)
			x.cnormalize()
			i = f.minOffset
		}
	}
	return x.cnormalize()
}

// FullReduce reduces x in place to its canonical representative in [0, p)
// and returns it. It reduces approximately, adds the modulus twice to make
// the value non-negative, reduces again, folds the top limb exactly and
// finally subtracts p scaled by a 0/1 flag from every limb.
func FullReduce(x *Int, f *Field) *Int {
	Reduce(x, f)

	x.addM(f.modulus)
	x.addM(f.modulus)
	x.Normalize()

	Reduce(x, f)

	for len(x.limbs) < f.modOffset {
		x.limbs = append(x.limbs, 0)
	}
	f.foldTop(x)

	var greater int64
	if x.GreaterEqual(f.modulus) {
		greater = 1
	}
	for i := range x.limbs {
		x.limbs[i] -= f.modulus.getLimb(i) * greater
	}
	return x.cnormalize().trim()
}

// foldTop repeatedly replaces the bits of the top limb at or above 2^exponent
// by their value modulo p until none remain. x must hold exactly modOffset
// limbs; on return it is normalized and lies in [0, 2^exponent).
func (f *Field) foldTop(x *Int) {
	top := f.modOffset - 1
	for {
		x.cnormalize()
		h := x.limbs[top] >> f.topBits
		if h == 0 {
			return
		}
		x.limbs[top] &^= f.fullMask
		for k, off := range f.fullOffset {
			x.limbs[top+off] -= f.fullFactor[k] * h
		}
	}
}
