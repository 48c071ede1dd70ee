package bn

import (
	"math/bits"

	"github.com/smallyu/go-pmecc/internal/bitarray"
)

// BitLen returns the exact number of bits of a non-negative n. It returns 0
// for zero and for negative values.
func (n *Int) BitLen() int {
	x := n.normalized()
	top := len(x.limbs) - 1
	if x.limbs[top] <= 0 {
		return 0
	}
	return Radix*top + bits.Len64(uint64(x.limbs[top]))
}

// BitLength returns the bit length of n rounded up to a whole number of
// bytes. It is the natural length used by ToBits.
func (n *Int) BitLength() int {
	return (n.BitLen() + 7) &^ 7
}

// Bit returns bit i of a non-negative n. Out of range positions read as 0.
func (n *Int) Bit(i int) int {
	if i < 0 {
		return 0
	}
	x := n.normalized()
	return int(x.getLimb(i/Radix) >> uint(i%Radix) & 1)
}

// ToBits serializes n, which must be non-negative, as a big-endian bit
// array of length bits rounded up to a whole byte. A length of zero means
// n.BitLength(). Bits of n above the requested length are dropped.
func (n *Int) ToBits(length int) bitarray.Array {
	x := n.normalized()
	if length <= 0 {
		length = x.BitLength()
	}
	if length == 0 {
		return bitarray.Array{}
	}
	i := (length - 1) / Radix
	e := ((length + 7) &^ 7) % Radix
	if e == 0 {
		e = Radix
	}
	out := bitarray.Partial(e, uint32(x.getLimb(i)))
	for i--; i >= 0; i-- {
		out = out.Concat(bitarray.Partial(Radix, uint32(x.getLimb(i))))
	}
	return out
}

// FromBits builds a non-negative Int from a big-endian bit array.
func FromBits(a bitarray.Array) *Int {
	l := a.Len()
	e := l % Radix
	if e == 0 {
		e = Radix
	}
	chunks := []int64{int64(a.Extract(0, e))}
	for ; e < l; e += Radix {
		chunks = append(chunks, int64(a.Extract(e, Radix)))
	}

	n := &Int{limbs: make([]int64, len(chunks))}
	for i, c := range chunks {
		n.limbs[len(chunks)-1-i] = c
	}
	return n.trim()
}

// Bytes returns n as a big-endian byte string of exactly size bytes. A size
// of zero means the minimal length.
func (n *Int) Bytes(size int) []byte {
	return n.ToBits(8 * size).Bytes()
}

// FromBytes interprets b as a big-endian unsigned integer.
func FromBytes(b []byte) *Int {
	if len(b) == 0 {
		return NewInt(0)
	}
	return FromBits(bitarray.FromBytes(b))
}
