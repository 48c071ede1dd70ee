// Package bn implements the arbitrary-precision integers and pseudo-Mersenne
// prime field reduction used by the curve arithmetic in package ecc.
//
// An Int is a little-endian vector of signed 64-bit limbs in radix 2^24. The
// narrow radix leaves room for many limb products to accumulate before a
// carry pass is needed, and signed limbs let intermediate results go
// negative without a borrow pass. Operations may therefore leave a value
// unnormalized; Normalize puts it back into canonical limb form.
//
// Exported methods never mutate their arguments and, apart from Normalize,
// never mutate the receiver. The in-place variants used on hot paths are
// private to this package.
package bn

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	// Radix is the number of bits held by a normalized limb.
	Radix = 24

	radixMask = 1<<Radix - 1
	placeVal  = 1 << Radix

	// maxMul is the number of limb-product rows accumulated by Mul before
	// carries are propagated.
	maxMul = 8
)

var (
	zero = NewInt(0)
	one  = NewInt(1)
)

// Int is an arbitrary-precision integer. The zero value is 0.
type Int struct {
	limbs []int64
}

// NewInt returns a normalized Int holding v.
func NewInt(v int64) *Int {
	n := &Int{limbs: []int64{v}}
	return n.Normalize()
}

// NewUint64 returns a normalized Int holding v.
func NewUint64(v uint64) *Int {
	n := &Int{}
	for {
		n.limbs = append(n.limbs, int64(v&radixMask))
		v >>= Radix
		if v == 0 {
			return n
		}
	}
}

// FromHex parses a big-endian hexadecimal string, optionally prefixed with
// 0x. A leading minus sign is accepted.
func FromHex(s string) (*Int, error) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, makeError(ErrInvalidArgument, "bn: empty hex string")
	}

	const k = Radix / 4
	n := &Int{limbs: make([]int64, 0, (len(s)+k-1)/k)}
	for i := len(s); i > 0; i -= k {
		lo := i - k
		if lo < 0 {
			lo = 0
		}
		v, err := strconv.ParseUint(s[lo:i], 16, 32)
		if err != nil {
			return nil, makeError(ErrInvalidArgument,
				fmt.Sprintf("bn: invalid hex digit in %q", s[lo:i]))
		}
		n.limbs = append(n.limbs, int64(v))
	}
	n.trim()
	if neg {
		return n.Neg(), nil
	}
	return n, nil
}

// MustHex is like FromHex but panics on malformed input. It is intended for
// package-level constants.
func MustHex(s string) *Int {
	n, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return n
}

// New constructs an Int from an integer, a hex string, a *big.Int or another
// *Int (deep copy). Any other type yields an error of kind
// ErrInvalidArgument.
func New(v interface{}) (*Int, error) {
	switch v := v.(type) {
	case int:
		return NewInt(int64(v)), nil
	case int32:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case uint32:
		return NewUint64(uint64(v)), nil
	case uint64:
		return NewUint64(v), nil
	case string:
		return FromHex(v)
	case *Int:
		if v == nil {
			break
		}
		return v.Copy(), nil
	case *big.Int:
		if v == nil {
			break
		}
		return FromBig(v), nil
	}
	return nil, makeError(ErrInvalidArgument,
		fmt.Sprintf("bn: cannot construct Int from %T", v))
}

// FromBig converts a math/big integer.
func FromBig(b *big.Int) *Int {
	if b.Sign() == 0 {
		return NewInt(0)
	}
	return MustHex(b.Text(16))
}

// Big converts n to a math/big integer. n need not be normalized.
func (n *Int) Big() *big.Int {
	out := new(big.Int)
	limb := new(big.Int)
	for i := len(n.limbs) - 1; i >= 0; i-- {
		out.Lsh(out, Radix)
		out.Add(out, limb.SetInt64(n.limbs[i]))
	}
	return out
}

// Copy returns a deep copy of n.
func (n *Int) Copy() *Int {
	if len(n.limbs) == 0 {
		return NewInt(0)
	}
	return &Int{limbs: append(make([]int64, 0, len(n.limbs)), n.limbs...)}
}

// Limbs returns the limbs of a normalized copy of n, least significant first.
func (n *Int) Limbs() []int64 {
	return append([]int64(nil), n.normalized().limbs...)
}

// Normalize propagates carries so that every limb below the top one lies in
// [0, 2^24) and strips redundant leading zero limbs. A negative value ends
// with a negative top limb. The receiver is modified and returned.
func (n *Int) Normalize() *Int {
	var carry int64
	i := 0
	for ; i < len(n.limbs) || (carry != 0 && carry != -1); i++ {
		if i == len(n.limbs) {
			n.limbs = append(n.limbs, 0)
		}
		l := n.limbs[i] + carry
		m := l & radixMask
		n.limbs[i] = m
		carry = l >> Radix
	}
	if carry == -1 {
		n.limbs[i-1] -= placeVal
	}
	return n.trim()
}

// IsNormalized reports whether n is already in the form Normalize produces.
func (n *Int) IsNormalized() bool {
	l := len(n.limbs)
	if l == 0 {
		return false
	}
	for i := 0; i < l-1; i++ {
		if n.limbs[i] < 0 || n.limbs[i] > radixMask {
			return false
		}
	}
	top := n.limbs[l-1]
	if top > radixMask || top < -placeVal {
		return false
	}
	return l == 1 || (top != 0 && top != -1)
}

// cnormalize propagates carries through every limb but the top one, which
// absorbs the final carry. It runs the same sequence of operations for any
// limb values, which makes it suitable for the inner loops of Mul and the
// field reductions. It makes no formal constant-time guarantee.
func (n *Int) cnormalize() *Int {
	if len(n.limbs) == 0 {
		n.limbs = []int64{0}
		return n
	}
	var carry int64
	last := len(n.limbs) - 1
	for i := 0; i < last; i++ {
		l := n.limbs[i] + carry
		m := l & radixMask
		n.limbs[i] = m
		carry = l >> Radix
	}
	n.limbs[last] += carry
	return n
}

// trim drops leading zero limbs, keeping at least one. A top limb of -1
// over an in-range limb is folded into that limb, so negative values have a
// single canonical form.
func (n *Int) trim() *Int {
	l := len(n.limbs)
	for l > 1 {
		top, next := n.limbs[l-1], n.limbs[l-2]
		if top == 0 {
			l--
			continue
		}
		if top == -1 && next >= 0 && next <= radixMask {
			n.limbs[l-2] = next - placeVal
			l--
			continue
		}
		break
	}
	if l == 0 {
		n.limbs = append(n.limbs[:0], 0)
		return n
	}
	n.limbs = n.limbs[:l]
	return n
}

// normalized returns n itself when it is already normalized, otherwise a
// normalized copy. The result must not be mutated.
func (n *Int) normalized() *Int {
	if n.IsNormalized() {
		return n
	}
	return n.Copy().Normalize()
}

func (n *Int) getLimb(i int) int64 {
	if i >= len(n.limbs) {
		return 0
	}
	return n.limbs[i]
}

// Sign returns -1, 0 or +1 depending on the sign of n.
func (n *Int) Sign() int {
	x := n.normalized()
	top := x.limbs[len(x.limbs)-1]
	switch {
	case top < 0:
		return -1
	case top == 0 && len(x.limbs) == 1:
		return 0
	}
	return 1
}

// IsZero reports whether n == 0.
func (n *Int) IsZero() bool {
	return n.Sign() == 0
}

// String renders n as 0x-prefixed lower-case hex.
func (n *Int) String() string {
	x := n.normalized()
	if x.Sign() < 0 {
		return "-" + x.Neg().String()
	}
	var sb strings.Builder
	sb.WriteString("0x")
	top := len(x.limbs) - 1
	sb.WriteString(strconv.FormatInt(x.limbs[top], 16))
	for i := top - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%06x", x.limbs[i])
	}
	return sb.String()
}
