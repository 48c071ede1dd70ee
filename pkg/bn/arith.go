package bn

// Add returns n + that. The result is not normalized.
func (n *Int) Add(that *Int) *Int {
	return n.Copy().addM(that)
}

// Sub returns n - that. The result is not normalized.
func (n *Int) Sub(that *Int) *Int {
	return n.Copy().subM(that)
}

// Neg returns -n, normalized.
func (n *Int) Neg() *Int {
	out := &Int{limbs: make([]int64, len(n.limbs))}
	for i, l := range n.limbs {
		out.limbs[i] = -l
	}
	return out.Normalize()
}

// addM adds that to n in place, growing n as needed. No carries are
// propagated.
func (n *Int) addM(that *Int) *Int {
	n.grow(len(that.limbs))
	for i, l := range that.limbs {
		n.limbs[i] += l
	}
	return n
}

// subM subtracts that from n in place, growing n as needed. No carries are
// propagated.
func (n *Int) subM(that *Int) *Int {
	n.grow(len(that.limbs))
	for i, l := range that.limbs {
		n.limbs[i] -= l
	}
	return n
}

func (n *Int) grow(l int) {
	if d := l - len(n.limbs); d > 0 {
		n.limbs = append(n.limbs, make([]int64, d)...)
	}
}

// Mul returns n * that by schoolbook convolution. Carries are propagated
// every maxMul rows and once more at the end; the top limb of the result
// absorbs the final carry.
func (n *Int) Mul(that *Int) *Int {
	a, b := n.limbs, that.limbs
	out := &Int{limbs: make([]int64, len(a)+len(b)+1)}
	c := out.limbs
	ii := maxMul
	for i, ai := range a {
		for j, bj := range b {
			c[i+j] += ai * bj
		}
		ii--
		if ii == 0 {
			ii = maxMul
			out.cnormalize()
		}
	}
	return out.cnormalize().trim()
}

// Square returns n * n.
func (n *Int) Square() *Int {
	return n.Mul(n)
}

// doubleM doubles n in place. n need not be normalized.
func (n *Int) doubleM() *Int {
	var carry int64
	for i, l := range n.limbs {
		t := l + l + carry
		n.limbs[i] = t & radixMask
		carry = t >> Radix
	}
	if carry != 0 {
		n.limbs = append(n.limbs, carry)
	}
	return n
}

// halveM divides n by two in place, rounding down. n must be normalized and
// non-negative; it stays normalized.
func (n *Int) halveM() *Int {
	var carry int64
	for i := len(n.limbs) - 1; i >= 0; i-- {
		t := n.limbs[i]
		n.limbs[i] = (t + carry) >> 1
		carry = (t & 1) << Radix
	}
	if l := len(n.limbs); l > 1 && n.limbs[l-1] == 0 {
		n.limbs = n.limbs[:l-1]
	}
	return n
}

// Lsh returns n * 2^k, normalized.
func (n *Int) Lsh(k uint) *Int {
	q, r := int(k/Radix), k%Radix
	out := &Int{limbs: make([]int64, q+len(n.limbs))}
	for i, l := range n.limbs {
		out.limbs[q+i] = l << r
	}
	return out.Normalize()
}

// Rsh returns n / 2^k rounded towards negative infinity, normalized.
func (n *Int) Rsh(k uint) *Int {
	x := n.normalized()
	q, r := int(k/Radix), k%Radix
	if q >= len(x.limbs) {
		if x.Sign() < 0 {
			return NewInt(-1)
		}
		return NewInt(0)
	}
	out := &Int{limbs: make([]int64, len(x.limbs)-q)}
	for i := range out.limbs {
		l := x.limbs[q+i] >> r
		if r != 0 && q+i+1 < len(x.limbs) {
			l |= (x.limbs[q+i+1] << (Radix - r)) & radixMask
		}
		out.limbs[i] = l
	}
	return out.Normalize()
}

// lowBits returns n mod 2^k for a non-negative n.
func (n *Int) lowBits(k int) *Int {
	x := n.normalized()
	q, r := k/Radix, k%Radix
	if q >= len(x.limbs) {
		return x.Copy()
	}
	out := &Int{limbs: append([]int64(nil), x.limbs[:q+1]...)}
	out.limbs[q] &= 1<<uint(r) - 1
	return out.trim()
}

// Mod returns n mod m in [0, m) by binary long division: the modulus is
// doubled until it exceeds n, then halved back down, subtracting whenever
// possible. A negative n is handled by reducing |n| against the aligned
// multiple of m. Mod panics if m is not positive.
func (n *Int) Mod(m *Int) *Int {
	modulus := m.Copy().Normalize()
	if modulus.Sign() <= 0 {
		panic("bn: division by non-positive modulus")
	}
	out := n.Copy().Normalize()
	neg := out.Sign() < 0
	if neg {
		out = out.Neg()
	}

	ci := 0
	for ; out.GreaterEqual(modulus); ci++ {
		modulus.doubleM()
	}
	if neg {
		out = modulus.Sub(out).Normalize()
	}
	for ; ci > 0; ci-- {
		modulus.halveM()
		if out.GreaterEqual(modulus) {
			out.subM(modulus).Normalize()
		}
	}
	return out.trim()
}

// Pow returns n^e by square-and-multiply. e must be non-negative; it is
// meant for small control values.
func (n *Int) Pow(e *Int) *Int {
	l := e.Limbs()
	if l[len(l)-1] < 0 {
		panic("bn: negative exponent")
	}
	out, pw := NewInt(1), n.Copy()
	for i := range l {
		for j := 0; j < Radix; j++ {
			if l[i]>>uint(j)&1 == 1 {
				out = out.Mul(pw)
			}
			if i == len(l)-1 && l[i]>>uint(j+1) == 0 {
				break
			}
			pw = pw.Square()
		}
	}
	return out.Normalize()
}

// Equal reports whether n and that represent the same value. Both are
// compared in normalized form; every limb is visited.
func (n *Int) Equal(that *Int) bool {
	return n.normalized().EqualLimbs(that.normalized())
}

// EqualLimbs compares the limb vectors of n and that exactly as stored,
// treating missing limbs as zero. The scan accumulates differences instead
// of stopping at the first mismatch.
func (n *Int) EqualLimbs(that *Int) bool {
	l := len(n.limbs)
	if len(that.limbs) > l {
		l = len(that.limbs)
	}
	var acc int64
	for i := 0; i < l; i++ {
		acc |= n.getLimb(i) ^ that.getLimb(i)
	}
	return acc == 0
}

// GreaterEqual reports whether n >= that. Both should be normalized. The
// limbs are scanned from the top down into two bitwise accumulators so the
// loop does not exit early on the first differing limb.
func (n *Int) GreaterEqual(that *Int) bool {
	var less, greater int64
	i := len(n.limbs)
	if len(that.limbs) > i {
		i = len(that.limbs)
	}
	for i--; i >= 0; i-- {
		a, b := n.getLimb(i), that.getLimb(i)
		greater |= (b - a) &^ less
		less |= (a - b) &^ greater
	}
	return greater|^less < 0
}
