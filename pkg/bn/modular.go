package bn

// ModInverse returns the inverse of n modulo p using the binary extended
// Euclidean algorithm. p must be odd and positive, otherwise an error of kind
// ErrInvalidModulus is returned. ErrNotCoprime is returned when
// gcd(n, p) != 1.
func (n *Int) ModInverse(p *Int) (*Int, error) {
	m := p.Copy().Normalize()
	if m.limbs[0]&1 == 0 {
		return nil, makeError(ErrInvalidModulus, "bn: modInverse: modulus must be odd")
	}
	if m.Sign() <= 0 {
		return nil, makeError(ErrInvalidModulus, "bn: modInverse: modulus must be positive")
	}

	a, b := NewInt(1), NewInt(0)
	x, y := n.Mod(m), m.Copy()

	// Invariant: y is odd.
	for {
		if x.limbs[0]&1 == 1 {
			if !x.GreaterEqual(y) {
				x, y = y, x
				a, b = b, a
			}
			x.subM(y).Normalize()

			if !a.GreaterEqual(b) {
				a.addM(m)
			}
			a.subM(b)
		}

		x.halveM()
		if a.limbs[0]&1 == 1 {
			a.addM(m)
		}
		a.Normalize().halveM()

		var nz int64
		for _, l := range x.limbs {
			nz |= l
		}
		if nz == 0 {
			break
		}
	}

	if !y.Equal(one) {
		return nil, makeError(ErrNotCoprime,
			"bn: modInverse: modulus and argument must be relatively prime")
	}
	return b, nil
}

// ModPow returns n^x mod N. Odd moduli go through MontgomeryModPow; even
// ones fall back to square-and-multiply with a reduction after every step.
func (n *Int) ModPow(x, N *Int) (*Int, error) {
	e := x.Copy().Normalize()
	if e.Sign() < 0 {
		return nil, makeError(ErrInvalidArgument, "bn: modPow: negative exponent")
	}
	m := N.Copy().Normalize()
	if m.Sign() <= 0 {
		return nil, makeError(ErrInvalidModulus, "bn: modPow: modulus must be positive")
	}
	if m.limbs[0]&1 == 1 {
		return n.MontgomeryModPow(e, m)
	}

	out, pw := NewInt(1), n.Mod(m)
	for i := e.BitLen() - 1; i >= 0; i-- {
		out = out.Square().Mod(m)
		if e.Bit(i) == 1 {
			out = out.Mul(pw).Mod(m)
		}
	}
	return out.Mod(m), nil
}

// montgomery holds the parameters of Montgomery arithmetic modulo an odd n
// with R = 2^k, where np satisfies R*R' - n*np = 1.
type montgomery struct {
	n  *Int
	np *Int
	k  int
}

// setupMontgomery derives R = 2^k as the smallest power of two above n and
// the pair (R', N') with R*R' - N*N' = 1. R' is built bit by bit as
// 2^-t mod n while N' collects the matching multiples of n.
func setupMontgomery(n *Int) (*montgomery, error) {
	k := n.BitLen()
	rp, np := NewInt(1), &Int{limbs: make([]int64, k/Radix+1)}

	// Invariant: 2^t * rp - n * np = 1.
	for t := 0; t < k; t++ {
		if rp.limbs[0]&1 == 1 {
			rp.addM(n).Normalize()
			np.limbs[t/Radix] |= 1 << uint(t%Radix)
		}
		rp.halveM()
	}
	np.trim()

	r := one.Lsh(uint(k))
	if !r.Mul(rp).Sub(n.Mul(np)).Equal(one) {
		return nil, makeError(ErrMontgomerySetup,
			"bn: cannot perform Montgomery reduction on this modulus")
	}
	return &montgomery{n: n, np: np, k: k}, nil
}

// mul returns a*b/R mod n for a, b in [0, n).
func (m *montgomery) mul(a, b *Int) *Int {
	ab := a.Mul(b)
	u := ab.lowBits(m.k).Mul(m.np).lowBits(m.k)
	t := ab.addM(u.Mul(m.n)).Normalize().Rsh(uint(m.k))
	if t.GreaterEqual(m.n) {
		t.subM(m.n).Normalize()
	}
	return t
}

// windowSize picks the sliding window width from the exponent's bit length.
func windowSize(bits int) int {
	switch {
	case bits < 18:
		return 1
	case bits < 48:
		return 3
	case bits < 144:
		return 4
	case bits < 768:
		return 5
	}
	return 6
}

// MontgomeryModPow returns n^x mod N for an odd N using Montgomery
// multiplication and sliding-window exponentiation over a table of odd
// powers.
func (n *Int) MontgomeryModPow(x, N *Int) (*Int, error) {
	e := x.Copy().Normalize()
	if e.Sign() < 0 {
		return nil, makeError(ErrInvalidArgument, "bn: modPow: negative exponent")
	}
	mod := N.Copy().Normalize()
	if mod.Sign() <= 0 || mod.limbs[0]&1 == 0 {
		return nil, makeError(ErrInvalidModulus,
			"bn: Montgomery exponentiation needs an odd positive modulus")
	}
	if mod.Equal(one) {
		return NewInt(0), nil
	}
	if e.IsZero() {
		return NewInt(1), nil
	}

	mont, err := setupMontgomery(mod)
	if err != nil {
		return nil, err
	}
	r2 := one.Lsh(uint(2 * mont.k)).Mod(mod)

	bits := e.BitLen()
	w := windowSize(bits)

	pw := mont.mul(n.Mod(mod), r2)
	out := mont.mul(one, r2)

	// precomp[i] holds pw^i for odd i < 2^w.
	precomp := make([]*Int, 1<<uint(w))
	precomp[1] = pw
	if w > 1 {
		pw2 := mont.mul(pw, pw)
		for h := 1; 2*h+1 < len(precomp); h++ {
			precomp[2*h+1] = mont.mul(precomp[2*h-1], pw2)
		}
	}

	for i := bits - 1; i >= 0; {
		if e.Bit(i) == 0 {
			out = mont.mul(out, out)
			i--
			continue
		}

		// Longest run of at most w bits ending at a set bit.
		l := i - w + 1
		if l < 0 {
			l = 0
		}
		for e.Bit(l) == 0 {
			l++
		}

		idx := 0
		for j := l; j <= i; j++ {
			idx += e.Bit(j) << uint(j-l)
			out = mont.mul(out, out)
		}
		out = mont.mul(out, precomp[idx])
		i = l - 1
	}

	return mont.mul(out, one), nil
}
