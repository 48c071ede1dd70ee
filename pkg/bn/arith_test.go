package bn

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulSmall(t *testing.T) {
	got := MustHex("0x10").Mul(MustHex("0x10")).Normalize()
	assert.True(t, got.Equal(MustHex("0x100")), "got %s", got)
}

func TestArithmetic(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		a := randBig(r, 1+r.Intn(600), true)
		b := randBig(r, 1+r.Intn(600), true)
		x, y := FromBig(a), FromBig(b)

		assertBig(t, new(big.Int).Add(a, b), x.Add(y))
		assertBig(t, new(big.Int).Sub(a, b), x.Sub(y))
		assertBig(t, new(big.Int).Mul(a, b), x.Mul(y))
		assertBig(t, new(big.Int).Mul(a, a), x.Square())
		assertBig(t, new(big.Int).Neg(a), x.Neg())

		// Operands are left untouched.
		assertBig(t, a, x)
		assertBig(t, b, y)
	}
}

func TestMulUnnormalized(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		a := randBig(r, 256, true)
		b := randBig(r, 256, true)
		c := randBig(r, 256, true)

		// (a+b) and (a-c) keep unpropagated limbs.
		s := FromBig(a).Add(FromBig(b))
		d := FromBig(a).Sub(FromBig(c))
		want := new(big.Int).Mul(new(big.Int).Add(a, b), new(big.Int).Sub(a, c))
		assertBig(t, want, s.Mul(d))
	}
}

func TestDoubleHalve(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		a := randBig(r, 1+r.Intn(400), false)
		assertBig(t, new(big.Int).Lsh(a, 1), FromBig(a).doubleM())
		assertBig(t, new(big.Int).Rsh(a, 1), FromBig(a).halveM())
	}
}

func TestShifts(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 200; i++ {
		a := randBig(r, 1+r.Intn(300), true)
		k := uint(r.Intn(320))
		assertBig(t, new(big.Int).Lsh(a, k), FromBig(a).Lsh(k), "%s << %d", a, k)
		assertBig(t, new(big.Int).Rsh(a, k), FromBig(a).Rsh(k), "%s >> %d", a, k)
	}
	assertBig(t, big.NewInt(-1), NewInt(-5).Rsh(100))
	assertBig(t, big.NewInt(0), NewInt(5).Rsh(100))
}

func TestMod(t *testing.T) {
	tests := []struct {
		n, m, want int64
	}{
		{10, 3, 1},
		{-10, 3, 2},
		{-9, 3, 0},
		{2, 7, 2},
		{-2, 7, 5},
		{0, 7, 0},
		{7, 7, 0},
	}
	for _, tt := range tests {
		got := NewInt(tt.n).Mod(NewInt(tt.m))
		assert.True(t, got.Equal(NewInt(tt.want)), "%d mod %d = %s", tt.n, tt.m, got)
	}

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		a := randBig(r, 1+r.Intn(600), true)
		m := randBig(r, 1+r.Intn(300), false)
		if m.Sign() == 0 {
			continue
		}
		got := FromBig(a).Mod(FromBig(m))
		assert.True(t, got.IsNormalized())
		assertBig(t, new(big.Int).Mod(a, m), got, "%s mod %s", a, m)
	}
}

func TestModPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { NewInt(5).Mod(NewInt(0)) })
	assert.Panics(t, func() { NewInt(5).Mod(NewInt(-3)) })
}

func TestPow(t *testing.T) {
	tests := []struct {
		base, exp int64
	}{
		{3, 0},
		{3, 1},
		{3, 100},
		{-2, 31},
		{0x123456, 17},
		{0, 5},
	}
	for _, tt := range tests {
		want := new(big.Int).Exp(big.NewInt(tt.base), big.NewInt(tt.exp), nil)
		assertBig(t, want, NewInt(tt.base).Pow(NewInt(tt.exp)), "%d^%d", tt.base, tt.exp)
	}
	assert.Panics(t, func() { NewInt(2).Pow(NewInt(-1)) })
}

func TestCompare(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for i := 0; i < 500; i++ {
		a := randBig(r, 1+r.Intn(200), true)
		b := randBig(r, 1+r.Intn(200), true)
		if i%5 == 0 {
			b.Set(a)
		}
		x, y := FromBig(a), FromBig(b)
		assert.Equal(t, a.Cmp(b) >= 0, x.GreaterEqual(y), "%s >= %s", a, b)
		assert.Equal(t, b.Cmp(a) >= 0, y.GreaterEqual(x), "%s >= %s", b, a)
		assert.Equal(t, a.Cmp(b) == 0, x.Equal(y), "%s == %s", a, b)
	}
}

func TestEqualLimbs(t *testing.T) {
	raw := &Int{limbs: []int64{16 + placeVal}}
	norm := MustHex("0x1000010")

	assert.True(t, raw.Equal(norm))
	assert.False(t, raw.EqualLimbs(norm))
	assert.True(t, norm.EqualLimbs(&Int{limbs: []int64{16, 1, 0, 0}}))
	// Equal does not normalize its receiver in place.
	assert.Equal(t, []int64{16 + placeVal}, raw.limbs)
}
