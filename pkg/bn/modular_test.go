package bn

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModInverseSmall(t *testing.T) {
	inv, err := NewInt(7).ModInverse(NewInt(11))
	require.NoError(t, err)
	assert.True(t, inv.Equal(NewInt(8)), "got %s", inv)
}

func TestModInverseErrors(t *testing.T) {
	tests := []struct {
		name string
		n, p int64
		kind ErrorKind
	}{
		{"even modulus", 3, 10, ErrInvalidModulus},
		{"zero modulus", 3, 0, ErrInvalidModulus},
		{"negative modulus", 3, -11, ErrInvalidModulus},
		{"common factor", 6, 9, ErrNotCoprime},
		{"zero", 0, 11, ErrNotCoprime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInt(tt.n).ModInverse(NewInt(tt.p))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "%v", err)

			var e Error
			assert.True(t, errors.As(err, &e))
		})
	}
}

func TestModInverseFields(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for _, f := range Fields() {
		p := f.Modulus().Big()
		for i := 0; i < 20; i++ {
			a := randBig(r, f.Exponent()+8, true)
			if new(big.Int).Mod(a, p).Sign() == 0 {
				continue
			}
			inv, err := FromBig(a).ModInverse(f.Modulus())
			require.NoError(t, err)
			assertBig(t, new(big.Int).ModInverse(new(big.Int).Mod(a, p), p), inv, "%s: %s", f.Name(), a)
		}
	}
}

func TestModPow(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	for i := 0; i < 60; i++ {
		base := randBig(r, 1+r.Intn(300), false)
		exp := randBig(r, r.Intn(900), false)
		mod := randBig(r, 1+r.Intn(400), false)
		if mod.Sign() == 0 {
			continue
		}
		if i%2 == 0 {
			mod.SetBit(mod, 0, 1)
		} else {
			mod.SetBit(mod, 0, 0)
			if mod.Sign() == 0 {
				continue
			}
		}

		got, err := FromBig(base).ModPow(FromBig(exp), FromBig(mod))
		require.NoError(t, err)
		assertBig(t, new(big.Int).Exp(base, exp, mod), got, "%s^%s mod %s", base, exp, mod)
	}
}

func TestModPowEdges(t *testing.T) {
	got, err := NewInt(5).ModPow(NewInt(0), NewInt(7))
	require.NoError(t, err)
	assert.True(t, got.Equal(NewInt(1)))

	got, err = NewInt(5).ModPow(NewInt(0), NewInt(8))
	require.NoError(t, err)
	assert.True(t, got.Equal(NewInt(1)))

	got, err = NewInt(5).ModPow(NewInt(3), NewInt(1))
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = NewInt(-2).ModPow(NewInt(3), NewInt(7))
	require.NoError(t, err)
	assert.True(t, got.Equal(NewInt(6)), "got %s", got)

	_, err = NewInt(5).ModPow(NewInt(-1), NewInt(7))
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = NewInt(5).ModPow(NewInt(3), NewInt(0))
	assert.True(t, errors.Is(err, ErrInvalidModulus))

	_, err = NewInt(5).MontgomeryModPow(NewInt(3), NewInt(8))
	assert.True(t, errors.Is(err, ErrInvalidModulus))
}

func TestModPowFermat(t *testing.T) {
	// a^(p-1) == 1 for every registered prime.
	for _, f := range Fields() {
		pm1 := f.Modulus().Sub(NewInt(1))
		got, err := NewInt(0x1234567).MontgomeryModPow(pm1, f.Modulus())
		require.NoError(t, err)
		assert.True(t, got.Equal(NewInt(1)), f.Name())
	}
}

func TestSetupMontgomery(t *testing.T) {
	for _, f := range Fields() {
		m, err := setupMontgomery(f.Modulus())
		require.NoError(t, err)
		assert.Equal(t, f.Exponent(), m.k, f.Name())
	}
}

func TestWindowSize(t *testing.T) {
	tests := []struct{ bits, w int }{
		{1, 1}, {17, 1}, {18, 3}, {47, 3}, {48, 4}, {143, 4}, {144, 5}, {767, 5}, {768, 6}, {4096, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.w, windowSize(tt.bits), "%d bits", tt.bits)
	}
}
