package bn

import (
	"crypto/elliptic"
	"math/big"
	"math/rand"
	"testing"

	"filippo.io/edwards25519/field"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldModuli(t *testing.T) {
	tests := []struct {
		f    *Field
		want string
	}{
		{P127, "7fffffffffffffffffffffffffffffff"},
		{P25519, "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed"},
		{P192K, "fffffffffffffffffffffffffffffffffffffffeffffee37"},
		{P224K, "fffffffffffffffffffffffffffffffffffffffffffffffeffffe56d"},
		{P256K, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"},
		{P192, "fffffffffffffffffffffffffffffffeffffffffffffffff"},
		{P224, "ffffffffffffffffffffffffffffffff000000000000000000000001"},
		{P256, "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"},
		{P384, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff"},
		{P521, "1ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.f.Name(), func(t *testing.T) {
			p := tt.f.Modulus()
			assert.Equal(t, tt.want, p.Big().Text(16))
			assert.True(t, p.Big().ProbablyPrime(20))
			assert.Equal(t, tt.f.Exponent(), p.BitLen())
			assert.Equal(t, (tt.f.Exponent()+Radix-1)/Radix, tt.f.ModOffset())
		})
	}

	assertBig(t, elliptic.P224().Params().P, P224.Modulus())
	assertBig(t, elliptic.P256().Params().P, P256.Modulus())
	assertBig(t, elliptic.P384().Params().P, P384.Modulus())
	assertBig(t, elliptic.P521().Params().P, P521.Modulus())
	assertBig(t, secp256k1.Params().P, P256K.Modulus())
}

func TestModulusIsACopy(t *testing.T) {
	p := P256K.Modulus()
	p.addM(NewInt(1))
	assertBig(t, secp256k1.Params().P, P256K.Modulus())
}

func TestFieldRegistry(t *testing.T) {
	f, ok := FieldByName("p256k")
	require.True(t, ok)
	assert.Same(t, P256K, f)

	_, ok = FieldByName("p999")
	assert.False(t, ok)

	var names []string
	for _, f := range Fields() {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{
		"p127", "p192", "p192k", "p224", "p224k", "p25519", "p256", "p256k", "p384", "p521",
	}, names)
}

func TestNewFieldPanics(t *testing.T) {
	assert.Panics(t, func() { NewField("bad", 0, nil) })
	assert.Panics(t, func() { NewField("bad", 64, []Coeff{{64, -1}}) })
	assert.Panics(t, func() { NewField("bad", 64, []Coeff{{-1, -1}}) })
}

// reductionInputs returns values around the edges of f together with random
// products and wide random values of both signs.
func reductionInputs(r *rand.Rand, f *Field) []*big.Int {
	p := f.Modulus().Big()
	one := big.NewInt(1)
	pow := new(big.Int).Lsh(one, uint(f.Exponent()))
	pm1 := new(big.Int).Sub(p, one)

	in := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		pm1,
		new(big.Int).Set(p),
		new(big.Int).Add(p, one),
		new(big.Int).Lsh(p, 1),
		new(big.Int).Neg(p),
		new(big.Int).Sub(pow, one),
		pow,
		new(big.Int).Mul(pm1, pm1),
		new(big.Int).Neg(new(big.Int).Mul(pm1, pm1)),
	}
	for i := 0; i < 100; i++ {
		a := randBig(r, f.Exponent()+1, true)
		b := randBig(r, f.Exponent()+1, true)
		in = append(in, new(big.Int).Mul(a, b), randBig(r, 2*f.Exponent()+64, true))
	}
	return in
}

func TestReduce(t *testing.T) {
	r := rand.New(rand.NewSource(14))
	for _, f := range Fields() {
		p := f.Modulus().Big()
		for _, v := range reductionInputs(r, f) {
			got := Reduce(FromBig(v), f)
			assert.LessOrEqual(t, len(got.limbs), f.ModOffset(), "%s: %s", f.Name(), v)

			want := new(big.Int).Mod(v, p)
			assertBig(t, want, FromBig(new(big.Int).Mod(got.Big(), p)), "%s: %s", f.Name(), v)
		}
	}
}

func TestReduceProducts(t *testing.T) {
	r := rand.New(rand.NewSource(15))
	for _, f := range Fields() {
		p := f.Modulus().Big()
		for i := 0; i < 100; i++ {
			// Approximately reduced operands feed further multiplications.
			a := Reduce(FromBig(randBig(r, f.Exponent(), true)), f)
			b := Reduce(FromBig(randBig(r, f.Exponent(), false)), f)
			got := Reduce(a.Mul(b), f)

			want := new(big.Int).Mul(a.Big(), b.Big())
			want.Mod(want, p)
			assertBig(t, want, FromBig(new(big.Int).Mod(got.Big(), p)), f.Name())
		}
	}
}

func TestFullReduce(t *testing.T) {
	r := rand.New(rand.NewSource(16))
	for _, f := range Fields() {
		t.Run(f.Name(), func(t *testing.T) {
			p := f.Modulus().Big()
			for _, v := range reductionInputs(r, f) {
				got := FullReduce(FromBig(v), f)
				assert.True(t, got.IsNormalized(), "%s", v)
				assertBig(t, new(big.Int).Mod(v, p), got, "%s", v)

				again := FullReduce(got.Copy(), f)
				assert.True(t, again.Equal(got))
				assert.True(t, again.EqualLimbs(got))
			}
		})
	}
}

func TestFullReduceUnnormalized(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	p := P256K.Modulus().Big()
	for i := 0; i < 100; i++ {
		a := randBig(r, 256, true)
		b := randBig(r, 256, true)
		x := FromBig(a).Sub(FromBig(b))
		got := FullReduce(x, P256K)

		want := new(big.Int).Sub(a, b)
		assertBig(t, want.Mod(want, p), got)
	}
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

func TestP25519AgainstEdwards(t *testing.T) {
	r := rand.New(rand.NewSource(18))
	p := P25519.Modulus().Big()
	for i := 0; i < 100; i++ {
		a := new(big.Int).Rand(r, p)
		b := new(big.Int).Rand(r, p)

		fa, err := new(field.Element).SetBytes(reverse(a.FillBytes(make([]byte, 32))))
		require.NoError(t, err)
		fb, err := new(field.Element).SetBytes(reverse(b.FillBytes(make([]byte, 32))))
		require.NoError(t, err)

		x, y := FromBig(a), FromBig(b)

		prod := FullReduce(x.Mul(y), P25519)
		assert.Equal(t, new(field.Element).Multiply(fa, fb).Bytes(), reverse(prod.Bytes(32)))

		diff := FullReduce(x.Sub(y), P25519)
		assert.Equal(t, new(field.Element).Subtract(fa, fb).Bytes(), reverse(diff.Bytes(32)))

		if a.Sign() == 0 {
			continue
		}
		inv, err := x.ModInverse(P25519.Modulus())
		require.NoError(t, err)
		assert.Equal(t, new(field.Element).Invert(fa).Bytes(), reverse(inv.Bytes(32)))
	}
}
