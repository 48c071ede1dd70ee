package bn

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitLen(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		a := randBig(r, r.Intn(600), false)
		n := FromBig(a)
		assert.Equal(t, a.BitLen(), n.BitLen(), a.String())
		assert.Equal(t, (a.BitLen()+7)/8*8, n.BitLength(), a.String())
		for j := 0; j < 8; j++ {
			k := r.Intn(a.BitLen() + 30)
			assert.Equal(t, int(a.Bit(k)), n.Bit(k), "bit %d of %s", k, a)
		}
	}
	assert.Equal(t, 0, NewInt(-5).BitLen())
	assert.Equal(t, 0, NewInt(0).BitLength())
	assert.Equal(t, 0, NewInt(1).Bit(-1))
}

func TestBitsRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for i := 0; i < 300; i++ {
		a := randBig(r, r.Intn(700), false)
		n := FromBig(a)

		bits := n.ToBits(0)
		assert.Equal(t, n.BitLength(), bits.Len())
		assert.True(t, FromBits(bits).Equal(n), "%s", a)
	}
}

func TestToBitsFixedLength(t *testing.T) {
	n := MustHex("0x1234")

	bits := n.ToBits(256)
	require.Equal(t, 256, bits.Len())
	assert.Equal(t, uint32(0x1234), bits.Extract(256-16, 16))
	assert.Equal(t, uint32(0), bits.Extract(0, 32))
	assert.True(t, FromBits(bits).Equal(n))

	// Lengths are rounded up to whole bytes.
	assert.Equal(t, 32, n.ToBits(25).Len())
	assert.Equal(t, 24, n.ToBits(24).Len())
}

func TestBytes(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 200; i++ {
		a := randBig(r, 1+r.Intn(521), false)
		size := (a.BitLen() + 7) / 8
		size += r.Intn(4)

		want := a.FillBytes(make([]byte, size))
		got := FromBig(a).Bytes(size)
		assert.Equal(t, want, got)
		assert.True(t, FromBytes(got).Equal(FromBig(a)))
	}

	assert.Equal(t, []byte{0x01, 0x00}, NewInt(256).Bytes(0))
	assert.True(t, FromBytes(nil).IsZero())
	assertBig(t, new(big.Int).SetBytes([]byte{0, 0, 0xff}), FromBytes([]byte{0, 0, 0xff}))
}
