package bitarray

// Array is a big-endian sequence of bits packed into 32-bit words. When the
// length is not a multiple of 32, the bits of the last word sit in its high
// end and the unused low bits are always zero.
type Array struct {
	words []uint32
	n     int
}

// New builds an Array of n bits from words. Bits past n are cleared.
func New(words []uint32, n int) Array {
	if n < 0 {
		n = 0
	}
	if max := 32 * len(words); n > max {
		n = max
	}
	a := Array{words: make([]uint32, (n+31)/32), n: n}
	copy(a.words, words)
	a.clearTail()
	return a
}

// Partial returns an n-bit array holding the low n bits of x, 0 <= n <= 32.
func Partial(n int, x uint32) Array {
	var a Array
	a.push(x, n)
	return a
}

// FromBytes packs b into an Array of 8*len(b) bits.
func FromBytes(b []byte) Array {
	var a Array
	for _, c := range b {
		a.push(uint32(c), 8)
	}
	return a
}

// Len returns the number of bits in a.
func (a Array) Len() int {
	return a.n
}

// Words returns a copy of the packed words.
func (a Array) Words() []uint32 {
	return append([]uint32(nil), a.words...)
}

// Concat returns a followed by b.
func (a Array) Concat(b Array) Array {
	out := Array{words: append(make([]uint32, 0, len(a.words)+len(b.words)), a.words...), n: a.n}
	full := b.n / 32
	for i := 0; i < full; i++ {
		out.push(b.words[i], 32)
	}
	if r := b.n % 32; r != 0 {
		out.push(b.words[full]>>(32-r), r)
	}
	return out
}

// Extract returns n bits starting at bit start, right-aligned. n must not
// exceed 32. Bits beyond the end of a read as zero.
func (a Array) Extract(start, n int) uint32 {
	if n <= 0 {
		return 0
	}
	w, off := start/32, start%32
	pair := uint64(a.word(w))<<32 | uint64(a.word(w+1))
	return uint32(pair>>(64-off-n)) & mask(n)
}

// Slice returns the bits in [start, end).
func (a Array) Slice(start, end int) Array {
	if start < 0 {
		start = 0
	}
	if end > a.n {
		end = a.n
	}
	var out Array
	for i := start; i < end; i += 32 {
		n := end - i
		if n > 32 {
			n = 32
		}
		out.push(a.Extract(i, n), n)
	}
	return out
}

// Bytes unpacks a into bytes. A trailing group of fewer than 8 bits is
// dropped.
func (a Array) Bytes() []byte {
	out := make([]byte, a.n/8)
	for i := range out {
		out[i] = byte(a.words[i/4] >> (24 - 8*(i%4)))
	}
	return out
}

// Equal reports whether a and b hold the same bits.
func (a Array) Equal(b Array) bool {
	if a.n != b.n {
		return false
	}
	var acc uint32
	for i := range a.words {
		acc |= a.words[i] ^ b.words[i]
	}
	return acc == 0
}

// push appends the low n bits of x.
func (a *Array) push(x uint32, n int) {
	if n <= 0 {
		return
	}
	x &= mask(n)
	off := a.n % 32
	if off == 0 {
		a.words = append(a.words, x<<(32-n))
	} else {
		free := 32 - off
		last := len(a.words) - 1
		if n <= free {
			a.words[last] |= x << (free - n)
		} else {
			a.words[last] |= x >> (n - free)
			a.words = append(a.words, x<<(32-(n-free)))
		}
	}
	a.n += n
}

func (a Array) word(i int) uint32 {
	if i < 0 || i >= len(a.words) {
		return 0
	}
	return a.words[i]
}

func (a *Array) clearTail() {
	if r := a.n % 32; r != 0 {
		a.words[len(a.words)-1] &^= mask(32 - r)
	}
}

func mask(n int) uint32 {
	return uint32(uint64(1)<<uint(n) - 1)
}
