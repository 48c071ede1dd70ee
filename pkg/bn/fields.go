package bn

import "sort"

// Pseudo-Mersenne fields known to this package.
var (
	// P127 is 2^127 - 1.
	P127 = NewField("p127", 127, []Coeff{{0, -1}})
	// P25519 is 2^255 - 19.
	P25519 = NewField("p25519", 255, []Coeff{{0, -19}})

	// Koblitz primes.
	P192K = NewField("p192k", 192, []Coeff{{32, -1}, {12, -1}, {8, -1}, {7, -1}, {6, -1}, {3, -1}, {0, -1}})
	P224K = NewField("p224k", 224, []Coeff{{32, -1}, {12, -1}, {11, -1}, {9, -1}, {7, -1}, {4, -1}, {1, -1}, {0, -1}})
	P256K = NewField("p256k", 256, []Coeff{{32, -1}, {9, -1}, {8, -1}, {7, -1}, {6, -1}, {4, -1}, {0, -1}})

	// NIST primes.
	P192 = NewField("p192", 192, []Coeff{{0, -1}, {64, -1}})
	P224 = NewField("p224", 224, []Coeff{{0, 1}, {96, -1}})
	P256 = NewField("p256", 256, []Coeff{{0, -1}, {96, 1}, {192, 1}, {224, -1}})
	P384 = NewField("p384", 384, []Coeff{{0, -1}, {32, 1}, {96, -1}, {128, -1}})
	P521 = NewField("p521", 521, []Coeff{{0, -1}})
)

var fields = map[string]*Field{}

func init() {
	for _, f := range []*Field{P127, P25519, P192K, P224K, P256K, P192, P224, P256, P384, P521} {
		fields[f.name] = f
	}
}

// FieldByName looks up a registered field.
func FieldByName(name string) (*Field, bool) {
	f, ok := fields[name]
	return f, ok
}

// Fields returns every registered field ordered by name.
func Fields() []*Field {
	out := make([]*Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
