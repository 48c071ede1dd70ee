package ecc

import (
	"fmt"
	"sort"

	"github.com/smallyu/go-pmecc/pkg/bn"
)

// The named curves. The C curves are the NIST P curves with a = -3, the K
// curves are the SEC Koblitz curves with a = 0. K256 is secp256k1.
var (
	C192 = NewCurve("c192", bn.P192,
		bn.MustHex("0xffffffffffffffffffffffff99def836146bc9b1b4d22831"),
		bn.NewInt(-3),
		bn.MustHex("0x64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1"),
		bn.MustHex("0x188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012"),
		bn.MustHex("0x07192b95ffc8da78631011ed6b24cdd573f977a11e794811"))

	C224 = NewCurve("c224", bn.P224,
		bn.MustHex("0xffffffffffffffffffffffffffff16a2e0b8f03e13dd29455c5c2a3d"),
		bn.NewInt(-3),
		bn.MustHex("0xb4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4"),
		bn.MustHex("0xb70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21"),
		bn.MustHex("0xbd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34"))

	C256 = NewCurve("c256", bn.P256,
		bn.MustHex("0xffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
		bn.NewInt(-3),
		bn.MustHex("0x5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
		bn.MustHex("0x6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
		bn.MustHex("0x4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"))

	C384 = NewCurve("c384", bn.P384,
		bn.MustHex("0xffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973"),
		bn.NewInt(-3),
		bn.MustHex("0xb3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef"),
		bn.MustHex("0xaa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7"),
		bn.MustHex("0x3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f"))

	C521 = NewCurve("c521", bn.P521,
		bn.MustHex("0x1FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFA51868783BF2F966B7FCC0148F709A5D03BB5C9B8899C47AEBB6FB71E91386409"),
		bn.NewInt(-3),
		bn.MustHex("0x051953EB9618E1C9A1F929A21A0B68540EEA2DA725B99B315F3B8B489918EF109E156193951EC7E937B1652C0BD3BB1BF073573DF883D2C34F1EF451FD46B503F00"),
		bn.MustHex("0xC6858E06B70404E9CD9E3ECB662395B4429C648139053FB521F828AF606B4D3DBAA14B5E77EFE75928FE1DC127A2FFA8DE3348B3C1856A429BF97E7E31C2E5BD66"),
		bn.MustHex("0x11839296A789A3BC0045C8A5FB42C7D1BD998F54449579B446817AFBD17273E662C97EE72995EF42640C550B9013FAD0761353C7086A272C24088BE94769FD16650"))

	K192 = NewCurve("k192", bn.P192K,
		bn.MustHex("0xfffffffffffffffffffffffe26f2fc170f69466a74defd8d"),
		bn.NewInt(0),
		bn.NewInt(3),
		bn.MustHex("0xdb4ff10ec057e9ae26b07d0280b7f4341da5d1b1eae06c7d"),
		bn.MustHex("0x9b2f2f6d9c5628a7844163d015be86344082aa88d95e2f9d"))

	K224 = NewCurve("k224", bn.P224K,
		bn.MustHex("0x010000000000000000000000000001dce8d2ec6184caf0a971769fb1f7"),
		bn.NewInt(0),
		bn.NewInt(5),
		bn.MustHex("0xa1455b334df099df30fc28a169a467e9e47075a90f7e650eb6b7a45c"),
		bn.MustHex("0x7e089fed7fba344282cafbd6f7e319f7c0b0bd59e2ca4bdb556d61a5"))

	K256 = NewCurve("k256", bn.P256K,
		bn.MustHex("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		bn.NewInt(0),
		bn.NewInt(7),
		bn.MustHex("0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		bn.MustHex("0x483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"))
)

var curves = map[string]*Curve{}

func init() {
	for _, c := range []*Curve{C192, C224, C256, C384, C521, K192, K224, K256} {
		curves[c.name] = c
	}
}

// CurveByName looks up a registered curve. An unknown name yields an error of
// kind ErrUnknownCurve.
func CurveByName(name string) (*Curve, error) {
	c, ok := curves[name]
	if !ok {
		return nil, makeError(ErrUnknownCurve, fmt.Sprintf("ecc: unknown curve %q", name))
	}
	return c, nil
}

// Curves returns every registered curve ordered by name.
func Curves() []*Curve {
	out := make([]*Curve, 0, len(curves))
	for _, c := range curves {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
