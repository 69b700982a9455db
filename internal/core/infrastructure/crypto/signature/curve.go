package signature

import "math/big"

// This file implements the twisted Edwards curve (edwards25519) group law
// directly over math/big, rather than through golang.org/x/crypto/ed25519.
// The reference network's signature scheme replaces SHA-512 with Blake2b
// inside an otherwise standard EdDSA construction, and no library in this
// module's dependency surface exposes a swappable-hash Ed25519 — x/crypto's
// implementation hardcodes SHA-512 internally and cannot be parameterized.
// See ed25519blake2b.go for the scheme built on top of this arithmetic.

var (
	fieldPrime = mustBig("57896044618658097711785492504343953926634992332820282019728792003956564819949") // 2^255 - 19
	groupOrder = mustBig("7237005577332262213973186563042994240857116359379907606001950938285454250989")   // 2^252 + 27742317777372353535851937790883648493
	curveD     *big.Int
	sqrtM1     *big.Int
	basePoint  point
)

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("signature: invalid constant " + s)
	}
	return n
}

func init() {
	// d = -121665/121666 mod p
	num := big.NewInt(-121665)
	den := big.NewInt(121666)
	curveD = new(big.Int).Mul(num, modInverse(den))
	curveD.Mod(curveD, fieldPrime)

	// sqrt(-1) mod p = 2^((p-1)/4) mod p
	exp := new(big.Int).Sub(fieldPrime, big.NewInt(1))
	exp.Div(exp, big.NewInt(4))
	sqrtM1 = new(big.Int).Exp(big.NewInt(2), exp, fieldPrime)

	by := new(big.Int).Mul(big.NewInt(4), modInverse(big.NewInt(5)))
	by.Mod(by, fieldPrime)
	bx := recoverX(by)
	basePoint = point{x: bx, y: by}
}

// point is an affine point on edwards25519.
type point struct {
	x, y *big.Int
}

func modInverse(x *big.Int) *big.Int {
	return new(big.Int).ModInverse(x, fieldPrime)
}

// recoverX recovers the (even) x coordinate for a given y, per the
// reference construction: xx = (y^2-1) / (d*y^2+1); x = xx^((p+3)/8); if
// x^2 != xx, multiply by sqrt(-1); pick the even root.
func recoverX(y *big.Int) *big.Int {
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, fieldPrime)

	num := new(big.Int).Sub(y2, big.NewInt(1))
	num.Mod(num, fieldPrime)

	den := new(big.Int).Mul(curveD, y2)
	den.Add(den, big.NewInt(1))
	den.Mod(den, fieldPrime)

	xx := new(big.Int).Mul(num, modInverse(den))
	xx.Mod(xx, fieldPrime)

	exp := new(big.Int).Add(fieldPrime, big.NewInt(3))
	exp.Div(exp, big.NewInt(8))
	x := new(big.Int).Exp(xx, exp, fieldPrime)

	check := new(big.Int).Mul(x, x)
	check.Mod(check, fieldPrime)
	if check.Cmp(xx) != 0 {
		x.Mul(x, sqrtM1)
		x.Mod(x, fieldPrime)
	}
	if new(big.Int).And(x, big.NewInt(1)).Sign() != 0 {
		x.Sub(fieldPrime, x)
	}
	return x
}

// add computes the twisted-Edwards sum of two points.
func add(p, q point) point {
	x1, y1 := p.x, p.y
	x2, y2 := q.x, q.y

	x1y2 := new(big.Int).Mul(x1, y2)
	x2y1 := new(big.Int).Mul(x2, y1)
	y1y2 := new(big.Int).Mul(y1, y2)
	x1x2 := new(big.Int).Mul(x1, x2)

	dx1x2y1y2 := new(big.Int).Mul(curveD, x1x2)
	dx1x2y1y2.Mul(dx1x2y1y2, y1y2)

	numX := new(big.Int).Add(x1y2, x2y1)
	denX := new(big.Int).Add(big.NewInt(1), dx1x2y1y2)

	numY := new(big.Int).Add(y1y2, x1x2)
	denY := new(big.Int).Sub(big.NewInt(1), dx1x2y1y2)

	x3 := new(big.Int).Mul(numX, modInverse(mod(denX)))
	x3.Mod(x3, fieldPrime)

	y3 := new(big.Int).Mul(numY, modInverse(mod(denY)))
	y3.Mod(y3, fieldPrime)

	return point{x: x3, y: y3}
}

func mod(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, fieldPrime)
}

// scalarMul computes e*p via iterative double-and-add.
func scalarMul(p point, e *big.Int) point {
	result := point{x: big.NewInt(0), y: big.NewInt(1)} // identity
	base := point{x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y)}
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			result = add(result, base)
		}
		base = add(base, base)
	}
	return result
}

// scalarMulBase computes e*B.
func scalarMulBase(e *big.Int) point {
	return scalarMul(basePoint, e)
}

// encodePoint renders p as the 32-byte little-endian compressed form: y in
// the low 255 bits, the parity of x in the top bit.
func encodePoint(p point) [32]byte {
	var out [32]byte
	yBytes := leBytes(p.y, 32)
	copy(out[:], yBytes)
	if new(big.Int).And(p.x, big.NewInt(1)).Sign() != 0 {
		out[31] |= 0x80
	}
	return out
}

// decodePoint parses the 32-byte compressed form, recovering x from y and
// its stored parity, and validates that the recovered point satisfies the
// curve equation.
func decodePoint(data []byte) (point, bool) {
	if len(data) != 32 {
		return point{}, false
	}
	signBit := data[31]&0x80 != 0
	yBytes := make([]byte, 32)
	copy(yBytes, data)
	yBytes[31] &= 0x7F

	y := fromLE(yBytes)
	if y.Cmp(fieldPrime) >= 0 {
		return point{}, false
	}
	x := recoverX(y)
	if (new(big.Int).And(x, big.NewInt(1)).Sign() != 0) != signBit {
		x.Sub(fieldPrime, x)
	}

	if !onCurve(x, y) {
		return point{}, false
	}
	return point{x: x, y: y}, true
}

func onCurve(x, y *big.Int) bool {
	x2 := mod(new(big.Int).Mul(x, x))
	y2 := mod(new(big.Int).Mul(y, y))
	lhs := mod(new(big.Int).Sub(y2, x2))
	rhs := mod(new(big.Int).Add(big.NewInt(1), mod(new(big.Int).Mul(curveD, mod(new(big.Int).Mul(x2, y2))))))
	return lhs.Cmp(rhs) == 0
}

func pointsEqual(p, q point) bool {
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// leBytes renders n as a little-endian byte slice of exactly size bytes.
func leBytes(n *big.Int, size int) []byte {
	be := n.Bytes()
	out := make([]byte, size)
	for i := 0; i < len(be) && i < size; i++ {
		out[i] = be[len(be)-1-i]
	}
	return out
}

// fromLE parses a little-endian byte slice into a big.Int.
func fromLE(data []byte) *big.Int {
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}
