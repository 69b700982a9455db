package signature

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/nanoblock/nanogo/pkg/types"
)

// PublicKeyFromSeed derives the 32-byte public key for a 32-byte private
// key ("seed" in RFC 8032 terms) using the reference network's signature
// scheme: EdDSA with Blake2b-512 in place of SHA-512 throughout.
func PublicKeyFromSeed(privateKey []byte) ([]byte, error) {
	if len(privateKey) != 32 {
		return nil, fmt.Errorf("signature: private key must be 32 bytes, got %d: %w", len(privateKey), types.ErrInvalidPrivateKey)
	}
	a := clampScalar(blake2b512(privateKey))
	A := scalarMulBase(a)
	out := encodePoint(A)
	return out[:], nil
}

// Sign produces a 64-byte Ed25519-Blake2b signature of message under
// privateKey.
func Sign(privateKey, message []byte) ([]byte, error) {
	if len(privateKey) != 32 {
		return nil, fmt.Errorf("signature: private key must be 32 bytes, got %d: %w", len(privateKey), types.ErrInvalidPrivateKey)
	}
	h := blake2b512(privateKey)
	a := clampScalar(h)
	prefix := h[32:64]

	A := scalarMulBase(a)
	encodedA := encodePoint(A)

	r := reduceModL(blake2b512WithPrefix(prefix, message))
	R := scalarMulBase(r)
	encodedR := encodePoint(R)

	k := reduceModL(blake2b512Concat(encodedR[:], encodedA[:], message))

	s := new(big.Int).Mul(k, a)
	s.Add(s, r)
	s.Mod(s, groupOrder)

	sig := make([]byte, 64)
	copy(sig[:32], encodedR[:])
	copy(sig[32:], leBytes(s, 32))
	return sig, nil
}

// Verify reports whether signature is a valid Ed25519-Blake2b signature of
// message under publicKey.
func Verify(publicKey, message, signature []byte) bool {
	if len(publicKey) != 32 || len(signature) != 64 {
		return false
	}
	A, ok := decodePoint(publicKey)
	if !ok {
		return false
	}
	R, ok := decodePoint(signature[:32])
	if !ok {
		return false
	}
	s := fromLE(signature[32:64])
	if s.Cmp(groupOrder) >= 0 {
		return false
	}

	k := reduceModL(blake2b512Concat(signature[:32], publicKey, message))

	lhs := scalarMulBase(s)
	rhs := add(R, scalarMul(A, k))
	return pointsEqual(lhs, rhs)
}

func blake2b512(data []byte) []byte {
	sum := blake2b.Sum512(data)
	return sum[:]
}

func blake2b512WithPrefix(prefix, message []byte) []byte {
	h, _ := blake2b.New512(nil)
	h.Write(prefix)
	h.Write(message)
	return h.Sum(nil)
}

func blake2b512Concat(parts ...[]byte) []byte {
	h, _ := blake2b.New512(nil)
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// clampScalar applies the standard Ed25519 clamp to a 64-byte expanded
// seed hash's lower half: clear the bottom 3 bits, clear the top bit, set
// the second-highest bit.
func clampScalar(expanded []byte) *big.Int {
	buf := make([]byte, 32)
	copy(buf, expanded[:32])
	buf[0] &= 0xF8
	buf[31] &= 0x7F
	buf[31] |= 0x40
	return fromLE(buf)
}

// reduceModL reduces a 64-byte little-endian value modulo the group order.
func reduceModL(data []byte) *big.Int {
	n := fromLE(data)
	return new(big.Int).Mod(n, groupOrder)
}
