// Package codec implements the reference network's custom Base32
// alphabet ("NBase32"). It has no relation to RFC 4648 Base32: the
// alphabet omits the characters 0, 2, l, and v to avoid visual confusion,
// and the bit-regrouping pads on the left rather than the right.
package codec

import (
	"fmt"

	"github.com/nanoblock/nanogo/pkg/types"
)

// Alphabet is the 32-character set used by account addresses and their
// checksums. Position in this string is the 5-bit value of that
// character; note the deliberate absence of 0, 2, l, v.
const Alphabet = "13456789abcdefghijkmnopqrstuwxyz"

var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeTable[Alphabet[i]] = int8(i)
	}
}

// Encode converts data to its NBase32 representation by regrouping the bit
// stream 8 bits at a time into 5-bit symbols, left-padding with zero bits
// so the total bit count is a multiple of 5. The output length is always
// ceil(len(data)*8/5) characters.
func Encode(data []byte) string {
	totalBits := len(data) * 8
	padBits := (5 - totalBits%5) % 5
	outLen := (totalBits + padBits) / 5

	out := make([]byte, outLen)

	// bitBuf holds the bits seen so far, left-aligned conceptually as a
	// continuous stream; bitCount tracks how many valid bits are queued.
	var bitBuf uint64
	var bitCount uint

	// Seed the buffer with the left-pad so the first symbol carries the
	// padding zero bits rather than bits from the payload.
	bitCount = uint(padBits)

	pos := 0
	for _, b := range data {
		bitBuf = (bitBuf << 8) | uint64(b)
		bitCount += 8
		for bitCount >= 5 {
			bitCount -= 5
			symbol := (bitBuf >> bitCount) & 0x1f
			out[pos] = Alphabet[symbol]
			pos++
			// Keep only the unconsumed low bitCount bits: stale high
			// bits left in place would resurface in the next symbol
			// once more data is shifted in above them.
			bitBuf &= (1 << bitCount) - 1
		}
	}
	return string(out)
}

// Decode reverses Encode, rejecting any character outside Alphabet and
// discarding the leading padding bits. The caller must know the expected
// output length, since NBase32 does not self-delimit a byte boundary.
func Decode(s string, outLen int) ([]byte, error) {
	padBits := len(s)*5 - outLen*8
	if padBits < 0 || padBits >= 5 {
		return nil, fmt.Errorf("codec: %d characters cannot hold %d bytes: %w", len(s), outLen, types.ErrBadEncoding)
	}

	var bitBuf uint64
	var bitCount uint

	out := make([]byte, 0, outLen)
	for i := 0; i < len(s); i++ {
		v := decodeTable[s[i]]
		if v < 0 {
			return nil, fmt.Errorf("codec: invalid nbase32 character %q: %w", s[i], types.ErrBadEncoding)
		}
		bitBuf = (bitBuf << 5) | uint64(v)
		bitCount += 5
		if padBits > 0 {
			// The first symbol carries the left-pad; drop those bits.
			bitCount -= uint(padBits)
			bitBuf &= (1 << bitCount) - 1
			padBits = 0
		}
		if bitCount >= 8 {
			bitCount -= 8
			out = append(out, byte(bitBuf>>bitCount))
			bitBuf &= (1 << bitCount) - 1
		}
	}
	if len(out) != outLen {
		return nil, fmt.Errorf("codec: decoded %d bytes, want %d: %w", len(out), outLen, types.ErrBadEncoding)
	}
	return out, nil
}
