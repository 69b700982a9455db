package codec

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xFF},
		{0xFF, 0x00},
		bytes.Repeat([]byte{0xAB}, 32),
		bytes.Repeat([]byte{0x00}, 32),
		bytes.Repeat([]byte{0xFF}, 32),
	}
	for _, data := range cases {
		enc := Encode(data)
		dec, err := Decode(enc, len(data))
		if err != nil {
			t.Fatalf("Decode(%x) error: %v", data, err)
		}
		if !bytes.Equal(dec, data) {
			t.Fatalf("round trip mismatch: in=%x encoded=%q out=%x", data, enc, dec)
		}
	}
}

func TestEncodeLengthForPublicKey(t *testing.T) {
	pk := make([]byte, 32)
	enc := Encode(pk)
	if len(enc) != 52 {
		t.Fatalf("Encode(32 zero bytes) length = %d, want 52", len(enc))
	}
}

func TestEncodeLengthForChecksum(t *testing.T) {
	cs := make([]byte, 5)
	enc := Encode(cs)
	if len(enc) != 8 {
		t.Fatalf("Encode(5 zero bytes) length = %d, want 8", len(enc))
	}
}

func TestDecodeRejectsInvalidCharacter(t *testing.T) {
	// '0', '2', 'l', 'v' are deliberately absent from the alphabet.
	for _, bad := range []byte{'0', '2', 'l', 'v'} {
		s := string(bad) + Encode([]byte{0x01})[1:]
		if _, err := Decode(s, 1); err == nil {
			t.Fatalf("expected BadEncoding decoding %q", s)
		}
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	enc := Encode([]byte{0x01, 0x02})
	if _, err := Decode(enc, 99); err == nil {
		t.Fatal("expected error for mismatched output length")
	}
}
