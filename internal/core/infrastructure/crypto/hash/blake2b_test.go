package hash

import (
	"bytes"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/blake2b"
)

// Known-answer vector from RFC 7693 Appendix A: BLAKE2b-512("abc").
const abcBlake2b512Hex = "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d1" +
	"7d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923"

func TestSumMatchesRFC7693Vector(t *testing.T) {
	s := NewService()
	got, err := s.Sum([]byte("abc"), 64)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	want, err := hex.DecodeString(abcBlake2b512Hex)
	if err != nil {
		t.Fatalf("decode vector: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Sum(abc, 64) = %x, want %x", got, want)
	}
}

func TestSumRejectsUnsupportedSize(t *testing.T) {
	s := NewService()
	if _, err := s.Sum([]byte("x"), 20); err == nil {
		t.Fatal("expected error for unsupported digest size")
	}
}

func TestSum256MatchesLibrary(t *testing.T) {
	s := NewService()
	data := []byte("the quick brown fox")
	got := s.Sum256(data)
	want := blake2b.Sum256(data)
	if !bytes.Equal(got, want[:]) {
		t.Fatalf("Sum256 = %x, want %x", got, want)
	}
}

func TestSumConcatMatchesManualConcat(t *testing.T) {
	s := NewService()
	a := []byte("hello ")
	b := []byte("world")

	got, err := s.SumConcat(32, a, b)
	if err != nil {
		t.Fatalf("SumConcat: %v", err)
	}

	want, err := s.Sum(append(append([]byte{}, a...), b...), 32)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("SumConcat = %x, want %x", got, want)
	}
}

func TestSumDeterministic(t *testing.T) {
	s := NewService()
	data := []byte("deterministic")
	first, _ := s.Sum(data, 8)
	second, _ := s.Sum(data, 8)
	if !bytes.Equal(first, second) {
		t.Fatalf("Sum not deterministic: %x != %x", first, second)
	}
	if len(first) != 8 {
		t.Fatalf("Sum(size=8) returned %d bytes", len(first))
	}
}
