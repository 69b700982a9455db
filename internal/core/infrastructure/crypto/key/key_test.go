package key

import (
	"encoding/hex"
	"testing"

	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/hash"
)

func TestDerivePrivateKeyKnownAnswer(t *testing.T) {
	seed, err := hex.DecodeString("d290d319ce3c2cbb675b023e5383a767415d7444975a2ea121848fc986954568")
	if err != nil {
		t.Fatalf("decode seed: %v", err)
	}

	s := NewService(hash.NewService())
	priv, err := s.DerivePrivateKey(seed, 0)
	if err != nil {
		t.Fatalf("DerivePrivateKey: %v", err)
	}
	want, _ := hex.DecodeString("1daa53d0f4077b761f39f623d039870575256b59e73e9d77cd0cf31af7e91cb9")
	if hex.EncodeToString(priv) != hex.EncodeToString(want) {
		t.Fatalf("private key = %x, want %x", priv, want)
	}
}

func TestDerivePublicKeyKnownAnswer(t *testing.T) {
	seed, _ := hex.DecodeString("d290d319ce3c2cbb675b023e5383a767415d7444975a2ea121848fc986954568")
	s := NewService(hash.NewService())

	priv, pub, err := s.DeriveKeyPair(seed, 0)
	if err != nil {
		t.Fatalf("DeriveKeyPair: %v", err)
	}
	wantPriv, _ := hex.DecodeString("1daa53d0f4077b761f39f623d039870575256b59e73e9d77cd0cf31af7e91cb9")
	wantPub, _ := hex.DecodeString("27733acae9454a41a8642929e411b461ad40a07bbaac67867d0b46559ad84f76")
	if hex.EncodeToString(priv) != hex.EncodeToString(wantPriv) {
		t.Fatalf("private key = %x, want %x", priv, wantPriv)
	}
	if hex.EncodeToString(pub) != hex.EncodeToString(wantPub) {
		t.Fatalf("public key = %x, want %x", pub, wantPub)
	}
}

func TestDeriveKeyPairDeterministic(t *testing.T) {
	seed := make([]byte, SeedLength)
	for i := range seed {
		seed[i] = byte(i)
	}
	s := NewService(hash.NewService())

	priv1, pub1, err := s.DeriveKeyPair(seed, 7)
	if err != nil {
		t.Fatalf("DeriveKeyPair: %v", err)
	}
	priv2, pub2, err := s.DeriveKeyPair(seed, 7)
	if err != nil {
		t.Fatalf("DeriveKeyPair: %v", err)
	}
	if hex.EncodeToString(priv1) != hex.EncodeToString(priv2) {
		t.Fatal("private key derivation is not deterministic")
	}
	if hex.EncodeToString(pub1) != hex.EncodeToString(pub2) {
		t.Fatal("public key derivation is not deterministic")
	}
}

func TestDeriveKeyPairVariesByIndex(t *testing.T) {
	seed := make([]byte, SeedLength)
	s := NewService(hash.NewService())

	priv0, _, err := s.DeriveKeyPair(seed, 0)
	if err != nil {
		t.Fatalf("DeriveKeyPair(0): %v", err)
	}
	priv1, _, err := s.DeriveKeyPair(seed, 1)
	if err != nil {
		t.Fatalf("DeriveKeyPair(1): %v", err)
	}
	if hex.EncodeToString(priv0) == hex.EncodeToString(priv1) {
		t.Fatal("different indices produced the same private key")
	}
}

func TestValidateSeedRejectsWrongLength(t *testing.T) {
	s := NewService(hash.NewService())
	if err := s.ValidateSeed(make([]byte, 31)); err == nil {
		t.Fatal("expected error for short seed")
	}
	if err := s.ValidateSeed(make([]byte, 32)); err != nil {
		t.Fatalf("expected 32-byte seed to be valid, got %v", err)
	}
}

func TestGenerateSeedProducesDistinctValues(t *testing.T) {
	s := NewService(hash.NewService())
	a, err := s.GenerateSeed()
	if err != nil {
		t.Fatalf("GenerateSeed: %v", err)
	}
	b, err := s.GenerateSeed()
	if err != nil {
		t.Fatalf("GenerateSeed: %v", err)
	}
	if hex.EncodeToString(a) == hex.EncodeToString(b) {
		t.Fatal("two random seeds collided")
	}
}
