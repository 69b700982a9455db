package signature

import (
	"bytes"
	"encoding/hex"
	"testing"
)

var (
	knownPriv, _ = hex.DecodeString("1daa53d0f4077b761f39f623d039870575256b59e73e9d77cd0cf31af7e91cb9")
	knownPub, _  = hex.DecodeString("27733acae9454a41a8642929e411b461ad40a07bbaac67867d0b46559ad84f76")
	knownSig, _  = hex.DecodeString("1ab9fe4a025fb2569883773c5b89142cbd9a9c95f2f63e5609810120964f85f" +
		"151295bdb5d295fe6497d89f33905bc5e50429bf0276a83e51cb087533dc9b404")
)

func TestPublicKeyFromSeedKnownAnswer(t *testing.T) {
	pub, err := PublicKeyFromSeed(knownPriv)
	if err != nil {
		t.Fatalf("PublicKeyFromSeed: %v", err)
	}
	if !bytes.Equal(pub, knownPub) {
		t.Fatalf("public key = %x, want %x", pub, knownPub)
	}
}

func TestSignKnownAnswer(t *testing.T) {
	msg := make([]byte, 32)
	sig, err := Sign(knownPriv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !bytes.Equal(sig, knownSig) {
		t.Fatalf("signature = %x, want %x", sig, knownSig)
	}
}

func TestVerifyKnownAnswer(t *testing.T) {
	msg := make([]byte, 32)
	if !Verify(knownPub, msg, knownSig) {
		t.Fatal("expected known signature to verify")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	msg := make([]byte, 32)
	msg[0] = 0x01
	if Verify(knownPub, msg, knownSig) {
		t.Fatal("signature verified against a different message")
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	msg := make([]byte, 32)
	tampered := append([]byte{}, knownSig...)
	tampered[63] ^= 0x01
	if Verify(knownPub, msg, tampered) {
		t.Fatal("tampered signature verified")
	}
}

func TestServiceSignVerifyRoundTrip(t *testing.T) {
	s := NewService()
	data := []byte("a block hash's worth of bytes..")
	sig, err := s.Sign(data, knownPriv)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !s.Verify(data, sig, knownPub) {
		t.Fatal("round-trip sign/verify failed")
	}
}

func TestServiceBatch(t *testing.T) {
	s := NewService()
	dataList := [][]byte{[]byte("one"), []byte("two"), []byte("three")}

	sigs, err := s.SignBatch(dataList, knownPriv)
	if err != nil {
		t.Fatalf("SignBatch: %v", err)
	}
	pubKeys := [][]byte{knownPub, knownPub, knownPub}
	results, err := s.VerifyBatch(dataList, sigs, pubKeys)
	if err != nil {
		t.Fatalf("VerifyBatch: %v", err)
	}
	for i, ok := range results {
		if !ok {
			t.Fatalf("batch item %d failed to verify", i)
		}
	}
}

func TestValidateSignatureLength(t *testing.T) {
	s := NewService()
	if err := s.ValidateSignature(make([]byte, 64)); err != nil {
		t.Fatalf("expected 64-byte signature to be valid, got %v", err)
	}
	if err := s.ValidateSignature(make([]byte, 63)); err == nil {
		t.Fatal("expected error for wrong-length signature")
	}
}
