package nano

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/nanoblock/nanogo/pkg/types"
)

const (
	testSeedHex = "d290d319ce3c2cbb675b023e5383a767415d7444975a2ea121848fc986954568"
	testAccount = "nano_1bum9d7gkjcca8n8acbbwiauarffa4i9qgoeey59t4t8cpffimupua6wr99u"
)

func TestGenerateAccountIDKnownAnswer(t *testing.T) {
	c := New()
	got, err := c.GenerateAccountID(testSeedHex, 0, "")
	if err != nil {
		t.Fatalf("GenerateAccountID: %v", err)
	}
	if got != testAccount {
		t.Fatalf("account = %s, want %s", got, testAccount)
	}
}

func TestGenerateAccountIDAcceptsLegacyPrefix(t *testing.T) {
	c := New()
	got, err := c.GenerateAccountID(testSeedHex, 0, "xrb_")
	if err != nil {
		t.Fatalf("GenerateAccountID: %v", err)
	}
	if got[:4] != "xrb_" {
		t.Fatalf("expected xrb_ prefix, got %s", got)
	}
	account, err := c.address.AddressToPublicKey(got)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want, err := c.address.AddressToPublicKey(testAccount)
	if err != nil {
		t.Fatalf("decode want: %v", err)
	}
	if string(account) != string(want) {
		t.Fatal("xrb_ and nano_ prefixes should decode to the same public key")
	}
}

func TestGenerateAccountIDIsDeterministic(t *testing.T) {
	c := New()
	a, err := c.GenerateAccountID(testSeedHex, 7, "")
	if err != nil {
		t.Fatalf("GenerateAccountID: %v", err)
	}
	b, err := c.GenerateAccountID(testSeedHex, 7, "")
	if err != nil {
		t.Fatalf("GenerateAccountID: %v", err)
	}
	if a != b {
		t.Fatalf("expected deterministic derivation, got %s and %s", a, b)
	}
}

func TestGenerateSeedRoundTripsThroughValidateSeed(t *testing.T) {
	c := New()
	seed, err := c.GenerateSeed()
	if err != nil {
		t.Fatalf("GenerateSeed: %v", err)
	}
	if len(seed) != 64 {
		t.Fatalf("seed hex length = %d, want 64", len(seed))
	}
	if err := c.ValidateSeed(seed); err != nil {
		t.Fatalf("ValidateSeed: %v", err)
	}
}

func TestValidateSeedRejectsWrongLength(t *testing.T) {
	c := New()
	if err := c.ValidateSeed("abcd"); !errors.Is(err, types.ErrInvalidSeed) {
		t.Fatalf("expected ErrInvalidSeed, got %v", err)
	}
}

func TestGenerateAccountKeyPairMatchesSeparateCalls(t *testing.T) {
	c := New()
	privCombined, pubCombined, err := c.GenerateAccountKeyPair(testSeedHex, 0)
	if err != nil {
		t.Fatalf("GenerateAccountKeyPair: %v", err)
	}
	priv, err := c.GenerateAccountPrivateKey(testSeedHex, 0)
	if err != nil {
		t.Fatalf("GenerateAccountPrivateKey: %v", err)
	}
	if priv != privCombined {
		t.Fatalf("private key mismatch: %s vs %s", priv, privCombined)
	}
	account, err := c.GenerateAccountID(testSeedHex, 0, "")
	if err != nil {
		t.Fatalf("GenerateAccountID: %v", err)
	}
	decoded, err := c.address.AddressToPublicKey(account)
	if err != nil {
		t.Fatalf("decode account: %v", err)
	}
	if pubCombined == "" || len(pubCombined) != 64 {
		t.Fatalf("unexpected public key hex %q", pubCombined)
	}
	if hex.EncodeToString(decoded) != pubCombined {
		t.Fatalf("public key mismatch: %x vs %s", decoded, pubCombined)
	}
}
