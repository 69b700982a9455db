package nano

import (
	"encoding/hex"
	"fmt"

	"github.com/nanoblock/nanogo/pkg/types"
)

// decodeFixedHex decodes s as exactly n bytes of hex, tagging decode
// failures and wrong lengths with errKind so callers get a stable error
// to test with errors.Is.
func decodeFixedHex(field, s string, n int, errKind error) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("nano: %s is not valid hex: %w", field, errKind)
	}
	if len(b) != n {
		return nil, fmt.Errorf("nano: %s must decode to %d bytes, got %d: %w", field, n, len(b), errKind)
	}
	return b, nil
}

// GenerateSeed returns a new cryptographically random seed as 64 lowercase
// hex characters.
func (c *Client) GenerateSeed() (string, error) {
	seed, err := c.key.GenerateSeed()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(seed), nil
}

// ValidateSeed reports whether seedHex decodes to a 32-byte seed.
func (c *Client) ValidateSeed(seedHex string) error {
	seed, err := decodeFixedHex("seed", seedHex, 32, types.ErrInvalidSeed)
	if err != nil {
		return err
	}
	return c.key.ValidateSeed(seed)
}

// GenerateAccountID derives the account address at index from seedHex. An
// empty prefix defaults to "nano_"; "xrb_" is also accepted.
func (c *Client) GenerateAccountID(seedHex string, index uint32, prefix string) (string, error) {
	_, pub, err := c.deriveKeyPair(seedHex, index)
	if err != nil {
		return "", err
	}
	return c.address.PublicKeyToAddress(pub, prefix)
}

// GenerateAccountPrivateKey derives the private key at index from seedHex,
// returned as 64 lowercase hex characters.
func (c *Client) GenerateAccountPrivateKey(seedHex string, index uint32) (string, error) {
	seed, err := decodeFixedHex("seed", seedHex, 32, types.ErrInvalidSeed)
	if err != nil {
		return "", err
	}
	priv, err := c.key.DerivePrivateKey(seed, index)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(priv), nil
}

// GenerateAccountKeyPair derives both the private and public key at index
// from seedHex, each as 64 lowercase hex characters.
func (c *Client) GenerateAccountKeyPair(seedHex string, index uint32) (privHex, pubHex string, err error) {
	priv, pub, err := c.deriveKeyPair(seedHex, index)
	if err != nil {
		return "", "", err
	}
	return hex.EncodeToString(priv), hex.EncodeToString(pub), nil
}

func (c *Client) deriveKeyPair(seedHex string, index uint32) (priv, pub []byte, err error) {
	seed, err := decodeFixedHex("seed", seedHex, 32, types.ErrInvalidSeed)
	if err != nil {
		return nil, nil, err
	}
	return c.key.DeriveKeyPair(seed, index)
}
