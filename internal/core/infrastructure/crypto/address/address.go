// Package address encodes and decodes account addresses: an NBase32
// encoding of a 32-byte Ed25519 public key plus a Blake2b-derived
// checksum, under a "nano_" or "xrb_" prefix.
package address

import (
	"fmt"
	"strings"

	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/codec"
	hashiface "github.com/nanoblock/nanogo/pkg/interfaces/infrastructure/crypto"
	"github.com/nanoblock/nanogo/pkg/types"
)

const (
	// DefaultPrefix is emitted by PublicKeyToAddress unless the caller asks for the
	// legacy prefix.
	DefaultPrefix = "nano_"
	// LegacyPrefix is accepted on decode and may be requested on encode.
	LegacyPrefix = "xrb_"

	publicKeyLength  = 32
	checksumLength   = 5
	payloadCharCount = 52 // ceil(32*8/5)
	checksumCharCount = 8 // ceil(5*8/5)
)

var acceptedPrefixes = []string{DefaultPrefix, LegacyPrefix}

// Service converts between public keys and account address strings.
type Service struct {
	hash hashiface.HashManager
}

// NewService returns an address codec backed by the given hash manager.
func NewService(hash hashiface.HashManager) *Service {
	return &Service{hash: hash}
}

// PublicKeyToAddress encodes publicKey as an address string under the
// given prefix ("nano_" or "xrb_"; DefaultPrefix is used if prefix is
// empty).
func (s *Service) PublicKeyToAddress(publicKey []byte, prefix string) (string, error) {
	if len(publicKey) != publicKeyLength {
		return "", fmt.Errorf("address: public key must be %d bytes, got %d: %w", publicKeyLength, len(publicKey), types.ErrInvalidPublicKey)
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if !isAcceptedPrefix(prefix) {
		return "", fmt.Errorf("address: unsupported prefix %q: %w", prefix, types.ErrInvalidAccount)
	}

	checksum, err := s.checksum(publicKey)
	if err != nil {
		return "", err
	}

	return prefix + codec.Encode(publicKey) + codec.Encode(checksum), nil
}

// AddressToPublicKey decodes address back to its 32-byte public key,
// verifying the prefix, alphabet, length, and checksum.
func (s *Service) AddressToPublicKey(address string) ([]byte, error) {
	prefix, body, ok := stripPrefix(address)
	if !ok {
		return nil, fmt.Errorf("address: missing or unsupported prefix: %w", types.ErrInvalidAccount)
	}
	_ = prefix

	if len(body) != payloadCharCount+checksumCharCount {
		return nil, fmt.Errorf("address: wrong length: %w", types.ErrInvalidAccount)
	}

	payload := body[:payloadCharCount]
	checksumChars := body[payloadCharCount:]

	publicKey, err := codec.Decode(payload, publicKeyLength)
	if err != nil {
		return nil, fmt.Errorf("address: decode public key: %w", types.ErrInvalidAccount)
	}
	decodedChecksum, err := codec.Decode(checksumChars, checksumLength)
	if err != nil {
		return nil, fmt.Errorf("address: decode checksum: %w", types.ErrInvalidAccount)
	}

	wantChecksum, err := s.checksum(publicKey)
	if err != nil {
		return nil, err
	}
	if string(decodedChecksum) != string(wantChecksum) {
		return nil, fmt.Errorf("address: checksum mismatch: %w", types.ErrInvalidAccount)
	}

	return publicKey, nil
}

// ValidateAddress reports whether address is well formed.
func (s *Service) ValidateAddress(address string) bool {
	_, err := s.AddressToPublicKey(address)
	return err == nil
}

// CompareAddresses reports whether two address strings decode to the same
// public key.
func (s *Service) CompareAddresses(addr1, addr2 string) (bool, error) {
	pk1, err := s.AddressToPublicKey(addr1)
	if err != nil {
		return false, err
	}
	pk2, err := s.AddressToPublicKey(addr2)
	if err != nil {
		return false, err
	}
	return string(pk1) == string(pk2), nil
}

// checksum computes reverse(blake2b(publicKey, out_len=5)).
func (s *Service) checksum(publicKey []byte) ([]byte, error) {
	sum, err := s.hash.Sum(publicKey, checksumLength)
	if err != nil {
		return nil, fmt.Errorf("address: checksum: %w", err)
	}
	reversed := make([]byte, len(sum))
	for i, b := range sum {
		reversed[len(sum)-1-i] = b
	}
	return reversed, nil
}

func isAcceptedPrefix(prefix string) bool {
	for _, p := range acceptedPrefixes {
		if p == prefix {
			return true
		}
	}
	return false
}

func stripPrefix(address string) (prefix, body string, ok bool) {
	for _, p := range acceptedPrefixes {
		if strings.HasPrefix(address, p) {
			return p, address[len(p):], true
		}
	}
	return "", "", false
}
