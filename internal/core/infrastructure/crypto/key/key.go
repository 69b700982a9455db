// Package key derives account key pairs from a 32-byte seed and a 32-bit
// account index: private_key = Blake2b_32(seed || big_endian_u32(index)),
// public_key = Ed25519 public key derived from private_key (see
// internal/core/infrastructure/crypto/signature for that derivation).
package key

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/signature"
	hashiface "github.com/nanoblock/nanogo/pkg/interfaces/infrastructure/crypto"
	"github.com/nanoblock/nanogo/pkg/types"
)

// SeedLength, PrivateKeyLength, and PublicKeyLength are the fixed byte
// lengths this module works with throughout.
const (
	SeedLength       = 32
	PrivateKeyLength = 32
	PublicKeyLength  = 32
)

// Service derives and validates account keys.
type Service struct {
	hash hashiface.HashManager
}

// NewService returns a key-derivation service backed by the given hash
// manager.
func NewService(hash hashiface.HashManager) *Service {
	return &Service{hash: hash}
}

// GenerateSeed returns a new cryptographically random 32-byte seed.
func (s *Service) GenerateSeed() ([]byte, error) {
	seed := make([]byte, SeedLength)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("key: generate seed: %w", err)
	}
	return seed, nil
}

// ValidateSeed reports whether seed is exactly 32 bytes.
func (s *Service) ValidateSeed(seed []byte) error {
	if len(seed) != SeedLength {
		return fmt.Errorf("key: seed must be %d bytes, got %d: %w", SeedLength, len(seed), types.ErrInvalidSeed)
	}
	return nil
}

// DerivePrivateKey computes Blake2b_32(seed || big_endian_u32(index)).
func (s *Service) DerivePrivateKey(seed []byte, index uint32) ([]byte, error) {
	if err := s.ValidateSeed(seed); err != nil {
		return nil, err
	}
	var indexBytes [4]byte
	binary.BigEndian.PutUint32(indexBytes[:], index)
	return s.hash.Sum256(append(append([]byte{}, seed...), indexBytes[:]...)), nil
}

// DerivePublicKey derives the Ed25519-Blake2b public key for a private key.
func (s *Service) DerivePublicKey(privateKey []byte) ([]byte, error) {
	if err := s.ValidatePrivateKey(privateKey); err != nil {
		return nil, err
	}
	pub, err := signature.PublicKeyFromSeed(privateKey)
	if err != nil {
		return nil, fmt.Errorf("key: derive public key: %w", err)
	}
	return pub, nil
}

// DeriveKeyPair derives both the private and public key for a seed and
// account index.
func (s *Service) DeriveKeyPair(seed []byte, index uint32) ([]byte, []byte, error) {
	priv, err := s.DerivePrivateKey(seed, index)
	if err != nil {
		return nil, nil, err
	}
	pub, err := s.DerivePublicKey(priv)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}

// ValidatePrivateKey reports whether privateKey is exactly 32 bytes.
func (s *Service) ValidatePrivateKey(privateKey []byte) error {
	if len(privateKey) != PrivateKeyLength {
		return fmt.Errorf("key: private key must be %d bytes, got %d: %w", PrivateKeyLength, len(privateKey), types.ErrInvalidPrivateKey)
	}
	return nil
}

// ValidatePublicKey reports whether publicKey is exactly 32 bytes.
func (s *Service) ValidatePublicKey(publicKey []byte) error {
	if len(publicKey) != PublicKeyLength {
		return fmt.Errorf("key: public key must be %d bytes, got %d: %w", PublicKeyLength, len(publicKey), types.ErrInvalidPublicKey)
	}
	return nil
}
