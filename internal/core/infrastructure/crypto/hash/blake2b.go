// Package hash computes the Blake2b digests every other component in this
// module builds on: address checksums, private-key derivation, block
// hashes, and proof-of-work evaluations. It wraps golang.org/x/crypto/blake2b
// behind the handful of output lengths the protocol actually uses.
package hash

import (
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/nanoblock/nanogo/pkg/types"
)

// Service computes variable-length Blake2b digests (RFC 7693). The zero
// value is ready to use; Service holds no state of its own.
type Service struct{}

// NewService returns a ready-to-use Blake2b hash service.
func NewService() *Service {
	return &Service{}
}

// validSizes enumerates the digest lengths this module ever requests: 5
// (address checksum), 8 (proof-of-work result), 32 (block hash, private
// key derivation), 64 (reserved for full-width digests).
var validSizes = map[int]bool{5: true, 8: true, 32: true, 64: true}

// Sum returns the Blake2b digest of data with a digest length of size
// bytes (a parameter of the hash, not a truncation of a longer digest).
func (s *Service) Sum(data []byte, size int) ([]byte, error) {
	if !validSizes[size] {
		return nil, fmt.Errorf("hash: unsupported digest size %d: %w", size, types.ErrBadEncoding)
	}
	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, fmt.Errorf("hash: init blake2b(%d): %w", size, err)
	}
	if _, err := h.Write(data); err != nil {
		return nil, fmt.Errorf("hash: write: %w", err)
	}
	return h.Sum(nil), nil
}

// Sum256 returns the 32-byte Blake2b digest of data. It is the hot path
// used by key derivation and block hashing, so it skips the generic
// variable-length machinery.
func (s *Service) Sum256(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// SumConcat hashes the concatenation of parts without allocating an
// intermediate buffer, matching the streaming update pattern the
// proof-of-work inner loop and block hashing both rely on.
func (s *Service) SumConcat(size int, parts ...[]byte) ([]byte, error) {
	if !validSizes[size] {
		return nil, fmt.Errorf("hash: unsupported digest size %d: %w", size, types.ErrBadEncoding)
	}
	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, fmt.Errorf("hash: init blake2b(%d): %w", size, err)
	}
	for _, p := range parts {
		if _, err := h.Write(p); err != nil {
			return nil, fmt.Errorf("hash: write: %w", err)
		}
	}
	return h.Sum(nil), nil
}
