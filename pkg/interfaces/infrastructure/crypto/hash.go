// Package crypto defines the interfaces the rest of this module codes
// against: hashing, address encoding, key derivation, signing, and
// proof-of-work. Concrete implementations live under
// internal/core/infrastructure/crypto/<concern>.
package crypto

// HashManager computes the variable-length Blake2b digests this module's
// address checksums, work values, and account-id round-trips all depend on.
type HashManager interface {
	// Sum returns the Blake2b digest of data with a digest length of size
	// bytes.
	// size must be one of the digest lengths this module uses (5, 8, 32,
	// or 64); any other value is an error.
	Sum(data []byte, size int) ([]byte, error)

	// Sum256 is a convenience wrapper for the 32-byte digest used to
	// derive account private keys from a seed.
	Sum256(data []byte) []byte
}
