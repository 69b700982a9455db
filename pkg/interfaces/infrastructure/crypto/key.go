package crypto

// KeyManager derives Ed25519 account key pairs from a 32-byte seed and an
// account index, and validates standalone keys and seeds.
//
// Derivation: private key = Blake2b_32(seed || big-endian uint32(index));
// public key = Ed25519 public key derived from that private key, with
// Blake2b-512 in place of SHA-512 (see
// internal/core/infrastructure/crypto/signature).
type KeyManager interface {
	// GenerateSeed returns a new cryptographically random 32-byte seed.
	GenerateSeed() ([]byte, error)

	// ValidateSeed reports whether seed is exactly 32 bytes.
	ValidateSeed(seed []byte) error

	// DerivePrivateKey deterministically derives the private key for
	// the given seed and account index.
	DerivePrivateKey(seed []byte, index uint32) ([]byte, error)

	// DerivePublicKey derives the Ed25519 public key for a private key.
	DerivePublicKey(privateKey []byte) ([]byte, error)

	// DeriveKeyPair derives both the private and public key for a seed
	// and account index in one call.
	DeriveKeyPair(seed []byte, index uint32) (privateKey, publicKey []byte, err error)

	// ValidatePrivateKey reports whether privateKey is exactly 32 bytes.
	ValidatePrivateKey(privateKey []byte) error

	// ValidatePublicKey reports whether publicKey is exactly 32 bytes.
	ValidatePublicKey(publicKey []byte) error
}
