package types

import "errors"

// Error taxonomy shared across the hash, codec, address, key, signature,
// block and pow packages. Each sentinel identifies a kind of failure rather
// than a concrete type, so callers can test with errors.Is against a wrapped
// error returned by any package in this module.
var (
	// ErrInvalidAccount is returned when an account address string fails
	// prefix, alphabet, length, or checksum validation.
	ErrInvalidAccount = errors.New("invalid account")

	// ErrInvalidPublicKey is returned when a public key is the wrong length
	// or not valid hex.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey is returned when a private key is the wrong
	// length or not valid hex.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidSeed is returned when a seed is the wrong length or not
	// valid hex.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrInvalidIndex is returned when an account index exceeds 2^32-1.
	ErrInvalidIndex = errors.New("invalid account index")

	// ErrInvalidBlock is returned when a required field is missing for a
	// block's variant, or field values are mutually inconsistent.
	ErrInvalidBlock = errors.New("invalid block")

	// ErrInvalidSignature is returned when a signature is the wrong length,
	// or sign-time verification of the derived public key against the
	// block's account fails.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidWork is returned when a work value is the wrong length, or
	// explicit verification shows it does not meet its threshold.
	ErrInvalidWork = errors.New("invalid work")

	// ErrInvalidDifficulty is returned when a threshold is zero or a
	// multiplier is non-positive.
	ErrInvalidDifficulty = errors.New("invalid difficulty")

	// ErrBadEncoding is returned by the NBase32 or hex codecs on decode
	// failure.
	ErrBadEncoding = errors.New("bad encoding")

	// ErrCancelled is returned when a proof-of-work search is interrupted
	// via its cancellation token before a solution is found.
	ErrCancelled = errors.New("cancelled")
)
