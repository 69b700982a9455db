package crypto

// AddressManager encodes and decodes account addresses: the "nano_"/"xrb_"
// prefixed, NBase32-encoded public key plus checksum that identifies an
// account.
//
// Derivation: public key (32 bytes) -> NBase32(public key) ||
// NBase32(reverse(Blake2b_5(public key))) -> prefixed address string.
type AddressManager interface {
	// PublicKeyToAddress encodes a 32-byte Ed25519 public key as an
	// address string using the given prefix ("nano_" or "xrb_").
	PublicKeyToAddress(publicKey []byte, prefix string) (string, error)

	// AddressToPublicKey decodes an address string back to its 32-byte
	// public key, verifying the prefix, alphabet, length, and checksum.
	AddressToPublicKey(address string) ([]byte, error)

	// ValidateAddress reports whether address is well formed: a
	// recognized prefix, valid NBase32 payload, and a checksum that
	// matches the encoded public key.
	ValidateAddress(address string) bool

	// CompareAddresses reports whether two address strings decode to the
	// same public key.
	CompareAddresses(addr1, addr2 string) (bool, error)
}
