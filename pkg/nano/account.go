package nano

import "encoding/hex"

// ValidateAccountID reports whether address is a well-formed account
// string: a recognized prefix, valid NBase32 payload, and a checksum that
// matches the encoded public key.
func (c *Client) ValidateAccountID(address string) bool {
	return c.address.ValidateAddress(address)
}

// ValidatePublicKey reports whether keyHex decodes to a 32-byte public key.
func (c *Client) ValidatePublicKey(keyHex string) bool {
	b, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}
	return c.key.ValidatePublicKey(b) == nil
}

// ValidatePrivateKey reports whether keyHex decodes to a 32-byte private key.
func (c *Client) ValidatePrivateKey(keyHex string) bool {
	b, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}
	return c.key.ValidatePrivateKey(b) == nil
}
