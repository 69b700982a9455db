package block

import (
	"fmt"

	"github.com/nanoblock/nanogo/pkg/types"
)

// Sign computes this block's hash, signs it with privateKey, and stores
// the result. It fails with ErrInvalidSignature, without mutating the
// block, if the key's derived public key does not match the account
// field (state and legacy-open blocks) or if no account-bearing field is
// present to check against.
func (b *Block) Sign(privateKey []byte) error {
	accountPubkey, hasAccount := b.accountForSignature()
	if !hasAccount {
		return fmt.Errorf("block: no account field to verify the signing key against: %w", types.ErrInvalidSignature)
	}

	derivedPub, err := b.deps.key.DerivePublicKey(privateKey)
	if err != nil {
		return fmt.Errorf("block: sign: %w", err)
	}
	if len(derivedPub) != 32 || [32]byte(derivedPub[:32]) != accountPubkey {
		return fmt.Errorf("block: signing key does not match the block's account: %w", types.ErrInvalidSignature)
	}

	hash, err := b.BlockHash()
	if err != nil {
		return err
	}
	sig, err := b.deps.signature.Sign(hash[:], privateKey)
	if err != nil {
		return fmt.Errorf("block: sign: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.signature = sig
	b.invalidateCaches()
	b.deps.logger.Debugf("block: signed %s block for account %x", b.kind, accountPubkey)
	return nil
}

// accountForSignature returns the public key a signature over this block
// is checked against: the account field itself for state and open blocks,
// or the caller-supplied signingAccount for legacy kinds that do not hash
// an account.
func (b *Block) accountForSignature() (pubkey [32]byte, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.account != nil {
		return *b.account, true
	}
	if b.signingAccount != nil {
		return *b.signingAccount, true
	}
	return [32]byte{}, false
}

// HasValidSignature reports whether the stored signature verifies against
// this block's hash and account field, memoizing the result until a field
// or the signature changes.
func (b *Block) HasValidSignature() (bool, error) {
	b.mu.RLock()
	if b.cachedSigValid != nil {
		v := *b.cachedSigValid
		b.mu.RUnlock()
		return v, nil
	}
	b.mu.RUnlock()

	accountPubkey, hasAccount := b.accountForSignature()
	sig, hasSig := b.Signature()
	if !hasAccount || !hasSig {
		return false, nil
	}

	hash, err := b.BlockHash()
	if err != nil {
		return false, err
	}
	valid := b.deps.signature.Verify(hash[:], sig, accountPubkey[:])

	b.mu.Lock()
	b.cachedSigValid = &valid
	b.mu.Unlock()
	return valid, nil
}
