package block

import (
	"fmt"
	"math/big"

	"github.com/nanoblock/nanogo/pkg/types"
)

// statePreamble is the fixed 32-byte prefix mixed into every state block
// hash: 31 zero bytes followed by the state-block type byte.
var statePreamble = func() [32]byte {
	var p [32]byte
	p[31] = 0x06
	return p
}()

var zeroHash [32]byte

// balanceBytes renders a non-negative balance under 2^128 as 16
// big-endian bytes.
func balanceBytes(balance *big.Int) [16]byte {
	var out [16]byte
	b := balance.Bytes()
	copy(out[16-len(b):], b)
	return out
}

// hashingFields returns the concatenation of this block's fields in the
// exact order its kind hashes them, or an error if a required field is
// missing.
func (b *Block) hashingFields() ([]byte, error) {
	missing := b.missingRequiredFields()
	if len(missing) > 0 {
		return nil, fmt.Errorf("block: missing fields %v: %w", missing, types.ErrInvalidBlock)
	}
	if b.balance != nil {
		if err := validateBalance(b.balance); err != nil {
			return nil, err
		}
	}

	buf := make([]byte, 0, 256)
	switch b.kind {
	case KindState:
		bal := balanceBytes(b.balance)
		buf = append(buf, statePreamble[:]...)
		buf = append(buf, b.account[:]...)
		buf = append(buf, b.previous[:]...)
		buf = append(buf, b.representative[:]...)
		buf = append(buf, bal[:]...)
		buf = append(buf, b.link[:]...)
	case KindSend:
		bal := balanceBytes(b.balance)
		buf = append(buf, b.previous[:]...)
		buf = append(buf, b.destination[:]...)
		buf = append(buf, bal[:]...)
	case KindReceive:
		buf = append(buf, b.previous[:]...)
		buf = append(buf, b.source[:]...)
	case KindOpen:
		buf = append(buf, b.source[:]...)
		buf = append(buf, b.representative[:]...)
		buf = append(buf, b.account[:]...)
	case KindChange:
		buf = append(buf, b.previous[:]...)
		buf = append(buf, b.representative[:]...)
	default:
		return nil, fmt.Errorf("block: unknown kind %d: %w", b.kind, types.ErrInvalidBlock)
	}
	return buf, nil
}

// BlockHash returns Blake2b_32 of this block's hashing fields, computing
// it once and reusing the cached value until a field changes.
func (b *Block) BlockHash() ([32]byte, error) {
	b.mu.RLock()
	if b.cachedHash != nil {
		h := *b.cachedHash
		b.mu.RUnlock()
		return h, nil
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cachedHash != nil {
		return *b.cachedHash, nil
	}

	fields, err := b.hashingFields()
	if err != nil {
		return [32]byte{}, err
	}
	sum, err := b.deps.hash.Sum(fields, 32)
	if err != nil {
		return [32]byte{}, fmt.Errorf("block: hash: %w", err)
	}
	var hash [32]byte
	copy(hash[:], sum)
	b.cachedHash = &hash
	return hash, nil
}

// Root returns the 32 bytes that this block's proof of work is computed
// against: previous if it is set and nonzero, else account for state and
// legacy-open blocks, else previous for the remaining legacy kinds.
func (b *Block) Root() ([32]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	switch b.kind {
	case KindState:
		if b.previous != nil && *b.previous != zeroHash {
			return *b.previous, nil
		}
		if b.account != nil {
			return *b.account, nil
		}
		return [32]byte{}, fmt.Errorf("block: state block has neither previous nor account set: %w", types.ErrInvalidBlock)
	case KindOpen:
		if b.account != nil {
			return *b.account, nil
		}
		return [32]byte{}, fmt.Errorf("block: open block missing account: %w", types.ErrInvalidBlock)
	case KindSend, KindReceive, KindChange:
		if b.previous != nil {
			return *b.previous, nil
		}
		return [32]byte{}, fmt.Errorf("block: %s block missing previous: %w", b.kind, types.ErrInvalidBlock)
	default:
		return [32]byte{}, fmt.Errorf("block: unknown kind %d: %w", b.kind, types.ErrInvalidBlock)
	}
}
