// Package block constructs, hashes, signs, and serializes account blocks:
// immutable-once-complete records of a single account balance change,
// built up field by field and made whole by a signature and a proof of
// work.
package block

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/nanoblock/nanogo/pkg/types"
)

// Kind distinguishes the block layouts this package understands: one
// universal layout (State) and four legacy layouts kept for compatibility
// with blocks written before the universal format existed.
type Kind int

const (
	KindState Kind = iota
	KindSend
	KindReceive
	KindOpen
	KindChange
)

// String names a Kind the way it appears on the wire (the JSON "type").
func (k Kind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindSend:
		return "send"
	case KindReceive:
		return "receive"
	case KindOpen:
		return "open"
	case KindChange:
		return "change"
	default:
		return "unknown"
	}
}

// Block is a single account block under construction or already complete.
// Every field below is optional until the block's Kind requires it; a
// zero-value Block is a bare draft with only its Kind set.
type Block struct {
	mu sync.RWMutex

	kind Kind

	account        *[32]byte
	previous       *[32]byte
	representative *[32]byte
	balance        *big.Int
	link           *[32]byte // state blocks only
	destination    *[32]byte // legacy send
	source         *[32]byte // legacy receive, legacy open

	signature []byte
	work      *uint64

	// signingAccount names the account a signature is checked against for
	// legacy send/receive/change blocks, which (unlike state and open
	// blocks) do not hash their account as part of the block itself; the
	// caller supplies it out of band, the same way a node would infer it
	// from the chain this block extends.
	signingAccount *[32]byte

	difficultyOverride *uint64
	isReceive          *bool

	// cachedHash, cachedSigValid, and cachedWorkValid memoize the three
	// derived values this package exposes. Every mutating method clears
	// all three under the same lock that protects the fields they are
	// derived from, so a reader never observes a cache computed from a
	// field value that no longer holds.
	cachedHash      *[32]byte
	cachedSigValid  *bool
	cachedWorkValid *bool

	deps dependencies
}

// Option sets one field during construction.
type Option func(*Block)

func WithAccount(pubkey [32]byte) Option {
	return func(b *Block) { b.account = &pubkey }
}

func WithPrevious(hash [32]byte) Option {
	return func(b *Block) { b.previous = &hash }
}

func WithRepresentative(pubkey [32]byte) Option {
	return func(b *Block) { b.representative = &pubkey }
}

func WithBalance(balance *big.Int) Option {
	return func(b *Block) { b.balance = balance }
}

func WithLink(link [32]byte) Option {
	return func(b *Block) { b.link = &link }
}

func WithDestination(pubkey [32]byte) Option {
	return func(b *Block) { b.destination = &pubkey }
}

func WithSource(hash [32]byte) Option {
	return func(b *Block) { b.source = &hash }
}

func WithSignature(sig []byte) Option {
	return func(b *Block) { b.signature = append([]byte{}, sig...) }
}

// WithSigningAccount records which account a legacy send, receive, or
// change block's signature belongs to. State and open blocks ignore it
// and use their own account field instead, since they hash it already.
func WithSigningAccount(pubkey [32]byte) Option {
	return func(b *Block) { b.signingAccount = &pubkey }
}

func WithWork(work uint64) Option {
	return func(b *Block) { b.work = &work }
}

// WithDifficulty overrides the default per-kind threshold this block's
// work is checked against.
func WithDifficulty(d uint64) Option {
	return func(b *Block) { b.difficultyOverride = &d }
}

// WithReceiveState marks a state block as crediting the account (a
// receive) rather than debiting it, for the purpose of choosing its
// default difficulty. This package has no ledger access, so it cannot
// tell a receive from a send by comparing balances itself; callers that
// know the previous balance must say so explicitly. Unset, a state block
// defaults to the non-receive (send/change) threshold.
func WithReceiveState(isReceive bool) Option {
	return func(b *Block) { b.isReceive = &isReceive }
}

func newBlock(kind Kind, deps dependencies, opts ...Option) *Block {
	b := &Block{kind: kind, deps: deps}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Kind reports which layout this block uses.
func (b *Block) Kind() Kind {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.kind
}

// Account, Previous, Representative, Link, Destination, Source, and
// Balance return the corresponding field and whether it has been set.

func (b *Block) Account() (pubkey [32]byte, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.account == nil {
		return [32]byte{}, false
	}
	return *b.account, true
}

func (b *Block) Previous() (hash [32]byte, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.previous == nil {
		return [32]byte{}, false
	}
	return *b.previous, true
}

func (b *Block) Representative() (pubkey [32]byte, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.representative == nil {
		return [32]byte{}, false
	}
	return *b.representative, true
}

func (b *Block) Balance() (*big.Int, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.balance == nil {
		return nil, false
	}
	return new(big.Int).Set(b.balance), true
}

func (b *Block) Link() (link [32]byte, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.link == nil {
		return [32]byte{}, false
	}
	return *b.link, true
}

func (b *Block) Destination() (pubkey [32]byte, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.destination == nil {
		return [32]byte{}, false
	}
	return *b.destination, true
}

func (b *Block) Source() (hash [32]byte, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.source == nil {
		return [32]byte{}, false
	}
	return *b.source, true
}

// Signature returns a copy of the stored signature, if any.
func (b *Block) Signature() ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.signature == nil {
		return nil, false
	}
	return append([]byte{}, b.signature...), true
}

// Work returns the stored work value, if any.
func (b *Block) Work() (uint64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.work == nil {
		return 0, false
	}
	return *b.work, true
}

// missingRequiredFields names the fields the block's Kind requires that
// are not set; Complete, hashing, and ToJSON all check it.
func (b *Block) missingRequiredFields() []string {
	var missing []string
	need := func(ok bool, name string) {
		if !ok {
			missing = append(missing, name)
		}
	}
	switch b.kind {
	case KindState:
		need(b.account != nil, "account")
		need(b.previous != nil, "previous")
		need(b.representative != nil, "representative")
		need(b.balance != nil, "balance")
		need(b.link != nil, "link")
	case KindSend:
		need(b.previous != nil, "previous")
		need(b.destination != nil, "destination")
		need(b.balance != nil, "balance")
	case KindReceive:
		need(b.previous != nil, "previous")
		need(b.source != nil, "source")
	case KindOpen:
		need(b.source != nil, "source")
		need(b.representative != nil, "representative")
		need(b.account != nil, "account")
	case KindChange:
		need(b.previous != nil, "previous")
		need(b.representative != nil, "representative")
	}
	return missing
}

// Complete reports whether every field the block's kind requires is set,
// the signature verifies against the account, and the work meets its
// difficulty. It never mutates the block.
func (b *Block) Complete() bool {
	b.mu.RLock()
	missing := len(b.missingRequiredFields())
	b.mu.RUnlock()
	if missing > 0 {
		return false
	}
	if _, ok := b.Signature(); !ok {
		return false
	}
	if _, ok := b.Work(); !ok {
		return false
	}
	validSig, err := b.HasValidSignature()
	if err != nil || !validSig {
		return false
	}
	validWork, err := b.HasValidWork()
	if err != nil || !validWork {
		return false
	}
	return true
}

// validateBalance rejects a negative balance or one that does not fit in
// 128 unsigned bits.
func validateBalance(balance *big.Int) error {
	if balance.Sign() < 0 {
		return fmt.Errorf("block: balance must not be negative: %w", types.ErrInvalidBlock)
	}
	maxBalance := new(big.Int).Lsh(big.NewInt(1), 128)
	if balance.Cmp(maxBalance) >= 0 {
		return fmt.Errorf("block: balance exceeds 128 bits: %w", types.ErrInvalidBlock)
	}
	return nil
}

// invalidateCaches clears every memoized derived value. Callers must hold
// b.mu for writing.
func (b *Block) invalidateCaches() {
	b.cachedHash = nil
	b.cachedSigValid = nil
	b.cachedWorkValid = nil
}
