package nano

import (
	"math/big"

	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/block"
	"github.com/nanoblock/nanogo/pkg/types"
)

// Kind and Block are re-exported so callers never need to import the
// internal block package directly.
type (
	Kind  = block.Kind
	Block = block.Block
)

const (
	KindState   = block.KindState
	KindSend    = block.KindSend
	KindReceive = block.KindReceive
	KindOpen    = block.KindOpen
	KindChange  = block.KindChange
)

func pub32(b []byte) [32]byte {
	var out [32]byte
	copy(out[:], b)
	return out
}

func hash32(s string) ([32]byte, error) {
	b, err := decodeFixedHex("hash", s, 32, types.ErrInvalidBlock)
	var out [32]byte
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// NewStateBlock builds a universal (state) block from address strings and
// a hex link hash. isReceive selects which default difficulty threshold
// SolveWork falls back to when called without an explicit override; this
// package has no ledger access to infer it itself.
func (c *Client) NewStateBlock(accountAddr, previousHex, representativeAddr string, balance *big.Int, linkHex string, isReceive bool) (*Block, error) {
	account, err := c.address.AddressToPublicKey(accountAddr)
	if err != nil {
		return nil, err
	}
	representative, err := c.address.AddressToPublicKey(representativeAddr)
	if err != nil {
		return nil, err
	}
	previous, err := hash32(previousHex)
	if err != nil {
		return nil, err
	}
	link, err := hash32(linkHex)
	if err != nil {
		return nil, err
	}

	return c.blocks.New(block.KindState,
		block.WithAccount(pub32(account)),
		block.WithPrevious(previous),
		block.WithRepresentative(pub32(representative)),
		block.WithBalance(balance),
		block.WithLink(link),
		block.WithReceiveState(isReceive),
	), nil
}

// NewSendBlock builds a legacy send block. signingAccount is the account
// whose chain this block extends, supplied out of band since legacy send
// blocks do not hash an account field of their own.
func (c *Client) NewSendBlock(signingAccountAddr, previousHex, destinationAddr string, balance *big.Int) (*Block, error) {
	signingAccount, err := c.address.AddressToPublicKey(signingAccountAddr)
	if err != nil {
		return nil, err
	}
	destination, err := c.address.AddressToPublicKey(destinationAddr)
	if err != nil {
		return nil, err
	}
	previous, err := hash32(previousHex)
	if err != nil {
		return nil, err
	}

	return c.blocks.New(block.KindSend,
		block.WithSigningAccount(pub32(signingAccount)),
		block.WithPrevious(previous),
		block.WithDestination(pub32(destination)),
		block.WithBalance(balance),
	), nil
}

// NewReceiveBlock builds a legacy receive block. sourceHex is the hash of
// the send block this receive credits.
func (c *Client) NewReceiveBlock(signingAccountAddr, previousHex, sourceHex string) (*Block, error) {
	signingAccount, err := c.address.AddressToPublicKey(signingAccountAddr)
	if err != nil {
		return nil, err
	}
	previous, err := hash32(previousHex)
	if err != nil {
		return nil, err
	}
	source, err := hash32(sourceHex)
	if err != nil {
		return nil, err
	}

	return c.blocks.New(block.KindReceive,
		block.WithSigningAccount(pub32(signingAccount)),
		block.WithPrevious(previous),
		block.WithSource(source),
	), nil
}

// NewOpenBlock builds a legacy open block, the first block on a new
// account's chain.
func (c *Client) NewOpenBlock(sourceHex, representativeAddr, accountAddr string) (*Block, error) {
	source, err := hash32(sourceHex)
	if err != nil {
		return nil, err
	}
	representative, err := c.address.AddressToPublicKey(representativeAddr)
	if err != nil {
		return nil, err
	}
	account, err := c.address.AddressToPublicKey(accountAddr)
	if err != nil {
		return nil, err
	}

	return c.blocks.New(block.KindOpen,
		block.WithSource(source),
		block.WithRepresentative(pub32(representative)),
		block.WithAccount(pub32(account)),
	), nil
}

// NewChangeBlock builds a legacy change block, switching an account's
// representative without moving funds.
func (c *Client) NewChangeBlock(signingAccountAddr, previousHex, representativeAddr string) (*Block, error) {
	signingAccount, err := c.address.AddressToPublicKey(signingAccountAddr)
	if err != nil {
		return nil, err
	}
	previous, err := hash32(previousHex)
	if err != nil {
		return nil, err
	}
	representative, err := c.address.AddressToPublicKey(representativeAddr)
	if err != nil {
		return nil, err
	}

	return c.blocks.New(block.KindChange,
		block.WithSigningAccount(pub32(signingAccount)),
		block.WithPrevious(previous),
		block.WithRepresentative(pub32(representative)),
	), nil
}

// BlockFromJSON parses a block serialized in the reference node's wire
// format (see Block.ToJSON).
func (c *Client) BlockFromJSON(data []byte) (*Block, error) {
	return c.blocks.FromJSON(data)
}
