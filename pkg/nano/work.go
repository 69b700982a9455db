package nano

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/pow"
	"github.com/nanoblock/nanogo/pkg/types"
)

// workHexToBytes parses the wire format's 16-character lowercase hex work
// value (big-endian textual order, matching the reference node's JSON)
// into the little-endian 8 bytes the proof-of-work hash actually mixes in.
func workHexToBytes(s string) ([8]byte, error) {
	var out [8]byte
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 8 {
		return out, fmt.Errorf("nano: work must be 16 hex characters: %w", types.ErrInvalidWork)
	}
	var v uint64
	for _, b := range raw {
		v = v<<8 | uint64(b)
	}
	for i := 0; i < 8; i++ {
		out[i] = byte(v)
		v >>= 8
	}
	return out, nil
}

func workBytesToHex(w [8]byte) string {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(w[i])
	}
	return fmt.Sprintf("%016x", v)
}

func decodeRoot(rootHex string) ([32]byte, error) {
	raw, err := decodeFixedHex("root", rootHex, 32, types.ErrInvalidBlock)
	var out [32]byte
	if err != nil {
		return out, err
	}
	copy(out[:], raw)
	return out, nil
}

// DoWork searches for a work value over rootHex (a 64-character hex hash)
// that meets threshold, returning it as 16 lowercase hex characters.
// Cancelling ctx returns ErrCancelled.
func (c *Client) DoWork(ctx context.Context, rootHex string, threshold uint64) (string, error) {
	root, err := decodeRoot(rootHex)
	if err != nil {
		return "", err
	}
	work, err := c.pow.Solve(ctx, root, threshold)
	if err != nil {
		return "", err
	}
	return workBytesToHex(work), nil
}

// ValidateWork reports whether workHex satisfies threshold over rootHex.
func (c *Client) ValidateWork(rootHex, workHex string, threshold uint64) (bool, error) {
	root, err := decodeRoot(rootHex)
	if err != nil {
		return false, err
	}
	work, err := workHexToBytes(workHex)
	if err != nil {
		return false, err
	}
	return c.pow.Verify(root, work, threshold), nil
}

// GetWorkValue returns the Blake2b-derived value workHex produces against
// rootHex, without comparing it to any threshold.
func (c *Client) GetWorkValue(rootHex, workHex string) (uint64, error) {
	root, err := decodeRoot(rootHex)
	if err != nil {
		return 0, err
	}
	work, err := workHexToBytes(workHex)
	if err != nil {
		return 0, err
	}
	return c.pow.WorkValue(root, work), nil
}

// DeriveWorkMultiplier computes (2^64-base)/(2^64-difficulty).
func DeriveWorkMultiplier(difficulty, base uint64) (float64, error) {
	return pow.DeriveWorkMultiplier(difficulty, base)
}

// DeriveWorkDifficulty computes 2^64-(2^64-base)/multiplier, rounded and
// clamped to [1, 2^64-1].
func DeriveWorkDifficulty(multiplier float64, base uint64) (uint64, error) {
	return pow.DeriveWorkDifficulty(multiplier, base)
}

// ValidateDifficulty rejects a zero threshold.
func ValidateDifficulty(threshold uint64) error {
	return pow.ValidateDifficulty(threshold)
}
