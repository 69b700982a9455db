package crypto

import "context"

// POWEngine searches for an 8-byte work value that satisfies a threshold
// over a 32-byte root, and verifies that a work value does so.
//
// Algorithm: for nonce in [startNonce, startNonce+1, ...] wrapping modulo
// 2^64, compute Blake2b_8(little-endian(nonce) || root); interpret the
// digest as a little-endian uint64 and compare against threshold.
type POWEngine interface {
	// Solve searches for a work value over root that meets threshold,
	// returning an error wrapping types.ErrCancelled if ctx ends first.
	Solve(ctx context.Context, root [32]byte, threshold uint64) (work [8]byte, err error)

	// Verify reports whether work satisfies threshold over root.
	Verify(root [32]byte, work [8]byte, threshold uint64) bool

	// WorkValue returns the little-endian uint64 interpretation of
	// Blake2b_8(work || root) without comparing it to any threshold.
	WorkValue(root [32]byte, work [8]byte) uint64
}
