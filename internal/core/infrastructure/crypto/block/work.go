package block

import (
	"context"
	"encoding/binary"
	"fmt"

	powcfg "github.com/nanoblock/nanogo/internal/config/pow"
	pow "github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/pow"
	"github.com/nanoblock/nanogo/pkg/types"
)

// DefaultDifficulty returns the threshold this block's work is checked
// against: the block's own override if WithDifficulty was used, else the
// reference network's published default for its kind.
//
//   - under EpochV1: ReceiveThresholdV1, for every kind.
//   - under EpochV2, send, change, legacy, and non-receive state blocks:
//     BaseThreshold.
//   - under EpochV2, state blocks marked WithReceiveState(true):
//     ReceiveThresholdV2.
func (b *Block) DefaultDifficulty() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.difficultyOverride != nil {
		return *b.difficultyOverride
	}
	if b.deps.epoch == powcfg.EpochV1 {
		return b.deps.powOpts.ReceiveThresholdV1
	}
	if b.kind == KindState && b.isReceive != nil && *b.isReceive {
		return b.deps.powOpts.DefaultReceiveThreshold(b.deps.epoch)
	}
	return b.deps.powOpts.DefaultThresholdFor()
}

// SolveWork searches for a work value meeting this block's difficulty
// (DefaultDifficulty, or an explicit override if given) and stores it.
// Cancelling ctx returns ErrCancelled and leaves the block unmodified.
func (b *Block) SolveWork(ctx context.Context, difficulty ...uint64) error {
	threshold := b.DefaultDifficulty()
	if len(difficulty) > 0 {
		threshold = difficulty[0]
	}
	if err := pow.ValidateDifficulty(threshold); err != nil {
		return err
	}

	root, err := b.Root()
	if err != nil {
		return err
	}

	work, err := b.deps.pow.Solve(ctx, root, threshold)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	workValue := binary.LittleEndian.Uint64(work[:])
	b.work = &workValue
	b.invalidateCaches()
	b.deps.logger.Debugf("block: solved work %016x for %s block at threshold %#x", workValue, b.kind, threshold)
	return nil
}

// HasValidWork reports whether the stored work value meets this block's
// difficulty, memoizing the result until the work value, a field the
// root depends on, or the difficulty override changes.
func (b *Block) HasValidWork() (bool, error) {
	b.mu.RLock()
	if b.cachedWorkValid != nil {
		v := *b.cachedWorkValid
		b.mu.RUnlock()
		return v, nil
	}
	b.mu.RUnlock()

	work, ok := b.Work()
	if !ok {
		return false, nil
	}
	root, err := b.Root()
	if err != nil {
		return false, err
	}
	threshold := b.DefaultDifficulty()

	valid := b.deps.pow.Verify(root, workToBytes(work), threshold)

	b.mu.Lock()
	b.cachedWorkValid = &valid
	b.mu.Unlock()
	return valid, nil
}

// WorkValue returns the Blake2b-derived value the stored work produces
// against this block's root, for diagnostics or comparing against an
// arbitrary threshold.
func (b *Block) WorkValue() (uint64, error) {
	work, ok := b.Work()
	if !ok {
		return 0, fmt.Errorf("block: no work stored: %w", types.ErrInvalidWork)
	}
	root, err := b.Root()
	if err != nil {
		return 0, err
	}
	return b.deps.pow.WorkValue(root, workToBytes(work)), nil
}

// workToBytes renders a work value into the little-endian 8-byte form the
// proof-of-work hash consumes, the external hex form's textual order
// reversed into bytes.
func workToBytes(v uint64) [8]byte {
	var w [8]byte
	binary.LittleEndian.PutUint64(w[:], v)
	return w
}
