// Package pow searches for a work value over a 32-byte root that meets a
// difficulty threshold, and verifies work values found elsewhere. The
// search spreads across a fixed pool of goroutines, each advancing its own
// nonce range in batches so a cancellation request is honored promptly
// rather than only between whole searches.
package pow

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	powcfg "github.com/nanoblock/nanogo/internal/config/pow"
	hashiface "github.com/nanoblock/nanogo/pkg/interfaces/infrastructure/crypto"
	logiface "github.com/nanoblock/nanogo/pkg/interfaces/infrastructure/log"
	"github.com/nanoblock/nanogo/pkg/types"
)

const digestSize = 8

// errFound is returned by a winning worker to cancel the rest of the
// group through errgroup's shared context, without that cancellation
// being mistaken for a real failure.
var errFound = errors.New("pow: worker found a satisfying nonce")

// Service is the default POWEngine implementation.
type Service struct {
	opts   *powcfg.Options
	hash   hashiface.HashManager
	logger logiface.Logger

	statsMu sync.Mutex
	stats   Stats
}

// Stats tracks coarse counters across calls to Solve, mirroring the kind
// of lightweight, mutex-guarded bookkeeping used elsewhere in this
// codebase for concurrent batch work.
type Stats struct {
	Solved    uint64
	Cancelled uint64
}

// NewService returns a search engine configured by opts (see
// internal/config/pow for Workers, BatchSize, and threshold defaults).
// logger receives solve/cancel diagnostics; pass a no-op logger (see
// internal/core/infrastructure/log.NewNop) if none is wanted.
func NewService(logger logiface.Logger, hash hashiface.HashManager, opts ...powcfg.Option) *Service {
	return &Service{opts: powcfg.Resolve(opts...), hash: hash, logger: logger}
}

// Stats returns a snapshot of this engine's solve/cancel counters.
func (s *Service) Stats() Stats {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	return s.stats
}

// Solve searches for a work value over root that meets threshold. It
// fans out across the configured worker count, each starting at a
// distinct nonce; the first worker to find a satisfying nonce cancels
// the rest. Cancelling ctx stops the search at the next batch boundary
// in every worker and returns ErrCancelled without a partial result.
func (s *Service) Solve(ctx context.Context, root [32]byte, threshold uint64) ([8]byte, error) {
	if err := ValidateDifficulty(threshold); err != nil {
		return [8]byte{}, err
	}

	workers := s.opts.Workers
	if workers < 1 {
		workers = 1
	}
	batchSize := s.opts.BatchSize
	if batchSize == 0 {
		batchSize = 1
	}

	var (
		result [8]byte
		mu     sync.Mutex
	)

	g, gctx := errgroup.WithContext(ctx)
	stride := spreadStride(workers)
	for i := 0; i < workers; i++ {
		start := uint64(i) * stride
		g.Go(func() error {
			nonce, found, err := search(gctx, root, threshold, start, batchSize)
			if err != nil {
				return err
			}
			if !found {
				return nil
			}
			mu.Lock()
			binary.LittleEndian.PutUint64(result[:], nonce)
			mu.Unlock()
			return errFound
		})
	}

	err := g.Wait()
	switch {
	case errors.Is(err, errFound):
		s.statsMu.Lock()
		s.stats.Solved++
		s.statsMu.Unlock()
		s.logger.Debugf("pow: solved threshold %#x with %d workers", threshold, workers)
		return result, nil
	case ctx.Err() != nil:
		s.statsMu.Lock()
		s.stats.Cancelled++
		s.statsMu.Unlock()
		s.logger.Debugf("pow: search cancelled before meeting threshold %#x", threshold)
		return [8]byte{}, fmt.Errorf("pow: solve cancelled: %w", types.ErrCancelled)
	case err != nil:
		return [8]byte{}, err
	default:
		// Every worker's context ended without anyone finding a nonce or
		// hitting errFound; this only happens if ctx itself ended first.
		return [8]byte{}, fmt.Errorf("pow: solve cancelled: %w", types.ErrCancelled)
	}
}

// Verify reports whether work satisfies threshold over root.
func (s *Service) Verify(root [32]byte, work [8]byte, threshold uint64) bool {
	return s.WorkValue(root, work) >= threshold
}

// WorkValue returns little_endian_u64(blake2b(work || root, out_len=8)).
func (s *Service) WorkValue(root [32]byte, work [8]byte) uint64 {
	data := make([]byte, 0, len(work)+len(root))
	data = append(data, work[:]...)
	data = append(data, root[:]...)
	digest, err := s.hash.Sum(data, digestSize)
	if err != nil {
		// Size 8 is always supported by the hash manager this engine is
		// constructed with; reaching here would indicate a misconfigured
		// dependency rather than bad input.
		return 0
	}
	return binary.LittleEndian.Uint64(digest)
}

// search advances nonce from start one value at a time, checking for
// cancellation once per batchSize iterations. It returns found=false only
// when ctx ends first.
func search(ctx context.Context, root [32]byte, threshold, start, batchSize uint64) (nonce uint64, found bool, err error) {
	h, err := blake2b.New(digestSize, nil)
	if err != nil {
		return 0, false, fmt.Errorf("pow: init hasher: %w", err)
	}

	var nonceBuf [8]byte
	n := start
	for {
		for i := uint64(0); i < batchSize; i++ {
			n++
			binary.LittleEndian.PutUint64(nonceBuf[:], n)
			h.Reset()
			h.Write(nonceBuf[:])
			h.Write(root[:])
			digest := h.Sum(nil)
			if binary.LittleEndian.Uint64(digest) >= threshold {
				return n, true, nil
			}
		}
		select {
		case <-ctx.Done():
			return 0, false, nil
		default:
		}
	}
}

// spreadStride divides the nonce space evenly across workers so each
// starts searching a distinct region.
func spreadStride(workers int) uint64 {
	if workers <= 1 {
		return 0
	}
	return (^uint64(0)) / uint64(workers)
}
