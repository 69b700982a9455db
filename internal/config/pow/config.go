// Package pow holds the tunable parameters of the proof-of-work engine:
// how many workers search in parallel, how large a batch each worker
// claims before checking for cancellation, and the default per-variant
// difficulty thresholds a block falls back to when it does not carry an
// explicit one.
package pow

import "runtime"

// Epoch distinguishes the two NANO protocol epochs that assign different
// default difficulty thresholds to state-block receives.
type Epoch int

const (
	// EpochV1 is the original epoch; all state blocks share one threshold.
	EpochV1 Epoch = iota
	// EpochV2 gives state-block receives a lower threshold than every
	// other block.
	EpochV2
)

// Options controls engine construction. Zero-value fields are replaced by
// DefaultOptions at construction time.
type Options struct {
	// Workers is the number of goroutines searching concurrently. Zero
	// means runtime.GOMAXPROCS(0).
	Workers int

	// BatchSize is how many nonces a worker advances between
	// cancellation checks.
	BatchSize uint64

	// BaseThreshold is the reference threshold against which
	// DeriveWorkMultiplier and DeriveWorkDifficulty are computed, and the
	// epoch-2 default for send/change/legacy/open blocks and non-receive
	// state blocks.
	BaseThreshold uint64

	// ReceiveThresholdV2 is the default threshold for epoch-2 state-block
	// receives, lower (easier) than BaseThreshold.
	ReceiveThresholdV2 uint64

	// ReceiveThresholdV1 is the single epoch-1 default threshold, shared
	// by state-block receives and every other block.
	ReceiveThresholdV1 uint64
}

// DefaultOptions returns the reference network's published defaults.
func DefaultOptions() *Options {
	return &Options{
		Workers:             runtime.GOMAXPROCS(0),
		BatchSize:           250_000,
		BaseThreshold:       0xFFFFFFF800000000,
		ReceiveThresholdV2:  0xFFFFFE0000000000,
		ReceiveThresholdV1:  0xFFFFFFC000000000,
	}
}

// Option mutates an Options during construction.
type Option func(*Options)

// WithWorkers overrides the worker count.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithBatchSize overrides the per-worker batch size.
func WithBatchSize(n uint64) Option {
	return func(o *Options) { o.BatchSize = n }
}

// Resolve applies opts on top of DefaultOptions, ignoring non-positive
// overrides so a zero-value Option is a no-op.
func Resolve(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.BatchSize == 0 {
		o.BatchSize = 250_000
	}
	return o
}

// DefaultThresholdFor returns the epoch-2 default difficulty threshold
// for a non-receive block (send, change, legacy, open, epoch blocks).
func (o *Options) DefaultThresholdFor() uint64 {
	return o.BaseThreshold
}

// DefaultReceiveThreshold returns the default threshold for a state-block
// receive under the given epoch.
func (o *Options) DefaultReceiveThreshold(epoch Epoch) uint64 {
	if epoch == EpochV2 {
		return o.ReceiveThresholdV2
	}
	return o.ReceiveThresholdV1
}
