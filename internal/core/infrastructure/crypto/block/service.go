package block

import (
	powcfg "github.com/nanoblock/nanogo/internal/config/pow"
	crypto "github.com/nanoblock/nanogo/pkg/interfaces/infrastructure/crypto"
	logiface "github.com/nanoblock/nanogo/pkg/interfaces/infrastructure/log"
)

// dependencies bundles the infrastructure a Block needs to compute its
// own hash, signature, and work, so that the block's methods (BlockHash,
// Sign, SolveWork, ...) can be called directly without threading a
// separate service through every call site.
type dependencies struct {
	hash      crypto.HashManager
	address   crypto.AddressManager
	key       crypto.KeyManager
	signature crypto.SignatureManager
	pow       crypto.POWEngine
	powOpts   *powcfg.Options
	epoch     powcfg.Epoch
	logger    logiface.Logger
}

// Service constructs blocks wired to a consistent set of cryptographic
// dependencies and difficulty policy.
type Service struct {
	deps dependencies
}

// ServiceOption configures a Service at construction time.
type ServiceOption func(*Service)

// WithEpoch fixes which epoch's default thresholds new blocks fall back
// to when no explicit difficulty is given.
func WithEpoch(epoch powcfg.Epoch) ServiceOption {
	return func(s *Service) { s.deps.epoch = epoch }
}

// WithPOWOptions overrides the proof-of-work engine's tuning and default
// thresholds.
func WithPOWOptions(opts *powcfg.Options) ServiceOption {
	return func(s *Service) { s.deps.powOpts = opts }
}

// NewService wires a block factory to the given managers. epoch defaults
// to EpochV2, the reference network's current default. logger receives
// sign/solve-work diagnostics; pass a no-op logger (see
// internal/core/infrastructure/log.NewNop) if none is wanted.
func NewService(
	logger logiface.Logger,
	hash crypto.HashManager,
	address crypto.AddressManager,
	key crypto.KeyManager,
	signature crypto.SignatureManager,
	pow crypto.POWEngine,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		deps: dependencies{
			hash:      hash,
			address:   address,
			key:       key,
			signature: signature,
			pow:       pow,
			powOpts:   powcfg.DefaultOptions(),
			epoch:     powcfg.EpochV2,
			logger:    logger,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New constructs a block of the given kind with the supplied fields.
func (s *Service) New(kind Kind, opts ...Option) *Block {
	return newBlock(kind, s.deps, opts...)
}
