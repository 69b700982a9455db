// Package nano is the public surface of this module: a client-side
// library for the NANO protocol that constructs, signs, and validates
// account blocks without running a full node. It bridges the human-facing
// hex and address strings external callers use to the byte-oriented
// internal packages that do the actual cryptography.
package nano

import (
	powcfg "github.com/nanoblock/nanogo/internal/config/pow"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/address"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/block"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/hash"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/key"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/pow"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/signature"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/log"
	logiface "github.com/nanoblock/nanogo/pkg/interfaces/infrastructure/log"
)

// Client wires every cryptographic concern this library exposes to a
// consistent set of dependencies. It holds no per-call state and is safe
// for concurrent use; construct one per process and share it.
type Client struct {
	hash      *hash.Service
	address   *address.Service
	key       *key.Service
	signature *signature.Service
	pow       *pow.Service
	blocks    *block.Service
}

// Option configures a Client at construction time.
type Option func(*clientConfig)

type clientConfig struct {
	powOpts []powcfg.Option
	epoch   powcfg.Epoch
	logger  logiface.Logger
}

// WithLogger supplies a logger that receives sign/solve-work diagnostics.
// Defaults to a no-op logger.
func WithLogger(logger logiface.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// WithWorkers overrides the proof-of-work engine's worker count. Zero (the
// default) uses every detected CPU.
func WithWorkers(n int) Option {
	return func(c *clientConfig) { c.powOpts = append(c.powOpts, powcfg.WithWorkers(n)) }
}

// WithBatchSize overrides how many nonces a proof-of-work worker advances
// between cancellation checks.
func WithBatchSize(n uint64) Option {
	return func(c *clientConfig) { c.powOpts = append(c.powOpts, powcfg.WithBatchSize(n)) }
}

// WithEpoch fixes which epoch's default thresholds new blocks fall back
// to when no explicit difficulty is given. Defaults to EpochV2,
// the reference network's current epoch.
func WithEpoch(epoch powcfg.Epoch) Option {
	return func(c *clientConfig) { c.epoch = epoch }
}

// New constructs a Client. Every dependency is freshly built and owned
// exclusively by the returned Client; there is no shared global state.
func New(opts ...Option) *Client {
	cfg := &clientConfig{epoch: powcfg.EpochV2, logger: log.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	powOptions := powcfg.Resolve(cfg.powOpts...)

	h := hash.NewService()
	a := address.NewService(h)
	k := key.NewService(h)
	sig := signature.NewService()
	engine := pow.NewService(cfg.logger, h, cfg.powOpts...)

	return &Client{
		hash:      h,
		address:   a,
		key:       k,
		signature: sig,
		pow:       engine,
		blocks: block.NewService(cfg.logger, h, a, k, sig, engine,
			block.WithEpoch(cfg.epoch),
			block.WithPOWOptions(powOptions),
		),
	}
}
