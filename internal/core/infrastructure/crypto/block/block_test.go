package block

import (
	"context"
	"encoding/hex"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	powcfg "github.com/nanoblock/nanogo/internal/config/pow"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/address"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/hash"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/key"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/pow"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/signature"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/log"
	"github.com/nanoblock/nanogo/pkg/types"
)

func testService(t *testing.T) *Service {
	t.Helper()
	h := hash.NewService()
	nop := log.NewNop()
	return NewService(nop, h, address.NewService(h), key.NewService(h), signature.NewService(), pow.NewService(nop, h))
}

func decode32(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, 32)
	var out [32]byte
	copy(out[:], b)
	return out
}

const (
	knownPrivHex = "1daa53d0f4077b761f39f623d039870575256b59e73e9d77cd0cf31af7e91cb9"
	knownPubHex  = "27733acae9454a41a8642929e411b461ad40a07bbaac67867d0b46559ad84f76"
	knownLinkHex = "A688CF225F2F16B89E49D3153899E9B36C218672379E61A66D6495CB275392BE"
	knownHashHex = "A7DD7571505F1EB87318AD4EECAD1E0E616C66FE9C19E694BE103F84B498553B"
	knownSigHex  = "52e44cf0cf0e093064baac53eaf152ab373ac5a6665d028d665abef17bfe32e3d03985e3dcfab648a3156ac662ccb4d0af47b824d3b5a3cf3bd83871901dc100"
)

func openingBlock(t *testing.T, s *Service) *Block {
	t.Helper()
	account := decode32(t, knownPubHex)
	link := decode32(t, knownLinkHex)
	balance, ok := new(big.Int).SetString("1000000000000000000000000000000", 10)
	require.True(t, ok)

	return s.New(KindState,
		WithAccount(account),
		WithPrevious([32]byte{}),
		WithRepresentative(account),
		WithBalance(balance),
		WithLink(link),
	)
}

func TestOpeningBlockHashKnownAnswer(t *testing.T) {
	s := testService(t)
	b := openingBlock(t, s)

	hash, err := b.BlockHash()
	require.NoError(t, err)
	assert.Equal(t, decode32(t, knownHashHex), hash)
}

func TestOpeningBlockSignatureKnownAnswer(t *testing.T) {
	s := testService(t)
	b := openingBlock(t, s)

	priv, err := hex.DecodeString(knownPrivHex)
	require.NoError(t, err)
	require.NoError(t, b.Sign(priv))

	sig, ok := b.Signature()
	require.True(t, ok, "expected a stored signature")
	wantSig, _ := hex.DecodeString(knownSigHex)
	assert.Equal(t, wantSig, sig)

	valid, err := b.HasValidSignature()
	require.NoError(t, err)
	assert.True(t, valid, "expected the known signature to verify")
}

func TestSignRejectsWrongKey(t *testing.T) {
	s := testService(t)
	b := openingBlock(t, s)

	wrongPriv, _, err := key.NewService(hash.NewService()).DeriveKeyPair(make([]byte, 32), 1)
	require.NoError(t, err)
	assert.ErrorIs(t, b.Sign(wrongPriv), types.ErrInvalidSignature)
}

func TestFieldMutationInvalidatesCaches(t *testing.T) {
	s := testService(t)
	b := openingBlock(t, s)

	priv, _ := hex.DecodeString(knownPrivHex)
	require.NoError(t, b.Sign(priv))
	valid, err := b.HasValidSignature()
	require.NoError(t, err)
	require.True(t, valid, "expected signature to be valid before mutation")

	// Mutate a hashed field directly (bypassing Sign, which would
	// re-invalidate on its own) to exercise the cache-clearing path.
	b.mu.Lock()
	newRep := decode32(t, knownLinkHex)
	b.representative = &newRep
	b.invalidateCaches()
	b.mu.Unlock()

	valid, err = b.HasValidSignature()
	require.NoError(t, err)
	assert.False(t, valid, "signature should no longer verify after the hashed fields changed")
}

func TestSolveWorkAndVerifyWork(t *testing.T) {
	s := testService(t)
	b := openingBlock(t, s)
	b.difficultyOverride = ptrUint64(0xF000000000000000)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, b.SolveWork(ctx))

	valid, err := b.HasValidWork()
	require.NoError(t, err)
	assert.True(t, valid, "expected solved work to validate")
}

func TestSolveWorkCancellationLeavesBlockUnmodified(t *testing.T) {
	s := testService(t)
	b := openingBlock(t, s)
	b.difficultyOverride = ptrUint64(0xFFFFFFFFFFFFFFFF)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := b.SolveWork(ctx)
	assert.ErrorIs(t, err, types.ErrCancelled)
	_, ok := b.Work()
	assert.False(t, ok, "cancelled SolveWork must not store a work value")
}

func TestToJSONFromJSONRoundTrip(t *testing.T) {
	s := testService(t)
	b := openingBlock(t, s)

	priv, _ := hex.DecodeString(knownPrivHex)
	require.NoError(t, b.Sign(priv))
	b.difficultyOverride = ptrUint64(0xF000000000000000)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, b.SolveWork(ctx))

	data, err := b.ToJSON()
	require.NoError(t, err)

	wantPrefix := `{"type":"state","account":"nano_1bum9d7gkjcca8n8acbbwiauarffa4i9qgoeey59t4t8cpffimupua6wr99u"`
	require.GreaterOrEqual(t, len(data), len(wantPrefix))
	assert.Equal(t, wantPrefix, string(data[:len(wantPrefix)]))

	decoded, err := s.FromJSON(data)
	require.NoError(t, err)

	roundTripped, err := decoded.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, string(data), string(roundTripped))
}

func TestCompleteRequiresSignatureAndWork(t *testing.T) {
	s := testService(t)
	b := openingBlock(t, s)
	assert.False(t, b.Complete(), "a block with no signature or work must not be complete")

	priv, _ := hex.DecodeString(knownPrivHex)
	require.NoError(t, b.Sign(priv))
	assert.False(t, b.Complete(), "a signed block with no work must not be complete")

	b.difficultyOverride = ptrUint64(0xF000000000000000)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, b.SolveWork(ctx))
	assert.True(t, b.Complete(), "a signed block with valid work should be complete")
}

func TestDefaultDifficultyByReceiveFlag(t *testing.T) {
	s := testService(t)
	sendLike := s.New(KindState, WithReceiveState(false))
	assert.Equal(t, powcfg.DefaultOptions().BaseThreshold, sendLike.DefaultDifficulty())

	receiveLike := s.New(KindState, WithReceiveState(true))
	assert.Equal(t, powcfg.DefaultOptions().ReceiveThresholdV2, receiveLike.DefaultDifficulty())
}

func ptrUint64(v uint64) *uint64 { return &v }
