package block

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/hash"
	"github.com/nanoblock/nanogo/internal/core/infrastructure/crypto/key"
	"github.com/nanoblock/nanogo/pkg/types"
)

func completeLegacyBlock(t *testing.T, s *Service, kind Kind, account [32]byte, priv []byte, opts ...Option) *Block {
	t.Helper()
	b := s.New(kind, append(opts, WithSigningAccount(account), WithDifficulty(0xF000000000000000))...)

	require.NoError(t, b.Sign(priv), "Sign(%s)", kind)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, b.SolveWork(ctx), "SolveWork(%s)", kind)
	return b
}

func TestLegacyBlocksRoundTripThroughJSON(t *testing.T) {
	s := testService(t)
	keys := key.NewService(hash.NewService())
	priv, pub, err := keys.DeriveKeyPair(make([]byte, 32), 3)
	require.NoError(t, err)
	var account [32]byte
	copy(account[:], pub)

	balance, _ := new(big.Int).SetString("42000000000000000000000000000", 10)
	previous := decode32(t, knownHashHex)

	cases := []struct {
		name string
		kind Kind
		opts []Option
	}{
		{"send", KindSend, []Option{WithPrevious(previous), WithDestination(account), WithBalance(balance)}},
		{"receive", KindReceive, []Option{WithPrevious(previous), WithSource(account)}},
		{"open", KindOpen, []Option{WithSource(previous), WithRepresentative(account), WithAccount(account)}},
		{"change", KindChange, []Option{WithPrevious(previous), WithRepresentative(account)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := completeLegacyBlock(t, s, tc.kind, account, priv, tc.opts...)
			require.True(t, b.Complete(), "%s block should be complete", tc.name)

			data, err := b.ToJSON()
			require.NoError(t, err)

			decoded, err := s.FromJSON(data)
			require.NoError(t, err)
			again, err := decoded.ToJSON()
			require.NoError(t, err)
			assert.Equal(t, string(data), string(again))
		})
	}
}

func TestLegacySignRejectsWrongSigningAccount(t *testing.T) {
	s := testService(t)
	keys := key.NewService(hash.NewService())
	priv, pub, err := keys.DeriveKeyPair(make([]byte, 32), 3)
	require.NoError(t, err)
	var account [32]byte
	copy(account[:], pub)

	otherPriv, _, err := keys.DeriveKeyPair(make([]byte, 32), 4)
	require.NoError(t, err)

	previous := decode32(t, knownHashHex)
	b := s.New(KindChange,
		WithSigningAccount(account),
		WithPrevious(previous),
		WithRepresentative(account),
	)

	assert.ErrorIs(t, b.Sign(otherPriv), types.ErrInvalidSignature)
	assert.NoError(t, b.Sign(priv))
}
