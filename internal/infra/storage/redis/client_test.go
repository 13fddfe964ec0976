package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/gabapcia/blockgate/internal/model"
)

var (
	ethMainnet = model.NetworkKey{BlockchainID: "ethereum", NetworkID: "mainnet"}
	btcTestnet = model.NetworkKey{BlockchainID: "bitcoin", NetworkID: "testnet"}
)

func newTestClient(t *testing.T) (*client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	c, err := NewClient(t.Context(), mr.Addr(), "", "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}
