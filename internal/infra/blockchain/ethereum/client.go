// Package ethereum implements chain.Adapter for Ethereum-compatible nodes
// over JSON-RPC. Signing uses go-ethereum.
package ethereum

import (
	"context"
	"math/big"
	"sync"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/infra/blockchain/nodeconn"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blockgate/internal/pkg/types"
)

// client implements chain.Adapter for one Ethereum node.
type client struct {
	conn jsonrpc.Client

	mu      sync.Mutex
	chainID *big.Int
}

var _ chain.Adapter = (*client)(nil)

// NewClient wraps an existing JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// New dials the node described by conn.
func New(conn model.TransportConnection) (chain.Adapter, error) {
	rpc, err := nodeconn.Dial(conn)
	if err != nil {
		return nil, err
	}

	return NewClient(rpc), nil
}

func (c *client) Family() chain.Family {
	return chain.FamilyAccount
}

// getChainID returns the node's chain ID, fetched once.
func (c *client) getChainID(ctx context.Context) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.chainID != nil {
		return c.chainID, nil
	}

	id, err := jsonrpc.Call[types.Hex](ctx, c.conn, "eth_chainId")
	if err != nil {
		return nil, err
	}

	c.chainID = id.Big()
	return c.chainID, nil
}
