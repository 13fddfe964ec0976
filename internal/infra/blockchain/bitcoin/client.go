// Package bitcoin implements chain.Adapter for bitcoind-compatible nodes over
// JSON-RPC. Transfers are built and signed locally with btcd so the node does
// not need a wallet.
package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/infra/blockchain/nodeconn"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/transport/jsonrpc"
)

// bitcoind RPC error codes the adapter branches on.
const (
	rpcInvalidAddressOrKey = -5
	rpcInvalidParameter    = -8
)

type client struct {
	conn   jsonrpc.Client
	params *chaincfg.Params
}

var _ chain.Adapter = (*client)(nil)

// NetworkParams maps a network ID to its chain parameters.
func NetworkParams(networkID string) (*chaincfg.Params, error) {
	switch networkID {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("%w: bitcoin network %q", chain.ErrUnsupportedBlockchain, networkID)
	}
}

// NewClient wraps an existing JSON-RPC connection to a node of the params network.
func NewClient(conn jsonrpc.Client, params *chaincfg.Params) *client {
	return &client{
		conn:   conn,
		params: params,
	}
}

// New dials the node described by conn.
func New(conn model.TransportConnection) (chain.Adapter, error) {
	params, err := NetworkParams(conn.NetworkID)
	if err != nil {
		return nil, err
	}

	rpc, err := nodeconn.Dial(conn)
	if err != nil {
		return nil, err
	}

	return NewClient(rpc, params), nil
}

func (c *client) Family() chain.Family {
	return chain.FamilyUTXO
}

// isRPCError reports whether err is a node error with the given code.
func isRPCError(err error, code int) bool {
	got, ok := jsonrpc.ErrorCode(err)
	return ok && got == code
}
