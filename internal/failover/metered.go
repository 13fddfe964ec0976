package failover

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/model"
)

// meteredAdapter counts every node call made through the active adapter.
type meteredAdapter struct {
	chain.Adapter
	network *network
}

func (m meteredAdapter) count(ctx context.Context) {
	m.network.callsNum.Add(1)
	m.network.counter.Add(ctx, 1, m.network.attrs)
}

func (m meteredAdapter) GetBlockHeight(ctx context.Context) (uint64, error) {
	m.count(ctx)
	return m.Adapter.GetBlockHeight(ctx)
}

func (m meteredAdapter) GetBlockByHeight(ctx context.Context, height uint64) (chain.Block, error) {
	m.count(ctx)
	return m.Adapter.GetBlockByHeight(ctx, height)
}

func (m meteredAdapter) GetBlockByHash(ctx context.Context, hash string) (chain.Block, error) {
	m.count(ctx)
	return m.Adapter.GetBlockByHash(ctx, hash)
}

func (m meteredAdapter) GetTransactionByHash(ctx context.Context, hash string) (chain.Transaction, error) {
	m.count(ctx)
	return m.Adapter.GetTransactionByHash(ctx, hash)
}

func (m meteredAdapter) SendRawTransaction(ctx context.Context, rawTx string) (chain.Transaction, error) {
	m.count(ctx)
	return m.Adapter.SendRawTransaction(ctx, rawTx)
}

func (m meteredAdapter) SendTransaction(ctx context.Context, privateKey string, tx model.TxRequest) (chain.Transaction, error) {
	m.count(ctx)
	return m.Adapter.SendTransaction(ctx, privateKey, tx)
}

func (m meteredAdapter) GetBalance(ctx context.Context, address string, minConf uint64) (decimal.Decimal, error) {
	m.count(ctx)
	return m.Adapter.GetBalance(ctx, address, minConf)
}
