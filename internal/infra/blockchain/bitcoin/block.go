package bitcoin

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/pkg/transport/jsonrpc"
)

// getblock verbosity carrying transactions with their prevouts.
const verbosityWithPrevouts = 3

type (
	// ScriptPubKey is an output script as decoded by bitcoind. Nodes older
	// than v22 report Addresses instead of Address.
	ScriptPubKey struct {
		Hex       string   `json:"hex"`
		Type      string   `json:"type"`
		Address   string   `json:"address"`
		Addresses []string `json:"addresses"`
	}

	// PrevOutResponse is the output spent by an input.
	PrevOutResponse struct {
		Value        decimal.Decimal `json:"value"`
		ScriptPubKey ScriptPubKey    `json:"scriptPubKey"`
	}

	VinResponse struct {
		TxID     string           `json:"txid"`
		Vout     uint32           `json:"vout"`
		Coinbase string           `json:"coinbase"`
		PrevOut  *PrevOutResponse `json:"prevout"`
	}

	VoutResponse struct {
		Value        decimal.Decimal `json:"value"`
		N            uint32          `json:"n"`
		ScriptPubKey ScriptPubKey    `json:"scriptPubKey"`
	}

	// TransactionResponse is a verbose transaction from getblock or getrawtransaction.
	TransactionResponse struct {
		TxID      string           `json:"txid"`
		Hash      string           `json:"hash"`
		Vin       []VinResponse    `json:"vin"`
		Vout      []VoutResponse   `json:"vout"`
		Fee       *decimal.Decimal `json:"fee"`
		BlockHash string           `json:"blockhash"`
		BlockTime int64            `json:"blocktime"`
	}

	// BlockResponse is a getblock result.
	BlockResponse struct {
		Hash              string                `json:"hash"`
		Height            uint64                `json:"height"`
		PreviousBlockHash string                `json:"previousblockhash"`
		Time              int64                 `json:"time"`
		Nonce             uint64                `json:"nonce"`
		Difficulty        json.Number           `json:"difficulty"`
		Size              uint64                `json:"size"`
		Tx                []TransactionResponse `json:"tx"`
	}

	blockHeaderResponse struct {
		Hash   string `json:"hash"`
		Height uint64 `json:"height"`
		Time   int64  `json:"time"`
	}
)

// address returns the single address paid by the script, if any.
func (s ScriptPubKey) address() string {
	if s.Address != "" {
		return s.Address
	}

	if len(s.Addresses) == 1 {
		return s.Addresses[0]
	}

	return ""
}

// fee returns the fee reported by the node or, when every prevout is known,
// the difference between spent and created value.
func (t TransactionResponse) fee() decimal.Decimal {
	if t.Fee != nil {
		return *t.Fee
	}

	in := decimal.Zero
	for _, vin := range t.Vin {
		if vin.Coinbase != "" || vin.PrevOut == nil {
			return decimal.Zero
		}
		in = in.Add(vin.PrevOut.Value)
	}

	out := decimal.Zero
	for _, vout := range t.Vout {
		out = out.Add(vout.Value)
	}

	if in.LessThan(out) {
		return decimal.Zero
	}

	return in.Sub(out)
}

func (t TransactionResponse) toTransaction(blockHash *string, height *uint64, blockTime *time.Time) chain.Transaction {
	tx := chain.Transaction{
		Hash:        chain.Hex0x(t.TxID),
		BlockHash:   blockHash,
		BlockHeight: height,
		BlockTime:   blockTime,
		From:        []chain.Input{},
		To:          []chain.Output{},
		Fee:         t.fee(),
	}

	for _, vin := range t.Vin {
		if vin.PrevOut == nil {
			continue
		}

		if addr := vin.PrevOut.ScriptPubKey.address(); addr != "" {
			tx.From = append(tx.From, chain.Input{Address: addr})
		}
	}

	for _, vout := range t.Vout {
		if addr := vout.ScriptPubKey.address(); addr != "" {
			tx.To = append(tx.To, chain.Output{Address: addr, Amount: vout.Value})
		}
	}

	return tx
}

func (b BlockResponse) toBlock() chain.Block {
	hash := chain.Hex0x(b.Hash)
	height := b.Height
	blockTime := time.Unix(b.Time, 0).UTC()

	transactions := make([]chain.Transaction, len(b.Tx))
	for i, t := range b.Tx {
		transactions[i] = t.toTransaction(&hash, &height, &blockTime)
	}

	block := chain.Block{
		Hash:         hash,
		Height:       height,
		Time:         blockTime,
		Nonce:        strconv.FormatUint(b.Nonce, 10),
		Difficulty:   b.Difficulty.String(),
		Size:         b.Size,
		Transactions: transactions,
	}

	// The genesis block has no parent.
	if b.PreviousBlockHash != "" {
		block.ParentHash = chain.Hex0x(b.PreviousBlockHash)
	}

	return block
}

func (c *client) GetBlockHeight(ctx context.Context) (uint64, error) {
	return jsonrpc.Call[uint64](ctx, c.conn, "getblockcount")
}

func (c *client) GetBlockByHeight(ctx context.Context, height uint64) (chain.Block, error) {
	hash, err := jsonrpc.Call[string](ctx, c.conn, "getblockhash", height)
	if isRPCError(err, rpcInvalidParameter) {
		return chain.Block{}, fmt.Errorf("%w: height %d", chain.ErrBlockNotFound, height)
	}
	if err != nil {
		return chain.Block{}, err
	}

	return c.GetBlockByHash(ctx, hash)
}

func (c *client) GetBlockByHash(ctx context.Context, hash string) (chain.Block, error) {
	res, err := jsonrpc.Call[BlockResponse](ctx, c.conn, "getblock", chain.Strip0x(hash), verbosityWithPrevouts)
	if isRPCError(err, rpcInvalidAddressOrKey) {
		return chain.Block{}, fmt.Errorf("%w: %s", chain.ErrBlockNotFound, hash)
	}
	if err != nil {
		return chain.Block{}, err
	}

	return res.toBlock(), nil
}
