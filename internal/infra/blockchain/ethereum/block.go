package ethereum

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blockgate/internal/pkg/types"
)

// weiDecimals is the number of decimals between wei and ether.
const weiDecimals = 18

type (
	// TransactionResponse is the subset of a JSON-RPC transaction object the adapter reads.
	TransactionResponse struct {
		Hash        string     `json:"hash"`
		BlockHash   *string    `json:"blockHash"`
		BlockNumber *types.Hex `json:"blockNumber"`
		From        string     `json:"from"`
		To          *string    `json:"to"`
		Value       types.Hex  `json:"value"`
		Input       string     `json:"input"`
		Gas         types.Hex  `json:"gas"`
		GasPrice    types.Hex  `json:"gasPrice"`
		Nonce       types.Hex  `json:"nonce"`
	}

	// LogResponse is a JSON-RPC log object.
	LogResponse struct {
		Address         string    `json:"address"`
		Topics          []string  `json:"topics"`
		Data            string    `json:"data"`
		LogIndex        types.Hex `json:"logIndex"`
		TransactionHash string    `json:"transactionHash"`
	}

	// ReceiptResponse is the subset of a transaction receipt the adapter reads.
	ReceiptResponse struct {
		TransactionHash   string        `json:"transactionHash"`
		GasUsed           types.Hex     `json:"gasUsed"`
		EffectiveGasPrice types.Hex     `json:"effectiveGasPrice"`
		ContractAddress   *string       `json:"contractAddress"`
		Logs              []LogResponse `json:"logs"`
	}

	// BlockResponse is the subset of a JSON-RPC block object the adapter reads.
	BlockResponse struct {
		Hash         string                `json:"hash"`
		ParentHash   string                `json:"parentHash"`
		Number       types.Hex             `json:"number"`
		Timestamp    types.Hex             `json:"timestamp"`
		Nonce        string                `json:"nonce"`
		Difficulty   types.Hex             `json:"difficulty"`
		Size         types.Hex             `json:"size"`
		Transactions []TransactionResponse `json:"transactions"`
	}

	// blockHeaderResponse is a block fetched without transaction bodies.
	blockHeaderResponse struct {
		Hash      string    `json:"hash"`
		Number    types.Hex `json:"number"`
		Timestamp types.Hex `json:"timestamp"`
	}
)

// weiToEther converts a wei quantity to ether.
func weiToEther(wei types.Hex) decimal.Decimal {
	return decimal.NewFromBigInt(wei.Big(), -weiDecimals)
}

func (l LogResponse) toLog() chain.Log {
	topics := make([]string, len(l.Topics))
	for i, topic := range l.Topics {
		topics[i] = chain.Hex0x(topic)
	}

	return chain.Log{
		Address: chain.Hex0x(l.Address),
		Topics:  topics,
		Data:    l.Data,
		Index:   l.LogIndex.Uint64(),
	}
}

// toTransaction converts t. Fees need the receipt and are left to the caller.
func (t TransactionResponse) toTransaction(blockTime *time.Time, logs []LogResponse) chain.Transaction {
	tx := chain.Transaction{
		Hash:      chain.Hex0x(t.Hash),
		BlockTime: blockTime,
		From:      []chain.Input{{Address: chain.Hex0x(t.From)}},
		To:        []chain.Output{},
		Input:     t.Input,
	}

	if t.BlockHash != nil {
		hash := chain.Hex0x(*t.BlockHash)
		tx.BlockHash = &hash
	}

	if t.BlockNumber != nil {
		height := t.BlockNumber.Uint64()
		tx.BlockHeight = &height
	}

	if t.To != nil && *t.To != "" {
		tx.To = append(tx.To, chain.Output{Address: chain.Hex0x(*t.To), Amount: weiToEther(t.Value)})
	} else {
		tx.CreatesContract = true
	}

	for _, l := range logs {
		tx.Logs = append(tx.Logs, l.toLog())
	}

	return tx
}

// toBlock converts b, attaching logs grouped by transaction hash.
func (b BlockResponse) toBlock(logsByTx map[string][]LogResponse) chain.Block {
	blockTime := time.Unix(int64(b.Timestamp.Uint64()), 0).UTC()

	transactions := make([]chain.Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		transactions[i] = t.toTransaction(&blockTime, logsByTx[chain.Hex0x(t.Hash)])
	}

	return chain.Block{
		Hash:         chain.Hex0x(b.Hash),
		Height:       b.Number.Uint64(),
		ParentHash:   chain.Hex0x(b.ParentHash),
		Time:         blockTime,
		Nonce:        b.Nonce,
		Difficulty:   b.Difficulty.Big().String(),
		Size:         b.Size.Uint64(),
		Transactions: transactions,
	}
}

func (c *client) GetBlockHeight(ctx context.Context) (uint64, error) {
	height, err := jsonrpc.Call[types.Hex](ctx, c.conn, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	return height.Uint64(), nil
}

func (c *client) GetBlockByHeight(ctx context.Context, height uint64) (chain.Block, error) {
	return c.getBlock(ctx, "eth_getBlockByNumber", types.HexFromUint64(height))
}

func (c *client) GetBlockByHash(ctx context.Context, hash string) (chain.Block, error) {
	return c.getBlock(ctx, "eth_getBlockByHash", chain.Hex0x(hash))
}

// getBlock fetches a full block with method and loads its logs.
func (c *client) getBlock(ctx context.Context, method string, ref any) (chain.Block, error) {
	res, err := jsonrpc.Call[BlockResponse](ctx, c.conn, method, ref, true)
	if errors.Is(err, jsonrpc.ErrEmptyResult) {
		return chain.Block{}, fmt.Errorf("%w: %v", chain.ErrBlockNotFound, ref)
	}
	if err != nil {
		return chain.Block{}, err
	}

	logsByTx := make(map[string][]LogResponse)
	if len(res.Transactions) > 0 {
		logs, err := c.getLogs(ctx, res.Hash)
		if err != nil {
			return chain.Block{}, err
		}

		for _, l := range logs {
			txHash := chain.Hex0x(l.TransactionHash)
			logsByTx[txHash] = append(logsByTx[txHash], l)
		}
	}

	return res.toBlock(logsByTx), nil
}

// getLogs returns every log emitted in the block.
func (c *client) getLogs(ctx context.Context, blockHash string) ([]LogResponse, error) {
	filter := map[string]any{"blockHash": blockHash}

	raw, err := c.conn.Fetch(ctx, "eth_getLogs", filter)
	if err != nil {
		return nil, err
	}

	return decodeOptional[[]LogResponse](raw)
}
