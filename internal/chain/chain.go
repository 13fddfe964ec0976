// Package chain defines the capability every blockchain adapter provides and
// the normalized block and transaction shapes the gateway works with.
package chain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gabapcia/blockgate/internal/model"
)

var (
	// ErrBlockNotFound is returned when the node does not know the block.
	ErrBlockNotFound = errors.New("block not found")

	// ErrTransactionNotFound is returned when the node does not know the transaction.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidPrivateKey is returned when a signing key cannot be decoded.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidAddress is returned when an address is not valid for the network.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInsufficientFunds is returned when a transfer cannot be funded.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnsupportedBlockchain is returned by factories for unknown blockchains or networks.
	ErrUnsupportedBlockchain = errors.New("unsupported blockchain")

	// ErrMissingSetting is returned when a connection lacks a required setting.
	ErrMissingSetting = errors.New("missing connection setting")
)

// Family selects how events are extracted from a block.
type Family string

const (
	FamilyUTXO    Family = "utxo"
	FamilyAccount Family = "account"
)

// Input is a spending side of a transaction.
type Input struct {
	Address string `json:"address"`
}

// Output is a receiving side of a transaction.
type Output struct {
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
}

// Log is a contract event emitted by a transaction on log-based chains.
type Log struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`
	Index   uint64   `json:"index"`
}

// Transaction is the normalized transaction shape. Block fields are nil for
// mempool transactions.
type Transaction struct {
	Hash        string          `json:"hash"`
	BlockHash   *string         `json:"blockHash,omitempty"`
	BlockHeight *uint64         `json:"blockHeight,omitempty"`
	BlockTime   *time.Time      `json:"blockTime,omitempty"`
	From        []Input         `json:"from"`
	To          []Output        `json:"to"`
	Fee         decimal.Decimal `json:"fee"`

	// Account chains only.
	Input           string `json:"input,omitempty"`
	CreatesContract bool   `json:"createsContract,omitempty"`
	Logs            []Log  `json:"logs,omitempty"`
}

// Block is the normalized block shape.
type Block struct {
	Hash         string        `json:"hash"`
	Height       uint64        `json:"height"`
	ParentHash   string        `json:"parentHash"`
	Time         time.Time     `json:"time"`
	Nonce        string        `json:"nonce"`
	Difficulty   string        `json:"difficulty"`
	Size         uint64        `json:"size"`
	Transactions []Transaction `json:"transactions"`
}

// Adapter talks to one node provider of one network. Hashes are always
// exposed 0x-prefixed; addresses keep the chain's native encoding.
type Adapter interface {
	Family() Family
	GetBlockHeight(ctx context.Context) (uint64, error)
	GetBlockByHeight(ctx context.Context, height uint64) (Block, error)
	GetBlockByHash(ctx context.Context, hash string) (Block, error)
	GetTransactionByHash(ctx context.Context, hash string) (Transaction, error)
	SendRawTransaction(ctx context.Context, rawTx string) (Transaction, error)

	// SendTransaction signs tx with privateKey and broadcasts it. A tx with
	// Raw set is broadcast without signing.
	SendTransaction(ctx context.Context, privateKey string, tx model.TxRequest) (Transaction, error)

	GetBalance(ctx context.Context, address string, minConf uint64) (decimal.Decimal, error)
	IsValidAddress(address string) bool
	Sign(privateKey string, payload []byte) (string, error)
}

// Factory builds the adapter of a transport connection.
type Factory interface {
	NewAdapter(conn model.TransportConnection) (Adapter, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(conn model.TransportConnection) (Adapter, error)

func (f FactoryFunc) NewAdapter(conn model.TransportConnection) (Adapter, error) {
	return f(conn)
}

// Hex0x returns s lowercased with a single 0x prefix.
func Hex0x(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "0x") {
		return s
	}

	return "0x" + s
}

// Strip0x removes a 0x prefix, if any.
func Strip0x(s string) string {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}

	return s
}
