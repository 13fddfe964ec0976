package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blockgate/internal/pkg/types"
)

// decodeOptional decodes raw into T, treating null as the zero value.
func decodeOptional[T any](raw json.RawMessage) (T, error) {
	var out T
	if len(raw) == 0 || string(raw) == "null" {
		return out, nil
	}

	return out, json.Unmarshal(raw, &out)
}

func (c *client) GetTransactionByHash(ctx context.Context, hash string) (chain.Transaction, error) {
	hash = chain.Hex0x(hash)

	res, err := jsonrpc.Call[TransactionResponse](ctx, c.conn, "eth_getTransactionByHash", hash)
	if errors.Is(err, jsonrpc.ErrEmptyResult) {
		return chain.Transaction{}, fmt.Errorf("%w: %s", chain.ErrTransactionNotFound, hash)
	}
	if err != nil {
		return chain.Transaction{}, err
	}

	if res.BlockHash == nil {
		return res.toTransaction(nil, nil), nil
	}

	receipt, err := jsonrpc.Call[ReceiptResponse](ctx, c.conn, "eth_getTransactionReceipt", hash)
	if err != nil {
		return chain.Transaction{}, err
	}

	header, err := jsonrpc.Call[blockHeaderResponse](ctx, c.conn, "eth_getBlockByHash", *res.BlockHash, false)
	if err != nil {
		return chain.Transaction{}, err
	}

	blockTime := time.Unix(int64(header.Timestamp.Uint64()), 0).UTC()
	tx := res.toTransaction(&blockTime, receipt.Logs)

	fee := new(big.Int).Mul(receipt.GasUsed.Big(), receipt.EffectiveGasPrice.Big())
	tx.Fee = decimal.NewFromBigInt(fee, -weiDecimals)

	return tx, nil
}

func (c *client) SendRawTransaction(ctx context.Context, rawTx string) (chain.Transaction, error) {
	raw, err := hexutil.Decode(chain.Hex0x(rawTx))
	if err != nil {
		return chain.Transaction{}, fmt.Errorf("decode raw transaction: %w", err)
	}

	var signed ethtypes.Transaction
	if err := signed.UnmarshalBinary(raw); err != nil {
		return chain.Transaction{}, fmt.Errorf("decode raw transaction: %w", err)
	}

	hash, err := jsonrpc.Call[string](ctx, c.conn, "eth_sendRawTransaction", hexutil.Encode(raw))
	if err != nil {
		return chain.Transaction{}, err
	}

	tx := chain.Transaction{
		Hash:  chain.Hex0x(hash),
		From:  []chain.Input{},
		To:    []chain.Output{},
		Input: hexutil.Encode(signed.Data()),
	}

	if from, err := ethtypes.Sender(ethtypes.LatestSignerForChainID(signed.ChainId()), &signed); err == nil {
		tx.From = append(tx.From, chain.Input{Address: chain.Hex0x(from.Hex())})
	}

	if to := signed.To(); to != nil {
		tx.To = append(tx.To, chain.Output{Address: chain.Hex0x(to.Hex()), Amount: decimal.NewFromBigInt(signed.Value(), -weiDecimals)})
	} else {
		tx.CreatesContract = true
	}

	return tx, nil
}

func (c *client) SendTransaction(ctx context.Context, privateKey string, req model.TxRequest) (chain.Transaction, error) {
	if req.Raw != "" {
		return c.SendRawTransaction(ctx, req.Raw)
	}

	key, err := crypto.HexToECDSA(chain.Strip0x(privateKey))
	if err != nil {
		return chain.Transaction{}, fmt.Errorf("%w: %w", chain.ErrInvalidPrivateKey, err)
	}

	var to *common.Address
	if req.To != "" {
		if !c.IsValidAddress(req.To) {
			return chain.Transaction{}, fmt.Errorf("%w: %s", chain.ErrInvalidAddress, req.To)
		}
		addr := common.HexToAddress(req.To)
		to = &addr
	}

	var data []byte
	if req.Data != "" {
		if data, err = hexutil.Decode(chain.Hex0x(req.Data)); err != nil {
			return chain.Transaction{}, fmt.Errorf("decode tx data: %w", err)
		}
	}

	from := crypto.PubkeyToAddress(key.PublicKey)
	value := req.Amount.Shift(weiDecimals).BigInt()

	chainID, err := c.getChainID(ctx)
	if err != nil {
		return chain.Transaction{}, err
	}

	nonce, err := jsonrpc.Call[types.Hex](ctx, c.conn, "eth_getTransactionCount", from.Hex(), "pending")
	if err != nil {
		return chain.Transaction{}, err
	}

	gasPrice, err := jsonrpc.Call[types.Hex](ctx, c.conn, "eth_gasPrice")
	if err != nil {
		return chain.Transaction{}, err
	}

	gas := req.GasLimit
	if gas == 0 {
		call := map[string]any{"from": from.Hex(), "value": hexutil.EncodeBig(value)}
		if to != nil {
			call["to"] = to.Hex()
		}
		if len(data) > 0 {
			call["data"] = hexutil.Encode(data)
		}

		estimate, err := jsonrpc.Call[types.Hex](ctx, c.conn, "eth_estimateGas", call)
		if err != nil {
			return chain.Transaction{}, err
		}
		gas = estimate.Uint64()
	}

	unsigned := ethtypes.NewTx(&ethtypes.LegacyTx{
		Nonce:    nonce.Uint64(),
		GasPrice: gasPrice.Big(),
		Gas:      gas,
		To:       to,
		Value:    value,
		Data:     data,
	})

	signed, err := ethtypes.SignTx(unsigned, ethtypes.LatestSignerForChainID(chainID), key)
	if err != nil {
		return chain.Transaction{}, err
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return chain.Transaction{}, err
	}

	return c.SendRawTransaction(ctx, hexutil.Encode(raw))
}

// GetBalance returns the ether balance of address. A minConf above one reads
// the balance at the block minConf-1 below the tip.
func (c *client) GetBalance(ctx context.Context, address string, minConf uint64) (decimal.Decimal, error) {
	if !c.IsValidAddress(address) {
		return decimal.Zero, fmt.Errorf("%w: %s", chain.ErrInvalidAddress, address)
	}

	blockTag := "latest"
	if minConf > 1 {
		height, err := c.GetBlockHeight(ctx)
		if err != nil {
			return decimal.Zero, err
		}

		if height >= minConf-1 {
			blockTag = string(types.HexFromUint64(height - (minConf - 1)))
		} else {
			blockTag = "earliest"
		}
	}

	wei, err := jsonrpc.Call[types.Hex](ctx, c.conn, "eth_getBalance", address, blockTag)
	if err != nil {
		return decimal.Zero, err
	}

	return weiToEther(wei), nil
}

// IsValidAddress accepts 0x-prefixed 20-byte addresses. Mixed-case input
// must carry a valid EIP-55 checksum.
func (c *client) IsValidAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") || !common.IsHexAddress(address) {
		return false
	}

	body := address[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}

	return common.HexToAddress(address).Hex() == address
}

// Sign produces an EIP-191 personal_sign signature of payload (65 bytes, V
// in {27, 28}) hex encoded.
func (c *client) Sign(privateKey string, payload []byte) (string, error) {
	key, err := crypto.HexToECDSA(chain.Strip0x(privateKey))
	if err != nil {
		return "", fmt.Errorf("%w: %w", chain.ErrInvalidPrivateKey, err)
	}

	sig, err := crypto.Sign(accounts.TextHash(payload), key)
	if err != nil {
		return "", err
	}

	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}
