package bitcoin

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/shopspring/decimal"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/transport/jsonrpc"
)

const (
	satoshiDecimals = 8

	// dustLimit is the smallest change output worth creating, in satoshis.
	dustLimit = 546

	// minFeeRate is the relay floor in satoshis per virtual byte.
	minFeeRate = 1

	// feeTargetBlocks is the confirmation target passed to estimatesmartfee.
	feeTargetBlocks = 6

	messageMagic = "Bitcoin Signed Message:\n"
)

// ErrScanAborted is returned when the node aborts a UTXO set scan.
var ErrScanAborted = errors.New("utxo set scan aborted")

type (
	unspentResponse struct {
		TxID         string          `json:"txid"`
		Vout         uint32          `json:"vout"`
		ScriptPubKey string          `json:"scriptPubKey"`
		Amount       decimal.Decimal `json:"amount"`
		Height       uint64          `json:"height"`
	}

	scanResponse struct {
		Success  bool              `json:"success"`
		Height   uint64            `json:"height"`
		Unspents []unspentResponse `json:"unspents"`
	}

	feeEstimateResponse struct {
		FeeRate *decimal.Decimal `json:"feerate"`
		Errors  []string         `json:"errors"`
	}
)

// toSatoshis converts a BTC amount to satoshis, truncating sub-satoshi digits.
func toSatoshis(btc decimal.Decimal) int64 {
	return btc.Shift(satoshiDecimals).IntPart()
}

func fromSatoshis(sat int64) decimal.Decimal {
	return decimal.New(sat, -satoshiDecimals)
}

func (c *client) GetTransactionByHash(ctx context.Context, hash string) (chain.Transaction, error) {
	res, err := jsonrpc.Call[TransactionResponse](ctx, c.conn, "getrawtransaction", chain.Strip0x(hash), 2)
	if isRPCError(err, rpcInvalidAddressOrKey) || errors.Is(err, jsonrpc.ErrEmptyResult) {
		return chain.Transaction{}, fmt.Errorf("%w: %s", chain.ErrTransactionNotFound, hash)
	}
	if err != nil {
		return chain.Transaction{}, err
	}

	if res.BlockHash == "" {
		return res.toTransaction(nil, nil, nil), nil
	}

	header, err := jsonrpc.Call[blockHeaderResponse](ctx, c.conn, "getblockheader", res.BlockHash, true)
	if err != nil {
		return chain.Transaction{}, err
	}

	blockHash := chain.Hex0x(header.Hash)
	height := header.Height
	blockTime := time.Unix(header.Time, 0).UTC()

	return res.toTransaction(&blockHash, &height, &blockTime), nil
}

func (c *client) SendRawTransaction(ctx context.Context, rawTx string) (chain.Transaction, error) {
	raw, err := hex.DecodeString(chain.Strip0x(rawTx))
	if err != nil {
		return chain.Transaction{}, fmt.Errorf("decode raw transaction: %w", err)
	}

	var msgTx wire.MsgTx
	if err := msgTx.Deserialize(bytes.NewReader(raw)); err != nil {
		return chain.Transaction{}, fmt.Errorf("decode raw transaction: %w", err)
	}

	txID, err := jsonrpc.Call[string](ctx, c.conn, "sendrawtransaction", hex.EncodeToString(raw))
	if err != nil {
		return chain.Transaction{}, err
	}

	tx := chain.Transaction{
		Hash: chain.Hex0x(txID),
		From: []chain.Input{},
		To:   []chain.Output{},
	}

	for _, out := range msgTx.TxOut {
		_, addrs, _, err := txscript.ExtractPkScriptAddrs(out.PkScript, c.params)
		if err != nil || len(addrs) != 1 {
			continue
		}

		tx.To = append(tx.To, chain.Output{Address: addrs[0].EncodeAddress(), Amount: fromSatoshis(out.Value)})
	}

	return tx, nil
}

// signer is a decoded private key with the address its coins are spent from.
type signer struct {
	key        *btcec.PrivateKey
	compressed bool
	address    btcutil.Address
	segwit     bool
}

// decodePrivateKey accepts a WIF for the client's network or a raw 32-byte
// hex key (treated as compressed).
func (c *client) decodePrivateKey(privateKey string) (*btcec.PrivateKey, bool, error) {
	if wif, err := btcutil.DecodeWIF(privateKey); err == nil {
		if !wif.IsForNet(c.params) {
			return nil, false, fmt.Errorf("%w: key is not for %s", chain.ErrInvalidPrivateKey, c.params.Name)
		}
		return wif.PrivKey, wif.CompressPubKey, nil
	}

	raw, err := hex.DecodeString(chain.Strip0x(privateKey))
	if err != nil || len(raw) != btcec.PrivKeyBytesLen {
		return nil, false, chain.ErrInvalidPrivateKey
	}

	key, _ := btcec.PrivKeyFromBytes(raw)
	return key, true, nil
}

// newSigner resolves the spending address of privateKey. An empty from
// defaults to the key's P2WPKH address, or P2PKH for uncompressed keys.
func (c *client) newSigner(privateKey, from string) (signer, error) {
	key, compressed, err := c.decodePrivateKey(privateKey)
	if err != nil {
		return signer{}, err
	}

	pubKey := key.PubKey().SerializeUncompressed()
	if compressed {
		pubKey = key.PubKey().SerializeCompressed()
	}
	pkHash := btcutil.Hash160(pubKey)

	p2pkh, err := btcutil.NewAddressPubKeyHash(pkHash, c.params)
	if err != nil {
		return signer{}, err
	}

	s := signer{key: key, compressed: compressed, address: p2pkh}

	if compressed {
		p2wpkh, err := btcutil.NewAddressWitnessPubKeyHash(pkHash, c.params)
		if err != nil {
			return signer{}, err
		}

		if from == "" || from == p2wpkh.EncodeAddress() {
			s.address, s.segwit = p2wpkh, true
			return s, nil
		}
	}

	if from != "" && from != p2pkh.EncodeAddress() {
		return signer{}, fmt.Errorf("%w: %s is not controlled by the signing key", chain.ErrInvalidAddress, from)
	}

	return s, nil
}

// decodeAddress parses address and checks it belongs to the client's network.
func (c *client) decodeAddress(address string) (btcutil.Address, error) {
	addr, err := btcutil.DecodeAddress(address, c.params)
	if err != nil || !addr.IsForNet(c.params) {
		return nil, fmt.Errorf("%w: %s", chain.ErrInvalidAddress, address)
	}

	return addr, nil
}

// scanUnspent lists the confirmed outputs paying address.
func (c *client) scanUnspent(ctx context.Context, address string) (scanResponse, error) {
	res, err := jsonrpc.Call[scanResponse](ctx, c.conn, "scantxoutset", "start", []string{"addr(" + address + ")"})
	if err != nil {
		return scanResponse{}, err
	}

	if !res.Success {
		return scanResponse{}, ErrScanAborted
	}

	return res, nil
}

// feeRate returns the estimated fee rate in satoshis per virtual byte.
func (c *client) feeRate(ctx context.Context) (decimal.Decimal, error) {
	res, err := jsonrpc.Call[feeEstimateResponse](ctx, c.conn, "estimatesmartfee", feeTargetBlocks)
	if err != nil {
		return decimal.Zero, err
	}

	floor := decimal.NewFromInt(minFeeRate)
	if res.FeeRate == nil {
		return floor, nil
	}

	// BTC/kvB to sat/vB
	rate := res.FeeRate.Shift(satoshiDecimals).Div(decimal.NewFromInt(1000))
	return decimal.Max(rate, floor), nil
}

// estimateVSize approximates the virtual size of a transaction spending
// inputs single-key outputs into outputs standard outputs.
func estimateVSize(inputs, outputs int, segwit bool, dataLen int) int64 {
	size := int64(10 + 34*outputs)
	if segwit {
		size += 1 + 68*int64(inputs)
	} else {
		size += 148 * int64(inputs)
	}

	if dataLen > 0 {
		size += int64(11 + dataLen)
	}

	return size
}

func (c *client) SendTransaction(ctx context.Context, privateKey string, req model.TxRequest) (chain.Transaction, error) {
	if req.Raw != "" {
		return c.SendRawTransaction(ctx, req.Raw)
	}

	s, err := c.newSigner(privateKey, req.From)
	if err != nil {
		return chain.Transaction{}, err
	}

	to, err := c.decodeAddress(req.To)
	if err != nil {
		return chain.Transaction{}, err
	}

	amount := toSatoshis(req.Amount)
	if amount <= 0 {
		return chain.Transaction{}, fmt.Errorf("invalid amount %s", req.Amount)
	}

	var data []byte
	if req.Data != "" {
		if data, err = hex.DecodeString(chain.Strip0x(req.Data)); err != nil {
			return chain.Transaction{}, fmt.Errorf("decode tx data: %w", err)
		}
	}

	scan, err := c.scanUnspent(ctx, s.address.EncodeAddress())
	if err != nil {
		return chain.Transaction{}, err
	}

	feeFor := func(int) int64 { return toSatoshis(req.Fee) }
	if !req.Fee.IsPositive() {
		rate, err := c.feeRate(ctx)
		if err != nil {
			return chain.Transaction{}, err
		}

		feeFor = func(inputs int) int64 {
			vsize := estimateVSize(inputs, 2, s.segwit, len(data))
			return rate.Mul(decimal.NewFromInt(vsize)).Ceil().IntPart()
		}
	}

	unspents := slices.Clone(scan.Unspents)
	slices.SortFunc(unspents, func(a, b unspentResponse) int { return b.Amount.Cmp(a.Amount) })

	var (
		selected []unspentResponse
		total    int64
		fee      int64
	)
	for _, u := range unspents {
		selected = append(selected, u)
		total += toSatoshis(u.Amount)
		fee = feeFor(len(selected))

		if total >= amount+fee {
			break
		}
	}

	if total < amount+fee {
		return chain.Transaction{}, fmt.Errorf("%w: %s holds %s", chain.ErrInsufficientFunds, s.address.EncodeAddress(), fromSatoshis(total))
	}

	change := total - amount - fee
	if change < dustLimit {
		fee, change = fee+change, 0
	}

	msgTx, err := c.buildTx(s, selected, to, amount, change, data)
	if err != nil {
		return chain.Transaction{}, err
	}

	var buf bytes.Buffer
	if err := msgTx.Serialize(&buf); err != nil {
		return chain.Transaction{}, err
	}

	txID, err := jsonrpc.Call[string](ctx, c.conn, "sendrawtransaction", hex.EncodeToString(buf.Bytes()))
	if err != nil {
		return chain.Transaction{}, err
	}

	return chain.Transaction{
		Hash: chain.Hex0x(txID),
		From: []chain.Input{{Address: s.address.EncodeAddress()}},
		To:   []chain.Output{{Address: to.EncodeAddress(), Amount: fromSatoshis(amount)}},
		Fee:  fromSatoshis(fee),
	}, nil
}

// buildTx assembles and signs a transaction spending utxos of s.
func (c *client) buildTx(s signer, utxos []unspentResponse, to btcutil.Address, amount, change int64, data []byte) (*wire.MsgTx, error) {
	msgTx := wire.NewMsgTx(wire.TxVersion)
	fetcher := txscript.NewMultiPrevOutFetcher(nil)
	pkScripts := make([][]byte, len(utxos))

	for i, u := range utxos {
		hash, err := chainhash.NewHashFromStr(u.TxID)
		if err != nil {
			return nil, fmt.Errorf("utxo %s: %w", u.TxID, err)
		}

		pkScript, err := hex.DecodeString(u.ScriptPubKey)
		if err != nil {
			return nil, fmt.Errorf("utxo %s:%d script: %w", u.TxID, u.Vout, err)
		}
		pkScripts[i] = pkScript

		outPoint := wire.NewOutPoint(hash, u.Vout)
		msgTx.AddTxIn(wire.NewTxIn(outPoint, nil, nil))
		fetcher.AddPrevOut(*outPoint, wire.NewTxOut(toSatoshis(u.Amount), pkScript))
	}

	toScript, err := txscript.PayToAddrScript(to)
	if err != nil {
		return nil, err
	}
	msgTx.AddTxOut(wire.NewTxOut(amount, toScript))

	if len(data) > 0 {
		nullData, err := txscript.NullDataScript(data)
		if err != nil {
			return nil, err
		}
		msgTx.AddTxOut(wire.NewTxOut(0, nullData))
	}

	if change > 0 {
		changeScript, err := txscript.PayToAddrScript(s.address)
		if err != nil {
			return nil, err
		}
		msgTx.AddTxOut(wire.NewTxOut(change, changeScript))
	}

	sigHashes := txscript.NewTxSigHashes(msgTx, fetcher)
	for i, u := range utxos {
		if s.segwit {
			witness, err := txscript.WitnessSignature(msgTx, sigHashes, i, toSatoshis(u.Amount), pkScripts[i], txscript.SigHashAll, s.key, true)
			if err != nil {
				return nil, fmt.Errorf("sign input %d: %w", i, err)
			}
			msgTx.TxIn[i].Witness = witness
			continue
		}

		sigScript, err := txscript.SignatureScript(msgTx, i, pkScripts[i], txscript.SigHashAll, s.key, s.compressed)
		if err != nil {
			return nil, fmt.Errorf("sign input %d: %w", i, err)
		}
		msgTx.TxIn[i].SignatureScript = sigScript
	}

	return msgTx, nil
}

// GetBalance sums the outputs paying address with at least minConf confirmations.
func (c *client) GetBalance(ctx context.Context, address string, minConf uint64) (decimal.Decimal, error) {
	if _, err := c.decodeAddress(address); err != nil {
		return decimal.Zero, err
	}

	scan, err := c.scanUnspent(ctx, address)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, u := range scan.Unspents {
		var confirmations uint64
		if scan.Height >= u.Height {
			confirmations = scan.Height - u.Height + 1
		}

		if confirmations >= minConf {
			balance = balance.Add(u.Amount)
		}
	}

	return balance, nil
}

func (c *client) IsValidAddress(address string) bool {
	_, err := c.decodeAddress(address)
	return err == nil
}

// messageHash is the double SHA-256 of payload in the Bitcoin Signed Message format.
func messageHash(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := wire.WriteVarString(&buf, 0, messageMagic); err != nil {
		return nil, err
	}
	if err := wire.WriteVarBytes(&buf, 0, payload); err != nil {
		return nil, err
	}

	return chainhash.DoubleHashB(buf.Bytes()), nil
}

// Sign returns the base64 compact signature of payload, verifiable with
// bitcoind's verifymessage.
func (c *client) Sign(privateKey string, payload []byte) (string, error) {
	key, compressed, err := c.decodePrivateKey(privateKey)
	if err != nil {
		return "", err
	}

	hash, err := messageHash(payload)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(ecdsa.SignCompact(key, hash, compressed)), nil
}
