// Package blockchain builds the chain adapter of a transport connection.
package blockchain

import (
	"fmt"
	"strings"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/infra/blockchain/bitcoin"
	"github.com/gabapcia/blockgate/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/blockgate/internal/model"
)

// SettingFamily forces the adapter family of a connection whose blockchain
// ID is not known, e.g. a private EVM chain.
const SettingFamily = "family"

// Constructor builds an adapter for one connection.
type Constructor func(conn model.TransportConnection) (chain.Adapter, error)

var (
	defaultConstructors = map[string]Constructor{
		"bitcoin":   bitcoin.New,
		"ethereum":  ethereum.New,
		"polygon":   ethereum.New,
		"bsc":       ethereum.New,
		"avalanche": ethereum.New,
		"arbitrum":  ethereum.New,
		"optimism":  ethereum.New,
		"base":      ethereum.New,
	}

	familyConstructors = map[chain.Family]Constructor{
		chain.FamilyUTXO:    bitcoin.New,
		chain.FamilyAccount: ethereum.New,
	}
)

type factory struct {
	constructors map[string]Constructor
}

var _ chain.Factory = (*factory)(nil)

// Option configures a factory built by NewFactory.
type Option func(*factory)

// WithConstructor registers fn for blockchainID, replacing any default.
func WithConstructor(blockchainID string, fn Constructor) Option {
	return func(f *factory) {
		f.constructors[strings.ToLower(blockchainID)] = fn
	}
}

// NewFactory returns a chain.Factory knowing the built-in blockchains.
func NewFactory(opts ...Option) *factory {
	f := &factory{
		constructors: make(map[string]Constructor, len(defaultConstructors)),
	}
	for id, fn := range defaultConstructors {
		f.constructors[id] = fn
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *factory) NewAdapter(conn model.TransportConnection) (chain.Adapter, error) {
	if family, ok := conn.Settings[SettingFamily]; ok {
		fn, ok := familyConstructors[chain.Family(strings.ToLower(family))]
		if !ok {
			return nil, fmt.Errorf("%w: family %q on connection %s", chain.ErrUnsupportedBlockchain, family, conn.ID)
		}

		return fn(conn)
	}

	fn, ok := f.constructors[strings.ToLower(conn.BlockchainID)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", chain.ErrUnsupportedBlockchain, conn.BlockchainID)
	}

	return fn(conn)
}
