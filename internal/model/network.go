// Package model holds the records shared by the gateway services: transport
// connections, subscriptions, rechecks, webhook action items, scheduled
// transactions and their owners.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNetworkKey is returned when a network key string is not in the
// "blockchain:network" form.
var ErrInvalidNetworkKey = errors.New("invalid network key")

// NetworkKey identifies one (blockchain, network) pair, e.g. ethereum:mainnet.
// All per-network state is keyed by it.
type NetworkKey struct {
	BlockchainID string `json:"blockchainId" yaml:"blockchainId" validate:"required"`
	NetworkID    string `json:"networkId" yaml:"networkId" validate:"required"`
}

func (k NetworkKey) String() string {
	return k.BlockchainID + ":" + k.NetworkID
}

// ParseNetworkKey parses the "blockchain:network" form produced by String.
func ParseNetworkKey(s string) (NetworkKey, error) {
	blockchainID, networkID, ok := strings.Cut(s, ":")
	if !ok || blockchainID == "" || networkID == "" {
		return NetworkKey{}, fmt.Errorf("%w: %q", ErrInvalidNetworkKey, s)
	}

	return NetworkKey{BlockchainID: blockchainID, NetworkID: networkID}, nil
}
