package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gabapcia/blockgate/internal/failover"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/validator"
)

// ErrInvalidNetworks is returned when the networks file is inconsistent.
var ErrInvalidNetworks = errors.New("invalid networks file")

// Network is one scanned network and its node providers.
type Network struct {
	model.NetworkKey `yaml:",inline"`

	// StartHeight is the first block scanned when the network has no
	// checkpoint yet.
	StartHeight *uint64 `yaml:"startHeight"`

	// Kinds restricts the subscription kinds matched on the network. Empty
	// means every kind.
	Kinds []model.SubscriptionKind `yaml:"kinds" validate:"omitempty,dive,oneof=ADDRESS CONTRACT_EVENT FABRIC_CONTRACT_CREATION TRANSACTION_HASH ORACLIZE"`

	Policy      *failover.Policy            `yaml:"policy"`
	Connections []model.TransportConnection `yaml:"connections" validate:"dive"`
}

// Networks is the content of the networks file.
type Networks struct {
	DefaultPolicy *failover.Policy `yaml:"defaultPolicy"`
	Networks      []Network        `yaml:"networks" validate:"required,min=1,dive"`
}

// Connections returns the connections of every network.
func (n Networks) Connections() []model.TransportConnection {
	var conns []model.TransportConnection
	for _, network := range n.Networks {
		conns = append(conns, network.Connections...)
	}

	return conns
}

// normalize fills the network of connections that omit it and rejects
// duplicates and connections listed under another network.
func (n *Networks) normalize() error {
	var (
		keys = make(map[model.NetworkKey]struct{}, len(n.Networks))
		ids  = make(map[string]struct{})
	)
	for i := range n.Networks {
		network := &n.Networks[i]
		if _, ok := keys[network.NetworkKey]; ok {
			return fmt.Errorf("%w: network %s listed twice", ErrInvalidNetworks, network.NetworkKey)
		}
		keys[network.NetworkKey] = struct{}{}

		for j := range network.Connections {
			conn := &network.Connections[j]
			if conn.BlockchainID == "" && conn.NetworkID == "" {
				conn.BlockchainID, conn.NetworkID = network.BlockchainID, network.NetworkID
			}

			if conn.Key() != network.NetworkKey {
				return fmt.Errorf("%w: connection %s belongs to %s, listed under %s", ErrInvalidNetworks, conn.ID, conn.Key(), network.NetworkKey)
			}

			if _, ok := ids[conn.ID]; ok {
				return fmt.Errorf("%w: connection %s listed twice", ErrInvalidNetworks, conn.ID)
			}
			ids[conn.ID] = struct{}{}
		}
	}

	return nil
}

// ParseNetworks decodes and validates a networks document. Unknown fields
// are rejected.
func ParseNetworks(data []byte) (Networks, error) {
	var networks Networks

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&networks); err != nil {
		return Networks{}, errors.Join(ErrInvalidNetworks, err)
	}

	if err := networks.normalize(); err != nil {
		return Networks{}, err
	}

	if err := validator.Validate(networks); err != nil {
		return Networks{}, errors.Join(ErrInvalidNetworks, err)
	}

	return networks, nil
}

// LoadNetworks reads the networks file at path.
func LoadNetworks(path string) (Networks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Networks{}, fmt.Errorf("read networks file: %w", err)
	}

	return ParseNetworks(data)
}
