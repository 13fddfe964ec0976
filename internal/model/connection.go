package model

import "time"

// ConnectionStatus is the administrative state of a transport connection.
type ConnectionStatus string

const (
	ConnectionEnabled  ConnectionStatus = "ENABLED"
	ConnectionDisabled ConnectionStatus = "DISABLED"
)

// ConnectionHealth is the part of a TransportConnection written by the
// failover coordinator. It is compared and swapped as a unit.
type ConnectionHealth struct {
	IsFailing    bool       `json:"isFailing"`
	LastFailedAt *time.Time `json:"lastFailedAt,omitempty"`
	FailedCount  int        `json:"failedCount"`
}

// Failed returns the health after one more failed check at the given time.
func (h ConnectionHealth) Failed(at time.Time) ConnectionHealth {
	return ConnectionHealth{
		IsFailing:    true,
		LastFailedAt: &at,
		FailedCount:  h.FailedCount + 1,
	}
}

// Recovered returns the health after a successful check. The failure
// history is kept.
func (h ConnectionHealth) Recovered() ConnectionHealth {
	return ConnectionHealth{
		IsFailing:    false,
		LastFailedAt: h.LastFailedAt,
		FailedCount:  h.FailedCount,
	}
}

// Equal compares two health values field by field.
func (h ConnectionHealth) Equal(other ConnectionHealth) bool {
	if h.IsFailing != other.IsFailing || h.FailedCount != other.FailedCount {
		return false
	}

	switch {
	case h.LastFailedAt == nil && other.LastFailedAt == nil:
		return true
	case h.LastFailedAt == nil || other.LastFailedAt == nil:
		return false
	default:
		return h.LastFailedAt.Equal(*other.LastFailedAt)
	}
}

// TransportConnection is one node provider configured for a network.
// Higher Priority wins; private connections are preferred as the height
// reference.
type TransportConnection struct {
	ID           string            `json:"id" yaml:"id" validate:"required"`
	BlockchainID string            `json:"blockchainId" yaml:"blockchainId" validate:"required"`
	NetworkID    string            `json:"networkId" yaml:"networkId" validate:"required"`
	ProviderID   string            `json:"providerId" yaml:"providerId" validate:"required"`
	Settings     map[string]string `json:"settings" yaml:"settings" validate:"required"`
	Priority     int               `json:"priority" yaml:"priority"`
	Status       ConnectionStatus  `json:"status" yaml:"status" validate:"omitempty,oneof=ENABLED DISABLED"`
	IsPrivate    bool              `json:"isPrivate" yaml:"isPrivate"`
	Health       ConnectionHealth  `json:"health" yaml:"-"`
}

// Key returns the network the connection belongs to.
func (c TransportConnection) Key() NetworkKey {
	return NetworkKey{BlockchainID: c.BlockchainID, NetworkID: c.NetworkID}
}

// Enabled reports whether the connection takes part in failover. An empty
// status counts as enabled.
func (c TransportConnection) Enabled() bool {
	return c.Status != ConnectionDisabled
}

// BlockchainStatistic holds process-local counters for one network.
type BlockchainStatistic struct {
	Calls                uint64 `json:"calls"`
	TotalConnections     int    `json:"totalConnections"`
	HealthyConnections   int    `json:"healthyConnections"`
	UnhealthyConnections int    `json:"unhealthyConnections"`
}
