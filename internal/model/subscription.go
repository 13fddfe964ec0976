package model

import (
	"slices"
	"strings"
	"time"
)

// SubscriptionKind tags the Subscription variant.
type SubscriptionKind string

const (
	KindAddress                SubscriptionKind = "ADDRESS"
	KindContractEvent          SubscriptionKind = "CONTRACT_EVENT"
	KindFabricContractCreation SubscriptionKind = "FABRIC_CONTRACT_CREATION"
	KindTransactionHash        SubscriptionKind = "TRANSACTION_HASH"
	KindOraclize               SubscriptionKind = "ORACLIZE"
)

// SubscriptionKinds lists every variant in a stable order.
var SubscriptionKinds = []SubscriptionKind{
	KindAddress,
	KindContractEvent,
	KindFabricContractCreation,
	KindTransactionHash,
	KindOraclize,
}

// Valid reports whether k is a known variant.
func (k SubscriptionKind) Valid() bool {
	return slices.Contains(SubscriptionKinds, k)
}

// Subscription is a standing request to be notified about on-chain events.
// Kind selects which of the match fields is meaningful:
//
//	ADDRESS                   Address
//	CONTRACT_EVENT            ContractAddress, Topics (empty means any)
//	FABRIC_CONTRACT_CREATION  MethodSignature
//	TRANSACTION_HASH          TxHash
//	ORACLIZE                  EventHash
//
// Subscriptions are never deleted; they are disabled through the three flags.
type Subscription struct {
	ID                    string           `json:"id"`
	ClientID              string           `json:"clientId"`
	ProjectID             string           `json:"projectId"`
	TransportConnectionID string           `json:"transportConnectionId,omitempty"`
	BlockchainID          string           `json:"blockchainId"`
	NetworkID             string           `json:"networkId"`
	Kind                  SubscriptionKind `json:"type"`
	MinConfirmations      uint64           `json:"minConfirmations"`
	Subscribed            bool             `json:"subscribed"`
	IsClientActive        bool             `json:"isClientActive"`
	IsProjectActive       bool             `json:"isProjectActive"`
	CreatedAt             time.Time        `json:"createdAt"`

	Address         string   `json:"address,omitempty"`
	ContractAddress string   `json:"contractAddress,omitempty"`
	Topics          []string `json:"topics,omitempty"`
	MethodSignature string   `json:"methodSignature,omitempty"`
	TxHash          string   `json:"txHash,omitempty"`
	EventHash       string   `json:"eventHash,omitempty"`
}

// Key returns the network the subscription watches.
func (s Subscription) Key() NetworkKey {
	return NetworkKey{BlockchainID: s.BlockchainID, NetworkID: s.NetworkID}
}

// Eligible reports whether the subscription may be matched at all.
func (s Subscription) Eligible() bool {
	return s.Subscribed && s.IsClientActive && s.IsProjectActive
}

// MatchKey returns the normalized lookup key of the variant.
func (s Subscription) MatchKey() string {
	switch s.Kind {
	case KindAddress:
		return NormalizeMatchKey(s.Address)
	case KindContractEvent:
		return NormalizeMatchKey(s.ContractAddress)
	case KindFabricContractCreation:
		return NormalizeMatchKey(s.MethodSignature)
	case KindTransactionHash:
		return NormalizeMatchKey(s.TxHash)
	case KindOraclize:
		return NormalizeMatchKey(s.EventHash)
	default:
		return ""
	}
}

// AcceptsTopic reports whether a CONTRACT_EVENT subscription wants a log
// whose first topic is topic0. Other variants accept everything.
func (s Subscription) AcceptsTopic(topic0 string) bool {
	if s.Kind != KindContractEvent || len(s.Topics) == 0 {
		return true
	}

	topic0 = NormalizeMatchKey(topic0)
	for _, topic := range s.Topics {
		if NormalizeMatchKey(topic) == topic0 {
			return true
		}
	}

	return false
}

// NormalizeMatchKey lowercases 0x-prefixed hex keys. Anything else (base58
// Bitcoin addresses) is case sensitive and only trimmed.
func NormalizeMatchKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) >= 2 && (key[:2] == "0x" || key[:2] == "0X") {
		return strings.ToLower(key)
	}

	return key
}
