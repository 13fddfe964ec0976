package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRecheck is returned when a recheck would fire before its block.
var ErrInvalidRecheck = errors.New("invalid recheck")

// SubscriptionBlockRecheck defers the delivery of WebhookActionItem until the
// chain reaches InvokeOnBlockHeight. Its ID is the ID of the stored item.
type SubscriptionBlockRecheck struct {
	ID                    string            `json:"id"`
	SubscriptionID        string            `json:"subscriptionId"`
	TransportConnectionID string            `json:"transportConnectionId,omitempty"`
	BlockchainID          string            `json:"blockchainId"`
	NetworkID             string            `json:"networkId"`
	Type                  SubscriptionKind  `json:"type"`
	BlockHash             string            `json:"blockHash"`
	BlockHeight           uint64            `json:"blockHeight"`
	InvokeOnBlockHeight   uint64            `json:"invokeOnBlockHeight"`
	WebhookActionItem     WebhookActionItem `json:"webhookActionItem"`
	CreatedAt             time.Time         `json:"createdAt"`
}

// Key returns the network the recheck belongs to.
func (r SubscriptionBlockRecheck) Key() NetworkKey {
	return NetworkKey{BlockchainID: r.BlockchainID, NetworkID: r.NetworkID}
}

// NewRecheck builds the recheck of a prospective item for sub.
func NewRecheck(sub Subscription, item WebhookActionItem, invokeOnBlockHeight uint64, now time.Time) (SubscriptionBlockRecheck, error) {
	if invokeOnBlockHeight < item.BlockHeight {
		return SubscriptionBlockRecheck{}, fmt.Errorf("%w: invoke height %d is below block height %d", ErrInvalidRecheck, invokeOnBlockHeight, item.BlockHeight)
	}

	return SubscriptionBlockRecheck{
		ID:                    item.ID,
		SubscriptionID:        sub.ID,
		TransportConnectionID: sub.TransportConnectionID,
		BlockchainID:          item.BlockchainID,
		NetworkID:             item.NetworkID,
		Type:                  sub.Kind,
		BlockHash:             item.BlockHash,
		BlockHeight:           item.BlockHeight,
		InvokeOnBlockHeight:   invokeOnBlockHeight,
		WebhookActionItem:     item,
		CreatedAt:             now,
	}, nil
}

// RecheckCursor is the position of the last recheck of a page, ordered by
// InvokeOnBlockHeight then ID. The zero value starts at the first recheck.
type RecheckCursor struct {
	InvokeOnBlockHeight uint64
	ID                  string
}

// Cursor returns the position of r.
func (r SubscriptionBlockRecheck) Cursor() RecheckCursor {
	return RecheckCursor{InvokeOnBlockHeight: r.InvokeOnBlockHeight, ID: r.ID}
}

// Precedes reports whether a recheck due at height with id comes after c.
func (c RecheckCursor) Precedes(height uint64, id string) bool {
	if height != c.InvokeOnBlockHeight {
		return height > c.InvokeOnBlockHeight
	}

	return id > c.ID
}
