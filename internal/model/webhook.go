package model

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WebhookStatus is the delivery state of a WebhookActionItem. SENT and
// FAILED are terminal.
type WebhookStatus string

const (
	WebhookCreated WebhookStatus = "CREATED"
	WebhookSent    WebhookStatus = "SENT"
	WebhookFailed  WebhookStatus = "FAILED"
)

// WebhookTypeScheduledTransaction is the item type emitted by the scheduled
// transaction sender. Items emitted by the scanner use the subscription kind.
const WebhookTypeScheduledTransaction = "SCHEDULED_TRANSACTION"

// deliveryNamespace scopes the name-based UUIDs built by DeliveryID.
var deliveryNamespace = uuid.MustParse("6f1c7a52-3d0e-4b8e-9a51-0c2a1f4e7d93")

// DeliveryID derives the identifier of the notification for one event. The
// same inputs always produce the same ID, so inserting the item (or its
// recheck) twice is a no-op for stores that insert if absent.
func DeliveryID(refID, txHash, eventID string, blockHeight uint64) string {
	name := strings.Join([]string{refID, txHash, eventID, strconv.FormatUint(blockHeight, 10)}, "|")
	return uuid.NewSHA1(deliveryNamespace, []byte(name)).String()
}

// WebhookFail records one failed delivery attempt.
type WebhookFail struct {
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason"`
}

// WebhookActionItem is one queued notification. Only the dispatcher mutates
// Status, FailedCount, LastFailedAt, NextAttemptAt and Fails.
type WebhookActionItem struct {
	ID               string         `json:"id"`
	ClientID         string         `json:"clientId"`
	ProjectID        string         `json:"projectId"`
	SubscriptionID   string         `json:"subscriptionId,omitempty"`
	BlockchainID     string         `json:"blockchainId"`
	NetworkID        string         `json:"networkId"`
	BlockHash        string         `json:"blockHash,omitempty"`
	BlockHeight      uint64         `json:"blockHeight,omitempty"`
	BlockTime        *time.Time     `json:"blockTime,omitempty"`
	MinConfirmations uint64         `json:"minConfirmations"`
	Confirmations    uint64         `json:"confirmations"`
	TxHash           string         `json:"txHash,omitempty"`
	RefID            string         `json:"refId"`
	Type             string         `json:"type"`
	EventID          string         `json:"eventId,omitempty"`
	Params           map[string]any `json:"params,omitempty"`
	FailedCount      int            `json:"failedCount"`
	LastFailedAt     *time.Time     `json:"lastFailedAt,omitempty"`
	NextAttemptAt    *time.Time     `json:"nextAttemptAt,omitempty"`
	Fails            []WebhookFail  `json:"fails,omitempty"`
	Status           WebhookStatus  `json:"status"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// Key returns the network the item belongs to.
func (i WebhookActionItem) Key() NetworkKey {
	return NetworkKey{BlockchainID: i.BlockchainID, NetworkID: i.NetworkID}
}

// Terminal reports whether the item reached SENT or FAILED.
func (i WebhookActionItem) Terminal() bool {
	return i.Status == WebhookSent || i.Status == WebhookFailed
}

// NextAttempt returns when the item may be attempted: NextAttemptAt when a
// retry was deferred, CreatedAt otherwise.
func (i WebhookActionItem) NextAttempt() time.Time {
	if i.NextAttemptAt != nil {
		return *i.NextAttemptAt
	}

	return i.CreatedAt
}

// Delivered returns the item marked as SENT.
func (i WebhookActionItem) Delivered() WebhookActionItem {
	i.Status = WebhookSent
	return i
}

// RecordFailure returns the item with one more failed attempt appended.
// Once FailedCount reaches ceiling the item becomes FAILED.
func (i WebhookActionItem) RecordFailure(at time.Time, reason string, ceiling int) WebhookActionItem {
	i.Fails = append(slices.Clone(i.Fails), WebhookFail{Timestamp: at, Reason: reason})
	i.FailedCount++
	i.LastFailedAt = &at
	i.NextAttemptAt = nil

	if i.FailedCount >= ceiling {
		i.Status = WebhookFailed
	}

	return i
}

// RetryAfter returns the item with its next attempt deferred to at.
func (i WebhookActionItem) RetryAfter(at time.Time) WebhookActionItem {
	i.NextAttemptAt = &at
	return i
}

// WebhookPayload is the JSON body POSTed to the project's webhook URL.
type WebhookPayload struct {
	ID               string         `json:"id"`
	BlockchainID     string         `json:"blockchainId"`
	NetworkID        string         `json:"networkId"`
	BlockHash        string         `json:"blockHash,omitempty"`
	BlockHeight      uint64         `json:"blockHeight,omitempty"`
	BlockTime        *time.Time     `json:"blockTime,omitempty"`
	MinConfirmations uint64         `json:"minConfirmations"`
	Confirmations    uint64         `json:"confirmations"`
	TxHash           string         `json:"txHash,omitempty"`
	RefID            string         `json:"refId"`
	Type             string         `json:"type"`
	EventID          string         `json:"eventId,omitempty"`
	Params           map[string]any `json:"params,omitempty"`
	Status           WebhookStatus  `json:"status"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// Payload returns the client-visible subset of the item.
func (i WebhookActionItem) Payload() WebhookPayload {
	return WebhookPayload{
		ID:               i.ID,
		BlockchainID:     i.BlockchainID,
		NetworkID:        i.NetworkID,
		BlockHash:        i.BlockHash,
		BlockHeight:      i.BlockHeight,
		BlockTime:        i.BlockTime,
		MinConfirmations: i.MinConfirmations,
		Confirmations:    i.Confirmations,
		TxHash:           i.TxHash,
		RefID:            i.RefID,
		Type:             i.Type,
		EventID:          i.EventID,
		Params:           i.Params,
		Status:           i.Status,
		CreatedAt:        i.CreatedAt,
	}
}
