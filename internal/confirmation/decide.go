// Package confirmation gates notifications on confirmation depth. Matches
// that are deep enough become webhook action items right away; the others
// are parked as rechecks and released by Sweep once the chain has grown.
package confirmation

import (
	"time"

	"github.com/gabapcia/blockgate/internal/model"
)

// Match is one subscription matched against one event of a scanned block.
type Match struct {
	Subscription model.Subscription

	BlockHash   string
	BlockHeight uint64
	BlockTime   time.Time

	TxHash  string
	EventID string
	Params  map[string]any

	// Confirmations is the published height minus BlockHeight at scan time.
	Confirmations uint64
}

// Decision is the outcome of Decide. Exactly one of Item and Recheck is set.
type Decision struct {
	Item    *model.WebhookActionItem
	Recheck *model.SubscriptionBlockRecheck
}

// Deliver reports whether the match can be delivered immediately.
func (d Decision) Deliver() bool {
	return d.Item != nil
}

// newItem builds the webhook action item of m. Its ID only depends on the
// subscription, transaction, event and block height, so scanning the same
// block twice yields the same item.
func newItem(m Match, now time.Time) model.WebhookActionItem {
	sub := m.Subscription

	var blockTime *time.Time
	if !m.BlockTime.IsZero() {
		t := m.BlockTime
		blockTime = &t
	}

	return model.WebhookActionItem{
		ID:               model.DeliveryID(sub.ID, m.TxHash, m.EventID, m.BlockHeight),
		ClientID:         sub.ClientID,
		ProjectID:        sub.ProjectID,
		SubscriptionID:   sub.ID,
		BlockchainID:     sub.BlockchainID,
		NetworkID:        sub.NetworkID,
		BlockHash:        m.BlockHash,
		BlockHeight:      m.BlockHeight,
		BlockTime:        blockTime,
		MinConfirmations: sub.MinConfirmations,
		Confirmations:    m.Confirmations,
		TxHash:           m.TxHash,
		RefID:            sub.ID,
		Type:             string(sub.Kind),
		EventID:          m.EventID,
		Params:           m.Params,
		Status:           model.WebhookCreated,
		CreatedAt:        now,
	}
}

// Decide returns what to do with m: deliver it now when it has at least
// MinConfirmations confirmations, otherwise recheck it at the height where
// it will have them. Decide has no side effects.
func Decide(m Match, now time.Time) (Decision, error) {
	item := newItem(m, now)

	minConfirmations := m.Subscription.MinConfirmations
	if m.Confirmations >= minConfirmations {
		return Decision{Item: &item}, nil
	}

	invokeOn := m.BlockHeight + (minConfirmations - m.Confirmations)
	recheck, err := model.NewRecheck(m.Subscription, item, invokeOn, now)
	if err != nil {
		return Decision{}, err
	}

	return Decision{Recheck: &recheck}, nil
}
