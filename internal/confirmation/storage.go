package confirmation

import (
	"context"

	"github.com/gabapcia/blockgate/internal/model"
)

// RecheckStorage persists the rechecks of matches that were not deep enough
// when they were scanned.
type RecheckStorage interface {
	// UpsertRecheck stores r, replacing any recheck with the same ID.
	UpsertRecheck(ctx context.Context, r model.SubscriptionBlockRecheck) error

	// ListDueRechecks returns up to limit rechecks of key whose
	// InvokeOnBlockHeight is lower than or equal to height and that come
	// after the cursor, ordered by InvokeOnBlockHeight then ID.
	ListDueRechecks(ctx context.Context, key model.NetworkKey, height uint64, after model.RecheckCursor, limit int) ([]model.SubscriptionBlockRecheck, error)

	// DeleteRecheck removes a recheck. Deleting a missing recheck is not an
	// error.
	DeleteRecheck(ctx context.Context, key model.NetworkKey, id string) error
}

// Dispatcher queues webhook action items for delivery. Enqueue must ignore
// items whose ID is already queued.
type Dispatcher interface {
	Enqueue(ctx context.Context, items []model.WebhookActionItem) error
}
