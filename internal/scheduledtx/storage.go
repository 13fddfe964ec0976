package scheduledtx

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/subscription"
)

var (
	// ErrAlreadyClaimed is returned by ClaimTx when the transaction is no
	// longer PENDING.
	ErrAlreadyClaimed = errors.New("scheduled tx already claimed")

	// ErrScheduledTxNotFound is returned when a scheduled tx ID is unknown.
	ErrScheduledTxNotFound = errors.New("scheduled tx not found")
)

// Storage persists scheduled transactions.
type Storage interface {
	// SaveTx stores a new PENDING transaction.
	SaveTx(ctx context.Context, tx model.ScheduledTx) error

	// ListDue returns up to limit PENDING transactions due at or before now,
	// earliest first.
	ListDue(ctx context.Context, now time.Time, limit int) ([]model.ScheduledTx, error)

	// ClaimTx moves a transaction from PENDING to SENDING. It returns
	// ErrAlreadyClaimed if the transaction is in any other state.
	ClaimTx(ctx context.Context, id string) error

	// ReleaseTx moves a SENDING transaction back to PENDING. It is only
	// used before anything was broadcast. A transaction whose sender died
	// while SENDING stays SENDING until an operator resolves it.
	ReleaseTx(ctx context.Context, id string) error

	// FinishTx moves a SENDING transaction to status, recording txHash.
	FinishTx(ctx context.Context, id string, status model.ScheduledTxStatus, txHash string) error
}

// OwnerStorage resolves the project and client a transaction is sent for.
type OwnerStorage interface {
	GetProject(ctx context.Context, id string) (model.Project, error)
	GetClient(ctx context.Context, id string) (model.Client, error)
}

// AdapterSource hands out the adapter transactions are broadcast with.
type AdapterSource interface {
	ActiveAdapter(ctx context.Context, key model.NetworkKey) (chain.Adapter, error)
}

// Dispatcher queues the outcome notifications.
type Dispatcher interface {
	Enqueue(ctx context.Context, items []model.WebhookActionItem) error
}

// Subscriber registers the confirmation watch of sent transactions.
type Subscriber interface {
	Subscribe(ctx context.Context, in subscription.Input) (model.Subscription, error)
}
