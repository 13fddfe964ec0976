package chainscan

import (
	"context"
	"errors"

	"github.com/gabapcia/blockgate/internal/model"
)

var (
	// ErrNoCheckpointFound is returned by LoadCheckpoint when the network
	// was never scanned.
	ErrNoCheckpointFound = errors.New("no checkpoint found for network")

	// ErrCheckpointConflict is returned when the stored checkpoint is not
	// the one the caller expected, which means another scanner moved it.
	ErrCheckpointConflict = errors.New("checkpoint changed concurrently")
)

// CheckpointStorage persists the last fully processed block height of each
// network.
type CheckpointStorage interface {
	// LoadCheckpoint returns the last processed height of key, or
	// ErrNoCheckpointFound.
	LoadCheckpoint(ctx context.Context, key model.NetworkKey) (uint64, error)

	// CreateCheckpoint stores the first checkpoint of key. It fails with
	// ErrCheckpointConflict when one already exists.
	CreateCheckpoint(ctx context.Context, key model.NetworkKey, height uint64) error

	// SaveCheckpoint moves the checkpoint of key from prev to next. It
	// fails with ErrCheckpointConflict when the stored value is not prev.
	SaveCheckpoint(ctx context.Context, key model.NetworkKey, prev, next uint64) error
}

// SubscriptionStorage looks subscriptions up by match key.
type SubscriptionStorage interface {
	// FindEligible returns the subscriptions of key and kind whose match
	// key is one of matchKeys. Implementations may include subscriptions
	// that are no longer eligible; the scanner filters them out.
	FindEligible(ctx context.Context, key model.NetworkKey, kind model.SubscriptionKind, matchKeys []string) ([]model.Subscription, error)
}
