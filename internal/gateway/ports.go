package gateway

import (
	"context"
	"time"

	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/scheduledtx"
	"github.com/gabapcia/blockgate/internal/webhook"
)

// Scanner advances the checkpoint of one network and returns the published
// height it observed.
type Scanner interface {
	Scan(ctx context.Context) (uint64, error)
}

// Sweeper releases the rechecks that became due at a published height.
type Sweeper interface {
	Sweep(ctx context.Context, key model.NetworkKey, publishedHeight uint64) (int, error)
}

// Drainer delivers the pending webhook items of a network.
type Drainer interface {
	Drain(ctx context.Context, key model.NetworkKey) (webhook.Report, error)
}

// Sender fires the scheduled transactions that are due.
type Sender interface {
	FireDue(ctx context.Context, now time.Time) (scheduledtx.Report, error)
}

// Statistics exposes the transport call counters of a network.
type Statistics interface {
	Statistics(key model.NetworkKey) model.BlockchainStatistic
}

// Locker guards a named resource across gateway instances. A lock expires
// after ttl unless released earlier by the same token.
type Locker interface {
	// Acquire takes the lock for token and reports whether it succeeded.
	// Acquiring a lock already held by token extends it.
	Acquire(ctx context.Context, name, token string, ttl time.Duration) (bool, error)

	// Release frees the lock if token still holds it.
	Release(ctx context.Context, name, token string) error
}

type nopLocker struct{}

var _ Locker = nopLocker{}

func (nopLocker) Acquire(context.Context, string, string, time.Duration) (bool, error) {
	return true, nil
}

func (nopLocker) Release(context.Context, string, string) error {
	return nil
}
