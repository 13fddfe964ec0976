package confirmation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/logger"
)

const defaultSweepBatchSize = 500

// Service applies decisions and sweeps due rechecks.
type Service interface {
	// Schedule decides m and either enqueues its item or stores its
	// recheck. A nil error means the match is durably queued.
	Schedule(ctx context.Context, m Match) error

	// Sweep releases every recheck of key that is due at publishedHeight
	// and returns how many items were enqueued.
	Sweep(ctx context.Context, key model.NetworkKey, publishedHeight uint64) (int, error)
}

type config struct {
	batchSize int
	now       func() time.Time
}

// Option configures the Service built by New.
type Option func(*config)

// WithSweepBatchSize bounds how many rechecks one Sweep loads per page.
func WithSweepBatchSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

type service struct {
	rechecks   RecheckStorage
	dispatcher Dispatcher

	batchSize int
	now       func() time.Time
}

var _ Service = (*service)(nil)

func (s *service) Schedule(ctx context.Context, m Match) error {
	decision, err := Decide(m, s.now())
	if err != nil {
		return err
	}

	if decision.Deliver() {
		return s.dispatcher.Enqueue(ctx, []model.WebhookActionItem{*decision.Item})
	}

	if err := s.rechecks.UpsertRecheck(ctx, *decision.Recheck); err != nil {
		return fmt.Errorf("store recheck: %w", err)
	}

	logger.Debug(ctx, "match deferred until more confirmations",
		"subscription.id", m.Subscription.ID,
		"block.height", m.BlockHeight,
		"recheck.invoke_on", decision.Recheck.InvokeOnBlockHeight,
	)

	return nil
}

// Sweep pages through the due rechecks by cursor, so rows left behind for
// lack of confirmations never hide the ones after them. For each recheck
// the confirmations are recomputed from the block height recorded at scan
// time. Items are enqueued before their rows are deleted, so a crash in
// between only repeats an insert that the dispatcher ignores.
func (s *service) Sweep(ctx context.Context, key model.NetworkKey, publishedHeight uint64) (int, error) {
	ctx = logger.Derive(ctx, "network.key", key.String())

	var (
		emitted int
		after   model.RecheckCursor
	)

	for {
		rechecks, err := s.rechecks.ListDueRechecks(ctx, key, publishedHeight, after, s.batchSize)
		if err != nil {
			return emitted, fmt.Errorf("list due rechecks: %w", err)
		}

		var (
			items []model.WebhookActionItem
			ready []string
		)
		for _, r := range rechecks {
			after = r.Cursor()

			confirmations := publishedHeight - r.BlockHeight
			if r.BlockHeight > publishedHeight {
				confirmations = 0
			}

			item := r.WebhookActionItem
			if confirmations < item.MinConfirmations {
				logger.Warn(ctx, "recheck is due but still short of confirmations",
					"recheck.id", r.ID,
					"subscription.id", r.SubscriptionID,
					"block.height", r.BlockHeight,
					"confirmations", confirmations,
				)
				continue
			}

			item.Confirmations = confirmations
			item.Status = model.WebhookCreated
			items = append(items, item)
			ready = append(ready, r.ID)
		}

		if len(items) > 0 {
			if err := s.dispatcher.Enqueue(ctx, items); err != nil {
				return emitted, fmt.Errorf("enqueue rechecked items: %w", err)
			}

			var errs []error
			for _, id := range ready {
				if err := s.rechecks.DeleteRecheck(ctx, key, id); err != nil {
					errs = append(errs, err)
				}
			}

			emitted += len(items)
			if err := errors.Join(errs...); err != nil {
				return emitted, fmt.Errorf("delete rechecks: %w", err)
			}
		}

		if len(rechecks) < s.batchSize {
			return emitted, nil
		}
	}
}

// New returns a Service storing rechecks in rechecks and handing
// deliverable items to dispatcher.
func New(rechecks RecheckStorage, dispatcher Dispatcher, opts ...Option) *service {
	cfg := config{
		batchSize: defaultSweepBatchSize,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		rechecks:   rechecks,
		dispatcher: dispatcher,
		batchSize:  cfg.batchSize,
		now:        cfg.now,
	}
}
