// Package chainscan walks the blocks of one network in height order, matches
// their events against stored subscriptions and hands every match to the
// confirmation scheduler. Progress is kept as a checkpoint that only moves
// once every match of a block was queued, so a crash replays at most one
// block.
package chainscan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/confirmation"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/logger"
	"github.com/gabapcia/blockgate/internal/pkg/resilience/retry"
	"github.com/gabapcia/blockgate/internal/pkg/types"
)

var (
	// ErrUnknownFamily is returned when an adapter reports a family no
	// extractor exists for.
	ErrUnknownFamily = errors.New("unknown chain family")

	// ErrUnexpectedBlock is returned when a node answers a height query with
	// a block of another height.
	ErrUnexpectedBlock = errors.New("node returned a block of another height")
)

const (
	defaultMaxBlocksPerTick = 100

	tracerName = "github.com/gabapcia/blockgate/internal/chainscan"
)

// AdapterSource hands out the active adapter of a network.
// failover.Coordinator satisfies it.
type AdapterSource interface {
	ActiveAdapter(ctx context.Context, key model.NetworkKey) (chain.Adapter, error)
	Invalidate(key model.NetworkKey)
}

// MatchScheduler queues a match. confirmation.Service satisfies it.
type MatchScheduler interface {
	Schedule(ctx context.Context, m confirmation.Match) error
}

// Scanner scans one network.
type Scanner interface {
	// Scan processes the blocks published since the last checkpoint, up to
	// the per tick limit, and returns the published height it saw.
	//
	// A failed block fetch stops the tick without moving the checkpoint and
	// invalidates the active adapter. failover.ErrNoHealthyTransport is
	// returned as is so callers can skip the cycle.
	Scan(ctx context.Context) (uint64, error)
}

type config struct {
	startHeight      *uint64
	maxBlocksPerTick uint64
	kinds            []model.SubscriptionKind
	retry            retry.Retry
}

// Option configures the Scanner built by New.
type Option func(*config)

// WithStartHeight sets the first block scanned when the network has no
// checkpoint yet. Without it the first run starts at the published height.
func WithStartHeight(height uint64) Option {
	return func(c *config) {
		c.startHeight = &height
	}
}

// WithMaxBlocksPerTick bounds how many blocks one Scan processes.
func WithMaxBlocksPerTick(n uint64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBlocksPerTick = n
		}
	}
}

// WithKinds restricts the subscription kinds matched by the scanner.
func WithKinds(kinds ...model.SubscriptionKind) Option {
	return func(c *config) {
		c.kinds = kinds
	}
}

// WithRetry sets the retry policy of node calls.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

type scanner struct {
	key           model.NetworkKey
	adapters      AdapterSource
	checkpoints   CheckpointStorage
	subscriptions SubscriptionStorage
	scheduler     MatchScheduler

	startHeight      *uint64
	maxBlocksPerTick uint64
	kinds            []model.SubscriptionKind
	retry            retry.Retry

	tracer trace.Tracer
}

var _ Scanner = (*scanner)(nil)

// loadCheckpoint returns the last processed height. On the first run it
// creates the checkpoint right before the configured start height, or at
// the published height when none is configured.
func (s *scanner) loadCheckpoint(ctx context.Context, published uint64) (uint64, error) {
	processed, err := s.checkpoints.LoadCheckpoint(ctx, s.key)
	if err == nil {
		return processed, nil
	}
	if !errors.Is(err, ErrNoCheckpointFound) {
		return 0, fmt.Errorf("load checkpoint: %w", err)
	}

	initial := published
	if s.startHeight != nil {
		initial = 0
		if *s.startHeight > 0 {
			initial = *s.startHeight - 1
		}
	}

	err = s.checkpoints.CreateCheckpoint(ctx, s.key, initial)
	switch {
	case err == nil:
		logger.Info(ctx, "checkpoint created", "checkpoint.height", initial)
		return initial, nil
	case errors.Is(err, ErrCheckpointConflict):
		return s.checkpoints.LoadCheckpoint(ctx, s.key)
	default:
		return 0, fmt.Errorf("create checkpoint: %w", err)
	}
}

// fetchBlock gets one block through the retry policy.
func (s *scanner) fetchBlock(ctx context.Context, adapter chain.Adapter, height uint64) (chain.Block, error) {
	var block chain.Block
	err := s.retry.Execute(ctx, func() error {
		var err error
		block, err = adapter.GetBlockByHeight(ctx, height)
		return err
	})

	return block, err
}

// matchBlock extracts the events of block and resolves them against the
// stored subscriptions with one lookup per kind.
func (s *scanner) matchBlock(ctx context.Context, extractor EventExtractor, block chain.Block, published uint64) ([]confirmation.Match, error) {
	byKind := types.NewDefaultMap[model.SubscriptionKind](func() []Event { return nil })
	for _, event := range extractor.Extract(block) {
		byKind.Set(event.Kind, append(byKind.Get(event.Kind), event))
	}

	var matches []confirmation.Match
	for _, kind := range s.kinds {
		events := byKind.Get(kind)
		if len(events) == 0 {
			continue
		}

		keys := types.NewSet[string]()
		for _, event := range events {
			keys.Add(event.Key)
		}

		subs, err := s.subscriptions.FindEligible(ctx, s.key, kind, types.Sorted(keys))
		if err != nil {
			return nil, fmt.Errorf("find %s subscriptions: %w", kind, err)
		}

		byKey := types.NewDefaultMap[string](func() []model.Subscription { return nil })
		for _, sub := range subs {
			if !sub.Eligible() || sub.Kind != kind {
				continue
			}
			byKey.Set(sub.MatchKey(), append(byKey.Get(sub.MatchKey()), sub))
		}

		for _, event := range events {
			for _, sub := range byKey.Get(event.Key) {
				if !sub.AcceptsTopic(event.Topic0) {
					continue
				}

				matches = append(matches, confirmation.Match{
					Subscription:  sub,
					BlockHash:     block.Hash,
					BlockHeight:   block.Height,
					BlockTime:     block.Time,
					TxHash:        event.TxHash,
					EventID:       event.EventID,
					Params:        event.Params,
					Confirmations: published - block.Height,
				})
			}
		}
	}

	return matches, nil
}

// processBlock queues every match of block.
func (s *scanner) processBlock(ctx context.Context, extractor EventExtractor, block chain.Block, published uint64) error {
	matches, err := s.matchBlock(ctx, extractor, block, published)
	if err != nil {
		return err
	}

	for _, m := range matches {
		if err := s.scheduler.Schedule(ctx, m); err != nil {
			return fmt.Errorf("schedule match of subscription %s: %w", m.Subscription.ID, err)
		}
	}

	if len(matches) > 0 {
		logger.Info(ctx, "block matched subscriptions", "match.count", len(matches))
	}

	return nil
}

func (s *scanner) Scan(ctx context.Context) (published uint64, err error) {
	ctx = logger.Derive(ctx, "network.key", s.key.String())

	ctx, span := s.tracer.Start(ctx, "chainscan.Scan", trace.WithAttributes(
		attribute.String("network.key", s.key.String()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	adapter, err := s.adapters.ActiveAdapter(ctx, s.key)
	if err != nil {
		return 0, err
	}

	extractor, err := ExtractorFor(adapter.Family())
	if err != nil {
		return 0, err
	}

	err = s.retry.Execute(ctx, func() error {
		var err error
		published, err = adapter.GetBlockHeight(ctx)
		return err
	})
	if err != nil {
		s.adapters.Invalidate(s.key)
		return 0, fmt.Errorf("get block height: %w", err)
	}
	span.SetAttributes(attribute.Int64("block.published", int64(published)))

	processed, err := s.loadCheckpoint(ctx, published)
	if err != nil {
		return published, err
	}

	for n := uint64(0); processed < published && n < s.maxBlocksPerTick; n++ {
		height := processed + 1
		blockCtx := logger.Derive(ctx, "block.height", height)

		block, err := s.fetchBlock(blockCtx, adapter, height)
		if err != nil {
			s.adapters.Invalidate(s.key)
			return published, fmt.Errorf("get block %d: %w", height, err)
		}
		if block.Height != height {
			s.adapters.Invalidate(s.key)
			return published, fmt.Errorf("%w: asked %d, got %d", ErrUnexpectedBlock, height, block.Height)
		}

		if err := s.processBlock(blockCtx, extractor, block, published); err != nil {
			return published, fmt.Errorf("process block %d: %w", height, err)
		}

		if err := s.checkpoints.SaveCheckpoint(blockCtx, s.key, processed, height); err != nil {
			return published, fmt.Errorf("save checkpoint %d: %w", height, err)
		}

		processed = height
	}

	if processed < published {
		logger.Debug(ctx, "scan tick limit reached", "checkpoint.height", processed, "block.published", published)
	}

	return published, nil
}

// New returns a Scanner for key. Matches are handed to scheduler.
func New(
	key model.NetworkKey,
	adapters AdapterSource,
	checkpoints CheckpointStorage,
	subscriptions SubscriptionStorage,
	scheduler MatchScheduler,
	opts ...Option,
) *scanner {
	cfg := config{
		maxBlocksPerTick: defaultMaxBlocksPerTick,
		kinds:            model.SubscriptionKinds,
		retry: retry.New(
			retry.WithAttempts(3),
			retry.WithDelay(200*time.Millisecond),
			retry.WithMaxDelay(2*time.Second),
		),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &scanner{
		key:              key,
		adapters:         adapters,
		checkpoints:      checkpoints,
		subscriptions:    subscriptions,
		scheduler:        scheduler,
		startHeight:      cfg.startHeight,
		maxBlocksPerTick: cfg.maxBlocksPerTick,
		kinds:            cfg.kinds,
		retry:            cfg.retry,
		tracer:           otel.Tracer(tracerName),
	}
}
