// Package failover picks the node provider each network is served by. It
// compares the block height of every enabled transport connection against a
// reference, hands out the highest priority provider that keeps up and
// records provider health for operators.
package failover

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/sync/singleflight"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/x/chflow"
)

// ErrNoHealthyTransport is returned when no connection of a network passes
// the health check. Callers skip the current cycle.
var ErrNoHealthyTransport = errors.New("no healthy transport")

const (
	defaultAllowedBlockDelay     = 5
	defaultValidityCheckDuration = 30 * time.Second
	defaultCheckTimeout          = 10 * time.Second
	defaultHealthWriteTimeout    = 5 * time.Second

	meterName = "github.com/gabapcia/blockgate/internal/failover"
)

// Policy tunes the health check of one network.
type Policy struct {
	// AllowedBlockDelay is how many blocks a provider may lag behind the
	// reference height and still be healthy.
	AllowedBlockDelay uint64 `yaml:"allowedBlockDelay"`

	// ValidityCheckDuration is how long a selection is reused before the
	// providers are checked again.
	ValidityCheckDuration time.Duration `yaml:"validityCheckDuration"`
}

// Coordinator hands out the active adapter of each network.
type Coordinator interface {
	// ActiveAdapter returns the adapter currently serving key. It is safe
	// for concurrent use and only checks the providers again once the last
	// selection expired.
	ActiveAdapter(ctx context.Context, key model.NetworkKey) (chain.Adapter, error)

	// Invalidate drops the cached selection of key after a caller observed
	// a failure on the active adapter.
	Invalidate(key model.NetworkKey)

	// Statistics returns the counters of key and resets the call count.
	Statistics(key model.NetworkKey) model.BlockchainStatistic

	// Close waits for pending health writes.
	Close()
}

type coordinator struct {
	storage ConnectionStorage
	factory chain.Factory

	defaultPolicy Policy
	policies      map[model.NetworkKey]Policy

	checkTimeout       time.Duration
	healthWriteTimeout time.Duration
	now                func() time.Time

	calls metric.Int64Counter
	group singleflight.Group

	mu       sync.Mutex
	networks map[model.NetworkKey]*network

	writes sync.WaitGroup
}

var _ Coordinator = (*coordinator)(nil)

type config struct {
	defaultPolicy      Policy
	policies           map[model.NetworkKey]Policy
	checkTimeout       time.Duration
	healthWriteTimeout time.Duration
	now                func() time.Time
	meterProvider      metric.MeterProvider
}

type Option func(*config)

// WithDefaultPolicy sets the policy of networks without their own.
func WithDefaultPolicy(p Policy) Option {
	return func(c *config) {
		c.defaultPolicy = p
	}
}

// WithPolicy sets the policy of one network.
func WithPolicy(key model.NetworkKey, p Policy) Option {
	return func(c *config) {
		c.policies[key] = p
	}
}

// WithCheckTimeout bounds each block height query of a health check.
func WithCheckTimeout(d time.Duration) Option {
	return func(c *config) {
		c.checkTimeout = d
	}
}

// WithHealthWriteTimeout bounds each asynchronous health write.
func WithHealthWriteTimeout(d time.Duration) Option {
	return func(c *config) {
		c.healthWriteTimeout = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

func New(storage ConnectionStorage, factory chain.Factory, opts ...Option) *coordinator {
	cfg := config{
		defaultPolicy: Policy{
			AllowedBlockDelay:     defaultAllowedBlockDelay,
			ValidityCheckDuration: defaultValidityCheckDuration,
		},
		policies:           make(map[model.NetworkKey]Policy),
		checkTimeout:       defaultCheckTimeout,
		healthWriteTimeout: defaultHealthWriteTimeout,
		now:                time.Now,
		meterProvider:      otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	calls, err := cfg.meterProvider.Meter(meterName).Int64Counter(
		"blockgate.transport.calls",
		metric.WithDescription("Calls made to node providers through the active adapter"),
	)
	if err != nil {
		calls, _ = noop.NewMeterProvider().Meter(meterName).Int64Counter("blockgate.transport.calls")
	}

	return &coordinator{
		storage:            storage,
		factory:            factory,
		defaultPolicy:      cfg.defaultPolicy,
		policies:           cfg.policies,
		checkTimeout:       cfg.checkTimeout,
		healthWriteTimeout: cfg.healthWriteTimeout,
		now:                cfg.now,
		calls:              calls,
		networks:           make(map[model.NetworkKey]*network),
	}
}

func (c *coordinator) policy(key model.NetworkKey) Policy {
	if p, ok := c.policies[key]; ok {
		return p
	}

	return c.defaultPolicy
}

// network returns the state of key, creating it on first use.
func (c *coordinator) network(key model.NetworkKey) *network {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.networks[key]
	if !ok {
		n = newNetwork(key, c.calls)
		c.networks[key] = n
	}

	return n
}

func (c *coordinator) ActiveAdapter(ctx context.Context, key model.NetworkKey) (chain.Adapter, error) {
	n := c.network(key)
	if adapter, err, ok := n.cached(c.now()); ok {
		return adapter, err
	}

	// The shared check outlives the caller that started it.
	checkCtx := context.WithoutCancel(ctx)
	result := c.group.DoChan(key.String(), func() (any, error) {
		if adapter, err, ok := n.cached(c.now()); ok {
			return adapter, err
		}

		// Storage errors are not cached so the next call retries at once.
		adapter, err := c.revalidate(checkCtx, n)
		if err == nil || errors.Is(err, ErrNoHealthyTransport) {
			n.store(adapter, err, c.now().Add(c.policy(key).ValidityCheckDuration))
		}

		return adapter, err
	})

	res, ok := chflow.Receive(ctx, result)
	if !ok {
		return nil, ctx.Err()
	}

	if res.Err != nil {
		return nil, res.Err
	}

	return res.Val.(chain.Adapter), nil
}

func (c *coordinator) Invalidate(key model.NetworkKey) {
	c.network(key).invalidate()
}

func (c *coordinator) Statistics(key model.NetworkKey) model.BlockchainStatistic {
	return c.network(key).statistics()
}

func (c *coordinator) Close() {
	c.writes.Wait()
}
