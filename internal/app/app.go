// Package app builds the gateway from its configuration: storage backends,
// the failover coordinator, the per-network scanners and the services the
// command line drives.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/chainscan"
	"github.com/gabapcia/blockgate/internal/config"
	"github.com/gabapcia/blockgate/internal/confirmation"
	"github.com/gabapcia/blockgate/internal/failover"
	"github.com/gabapcia/blockgate/internal/gateway"
	"github.com/gabapcia/blockgate/internal/handlers/cli"
	"github.com/gabapcia/blockgate/internal/infra/blockchain"
	"github.com/gabapcia/blockgate/internal/infra/storage/memory"
	"github.com/gabapcia/blockgate/internal/infra/storage/postgres"
	"github.com/gabapcia/blockgate/internal/infra/storage/redis"
	"github.com/gabapcia/blockgate/internal/pkg/logger"
	"github.com/gabapcia/blockgate/internal/scheduledtx"
	"github.com/gabapcia/blockgate/internal/subscription"
	"github.com/gabapcia/blockgate/internal/webhook"
)

// Store is every storage port of the gateway. The redis and memory backends
// implement it.
type Store interface {
	failover.ConnectionStorage
	chainscan.CheckpointStorage
	chainscan.SubscriptionStorage
	subscription.Storage
	subscription.OwnerStorage
	confirmation.RecheckStorage
	webhook.ItemStorage
	scheduledtx.Storage
	gateway.Locker
	cli.ConnectionStore
	cli.OwnerStore
}

var _ Store = (*memory.Store)(nil)

type options struct {
	store   Store
	factory chain.Factory
	webhook []webhook.Option
}

type Option func(*options)

// WithStore replaces the storage backend selected by the configuration.
func WithStore(s Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithFactory replaces the built-in chain adapters.
func WithFactory(f chain.Factory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// WithWebhookOptions appends options to the webhook dispatcher.
func WithWebhookOptions(opts ...webhook.Option) Option {
	return func(o *options) {
		o.webhook = append(o.webhook, opts...)
	}
}

// App holds the wired services.
type App struct {
	cli.Services

	coordinator failover.Coordinator
	closers     []func() error
}

// Close stops the coordinator and closes the storage connections.
func (a *App) Close() error {
	a.coordinator.Close()

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}

	return errors.Join(errs...)
}

func (a *App) initStore(ctx context.Context, cfg config.Config, o *options) (Store, error) {
	if o.store != nil {
		return o.store, nil
	}

	if cfg.Storage == config.StorageMemory {
		logger.Warn(ctx, "using in-memory storage, state is lost on exit")
		return memory.New(), nil
	}

	client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	a.closers = append(a.closers, client.Close)

	logger.Info(ctx, "redis connected", "redis.addr", cfg.RedisAddr)
	return client, nil
}

func (a *App) initItemStorage(ctx context.Context, cfg config.Config, store Store) (webhook.ItemStorage, error) {
	if cfg.Storage != config.StorageRedis || cfg.WebhookStore != config.WebhookStorePostgres {
		return store, nil
	}

	client, err := postgres.NewClient(ctx, cfg.PostgresURL, cfg.PostgresMaxConns)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	a.closers = append(a.closers, func() error {
		client.Close()
		return nil
	})

	if err := client.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	logger.Info(ctx, "webhook items stored in postgres")
	return client, nil
}

// seedConnections saves the connections of the networks file. The health
// already stored for a connection is kept.
func seedConnections(ctx context.Context, store Store, networks config.Networks) error {
	for _, conn := range networks.Connections() {
		if err := store.SaveConnection(ctx, conn); err != nil {
			return fmt.Errorf("save connection %s: %w", conn.ID, err)
		}
	}

	return nil
}

func failoverOptions(networks config.Networks) []failover.Option {
	var opts []failover.Option
	if networks.DefaultPolicy != nil {
		opts = append(opts, failover.WithDefaultPolicy(*networks.DefaultPolicy))
	}

	for _, n := range networks.Networks {
		if n.Policy != nil {
			opts = append(opts, failover.WithPolicy(n.NetworkKey, *n.Policy))
		}
	}

	return opts
}

func webhookOptions(cfg config.Webhook) ([]webhook.Option, error) {
	backoff, err := webhook.ParseBackoff(cfg.Backoff, cfg.BackoffBase, cfg.BackoffMax)
	if err != nil {
		return nil, err
	}

	return []webhook.Option{
		webhook.WithCeiling(cfg.Ceiling),
		webhook.WithConcurrency(cfg.Concurrency),
		webhook.WithTimeout(cfg.Timeout),
		webhook.WithBackoff(backoff),
	}, nil
}

func scanOptions(cfg config.Config, n config.Network) []chainscan.Option {
	opts := []chainscan.Option{chainscan.WithMaxBlocksPerTick(cfg.MaxBlocksPerTick)}
	if n.StartHeight != nil {
		opts = append(opts, chainscan.WithStartHeight(*n.StartHeight))
	}

	if len(n.Kinds) > 0 {
		opts = append(opts, chainscan.WithKinds(n.Kinds...))
	}

	return opts
}

// New wires the gateway. Connections listed in networks are saved before the
// coordinator reads them.
func New(ctx context.Context, cfg config.Config, networks config.Networks, opts ...Option) (_ *App, err error) {
	o := options{
		factory: blockchain.NewFactory(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{}
	defer func() {
		if err != nil {
			for i := len(a.closers) - 1; i >= 0; i-- {
				_ = a.closers[i]()
			}
		}
	}()

	store, err := a.initStore(ctx, cfg, &o)
	if err != nil {
		return nil, err
	}

	items, err := a.initItemStorage(ctx, cfg, store)
	if err != nil {
		return nil, err
	}

	if err := seedConnections(ctx, store, networks); err != nil {
		return nil, err
	}

	webhookOpts, err := webhookOptions(cfg.Webhook)
	if err != nil {
		return nil, err
	}

	var (
		coordinator   = failover.New(store, o.factory, failoverOptions(networks)...)
		dispatcher    = webhook.New(items, store, append(webhookOpts, o.webhook...)...)
		confirmations = confirmation.New(store, dispatcher)
		registry      = subscription.New(store, store, coordinator)
		sender        = scheduledtx.New(store, store, coordinator, dispatcher, registry)
	)

	scanned := make([]gateway.Network, 0, len(networks.Networks))
	for _, n := range networks.Networks {
		scanned = append(scanned, gateway.Network{
			Key:     n.NetworkKey,
			Scanner: chainscan.New(n.NetworkKey, coordinator, store, store, confirmations, scanOptions(cfg, n)...),
		})
	}

	engine := gateway.New(scanned, confirmations, dispatcher,
		gateway.WithScanInterval(cfg.Intervals.Scan),
		gateway.WithDrainInterval(cfg.Intervals.Drain),
		gateway.WithSender(sender, cfg.Intervals.Send),
		gateway.WithStatistics(coordinator, cfg.Intervals.Statistics),
		gateway.WithLocker(store, cfg.LockTTL),
	)

	a.coordinator = coordinator
	a.Services = cli.Services{
		Engine:      engine,
		Registry:    registry,
		Scheduler:   sender,
		Connections: store,
		Owners:      store,
	}

	return a, nil
}
