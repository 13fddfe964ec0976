// Package gateway runs the periodic work of every configured network:
// scanning new blocks, releasing due rechecks, delivering webhooks and
// firing scheduled transactions.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/logger"
	"github.com/gabapcia/blockgate/internal/pkg/scheduler"
	"github.com/gabapcia/blockgate/internal/webhook"
)

var ErrServiceAlreadyStarted = errors.New("service already started")

const (
	defaultScanInterval  = 5 * time.Second
	defaultDrainInterval = 2 * time.Second
	defaultSendInterval  = 10 * time.Second
	defaultStatsInterval = time.Minute
	defaultLockTTL       = time.Minute
)

// Network is the per-network wiring of the engine.
type Network struct {
	Key     model.NetworkKey
	Scanner Scanner
}

type Service interface {
	Start(ctx context.Context) error
	Close()
}

type config struct {
	scanInterval  time.Duration
	drainInterval time.Duration
	sendInterval  time.Duration
	statsInterval time.Duration
	lockTTL       time.Duration
	locker        Locker
	sender        Sender
	statistics    Statistics
	now           func() time.Time
}

type Option func(*config)

func WithScanInterval(d time.Duration) Option {
	return func(c *config) {
		c.scanInterval = d
	}
}

func WithDrainInterval(d time.Duration) Option {
	return func(c *config) {
		c.drainInterval = d
	}
}

// WithSender enables the scheduled transaction task, run every interval.
func WithSender(s Sender, interval time.Duration) Option {
	return func(c *config) {
		c.sender = s
		c.sendInterval = interval
	}
}

// WithStatistics logs the transport counters of every network each
// interval.
func WithStatistics(s Statistics, interval time.Duration) Option {
	return func(c *config) {
		c.statistics = s
		c.statsInterval = interval
	}
}

// WithLocker makes the scan of a network exclusive across instances sharing
// the locker. Locks expire after ttl if an instance dies mid scan.
func WithLocker(l Locker, ttl time.Duration) Option {
	return func(c *config) {
		c.locker = l
		c.lockTTL = ttl
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

type service struct {
	mu        sync.Mutex
	isStarted bool
	scheduler *scheduler.Scheduler

	networks []Network
	sweeper  Sweeper
	drainer  Drainer

	sender        Sender
	statistics    Statistics
	locker        Locker
	token         string
	scanInterval  time.Duration
	drainInterval time.Duration
	sendInterval  time.Duration
	statsInterval time.Duration
	lockTTL       time.Duration
	now           func() time.Time
}

var _ Service = (*service)(nil)

// scan runs one scan of n followed by a sweep at the height the scan saw.
// The sweep is skipped when the scan fails.
func (s *service) scan(n Network) scheduler.Task {
	lockName := "scan:" + n.Key.String()

	return func(ctx context.Context) error {
		ctx = logger.Derive(ctx, "network.key", n.Key.String())

		acquired, err := s.locker.Acquire(ctx, lockName, s.token, s.lockTTL)
		if err != nil {
			return fmt.Errorf("acquire %s: %w", lockName, err)
		}
		if !acquired {
			logger.Debug(ctx, "network is scanned by another instance")
			return nil
		}
		defer func() {
			if err := s.locker.Release(context.WithoutCancel(ctx), lockName, s.token); err != nil {
				logger.Warn(ctx, "failed to release scan lock", "error", err)
			}
		}()

		height, err := n.Scanner.Scan(ctx)
		if err != nil {
			return fmt.Errorf("scan: %w", err)
		}

		released, err := s.sweeper.Sweep(ctx, n.Key, height)
		if err != nil {
			return fmt.Errorf("sweep at %d: %w", height, err)
		}

		if released > 0 {
			logger.Info(ctx, "rechecks released", "block.height", height, "recheck.count", released)
		}

		return nil
	}
}

func (s *service) drain(key model.NetworkKey) scheduler.Task {
	return func(ctx context.Context) error {
		ctx = logger.Derive(ctx, "network.key", key.String())

		report, err := s.drainer.Drain(ctx, key)
		if err != nil {
			return fmt.Errorf("drain: %w", err)
		}

		if report != (webhook.Report{}) {
			logger.Info(ctx, "webhooks drained",
				"webhook.sent", report.Sent,
				"webhook.retrying", report.Retrying,
				"webhook.failed", report.Failed,
				"webhook.deferred", report.Deferred,
			)
		}

		return nil
	}
}

func (s *service) fireDue(ctx context.Context) error {
	report, err := s.sender.FireDue(ctx, s.now())
	if report.Sent+report.Failed+report.Released > 0 {
		logger.Info(ctx, "scheduled txs fired",
			"scheduledtx.sent", report.Sent,
			"scheduledtx.failed", report.Failed,
			"scheduledtx.released", report.Released,
		)
	}

	return err
}

func (s *service) logStatistics(ctx context.Context) error {
	for _, n := range s.networks {
		stats := s.statistics.Statistics(n.Key)
		logger.Info(ctx, "transport statistics",
			"network.key", n.Key.String(),
			"transport.calls", stats.Calls,
			"transport.total", stats.TotalConnections,
			"transport.healthy", stats.HealthyConnections,
			"transport.unhealthy", stats.UnhealthyConnections,
		)
	}

	return nil
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	sched := scheduler.New()
	for _, n := range s.networks {
		if err := sched.Schedule("scan:"+n.Key.String(), s.scanInterval, s.scan(n)); err != nil {
			return err
		}

		if err := sched.Schedule("drain:"+n.Key.String(), s.drainInterval, s.drain(n.Key)); err != nil {
			return err
		}
	}

	if s.sender != nil {
		if err := sched.Schedule("scheduledtx", s.sendInterval, s.fireDue); err != nil {
			return err
		}
	}

	if s.statistics != nil {
		if err := sched.Schedule("statistics", s.statsInterval, s.logStatistics); err != nil {
			return err
		}
	}

	sched.Start(ctx)

	s.scheduler = sched
	s.isStarted = true

	logger.Info(ctx, "gateway started", "network.count", len(s.networks))
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	s.scheduler = nil
	s.isStarted = false
}

// New returns the engine of networks. sweeper and drainer are shared by
// every network.
func New(networks []Network, sweeper Sweeper, drainer Drainer, opts ...Option) *service {
	cfg := config{
		scanInterval:  defaultScanInterval,
		drainInterval: defaultDrainInterval,
		sendInterval:  defaultSendInterval,
		statsInterval: defaultStatsInterval,
		lockTTL:       defaultLockTTL,
		locker:        nopLocker{},
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		networks:      networks,
		sweeper:       sweeper,
		drainer:       drainer,
		sender:        cfg.sender,
		statistics:    cfg.statistics,
		locker:        cfg.locker,
		token:         uuid.NewString(),
		scanInterval:  cfg.scanInterval,
		drainInterval: cfg.drainInterval,
		sendInterval:  cfg.sendInterval,
		statsInterval: cfg.statsInterval,
		lockTTL:       cfg.lockTTL,
		now:           cfg.now,
	}
}
