// Package memory implements every storage port of the gateway in process
// memory. It backs local runs and the engine tests; nothing survives a
// restart.
package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/blockgate/internal/chainscan"
	"github.com/gabapcia/blockgate/internal/confirmation"
	"github.com/gabapcia/blockgate/internal/failover"
	"github.com/gabapcia/blockgate/internal/gateway"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/scheduledtx"
	"github.com/gabapcia/blockgate/internal/subscription"
	"github.com/gabapcia/blockgate/internal/webhook"
)

var (
	errConnectionNotFound = errors.New("transport connection not found")
	errNotSending         = errors.New("scheduled tx is not sending")
)

type lock struct {
	token     string
	expiresAt time.Time
}

// Store keeps every record behind one mutex.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	connections   map[string]model.TransportConnection
	checkpoints   map[model.NetworkKey]uint64
	subscriptions map[string]model.Subscription
	rechecks      map[model.NetworkKey]map[string]model.SubscriptionBlockRecheck
	items         map[string]model.WebhookActionItem
	scheduled     map[string]model.ScheduledTx
	projects      map[string]model.Project
	clients       map[string]model.Client
	locks         map[string]lock
}

// Option configures the Store built by New.
type Option func(*Store)

// WithClock sets the clock lock expirations are measured with.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		now:           time.Now,
		connections:   make(map[string]model.TransportConnection),
		checkpoints:   make(map[model.NetworkKey]uint64),
		subscriptions: make(map[string]model.Subscription),
		rechecks:      make(map[model.NetworkKey]map[string]model.SubscriptionBlockRecheck),
		items:         make(map[string]model.WebhookActionItem),
		scheduled:     make(map[string]model.ScheduledTx),
		projects:      make(map[string]model.Project),
		clients:       make(map[string]model.Client),
		locks:         make(map[string]lock),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Connections

func (s *Store) SaveConnection(_ context.Context, conn model.TransportConnection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.connections[conn.ID]; ok {
		conn.Health = existing.Health
	}
	s.connections[conn.ID] = conn
	return nil
}

func (s *Store) ListConnections(_ context.Context, key model.NetworkKey) ([]model.TransportConnection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var conns []model.TransportConnection
	for _, conn := range s.connections {
		if conn.Key() == key {
			conns = append(conns, conn)
		}
	}

	slices.SortFunc(conns, func(a, b model.TransportConnection) int { return cmp.Compare(a.ID, b.ID) })
	return conns, nil
}

func (s *Store) UpdateConnectionHealth(_ context.Context, id string, prev, next model.ConnectionHealth) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conn, ok := s.connections[id]
	if !ok {
		return errConnectionNotFound
	}

	if !conn.Health.Equal(prev) {
		return failover.ErrHealthConflict
	}

	conn.Health = next
	s.connections[id] = conn
	return nil
}

// Checkpoints

func (s *Store) LoadCheckpoint(_ context.Context, key model.NetworkKey) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	height, ok := s.checkpoints[key]
	if !ok {
		return 0, chainscan.ErrNoCheckpointFound
	}

	return height, nil
}

func (s *Store) CreateCheckpoint(_ context.Context, key model.NetworkKey, height uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.checkpoints[key]; ok {
		return chainscan.ErrCheckpointConflict
	}

	s.checkpoints[key] = height
	return nil
}

func (s *Store) SaveCheckpoint(_ context.Context, key model.NetworkKey, prev, next uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.checkpoints[key]; !ok || current != prev {
		return chainscan.ErrCheckpointConflict
	}

	s.checkpoints[key] = next
	return nil
}

// Subscriptions

func (s *Store) SaveSubscription(_ context.Context, sub model.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub.Topics = slices.Clone(sub.Topics)
	s.subscriptions[sub.ID] = sub
	return nil
}

func (s *Store) GetSubscription(_ context.Context, id string) (model.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subscriptions[id]
	if !ok {
		return model.Subscription{}, subscription.ErrSubscriptionNotFound
	}

	return sub, nil
}

func (s *Store) FindEligible(_ context.Context, key model.NetworkKey, kind model.SubscriptionKind, matchKeys []string) ([]model.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]struct{}, len(matchKeys))
	for _, matchKey := range matchKeys {
		wanted[model.NormalizeMatchKey(matchKey)] = struct{}{}
	}

	var subs []model.Subscription
	for _, sub := range s.subscriptions {
		if sub.Key() != key || sub.Kind != kind || !sub.Eligible() {
			continue
		}
		if _, ok := wanted[sub.MatchKey()]; ok {
			subs = append(subs, sub)
		}
	}

	slices.SortFunc(subs, func(a, b model.Subscription) int { return cmp.Compare(a.ID, b.ID) })
	return subs, nil
}

func (s *Store) setOwnerActive(match func(model.Subscription) bool, set func(*model.Subscription)) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for id, sub := range s.subscriptions {
		if !match(sub) {
			continue
		}

		set(&sub)
		s.subscriptions[id] = sub
		n++
	}

	return n
}

func (s *Store) SetClientActive(_ context.Context, clientID string, active bool) (int, error) {
	return s.setOwnerActive(
		func(sub model.Subscription) bool { return sub.ClientID == clientID },
		func(sub *model.Subscription) { sub.IsClientActive = active },
	), nil
}

func (s *Store) SetProjectActive(_ context.Context, projectID string, active bool) (int, error) {
	return s.setOwnerActive(
		func(sub model.Subscription) bool { return sub.ProjectID == projectID },
		func(sub *model.Subscription) { sub.IsProjectActive = active },
	), nil
}

// Rechecks

func (s *Store) UpsertRecheck(_ context.Context, r model.SubscriptionBlockRecheck) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID, ok := s.rechecks[r.Key()]
	if !ok {
		byID = make(map[string]model.SubscriptionBlockRecheck)
		s.rechecks[r.Key()] = byID
	}

	byID[r.ID] = r
	return nil
}

func (s *Store) ListDueRechecks(_ context.Context, key model.NetworkKey, height uint64, after model.RecheckCursor, limit int) ([]model.SubscriptionBlockRecheck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []model.SubscriptionBlockRecheck
	for _, r := range s.rechecks[key] {
		if r.InvokeOnBlockHeight <= height && after.Precedes(r.InvokeOnBlockHeight, r.ID) {
			due = append(due, r)
		}
	}

	slices.SortFunc(due, func(a, b model.SubscriptionBlockRecheck) int {
		return cmp.Or(cmp.Compare(a.InvokeOnBlockHeight, b.InvokeOnBlockHeight), cmp.Compare(a.ID, b.ID))
	})

	if len(due) > limit {
		due = due[:limit]
	}

	return due, nil
}

func (s *Store) DeleteRecheck(_ context.Context, key model.NetworkKey, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rechecks[key], id)
	return nil
}

// Webhook items

func (s *Store) InsertItems(_ context.Context, items []model.WebhookActionItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		if _, ok := s.items[item.ID]; !ok {
			s.items[item.ID] = item
		}
	}

	return nil
}

func (s *Store) ListPendingItems(_ context.Context, key model.NetworkKey, now time.Time, limit int) ([]model.WebhookActionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []model.WebhookActionItem
	for _, item := range s.items {
		if item.Key() == key && item.Status == model.WebhookCreated && !item.NextAttempt().After(now) {
			pending = append(pending, item)
		}
	}

	slices.SortFunc(pending, func(a, b model.WebhookActionItem) int {
		return cmp.Or(a.NextAttempt().Compare(b.NextAttempt()), cmp.Compare(a.ID, b.ID))
	})

	if len(pending) > limit {
		pending = pending[:limit]
	}

	return pending, nil
}

func (s *Store) UpdateItem(_ context.Context, prev, next model.WebhookActionItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[prev.ID]
	if !ok || stored.Status != model.WebhookCreated || stored.FailedCount != prev.FailedCount {
		return webhook.ErrItemNotPending
	}

	s.items[prev.ID] = next
	return nil
}

// Items returns every stored webhook item, oldest first.
func (s *Store) Items() []model.WebhookActionItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.WebhookActionItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}

	slices.SortFunc(items, func(a, b model.WebhookActionItem) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return items
}

// Scheduled transactions

func (s *Store) SaveTx(_ context.Context, tx model.ScheduledTx) error {
	if _, err := tx.DueAt(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.scheduled[tx.ID] = tx
	return nil
}

func (s *Store) ListDue(_ context.Context, now time.Time, limit int) ([]model.ScheduledTx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type dueTx struct {
		tx  model.ScheduledTx
		due time.Time
	}

	var due []dueTx
	for _, tx := range s.scheduled {
		if tx.Status != model.ScheduledTxPending {
			continue
		}

		at, err := tx.DueAt()
		if err != nil || at.After(now) {
			continue
		}
		due = append(due, dueTx{tx: tx, due: at})
	}

	slices.SortFunc(due, func(a, b dueTx) int {
		return cmp.Or(a.due.Compare(b.due), cmp.Compare(a.tx.ID, b.tx.ID))
	})

	if len(due) > limit {
		due = due[:limit]
	}

	txs := make([]model.ScheduledTx, len(due))
	for i, d := range due {
		txs[i] = d.tx
	}

	return txs, nil
}

func (s *Store) transition(id string, from model.ScheduledTxStatus, wrong error, apply func(*model.ScheduledTx)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.scheduled[id]
	if !ok {
		return scheduledtx.ErrScheduledTxNotFound
	}

	if tx.Status != from {
		return wrong
	}

	apply(&tx)
	s.scheduled[id] = tx
	return nil
}

func (s *Store) ClaimTx(_ context.Context, id string) error {
	return s.transition(id, model.ScheduledTxPending, scheduledtx.ErrAlreadyClaimed, func(tx *model.ScheduledTx) {
		tx.Status = model.ScheduledTxSending
	})
}

func (s *Store) ReleaseTx(_ context.Context, id string) error {
	return s.transition(id, model.ScheduledTxSending, errNotSending, func(tx *model.ScheduledTx) {
		tx.Status = model.ScheduledTxPending
	})
}

func (s *Store) FinishTx(_ context.Context, id string, status model.ScheduledTxStatus, txHash string) error {
	return s.transition(id, model.ScheduledTxSending, errNotSending, func(tx *model.ScheduledTx) {
		tx.Status = status
		tx.TxHash = txHash
	})
}

// GetTx returns a stored scheduled transaction.
func (s *Store) GetTx(_ context.Context, id string) (model.ScheduledTx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.scheduled[id]
	if !ok {
		return model.ScheduledTx{}, scheduledtx.ErrScheduledTxNotFound
	}

	return tx, nil
}

// Owners

func (s *Store) SaveProject(_ context.Context, project model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects[project.ID] = project
	return nil
}

func (s *Store) GetProject(_ context.Context, id string) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return model.Project{}, model.ErrProjectNotFound
	}

	return project, nil
}

func (s *Store) SaveClient(_ context.Context, client model.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients[client.ID] = client
	return nil
}

func (s *Store) GetClient(_ context.Context, id string) (model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[id]
	if !ok {
		return model.Client{}, model.ErrClientNotFound
	}

	return client, nil
}

// Locks

func (s *Store) Acquire(_ context.Context, name, token string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if held, ok := s.locks[name]; ok && held.token != token && now.Before(held.expiresAt) {
		return false, nil
	}

	s.locks[name] = lock{token: token, expiresAt: now.Add(ttl)}
	return true, nil
}

func (s *Store) Release(_ context.Context, name, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if held, ok := s.locks[name]; ok && held.token == token {
		delete(s.locks, name)
	}

	return nil
}

var (
	_ failover.ConnectionStorage    = (*Store)(nil)
	_ chainscan.CheckpointStorage   = (*Store)(nil)
	_ chainscan.SubscriptionStorage = (*Store)(nil)
	_ confirmation.RecheckStorage   = (*Store)(nil)
	_ webhook.ItemStorage           = (*Store)(nil)
	_ webhook.ProjectStorage        = (*Store)(nil)
	_ subscription.Storage          = (*Store)(nil)
	_ subscription.OwnerStorage     = (*Store)(nil)
	_ scheduledtx.Storage           = (*Store)(nil)
	_ scheduledtx.OwnerStorage      = (*Store)(nil)
	_ gateway.Locker                = (*Store)(nil)
)
