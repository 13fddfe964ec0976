// Package scheduledtx broadcasts transactions at their scheduled time and
// reports each outcome to the owning project through a webhook.
//
// A transaction is claimed before it is sent, so it is broadcast at most
// once even when several senders share the same storage.
package scheduledtx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/logger"
	"github.com/gabapcia/blockgate/internal/subscription"
)

const defaultBatchSize = 100

var (
	// ErrInactiveOwner is recorded when the project or the client of a
	// transaction is not active at send time.
	ErrInactiveOwner = errors.New("project or client is inactive")

	// ErrInvalidScheduledTx is returned by Submit for transactions that can
	// never fire.
	ErrInvalidScheduledTx = errors.New("invalid scheduled tx")
)

// Report summarizes one FireDue.
type Report struct {
	Sent     int
	Failed   int
	Released int
}

// Sender fires due scheduled transactions.
type Sender interface {
	// Submit validates tx and stores it as PENDING.
	Submit(ctx context.Context, tx model.ScheduledTx) (model.ScheduledTx, error)

	// FireDue sends every transaction due at now.
	FireDue(ctx context.Context, now time.Time) (Report, error)
}

type config struct {
	batchSize int
	now       func() time.Time
}

// Option configures the Sender built by New.
type Option func(*config)

// WithBatchSize caps how many transactions one FireDue handles.
func WithBatchSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

type sender struct {
	storage    Storage
	owners     OwnerStorage
	adapters   AdapterSource
	dispatcher Dispatcher
	subscriber Subscriber

	batchSize int
	now       func() time.Time
}

var _ Sender = (*sender)(nil)

func (s *sender) Submit(ctx context.Context, tx model.ScheduledTx) (model.ScheduledTx, error) {
	if tx.ProjectID == "" || tx.BlockchainID == "" || tx.NetworkID == "" {
		return model.ScheduledTx{}, fmt.Errorf("%w: project and network are required", ErrInvalidScheduledTx)
	}

	if tx.Tx.Raw == "" && (tx.Tx.To == "" || tx.PrivateKey == "") {
		return model.ScheduledTx{}, fmt.Errorf("%w: either a raw transaction or a recipient and a private key are required", ErrInvalidScheduledTx)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.ScheduledTx{}, err
	}

	tx.ID = id.String()
	tx.Status = model.ScheduledTxPending
	tx.TxHash = ""
	tx.CreatedAt = s.now()

	if _, err := tx.DueAt(); err != nil {
		return model.ScheduledTx{}, errors.Join(ErrInvalidScheduledTx, err)
	}

	if err := s.storage.SaveTx(ctx, tx); err != nil {
		return model.ScheduledTx{}, fmt.Errorf("save scheduled tx: %w", err)
	}

	logger.Info(ctx, "scheduled tx created", "scheduledtx.id", tx.ID, "network.key", tx.Key().String())
	return tx, nil
}

// outcomeItem builds the notification of a finished transaction.
func (s *sender) outcomeItem(tx model.ScheduledTx, project model.Project, status model.ScheduledTxStatus, sent chain.Transaction, reason error) model.WebhookActionItem {
	params := map[string]any{"status": string(status)}
	if reason != nil {
		params["reason"] = reason.Error()
	}
	if sent.Hash != "" {
		params["transaction"] = sent
	}

	return model.WebhookActionItem{
		ID:               model.DeliveryID(tx.ID, sent.Hash, string(status), 0),
		ClientID:         project.ClientID,
		ProjectID:        tx.ProjectID,
		BlockchainID:     tx.BlockchainID,
		NetworkID:        tx.NetworkID,
		MinConfirmations: project.TxMinConfirmations,
		TxHash:           sent.Hash,
		RefID:            tx.ID,
		Type:             model.WebhookTypeScheduledTransaction,
		Params:           params,
		Status:           model.WebhookCreated,
		CreatedAt:        s.now(),
	}
}

// fail marks tx FAILED. When the project is known the failure is notified.
// The status is written even when the notification could not be queued.
func (s *sender) fail(ctx context.Context, tx model.ScheduledTx, project *model.Project, reason error) error {
	logger.Warn(ctx, "scheduled tx failed", "error", reason)

	var errs []error
	if project != nil {
		item := s.outcomeItem(tx, *project, model.ScheduledTxFailed, chain.Transaction{}, reason)
		if err := s.dispatcher.Enqueue(ctx, []model.WebhookActionItem{item}); err != nil {
			errs = append(errs, fmt.Errorf("enqueue failure of %s: %w", tx.ID, err))
		}
	}

	if err := s.storage.FinishTx(ctx, tx.ID, model.ScheduledTxFailed, ""); err != nil {
		errs = append(errs, fmt.Errorf("finish %s: %w", tx.ID, err))
	}

	return errors.Join(errs...)
}

func (s *sender) release(ctx context.Context, tx model.ScheduledTx, cause error) error {
	logger.Warn(ctx, "scheduled tx postponed", "error", cause)

	if err := s.storage.ReleaseTx(ctx, tx.ID); err != nil {
		return fmt.Errorf("release %s: %w", tx.ID, err)
	}

	return nil
}

// watch subscribes to the confirmations of a sent transaction. Failures
// only cost the follow-up notification, so they are logged.
func (s *sender) watch(ctx context.Context, tx model.ScheduledTx, project model.Project, hash string) {
	sub, err := s.subscriber.Subscribe(ctx, subscription.Input{
		ClientID:              project.ClientID,
		ProjectID:             project.ID,
		TransportConnectionID: tx.TransportConnectionID,
		BlockchainID:          tx.BlockchainID,
		NetworkID:             tx.NetworkID,
		Kind:                  model.KindTransactionHash,
		MinConfirmations:      project.TxMinConfirmations,
		TxHash:                hash,
	})
	if err != nil {
		logger.Error(ctx, "failed to watch sent transaction", "error", err)
		return
	}

	logger.Debug(ctx, "watching sent transaction", "subscription.id", sub.ID)
}

// send fires one claimed transaction. It returns the status the transaction
// ended in, PENDING when the claim was released.
func (s *sender) send(ctx context.Context, tx model.ScheduledTx) (model.ScheduledTxStatus, error) {
	project, err := s.owners.GetProject(ctx, tx.ProjectID)
	if errors.Is(err, model.ErrProjectNotFound) {
		return model.ScheduledTxFailed, s.fail(ctx, tx, nil, err)
	}
	if err != nil {
		return model.ScheduledTxPending, errors.Join(err, s.release(ctx, tx, err))
	}

	client, err := s.owners.GetClient(ctx, project.ClientID)
	if errors.Is(err, model.ErrClientNotFound) {
		return model.ScheduledTxFailed, s.fail(ctx, tx, &project, err)
	}
	if err != nil {
		return model.ScheduledTxPending, errors.Join(err, s.release(ctx, tx, err))
	}

	if !project.Active() || !client.Active() {
		return model.ScheduledTxFailed, s.fail(ctx, tx, &project, ErrInactiveOwner)
	}

	adapter, err := s.adapters.ActiveAdapter(ctx, tx.Key())
	if err != nil {
		return model.ScheduledTxPending, s.release(ctx, tx, err)
	}

	sent, err := adapter.SendTransaction(ctx, tx.PrivateKey, tx.Tx)
	if err != nil {
		return model.ScheduledTxFailed, s.fail(ctx, tx, &project, err)
	}

	hash := chain.Hex0x(sent.Hash)
	sent.Hash = hash

	ctx = logger.Derive(ctx, "transaction.hash", hash)

	item := s.outcomeItem(tx, project, model.ScheduledTxSent, sent, nil)
	if err := s.dispatcher.Enqueue(ctx, []model.WebhookActionItem{item}); err != nil {
		logger.Error(ctx, "failed to enqueue sent notification", "error", err)
	}

	var finishErr error
	if err := s.storage.FinishTx(ctx, tx.ID, model.ScheduledTxSent, hash); err != nil {
		finishErr = fmt.Errorf("finish %s: %w", tx.ID, err)
	} else {
		logger.Info(ctx, "scheduled tx sent")
	}

	s.watch(ctx, tx, project, hash)
	return model.ScheduledTxSent, finishErr
}

func (s *sender) FireDue(ctx context.Context, now time.Time) (Report, error) {
	due, err := s.storage.ListDue(ctx, now, s.batchSize)
	if err != nil {
		return Report{}, fmt.Errorf("list due scheduled txs: %w", err)
	}

	var (
		report Report
		errs   []error
	)
	for _, tx := range due {
		txCtx := logger.Derive(ctx, "scheduledtx.id", tx.ID, "network.key", tx.Key().String())

		at, err := tx.DueAt()
		if err != nil {
			logger.Warn(txCtx, "scheduled tx has no valid trigger", "error", err)
			continue
		}
		if at.After(now) {
			continue
		}

		if err := s.storage.ClaimTx(txCtx, tx.ID); err != nil {
			if errors.Is(err, ErrAlreadyClaimed) {
				logger.Debug(txCtx, "scheduled tx claimed elsewhere")
				continue
			}
			errs = append(errs, fmt.Errorf("claim %s: %w", tx.ID, err))
			continue
		}

		status, err := s.send(txCtx, tx)
		switch status {
		case model.ScheduledTxSent:
			report.Sent++
		case model.ScheduledTxFailed:
			report.Failed++
		default:
			report.Released++
		}

		if err != nil {
			errs = append(errs, err)
		}
	}

	return report, errors.Join(errs...)
}

// New returns a Sender. subscriber is used to watch the confirmations of
// sent transactions.
func New(storage Storage, owners OwnerStorage, adapters AdapterSource, dispatcher Dispatcher, subscriber Subscriber, opts ...Option) *sender {
	cfg := config{
		batchSize: defaultBatchSize,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &sender{
		storage:    storage,
		owners:     owners,
		adapters:   adapters,
		dispatcher: dispatcher,
		subscriber: subscriber,
		batchSize:  cfg.batchSize,
		now:        cfg.now,
	}
}
