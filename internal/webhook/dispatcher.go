// Package webhook queues notifications and delivers them to the webhook URL
// of their project. Delivery is at least once: every attempt is recorded on
// the item, items that keep failing end up FAILED and delivered items end up
// SENT. Both states are terminal.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/sync/errgroup"

	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/logger"
	httpclient "github.com/gabapcia/blockgate/internal/pkg/transport/http"
)

const (
	// HeaderDelivery carries the item ID so receivers can drop duplicates.
	HeaderDelivery = "X-Blockgate-Delivery"

	defaultCeiling     = 5
	defaultBatchSize   = 100
	defaultConcurrency = 8
	defaultTimeout     = 10 * time.Second

	maxReasonBody = 256

	meterName = "github.com/gabapcia/blockgate/internal/webhook"
)

// ErrMissingWebhookURL is recorded as the failure reason of items whose
// project has no webhook URL.
var ErrMissingWebhookURL = errors.New("project has no webhook url")

// Report summarizes one Drain.
type Report struct {
	Sent     int
	Retrying int
	Failed   int
	Deferred int
}

// Dispatcher queues and delivers webhook action items.
type Dispatcher interface {
	// Enqueue stores items for delivery. Items whose ID is already queued
	// are ignored, so enqueuing the same event twice delivers it once.
	Enqueue(ctx context.Context, items []model.WebhookActionItem) error

	// Drain tries to deliver one batch of the pending items of key.
	Drain(ctx context.Context, key model.NetworkKey) (Report, error)
}

type config struct {
	ceiling       int
	batchSize     int
	concurrency   int
	timeout       time.Duration
	backoff       Backoff
	client        *retryablehttp.Client
	now           func() time.Time
	meterProvider metric.MeterProvider
}

// Option configures the Dispatcher built by New.
type Option func(*config)

// WithCeiling sets how many failed attempts turn an item FAILED.
func WithCeiling(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.ceiling = n
		}
	}
}

// WithBatchSize bounds how many items one Drain loads.
func WithBatchSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// WithConcurrency bounds how many deliveries run at once.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithTimeout bounds each POST.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithBackoff delays retries of failed items. Without it every pending item
// is attempted on every Drain.
func WithBackoff(b Backoff) Option {
	return func(c *config) {
		c.backoff = b
	}
}

// WithHTTPClient replaces the HTTP client. It should not retry on its own.
func WithHTTPClient(client *retryablehttp.Client) Option {
	return func(c *config) {
		c.client = client
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

type dispatcher struct {
	items    ItemStorage
	projects ProjectStorage
	client   *retryablehttp.Client

	ceiling     int
	batchSize   int
	concurrency int
	backoff     Backoff
	now         func() time.Time

	deliveries metric.Int64Counter
}

var _ Dispatcher = (*dispatcher)(nil)

func (d *dispatcher) Enqueue(ctx context.Context, items []model.WebhookActionItem) error {
	if len(items) == 0 {
		return nil
	}

	if err := d.items.InsertItems(ctx, items); err != nil {
		return fmt.Errorf("insert webhook items: %w", err)
	}

	return nil
}

// failed returns item with one more failed attempt. Items that stay
// CREATED are deferred by the backoff.
func (d *dispatcher) failed(item model.WebhookActionItem, reason string) model.WebhookActionItem {
	next := item.RecordFailure(d.now(), reason, d.ceiling)
	if d.backoff == nil || next.Terminal() {
		return next
	}

	return next.RetryAfter(next.LastFailedAt.Add(d.backoff(next.FailedCount)))
}

// post sends the payload of item to url. A nil error means a 2xx answer.
func (d *dispatcher) post(ctx context.Context, url string, item model.WebhookActionItem) error {
	body, err := json.Marshal(item.Payload())
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderDelivery, item.ID)

	resp, err := d.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxReasonBody))
	if len(snippet) == 0 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
}

// deliver attempts item once and stores the outcome.
func (d *dispatcher) deliver(ctx context.Context, item model.WebhookActionItem, project model.Project, projectErr error, report *counters) {
	ctx = logger.Derive(ctx, "webhook.id", item.ID, "subscription.id", item.SubscriptionID)

	err := projectErr
	if err == nil && project.WebhookURL == "" {
		err = ErrMissingWebhookURL
	}
	if err == nil {
		err = d.post(ctx, project.WebhookURL, item)
	}

	var next model.WebhookActionItem
	if err == nil {
		next = item.Delivered()
	} else {
		next = d.failed(item, err.Error())
	}

	if updateErr := d.items.UpdateItem(ctx, item, next); updateErr != nil {
		if errors.Is(updateErr, ErrItemNotPending) {
			logger.Debug(ctx, "webhook item was settled concurrently")
			return
		}

		logger.Error(ctx, "failed to store webhook delivery outcome", "webhook.status", next.Status, "error", updateErr)
		return
	}

	outcome := "sent"
	switch next.Status {
	case model.WebhookSent:
		report.sent.Add(1)
	case model.WebhookFailed:
		outcome = "failed"
		report.failed.Add(1)
		logger.Warn(ctx, "webhook delivery failed permanently", "webhook.failed_count", next.FailedCount, "error", err)
	default:
		outcome = "retry"
		report.retrying.Add(1)
		logger.Info(ctx, "webhook delivery failed", "webhook.failed_count", next.FailedCount, "error", err)
	}

	d.deliveries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("network.key", item.Key().String()),
		attribute.String("outcome", outcome),
	))
}

type counters struct {
	sent, retrying, failed atomic.Int64
}

type projectResult struct {
	project model.Project
	err     error
}

// resolveProjects loads every project referenced by items once. Unknown
// projects are reported per item; other storage errors abort the drain.
func (d *dispatcher) resolveProjects(ctx context.Context, items []model.WebhookActionItem) (map[string]projectResult, error) {
	projects := make(map[string]projectResult)
	for _, item := range items {
		if _, ok := projects[item.ProjectID]; ok {
			continue
		}

		project, err := d.projects.GetProject(ctx, item.ProjectID)
		if err != nil && !errors.Is(err, model.ErrProjectNotFound) {
			return nil, fmt.Errorf("get project %s: %w", item.ProjectID, err)
		}

		projects[item.ProjectID] = projectResult{project: project, err: err}
	}

	return projects, nil
}

func (d *dispatcher) Drain(ctx context.Context, key model.NetworkKey) (Report, error) {
	ctx = logger.Derive(ctx, "network.key", key.String())

	now := d.now()
	items, err := d.items.ListPendingItems(ctx, key, now, d.batchSize)
	if err != nil {
		return Report{}, fmt.Errorf("list pending webhook items: %w", err)
	}

	var (
		report Report
		tally  counters
		ready  = make([]model.WebhookActionItem, 0, len(items))
	)
	for _, item := range items {
		if item.Terminal() {
			continue
		}
		if item.NextAttempt().After(now) {
			report.Deferred++
			continue
		}
		ready = append(ready, item)
	}

	if len(ready) == 0 {
		return report, nil
	}

	projects, err := d.resolveProjects(ctx, ready)
	if err != nil {
		return report, err
	}

	var g errgroup.Group
	g.SetLimit(d.concurrency)
	for _, item := range ready {
		resolved := projects[item.ProjectID]
		g.Go(func() error {
			d.deliver(ctx, item, resolved.project, resolved.err, &tally)
			return nil
		})
	}
	_ = g.Wait()

	report.Sent = int(tally.sent.Load())
	report.Retrying = int(tally.retrying.Load())
	report.Failed = int(tally.failed.Load())

	return report, nil
}

// New returns a Dispatcher storing items in items and resolving webhook
// URLs through projects. The default HTTP client never retries, so every
// attempt shows up in the item's failure history.
func New(items ItemStorage, projects ProjectStorage, opts ...Option) *dispatcher {
	cfg := config{
		ceiling:       defaultCeiling,
		batchSize:     defaultBatchSize,
		concurrency:   defaultConcurrency,
		timeout:       defaultTimeout,
		now:           time.Now,
		meterProvider: otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.client == nil {
		cfg.client = httpclient.NewClient(
			httpclient.WithTimeout(cfg.timeout),
			httpclient.WithRetryMax(0),
			httpclient.WithPassthroughErrors(),
		)
	}

	deliveries, err := cfg.meterProvider.Meter(meterName).Int64Counter(
		"blockgate.webhook.deliveries",
		metric.WithDescription("Webhook delivery attempts by outcome"),
	)
	if err != nil {
		deliveries, _ = noop.NewMeterProvider().Meter(meterName).Int64Counter("blockgate.webhook.deliveries")
	}

	return &dispatcher{
		items:       items,
		projects:    projects,
		client:      cfg.client,
		ceiling:     cfg.ceiling,
		batchSize:   cfg.batchSize,
		concurrency: cfg.concurrency,
		backoff:     cfg.backoff,
		now:         cfg.now,
		deliveries:  deliveries,
	}
}
