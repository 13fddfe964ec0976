package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/webhook"
)

const (
	insertItemSQL = `
		INSERT INTO webhook_action_items (id, blockchain_id, network_id, status, failed_count, created_at, next_attempt_at, item)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`

	listPendingItemsSQL = `
		SELECT item FROM webhook_action_items
		WHERE blockchain_id = $1 AND network_id = $2 AND status = 'CREATED' AND next_attempt_at <= $3
		ORDER BY next_attempt_at, id
		LIMIT $4`

	updateItemSQL = `
		UPDATE webhook_action_items SET status = $2, failed_count = $3, next_attempt_at = $4, item = $5
		WHERE id = $1 AND status = 'CREATED' AND failed_count = $6`
)

// InsertItems inserts every item in one batch. Known IDs are ignored.
func (c *client) InsertItems(ctx context.Context, items []model.WebhookActionItem) error {
	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return err
		}

		batch.Queue(insertItemSQL, item.ID, item.BlockchainID, item.NetworkID, string(item.Status), item.FailedCount, item.CreatedAt, item.NextAttempt(), raw)
	}

	if err := c.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert items: %w", err)
	}

	return nil
}

func (c *client) ListPendingItems(ctx context.Context, key model.NetworkKey, now time.Time, limit int) ([]model.WebhookActionItem, error) {
	rows, err := c.pool.Query(ctx, listPendingItemsSQL, key.BlockchainID, key.NetworkID, now, limit)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.WebhookActionItem, error) {
		var (
			raw  []byte
			item model.WebhookActionItem
		)
		if err := row.Scan(&raw); err != nil {
			return item, err
		}

		return item, json.Unmarshal(raw, &item)
	})
}

// UpdateItem replaces an item with an UPDATE conditioned on its status and
// failure count.
func (c *client) UpdateItem(ctx context.Context, prev, next model.WebhookActionItem) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return err
	}

	tag, err := c.pool.Exec(ctx, updateItemSQL, prev.ID, string(next.Status), next.FailedCount, next.NextAttempt(), raw, prev.FailedCount)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return webhook.ErrItemNotPending
	}

	return nil
}

var _ webhook.ItemStorage = new(client)
