package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/webhook"
)

const webhookKeyPrefix = "webhook"

// insertItemScript stores an item only if its key is free and, when it was
// stored, adds it to the pending set of its network.
//
//	KEYS[1] item key, KEYS[2] pending set
//	ARGV[1] item JSON, ARGV[2] score, ARGV[3] item ID
var insertItemScript = redis.NewScript(`
if redis.call("SET", KEYS[1], ARGV[1], "NX") then
	redis.call("ZADD", KEYS[2], ARGV[2], ARGV[3])
	return 1
end
return 0
`)

func webhookItemKey(id string) string {
	return fmt.Sprintf("%s:item:%s", webhookKeyPrefix, id)
}

// webhookPendingKey is the sorted set of CREATED item IDs of a network,
// scored by the unix millis of their next attempt.
func webhookPendingKey(key model.NetworkKey) string {
	return fmt.Sprintf("%s:pending:%s", webhookKeyPrefix, key)
}

func (c *client) InsertItems(ctx context.Context, items []model.WebhookActionItem) error {
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return err
		}

		keys := []string{webhookItemKey(item.ID), webhookPendingKey(item.Key())}
		if err := insertItemScript.Run(ctx, c.conn, keys, raw, item.NextAttempt().UnixMilli(), item.ID).Err(); err != nil {
			return fmt.Errorf("insert item %s: %w", item.ID, err)
		}
	}

	return nil
}

func (c *client) ListPendingItems(ctx context.Context, key model.NetworkKey, now time.Time, limit int) ([]model.WebhookActionItem, error) {
	ids, err := c.conn.ZRangeByScore(ctx, webhookPendingKey(key), &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.UnixMilli(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = webhookItemKey(id)
	}

	return mgetJSON[model.WebhookActionItem](ctx, c.conn, keys)
}

// UpdateItem replaces prev with next while the stored item is still CREATED
// with prev's failure count. Missing items count as not pending. The pending
// set is rescored or cleaned in the same transaction.
func (c *client) UpdateItem(ctx context.Context, prev, next model.WebhookActionItem) error {
	key := webhookItemKey(prev.ID)

	err := c.conn.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := getJSON[model.WebhookActionItem](ctx, tx, key, webhook.ErrItemNotPending)
		if err != nil {
			return err
		}

		if stored.Status != model.WebhookCreated || stored.FailedCount != prev.FailedCount {
			return webhook.ErrItemNotPending
		}

		raw, err := json.Marshal(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, 0)
			if next.Status == model.WebhookCreated {
				pipe.ZAdd(ctx, webhookPendingKey(next.Key()), redis.Z{Score: float64(next.NextAttempt().UnixMilli()), Member: next.ID})
			} else {
				pipe.ZRem(ctx, webhookPendingKey(next.Key()), next.ID)
			}
			return nil
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return webhook.ErrItemNotPending
	}

	return err
}

var _ webhook.ItemStorage = new(client)
