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
	"github.com/gabapcia/blockgate/internal/scheduledtx"
)

const (
	scheduledTxKeyPrefix = "scheduledtx"

	// scheduledTxPendingKey is the sorted set of PENDING transaction IDs
	// scored by due time in unix milliseconds.
	scheduledTxPendingKey = scheduledTxKeyPrefix + ":pending"
)

// errNotSending is returned when a release or finish targets a transaction
// that is not SENDING.
var errNotSending = errors.New("scheduled tx is not sending")

func scheduledTxKey(id string) string {
	return fmt.Sprintf("%s:%s", scheduledTxKeyPrefix, id)
}

// SaveTx stores a PENDING transaction and indexes it by due time.
func (c *client) SaveTx(ctx context.Context, tx model.ScheduledTx) error {
	due, err := tx.DueAt()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(tx)
	if err != nil {
		return err
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, scheduledTxKey(tx.ID), raw, 0)
		pipe.ZAdd(ctx, scheduledTxPendingKey, redis.Z{Score: float64(due.UnixMilli()), Member: tx.ID})
		return nil
	})
	return err
}

func (c *client) ListDue(ctx context.Context, now time.Time, limit int) ([]model.ScheduledTx, error) {
	ids, err := c.conn.ZRangeByScore(ctx, scheduledTxPendingKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.UnixMilli(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = scheduledTxKey(id)
	}

	return mgetJSON[model.ScheduledTx](ctx, c.conn, keys)
}

// transition moves a transaction from one status to another inside a WATCH
// transaction. wrong is returned when the stored status is not from.
func (c *client) transition(ctx context.Context, id string, from model.ScheduledTxStatus, wrong error, apply func(*model.ScheduledTx), index func(redis.Pipeliner, model.ScheduledTx) error) error {
	key := scheduledTxKey(id)

	err := c.conn.Watch(ctx, func(rtx *redis.Tx) error {
		tx, err := getJSON[model.ScheduledTx](ctx, rtx, key, scheduledtx.ErrScheduledTxNotFound)
		if err != nil {
			return err
		}

		if tx.Status != from {
			return wrong
		}

		apply(&tx)
		raw, err := json.Marshal(tx)
		if err != nil {
			return err
		}

		_, err = rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, 0)
			return index(pipe, tx)
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return wrong
	}

	return err
}

func (c *client) ClaimTx(ctx context.Context, id string) error {
	return c.transition(ctx, id, model.ScheduledTxPending, scheduledtx.ErrAlreadyClaimed,
		func(tx *model.ScheduledTx) { tx.Status = model.ScheduledTxSending },
		func(pipe redis.Pipeliner, tx model.ScheduledTx) error {
			return pipe.ZRem(ctx, scheduledTxPendingKey, tx.ID).Err()
		},
	)
}

func (c *client) ReleaseTx(ctx context.Context, id string) error {
	return c.transition(ctx, id, model.ScheduledTxSending, errNotSending,
		func(tx *model.ScheduledTx) { tx.Status = model.ScheduledTxPending },
		func(pipe redis.Pipeliner, tx model.ScheduledTx) error {
			due, err := tx.DueAt()
			if err != nil {
				return err
			}
			return pipe.ZAdd(ctx, scheduledTxPendingKey, redis.Z{Score: float64(due.UnixMilli()), Member: tx.ID}).Err()
		},
	)
}

func (c *client) FinishTx(ctx context.Context, id string, status model.ScheduledTxStatus, txHash string) error {
	return c.transition(ctx, id, model.ScheduledTxSending, errNotSending,
		func(tx *model.ScheduledTx) {
			tx.Status = status
			tx.TxHash = txHash
		},
		func(redis.Pipeliner, model.ScheduledTx) error { return nil },
	)
}

var _ scheduledtx.Storage = new(client)
