package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/blockgate/internal/confirmation"
	"github.com/gabapcia/blockgate/internal/model"
)

const recheckKeyPrefix = "recheck"

// recheckDueKey is the sorted set of recheck IDs of a network scored by the
// height they are due at.
func recheckDueKey(key model.NetworkKey) string {
	return fmt.Sprintf("%s:due:%s", recheckKeyPrefix, key)
}

// recheckDataKey is the hash holding the JSON record of every recheck of a
// network, by ID.
func recheckDataKey(key model.NetworkKey) string {
	return fmt.Sprintf("%s:data:%s", recheckKeyPrefix, key)
}

func (c *client) UpsertRecheck(ctx context.Context, r model.SubscriptionBlockRecheck) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, recheckDataKey(r.Key()), r.ID, raw)
		pipe.ZAdd(ctx, recheckDueKey(r.Key()), redis.Z{Score: float64(r.InvokeOnBlockHeight), Member: r.ID})
		return nil
	})
	return err
}

// ListDueRechecks reads the due IDs from the sorted set and their records
// from the hash. Members sharing a score are ordered by ID, so the cursor is
// resumed from its score and the members up to its ID are skipped. IDs whose
// record is gone are dropped from the result.
func (c *client) ListDueRechecks(ctx context.Context, key model.NetworkKey, height uint64, after model.RecheckCursor, limit int) ([]model.SubscriptionBlockRecheck, error) {
	if after.InvokeOnBlockHeight > height {
		return nil, nil
	}

	var (
		ids    []string
		offset int64
	)
	for len(ids) < limit {
		page, err := c.conn.ZRangeByScoreWithScores(ctx, recheckDueKey(key), &redis.ZRangeBy{
			Min:    strconv.FormatUint(after.InvokeOnBlockHeight, 10),
			Max:    strconv.FormatUint(height, 10),
			Offset: offset,
			Count:  int64(limit),
		}).Result()
		if err != nil {
			return nil, err
		}

		for _, z := range page {
			id, _ := z.Member.(string)
			if after.Precedes(uint64(z.Score), id) && len(ids) < limit {
				ids = append(ids, id)
			}
		}

		if len(page) < limit {
			break
		}
		offset += int64(len(page))
	}

	if len(ids) == 0 {
		return nil, nil
	}

	vals, err := c.conn.HMGet(ctx, recheckDataKey(key), ids...).Result()
	if err != nil {
		return nil, err
	}

	rechecks := make([]model.SubscriptionBlockRecheck, 0, len(vals))
	for i, val := range vals {
		s, ok := val.(string)
		if !ok {
			continue
		}

		var r model.SubscriptionBlockRecheck
		if err := json.Unmarshal([]byte(s), &r); err != nil {
			return nil, fmt.Errorf("decode recheck %s: %w", ids[i], err)
		}
		rechecks = append(rechecks, r)
	}

	return rechecks, nil
}

func (c *client) DeleteRecheck(ctx context.Context, key model.NetworkKey, id string) error {
	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, recheckDueKey(key), id)
		pipe.HDel(ctx, recheckDataKey(key), id)
		return nil
	})
	return err
}

var _ confirmation.RecheckStorage = new(client)
