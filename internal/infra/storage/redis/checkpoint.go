package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/blockgate/internal/chainscan"
	"github.com/gabapcia/blockgate/internal/model"
)

// chainscanKeyPrefix is the namespace prefix for all keys related to the chain scanner.
const chainscanKeyPrefix = "chainscan"

// chainscanCheckpointKey constructs the Redis key used to store the last processed block
// height of a network. The format is:
//
//	"chainscan:checkpoint:<blockchain>:<network>"
func chainscanCheckpointKey(key model.NetworkKey) string {
	return fmt.Sprintf("%s:checkpoint:%s", chainscanKeyPrefix, key)
}

// LoadCheckpoint retrieves the checkpoint of the network.
//
// If no checkpoint exists yet, it returns chainscan.ErrNoCheckpointFound.
func (c *client) LoadCheckpoint(ctx context.Context, key model.NetworkKey) (uint64, error) {
	val, err := c.conn.Get(ctx, chainscanCheckpointKey(key)).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = chainscan.ErrNoCheckpointFound
		}

		return 0, err
	}

	return val, nil
}

// CreateCheckpoint stores the first checkpoint of the network with SET NX.
func (c *client) CreateCheckpoint(ctx context.Context, key model.NetworkKey, height uint64) error {
	ok, err := c.conn.SetNX(ctx, chainscanCheckpointKey(key), height, 0).Result()
	if err != nil {
		return err
	}

	if !ok {
		return chainscan.ErrCheckpointConflict
	}

	return nil
}

// SaveCheckpoint moves the checkpoint from prev to next inside a WATCH
// transaction, so a concurrent move by another scanner is detected.
func (c *client) SaveCheckpoint(ctx context.Context, key model.NetworkKey, prev, next uint64) error {
	redisKey := chainscanCheckpointKey(key)

	err := c.conn.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, redisKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return chainscan.ErrCheckpointConflict
			}
			return err
		}

		if current != strconv.FormatUint(prev, 10) {
			return chainscan.ErrCheckpointConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return pipe.Set(ctx, redisKey, next, 0).Err()
		})
		return err
	}, redisKey)

	if errors.Is(err, redis.TxFailedErr) {
		return chainscan.ErrCheckpointConflict
	}

	return err
}

// Compile-time assertion to ensure client implements the CheckpointStorage interface.
var _ chainscan.CheckpointStorage = new(client)
