package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/blockgate/internal/failover"
	"github.com/gabapcia/blockgate/internal/model"
)

const connectionKeyPrefix = "connection"

// errConnectionNotFound is returned internally when a health update targets
// a connection that was removed.
var errConnectionNotFound = errors.New("transport connection not found")

// connectionKey is the key of one connection record: "connection:<id>".
func connectionKey(id string) string {
	return fmt.Sprintf("%s:%s", connectionKeyPrefix, id)
}

// connectionNetworkKey is the set of connection IDs of a network:
// "connection:network:<blockchain>:<network>".
func connectionNetworkKey(key model.NetworkKey) string {
	return fmt.Sprintf("%s:network:%s", connectionKeyPrefix, key)
}

// SaveConnection creates or replaces conn. The stored health is kept when
// the connection already exists.
func (c *client) SaveConnection(ctx context.Context, conn model.TransportConnection) error {
	existing, err := getJSON[model.TransportConnection](ctx, c.conn, connectionKey(conn.ID), errConnectionNotFound)
	switch {
	case err == nil:
		conn.Health = existing.Health
	case !errors.Is(err, errConnectionNotFound):
		return err
	}

	raw, err := json.Marshal(conn)
	if err != nil {
		return err
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, connectionKey(conn.ID), raw, 0)
		pipe.SAdd(ctx, connectionNetworkKey(conn.Key()), conn.ID)
		return nil
	})
	return err
}

// ListConnections returns every connection of the network.
func (c *client) ListConnections(ctx context.Context, key model.NetworkKey) ([]model.TransportConnection, error) {
	ids, err := c.conn.SMembers(ctx, connectionNetworkKey(key)).Result()
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = connectionKey(id)
	}

	return mgetJSON[model.TransportConnection](ctx, c.conn, keys)
}

// UpdateConnectionHealth swaps the health of a connection inside a WATCH
// transaction. Any concurrent change is reported as failover.ErrHealthConflict.
func (c *client) UpdateConnectionHealth(ctx context.Context, id string, prev, next model.ConnectionHealth) error {
	key := connectionKey(id)

	err := c.conn.Watch(ctx, func(tx *redis.Tx) error {
		conn, err := getJSON[model.TransportConnection](ctx, tx, key, errConnectionNotFound)
		if err != nil {
			return err
		}

		if !conn.Health.Equal(prev) {
			return failover.ErrHealthConflict
		}

		conn.Health = next
		raw, err := json.Marshal(conn)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return pipe.Set(ctx, key, raw, 0).Err()
		})
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return failover.ErrHealthConflict
	}

	return err
}

var _ failover.ConnectionStorage = new(client)
