// Package redis implements every storage port of the gateway on top of a
// single Redis database. Records are stored as JSON strings; sets and sorted
// sets index them by network, match key and due time.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
}

func (c *client) Close() error {
	return c.conn.Close()
}

// getJSON loads the JSON value stored at key into a T. It returns notFound
// when the key does not exist.
func getJSON[T any](ctx context.Context, conn redis.Cmdable, key string, notFound error) (T, error) {
	var v T

	raw, err := conn.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return v, notFound
		}
		return v, err
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", key, err)
	}

	return v, nil
}

// mgetJSON loads the JSON values stored at keys, skipping missing keys.
func mgetJSON[T any](ctx context.Context, conn redis.Cmdable, keys []string) ([]T, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	vals, err := conn.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(vals))
	for i, val := range vals {
		s, ok := val.(string)
		if !ok {
			continue
		}

		var v T
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		out = append(out, v)
	}

	return out, nil
}

func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}
