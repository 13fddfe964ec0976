package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/blockgate/internal/gateway"
)

// extendLockScript extends a lock only if token still holds it.
var extendLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// releaseLockScript deletes a lock only if token still holds it.
var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func lockKey(name string) string {
	return fmt.Sprintf("lock:%s", name)
}

// Acquire takes the lock with SET NX PX. A lock already held by token is
// extended instead.
func (c *client) Acquire(ctx context.Context, name, token string, ttl time.Duration) (bool, error) {
	key := lockKey(name)

	err := c.conn.SetArgs(ctx, key, token, redis.SetArgs{Mode: "NX", TTL: ttl}).Err()
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, redis.Nil) {
		return false, err
	}

	extended, err := extendLockScript.Run(ctx, c.conn, []string{key}, token, ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}

	return extended == 1, nil
}

func (c *client) Release(ctx context.Context, name, token string) error {
	return releaseLockScript.Run(ctx, c.conn, []string{lockKey(name)}, token).Err()
}

var _ gateway.Locker = new(client)
