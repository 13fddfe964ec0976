package failover

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/logger"
)

// reading is the outcome of one connection's height query.
type reading struct {
	conn    model.TransportConnection
	adapter chain.Adapter
	height  uint64
	err     error
}

// candidates returns the enabled connections, highest priority first.
func candidates(conns []model.TransportConnection) []model.TransportConnection {
	out := make([]model.TransportConnection, 0, len(conns))
	for _, conn := range conns {
		if conn.Enabled() {
			out = append(out, conn)
		}
	}

	slices.SortStableFunc(out, func(a, b model.TransportConnection) int {
		if a.Priority != b.Priority {
			return cmp.Compare(b.Priority, a.Priority)
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return out
}

// referenceHeight is the height of the first private connection, or of the
// highest priority one. When the reference itself failed, the highest
// reported height is used instead.
func referenceHeight(readings []reading) (uint64, bool) {
	ref := 0
	for i, p := range readings {
		if p.conn.IsPrivate {
			ref = i
			break
		}
	}

	if readings[ref].err == nil {
		return readings[ref].height, true
	}

	var (
		highest uint64
		found   bool
	)
	for _, p := range readings {
		if p.err == nil && (!found || p.height > highest) {
			highest, found = p.height, true
		}
	}

	return highest, found
}

// evaluate marks each reading healthy or not and returns the index of the
// first healthy one, or -1. readings must be in priority order.
func evaluate(readings []reading, allowedBlockDelay uint64) (int, []bool) {
	healthy := make([]bool, len(readings))
	active := -1

	// A lone provider has nothing to be compared with.
	if len(readings) == 1 {
		if healthy[0] = readings[0].err == nil; healthy[0] {
			active = 0
		}
		return active, healthy
	}

	reference, ok := referenceHeight(readings)
	for i, p := range readings {
		healthy[i] = ok && p.err == nil && p.height+allowedBlockDelay >= reference
		if healthy[i] && active < 0 {
			active = i
		}
	}

	return active, healthy
}

// readHeights queries the height of every connection concurrently.
func (c *coordinator) readHeights(ctx context.Context, n *network, conns []model.TransportConnection) []reading {
	readings := make([]reading, len(conns))

	var g errgroup.Group
	for i, conn := range conns {
		readings[i].conn = conn

		g.Go(func() error {
			adapter, err := n.adapterFor(conn, c.factory)
			if err != nil {
				readings[i].err = err
				return nil
			}
			readings[i].adapter = adapter

			ctx, cancel := context.WithTimeout(ctx, c.checkTimeout)
			defer cancel()

			readings[i].height, readings[i].err = adapter.GetBlockHeight(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return readings
}

// revalidate checks every enabled connection of n and selects the active one.
func (c *coordinator) revalidate(ctx context.Context, n *network) (chain.Adapter, error) {
	ctx = logger.Derive(ctx, "network.key", n.key.String())

	conns, err := c.storage.ListConnections(ctx, n.key)
	if err != nil {
		return nil, fmt.Errorf("list connections of %s: %w", n.key, err)
	}

	conns = candidates(conns)
	if len(conns) == 0 {
		n.setConnectionCounts(0, 0)
		return nil, fmt.Errorf("%w: %s has no enabled connection", ErrNoHealthyTransport, n.key)
	}

	readings := c.readHeights(ctx, n, conns)
	active, healthy := evaluate(readings, c.policy(n.key).AllowedBlockDelay)

	healthyCount := 0
	for i, p := range readings {
		if healthy[i] {
			healthyCount++
		} else {
			logger.Warn(ctx, "transport connection failed the health check",
				"connection.id", p.conn.ID,
				"connection.provider", p.conn.ProviderID,
				"connection.height", p.height,
				"error", p.err,
			)
		}

		c.recordHealth(ctx, p.conn, healthy[i])
	}
	n.setConnectionCounts(len(readings), healthyCount)

	if active < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoHealthyTransport, n.key)
	}

	selected := readings[active]
	if n.switchActive(selected.conn.ID) {
		logger.Info(ctx, "active transport selected",
			"connection.id", selected.conn.ID,
			"connection.provider", selected.conn.ProviderID,
			"connection.height", selected.height,
		)
	}

	return meteredAdapter{Adapter: selected.adapter, network: n}, nil
}

// recordHealth persists the health transition of conn in the background.
// A failed write is only logged.
func (c *coordinator) recordHealth(ctx context.Context, conn model.TransportConnection, healthy bool) {
	prev := conn.Health

	next := prev.Recovered()
	if !healthy {
		next = prev.Failed(c.now())
	}

	if next.Equal(prev) {
		return
	}

	c.writes.Add(1)
	go func() {
		defer c.writes.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.healthWriteTimeout)
		defer cancel()

		if err := c.storage.UpdateConnectionHealth(ctx, conn.ID, prev, next); err != nil {
			logger.Warn(ctx, "failed to persist connection health",
				"connection.id", conn.ID,
				"error", err,
			)
		}
	}()
}
