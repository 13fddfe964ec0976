package failover

import (
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/model"
)

// cachedAdapter is an adapter together with the connection it was built from.
type cachedAdapter struct {
	conn    model.TransportConnection
	adapter chain.Adapter
}

// sameEndpoint reports whether a and b would build the same adapter.
func sameEndpoint(a, b model.TransportConnection) bool {
	return a.BlockchainID == b.BlockchainID &&
		a.NetworkID == b.NetworkID &&
		a.ProviderID == b.ProviderID &&
		maps.Equal(a.Settings, b.Settings)
}

// network is the in-memory state of one network. It can always be rebuilt
// from storage.
type network struct {
	key      model.NetworkKey
	counter  metric.Int64Counter
	attrs    metric.MeasurementOption
	callsNum atomic.Uint64

	mu        sync.Mutex
	active    chain.Adapter
	activeID  string
	err       error
	expiresAt time.Time
	adapters  map[string]cachedAdapter
	stats     model.BlockchainStatistic
}

func newNetwork(key model.NetworkKey, counter metric.Int64Counter) *network {
	return &network{
		key:      key,
		counter:  counter,
		attrs:    metric.WithAttributes(attribute.String("network.key", key.String())),
		adapters: make(map[string]cachedAdapter),
	}
}

// cached returns the last selection while it is still valid.
func (n *network) cached(now time.Time) (chain.Adapter, error, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.expiresAt.IsZero() || !now.Before(n.expiresAt) {
		return nil, nil, false
	}

	return n.active, n.err, true
}

func (n *network) store(adapter chain.Adapter, err error, expiresAt time.Time) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.active, n.err, n.expiresAt = adapter, err, expiresAt
}

func (n *network) invalidate() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.expiresAt = time.Time{}
}

// switchActive records id as the active connection and reports whether it changed.
func (n *network) switchActive(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	changed := n.activeID != id
	n.activeID = id
	return changed
}

func (n *network) setConnectionCounts(total, healthy int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stats.TotalConnections = total
	n.stats.HealthyConnections = healthy
	n.stats.UnhealthyConnections = total - healthy
}

func (n *network) statistics() model.BlockchainStatistic {
	n.mu.Lock()
	defer n.mu.Unlock()

	stats := n.stats
	stats.Calls = n.callsNum.Swap(0)
	return stats
}

// adapterFor returns the adapter of conn, building it again when the
// connection's endpoint changed.
func (n *network) adapterFor(conn model.TransportConnection, factory chain.Factory) (chain.Adapter, error) {
	n.mu.Lock()
	cached, ok := n.adapters[conn.ID]
	n.mu.Unlock()

	if ok && sameEndpoint(cached.conn, conn) {
		return cached.adapter, nil
	}

	adapter, err := factory.NewAdapter(conn)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	n.adapters[conn.ID] = cachedAdapter{conn: conn, adapter: adapter}
	n.mu.Unlock()

	return adapter, nil
}
