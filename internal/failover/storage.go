package failover

import (
	"context"
	"errors"

	"github.com/gabapcia/blockgate/internal/model"
)

// ErrHealthConflict is returned by UpdateConnectionHealth when the stored
// health no longer matches the expected previous value.
var ErrHealthConflict = errors.New("connection health changed concurrently")

// ConnectionStorage is the persistence port the coordinator reads transport
// connections from and writes their health to.
type ConnectionStorage interface {
	// ListConnections returns every connection configured for key, enabled
	// or not.
	ListConnections(ctx context.Context, key model.NetworkKey) ([]model.TransportConnection, error)

	// UpdateConnectionHealth replaces the health of connection id with next
	// only if it still equals prev. Otherwise it returns ErrHealthConflict.
	UpdateConnectionHealth(ctx context.Context, id string, prev, next model.ConnectionHealth) error
}
