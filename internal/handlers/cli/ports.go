package cli

import (
	"context"

	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/subscription"
)

// Engine runs the periodic work of the gateway. gateway.Service satisfies it.
type Engine interface {
	Start(ctx context.Context) error
	Close()
}

// Registry manages subscriptions. subscription.Registry satisfies it.
type Registry interface {
	Subscribe(ctx context.Context, in subscription.Input) (model.Subscription, error)
	Unsubscribe(ctx context.Context, id string) error
	SetClientActive(ctx context.Context, clientID string, active bool) error
	SetProjectActive(ctx context.Context, projectID string, active bool) error
}

// TxScheduler stores scheduled transactions. scheduledtx.Sender satisfies it.
type TxScheduler interface {
	Submit(ctx context.Context, tx model.ScheduledTx) (model.ScheduledTx, error)
}

// ConnectionStore reads and writes transport connections.
type ConnectionStore interface {
	SaveConnection(ctx context.Context, conn model.TransportConnection) error
	ListConnections(ctx context.Context, key model.NetworkKey) ([]model.TransportConnection, error)
}

// OwnerStore writes clients and projects.
type OwnerStore interface {
	SaveClient(ctx context.Context, client model.Client) error
	SaveProject(ctx context.Context, project model.Project) error
}

// Services are the dependencies of the commands.
type Services struct {
	Engine      Engine
	Registry    Registry
	Scheduler   TxScheduler
	Connections ConnectionStore
	Owners      OwnerStore
}
