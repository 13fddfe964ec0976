package subscription

import (
	"context"
	"errors"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/model"
)

// ErrSubscriptionNotFound is returned when a subscription ID is unknown.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// Storage persists subscriptions.
type Storage interface {
	// SaveSubscription creates or replaces sub.
	SaveSubscription(ctx context.Context, sub model.Subscription) error

	// GetSubscription returns the subscription with id or
	// ErrSubscriptionNotFound.
	GetSubscription(ctx context.Context, id string) (model.Subscription, error)

	// SetClientActive sets IsClientActive on every subscription of the
	// client and returns how many were updated.
	SetClientActive(ctx context.Context, clientID string, active bool) (int, error)

	// SetProjectActive sets IsProjectActive on every subscription of the
	// project and returns how many were updated.
	SetProjectActive(ctx context.Context, projectID string, active bool) (int, error)
}

// OwnerStorage resolves the owners of a new subscription. It returns
// model.ErrProjectNotFound and model.ErrClientNotFound for unknown IDs.
type OwnerStorage interface {
	GetProject(ctx context.Context, id string) (model.Project, error)
	GetClient(ctx context.Context, id string) (model.Client, error)
}

// AdapterSource hands out an adapter used to validate addresses.
type AdapterSource interface {
	ActiveAdapter(ctx context.Context, key model.NetworkKey) (chain.Adapter, error)
}
