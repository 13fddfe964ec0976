package webhook

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/blockgate/internal/model"
)

// ErrItemNotPending is returned by UpdateItem when the stored item already
// left the CREATED status or another attempt was recorded on it.
var ErrItemNotPending = errors.New("webhook item is not pending")

// ItemStorage persists webhook action items.
type ItemStorage interface {
	// InsertItems stores items whose ID is not stored yet. Items already
	// stored are left untouched.
	InsertItems(ctx context.Context, items []model.WebhookActionItem) error

	// ListPendingItems returns up to limit CREATED items of key whose
	// NextAttempt is not after now, earliest first. Items waiting for a
	// later retry never take the place of items that are due.
	ListPendingItems(ctx context.Context, key model.NetworkKey, now time.Time, limit int) ([]model.WebhookActionItem, error)

	// UpdateItem replaces prev with next if the stored item is still CREATED
	// with prev's FailedCount, and fails with ErrItemNotPending otherwise.
	UpdateItem(ctx context.Context, prev, next model.WebhookActionItem) error
}

// ProjectStorage resolves the project an item is delivered to. GetProject
// returns model.ErrProjectNotFound for unknown projects.
type ProjectStorage interface {
	GetProject(ctx context.Context, id string) (model.Project, error)
}
