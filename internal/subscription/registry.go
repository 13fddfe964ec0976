// Package subscription creates and maintains the standing requests the
// chain scanner matches blocks against. Subscriptions are never deleted:
// Unsubscribe and the owner activation flags only switch them off.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/logger"
	"github.com/gabapcia/blockgate/internal/pkg/validator"
)

var (
	// ErrInvalidSubscription is returned when an Input fails validation.
	ErrInvalidSubscription = errors.New("invalid subscription")

	// ErrOwnerMismatch is returned when the project does not belong to the
	// client of the Input.
	ErrOwnerMismatch = errors.New("project does not belong to client")
)

// Input describes a new subscription. Only the match fields of Kind are
// used.
type Input struct {
	ClientID              string                 `validate:"required"`
	ProjectID             string                 `validate:"required"`
	TransportConnectionID string                 `validate:"omitempty,max=64"`
	BlockchainID          string                 `validate:"required"`
	NetworkID             string                 `validate:"required"`
	Kind                  model.SubscriptionKind `validate:"required,oneof=ADDRESS CONTRACT_EVENT FABRIC_CONTRACT_CREATION TRANSACTION_HASH ORACLIZE"`
	MinConfirmations      uint64                 `validate:"lte=10000"`

	Address         string   `validate:"required_if=Kind ADDRESS"`
	ContractAddress string   `validate:"required_if=Kind CONTRACT_EVENT"`
	Topics          []string `validate:"omitempty,dive,len=66,startswith=0x,hexadecimal"`
	MethodSignature string   `validate:"required_if=Kind FABRIC_CONTRACT_CREATION,omitempty,len=10,startswith=0x,hexadecimal"`
	TxHash          string   `validate:"required_if=Kind TRANSACTION_HASH,omitempty,hexadecimal"`
	EventHash       string   `validate:"required_if=Kind ORACLIZE,omitempty,len=66,startswith=0x,hexadecimal"`
}

// Key returns the network of the input.
func (in Input) Key() model.NetworkKey {
	return model.NetworkKey{BlockchainID: in.BlockchainID, NetworkID: in.NetworkID}
}

// Registry manages subscriptions.
type Registry interface {
	Subscribe(ctx context.Context, in Input) (model.Subscription, error)
	Unsubscribe(ctx context.Context, id string) error
	SetClientActive(ctx context.Context, clientID string, active bool) error
	SetProjectActive(ctx context.Context, projectID string, active bool) error
}

type config struct {
	now func() time.Time
}

// Option configures the Registry built by New.
type Option func(*config)

func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

type registry struct {
	storage  Storage
	owners   OwnerStorage
	adapters AdapterSource
	now      func() time.Time
}

var _ Registry = (*registry)(nil)

// validateAddresses checks the address fields of in against the network's
// address rules.
func (r *registry) validateAddresses(ctx context.Context, in Input) error {
	var address string
	switch in.Kind {
	case model.KindAddress:
		address = in.Address
	case model.KindContractEvent:
		address = in.ContractAddress
	default:
		return nil
	}

	adapter, err := r.adapters.ActiveAdapter(ctx, in.Key())
	if err != nil {
		return err
	}

	if !adapter.IsValidAddress(address) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidSubscription, chain.ErrInvalidAddress, address)
	}

	return nil
}

// loadOwners loads the project and client of in and checks they belong
// together.
func (r *registry) loadOwners(ctx context.Context, in Input) (model.Project, model.Client, error) {
	project, err := r.owners.GetProject(ctx, in.ProjectID)
	if err != nil {
		return model.Project{}, model.Client{}, err
	}

	if project.ClientID != in.ClientID {
		return model.Project{}, model.Client{}, fmt.Errorf("%w: project %s, client %s", ErrOwnerMismatch, in.ProjectID, in.ClientID)
	}

	client, err := r.owners.GetClient(ctx, in.ClientID)
	if err != nil {
		return model.Project{}, model.Client{}, err
	}

	return project, client, nil
}

func (r *registry) Subscribe(ctx context.Context, in Input) (model.Subscription, error) {
	if err := validator.Validate(in); err != nil {
		return model.Subscription{}, errors.Join(ErrInvalidSubscription, err)
	}

	if err := r.validateAddresses(ctx, in); err != nil {
		return model.Subscription{}, err
	}

	project, client, err := r.loadOwners(ctx, in)
	if err != nil {
		return model.Subscription{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Subscription{}, err
	}

	topics := make([]string, 0, len(in.Topics))
	for _, topic := range in.Topics {
		topics = append(topics, model.NormalizeMatchKey(topic))
	}

	sub := model.Subscription{
		ID:                    id.String(),
		ClientID:              in.ClientID,
		ProjectID:             in.ProjectID,
		TransportConnectionID: in.TransportConnectionID,
		BlockchainID:          in.BlockchainID,
		NetworkID:             in.NetworkID,
		Kind:                  in.Kind,
		MinConfirmations:      in.MinConfirmations,
		Subscribed:            true,
		IsClientActive:        client.Active(),
		IsProjectActive:       project.Active(),
		CreatedAt:             r.now(),
	}

	switch in.Kind {
	case model.KindAddress:
		sub.Address = model.NormalizeMatchKey(in.Address)
	case model.KindContractEvent:
		sub.ContractAddress = model.NormalizeMatchKey(in.ContractAddress)
		if len(topics) > 0 {
			sub.Topics = topics
		}
	case model.KindFabricContractCreation:
		sub.MethodSignature = model.NormalizeMatchKey(in.MethodSignature)
	case model.KindTransactionHash:
		sub.TxHash = chain.Hex0x(in.TxHash)
	case model.KindOraclize:
		sub.EventHash = model.NormalizeMatchKey(in.EventHash)
	}

	if err := r.storage.SaveSubscription(ctx, sub); err != nil {
		return model.Subscription{}, fmt.Errorf("save subscription: %w", err)
	}

	logger.Info(ctx, "subscription created",
		"subscription.id", sub.ID,
		"subscription.type", sub.Kind,
		"network.key", sub.Key().String(),
	)

	return sub, nil
}

func (r *registry) Unsubscribe(ctx context.Context, id string) error {
	sub, err := r.storage.GetSubscription(ctx, id)
	if err != nil {
		return err
	}

	if !sub.Subscribed {
		return nil
	}

	sub.Subscribed = false
	if err := r.storage.SaveSubscription(ctx, sub); err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}

	logger.Info(ctx, "subscription disabled", "subscription.id", id)
	return nil
}

func (r *registry) SetClientActive(ctx context.Context, clientID string, active bool) error {
	n, err := r.storage.SetClientActive(ctx, clientID, active)
	if err != nil {
		return fmt.Errorf("set client active: %w", err)
	}

	logger.Info(ctx, "client subscriptions updated", "client.id", clientID, "client.active", active, "subscription.count", n)
	return nil
}

func (r *registry) SetProjectActive(ctx context.Context, projectID string, active bool) error {
	n, err := r.storage.SetProjectActive(ctx, projectID, active)
	if err != nil {
		return fmt.Errorf("set project active: %w", err)
	}

	logger.Info(ctx, "project subscriptions updated", "project.id", projectID, "project.active", active, "subscription.count", n)
	return nil
}

// New returns a Registry storing subscriptions in storage.
func New(storage Storage, owners OwnerStorage, adapters AdapterSource, opts ...Option) *registry {
	cfg := config{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &registry{
		storage:  storage,
		owners:   owners,
		adapters: adapters,
		now:      cfg.now,
	}
}
