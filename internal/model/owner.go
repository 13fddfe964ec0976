package model

import "errors"

var (
	// ErrProjectNotFound is returned by stores when a project ID is unknown.
	ErrProjectNotFound = errors.New("project not found")

	// ErrClientNotFound is returned by stores when a client ID is unknown.
	ErrClientNotFound = errors.New("client not found")
)

// OwnerStatus is the activation state of a project or client.
type OwnerStatus string

const (
	OwnerActive   OwnerStatus = "ACTIVE"
	OwnerInactive OwnerStatus = "INACTIVE"
)

// Client is the account that owns projects.
type Client struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Status OwnerStatus `json:"status"`
}

// Active reports whether the client is active.
func (c Client) Active() bool {
	return c.Status == OwnerActive
}

// Project receives webhooks for its subscriptions and scheduled
// transactions.
type Project struct {
	ID                 string      `json:"id"`
	ClientID           string      `json:"clientId"`
	Name               string      `json:"name"`
	WebhookURL         string      `json:"webhookUrl"`
	TxMinConfirmations uint64      `json:"txMinConfirmations"`
	Status             OwnerStatus `json:"status"`
}

// Active reports whether the project is active.
func (p Project) Active() bool {
	return p.Status == OwnerActive
}
