package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// ErrNoTrigger is returned by DueAt when neither FireAt nor a cron
// expression is set.
var ErrNoTrigger = errors.New("scheduled tx has no trigger")

// ScheduledTxStatus is the lifecycle state of a ScheduledTx. SENDING is held
// by the sender between claiming and finishing a transaction.
type ScheduledTxStatus string

const (
	ScheduledTxPending ScheduledTxStatus = "PENDING"
	ScheduledTxSending ScheduledTxStatus = "SENDING"
	ScheduledTxSent    ScheduledTxStatus = "SENT"
	ScheduledTxFailed  ScheduledTxStatus = "FAILED"
)

// TxRequest describes an outbound transaction. When Raw is set it is
// broadcast as is; otherwise the adapter builds and signs a transfer of
// Amount (in the chain's main unit) from the key's address to To.
type TxRequest struct {
	From     string          `json:"from,omitempty"`
	To       string          `json:"to,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Fee      decimal.Decimal `json:"fee"`
	Data     string          `json:"data,omitempty"`
	GasLimit uint64          `json:"gasLimit,omitempty"`
	Raw      string          `json:"raw,omitempty"`
}

// ScheduledTx is a transaction waiting for its trigger: FireAt for one-off
// sends, or the first CronExpression occurrence after CreatedAt.
type ScheduledTx struct {
	ID                    string            `json:"id"`
	ProjectID             string            `json:"projectId"`
	TransportConnectionID string            `json:"transportConnectionId,omitempty"`
	BlockchainID          string            `json:"blockchainId"`
	NetworkID             string            `json:"networkId"`
	CronExpression        string            `json:"cronExpression,omitempty"`
	FireAt                *time.Time        `json:"fireAt,omitempty"`
	Tx                    TxRequest         `json:"tx"`
	PrivateKey            string            `json:"privateKey"`
	Status                ScheduledTxStatus `json:"status"`
	TxHash                string            `json:"txHash,omitempty"`
	CreatedAt             time.Time         `json:"createdAt"`
}

// Key returns the network the transaction is sent to.
func (s ScheduledTx) Key() NetworkKey {
	return NetworkKey{BlockchainID: s.BlockchainID, NetworkID: s.NetworkID}
}

// DueAt returns when the transaction should be sent.
func (s ScheduledTx) DueAt() (time.Time, error) {
	if s.FireAt != nil {
		return *s.FireAt, nil
	}

	if s.CronExpression == "" {
		return time.Time{}, ErrNoTrigger
	}

	schedule, err := cron.ParseStandard(s.CronExpression)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse cron expression %q: %w", s.CronExpression, err)
	}

	return schedule.Next(s.CreatedAt), nil
}
