package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"

	"github.com/gabapcia/blockgate/internal/model"
)

// parseAmount reads a decimal flag. Unset flags are zero.
func parseAmount(c *cli.Command, name string) (decimal.Decimal, error) {
	if !c.IsSet(name) {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(c.String(name))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s: %w", name, err)
	}

	return amount, nil
}

// scheduleTxCommand returns the command storing a transaction to be sent
// later, once at --at or at the first --cron occurrence.
//
// Usage example:
//
//	blockgate schedule-tx --project p1 --network ethereum:sepolia --at 2026-11-01T09:00:00Z --to 0xABC... --amount 0.5
//	blockgate schedule-tx --project p1 --network bitcoin:testnet --cron "0 9 * * 1" --raw 0200000001...
func scheduleTxCommand(scheduler TxScheduler) *cli.Command {
	return &cli.Command{
		Name:        "schedule-tx",
		Description: "Schedule an outbound transaction. The outcome is delivered to the project webhook.",
		Usage:       "Stores a scheduled transaction. Provide either --raw or --to with a private key.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "project",
				Usage:    "Project notified of the outcome",
				Required: true,
			},
			networkFlag(),
			&cli.StringFlag{
				Name:  "connection",
				Usage: "Transport connection recorded on the confirmation watch",
			},
			&cli.TimestampFlag{
				Name:  "at",
				Usage: "Send time in RFC 3339 format",
				Config: cli.TimestampConfig{
					Layouts: []string{time.RFC3339},
				},
			},
			&cli.StringFlag{
				Name:  "cron",
				Usage: "Standard five-field cron expression; the first occurrence triggers the send",
			},
			&cli.StringFlag{
				Name:  "from",
				Usage: "Sender address, when it differs from the key's",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Recipient address",
			},
			&cli.StringFlag{
				Name:  "amount",
				Usage: "Amount in the chain's main unit (e.g., 0.25)",
			},
			&cli.StringFlag{
				Name:  "fee",
				Usage: "Fee in the chain's main unit; zero lets the node estimate it",
			},
			&cli.StringFlag{
				Name:  "data",
				Usage: "Hex call data",
			},
			&cli.Uint64Flag{
				Name:  "gas-limit",
				Usage: "Gas limit of account-based transfers",
			},
			&cli.StringFlag{
				Name:  "raw",
				Usage: "Signed raw transaction broadcast as is",
			},
			&cli.StringFlag{
				Name:    "private-key",
				Usage:   "Key signing the transfer",
				Sources: cli.EnvVars("BLOCKGATE_PRIVATE_KEY"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			key, err := model.ParseNetworkKey(c.String("network"))
			if err != nil {
				return err
			}

			amount, err := parseAmount(c, "amount")
			if err != nil {
				return err
			}

			fee, err := parseAmount(c, "fee")
			if err != nil {
				return err
			}

			tx := model.ScheduledTx{
				ProjectID:             c.String("project"),
				TransportConnectionID: c.String("connection"),
				BlockchainID:          key.BlockchainID,
				NetworkID:             key.NetworkID,
				CronExpression:        c.String("cron"),
				PrivateKey:            c.String("private-key"),
				Tx: model.TxRequest{
					From:     c.String("from"),
					To:       c.String("to"),
					Amount:   amount,
					Fee:      fee,
					Data:     c.String("data"),
					GasLimit: c.Uint64("gas-limit"),
					Raw:      c.String("raw"),
				},
			}
			if c.IsSet("at") {
				at := c.Timestamp("at").UTC()
				tx.FireAt = &at
			}

			stored, err := scheduler.Submit(ctx, tx)
			if err != nil {
				return err
			}

			stored.PrivateKey = ""
			return printJSON(c.Root().Writer, stored)
		},
	}
}
