package cli

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/subscription"
)

func networkFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "network",
		Usage:    "Network key in the blockchain:network form (e.g., ethereum:mainnet, bitcoin:testnet)",
		Required: true,
	}
}

// subscribeCommand returns the command creating a subscription. The created
// subscription is printed as JSON.
//
// Usage example:
//
//	blockgate subscribe --client c1 --project p1 --network ethereum:mainnet --address 0xABC123...
//	blockgate subscribe --client c1 --project p1 --network ethereum:mainnet --kind CONTRACT_EVENT --contract 0xDEF... --topic 0xddf2...
func subscribeCommand(registry Registry) *cli.Command {
	return &cli.Command{
		Name:        "subscribe",
		Description: "Register a standing request to be notified about matching activity on a network.",
		Usage:       "Creates a subscription. The flags used depend on the kind.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "client",
				Usage:    "Client owning the project",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "project",
				Usage:    "Project receiving the webhooks",
				Required: true,
			},
			networkFlag(),
			&cli.StringFlag{
				Name:  "kind",
				Usage: "ADDRESS, CONTRACT_EVENT, FABRIC_CONTRACT_CREATION, TRANSACTION_HASH or ORACLIZE",
				Value: string(model.KindAddress),
			},
			&cli.StringFlag{
				Name:  "connection",
				Usage: "Transport connection recorded on the subscription",
			},
			&cli.Uint64Flag{
				Name:  "min-confirmations",
				Usage: "Confirmations required before the webhook is sent",
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "Watched address (ADDRESS)",
			},
			&cli.StringFlag{
				Name:  "contract",
				Usage: "Emitting contract (CONTRACT_EVENT)",
			},
			&cli.StringSliceFlag{
				Name:  "topic",
				Usage: "Accepted first log topic, may be repeated (CONTRACT_EVENT)",
			},
			&cli.StringFlag{
				Name:  "method",
				Usage: "4-byte method selector of the creation call (FABRIC_CONTRACT_CREATION)",
			},
			&cli.StringFlag{
				Name:  "tx-hash",
				Usage: "Watched transaction hash (TRANSACTION_HASH)",
			},
			&cli.StringFlag{
				Name:  "event-hash",
				Usage: "Oracle event signature (ORACLIZE)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			key, err := model.ParseNetworkKey(c.String("network"))
			if err != nil {
				return err
			}

			var topics []string
			if c.IsSet("topic") {
				topics = c.StringSlice("topic")
			}

			sub, err := registry.Subscribe(ctx, subscription.Input{
				ClientID:              c.String("client"),
				ProjectID:             c.String("project"),
				TransportConnectionID: c.String("connection"),
				BlockchainID:          key.BlockchainID,
				NetworkID:             key.NetworkID,
				Kind:                  model.SubscriptionKind(strings.ToUpper(c.String("kind"))),
				MinConfirmations:      c.Uint64("min-confirmations"),
				Address:               c.String("address"),
				ContractAddress:       c.String("contract"),
				Topics:                topics,
				MethodSignature:       c.String("method"),
				TxHash:                c.String("tx-hash"),
				EventHash:             c.String("event-hash"),
			})
			if err != nil {
				return err
			}

			return printJSON(c.Root().Writer, sub)
		},
	}
}

// unsubscribeCommand returns the command switching a subscription off.
//
// Usage example:
//
//	blockgate unsubscribe --id 0190c3c1-...
func unsubscribeCommand(registry Registry) *cli.Command {
	return &cli.Command{
		Name:        "unsubscribe",
		Description: "Stop matching a subscription. The record is kept.",
		Usage:       "Disables a subscription by ID.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Subscription ID",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return registry.Unsubscribe(ctx, c.String("id"))
		},
	}
}
