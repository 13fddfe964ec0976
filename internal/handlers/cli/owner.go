package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/validator"
)

func ownerStatus(active bool) model.OwnerStatus {
	if active {
		return model.OwnerActive
	}

	return model.OwnerInactive
}

func activeFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "active",
		Usage: "Whether the owner is active; --active=false switches its subscriptions off",
		Value: true,
	}
}

// clientCommand returns the command saving a client. The active flag of
// the client's subscriptions follows the saved status.
//
// Usage example:
//
//	blockgate client --id c1 --name "Acme"
//	blockgate client --id c1 --name "Acme" --active=false
func clientCommand(owners OwnerStore, registry Registry) *cli.Command {
	return &cli.Command{
		Name:        "client",
		Description: "Create or update a client account.",
		Usage:       "Saves a client and propagates its status to its subscriptions.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Client ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Display name",
			},
			activeFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			client := model.Client{
				ID:     c.String("id"),
				Name:   c.String("name"),
				Status: ownerStatus(c.Bool("active")),
			}

			if err := owners.SaveClient(ctx, client); err != nil {
				return err
			}

			return registry.SetClientActive(ctx, client.ID, client.Active())
		},
	}
}

// projectCommand returns the command saving a project. The active flag of
// the project's subscriptions follows the saved status.
//
// Usage example:
//
//	blockgate project --id p1 --client c1 --webhook-url https://example.com/hooks --tx-min-confirmations 3
func projectCommand(owners OwnerStore, registry Registry) *cli.Command {
	return &cli.Command{
		Name:        "project",
		Description: "Create or update a project and its webhook endpoint.",
		Usage:       "Saves a project and propagates its status to its subscriptions.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Project ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "client",
				Usage:    "Owning client ID",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Display name",
			},
			&cli.StringFlag{
				Name:  "webhook-url",
				Usage: "URL receiving the project's webhooks",
			},
			&cli.Uint64Flag{
				Name:  "tx-min-confirmations",
				Usage: "Confirmations required before scheduled transaction webhooks are sent",
			},
			activeFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			project := model.Project{
				ID:                 c.String("id"),
				ClientID:           c.String("client"),
				Name:               c.String("name"),
				WebhookURL:         c.String("webhook-url"),
				TxMinConfirmations: c.Uint64("tx-min-confirmations"),
				Status:             ownerStatus(c.Bool("active")),
			}

			if err := validator.Var(project.WebhookURL, "omitempty,http_url"); err != nil {
				return err
			}

			if err := owners.SaveProject(ctx, project); err != nil {
				return err
			}

			return registry.SetProjectActive(ctx, project.ID, project.Active())
		},
	}
}
