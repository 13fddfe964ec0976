package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/blockgate/internal/config"
	"github.com/gabapcia/blockgate/internal/model"
)

// connectionsCommand groups the transport connection commands.
//
// Usage example:
//
//	blockgate connections list --network ethereum:mainnet
//	blockgate connections import --file networks.yaml
func connectionsCommand(store ConnectionStore) *cli.Command {
	return &cli.Command{
		Name:        "connections",
		Description: "Inspect and load the node providers used by the failover coordinator.",
		Usage:       "Manages transport connections.",
		Commands: []*cli.Command{
			{
				Name:        "list",
				Description: "Print the connections of a network with their health.",
				Usage:       "Lists the transport connections of a network as JSON.",
				Flags:       []cli.Flag{networkFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					key, err := model.ParseNetworkKey(c.String("network"))
					if err != nil {
						return err
					}

					conns, err := store.ListConnections(ctx, key)
					if err != nil {
						return err
					}

					return printJSON(c.Root().Writer, conns)
				},
			},
			{
				Name:        "import",
				Description: "Save every connection of a networks file. Stored health is kept.",
				Usage:       "Imports the transport connections of a networks file.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Networks file in YAML",
						Required: true,
						Sources:  cli.EnvVars("BLOCKGATE_NETWORKS_FILE"),
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					networks, err := config.LoadNetworks(c.String("file"))
					if err != nil {
						return err
					}

					conns := networks.Connections()
					for _, conn := range conns {
						if err := store.SaveConnection(ctx, conn); err != nil {
							return fmt.Errorf("save connection %s: %w", conn.ID, err)
						}
					}

					_, err = fmt.Fprintf(c.Root().Writer, "%d connections imported\n", len(conns))
					return err
				},
			},
		},
	}
}
