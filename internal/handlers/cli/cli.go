// Package cli exposes the gateway as the blockgate command line: running
// the engine and managing the records it works on.
package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

func newApp(svc Services) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "blockgate",
		Description:           "Command-line interface for running and managing the Blockgate multi-chain gateway.",
		Usage:                 "blockgate [command] [flags]",
		Commands: []*cli.Command{
			startCommand(svc.Engine),
			subscribeCommand(svc.Registry),
			unsubscribeCommand(svc.Registry),
			scheduleTxCommand(svc.Scheduler),
			connectionsCommand(svc.Connections),
			clientCommand(svc.Owners, svc.Registry),
			projectCommand(svc.Owners, svc.Registry),
		},
	}
}

// Run executes the blockgate CLI with the process arguments.
//
// Commands:
//
//   - `start`: runs the engine until SIGINT or SIGTERM.
//   - `subscribe` / `unsubscribe`: manage subscriptions.
//   - `schedule-tx`: stores a transaction to send later.
//   - `connections`: lists and imports transport connections.
//   - `client` / `project`: save owners and switch them on or off.
func Run(ctx context.Context, svc Services) error {
	return newApp(svc).Run(ctx, os.Args)
}

// printJSON writes v indented, the output format of every command that
// returns a record.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
