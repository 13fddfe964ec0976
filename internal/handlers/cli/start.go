package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// startCommand returns the command running the engine.
//
// Usage example:
//
//	blockgate start
//
// The process runs until it receives SIGINT or SIGTERM.
func startCommand(engine Engine) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts scanning every configured network, delivering webhooks and firing scheduled transactions.",
		Usage:       "Runs the gateway engine. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := engine.Start(ctx); err != nil {
				return err
			}
			defer engine.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}

			return nil
		},
	}
}
