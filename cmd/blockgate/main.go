package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/blockgate/internal/app"
	"github.com/gabapcia/blockgate/internal/config"
	"github.com/gabapcia/blockgate/internal/handlers/cli"
	"github.com/gabapcia/blockgate/internal/pkg/logger"
	"github.com/gabapcia/blockgate/internal/pkg/telemetry"
)

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Telemetry {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	networks, err := config.LoadNetworks(cfg.NetworksFile)
	if err != nil {
		return err
	}

	gw, err := app.New(ctx, cfg, networks)
	if err != nil {
		return err
	}
	defer func() {
		if err := gw.Close(); err != nil {
			logger.Error(ctx, "failed to close gateway", "error", err)
		}
	}()

	return cli.Run(ctx, gw.Services)
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
