// Package postgres stores webhook action items in PostgreSQL, as an
// alternative to the Redis item store for deployments that keep the
// delivery history in a relational database.
package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

type client struct {
	pool *pgxpool.Pool
}

func (c *client) Close() {
	c.pool.Close()
}

// Migrate creates the tables the client needs. It is safe to run on every
// start.
func (c *client) Migrate(ctx context.Context) error {
	if _, err := c.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}

// NewClient connects to the database at url and checks the connection.
func NewClient(ctx context.Context, url string, maxConns int32) (*client, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &client{pool: pool}, nil
}
