package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/scheduledtx"
	"github.com/gabapcia/blockgate/internal/subscription"
	"github.com/gabapcia/blockgate/internal/webhook"
)

func projectKey(id string) string {
	return fmt.Sprintf("project:%s", id)
}

func clientKey(id string) string {
	return fmt.Sprintf("client:%s", id)
}

func (c *client) SaveProject(ctx context.Context, project model.Project) error {
	raw, err := json.Marshal(project)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, projectKey(project.ID), raw, 0).Err()
}

func (c *client) GetProject(ctx context.Context, id string) (model.Project, error) {
	return getJSON[model.Project](ctx, c.conn, projectKey(id), model.ErrProjectNotFound)
}

func (c *client) SaveClient(ctx context.Context, cl model.Client) error {
	raw, err := json.Marshal(cl)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, clientKey(cl.ID), raw, 0).Err()
}

func (c *client) GetClient(ctx context.Context, id string) (model.Client, error) {
	return getJSON[model.Client](ctx, c.conn, clientKey(id), model.ErrClientNotFound)
}

var (
	_ subscription.OwnerStorage = new(client)
	_ scheduledtx.OwnerStorage  = new(client)
	_ webhook.ProjectStorage    = new(client)
)
