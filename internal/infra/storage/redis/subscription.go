package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/blockgate/internal/chainscan"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/subscription"
)

const subscriptionKeyPrefix = "subscription"

func subscriptionKey(id string) string {
	return fmt.Sprintf("%s:%s", subscriptionKeyPrefix, id)
}

// subscriptionIndexKey is the set of subscription IDs watching one match key:
// "subscription:index:<blockchain>:<network>:<kind>:<match key>".
func subscriptionIndexKey(key model.NetworkKey, kind model.SubscriptionKind, matchKey string) string {
	return fmt.Sprintf("%s:index:%s:%s:%s", subscriptionKeyPrefix, key, kind, model.NormalizeMatchKey(matchKey))
}

func subscriptionClientKey(clientID string) string {
	return fmt.Sprintf("%s:client:%s", subscriptionKeyPrefix, clientID)
}

func subscriptionProjectKey(projectID string) string {
	return fmt.Sprintf("%s:project:%s", subscriptionKeyPrefix, projectID)
}

// SaveSubscription stores sub and indexes it by match key and owner.
func (c *client) SaveSubscription(ctx context.Context, sub model.Subscription) error {
	raw, err := json.Marshal(sub)
	if err != nil {
		return err
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, subscriptionKey(sub.ID), raw, 0)
		pipe.SAdd(ctx, subscriptionIndexKey(sub.Key(), sub.Kind, sub.MatchKey()), sub.ID)
		pipe.SAdd(ctx, subscriptionClientKey(sub.ClientID), sub.ID)
		pipe.SAdd(ctx, subscriptionProjectKey(sub.ProjectID), sub.ID)
		return nil
	})
	return err
}

func (c *client) GetSubscription(ctx context.Context, id string) (model.Subscription, error) {
	return getJSON[model.Subscription](ctx, c.conn, subscriptionKey(id), subscription.ErrSubscriptionNotFound)
}

// FindEligible unions the index sets of matchKeys and loads the
// subscriptions that are still eligible.
func (c *client) FindEligible(ctx context.Context, key model.NetworkKey, kind model.SubscriptionKind, matchKeys []string) ([]model.Subscription, error) {
	if len(matchKeys) == 0 {
		return nil, nil
	}

	indexKeys := make([]string, len(matchKeys))
	for i, matchKey := range matchKeys {
		indexKeys[i] = subscriptionIndexKey(key, kind, matchKey)
	}

	ids, err := c.conn.SUnion(ctx, indexKeys...).Result()
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = subscriptionKey(id)
	}

	subs, err := mgetJSON[model.Subscription](ctx, c.conn, keys)
	if err != nil {
		return nil, err
	}

	eligible := subs[:0]
	for _, sub := range subs {
		if sub.Eligible() {
			eligible = append(eligible, sub)
		}
	}

	return eligible, nil
}

// setOwnerActive rewrites the flag of every subscription in the owner set.
func (c *client) setOwnerActive(ctx context.Context, ownerKey string, set func(*model.Subscription)) (int, error) {
	ids, err := c.conn.SMembers(ctx, ownerKey).Result()
	if err != nil {
		return 0, err
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = subscriptionKey(id)
	}

	subs, err := mgetJSON[model.Subscription](ctx, c.conn, keys)
	if err != nil {
		return 0, err
	}

	if len(subs) == 0 {
		return 0, nil
	}

	_, err = c.conn.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, sub := range subs {
			set(&sub)

			raw, err := json.Marshal(sub)
			if err != nil {
				return err
			}
			pipe.Set(ctx, subscriptionKey(sub.ID), raw, 0)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(subs), nil
}

func (c *client) SetClientActive(ctx context.Context, clientID string, active bool) (int, error) {
	return c.setOwnerActive(ctx, subscriptionClientKey(clientID), func(sub *model.Subscription) {
		sub.IsClientActive = active
	})
}

func (c *client) SetProjectActive(ctx context.Context, projectID string, active bool) (int, error) {
	return c.setOwnerActive(ctx, subscriptionProjectKey(projectID), func(sub *model.Subscription) {
		sub.IsProjectActive = active
	})
}

var (
	_ subscription.Storage          = new(client)
	_ chainscan.SubscriptionStorage = new(client)
)
