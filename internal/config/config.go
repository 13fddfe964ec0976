// Package config loads the process settings of blockgate from BLOCKGATE_*
// environment variables and the per-network transport file they point to.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/blockgate/internal/pkg/validator"
)

const envPrefix = "blockgate"

// Storage backends selectable with BLOCKGATE_STORAGE.
const (
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Webhook item stores selectable with BLOCKGATE_WEBHOOK_STORE. Only used
// with the redis storage.
const (
	WebhookStoreRedis    = "redis"
	WebhookStorePostgres = "postgres"
)

// Webhook tunes the dispatcher.
type Webhook struct {
	Ceiling     int           `envconfig:"CEILING" default:"5" validate:"gte=1"`
	Concurrency int           `envconfig:"CONCURRENCY" default:"8" validate:"gte=1"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	Backoff     string        `envconfig:"BACKOFF" default:"exponential" validate:"oneof=none fixed exponential"`
	BackoffBase time.Duration `envconfig:"BACKOFF_BASE" default:"30s" validate:"gte=0"`
	BackoffMax  time.Duration `envconfig:"BACKOFF_MAX" default:"1h" validate:"gtefield=BackoffBase"`
}

// Intervals sets how often the engine runs each task.
type Intervals struct {
	Scan       time.Duration `envconfig:"SCAN" default:"5s" validate:"gt=0"`
	Drain      time.Duration `envconfig:"DRAIN" default:"2s" validate:"gt=0"`
	Send       time.Duration `envconfig:"SEND" default:"10s" validate:"gt=0"`
	Statistics time.Duration `envconfig:"STATISTICS" default:"1m" validate:"gt=0"`
}

// Config is the process configuration.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"blockgate" validate:"required"`
	Telemetry   bool   `envconfig:"TELEMETRY" default:"false"`

	Storage      string `envconfig:"STORAGE" default:"redis" validate:"oneof=redis memory"`
	WebhookStore string `envconfig:"WEBHOOK_STORE" default:"redis" validate:"oneof=redis postgres"`

	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"required_if=Storage redis,omitempty,hostname_port"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	PostgresURL      string `envconfig:"POSTGRES_URL" validate:"required_if=WebhookStore postgres,omitempty,url"`
	PostgresMaxConns int32  `envconfig:"POSTGRES_MAX_CONNS" default:"10" validate:"gte=1"`

	NetworksFile     string        `envconfig:"NETWORKS_FILE" validate:"required"`
	MaxBlocksPerTick uint64        `envconfig:"MAX_BLOCKS_PER_TICK" default:"100" validate:"gte=1"`
	LockTTL          time.Duration `envconfig:"LOCK_TTL" default:"1m" validate:"gt=0"`

	Intervals Intervals `envconfig:"INTERVAL"`
	Webhook   Webhook   `envconfig:"WEBHOOK"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
