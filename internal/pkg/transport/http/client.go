// Package http builds retryablehttp clients with functional options. Node
// transports use it with retries enabled; the webhook dispatcher uses it with
// retries disabled and passthrough errors so it can account for every
// attempt itself.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/blockgate/internal/pkg/logger"
)

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
	passthrough  bool
	logging      bool
}

// Option configures the client built by NewClient.
type Option func(*config)

// NewClient returns a retryablehttp.Client configured with opts. Defaults:
// 5s timeout, 1s to 5s wait between retries, 2 retries, no logging and the
// library's error handler (non-2xx responses that exhaust retries become
// errors).
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax

	if cfg.logging {
		client.Logger = leveledLogger{}
	}

	if cfg.passthrough {
		client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	}

	return client
}

// NewStandardClient is NewClient exposed as a plain *http.Client, for
// callers that only speak net/http.
func NewStandardClient(opts ...Option) *http.Client {
	return NewClient(opts...).StandardClient()
}

// WithTimeout sets the maximum duration of a single request.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retries.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retries.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the number of retries. Zero disables retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithPassthroughErrors returns the last response and error untouched
// instead of converting exhausted retries into a generic error.
func WithPassthroughErrors() Option {
	return func(c *config) {
		c.passthrough = true
	}
}

// WithLogging routes the client's retry logs to the process logger.
func WithLogging() Option {
	return func(c *config) {
		c.logging = true
	}
}

// leveledLogger adapts the process logger to retryablehttp.LeveledLogger.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, keysAndValues ...any) {
	logger.Error(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Info(msg string, keysAndValues ...any) {
	logger.Info(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Debug(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Warn(msg string, keysAndValues ...any) {
	logger.Warn(context.Background(), msg, keysAndValues...)
}
