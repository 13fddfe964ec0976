// Package nodeconn turns the settings of a transport connection into a
// JSON-RPC client.
//
// Recognized settings:
//
//	url       node endpoint (required)
//	username  basic auth user
//	password  basic auth password
//	timeout   per request timeout, Go duration syntax (default 10s)
//	header.*  static request headers, e.g. header.x-api-key
package nodeconn

import (
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/blockgate/internal/chain"
	"github.com/gabapcia/blockgate/internal/model"
	"github.com/gabapcia/blockgate/internal/pkg/transport/http"
	"github.com/gabapcia/blockgate/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/blockgate/internal/pkg/validator"
)

const (
	SettingURL      = "url"
	SettingUsername = "username"
	SettingPassword = "password"
	SettingTimeout  = "timeout"

	headerPrefix = "header."

	defaultTimeout = 10 * time.Second
)

// Settings is the decoded form of a connection's settings map.
type Settings struct {
	URL      string `validate:"required,url"`
	Username string
	Password string
	Timeout  time.Duration `validate:"gt=0"`
	Headers  map[string]string
}

// ParseSettings decodes and validates the settings of conn.
func ParseSettings(conn model.TransportConnection) (Settings, error) {
	s := Settings{
		URL:      conn.Settings[SettingURL],
		Username: conn.Settings[SettingUsername],
		Password: conn.Settings[SettingPassword],
		Timeout:  defaultTimeout,
		Headers:  make(map[string]string),
	}

	if s.URL == "" {
		return Settings{}, fmt.Errorf("%w: %s on connection %s", chain.ErrMissingSetting, SettingURL, conn.ID)
	}

	if raw, ok := conn.Settings[SettingTimeout]; ok {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("connection %s: invalid timeout %q: %w", conn.ID, raw, err)
		}
		s.Timeout = timeout
	}

	for k, v := range conn.Settings {
		if name, ok := strings.CutPrefix(k, headerPrefix); ok && name != "" {
			s.Headers[name] = v
		}
	}

	if err := validator.Validate(s); err != nil {
		return Settings{}, fmt.Errorf("connection %s: %w", conn.ID, err)
	}

	return s, nil
}

// Dial builds the JSON-RPC client of conn. Transport-level retries are kept
// short; failover between providers is handled above the adapter.
func Dial(conn model.TransportConnection) (jsonrpc.Client, error) {
	s, err := ParseSettings(conn)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewStandardClient(
		http.WithTimeout(s.Timeout),
		http.WithRetryMax(1),
		http.WithRetryWaitMin(100*time.Millisecond),
		http.WithRetryWaitMax(time.Second),
	)

	opts := []jsonrpc.Option{}
	if s.Username != "" || s.Password != "" {
		opts = append(opts, jsonrpc.WithBasicAuth(s.Username, s.Password))
	}
	for k, v := range s.Headers {
		opts = append(opts, jsonrpc.WithHeader(k, v))
	}

	return jsonrpc.NewClient(httpClient, s.URL, opts...), nil
}
