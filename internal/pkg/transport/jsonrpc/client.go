// Package jsonrpc is a JSON-RPC 2.0 client over HTTP, shared by the
// Ethereum and Bitcoin node adapters.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrProviderReturnedError indicates the node answered with a JSON-RPC error object.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates the node answered with a non-2xx HTTP status
	// and no decodable JSON-RPC body.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrEmptyResult indicates the node answered with a null result where a value was expected.
	ErrEmptyResult = errors.New("empty result")
)

// RPCError is a JSON-RPC error object returned by the node. It matches
// ErrProviderReturnedError with errors.Is.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *RPCError) Unwrap() error {
	return ErrProviderReturnedError
}

// ErrorCode returns the code of the RPCError wrapped in err.
func ErrorCode(err error) (int, bool) {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Code, true
	}

	return 0, false
}

type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *RPCError       `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns the JSON-RPC error carried by the response, if any.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Client sends JSON-RPC requests.
type Client interface {
	// Fetch calls method with params and returns the raw result.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	providerEndpoint string
	httpClient       *http.Client
	username         string
	password         string
	headers          map[string]string
}

var _ Client = (*client)(nil)

// Option configures a client built by NewClient.
type Option func(*client)

// WithBasicAuth authenticates every request (bitcoind rpcuser/rpcpassword).
func WithBasicAuth(username, password string) Option {
	return func(c *client) {
		c.username = username
		c.password = password
	}
}

// WithHeader adds a static header to every request (API keys of hosted providers).
func WithHeader(key, value string) Option {
	return func(c *client) {
		c.headers[key] = value
	}
}

func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	// bitcoind reports RPC errors with 4xx/5xx statuses and a regular body,
	// so the body is decoded before the status is considered.
	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		if res.StatusCode < 200 || res.StatusCode > 299 {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, res.Status)
		}
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, res.Status)
	}

	return data.Result, nil
}

// Call is Fetch followed by decoding the result into a T. A null result
// yields ErrEmptyResult.
func Call[T any](ctx context.Context, c Client, method string, params ...any) (T, error) {
	var out T

	raw, err := c.Fetch(ctx, method, params...)
	if err != nil {
		return out, err
	}

	if len(raw) == 0 || string(raw) == "null" {
		return out, fmt.Errorf("%w: %s", ErrEmptyResult, method)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s result: %w", method, err)
	}

	return out, nil
}

// NewClient returns a Client posting to providerEndpoint with httpClient.
func NewClient(httpClient *http.Client, providerEndpoint string, opts ...Option) *client {
	c := &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
		headers:          make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
