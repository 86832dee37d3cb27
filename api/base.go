package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client handles API calls to a STRAT node. It is safe for concurrent use.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *zap.Logger
}

// Option customises a Client at construction time
type Option func(*Client)

// WithHTTPClient makes the client send requests through hc. The client keeps
// its own copy; hc's Timeout is only replaced when it is zero.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		copied := *hc
		if copied.Timeout == 0 {
			copied.Timeout = c.config.Timeout
		}
		c.httpClient = &copied
	}
}

// WithLogger attaches a logger for per-request debug output
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new API client. It never fails and performs no I/O.
func NewClient(config Config, opts ...Option) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	c := &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewDefaultClient creates a client for the local development node
func NewDefaultClient(opts ...Option) *Client {
	return NewClient(DefaultConfig(), opts...)
}

// Config returns a copy of the client configuration
func (c *Client) Config() Config {
	return c.config
}

// Request sends one request to endpoint and returns the decoded JSON body.
// endpoint is appended to the configured API URL as-is, so it must start
// with a slash. A nil body sends no payload.
func (c *Client) Request(ctx context.Context, method, endpoint string, body interface{}) (Value, error) {
	var result Value
	if err := c.do(ctx, method, endpoint, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (Value, error) {
	return c.Request(ctx, http.MethodGet, endpoint, nil)
}

func (c *Client) post(ctx context.Context, endpoint string, body interface{}) (Value, error) {
	return c.Request(ctx, http.MethodPost, endpoint, body)
}

// do performs exactly one HTTP round trip and decodes a 2xx body into out
func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}, out interface{}) error {
	url := c.config.APIURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return serializationError(err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return networkError(err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("url", url),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return networkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(respBody)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return serializationError(err)
		}
		return nil
	}

	var errorData Value
	if err := json.Unmarshal(respBody, &errorData); err != nil {
		return serializationError(err)
	}

	message := defaultErrorMessage
	if fields, ok := errorData.(map[string]interface{}); ok {
		if msg, ok := fields["error"].(string); ok {
			message = msg
		}
	}

	return apiError(resp.StatusCode, message)
}
