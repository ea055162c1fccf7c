package genlive

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/veldtlabs/genlive/pkg/live"
	"github.com/veldtlabs/genlive/pkg/rest"
)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithAPIKey sets the API key explicitly instead of reading it from the
// environment.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithBaseURL overrides the REST endpoint.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.restOpts = append(c.restOpts, rest.WithBaseURL(url))
	}
}

// WithHTTPClient sets the HTTP client used for REST calls.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.restOpts = append(c.restOpts, rest.WithHTTPClient(client))
	}
}

// WithLiveEndpoint overrides the live websocket endpoint.
func WithLiveEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.liveOpts = append(c.liveOpts, live.WithEndpoint(endpoint))
	}
}

// WithLiveHandshakeTimeout bounds the live setup handshake.
func WithLiveHandshakeTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.liveOpts = append(c.liveOpts, live.WithHandshakeTimeout(d))
	}
}

// WithLogger routes SDK logs to the given logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
