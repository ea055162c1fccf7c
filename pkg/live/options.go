package live

import (
	"log/slog"
	"time"
)

const (
	defaultHandshakeTimeout = 15 * time.Second
	defaultQueueCapacity    = 1024
)

type config struct {
	endpoint         string
	handshakeTimeout time.Duration
	queueCapacity    int
	logger           *slog.Logger
	dialer           Dialer
}

func defaultConfig() config {
	return config{
		endpoint:         DefaultEndpoint,
		handshakeTimeout: defaultHandshakeTimeout,
		queueCapacity:    defaultQueueCapacity,
		logger:           slog.Default(),
		dialer:           newWSDialer(),
	}
}

// Option configures a session at connect time.
type Option func(*config)

// WithEndpoint overrides the websocket endpoint. Useful against proxies and
// test servers.
func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHandshakeTimeout bounds the wait for the setup acknowledgement.
func WithHandshakeTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.handshakeTimeout = d
		}
	}
}

// WithQueueCapacity sets the event channel buffer. Once full, the reader
// blocks rather than dropping events, so a stalled consumer exerts
// backpressure on the connection.
func WithQueueCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.queueCapacity = n
		}
	}
}

// WithLogger routes session logs to the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDialer substitutes the transport dialer.
func WithDialer(d Dialer) Option {
	return func(c *config) {
		if d != nil {
			c.dialer = d
		}
	}
}
