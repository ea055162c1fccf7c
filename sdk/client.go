// Package genlive is the entry point of the SDK. It exposes the v1beta
// generative language API in two shapes: request/response generation via
// Client.Models and bidirectional streaming via Client.Live.
package genlive

import (
	"log/slog"
	"os"

	"github.com/veldtlabs/genlive/pkg/live"
	"github.com/veldtlabs/genlive/pkg/rest"
)

// Client is the main entry point for the SDK.
type Client struct {
	Models *ModelsService
	Live   *LiveService

	apiKey   string
	logger   *slog.Logger
	restOpts []rest.Option
	liveOpts []live.Option
}

// NewClient creates a new client. The API key is taken from GEMINI_API_KEY
// (or GOOGLE_API_KEY) unless WithAPIKey is given.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		c.apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.apiKey == "" {
		c.apiKey = os.Getenv("GOOGLE_API_KEY")
	}

	restClient := rest.NewClient(c.apiKey, append([]rest.Option{rest.WithLogger(c.logger)}, c.restOpts...)...)
	c.Models = &ModelsService{rest: restClient}
	c.Live = &LiveService{client: c}
	return c
}
