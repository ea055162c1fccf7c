package genlive

import (
	"context"

	"github.com/veldtlabs/genlive/pkg/live"
)

// LiveService opens bidirectional streaming sessions.
type LiveService struct {
	client *Client
}

// Connect opens a live session using the client's API key and logger.
// Options given here override client-level live options.
func (s *LiveService) Connect(ctx context.Context, setup live.Setup, opts ...live.Option) (*live.Session, error) {
	merged := make([]live.Option, 0, len(s.client.liveOpts)+len(opts)+1)
	merged = append(merged, live.WithLogger(s.client.logger))
	merged = append(merged, s.client.liveOpts...)
	merged = append(merged, opts...)
	return live.Connect(ctx, s.client.apiKey, setup, merged...)
}
