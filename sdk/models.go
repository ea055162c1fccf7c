package genlive

import (
	"context"

	"github.com/veldtlabs/genlive/pkg/core/types"
	"github.com/veldtlabs/genlive/pkg/rest"
)

// ModelsService issues request/response generation calls.
type ModelsService struct {
	rest *rest.Client
}

// Generate sends a generation request and waits for the full response.
func (s *ModelsService) Generate(ctx context.Context, model string, req *types.GenerateRequest) (*types.GenerateResponse, error) {
	return s.rest.GenerateContent(ctx, model, req)
}

// GenerateText is a convenience wrapper for single-prompt text generation.
func (s *ModelsService) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := s.rest.GenerateContent(ctx, model, &types.GenerateRequest{
		Contents: []types.Content{types.UserText(prompt)},
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// GenerateStream sends a generation request and returns an iterator over
// partial responses.
func (s *ModelsService) GenerateStream(ctx context.Context, model string, req *types.GenerateRequest) (*rest.Stream, error) {
	return s.rest.StreamGenerateContent(ctx, model, req)
}
