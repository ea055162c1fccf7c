// Package rest implements the request/response surface of the generative
// language v1beta API: generateContent and its SSE streaming variant.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/veldtlabs/genlive/pkg/core"
	"github.com/veldtlabs/genlive/pkg/core/types"
)

// DefaultBaseURL is the default API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client issues generateContent calls. A zero-value Client is not usable;
// construct one with NewClient.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a REST client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateContent sends a non-streaming generation request.
func (c *Client) GenerateContent(ctx context.Context, model string, req *types.GenerateRequest) (*types.GenerateResponse, error) {
	if err := validate(model, req); err != nil {
		return nil, err
	}

	respBody, err := c.doRequest(ctx, c.methodURL(model, "generateContent", nil), req)
	if err != nil {
		return nil, err
	}

	var resp types.GenerateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, core.NewAPIError("decode response: " + err.Error())
	}
	return &resp, nil
}

// StreamGenerateContent sends a streaming generation request and returns an
// iterator over response chunks.
func (c *Client) StreamGenerateContent(ctx context.Context, model string, req *types.GenerateRequest) (*Stream, error) {
	if err := validate(model, req); err != nil {
		return nil, err
	}

	body, err := c.doStreamRequest(ctx, c.methodURL(model, "streamGenerateContent", url.Values{"alt": {"sse"}}), req)
	if err != nil {
		return nil, err
	}
	return newStream(body), nil
}

func validate(model string, req *types.GenerateRequest) error {
	if model == "" {
		return core.NewUsageError("model is required")
	}
	if req == nil || len(req.Contents) == 0 {
		return core.NewUsageError("request must include at least one content")
	}
	return nil
}

// methodURL builds "{base}/{model}:{method}?key={apiKey}".
func (c *Client) methodURL(model, method string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("key", c.apiKey)
	return fmt.Sprintf("%s/%s:%s?%s", c.baseURL, model, method, query.Encode())
}

func (c *Client) doRequest(ctx context.Context, callURL string, req *types.GenerateRequest) ([]byte, error) {
	resp, err := c.post(ctx, callURL, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, parseError(resp)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.NewConnectionError("read response", err)
	}
	return respBody, nil
}

func (c *Client) doStreamRequest(ctx context.Context, callURL string, req *types.GenerateRequest) (io.ReadCloser, error) {
	resp, err := c.post(ctx, callURL, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, parseError(resp)
	}
	return resp.Body, nil
}

func (c *Client) post(ctx context.Context, callURL string, req *types.GenerateRequest) (*http.Response, error) {
	body, err := json.Marshal(sanitizeRequest(req))
	if err != nil {
		return nil, core.NewUsageError("encode request: " + err.Error())
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, callURL, bytes.NewReader(body))
	if err != nil {
		return nil, core.NewUsageError("create request: " + err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending request", "url_path", httpReq.URL.Path, "bytes", len(body))
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, core.NewConnectionError("http request", err)
	}
	return resp, nil
}

// sanitizeRequest strips schema keywords the API rejects from tool
// parameter schemas. The input request is not modified.
func sanitizeRequest(req *types.GenerateRequest) *types.GenerateRequest {
	if len(req.Tools) == 0 {
		return req
	}
	out := *req
	out.Tools = make([]types.Tool, len(req.Tools))
	for i, tool := range req.Tools {
		out.Tools[i] = tool
		if len(tool.FunctionDeclarations) == 0 {
			continue
		}
		decls := make([]types.FunctionDeclaration, len(tool.FunctionDeclarations))
		for j, decl := range tool.FunctionDeclarations {
			decls[j] = decl
			decls[j].Parameters = types.SanitizeSchema(decl.Parameters)
		}
		out.Tools[i].FunctionDeclarations = decls
	}
	return &out
}
