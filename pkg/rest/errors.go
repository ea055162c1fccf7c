package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/veldtlabs/genlive/pkg/core"
)

// apiErrorEnvelope is the error response shape of the API.
type apiErrorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Type     string            `json:"@type"`
			Reason   string            `json:"reason,omitempty"`
			Domain   string            `json:"domain,omitempty"`
			Metadata map[string]string `json:"metadata,omitempty"`
		} `json:"details,omitempty"`
	} `json:"error"`
}

// parseError turns a non-2xx response into a typed error carrying the API's
// status string as its code.
func parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope apiErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Message == "" {
		return &core.Error{
			Type:    core.ErrAPI,
			Message: http.StatusText(resp.StatusCode) + ": " + string(body),
			Code:    resp.Status,
		}
	}

	return &core.Error{
		Type:     core.ErrAPI,
		Message:  envelope.Error.Message,
		Code:     envelope.Error.Status,
		APIError: envelope.Error,
	}
}

// IsRetryable reports whether err is a transient API failure worth retrying.
func IsRetryable(err error) bool {
	var apiErr *core.Error
	if !errors.As(err, &apiErr) || apiErr.Type != core.ErrAPI {
		return false
	}
	switch apiErr.Code {
	case "RESOURCE_EXHAUSTED", "UNAVAILABLE", "INTERNAL", "DEADLINE_EXCEEDED":
		return true
	default:
		return false
	}
}
