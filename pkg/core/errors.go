// Package core holds the error taxonomy shared by the REST and Live clients.
package core

import (
	"errors"
	"fmt"
)

// Error represents an error raised by the client or surfaced by the API.
type Error struct {
	Type     ErrorType `json:"type"`
	Message  string    `json:"message"`
	Code     string    `json:"code,omitempty"`
	APIError any       `json:"api_error,omitempty"`

	wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (code: %s)", e.Type, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ErrorType categorizes errors.
type ErrorType string

const (
	// ErrConnection means the transport connection could not be established.
	ErrConnection ErrorType = "connection_error"
	// ErrHandshake means the setup exchange was rejected or timed out.
	ErrHandshake ErrorType = "handshake_error"
	// ErrProtocol means the peer violated frame ordering or structure.
	ErrProtocol ErrorType = "protocol_error"
	// ErrMalformedFrame marks a single undecodable frame. Non-fatal.
	ErrMalformedFrame ErrorType = "malformed_frame"
	// ErrTransport is a mid-session I/O failure. Fatal.
	ErrTransport ErrorType = "transport_error"
	// ErrUsage means the caller broke an API precondition.
	ErrUsage ErrorType = "usage_error"
	// ErrAPI is an error response from the REST API.
	ErrAPI ErrorType = "api_error"
)

// NewConnectionError creates a connection error.
func NewConnectionError(message string, cause error) *Error {
	return &Error{Type: ErrConnection, Message: message, wrapped: cause}
}

// NewHandshakeError creates a handshake error.
func NewHandshakeError(message string, cause error) *Error {
	return &Error{Type: ErrHandshake, Message: message, wrapped: cause}
}

// NewProtocolError creates a protocol error.
func NewProtocolError(message string) *Error {
	return &Error{Type: ErrProtocol, Message: message}
}

// NewMalformedFrameError creates a malformed frame error.
func NewMalformedFrameError(message string, cause error) *Error {
	return &Error{Type: ErrMalformedFrame, Message: message, wrapped: cause}
}

// NewTransportError creates a transport error.
func NewTransportError(message string, cause error) *Error {
	return &Error{Type: ErrTransport, Message: message, wrapped: cause}
}

// NewUsageError creates a usage error.
func NewUsageError(message string) *Error {
	return &Error{Type: ErrUsage, Message: message}
}

// NewAPIError creates an API error.
func NewAPIError(message string) *Error {
	return &Error{Type: ErrAPI, Message: message}
}

// Fatal reports whether the error ends the session it occurred on.
// Malformed individual frames are absorbed; everything else is terminal.
func (e *Error) Fatal() bool {
	return e.Type != ErrMalformedFrame
}

// Unwrap returns the underlying error for error wrapping.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// TypeOf returns the ErrorType of err when err is (or wraps) an *Error.
func TypeOf(err error) (ErrorType, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Type, true
	}
	return "", false
}
