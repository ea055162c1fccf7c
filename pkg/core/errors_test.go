package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	t.Parallel()

	err := NewHandshakeError("setup rejected", nil)
	if got, want := err.Error(), "handshake_error: setup rejected"; got != want {
		t.Fatalf("Error()=%q, want %q", got, want)
	}

	err = &Error{Type: ErrAPI, Message: "quota exceeded", Code: "RESOURCE_EXHAUSTED"}
	if got, want := err.Error(), "api_error: quota exceeded (code: RESOURCE_EXHAUSTED)"; got != want {
		t.Fatalf("Error()=%q, want %q", got, want)
	}
}

func TestFatal(t *testing.T) {
	t.Parallel()

	if NewMalformedFrameError("bad frame", nil).Fatal() {
		t.Fatalf("malformed frame should not be fatal")
	}
	for _, err := range []*Error{
		NewConnectionError("dial", nil),
		NewHandshakeError("timeout", nil),
		NewProtocolError("out of order"),
		NewTransportError("read", nil),
		NewUsageError("send before ready"),
	} {
		if !err.Fatal() {
			t.Fatalf("%s should be fatal", err.Type)
		}
	}
}

func TestUnwrapAndTypeOf(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewTransportError("read frame", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find cause")
	}

	wrapped := fmt.Errorf("session: %w", err)
	typ, ok := TypeOf(wrapped)
	if !ok || typ != ErrTransport {
		t.Fatalf("TypeOf=%q ok=%v, want transport_error", typ, ok)
	}

	if _, ok := TypeOf(errors.New("plain")); ok {
		t.Fatalf("TypeOf should not match plain errors")
	}
}
