package live

import (
	"encoding/json"

	"github.com/veldtlabs/genlive/pkg/core/types"
)

// Event is a server message or session lifecycle notice delivered on the
// session's event channel. Implementations are the event types in this
// package; the unexported method keeps the set closed.
type Event interface {
	liveEventType() string
}

// SetupCompleteEvent acknowledges the setup frame. It is always the first
// event of a session.
type SetupCompleteEvent struct{}

// ContentEvent carries one increment of model output. Any subset of its
// fields may be populated on a single event.
type ContentEvent struct {
	// ModelTurn holds the incremental content, when present.
	ModelTurn *types.Content
	// TurnComplete marks the end of the model's turn.
	TurnComplete bool
	// GenerationComplete marks the end of generation for the current turn.
	GenerationComplete bool
	// Interrupted reports that user activity cut generation short.
	Interrupted bool

	GroundingMetadata   json.RawMessage
	InputTranscription  *Transcription
	OutputTranscription *Transcription

	// Usage is token accounting attached to this frame, when present.
	Usage *types.UsageMetadata
}

// Text returns the concatenated text of the model turn, if any.
func (e ContentEvent) Text() string {
	if e.ModelTurn == nil {
		return ""
	}
	return e.ModelTurn.Text()
}

// ToolCallEvent asks the caller to execute one or more functions.
type ToolCallEvent struct {
	FunctionCalls []types.FunctionCall
}

// ToolCallCancellationEvent withdraws previously issued tool calls.
type ToolCallCancellationEvent struct {
	IDs []string
}

// GoAwayEvent warns that the server will close the connection soon.
type GoAwayEvent struct {
	// TimeLeft is a duration string such as "10s".
	TimeLeft string
}

// SessionResumptionUpdateEvent delivers a fresh resumption handle.
type SessionResumptionUpdateEvent struct {
	NewHandle string
	Resumable bool
}

// MalformedFrameEvent reports a single frame that could not be decoded.
// The session stays open.
type MalformedFrameEvent struct {
	Err error
	Raw json.RawMessage
}

// ErrorEvent is terminal: the session failed and no further events follow.
type ErrorEvent struct {
	Err error
}

// ClosedEvent is terminal: the session ended cleanly and no further events
// follow.
type ClosedEvent struct{}

func (SetupCompleteEvent) liveEventType() string           { return "setup_complete" }
func (ContentEvent) liveEventType() string                 { return "content" }
func (ToolCallEvent) liveEventType() string                { return "tool_call" }
func (ToolCallCancellationEvent) liveEventType() string    { return "tool_call_cancellation" }
func (GoAwayEvent) liveEventType() string                  { return "go_away" }
func (SessionResumptionUpdateEvent) liveEventType() string { return "session_resumption_update" }
func (MalformedFrameEvent) liveEventType() string          { return "malformed_frame" }
func (ErrorEvent) liveEventType() string                   { return "error" }
func (ClosedEvent) liveEventType() string                  { return "closed" }
