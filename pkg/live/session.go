package live

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/veldtlabs/genlive/pkg/core"
	"github.com/veldtlabs/genlive/pkg/core/types"
)

// State is a session lifecycle phase. Transitions only move forward;
// StateErrored and StateClosed are final.
type State int32

const (
	StateConnecting State = iota
	StateAwaitingSetupAck
	StateReady
	StateClosing
	StateClosed
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateAwaitingSetupAck:
		return "awaiting_setup_ack"
	case StateReady:
		return "ready"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Session is one bidirectional streaming conversation. Create it with
// Connect; read server activity from Events and send with the Send methods.
// A Session is safe for concurrent use, with one consumer of Events.
type Session struct {
	id     string
	conn   Conn
	logger *slog.Logger

	events   chan Event
	done     chan struct{}
	closeReq chan struct{}

	state atomic.Int32

	closeOnce sync.Once

	errMu sync.Mutex
	err   error

	resumeMu     sync.Mutex
	resumeHandle string
}

// Connect dials the live endpoint, sends the setup frame, and waits for the
// server's acknowledgement. On success the session is ready to send and its
// event channel starts with a SetupCompleteEvent. ctx bounds the dial and
// handshake; cancelling it afterwards closes the session.
func Connect(ctx context.Context, apiKey string, setup Setup, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if apiKey == "" {
		return nil, core.NewUsageError("api key is required")
	}
	if setup.Model == "" {
		return nil, core.NewUsageError("setup model is required")
	}

	endpoint, err := endpointWithKey(cfg.endpoint, apiKey)
	if err != nil {
		return nil, core.NewUsageError("invalid live endpoint: " + err.Error())
	}

	s := &Session{
		id:       uuid.NewString(),
		events:   make(chan Event, cfg.queueCapacity),
		done:     make(chan struct{}),
		closeReq: make(chan struct{}),
	}
	s.logger = cfg.logger.With("session_id", s.id)
	s.state.Store(int32(StateConnecting))

	s.logger.Debug("dialing live endpoint", "model", setup.Model)
	conn, err := cfg.dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, core.NewConnectionError("dial live endpoint", err)
	}
	s.conn = conn
	s.setState(StateAwaitingSetupAck)

	if err := s.writeFrame(clientFrame{Setup: &setup}); err != nil {
		conn.Close()
		return nil, core.NewHandshakeError("send setup", err)
	}
	if err := s.awaitSetupAck(cfg.handshakeTimeout); err != nil {
		conn.Close()
		return nil, err
	}

	s.setState(StateReady)
	s.logger.Debug("session ready")
	s.events <- SetupCompleteEvent{}
	go s.readLoop()
	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				s.Close()
			case <-s.done:
			}
		}()
	}
	return s, nil
}

// Events returns the ordered stream of server activity. The channel closes
// after a terminal ClosedEvent or ErrorEvent.
func (s *Session) Events() <-chan Event {
	return s.events
}

// ID is the client-generated identifier used in this session's logs.
func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Err returns the error that terminated the session, if any.
func (s *Session) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

// ResumptionHandle returns the most recent resumable handle delivered by the
// server, or "" when none has arrived. Pass it to a new session's
// Setup.SessionResumption to continue the conversation.
func (s *Session) ResumptionHandle() string {
	s.resumeMu.Lock()
	defer s.resumeMu.Unlock()
	return s.resumeHandle
}

// SendClientContent sends conversation turns. turnComplete signals that the
// model should respond.
func (s *Session) SendClientContent(turnComplete bool, turns ...types.Content) error {
	return s.send(clientFrame{ClientContent: &ClientContent{Turns: turns, TurnComplete: turnComplete}})
}

// SendText sends a complete user text turn.
func (s *Session) SendText(text string) error {
	return s.SendClientContent(true, types.UserText(text))
}

// SendRealtimeInput sends one realtime input frame.
func (s *Session) SendRealtimeInput(in RealtimeInput) error {
	if in == (RealtimeInput{}) {
		return core.NewUsageError("realtime input is empty")
	}
	return s.send(clientFrame{RealtimeInput: &in})
}

// SendRealtimeText streams text outside the turn structure.
func (s *Session) SendRealtimeText(text string) error {
	return s.SendRealtimeInput(RealtimeInput{Text: text})
}

// SendAudio streams an audio chunk, for example "audio/pcm;rate=16000".
func (s *Session) SendAudio(mimeType string, data []byte) error {
	return s.SendRealtimeInput(RealtimeInput{Audio: &types.Blob{MIMEType: mimeType, Data: data}})
}

// SendVideo streams a video frame.
func (s *Session) SendVideo(mimeType string, data []byte) error {
	return s.SendRealtimeInput(RealtimeInput{Video: &types.Blob{MIMEType: mimeType, Data: data}})
}

// SendActivityStart marks the start of user activity when automatic
// activity detection is disabled.
func (s *Session) SendActivityStart() error {
	return s.SendRealtimeInput(RealtimeInput{ActivityStart: &ActivityMarker{}})
}

// SendActivityEnd marks the end of user activity.
func (s *Session) SendActivityEnd() error {
	return s.SendRealtimeInput(RealtimeInput{ActivityEnd: &ActivityMarker{}})
}

// SendAudioStreamEnd tells the server the audio stream has gone quiet.
func (s *Session) SendAudioStreamEnd() error {
	end := true
	return s.SendRealtimeInput(RealtimeInput{AudioStreamEnd: &end})
}

// SendToolResponse returns function results to the model.
func (s *Session) SendToolResponse(responses ...types.FunctionResponse) error {
	if len(responses) == 0 {
		return core.NewUsageError("tool response requires at least one function response")
	}
	return s.send(clientFrame{ToolResponse: &ToolResponse{FunctionResponses: responses}})
}

// Close ends the session and waits for the event stream to terminate.
// Events already delivered remain readable from the channel. Safe to call
// more than once.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.setState(StateClosing)
		close(s.closeReq)
		s.logger.Debug("closing session")
		err = s.conn.Close()
	})
	<-s.done
	return err
}

func (s *Session) send(frame clientFrame) error {
	switch s.State() {
	case StateReady:
	case StateConnecting, StateAwaitingSetupAck:
		return core.NewUsageError("session is not ready: setup has not been acknowledged")
	case StateErrored:
		if err := s.Err(); err != nil {
			return err
		}
		return core.NewUsageError("session has failed")
	default:
		return core.NewUsageError("session is closed")
	}
	return s.writeFrame(frame)
}

func (s *Session) writeFrame(frame clientFrame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return core.NewUsageError("encode frame: " + err.Error())
	}
	// realtime input carries raw media; log its kind only
	if frame.RealtimeInput != nil {
		s.logger.Debug("sending frame", "type", frame.kind(), "bytes", len(payload))
	} else {
		s.logger.Debug("sending frame", "type", frame.kind(), "payload", string(payload))
	}
	if err := s.conn.WriteFrame(payload); err != nil {
		return core.NewTransportError("write frame", err)
	}
	return nil
}

// awaitSetupAck reads the first server frame under a deadline and requires
// it to be the setup acknowledgement.
func (s *Session) awaitSetupAck(timeout time.Duration) error {
	if err := s.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return core.NewHandshakeError("set handshake deadline", err)
	}
	defer s.conn.SetReadDeadline(time.Time{})

	data, err := s.conn.ReadFrame()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return core.NewHandshakeError("connection closed before setup acknowledgement", err)
		}
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return core.NewHandshakeError("timed out waiting for setup acknowledgement", err)
		}
		return core.NewHandshakeError("read setup acknowledgement", err)
	}

	ev, derr := decodeServerFrame(data)
	if derr != nil {
		return core.NewHandshakeError("undecodable setup acknowledgement", derr)
	}
	if _, ok := ev.(SetupCompleteEvent); !ok {
		return core.NewHandshakeError(
			"unexpected message before setup acknowledgement",
			core.NewProtocolError("server sent "+ev.liveEventType()+" before setupComplete"),
		)
	}
	return nil
}

// readLoop pumps server frames into the event channel until the connection
// ends. It owns all terminal transitions.
func (s *Session) readLoop() {
	defer close(s.done)
	defer close(s.events)

	for {
		data, err := s.conn.ReadFrame()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.setState(StateClosed)
				s.logger.Debug("session closed")
				s.emit(ClosedEvent{})
			} else {
				serr := core.NewTransportError("connection failed", err)
				s.storeErr(serr)
				s.setState(StateErrored)
				s.logger.Error("session failed", "error", err)
				s.emit(ErrorEvent{Err: serr})
			}
			return
		}

		ev, derr := decodeServerFrame(data)
		if derr != nil {
			s.logger.Warn("dropping malformed frame", "error", derr)
			raw := make(json.RawMessage, len(data))
			copy(raw, data)
			if !s.emit(MalformedFrameEvent{Err: derr, Raw: raw}) {
				return
			}
			continue
		}

		switch e := ev.(type) {
		case SessionResumptionUpdateEvent:
			if e.Resumable && e.NewHandle != "" {
				s.resumeMu.Lock()
				s.resumeHandle = e.NewHandle
				s.resumeMu.Unlock()
			}
		case GoAwayEvent:
			s.logger.Warn("server going away", "time_left", e.TimeLeft)
		}

		s.logger.Debug("received message", "type", ev.liveEventType())
		if !s.emit(ev) {
			return
		}
	}
}

// emit delivers an event in order, blocking while the queue is full. Once a
// close has been requested, remaining events are delivered only if they fit
// without blocking.
func (s *Session) emit(ev Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.closeReq:
	}
	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}

func (s *Session) storeErr(err error) {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// setState advances the lifecycle. Final states win races.
func (s *Session) setState(next State) {
	for {
		cur := State(s.state.Load())
		if cur == StateErrored || cur == StateClosed {
			return
		}
		if s.state.CompareAndSwap(int32(cur), int32(next)) {
			return
		}
	}
}

func endpointWithKey(endpoint, apiKey string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
