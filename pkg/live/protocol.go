package live

import (
	"encoding/json"
	"fmt"

	"github.com/veldtlabs/genlive/pkg/core"
	"github.com/veldtlabs/genlive/pkg/core/types"
)

// Setup is the first frame of every session. It names the target model and
// fixes generation parameters for the connection's lifetime.
type Setup struct {
	// Model is the full model path, for example "models/gemini-2.0-flash-exp".
	Model string `json:"model"`

	GenerationConfig         *types.GenerationConfig         `json:"generationConfig,omitempty"`
	SystemInstruction        *types.Content                  `json:"systemInstruction,omitempty"`
	Tools                    []types.Tool                    `json:"tools,omitempty"`
	ToolConfig               *types.ToolConfig               `json:"toolConfig,omitempty"`
	RealtimeInputConfig      *RealtimeInputConfig            `json:"realtimeInputConfig,omitempty"`
	SessionResumption        *SessionResumptionConfig        `json:"sessionResumption,omitempty"`
	ContextWindowCompression *ContextWindowCompressionConfig `json:"contextWindowCompression,omitempty"`
	InputAudioTranscription  *AudioTranscriptionConfig       `json:"inputAudioTranscription,omitempty"`
	OutputAudioTranscription *AudioTranscriptionConfig       `json:"outputAudioTranscription,omitempty"`
}

// ClientContent carries one or more conversation turns from the caller.
type ClientContent struct {
	Turns        []types.Content `json:"turns"`
	TurnComplete bool            `json:"turnComplete"`
}

// RealtimeInput streams user input outside the turn structure. Exactly one
// field is set per frame.
type RealtimeInput struct {
	Text          string          `json:"text,omitempty"`
	Audio         *types.Blob     `json:"audio,omitempty"`
	Video         *types.Blob     `json:"video,omitempty"`
	ActivityStart *ActivityMarker `json:"activityStart,omitempty"`
	ActivityEnd   *ActivityMarker `json:"activityEnd,omitempty"`
	AudioStreamEnd *bool          `json:"audioStreamEnd,omitempty"`
}

// ActivityMarker is an empty signal marking manual activity boundaries.
type ActivityMarker struct{}

// ToolResponse returns function results to the model.
type ToolResponse struct {
	FunctionResponses []types.FunctionResponse `json:"functionResponses"`
}

// RealtimeInputConfig tunes how realtime input is segmented into activity.
type RealtimeInputConfig struct {
	AutomaticActivityDetection *AutomaticActivityDetection `json:"automaticActivityDetection,omitempty"`
	ActivityHandling           ActivityHandling            `json:"activityHandling,omitempty"`
	TurnCoverage               TurnCoverage                `json:"turnCoverage,omitempty"`
}

// AutomaticActivityDetection configures server-side voice activity detection.
type AutomaticActivityDetection struct {
	Disabled                 *bool            `json:"disabled,omitempty"`
	StartOfSpeechSensitivity StartSensitivity `json:"startOfSpeechSensitivity,omitempty"`
	PrefixPaddingMS          *int             `json:"prefixPaddingMs,omitempty"`
	EndOfSpeechSensitivity   EndSensitivity   `json:"endOfSpeechSensitivity,omitempty"`
	SilenceDurationMS        *int             `json:"silenceDurationMs,omitempty"`
}

// ActivityHandling controls whether user activity interrupts generation.
type ActivityHandling string

const (
	StartOfActivityInterrupts ActivityHandling = "START_OF_ACTIVITY_INTERRUPTS"
	NoInterruption            ActivityHandling = "NO_INTERRUPTION"
)

// StartSensitivity tunes start-of-speech detection.
type StartSensitivity string

const (
	StartSensitivityHigh StartSensitivity = "START_SENSITIVITY_HIGH"
	StartSensitivityLow  StartSensitivity = "START_SENSITIVITY_LOW"
)

// EndSensitivity tunes end-of-speech detection.
type EndSensitivity string

const (
	EndSensitivityHigh EndSensitivity = "END_SENSITIVITY_HIGH"
	EndSensitivityLow  EndSensitivity = "END_SENSITIVITY_LOW"
)

// TurnCoverage selects how much realtime input a turn includes.
type TurnCoverage string

const (
	TurnIncludesOnlyActivity TurnCoverage = "TURN_INCLUDES_ONLY_ACTIVITY"
	TurnIncludesAllInput     TurnCoverage = "TURN_INCLUDES_ALL_INPUT"
)

// SessionResumptionConfig asks the server to resume a prior session.
type SessionResumptionConfig struct {
	Handle string `json:"handle,omitempty"`
}

// ContextWindowCompressionConfig enables sliding-window context compression.
type ContextWindowCompressionConfig struct {
	SlidingWindow SlidingWindow `json:"slidingWindow"`
	TriggerTokens *int64        `json:"triggerTokens,omitempty"`
}

// SlidingWindow sets the compression target size.
type SlidingWindow struct {
	TargetTokens int64 `json:"targetTokens"`
}

// AudioTranscriptionConfig enables transcription of an audio direction.
type AudioTranscriptionConfig struct{}

// Transcription is a text rendering of streamed audio.
type Transcription struct {
	Text string `json:"text"`
}

// clientFrame is the outbound one-of envelope. Exactly one field is set.
type clientFrame struct {
	Setup         *Setup         `json:"setup,omitempty"`
	ClientContent *ClientContent `json:"clientContent,omitempty"`
	RealtimeInput *RealtimeInput `json:"realtimeInput,omitempty"`
	ToolResponse  *ToolResponse  `json:"toolResponse,omitempty"`
}

// kind names the frame variant for logging.
func (f clientFrame) kind() string {
	switch {
	case f.Setup != nil:
		return "setup"
	case f.ClientContent != nil:
		return "clientContent"
	case f.RealtimeInput != nil:
		return "realtimeInput"
	case f.ToolResponse != nil:
		return "toolResponse"
	default:
		return "empty"
	}
}

// serverFrame mirrors the inbound one-of envelope.
type serverFrame struct {
	SetupComplete           *struct{}                `json:"setupComplete,omitempty"`
	ServerContent           *serverContent           `json:"serverContent,omitempty"`
	UsageMetadata           *types.UsageMetadata     `json:"usageMetadata,omitempty"`
	ToolCall                *serverToolCall          `json:"toolCall,omitempty"`
	ToolCallCancellation    *toolCallCancellation    `json:"toolCallCancellation,omitempty"`
	GoAway                  *goAway                  `json:"goAway,omitempty"`
	SessionResumptionUpdate *sessionResumptionUpdate `json:"sessionResumptionUpdate,omitempty"`
}

type serverContent struct {
	ModelTurn           *types.Content  `json:"modelTurn,omitempty"`
	TurnComplete        bool            `json:"turnComplete,omitempty"`
	GenerationComplete  bool            `json:"generationComplete,omitempty"`
	Interrupted         bool            `json:"interrupted,omitempty"`
	GroundingMetadata   json.RawMessage `json:"groundingMetadata,omitempty"`
	InputTranscription  *Transcription  `json:"inputTranscription,omitempty"`
	OutputTranscription *Transcription  `json:"outputTranscription,omitempty"`
}

type serverToolCall struct {
	FunctionCalls []types.FunctionCall `json:"functionCalls"`
}

type toolCallCancellation struct {
	IDs []string `json:"ids"`
}

type goAway struct {
	TimeLeft string `json:"timeLeft,omitempty"`
}

type sessionResumptionUpdate struct {
	NewHandle string `json:"newHandle,omitempty"`
	Resumable bool   `json:"resumable,omitempty"`
}

// decodeServerFrame maps one wire payload to exactly one event. Payloads
// that do not decode, or decode to no known variant, return a
// malformed-frame error; callers report it and keep the session open.
func decodeServerFrame(data []byte) (Event, error) {
	var frame serverFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return nil, core.NewMalformedFrameError("undecodable frame", err)
	}

	switch {
	case frame.SetupComplete != nil:
		return SetupCompleteEvent{}, nil
	case frame.ServerContent != nil:
		return ContentEvent{
			ModelTurn:           frame.ServerContent.ModelTurn,
			TurnComplete:        frame.ServerContent.TurnComplete,
			GenerationComplete:  frame.ServerContent.GenerationComplete,
			Interrupted:         frame.ServerContent.Interrupted,
			GroundingMetadata:   frame.ServerContent.GroundingMetadata,
			InputTranscription:  frame.ServerContent.InputTranscription,
			OutputTranscription: frame.ServerContent.OutputTranscription,
			Usage:               frame.UsageMetadata,
		}, nil
	case frame.ToolCall != nil:
		return ToolCallEvent{FunctionCalls: frame.ToolCall.FunctionCalls}, nil
	case frame.ToolCallCancellation != nil:
		return ToolCallCancellationEvent{IDs: frame.ToolCallCancellation.IDs}, nil
	case frame.GoAway != nil:
		return GoAwayEvent{TimeLeft: frame.GoAway.TimeLeft}, nil
	case frame.SessionResumptionUpdate != nil:
		return SessionResumptionUpdateEvent{
			NewHandle: frame.SessionResumptionUpdate.NewHandle,
			Resumable: frame.SessionResumptionUpdate.Resumable,
		}, nil
	default:
		return nil, core.NewMalformedFrameError("unknown server message", fmt.Errorf("no recognized variant in frame"))
	}
}
