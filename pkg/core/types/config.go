package types

import "encoding/json"

// ResponseModality selects the kind of output the model generates.
type ResponseModality string

const (
	ModalityText  ResponseModality = "text"
	ModalityAudio ResponseModality = "audio"
)

// GenerationConfig controls sampling and output shape.
// Zero-valued fields are omitted from the wire.
type GenerationConfig struct {
	CandidateCount             *int              `json:"candidateCount,omitempty"`
	MaxOutputTokens            *int              `json:"maxOutputTokens,omitempty"`
	Temperature                *float64          `json:"temperature,omitempty"`
	TopP                       *float64          `json:"topP,omitempty"`
	TopK                       *int              `json:"topK,omitempty"`
	StopSequences              []string          `json:"stopSequences,omitempty"`
	Seed                       *int              `json:"seed,omitempty"`
	PresencePenalty            *float64          `json:"presencePenalty,omitempty"`
	FrequencyPenalty           *float64          `json:"frequencyPenalty,omitempty"`
	ResponseLogprobs           *bool             `json:"responseLogprobs,omitempty"`
	Logprobs                   *int              `json:"logprobs,omitempty"`
	EnableEnhancedCivicAnswers *bool             `json:"enableEnhancedCivicAnswers,omitempty"`
	ResponseModalities         []ResponseModality `json:"responseModalities,omitempty"`
	SpeechConfig               *SpeechConfig     `json:"speechConfig,omitempty"`
	ThinkingConfig             *ThinkingConfig   `json:"thinkingConfig,omitempty"`
	MediaResolution            MediaResolution   `json:"mediaResolution,omitempty"`
	ResponseMIMEType           string            `json:"responseMimeType,omitempty"`
	ResponseSchema             json.RawMessage   `json:"responseSchema,omitempty"`
}

// SpeechConfig selects the voice used for audio output.
type SpeechConfig struct {
	VoiceConfig  VoiceConfig `json:"voiceConfig"`
	LanguageCode string      `json:"languageCode,omitempty"`
}

// VoiceConfig wraps the prebuilt voice selection.
type VoiceConfig struct {
	PrebuiltVoiceConfig PrebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

// PrebuiltVoiceConfig names one of the API's built-in voices.
type PrebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName,omitempty"`
}

// ThinkingConfig controls the model's thinking phase.
type ThinkingConfig struct {
	IncludeThoughts *bool `json:"includeThoughts,omitempty"`
	ThinkingBudget  *int  `json:"thinkingBudget,omitempty"`
}

// MediaResolution trades media token cost against fidelity.
type MediaResolution string

const (
	MediaResolutionLow    MediaResolution = "MEDIA_RESOLUTION_LOW"
	MediaResolutionMedium MediaResolution = "MEDIA_RESOLUTION_MEDIUM"
	MediaResolutionHigh   MediaResolution = "MEDIA_RESOLUTION_HIGH"
)

// Int returns a pointer to v, for optional config fields.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for optional config fields.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for optional config fields.
func Bool(v bool) *bool { return &v }
