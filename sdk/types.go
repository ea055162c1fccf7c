package genlive

import (
	"github.com/veldtlabs/genlive/pkg/core/types"
	"github.com/veldtlabs/genlive/pkg/live"
)

// Re-exports so most programs only import the SDK package.
type (
	Content          = types.Content
	Part             = types.Part
	Blob             = types.Blob
	Tool             = types.Tool
	ToolConfig       = types.ToolConfig
	FunctionCall     = types.FunctionCall
	FunctionResponse = types.FunctionResponse
	GenerationConfig = types.GenerationConfig
	GenerateRequest  = types.GenerateRequest
	GenerateResponse = types.GenerateResponse
	UsageMetadata    = types.UsageMetadata

	Setup         = live.Setup
	RealtimeInput = live.RealtimeInput
	Session       = live.Session
	Event         = live.Event
)

var (
	UserText     = types.UserText
	UserContent  = types.UserContent
	ModelContent = types.ModelContent
	TextPart     = types.TextPart
	AudioPart    = types.AudioPart
)
