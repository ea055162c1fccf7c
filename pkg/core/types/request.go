package types

// GenerateRequest is the request body for generateContent and
// streamGenerateContent.
type GenerateRequest struct {
	Contents          []Content         `json:"contents"`
	Tools             []Tool            `json:"tools,omitempty"`
	ToolConfig        *ToolConfig       `json:"toolConfig,omitempty"`
	SafetySettings    []SafetySetting   `json:"safetySettings,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
}

// SystemInstruction builds a system instruction content from text. The API
// accepts parts without a role here.
func SystemInstruction(text string) *Content {
	return &Content{Parts: []Part{TextPart(text)}}
}
