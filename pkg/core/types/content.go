// Package types defines the Gemini v1beta data model shared by the REST and
// Live clients: contents, parts, tools, generation config, and usage.
//
// The API uses camelCase JSON field names. Binary payloads travel as base64;
// []byte fields marshal to base64 strings via encoding/json, which matches
// the wire format exactly.
package types

// Role attributes a Content to one side of the conversation.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Content is an ordered sequence of parts attributed to a role.
type Content struct {
	Role  Role   `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is one unit of content. Exactly one of the payload fields is set.
type Part struct {
	Text                string               `json:"text,omitempty"`
	InlineData          *Blob                `json:"inlineData,omitempty"`
	FileData            *FileData            `json:"fileData,omitempty"`
	VideoMetadata       *VideoMetadata       `json:"videoMetadata,omitempty"`
	FunctionCall        *FunctionCall        `json:"functionCall,omitempty"`
	FunctionResponse    *FunctionResponse    `json:"functionResponse,omitempty"`
	ExecutableCode      *ExecutableCode      `json:"executableCode,omitempty"`
	CodeExecutionResult *CodeExecutionResult `json:"codeExecutionResult,omitempty"`

	// Thought marks parts produced by the model's thinking phase.
	Thought bool `json:"thought,omitempty"`
}

// Blob carries inline binary data tagged with a MIME type.
// Data is base64 in the wire representation.
type Blob struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// FileData references previously uploaded file content by URI.
type FileData struct {
	MIMEType string `json:"mimeType,omitempty"`
	FileURI  string `json:"fileUri"`
}

// VideoMetadata bounds the span of an attached video.
type VideoMetadata struct {
	StartOffset Offset `json:"startOffset"`
	EndOffset   Offset `json:"endOffset"`
}

// Offset is a protobuf-style duration.
type Offset struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos"`
}

// FunctionCall is a call requested by the model.
type FunctionCall struct {
	ID   string         `json:"id,omitempty"`
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// FunctionResponse returns a tool result to the model.
type FunctionResponse struct {
	ID           string                      `json:"id,omitempty"`
	Name         string                      `json:"name"`
	Response     FunctionResult              `json:"response"`
	WillContinue *bool                       `json:"willContinue,omitempty"`
	Scheduling   FunctionResponseScheduling  `json:"scheduling,omitempty"`
}

// FunctionResult wraps the JSON value produced by a tool.
type FunctionResult struct {
	Result any `json:"result"`
}

// FunctionResponseScheduling controls how a function response is folded into
// an ongoing Live generation.
type FunctionResponseScheduling string

const (
	// SchedulingSilent only adds the result to context.
	SchedulingSilent FunctionResponseScheduling = "SILENT"
	// SchedulingWhenIdle prompts generation without interrupting.
	SchedulingWhenIdle FunctionResponseScheduling = "WHEN_IDLE"
	// SchedulingInterrupt interrupts ongoing generation.
	SchedulingInterrupt FunctionResponseScheduling = "INTERRUPT"
)

// ExecutableCode is code the model wants executed.
type ExecutableCode struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// CodeExecutionResult reports the outcome of executed code.
type CodeExecutionResult struct {
	Outcome CodeExecutionOutcome `json:"outcome"`
	Output  string               `json:"output,omitempty"`
}

// CodeExecutionOutcome enumerates code execution results.
type CodeExecutionOutcome string

const (
	OutcomeOK               CodeExecutionOutcome = "OUTCOME_OK"
	OutcomeFailed           CodeExecutionOutcome = "OUTCOME_FAILED"
	OutcomeDeadlineExceeded CodeExecutionOutcome = "OUTCOME_DEADLINE_EXCEEDED"
)

// TextPart builds a text part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// AudioPart builds an inline audio part. mimeType declares the encoding
// (for example "audio/pcm;rate=16000"); the bytes pass through uninspected.
func AudioPart(mimeType string, data []byte) Part {
	return Part{InlineData: &Blob{MIMEType: mimeType, Data: data}}
}

// UserContent builds a user-role content from parts.
func UserContent(parts ...Part) Content {
	return Content{Role: RoleUser, Parts: parts}
}

// ModelContent builds a model-role content from parts.
func ModelContent(parts ...Part) Content {
	return Content{Role: RoleModel, Parts: parts}
}

// UserText builds a single-part user text content.
func UserText(text string) Content {
	return UserContent(TextPart(text))
}

// Text concatenates the text of all text parts in the content.
func (c Content) Text() string {
	var out string
	for _, part := range c.Parts {
		out += part.Text
	}
	return out
}
