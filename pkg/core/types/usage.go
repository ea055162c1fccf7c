package types

// Modality enumerates token accounting modalities.
type Modality string

const (
	TokenModalityText     Modality = "TEXT"
	TokenModalityImage    Modality = "IMAGE"
	TokenModalityVideo    Modality = "VIDEO"
	TokenModalityAudio    Modality = "AUDIO"
	TokenModalityDocument Modality = "DOCUMENT"
)

// ModalityTokenCount breaks token usage down per modality.
type ModalityTokenCount struct {
	Modality   Modality `json:"modality"`
	TokenCount int      `json:"tokenCount"`
}

// UsageMetadata reports token consumption for a response or turn.
type UsageMetadata struct {
	PromptTokenCount        int                  `json:"promptTokenCount,omitempty"`
	CachedContentTokenCount int                  `json:"cachedContentTokenCount,omitempty"`
	CandidatesTokenCount    int                  `json:"candidatesTokenCount,omitempty"`
	ResponseTokenCount      int                  `json:"responseTokenCount,omitempty"`
	ToolUsePromptTokenCount int                  `json:"toolUsePromptTokenCount,omitempty"`
	ThoughtsTokenCount      int                  `json:"thoughtsTokenCount,omitempty"`
	TotalTokenCount         int                  `json:"totalTokenCount,omitempty"`
	PromptTokensDetails     []ModalityTokenCount `json:"promptTokensDetails,omitempty"`
	CacheTokensDetails      []ModalityTokenCount `json:"cacheTokensDetails,omitempty"`
	ResponseTokensDetails   []ModalityTokenCount `json:"responseTokensDetails,omitempty"`
}
