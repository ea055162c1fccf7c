package types

// GenerateResponse is the response body shared by generateContent and each
// streamGenerateContent chunk.
type GenerateResponse struct {
	Candidates     []Candidate     `json:"candidates,omitempty"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
	UsageMetadata  *UsageMetadata  `json:"usageMetadata,omitempty"`
	ModelVersion   string          `json:"modelVersion,omitempty"`
}

// Candidate is one generated response alternative.
type Candidate struct {
	Content       *Content       `json:"content,omitempty"`
	FinishReason  FinishReason   `json:"finishReason,omitempty"`
	Index         int            `json:"index,omitempty"`
	SafetyRatings []SafetyRating `json:"safetyRatings,omitempty"`
}

// PromptFeedback reports safety assessment of the prompt itself.
type PromptFeedback struct {
	SafetyRatings []SafetyRating `json:"safetyRatings,omitempty"`
}

// FinishReason enumerates why generation stopped.
type FinishReason string

const (
	FinishStop       FinishReason = "STOP"
	FinishMaxTokens  FinishReason = "MAX_TOKENS"
	FinishSafety     FinishReason = "SAFETY"
	FinishRecitation FinishReason = "RECITATION"
	FinishOther      FinishReason = "OTHER"
)

// Text returns the concatenated text of the first candidate, or "" when the
// response carries no text.
func (r *GenerateResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return ""
	}
	return r.Candidates[0].Content.Text()
}
