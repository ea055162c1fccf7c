package types

// HarmCategory enumerates the safety filter categories.
type HarmCategory string

const (
	HarmCategorySexuallyExplicit HarmCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryHateSpeech       HarmCategory = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategoryHarassment       HarmCategory = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryDangerousContent HarmCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

// HarmBlockThreshold sets how aggressively a category is filtered.
type HarmBlockThreshold string

const (
	BlockNone        HarmBlockThreshold = "BLOCK_NONE"
	BlockLowAndAbove HarmBlockThreshold = "BLOCK_LOW_AND_ABOVE"
	BlockMedAndAbove HarmBlockThreshold = "BLOCK_MED_AND_ABOVE"
	BlockOnlyHigh    HarmBlockThreshold = "BLOCK_HIGH_AND_ABOVE"
)

// HarmProbability is the model's assessment of content harm.
type HarmProbability string

const (
	HarmProbabilityNegligible HarmProbability = "NEGLIGIBLE"
	HarmProbabilityLow        HarmProbability = "LOW"
	HarmProbabilityMedium     HarmProbability = "MEDIUM"
	HarmProbabilityHigh       HarmProbability = "HIGH"
)

// SafetySetting adjusts the block threshold for one category.
type SafetySetting struct {
	Category  HarmCategory       `json:"category"`
	Threshold HarmBlockThreshold `json:"threshold"`
}

// SafetyRating reports the assessed probability for one category.
type SafetyRating struct {
	Category    HarmCategory    `json:"category"`
	Probability HarmProbability `json:"probability"`
	Blocked     bool            `json:"blocked,omitempty"`
}
