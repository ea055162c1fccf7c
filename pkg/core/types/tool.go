package types

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Tool makes one capability available to the model. Exactly one field is set.
type Tool struct {
	FunctionDeclarations  []FunctionDeclaration  `json:"functionDeclarations,omitempty"`
	GoogleSearch          *GoogleSearch          `json:"googleSearch,omitempty"`
	GoogleSearchRetrieval *GoogleSearchRetrieval `json:"googleSearchRetrieval,omitempty"`
	CodeExecution         *CodeExecution         `json:"codeExecution,omitempty"`
}

// FunctionDeclaration describes a callable function to the model.
// Parameters and Response are OpenAPI-style JSON schemas.
type FunctionDeclaration struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Parameters  json.RawMessage  `json:"parameters,omitempty"`
	Response    json.RawMessage  `json:"response,omitempty"`
	Behavior    FunctionBehavior `json:"behavior,omitempty"`
}

// FunctionBehavior controls whether generation waits on the response.
type FunctionBehavior string

const (
	// BehaviorBlocking waits for the function response before continuing.
	BehaviorBlocking FunctionBehavior = "BLOCKING"
	// BehaviorNonBlocking lets generation continue while the call runs.
	BehaviorNonBlocking FunctionBehavior = "NON_BLOCKING"
)

// GoogleSearch enables search grounding (Gemini 2.0+ models).
type GoogleSearch struct{}

// CodeExecution enables the code execution tool.
type CodeExecution struct{}

// GoogleSearchRetrieval enables legacy dynamic search retrieval.
type GoogleSearchRetrieval struct {
	DynamicRetrievalConfig *DynamicRetrievalConfig `json:"dynamicRetrievalConfig,omitempty"`
}

// DynamicRetrievalConfig tunes when retrieval triggers.
type DynamicRetrievalConfig struct {
	Mode             DynamicRetrievalMode `json:"mode,omitempty"`
	DynamicThreshold *float64             `json:"dynamicThreshold,omitempty"`
}

// DynamicRetrievalMode enumerates retrieval trigger modes.
type DynamicRetrievalMode string

const (
	RetrievalModeUnspecified DynamicRetrievalMode = "MODE_UNSPECIFIED"
	RetrievalModeDynamic     DynamicRetrievalMode = "MODE_DYNAMIC"
)

// ToolConfig constrains how the model may call tools.
type ToolConfig struct {
	FunctionCallingConfig *FunctionCallingConfig `json:"functionCallingConfig,omitempty"`
}

// FunctionCallingConfig controls function calling behavior.
type FunctionCallingConfig struct {
	Mode                 FunctionCallingMode `json:"mode,omitempty"`
	AllowedFunctionNames []string            `json:"allowedFunctionNames,omitempty"`
}

// FunctionCallingMode enumerates function calling modes.
type FunctionCallingMode string

const (
	FunctionCallingAuto FunctionCallingMode = "AUTO"
	FunctionCallingAny  FunctionCallingMode = "ANY"
	FunctionCallingNone FunctionCallingMode = "NONE"
)

// DeclareFunction builds a FunctionDeclaration whose parameter schema is
// reflected from params, a struct value (or pointer) describing the
// function's arguments. Use json struct tags to name fields and
// jsonschema_description tags to document them.
func DeclareFunction(name, description string, params any) FunctionDeclaration {
	decl := FunctionDeclaration{Name: name, Description: description}
	if params == nil {
		return decl
	}

	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(params)
	raw, err := json.Marshal(schema)
	if err != nil {
		return decl
	}
	decl.Parameters = SanitizeSchema(raw)
	return decl
}

// SanitizeSchema strips JSON Schema fields the API rejects
// (additionalProperties, $schema, $id, $ref, definitions, $defs),
// recursing through properties, items, and the *Of combinators.
func SanitizeSchema(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		return raw
	}
	sanitizeSchemaMap(schema)
	out, err := json.Marshal(schema)
	if err != nil {
		return raw
	}
	return out
}

func sanitizeSchemaMap(schema map[string]any) {
	delete(schema, "additionalProperties")
	delete(schema, "$schema")
	delete(schema, "$id")
	delete(schema, "$ref")
	delete(schema, "definitions")
	delete(schema, "$defs")

	if props, ok := schema["properties"].(map[string]any); ok {
		for _, v := range props {
			if prop, ok := v.(map[string]any); ok {
				sanitizeSchemaMap(prop)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		sanitizeSchemaMap(items)
	}
	for _, key := range []string{"anyOf", "oneOf", "allOf"} {
		if arr, ok := schema[key].([]any); ok {
			for _, item := range arr {
				if sub, ok := item.(map[string]any); ok {
					sanitizeSchemaMap(sub)
				}
			}
		}
	}
}
