package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDeclareFunctionReflectsSchema(t *testing.T) {
	t.Parallel()

	type weatherArgs struct {
		City string `json:"city" jsonschema_description:"City to look up"`
		Days int    `json:"days,omitempty"`
	}

	decl := DeclareFunction("get_weather", "Look up a forecast", weatherArgs{})
	if decl.Name != "get_weather" {
		t.Fatalf("name=%q", decl.Name)
	}
	if len(decl.Parameters) == 0 {
		t.Fatalf("expected reflected parameters schema")
	}

	var schema map[string]any
	if err := json.Unmarshal(decl.Parameters, &schema); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}
	if schema["type"] != "object" {
		t.Fatalf("schema type=%v", schema["type"])
	}
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("missing properties: %v", schema)
	}
	if _, ok := props["city"]; !ok {
		t.Fatalf("missing city property: %v", props)
	}
	for _, banned := range []string{"$schema", "additionalProperties", "$defs"} {
		if _, ok := schema[banned]; ok {
			t.Fatalf("schema still contains %s", banned)
		}
	}
}

func TestDeclareFunctionNilParams(t *testing.T) {
	t.Parallel()

	decl := DeclareFunction("ping", "No arguments", nil)
	if decl.Parameters != nil {
		t.Fatalf("expected nil parameters, got %s", decl.Parameters)
	}
}

func TestSanitizeSchemaRecurses(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"items": {"type": "array", "items": {"additionalProperties": false, "type": "object"}}
		},
		"anyOf": [{"$ref": "#/$defs/x", "type": "object"}]
	}`)

	out := string(SanitizeSchema(raw))
	for _, banned := range []string{"$schema", "additionalProperties", "$ref"} {
		if strings.Contains(out, banned) {
			t.Fatalf("sanitized schema still contains %s: %s", banned, out)
		}
	}
}
