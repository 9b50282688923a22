package llm

import (
	"testing"
)

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-flash-lite", "gemini-2.0-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := aliasOrID(tt.in, geminiAliases); got != tt.want {
			t.Errorf("aliasOrID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiSchemaFromHintLists(t *testing.T) {
	def := map[string]any{
		"type":        "array",
		"description": "Per-question hint lists.",
		"items": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 2,
			"maxItems": 3,
		},
	}

	s := geminiSchema(def)

	if s.Type != "ARRAY" {
		t.Fatalf("type = %s", s.Type)
	}
	if s.Description != "Per-question hint lists." {
		t.Fatalf("description = %q", s.Description)
	}
	inner := s.Items
	if inner == nil || inner.Type != "ARRAY" {
		t.Fatalf("items = %+v", inner)
	}
	if inner.MinItems == nil || *inner.MinItems != 2 {
		t.Fatalf("minItems = %v", inner.MinItems)
	}
	if inner.MaxItems == nil || *inner.MaxItems != 3 {
		t.Fatalf("maxItems = %v", inner.MaxItems)
	}
	if inner.Items == nil || inner.Items.Type != "STRING" {
		t.Fatalf("inner items = %+v", inner.Items)
	}
}

func TestGeminiSchemaFromObject(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subject": map[string]any{"type": "string", "enum": []any{"Physique", "Chimie"}},
			"count":   map[string]any{"type": "integer"},
		},
		"required": []any{"subject", "count"},
	}

	s := geminiSchema(def)

	if s.Type != "OBJECT" {
		t.Fatalf("type = %s", s.Type)
	}
	if len(s.Properties) != 2 {
		t.Fatalf("properties = %d", len(s.Properties))
	}
	if s.Properties["count"].Type != "INTEGER" {
		t.Fatalf("count type = %s", s.Properties["count"].Type)
	}
	if got := s.Properties["subject"].Enum; len(got) != 2 || got[0] != "Physique" {
		t.Fatalf("enum = %v", got)
	}
	if len(s.Required) != 2 {
		t.Fatalf("required = %v", s.Required)
	}
}

func TestIntBoundAcceptsDecodedNumbers(t *testing.T) {
	if n, ok := intBound(3); !ok || n != 3 {
		t.Errorf("intBound(int) = %d, %v", n, ok)
	}
	if n, ok := intBound(float64(2)); !ok || n != 2 {
		t.Errorf("intBound(float64) = %d, %v", n, ok)
	}
	if _, ok := intBound("2"); ok {
		t.Error("intBound accepted a string")
	}
}
