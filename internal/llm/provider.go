// Package llm is the provider layer for the hint-refinement pass. It
// exposes a single-turn Generate call with structured JSON output and hides
// the per-vendor SDKs behind one interface, decorated with retry and
// usage-event logging.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured completion per call. Hint refinement is
// single-turn: a fixed system prompt plus one user prompt per batch, so
// there is no conversation state.
type Provider interface {
	// Generate sends the request and returns schema-conforming JSON when
	// req.Schema is set, raw text otherwise.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model the provider will call.
	ModelID() string
}

// Request is one generation call.
type Request struct {
	// System sets the role and output rules (the tutor prompt).
	System string

	// Prompt is the user turn: the rendered question batch.
	Prompt string

	// Schema, when set, makes the provider request native structured
	// output and validates the payload against it before returning.
	Schema *Schema

	// MaxTokens bounds the completion length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means the provider default.
	Temperature float64
}

// Schema is a JSON Schema the response payload must satisfy.
type Schema struct {
	// Name identifies the schema to the provider (OpenAI response format
	// name) and keys the compiled-schema cache. Kebab-case.
	Name string

	// Description tells the model what the payload represents.
	Description string

	// Definition is the schema document as a map.
	Definition map[string]any
}

// Response is the provider's output for one request.
type Response struct {
	// Content is the payload: validated JSON when the request carried a
	// Schema, raw text bytes otherwise.
	Content json.RawMessage

	// Usage is the token count the provider reported.
	Usage Usage

	// Model is the model that actually served the call, when the provider
	// reports it, else the configured model.
	Model string
}

// Usage is the token consumption of one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// aliasOrID maps a friendly model alias to the vendor model ID, passing
// unknown names through so exact IDs keep working.
func aliasOrID(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
