// Package llm abstracts the generative text provider used for live
// exercise generation. The engine only ever does single-turn structured
// generation: one prompt in, one schema-validated JSON document out.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the interface the exercise generator consumes.
type Provider interface {
	// Generate sends a prompt to the model and returns structured JSON.
	// When req.Schema is set the provider uses its native structured
	// output mechanism and the response Content is validated against
	// the schema before being returned.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single-turn generation call.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user message.
	Prompt string

	// Schema is the JSON Schema the response must conform to.
	// When nil the raw text is returned unvalidated.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema, kebab-case.
	Name string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated JSON (schema-validated when a Schema was set).
	Content json.RawMessage

	// Model is the model that served the request.
	Model string

	// Usage reports token consumption for this request.
	Usage Usage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
