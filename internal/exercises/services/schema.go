package services

import "github.com/architect/francais-pro/internal/llm"

// exerciseSchema constrains provider output to the exact exercise
// shape the client consumes. Validation happens inside the provider.
var exerciseSchema = &llm.Schema{
	Name: "exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 4,
			},
			"correctAnswer": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 3,
			},
			"explanation": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"skillId": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"question", "options", "correctAnswer", "explanation", "skillId"},
		"additionalProperties": false,
	},
}
