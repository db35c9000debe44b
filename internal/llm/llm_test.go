package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *Schema {
	return &Schema{
		Name: "answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"value": map[string]any{"type": "string"},
				"index": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": 3,
				},
			},
			"required":             []any{"value", "index"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid document", `{"value":"ok","index":2}`, false},
		{"missing required field", `{"value":"ok"}`, true},
		{"out of range", `{"value":"ok","index":9}`, true},
		{"extra field", `{"value":"ok","index":1,"bonus":true}`, true},
		{"not json", `oui, bien sûr !`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if tt.wantErr {
				var invalid *ErrInvalidResponse
				require.Error(t, err)
				assert.True(t, errors.As(err, &invalid))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`whatever`)))
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"anonymous fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.in))
		})
	}
}

func TestMockProviderFIFO(t *testing.T) {
	provider := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"value":"premier","index":0}`)},
		MockResponse{Content: json.RawMessage(`{"value":"second","index":1}`)},
	)

	req := Request{Prompt: "p", Schema: testSchema()}

	first, err := provider.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"premier","index":0}`, string(first.Content))

	second, err := provider.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"second","index":1}`, string(second.Content))

	_, err = provider.Generate(context.Background(), req)
	var unavailable *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavailable), "empty queue reports provider unavailable")

	assert.Equal(t, 3, provider.CallCount())
}

func TestMockProviderValidatesCannedContent(t *testing.T) {
	provider := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"value":"ok"}`)},
	)

	_, err := provider.Generate(context.Background(), Request{Schema: testSchema()})
	var invalid *ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid), "canned content goes through schema validation")
}
