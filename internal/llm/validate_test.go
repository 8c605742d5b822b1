package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readingSchema() *Schema {
	return &Schema{
		Name:        "test-reading",
		Description: "A kanji reading",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"character": map[string]any{"type": "string", "minLength": 1},
				"strokes":   map[string]any{"type": "integer", "minimum": 1},
				"kind":      map[string]any{"type": "string", "enum": []string{"on", "kun"}},
				"examples":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []string{"character", "strokes"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete", `{"character":"日","strokes":4,"kind":"on","examples":["日本"]}`, false},
		{"optional fields omitted", `{"character":"月","strokes":4}`, false},
		{"missing required", `{"character":"火"}`, true},
		{"wrong type", `{"character":"水","strokes":"four"}`, true},
		{"enum violation", `{"character":"木","strokes":4,"kind":"both"}`, true},
		{"bad array item", `{"character":"木","strokes":4,"examples":[1]}`, true},
		{"empty string violates minLength", `{"character":"","strokes":4}`, true},
		{"malformed", `{nope}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(readingSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			require.True(t, errors.As(err, &inv), "got %T: %v", err, err)
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not even json`)))
}

func TestValidatorIsCached(t *testing.T) {
	a, err := validator(readingSchema())
	require.NoError(t, err)
	b, err := validator(readingSchema())
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestFinish(t *testing.T) {
	req := Request{Schema: readingSchema()}

	resp, err := finish(req, json.RawMessage(`{"character":"山","strokes":3}`), newUsage(7, 3), "m", StopEnd)
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Usage.TotalTokens)
	assert.Equal(t, "m", resp.Model)

	_, err = finish(req, json.RawMessage(`{"character":"山","str`), Usage{}, "m", StopMaxTokens)
	var trunc *ErrMaxTokensExceeded
	assert.True(t, errors.As(err, &trunc), "got %v", err)

	_, err = finish(req, json.RawMessage(`{"character":"山"}`), Usage{}, "m", StopEnd)
	var inv *ErrInvalidResponse
	assert.True(t, errors.As(err, &inv), "got %v", err)

	resp, err = finish(Request{}, json.RawMessage(`plain`), Usage{}, "m", StopEnd)
	require.NoError(t, err)
	assert.Equal(t, "plain", string(resp.Content))
}
