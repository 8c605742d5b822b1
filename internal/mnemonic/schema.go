package mnemonic

import "github.com/abhisek/kanjiz/internal/llm"

// Schema is the structured output requested for one memory hook.
var Schema = &llm.Schema{
	Name:        "kanji-mnemonic",
	Description: "A short memory hook tying a kanji's shape to its meaning",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"keyword": map[string]any{
				"type":        "string",
				"description": "One or two English words naming the core meaning",
			},
			"story": map[string]any{
				"type":        "string",
				"description": "A vivid 1-3 sentence story linking the strokes or parts of the kanji to the keyword",
			},
		},
		"required":             []any{"keyword", "story"},
		"additionalProperties": false,
	},
}

type output struct {
	Keyword string `json:"keyword"`
	Story   string `json:"story"`
}
