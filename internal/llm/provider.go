package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured output from a language model. kanjiz uses
// it for memory hooks on missed kanji; the quiz engine never depends on it.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set, Content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID names the configured model.
	ModelID() string
}

// Request is a single-turn (or short multi-turn) prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the provider for JSON matching Definition.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Prompt builds a Request with one user message.
func Prompt(system, user string, schema *Schema, maxTokens int) Request {
	return Request{
		System:    system,
		Messages:  []Message{{Role: RoleUser, Content: user}},
		Schema:    schema,
		MaxTokens: maxTokens,
	}
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is who sent a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured output. Name is kebab-case
// (e.g. "kanji-mnemonic") and doubles as the cache key for the compiled
// validator, so two schemas must never share a name.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model output.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage counts tokens for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}

// Stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)
