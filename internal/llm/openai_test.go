package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type chatCapture struct {
	path string
	body map[string]any
}

func openaiServer(t *testing.T, status int, reply map[string]any) (string, *chatCapture) {
	t.Helper()
	got := &chatCapture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/v1", got
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 30, "completion_tokens": 20, "total_tokens": 50},
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	url, got := openaiServer(t, http.StatusOK, chatCompletion(`{"keyword":"moon","story":"A crescent over two lines."}`, "stop"))
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := p.Generate(context.Background(), Prompt("be brief", "月", mnemonicTestSchema(), 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 50 || resp.StopReason != StopEnd {
		t.Errorf("resp = %+v", resp)
	}

	msgs, _ := got.body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("sent %d messages, want system + user", len(msgs))
	}
	if first := msgs[0].(map[string]any); first["role"] != "system" {
		t.Errorf("first message role = %v", first["role"])
	}
	format, _ := got.body["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("response_format = %v", format)
	}
}

func TestOpenAIProvider_Truncated(t *testing.T) {
	url, _ := openaiServer(t, http.StatusOK, chatCompletion(`{"keyword":"mo`, "length"))
	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", BaseURL: url})

	_, err := p.Generate(context.Background(), Prompt("", "月", mnemonicTestSchema(), 5))
	var trunc *ErrMaxTokensExceeded
	if !errors.As(err, &trunc) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"rate limit", http.StatusTooManyRequests, func(err error) bool {
			var rl *ErrRateLimit
			return errors.As(err, &rl)
		}},
		{"server error", http.StatusInternalServerError, func(err error) bool {
			var u *ErrProviderUnavailable
			return errors.As(err, &u)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, _ := openaiServer(t, tt.status, map[string]any{
				"error": map[string]any{"type": "server_error", "message": tt.name},
			})
			p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", BaseURL: url})
			_, err := p.Generate(context.Background(), Prompt("", "x", nil, 10))
			if !tt.check(err) {
				t.Fatalf("unexpected error %T (%v)", err, err)
			}
		})
	}
}

func TestOpenAIModelAliases(t *testing.T) {
	for alias, want := range map[string]string{"gpt-mini": "gpt-4o-mini", "gpt": "gpt-4o", "o4-mini": "o4-mini"} {
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: alias})
		if err != nil {
			t.Fatal(err)
		}
		if p.ModelID() != want {
			t.Errorf("ModelID(%q) = %q, want %q", alias, p.ModelID(), want)
		}
	}
	if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestOpenRouterProvider(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x"}); err == nil {
		t.Error("expected error without API key")
	}

	url, got := openaiServer(t, http.StatusOK, chatCompletion(`hello`, "stop"))
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "google/gemini-2.0-flash-001", BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "google/gemini-2.0-flash-001" {
		t.Errorf("model = %q", p.ModelID())
	}
	if _, err := p.Generate(context.Background(), Prompt("", "hi", nil, 10)); err != nil {
		t.Fatal(err)
	}
	if got.path != "/v1/chat/completions" {
		t.Errorf("path = %q", got.path)
	}
	if got.body["model"] != "google/gemini-2.0-flash-001" {
		t.Errorf("model sent = %v", got.body["model"])
	}
}
