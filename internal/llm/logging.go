package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abhisek/kanjiz/internal/store"
)

// LoggingProvider records every call as an LLM request event.
type LoggingProvider struct {
	inner    Provider
	name     string
	repo     store.EventRepo
	warnings io.Writer
}

// WithLogging wraps p so each Generate is appended to repo. provider is
// the configured provider name ("anthropic", "gemini", ...). A failed
// append is reported on stderr and never fails the call.
func WithLogging(p Provider, provider string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, name: provider, repo: repo, warnings: os.Stderr}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	if l.repo != nil {
		// The call's own ctx may already be done; the event should still land.
		if logErr := l.repo.AppendLLMRequest(context.WithoutCancel(ctx), ev); logErr != nil {
			fmt.Fprintf(l.warnings, "warning: record llm request: %v\n", logErr)
		}
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// transcript renders req the way `kanjiz llm view` shows it.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
