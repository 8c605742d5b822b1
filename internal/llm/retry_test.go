package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

var (
	okReply     = MockResponse{Content: json.RawMessage(`{"ok":true}`)}
	downReply   = MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	invalidResp = MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
)

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		replies   []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt", []MockResponse{okReply}, false, 1},
		{"transient then ok", []MockResponse{downReply, okReply}, false, 2},
		{"all attempts fail", []MockResponse{downReply, downReply, downReply, okReply}, true, 3},
		{"truncation not retried", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, okReply}, true, 1},
		{"invalid retried once", []MockResponse{invalidResp, invalidResp, okReply}, true, 2},
		{"invalid then ok", []MockResponse{invalidResp, okReply}, false, 2},
		{"rate limit honours retry-after", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond}}, okReply}, false, 2},
		{"plain error is transient", []MockResponse{{Err: errors.New("connection reset")}, okReply}, false, 2},
		{"canceled not retried", []MockResponse{{Err: context.Canceled}, okReply}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.replies...)
			_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_StopsWhenContextCanceled(t *testing.T) {
	mock := NewMockProvider(downReply, downReply, okReply)
	cfg := fastRetry()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetry_ZeroAttemptsStillCalls(t *testing.T) {
	mock := NewMockProvider(okReply)
	p := WithRetry(mock, RetryConfig{})
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}

func TestJitterBounds(t *testing.T) {
	for range 100 {
		d := jitter(100 * time.Millisecond)
		if d < 80*time.Millisecond || d > 120*time.Millisecond {
			t.Fatalf("jitter out of range: %v", d)
		}
	}
	if jitter(0) != 0 {
		t.Error("jitter(0) should be 0")
	}
}
