package llm

import "context"

type purposeKey struct{}

// Purposes recorded with each LLM event.
const (
	PurposeMnemonic = "mnemonic"
	PurposeUnknown  = "unknown"
)

// WithPurpose labels LLM calls made with ctx, for the event log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return PurposeUnknown
}
