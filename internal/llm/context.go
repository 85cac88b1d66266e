package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// DefaultPurpose labels requests whose callers never tagged a purpose.
const DefaultPurpose = "unknown"

// WithPurpose tags the context with what the request is for (for example
// "weakness-analysis"). The logging decorator records the tag on every
// LLM request event so usage can be broken down per feature.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose tag on ctx, or DefaultPurpose.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return DefaultPurpose
}
