package llm

import (
	"context"
	"errors"
)

// Client abstracts the generative-text provider. Calls are single best-effort
// round trips; the caller bounds them with a context deadline.
type Client interface {
	// GenerateText submits a prompt and returns the raw text response.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateJSON submits a prompt expecting a JSON document and returns it
	// with any markdown code fencing stripped.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM not configured")

// PlaceholderClient is a stub used when no provider key is configured.
type PlaceholderClient struct{}

// GenerateText returns ErrNotConfigured.
func (PlaceholderClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

// GenerateJSON returns ErrNotConfigured.
func (PlaceholderClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
