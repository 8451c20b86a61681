// Package llm provides the language model client used for handler
// generation. The only production implementation talks to the
// Anthropic Messages API; tests substitute a scripted client.
package llm

import (
	"context"
	"errors"
	"time"
)

// Client is the completion interface consumed by the plugin creator.
type Client interface {
	// Complete sends a prompt and returns the completion text.
	Complete(ctx context.Context, prompt string) (string, error)

	// CompleteWithSystem sends a prompt with an explicit system message.
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ErrNoAPIKey is returned when a client is used without credentials.
var ErrNoAPIKey = errors.New("llm: API key not configured")

// Config holds connection settings for an API-backed client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for the Anthropic backend.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: "https://api.anthropic.com/v1",
		Model:   "claude-sonnet-4-5-20250514",
		Timeout: 2 * time.Minute,
	}
}
