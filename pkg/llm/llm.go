package llm

import (
	"context"
)

// AIPrompt is an interface for generating commit message text from prompts.
type AIPrompt interface {
	// String returns the name of the provider.
	String() string

	// IsAvailable checks if the provider has all required configuration
	// (e.g. API keys) to be used. Returns true if the provider can be
	// used, false otherwise.
	IsAvailable() bool

	// Generate creates output text using the context, system prompt, and
	// user prompt. A single synchronous attempt is made; there is no
	// retry. Returns the raw model output and an error if it fails.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
