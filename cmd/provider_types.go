package cmd

import (
	"strings"

	"github.com/thediveo/enumflag/v2"
)

// ProviderType represents the supported LLM providers.
type ProviderType enumflag.Flag

const (
	// OpenAIProvider represents the OpenAI provider.
	OpenAIProvider ProviderType = iota
	// ClaudeProvider represents the Claude provider.
	ClaudeProvider
	// GoogleAIProvider represents the GoogleAI provider.
	GoogleAIProvider
	// OpenRouterProvider represents the OpenRouter provider.
	OpenRouterProvider
	// PhindProvider represents the Phind provider.
	PhindProvider
)

// ProviderIds maps ProviderType to their string representations.
var ProviderIds = map[ProviderType][]string{
	OpenAIProvider:     {"openai"},
	ClaudeProvider:     {"claude", "anthropic"},
	GoogleAIProvider:   {"googleai", "gemini"},
	OpenRouterProvider: {"openrouter"},
	PhindProvider:      {"phind"},
}

// providerTypeForName resolves a provider name, as used in the "provider/model"
// configuration reference, to its ProviderType.
func providerTypeForName(name string) (ProviderType, bool) {
	for providerType, ids := range ProviderIds {
		for _, id := range ids {
			if strings.EqualFold(id, name) {
				return providerType, true
			}
		}
	}
	return 0, false
}
