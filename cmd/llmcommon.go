package cmd

import (
	"errors"

	"aicommit/internal/config"
	"aicommit/pkg/llm"
	"aicommit/pkg/llm/provider"
)

// initializeLLMProvider initializes an LLM provider based on the command line
// flags and the loaded configuration. An explicit --provider flag wins, then
// the configured "provider/model" reference, then the first provider whose
// credentials are present, in preferred order.
func initializeLLMProvider(cfg *config.Config, providerChanged bool, providerType ProviderType, model string) (llm.AIPrompt, error) {
	create := func(providerType ProviderType, model string) (llm.AIPrompt, error) {
		temperature := float32(cfg.Temperature)

		switch providerType {
		case OpenAIProvider:
			o := provider.OpenAIOptions{
				Model:       model,
				Temperature: temperature,
			}
			if pc, ok := cfg.Provider("openai"); ok {
				o.ApiKey = pc.APIKey
				o.BaseURL = pc.BaseURL
				if o.Model == "" {
					o.Model = pc.Model
				}
			}
			return provider.NewOpenAIProvider(o), nil
		case ClaudeProvider:
			o := provider.ClaudeOptions{
				Model:       model,
				Temperature: temperature,
			}
			if pc, ok := cfg.Provider("claude"); ok {
				o.ApiKey = pc.APIKey
				o.BaseURL = pc.BaseURL
				if o.Model == "" {
					o.Model = pc.Model
				}
			}
			return provider.NewClaudeProvider(o)
		case GoogleAIProvider:
			o := provider.GoogleAIOptions{
				Model:       model,
				Temperature: temperature,
			}
			if pc, ok := cfg.Provider("googleai"); ok {
				o.ApiKey = pc.APIKey
				if o.Model == "" {
					o.Model = pc.Model
				}
			}
			return provider.NewGoogleAIProvider(o)
		case OpenRouterProvider:
			o := provider.OpenRouterOptions{
				Model:       model,
				Temperature: temperature,
			}
			if pc, ok := cfg.Provider("openrouter"); ok {
				o.ApiKey = pc.APIKey
				o.BaseURL = pc.BaseURL
				if o.Model == "" {
					o.Model = pc.Model
				}
			}
			return provider.NewOpenRouterProvider(o), nil
		case PhindProvider:
			o := provider.PhindOptions{
				Model: model,
			}
			if pc, ok := cfg.Provider("phind"); ok {
				o.BaseURL = pc.BaseURL
				if o.Model == "" {
					o.Model = pc.Model
				}
			}
			return provider.NewPhindProvider(o), nil
		}

		return nil, errors.New("unknown LLM provider")
	}

	if providerChanged {
		return create(providerType, model)
	}

	// Configured "provider/model" reference.
	if cfg.Model != "" {
		if name, modelID, err := config.ParseModelReference(cfg.Model); err == nil {
			if providerType, ok := providerTypeForName(name); ok {
				if model != "" {
					modelID = model
				}
				if p, err := create(providerType, modelID); err == nil && p.IsAvailable() {
					return p, nil
				}
			}
		}
	}

	// Try providers in preferred order.
	for _, providerType := range []ProviderType{
		OpenAIProvider,
		ClaudeProvider,
		GoogleAIProvider,
		OpenRouterProvider,
		PhindProvider,
	} {
		p, err := create(providerType, model)
		if err != nil {
			continue
		}
		if p.IsAvailable() {
			return p, nil
		}
	}

	return nil, errors.New("no available LLM providers found - please configure at least one provider's API key")
}
