package config

import (
	"fmt"

	"aicommit/pkg/llm"
)

const configVersionV1 = "1"

type configV1 struct {
	Version string `json:"version"` // required by vconfig-go

	// Model is the default model reference in "provider/model-id" format.
	Model string `json:"model,omitempty"`
	// MaxDiffLength is the hard character cutoff applied to the staged
	// diff before prompt rendering.
	MaxDiffLength int `json:"max_diff_length,omitempty"`
	// Temperature is the sampling temperature for the model call.
	Temperature float64 `json:"temperature,omitempty"`

	Providers map[string]providerConfigV1 `json:"providers,omitempty"`
}

// providerConfigV1 carries per-provider overrides. API keys usually come
// from the provider's environment variable instead; a key set here wins.
type providerConfigV1 struct {
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model,omitempty"`
}

// newConfigV1 creates a new v1 configuration.
func newConfigV1() *configV1 {
	return &configV1{
		Version:       configVersionV1,
		Model:         "openai/gpt-4o-mini",
		MaxDiffLength: llm.DefaultMaxDiffLength,
		Temperature:   float64(llm.DefaultTemperature),
		Providers:     map[string]providerConfigV1{},
	}
}

func (c *configV1) validateV1() error {
	if c.MaxDiffLength <= 0 {
		return fmt.Errorf("max_diff_length must be positive, got %d", c.MaxDiffLength)
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %g", c.Temperature)
	}

	if c.Model != "" {
		if _, _, err := ParseModelReference(c.Model); err != nil {
			return fmt.Errorf("invalid default model reference: %w", err)
		}
	}

	return nil
}
