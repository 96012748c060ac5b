package provider

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/carlmjohnson/requests"
	"github.com/sashabaranov/go-openai"

	"aicommit/pkg/llm"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1/chat/completions"
	openRouterModel   = "mistralai/devstral-small:free"
)

// Compile-time proof of interface implementation.
var _ llm.AIPrompt = (*OpenRouter)(nil)

type OpenRouterOptions struct {
	ApiKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

type OpenRouter struct {
	options OpenRouterOptions
}

func NewOpenRouterProvider(opts ...OpenRouterOptions) llm.AIPrompt {
	o := OpenRouterOptions{}

	if len(opts) > 0 {
		o = opts[0]
	}

	if o.ApiKey == "" {
		o.ApiKey = os.Getenv("OPENROUTER_API_KEY")
	}

	if o.BaseURL == "" {
		o.BaseURL = openRouterBaseURL
	}
	if o.Model == "" {
		o.Model = openRouterModel
	}
	if o.Temperature == 0 {
		o.Temperature = llm.DefaultTemperature
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = llm.DefaultMaxTokens
	}

	return &OpenRouter{
		options: o,
	}
}

func (p *OpenRouter) String() string {
	return fmt.Sprintf("OpenRouter (%s)", p.options.Model)
}

func (p *OpenRouter) IsAvailable() bool {
	return p.options.ApiKey != ""
}

func (p *OpenRouter) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if p.options.ApiKey == "" {
		return "", errors.New("OpenRouter API Key is not set")
	}

	payload := openai.ChatCompletionRequest{
		Model: p.options.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: p.options.Temperature,
		TopP:        1,
		MaxTokens:   p.options.MaxTokens,
		Stream:      false,
		N:           1,
	}

	var (
		respContent openai.ChatCompletionResponse
		respError   openai.ErrorResponse
	)

	// OpenRouter API requires the 'HTTP-Referer' and 'X-Title' headers.
	httpReferer := os.Getenv("OPENROUTER_HTTP_REFERER")
	if httpReferer == "" {
		httpReferer = "https://github.com/aicommit/aicommit"
	}
	xTitle := os.Getenv("OPENROUTER_X_TITLE")
	if xTitle == "" {
		xTitle = "aicommit"
	}

	err := requests.
		URL(p.options.BaseURL).
		Post().
		Headers(map[string][]string{
			"Authorization": {fmt.Sprintf("Bearer %s", p.options.ApiKey)},
			"HTTP-Referer":  {httpReferer},
			"X-Title":       {xTitle},
		}).
		BodyJSON(payload).
		ToJSON(&respContent).
		ErrorJSON(&respError).
		Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("request to OpenRouter failed: %w", err)
	}

	if respError.Error != nil && respError.Error.Message != "" {
		return "", fmt.Errorf("OpenRouter API error: %s", respError.Error.Message)
	}

	if len(respContent.Choices) == 0 {
		return "", errors.New("no completion choice available from OpenRouter")
	}

	return respContent.Choices[0].Message.Content, nil
}
