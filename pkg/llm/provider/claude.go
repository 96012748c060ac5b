package provider

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"aicommit/pkg/llm"
)

const (
	claudeModel = string(anthropic.ModelClaude3_5HaikuLatest)
)

// Compile-time proof of interface implementation.
var _ llm.AIPrompt = (*Claude)(nil)

type ClaudeOptions struct {
	ApiKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

type Claude struct {
	options ClaudeOptions
	client  *anthropic.Client
}

func NewClaudeProvider(opts ...ClaudeOptions) (llm.AIPrompt, error) {
	o := ClaudeOptions{}

	if len(opts) > 0 {
		o = opts[0]
	}

	if o.ApiKey == "" {
		o.ApiKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	if o.Model == "" {
		o.Model = claudeModel
	}
	if o.Temperature == 0 {
		o.Temperature = llm.DefaultTemperature
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = llm.DefaultMaxTokens
	}

	if o.ApiKey == "" {
		return nil, errors.New("anthropic API Key is not set")
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(o.ApiKey),
	}

	if o.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(o.BaseURL))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Claude{
		options: o,
		client:  &client,
	}, nil
}

func (c *Claude) String() string {
	return fmt.Sprintf("Claude (%s)", c.options.Model)
}

func (c *Claude) IsAvailable() bool {
	return c.options.ApiKey != ""
}

func (c *Claude) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.client == nil {
		return "", errors.New("client is not initialized")
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.options.Model),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt))},
		Temperature: anthropic.Float(float64(c.options.Temperature)),
		MaxTokens:   int64(c.options.MaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", errors.New("no completion choice available")
	}

	textBlock, ok := resp.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("unexpected content type in response: %T", resp.Content[0].AsAny())
	}

	return textBlock.Text, nil
}
