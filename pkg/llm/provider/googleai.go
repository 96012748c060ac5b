package provider

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"

	"aicommit/pkg/llm"
)

const (
	googleAIModel = "gemini-2.5-flash"
)

// Compile-time proof of interface implementation.
var _ llm.AIPrompt = (*GoogleAI)(nil)

// GoogleAIOptions holds configuration for the GoogleAI provider.
type GoogleAIOptions struct {
	ApiKey      string
	Model       string
	Temperature float32
	MaxTokens   int
}

// GoogleAI is the provider implementation for Google AI Studio using the
// genai library.
type GoogleAI struct {
	options GoogleAIOptions
	client  *genai.Client
}

// NewGoogleAIProvider creates a new GoogleAI provider instance.
func NewGoogleAIProvider(opts ...GoogleAIOptions) (llm.AIPrompt, error) {
	o := GoogleAIOptions{}

	if len(opts) > 0 {
		o = opts[0]
	}

	if o.Model == "" {
		o.Model = googleAIModel
	}
	if o.Temperature == 0 {
		o.Temperature = llm.DefaultTemperature
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = llm.DefaultMaxTokens
	}

	if o.ApiKey == "" {
		o.ApiKey = os.Getenv("GEMINI_API_KEY")
	}

	if o.ApiKey == "" {
		return nil, fmt.Errorf("google AI API Key is not set")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  o.ApiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}

	return &GoogleAI{
		options: o,
		client:  client,
	}, nil
}

func (p *GoogleAI) String() string {
	return fmt.Sprintf("GoogleAI (%s)", p.options.Model)
}

func (p *GoogleAI) IsAvailable() bool {
	return p.options.ApiKey != ""
}

// Generate sends a prompt to the Google AI API and returns the generated text.
func (p *GoogleAI) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if p.client == nil {
		return "", errors.New("client is not initialized")
	}

	resp, err := p.client.Models.GenerateContent(
		ctx,
		p.options.Model,
		genai.Text(userPrompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{
					{Text: systemPrompt},
				},
			},
			Temperature:     genai.Ptr(p.options.Temperature),
			MaxOutputTokens: int32(p.options.MaxTokens),
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
			return "", fmt.Errorf("prompt blocked due to: %s", resp.PromptFeedback.BlockReason)
		}
		return "", errors.New("returned no candidates")
	}

	var fullText string
	cand := resp.Candidates[0]
	if cand.Content != nil {
		for _, part := range cand.Content.Parts {
			fullText += part.Text
		}
	}

	if fullText == "" {
		if cand.FinishReason != genai.FinishReasonUnspecified {
			return "", fmt.Errorf("returned no text content; finish reason: %s", cand.FinishReason)
		}
		return "", errors.New("returned no text content from candidates")
	}

	return fullText, nil
}
