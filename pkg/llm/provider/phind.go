package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carlmjohnson/requests"
	"github.com/tidwall/gjson"

	"aicommit/pkg/llm"
)

const (
	phindBaseURL = "https://https.extension.phind.com/agent/"
	phindModel   = "Phind-70B"
)

// Compile-time proof of interface implementation.
var _ llm.AIPrompt = (*Phind)(nil)

type PhindOptions struct {
	BaseURL string
	Model   string
}

// Phind requires no API key; it always reports itself available.
type Phind struct {
	options PhindOptions
}

func NewPhindProvider(opts ...PhindOptions) llm.AIPrompt {
	o := PhindOptions{}

	if len(opts) > 0 {
		o = opts[0]
	}

	if o.BaseURL == "" {
		o.BaseURL = phindBaseURL
	}
	if o.Model == "" {
		o.Model = phindModel
	}

	return &Phind{
		options: o,
	}
}

func (p *Phind) String() string {
	return fmt.Sprintf("Phind (%s)", p.options.Model)
}

func (p *Phind) IsAvailable() bool {
	return true
}

func (p *Phind) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	prompt := systemPrompt + "\n" + userPrompt

	payload := map[string]any{
		"additional_extension_context": "",
		"allow_magic_buttons":          true,
		"is_vscode_extension":          true,
		"message_history": []any{
			map[string]any{
				"role":    "user",
				"content": prompt,
			},
		},
		"requested_model": p.options.Model,
		"user_input":      prompt,
	}

	var responseText string

	err := requests.
		URL(p.options.BaseURL).
		Post().
		Headers(map[string][]string{
			"User-Agent":      {""},
			"Accept":          {"*/*"},
			"Accept-Encoding": {"Identity"},
		}).
		BodyJSON(payload).
		ToString(&responseText).
		Fetch(ctx)
	if err != nil {
		return "", err
	}

	if responseText == "" {
		return "", errors.New("no completion choice available")
	}

	fullText := p.parseStreamResponse(responseText)
	if fullText == "" {
		return "", errors.New("no completion choice available")
	}

	return fullText, nil
}

// parseLine extracts the content delta from a single server-sent event line.
func (p *Phind) parseLine(line string) string {
	data := strings.TrimPrefix(line, "data: ")

	if val := gjson.Get(data, "choices.0.delta.content"); val.Exists() && val.Type == gjson.String {
		return val.String()
	}

	return ""
}

func (p *Phind) parseStreamResponse(responseText string) string {
	text := ""
	for _, line := range strings.Split(responseText, "\n") {
		text += p.parseLine(line)
	}
	return text
}
