package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/strutil"

	"aicommit/pkg/commit"
	"aicommit/pkg/repoctx"
)

// ErrEmptyDiff is returned when there are no staged changes to describe.
// The provider is never invoked in that case.
var ErrEmptyDiff = errors.New("no staged changes to describe")

// TruncateDiff enforces the hard character cutoff on the diff, appending
// the truncation marker when a cut was made. The policy is a fixed-length
// cut, not a semantic summarizer; it bounds prompt size and remote cost.
func TruncateDiff(diff string, maxLength int) string {
	if maxLength <= 0 || len(diff) <= maxLength {
		return diff
	}
	return diff[:maxLength] + TruncationMarker
}

// GenerateSystemPrompt renders the fixed system prompt.
func GenerateSystemPrompt() string {
	return fmt.Sprintf(PromptSystemFormat, "<type>(<optional scope>): <description>")
}

// GenerateUserPrompt renders the user prompt for the given diff and
// repository context. The renderer is pure and deterministic: identical
// inputs produce identical prompts.
func GenerateUserPrompt(diff string, rctx repoctx.Context) string {
	intro := PromptIntro
	if rctx.ProjectType != repoctx.Unknown {
		intro = fmt.Sprintf(PromptProjectContextFormat, rctx.ProjectType) + intro
	}

	var content []string
	content = append(content, intro)
	content = append(content, "")
	content = append(content, fmt.Sprintf(PromptRulesFormat,
		strings.Join(commit.TypesInOrder, ", "),
		commit.DefaultMaxDescriptionLength,
	))
	content = append(content, "")
	content = append(content, PromptExamples)
	content = append(content, "")
	content = append(content, fmt.Sprintf(PromptCodeDiffFormat, diff))
	content = append(content, PromptOutro)
	return strings.Join(content, "\n")
}

// GenerateCommitMessage runs the full linear pipeline: validate the diff is
// non-empty, truncate it if oversized, render the prompt, call the provider
// once, and sanitize its output into a single commit message. Every stage
// is terminal on failure.
func GenerateCommitMessage(ctx context.Context, provider AIPrompt, diff string, rctx repoctx.Context, maxDiffLength int) (string, error) {
	if strutil.IsBlank(diff) {
		return "", ErrEmptyDiff
	}

	diff = TruncateDiff(diff, maxDiffLength)

	systemPrompt := GenerateSystemPrompt()
	userPrompt := GenerateUserPrompt(diff, rctx)

	out, err := provider.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("generating commit message with %s: %w", provider.String(), err)
	}

	message := sanitizeMessage(out)
	if message == "" {
		return "", fmt.Errorf("%s returned an empty commit message", provider.String())
	}

	return message, nil
}
