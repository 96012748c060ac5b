package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"aicommit/pkg/commit"
	"aicommit/pkg/repoctx"
)

const sampleDiff = `diff --git a/auth/login.py b/auth/login.py
index 1234567..abcdefg 100644
--- a/auth/login.py
+++ b/auth/login.py
@@ -1,6 +1,10 @@
 from flask import request, jsonify
+from .oauth import OAuth2Provider

 def login():
     return jsonify({'status': 'success'})
`

// mockProvider records the prompts it was called with and returns a fixed
// response.
type mockProvider struct {
	response string
	err      error

	calls        int
	systemPrompt string
	userPrompt   string
}

func (m *mockProvider) String() string    { return "mock" }
func (m *mockProvider) IsAvailable() bool { return true }

func (m *mockProvider) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.calls++
	m.systemPrompt = systemPrompt
	m.userPrompt = userPrompt
	return m.response, m.err
}

func TestGenerateCommitMessageEmptyDiff(t *testing.T) {
	for _, diff := range []string{"", "   ", "\n\t\n"} {
		provider := &mockProvider{response: "feat: never used"}

		_, err := GenerateCommitMessage(context.Background(), provider, diff, repoctx.Context{}, DefaultMaxDiffLength)
		if !errors.Is(err, ErrEmptyDiff) {
			t.Errorf("GenerateCommitMessage(%q) error = %v; want ErrEmptyDiff", diff, err)
		}
		if provider.calls != 0 {
			t.Errorf("provider invoked %d time(s) for empty diff", provider.calls)
		}
	}
}

func TestTruncateDiff(t *testing.T) {
	const maxLength = 100

	long := strings.Repeat("x", maxLength*3)
	truncated := TruncateDiff(long, maxLength)

	if want := maxLength + len(TruncationMarker); len(truncated) != want {
		t.Errorf("truncated length = %d; want %d", len(truncated), want)
	}
	if !strings.HasSuffix(truncated, TruncationMarker) {
		t.Error("truncated diff does not end with the truncation marker")
	}
	if !strings.HasPrefix(truncated, long[:maxLength]) {
		t.Error("truncated diff does not preserve the leading content")
	}

	short := "short diff"
	if got := TruncateDiff(short, maxLength); got != short {
		t.Errorf("TruncateDiff(%q) = %q; want input unchanged", short, got)
	}

	exact := strings.Repeat("y", maxLength)
	if got := TruncateDiff(exact, maxLength); got != exact {
		t.Error("diff at exactly the maximum length must not be truncated")
	}
}

func TestGenerateCommitMessageTruncatesBeforePrompting(t *testing.T) {
	const maxLength = 64

	provider := &mockProvider{response: "feat: add endpoint"}
	long := strings.Repeat("a", maxLength*2)

	if _, err := GenerateCommitMessage(context.Background(), provider, long, repoctx.Context{}, maxLength); err != nil {
		t.Fatalf("GenerateCommitMessage() error = %v", err)
	}

	want := long[:maxLength] + TruncationMarker
	if !strings.Contains(provider.userPrompt, want) {
		t.Error("user prompt does not contain the truncated diff with marker")
	}
	if strings.Contains(provider.userPrompt, long) {
		t.Error("user prompt contains the untruncated diff")
	}
}

func TestGenerateUserPromptContents(t *testing.T) {
	rctx := repoctx.Context{Branch: "main", ProjectType: "python"}

	prompt := GenerateUserPrompt(sampleDiff, rctx)

	for _, want := range []string{
		"python project",
		sampleDiff,
		strings.Join(commit.TypesInOrder, ", "),
		"```diff",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}

	// Deterministic for identical inputs.
	if again := GenerateUserPrompt(sampleDiff, rctx); again != prompt {
		t.Error("GenerateUserPrompt is not deterministic")
	}
}

func TestGenerateUserPromptUnknownProjectType(t *testing.T) {
	prompt := GenerateUserPrompt(sampleDiff, repoctx.Context{ProjectType: repoctx.Unknown})
	if strings.Contains(prompt, "unknown project") {
		t.Error("prompt must omit the project preamble for unknown project type")
	}

	// "general" ran detection and found nothing; it still gets a preamble.
	prompt = GenerateUserPrompt(sampleDiff, repoctx.Context{ProjectType: repoctx.General})
	if !strings.Contains(prompt, "general project") {
		t.Error("prompt must include the project preamble for general project type")
	}
}

func TestGenerateCommitMessageSanitizesResponse(t *testing.T) {
	provider := &mockProvider{response: "'\"feat(api): add endpoint\"'\n"}

	got, err := GenerateCommitMessage(context.Background(), provider, sampleDiff, repoctx.Context{ProjectType: "python"}, DefaultMaxDiffLength)
	if err != nil {
		t.Fatalf("GenerateCommitMessage() error = %v", err)
	}
	if got != "feat(api): add endpoint" {
		t.Errorf("GenerateCommitMessage() = %q; want %q", got, "feat(api): add endpoint")
	}

	parsed := commit.ParseMessage(got)
	if !commit.IsConventionalType(parsed.Type) {
		t.Errorf("generated type %q is not in the allowed vocabulary", parsed.Type)
	}
}

func TestGenerateCommitMessageProviderError(t *testing.T) {
	cause := errors.New("quota exceeded")
	provider := &mockProvider{err: cause}

	_, err := GenerateCommitMessage(context.Background(), provider, sampleDiff, repoctx.Context{}, DefaultMaxDiffLength)
	if !errors.Is(err, cause) {
		t.Errorf("GenerateCommitMessage() error = %v; want wrapped %v", err, cause)
	}
}

func TestGenerateCommitMessageEmptyResponse(t *testing.T) {
	provider := &mockProvider{response: "  \"\"  "}

	_, err := GenerateCommitMessage(context.Background(), provider, sampleDiff, repoctx.Context{}, DefaultMaxDiffLength)
	if err == nil {
		t.Error("GenerateCommitMessage() = nil error for empty model output")
	}
}
