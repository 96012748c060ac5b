package commit

import (
	"testing"
)

func TestParseMessage(t *testing.T) {
	tests := []struct {
		input    string
		expected Message
	}{
		{
			input: "fix: handle null user response",
			expected: Message{
				Type:          "fix",
				Scope:         "",
				CommitMessage: "handle null user response",
			},
		},
		{
			input: "feat(auth): add OAuth login flow",
			expected: Message{
				Type:          "feat",
				Scope:         "auth",
				CommitMessage: "add OAuth login flow",
			},
		},
		{
			input: "refactor(core)!: extract validation logic",
			expected: Message{
				Type:          "refactor",
				Scope:         "core",
				Breaking:      true,
				CommitMessage: "extract validation logic",
			},
		},
		{
			input: "chore: update dependencies",
			expected: Message{
				Type:          "chore",
				Scope:         "",
				CommitMessage: "update dependencies",
			},
		},
		{
			input: "docs(readme): update installation guide",
			expected: Message{
				Type:          "docs",
				Scope:         "readme",
				CommitMessage: "update installation guide",
			},
		},
		{
			input: "style!: remove unused imports",
			expected: Message{
				Type:          "style",
				Scope:         "",
				Breaking:      true,
				CommitMessage: "remove unused imports",
			},
		},
		{
			input: "wrong format message",
			expected: Message{
				CommitMessage: "wrong format message",
			},
		},
	}

	for _, test := range tests {
		result := ParseMessage(test.input)
		if result != test.expected {
			t.Errorf("ParseMessage(%q) = %v; want %v", test.input, result, test.expected)
		}
	}
}

func TestMessageRoundTrip(t *testing.T) {
	inputs := []string{
		"feat(api): add endpoint",
		"perf: reduce allocations in parser",
		"build(deps): bump requests version",
	}

	for _, input := range inputs {
		if got := ParseMessage(input).ToString(); got != input {
			t.Errorf("ParseMessage(%q).ToString() = %q", input, got)
		}
	}
}

func TestIsConventionalType(t *testing.T) {
	for _, typ := range TypesInOrder {
		if !IsConventionalType(typ) {
			t.Errorf("IsConventionalType(%q) = false; want true", typ)
		}
	}
	if IsConventionalType("revert") {
		t.Error(`IsConventionalType("revert") = true; want false`)
	}
}
