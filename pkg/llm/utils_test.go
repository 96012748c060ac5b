package llm

import "testing"

func TestSanitizeMessage(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean input unchanged",
			input:    "feat(api): add endpoint",
			expected: "feat(api): add endpoint",
		},
		{
			name:     "surrounding whitespace",
			input:    "  fix: handle null user response\n",
			expected: "fix: handle null user response",
		},
		{
			name:     "double quotes",
			input:    `"docs: update installation guide"`,
			expected: "docs: update installation guide",
		},
		{
			name:     "single quotes",
			input:    "'chore: update dependencies'",
			expected: "chore: update dependencies",
		},
		{
			name:     "nested quotes",
			input:    `'"feat(api): add endpoint"'`,
			expected: "feat(api): add endpoint",
		},
		{
			name:     "whitespace inside quotes",
			input:    `" refactor(utils): extract validation logic "`,
			expected: "refactor(utils): extract validation logic",
		},
		{
			name:     "interior quotes preserved",
			input:    `fix(cli): quote "$1" in hook script`,
			expected: `fix(cli): quote "$1" in hook script`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeMessage(tc.input)
			if got != tc.expected {
				t.Errorf("sanitizeMessage(%q) = %q; want %q", tc.input, got, tc.expected)
			}

			// Sanitization is idempotent.
			if again := sanitizeMessage(got); again != got {
				t.Errorf("sanitizeMessage not idempotent: %q -> %q", got, again)
			}
		})
	}
}
