package repoctx

import (
	"testing"
)

func TestDetectProjectType(t *testing.T) {
	testCases := []struct {
		name     string
		files    []string
		expected string
	}{
		{
			name:     "javascript",
			files:    []string{"package.json", "src", "README.md"},
			expected: "javascript/node",
		},
		{
			name:     "python requirements",
			files:    []string{"requirements.txt"},
			expected: "python",
		},
		{
			name:     "python pyproject",
			files:    []string{"pyproject.toml"},
			expected: "python",
		},
		{
			name:     "java",
			files:    []string{"pom.xml"},
			expected: "java",
		},
		{
			name:     "rust",
			files:    []string{"Cargo.toml"},
			expected: "rust",
		},
		{
			name:     "go",
			files:    []string{"go.mod"},
			expected: "go",
		},
		{
			name:     "php",
			files:    []string{"composer.json"},
			expected: "php",
		},
		{
			name:     "no markers",
			files:    []string{"README.md", "LICENSE", "docs"},
			expected: General,
		},
		{
			name:     "empty listing",
			files:    nil,
			expected: General,
		},
		{
			name:     "first table row wins over later markers",
			files:    []string{"go.mod", "package.json", "Cargo.toml"},
			expected: "javascript/node",
		},
		{
			name:     "table order decides, not input order",
			files:    []string{"composer.json", "pom.xml"},
			expected: "java",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectProjectType(tc.files); got != tc.expected {
				t.Errorf("DetectProjectType(%v) = %q; want %q", tc.files, got, tc.expected)
			}
		})
	}
}
