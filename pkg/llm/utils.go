package llm

import "strings"

// sanitizeMessage normalizes raw model output into a commit message:
// surrounding whitespace is trimmed and any leading/trailing quote
// characters are stripped (models sometimes wrap output in quotes).
// Idempotent on already-clean input.
func sanitizeMessage(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
