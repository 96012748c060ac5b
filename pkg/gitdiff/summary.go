// Package gitdiff extracts presentation-level summaries from raw git diff
// output. The diff text itself stays opaque for prompting; only the file
// headers and change markers are inspected here.
package gitdiff

import (
	"regexp"
	"strings"
)

// FileSummary describes the staged changes to a single file.
type FileSummary struct {
	Path      string
	Additions int
	Deletions int
	IsNewFile bool
}

// A diff header line can look like:
//
//	diff --git a/path/to/file b/path/to/file   (default)
//	diff --git c/path/to/file w/path/to/file   (mnemonic prefixes)
//	diff --git path/to/file path/to/file       (no prefixes, e.g. diff.noprefix)
//
// We capture the two pathname fields and later strip any leading
// single-letter prefix ("a/", "b/", "c/", "i/", "w/", etc.) if present.
var diffHeaderRegex = regexp.MustCompile(`^diff --git\s+([^\s]+)\s+([^\s]+)$`)

// Summarize parses raw diff output into per-file change summaries, in the
// order the files appear in the diff.
func Summarize(diffOutput string) []FileSummary {
	var (
		summaries []FileSummary
		current   *FileSummary
	)

	for _, line := range strings.Split(diffOutput, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git"):
			matches := diffHeaderRegex.FindStringSubmatch(line)
			if len(matches) < 3 {
				current = nil
				continue
			}
			// Use the 'b/' path (after changes).
			summaries = append(summaries, FileSummary{
				Path: stripGitDiffPrefix(matches[2]),
			})
			current = &summaries[len(summaries)-1]
		case current == nil:
			continue
		case strings.HasPrefix(line, "new file mode"):
			current.IsNewFile = true
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			// File markers, not changed lines.
		case strings.HasPrefix(line, "+"):
			current.Additions++
		case strings.HasPrefix(line, "-"):
			current.Deletions++
		}
	}

	return summaries
}

// Paths returns just the file paths from the given summaries.
func Paths(summaries []FileSummary) []string {
	paths := make([]string, 0, len(summaries))
	for _, s := range summaries {
		paths = append(paths, s.Path)
	}
	return paths
}

// stripGitDiffPrefix removes a leading single-letter git pathname prefix
// such as "a/" or "b/" when present.
func stripGitDiffPrefix(path string) string {
	if len(path) > 2 && path[1] == '/' {
		switch path[0] {
		case 'a', 'b', 'c', 'i', 'o', 'w':
			return path[2:]
		}
	}
	return path
}
