package commit

// DefaultMaxDescriptionLength is the target length for the description
// part of a generated message.
const DefaultMaxDescriptionLength = 50

// TypesInOrder is the allowed commit type vocabulary, in the order it is
// presented to the model.
var TypesInOrder = []string{
	"feat",
	"fix",
	"docs",
	"style",
	"refactor",
	"test",
	"chore",
	"perf",
	"ci",
	"build",
}

/**
 * References:
 * Commitlint:
 * https://github.com/conventional-changelog/commitlint/blob/18fbed7ea86ac0ec9d5449b4979b762ec4305a92/%40commitlint/config-conventional/index.js#L40-L100
 */
var ConventionalCommitTypes = map[string]string{
	"build":    "Changes that affect the build system or external dependencies",
	"chore":    "Other changes that don't modify src or test files",
	"ci":       "Changes to our CI configuration files and scripts",
	"docs":     "Documentation only changes",
	"feat":     "A new feature",
	"fix":      "A bug fix",
	"perf":     "A code change that improves performance",
	"refactor": "A code change that neither fixes a bug nor adds a feature",
	"style":    "Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc)",
	"test":     "Adding missing tests or correcting existing tests",
}

// IsConventionalType reports whether t is in the allowed type vocabulary.
func IsConventionalType(t string) bool {
	_, ok := ConventionalCommitTypes[t]
	return ok
}
