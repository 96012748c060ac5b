package llm

// Default values for commit message generation.
const (
	// DefaultMaxDiffLength is the hard character cutoff applied to the
	// diff before prompt rendering.
	DefaultMaxDiffLength = 8000
	// DefaultTemperature is the sampling temperature used when the
	// configuration does not set one.
	DefaultTemperature = 0.3
	// DefaultMaxTokens bounds the model output length.
	DefaultMaxTokens = 256
)

// TruncationMarker is appended to a diff that was cut at the configured
// maximum length.
const TruncationMarker = "\n... (diff truncated due to length)"

const (
	PromptIntro = "Analyze the following git diff and generate a single commit message that:"

	PromptExamples = `Examples of good commit messages:
- feat(auth): add OAuth login flow
- fix(api): handle null user response
- docs: update installation guide
- refactor(utils): extract validation logic
- test(auth): add login component tests`

	PromptOutro = "Respond with ONLY the commit message, nothing else. No explanations, no quotes, just the commit message."
)

var (
	PromptSystemFormat = `You are an expert developer who writes perfect git commit messages following the Conventional Commits specification. You follow these rules:
1. Use imperative mood (e.g. "add" not "added")
2. Be specific and descriptive
3. Output only the commit message without any explanations
4. Follow the format: %s
`
	PromptProjectContextFormat = "This is a %s project. "
	PromptRulesFormat          = `1. Uses the format: <type>(<scope>): <description>
2. Types: %s
3. Scope is optional but helpful (e.g. auth, ui, api, deps)
4. Keeps the description under %d characters
5. Uses imperative mood (e.g. "add" not "added")
6. Is specific: avoid vague messages like "fix typo"`
	PromptCodeDiffFormat = "Git diff:\n```diff\n%s\n```\n"
)
