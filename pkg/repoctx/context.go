// Package repoctx derives advisory repository context for prompt building:
// the current branch name and a heuristic project type. Detection failures
// never propagate; the context degrades to "unknown" values instead.
package repoctx

import (
	"os"
	"strings"

	"github.com/duke-git/lancet/v2/slice"

	"aicommit/pkg/gitexec"
)

const (
	// Unknown means detection could not run at all.
	Unknown = "unknown"
	// General means detection ran and no project marker matched.
	General = "general"
)

// Context is the advisory repository context for a single generation call.
// It is derived fresh per call and never cached; the repository may change
// between invocations.
type Context struct {
	Branch      string
	ProjectType string
}

// projectMarkers maps marker filenames in the repository root to project
// type labels. Evaluated in order; the first matching row wins when
// multiple markers coexist.
var projectMarkers = []struct {
	file  string
	label string
}{
	{"package.json", "javascript/node"},
	{"requirements.txt", "python"},
	{"pyproject.toml", "python"},
	{"pom.xml", "java"},
	{"Cargo.toml", "rust"},
	{"go.mod", "go"},
	{"composer.json", "php"},
}

// DetectProjectType classifies a repository root file listing against the
// ordered marker table. It is a pure function of the file name set.
func DetectProjectType(files []string) string {
	for _, m := range projectMarkers {
		if slice.Contain(files, m.file) {
			return m.label
		}
	}
	return General
}

// Get probes the repository at workDir for branch name and project type.
// It never fails: each probe independently falls back to Unknown.
func Get(workDir string) Context {
	rctx := Context{
		Branch:      Unknown,
		ProjectType: Unknown,
	}

	out, err := gitexec.Branch(&gitexec.BranchOptions{
		CmdDir:      workDir,
		ShowCurrent: true,
	})
	if err == nil {
		if branch := strings.TrimSpace(string(out)); branch != "" {
			rctx.Branch = branch
		}
	}

	out, err = gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir:       workDir,
		ShowToplevel: true,
	})
	if err == nil {
		toplevel := strings.TrimSpace(string(out))
		if entries, err := os.ReadDir(toplevel); err == nil {
			files := make([]string, 0, len(entries))
			for _, entry := range entries {
				files = append(files, entry.Name())
			}
			rctx.ProjectType = DetectProjectType(files)
		}
	}

	return rctx
}
