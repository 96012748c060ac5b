package cmd

import (
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/slice"

	"aicommit/pkg/gitexec"
)

var (
	filesToExclude = []string{
		"*.lock*", // yarn.lock, Cargo.lock, Gemfile.lock, Pipfile.lock, etc.
		"go*.sum",
		"package-lock.json",
		"pnpm-lock.yaml",
	}

	excludeFromDiff = slice.FlatMap(filesToExclude, func(i int, s string) []string {
		return []string{":(exclude)" + s}
	})
)

// gitError wraps a failed git invocation together with whatever git printed,
// so the user sees the underlying diagnostic.
func gitError(action string, out []byte, err error) error {
	msg := strings.TrimSpace(string(out))
	if msg == "" {
		return fmt.Errorf("git %s failed: %w", action, err)
	}
	return fmt.Errorf("git %s failed: %w: %s", action, err, msg)
}

func gitWorkingTreeDir(path string) (string, error) {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir:       path,
		ShowToplevel: true,
	})
	if err != nil {
		return string(out), err
	}

	return strings.TrimSpace(string(out)), nil
}

// gitDiffStaged returns the staged diff, with noisy generated files excluded.
func gitDiffStaged(path string) (string, error) {
	out, err := gitexec.Diff(&gitexec.DiffOptions{
		CmdDir:  path,
		Cached:  true,
		NoColor: true,
		Minimal: true,
		Path:    excludeFromDiff,
	})
	if err != nil {
		return "", gitError("diff", out, err)
	}

	return strings.TrimSpace(string(out)), nil
}

func gitCommit(path, message string) error {
	out, err := gitexec.Commit(&gitexec.CommitOptions{
		CmdDir:  path,
		Message: message,
	})
	if err != nil {
		return gitError("commit", out, err)
	}

	return nil
}

func gitAddAll(path string) error {
	out, err := gitexec.Add(&gitexec.AddOptions{
		CmdDir: path,
		All:    true,
	})
	if err != nil {
		return gitError("add", out, err)
	}

	return nil
}

// gitCurrentBranch returns the name of the current branch.
func gitCurrentBranch(workDir string) (string, error) {
	out, err := gitexec.Branch(&gitexec.BranchOptions{
		CmdDir:      workDir,
		ShowCurrent: true,
	})
	if err != nil {
		return "", gitError("branch", out, err)
	}

	return strings.TrimSpace(string(out)), nil
}

// gitPush pushes the given branch to the named remote.
func gitPush(workDir, remote, branch string) error {
	out, err := gitexec.Push(&gitexec.PushOptions{
		CmdDir:     workDir,
		Repository: remote,
		Refspec:    []string{branch},
	})
	if err != nil {
		return gitError("push", out, err)
	}

	return nil
}
