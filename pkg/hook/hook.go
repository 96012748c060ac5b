// Package hook manages the prepare-commit-msg trigger script inside a
// repository's hooks directory. Ownership is determined structurally: the
// marker line embedded in the generated script body is the sole signal
// that a hook file belongs to this tool.
package hook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aicommit/pkg/gitexec"
)

// HookName is the git lifecycle point the trigger script is installed at.
const HookName = "prepare-commit-msg"

// Marker identifies hook files created by this tool. Uninstall never
// deletes a hook whose content does not contain it.
const Marker = "aicommit prepare-commit-msg hook"

// ErrNotARepository is returned when no git directory can be resolved for
// the working directory.
var ErrNotARepository = errors.New("not a git repository")

// The trigger runs only for ordinary commits: git passes the invocation
// source as the second positional argument, which is empty for plain
// commits and "message" for -m/-F commits; merge, squash and template
// sourced invocations are skipped. Two entry point candidates are tried in
// order: the absolute path recorded at install time, then the binary name
// on PATH.
const hookScriptFormat = `#!/bin/bash
# %[1]s
# Installed by aicommit. Run 'aicommit hook uninstall' to remove.

if [ "$2" == "" ] || [ "$2" == "message" ]; then
    if [ -x "%[2]s" ]; then
        "%[2]s" gen --message-file "$1"
        exit $?
    elif command -v aicommit >/dev/null 2>&1; then
        aicommit gen --message-file "$1"
        exit $?
    else
        echo "aicommit: executable not found" >&2
        exit 1
    fi
fi
`

// UninstallStatus describes the outcome of an Uninstall call. A foreign
// hook at the fixed path is a reported, successful no-op, not an error.
type UninstallStatus int

const (
	// Removed means an owned hook file was deleted.
	Removed UninstallStatus = iota
	// NotInstalled means no hook file existed at the fixed path.
	NotInstalled
	// SkippedForeign means a hook without the ownership marker occupies
	// the path and was left untouched.
	SkippedForeign
)

// Manager installs and removes the trigger script for one repository. It
// holds the resolved git directory so the filesystem behavior is testable
// against a plain directory.
type Manager struct {
	GitDir string
}

// NewManager resolves the git directory for workDir. Returns
// ErrNotARepository when the resolution fails.
func NewManager(workDir string) (*Manager, error) {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir: workDir,
		GitDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotARepository, strings.TrimSpace(string(out)))
	}

	gitDir := strings.TrimSpace(string(out))
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(workDir, gitDir)
	}

	return &Manager{GitDir: gitDir}, nil
}

// Path returns the fixed hook path for this repository.
func (m *Manager) Path() string {
	return filepath.Join(m.GitDir, "hooks", HookName)
}

// Install writes the trigger script embedding execPath as the generation
// entry point, creating the hooks directory if needed, and marks it
// executable. Any existing file at the hook path is overwritten
// unconditionally; re-running install rewrites identical content. Returns
// the hook path.
func (m *Manager) Install(execPath string) (string, error) {
	hooksDir := filepath.Join(m.GitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return "", fmt.Errorf("creating hooks directory: %w", err)
	}

	hookPath := m.Path()
	if err := os.WriteFile(hookPath, []byte(renderScript(execPath)), 0o755); err != nil {
		return "", fmt.Errorf("writing hook script: %w", err)
	}

	return hookPath, nil
}

// Uninstall removes the trigger script when this tool owns it. It reports
// NotInstalled when no hook file exists and SkippedForeign when the file
// lacks the ownership marker; the foreign file's content is never touched.
// The returned path names the inspected hook file.
func (m *Manager) Uninstall() (UninstallStatus, string, error) {
	hookPath := m.Path()

	data, err := os.ReadFile(hookPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NotInstalled, hookPath, nil
		}
		return NotInstalled, hookPath, fmt.Errorf("reading hook: %w", err)
	}

	if !IsManaged(string(data)) {
		return SkippedForeign, hookPath, nil
	}

	if err := os.Remove(hookPath); err != nil {
		return SkippedForeign, hookPath, fmt.Errorf("removing hook: %w", err)
	}

	return Removed, hookPath, nil
}

// IsManaged reports whether the given hook file content carries the
// ownership marker.
func IsManaged(content string) bool {
	return strings.Contains(content, Marker)
}

func renderScript(execPath string) string {
	return fmt.Sprintf(hookScriptFormat, Marker, execPath)
}
