package gitexec

import (
	"errors"
	"os/exec"
)

// DiffOptions represents the options for the git diff command.
type DiffOptions struct {
	CmdDir string

	Cached   bool
	NoColor  bool
	Minimal  bool
	NameOnly bool

	Path []string
}

// DiffCmd creates an *exec.Cmd for the git diff command.
func DiffCmd(opts *DiffOptions) *exec.Cmd {
	args := []string{"diff"}

	if opts.Cached {
		args = append(args, "--cached")
	}
	if opts.NoColor {
		args = append(args, "--no-color")
	}
	if opts.Minimal {
		args = append(args, "--minimal")
	}
	if opts.NameOnly {
		args = append(args, "--name-only")
	}

	if len(opts.Path) > 0 {
		args = append(args, "--")
		args = append(args, opts.Path...)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = opts.CmdDir

	return cmd
}

// Diff executes git diff with the given options.
func Diff(opts *DiffOptions) ([]byte, error) {
	if opts.CmdDir == "" {
		return nil, errors.New("missing command working directory")
	}

	cmd := DiffCmd(opts)

	return run(cmd)
}
