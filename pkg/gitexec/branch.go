package gitexec

import (
	"errors"
	"os/exec"
)

// BranchOptions represents the options for the git branch command.
type BranchOptions struct {
	CmdDir string

	ShowCurrent bool
}

// BranchCmd creates an *exec.Cmd for the git branch command.
func BranchCmd(opts *BranchOptions) *exec.Cmd {
	args := []string{"branch"}

	if opts.ShowCurrent {
		args = append(args, "--show-current")
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = opts.CmdDir

	return cmd
}

// Branch executes git branch with the given options.
func Branch(opts *BranchOptions) ([]byte, error) {
	if opts.CmdDir == "" {
		return nil, errors.New("missing command working directory")
	}

	cmd := BranchCmd(opts)

	return run(cmd)
}
