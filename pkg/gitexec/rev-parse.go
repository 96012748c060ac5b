package gitexec

import (
	"errors"
	"os/exec"
)

// RevParseOptions represents the options for the git rev-parse command.
type RevParseOptions struct {
	CmdDir string

	GitDir       bool
	ShowToplevel bool
}

// RevParseCmd creates an *exec.Cmd for the git rev-parse command.
func RevParseCmd(opts *RevParseOptions) *exec.Cmd {
	args := []string{"rev-parse"}

	if opts.GitDir {
		args = append(args, "--git-dir")
	}
	if opts.ShowToplevel {
		args = append(args, "--show-toplevel")
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = opts.CmdDir

	return cmd
}

// RevParse executes git rev-parse with the given options.
func RevParse(opts *RevParseOptions) ([]byte, error) {
	if opts.CmdDir == "" {
		return nil, errors.New("missing command working directory")
	}

	cmd := RevParseCmd(opts)

	return run(cmd)
}
