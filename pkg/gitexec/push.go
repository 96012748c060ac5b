package gitexec

import (
	"errors"
	"os/exec"
)

// PushOptions represents the options for the git push command.
type PushOptions struct {
	CmdDir string

	Repository string
	Refspec    []string
}

// PushCmd creates an *exec.Cmd for the git push command.
func PushCmd(opts *PushOptions) *exec.Cmd {
	args := []string{"push"}

	if opts.Repository != "" {
		args = append(args, opts.Repository)
	}
	if len(opts.Refspec) > 0 {
		args = append(args, opts.Refspec...)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = opts.CmdDir

	return cmd
}

// Push executes git push with the given options.
func Push(opts *PushOptions) ([]byte, error) {
	if opts.CmdDir == "" {
		return nil, errors.New("missing command working directory")
	}

	if opts.Repository == "" && len(opts.Refspec) > 0 {
		return nil, errors.New("refspec requires a repository")
	}

	cmd := PushCmd(opts)

	return run(cmd)
}
