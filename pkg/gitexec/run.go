// Package gitexec builds and runs git commands as subprocesses. Each
// command has an options struct, a Cmd constructor for inspection, and a
// runner returning the combined output so callers can surface git's own
// diagnostics on failure.
package gitexec

import "os/exec"

func run(cmd *exec.Cmd) ([]byte, error) {
	withSysProcAttr(cmd)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, err
	}

	return out, nil
}
