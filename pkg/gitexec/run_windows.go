//go:build windows

package gitexec

import "os/exec"

func withSysProcAttr(cmd *exec.Cmd) {}
