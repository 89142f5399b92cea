//go:build windows

package adapter

import "os/exec"

// setProcessGroup is a no-op; process groups are a POSIX concept.
func setProcessGroup(_ *exec.Cmd) {}

// terminateProcess kills the direct child. Grandchildren are covered
// by the WaitDelay bound on the pipe wait.
func terminateProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}

	return cmd.Process.Kill()
}
