//go:build !windows

package adapter

import (
	"os/exec"
	"syscall"
)

// setProcessGroup places the child in its own process group so the
// whole tree can be signaled together.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// terminateProcess kills the child's entire process group, including
// grandchildren that inherited the output pipes.
func terminateProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}

	err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	if err == syscall.ESRCH {
		return nil
	}

	return err
}
