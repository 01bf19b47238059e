//go:build unix

package runner

import (
	"os/exec"
	"syscall"
)

// setupProcessGroup configures cmd to run in a new process group so every
// descendant it spawns (e.g. a test binary forked by nargo/forge) shares
// one process group.
func setupProcessGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// killProcessGroup sends SIGKILL to the whole process group. The runner does
// not call it: there is no per-mutant timeout and no kill on cancellation.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}

	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
