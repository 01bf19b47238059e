//go:build windows

package runner

import (
	"os/exec"
	"syscall"
)

// setupProcessGroup configures cmd to use a Windows process group. Windows
// group semantics differ from Unix; this is best-effort.
func setupProcessGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.CreationFlags = syscall.CREATE_NEW_PROCESS_GROUP
}

// killProcessGroup kills the process directly. Windows has no exact
// equivalent of a Unix process group signal, so child processes may survive.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}

	return cmd.Process.Kill()
}
