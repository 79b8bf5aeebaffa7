//go:build windows

package runner

import (
	"os"
	"syscall"

	syswindows "golang.org/x/sys/windows"
)

// Windows has no process groups in the POSIX sense. Processes are started
// in their own console group so that a CTRL_BREAK can be sent to it.

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_UNICODE_ENVIRONMENT | syswindows.CREATE_NEW_PROCESS_GROUP,
	}
}

func killProcessGroup(pid int) error {
	p, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return p.Kill()
}

func interruptProcessGroup(pid int) error {
	// the group id is the PID of the group leader
	return syswindows.GenerateConsoleCtrlEvent(syswindows.CTRL_BREAK_EVENT, uint32(pid))
}
