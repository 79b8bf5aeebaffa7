//go:build unix

package runner

import (
	"errors"
	"syscall"

	sysunix "golang.org/x/sys/unix"
)

func sysProcAttr() *syscall.SysProcAttr {
	// New process group to manage children as a unit
	return &syscall.SysProcAttr{Setpgid: true}
}

func killProcessGroup(pid int) error {
	return signalProcessGroup(pid, sysunix.SIGKILL)
}

func interruptProcessGroup(pid int) error {
	return signalProcessGroup(pid, sysunix.SIGTERM)
}

// Negative PID means process group. A group that is already gone has
// nothing left to signal.
func signalProcessGroup(pid int, sig syscall.Signal) error {
	err := sysunix.Kill(-pid, sig)
	if errors.Is(err, sysunix.ESRCH) {
		return nil
	}
	return err
}
