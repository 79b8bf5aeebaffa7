//go:build unix

package unix

import (
	"os"
	"syscall"
)

// FromSyscall converts the host's wait status.
func FromSyscall(ws syscall.WaitStatus) WaitStatus {
	return WaitStatus(int32(ws))
}

// Syscall converts s to the host's wait status.
func (s WaitStatus) Syscall() syscall.WaitStatus {
	return syscall.WaitStatus(uint32(s))
}

// FromProcessState extracts the wait status of a finished process. When the
// host reports an exit code directly it is used, otherwise the raw status is.
func FromProcessState(ps *os.ProcessState) WaitStatus {
	if ps.Exited() {
		return WaitStatusFromState(Exited(ExitCode(ps.ExitCode())))
	}
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok {
		return FromSyscall(ws)
	}
	return WaitStatus(int32(ps.ExitCode()))
}
