//go:build windows

package windows

import (
	"os"
	"syscall"
)

// FromSyscall converts the host's wait status.
func FromSyscall(ws syscall.WaitStatus) ExitCode {
	return ExitCode(ws.ExitCode)
}

// Syscall converts c to the host's wait status.
func (c ExitCode) Syscall() syscall.WaitStatus {
	return syscall.WaitStatus{ExitCode: uint32(c)}
}

// FromProcessState extracts the exit code of a finished process.
func FromProcessState(ps *os.ProcessState) ExitCode {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok {
		return FromSyscall(ws)
	}
	return ExitCode(uint32(ps.ExitCode()))
}
