//go:build windows

package lib

import (
	"os"

	"github.com/crates-lurey-io/proc-result/pkg/lib/windows"
)

// FromProcessState converts the state of a finished process. On Windows the
// result is always a Windows exit code.
func FromProcessState(ps *os.ProcessState) ProcResult {
	return FromWindows(windows.FromProcessState(ps))
}

func hostSuccess() ProcResult {
	return FromWindows(windows.ExitSuccess)
}
