//go:build unix

package lib

import (
	"os"

	"github.com/crates-lurey-io/proc-result/pkg/lib/unix"
)

// FromProcessState converts the state of a finished process. On unix
// targets the result is always a Unix wait status.
func FromProcessState(ps *os.ProcessState) ProcResult {
	return FromUnix(unix.FromProcessState(ps))
}

func hostSuccess() ProcResult {
	return FromUnix(unix.WaitStatusFromState(unix.Exited(unix.ExitSuccess)))
}
