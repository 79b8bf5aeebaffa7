//go:build !unix && !windows

package lib

import (
	"os"
	"runtime"
)

// FromProcessState panics: process states can only be interpreted on unix
// and windows targets.
func FromProcessState(ps *os.ProcessState) ProcResult {
	panic("lib: cannot convert process state on " + runtime.GOOS)
}

func hostSuccess() ProcResult {
	panic("lib: no native process results on " + runtime.GOOS)
}
