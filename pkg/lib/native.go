package lib

import (
	"errors"
	"os"
	"os/exec"
)

// Check converts the state of a finished process into a strict result: nil
// when it succeeded, the ProcResult otherwise.
func Check(ps *os.ProcessState) error {
	return FromProcessState(ps).Ok()
}

// FromExecError recovers the ProcResult from the error returned by
// exec.Cmd.Run or Wait. A nil error is a host success. It reports false when
// err does not carry a process state, e.g. when the command failed to start.
func FromExecError(err error) (ProcResult, bool) {
	if err == nil {
		return hostSuccess(), true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ProcessState != nil {
		return FromProcessState(exitErr.ProcessState), true
	}
	return ProcResult{}, false
}
