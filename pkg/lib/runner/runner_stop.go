package runner

import (
	"time"

	"github.com/crates-lurey-io/proc-result/pkg/lib"
)

// stopTimeout bounds how long Stop waits for the killed process to be reaped.
const stopTimeout = 1 * time.Second

// StopResult returns process info and its final status after Stop.
type StopResult struct {
	Command *lib.Command
	Status  *lib.ProcessStatus
}

// Stop kills the process group by identifier and returns the final status
// (or the current one if the process did not go away in time).
func (runner *Runner) Stop(id string) (*StopResult, error) {
	pe, err := runner.getProcess(id)
	if err != nil {
		return nil, err
	}
	res := StopResult{Command: &pe.command}

	select {
	case <-pe.done:
		st := pe.lockAndGetStatus()
		res.Status = &st
		return &res, nil
	default:
	}

	logger.WithField("process", id).Debug("Killing process group")
	if err := killProcessGroup(pe.pid); err != nil {
		return nil, err
	}

	select {
	case <-pe.done:
	case <-time.After(stopTimeout):
		logger.WithField("process", id).Warn("Process did not stop in time")
	}

	st := pe.lockAndGetStatus()
	res.Status = &st
	return &res, nil
}

// Interrupt asks the process group to terminate: SIGTERM on unix, a
// CTRL_BREAK event on Windows. It does not wait.
func (runner *Runner) Interrupt(id string) error {
	pe, err := runner.getProcess(id)
	if err != nil {
		return err
	}
	logger.WithField("process", id).Debug("Interrupting process group")
	return interruptProcessGroup(pe.pid)
}
