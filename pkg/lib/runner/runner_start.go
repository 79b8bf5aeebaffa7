package runner

import (
	"errors"
	"os/exec"
	"time"

	"github.com/crates-lurey-io/proc-result/pkg/lib"
)

type StartResult struct {
	ID     string
	pid    int
	Status *lib.ProcessStatus
}

// Start starts a new process, returning its generated identifier and initial status.
func (runner *Runner) Start(command string, args ...string) (*StartResult, error) {
	if command == "" {
		return nil, errors.New("command is required")
	}
	processId := lib.NewID()
	log := logger.WithField("process", processId)

	cmd := exec.Command(command, args...)
	cmd.Dir = runner.workDir
	cmd.SysProcAttr = sysProcAttr()

	// nil streams are connected to the null device by os/exec
	cmd.Stdin = runner.stdin
	cmd.Stdout = runner.stdout
	cmd.Stderr = runner.stderr

	processEntry := &processEntry{
		id:      processId,
		command: lib.Command{Command: command, Args: append([]string(nil), args...)},
		cmd:     cmd,
		state:   lib.ProcessStateRunning,
		start:   time.Now(),
		done:    make(chan struct{}),
	}

	log.WithField("command", command).Debug("Starting process")
	if err := cmd.Start(); err != nil {
		log.WithError(err).Warn("Failed to start process")
		return nil, err
	}
	processEntry.pid = cmd.Process.Pid

	// Waiter
	go func() {
		log.Debug("Waiting for process to finish")
		err := cmd.Wait()

		processEntry.mu.Lock()
		defer func() {
			processEntry.mu.Unlock()
			close(processEntry.done)
		}()

		// ProcessState is set whenever the wait itself succeeded, even if
		// copying output failed afterwards.
		if cmd.ProcessState != nil {
			result := lib.FromProcessState(cmd.ProcessState)
			processEntry.result = &result
			log.WithField("result", result.Description()).Debug("Process finished")
		} else {
			processEntry.err = err
			log.WithError(err).Warn("Process finished without a status")
		}
		now := time.Now()
		processEntry.end = &now
		processEntry.state = lib.ProcessStateStopped
	}()

	runner.mu.Lock()
	runner.processes[processId] = processEntry
	runner.mu.Unlock()

	status := processEntry.lockAndGetStatus()

	return &StartResult{ID: processId, pid: cmd.Process.Pid, Status: &status}, nil
}
