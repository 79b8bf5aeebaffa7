package lib

import "time"

// ProcessState mirrors the lifecycle of a process started by the runner.
type ProcessState int

const (
	ProcessStateUnspecified ProcessState = iota
	ProcessStateRunning
	ProcessStateStopped
)

func (s ProcessState) String() string {
	switch s {
	case ProcessStateRunning:
		return "Running"
	case ProcessStateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Command captures command metadata used to start a process.
type Command struct {
	Command string
	Args    []string
}

// ProcessStatus captures runtime state and timestamps. Result is set once
// the process has been waited for and the host reported how it ended.
type ProcessStatus struct {
	State     ProcessState
	Result    *ProcResult
	StartTime time.Time
	EndTime   *time.Time
}
