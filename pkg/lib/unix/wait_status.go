package unix

// WaitStatus holds a raw wait status. It is the value stored and compared;
// the decoded WaitState is derived on demand.
type WaitStatus int32

// WaitStatusFromRaw wraps a raw wait status.
func WaitStatusFromRaw(status int32) WaitStatus {
	return WaitStatus(status)
}

// WaitStatusFromState encodes state, see WaitState.ToRaw.
func WaitStatusFromState(state WaitState) WaitStatus {
	return WaitStatus(state.ToRaw())
}

// ToRaw returns the raw status.
func (s WaitStatus) ToRaw() int32 {
	return int32(s)
}

// State decodes the status.
func (s WaitStatus) State() WaitState {
	return WaitStateFromRaw(int32(s))
}

// IsTerminated reports whether the process exited or was killed by a signal.
func (s WaitStatus) IsTerminated() bool {
	return s.State().Kind() != KindUnsupported
}

// IsExited reports whether the process exited normally.
func (s WaitStatus) IsExited() bool {
	return s.State().Kind() == KindExited
}

// IsSignaled reports whether the process was terminated by a signal.
func (s WaitStatus) IsSignaled() bool {
	return s.State().Kind() == KindSignaled
}

// ExitCode returns the exit code when the process exited normally.
func (s WaitStatus) ExitCode() (ExitCode, bool) {
	return s.State().ExitCode()
}

// Signal returns the terminating signal when the process was signaled.
func (s WaitStatus) Signal() (Signal, bool) {
	return s.State().Signal()
}

// CoreDumped reports whether the process was signaled and dumped core.
func (s WaitStatus) CoreDumped() bool {
	return s.State().CoreDump()
}

func (s WaitStatus) String() string {
	return s.State().String()
}
