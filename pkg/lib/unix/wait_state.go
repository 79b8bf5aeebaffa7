package unix

import "fmt"

// Kind tells which variant a WaitState holds.
type Kind uint8

const (
	// KindExited means the process called exit(3) or returned from main.
	KindExited Kind = iota
	// KindSignaled means the process was terminated by a signal.
	KindSignaled
	// KindUnsupported covers everything else, e.g. stopped or continued
	// processes and malformed statuses.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindExited:
		return "Exited"
	case KindSignaled:
		return "Signaled"
	default:
		return "Unsupported"
	}
}

// WaitState is the decoded meaning of a raw wait status. Exactly one variant
// is held; WaitStates are comparable with ==.
type WaitState struct {
	kind     Kind
	exitCode ExitCode
	signal   Signal
	coreDump bool
	raw      int32
}

// Exited builds the state of a process that exited with code.
func Exited(code ExitCode) WaitState {
	return WaitState{kind: KindExited, exitCode: code}
}

// Signaled builds the state of a process terminated by sig.
func Signaled(sig Signal, coreDump bool) WaitState {
	return WaitState{kind: KindSignaled, signal: sig, coreDump: coreDump}
}

// Unsupported builds the state of a status that is neither exited nor
// signaled. The raw value is kept for diagnostics.
func Unsupported(status int32) WaitState {
	return WaitState{kind: KindUnsupported, raw: status}
}

// WaitStateFromRaw decodes a status as returned by waitpid. Every int32 maps
// to exactly one state.
func WaitStateFromRaw(status int32) WaitState {
	switch {
	case wIfExited(status):
		return Exited(ExitCode(wExitStatus(status)))
	case wIfSignaled(status):
		return Signaled(Signal(wTermSig(status)), wCoreDump(status))
	default:
		return Unsupported(status)
	}
}

// ToRaw encodes the state as a wait status, which is handy for building
// statuses in tests. Exited and Signaled states survive a round trip through
// WaitStateFromRaw; an Unsupported state returns its stored value verbatim.
func (w WaitState) ToRaw() int32 {
	switch w.kind {
	case KindExited:
		return int32(w.exitCode) << 8
	case KindSignaled:
		status := int32(w.signal)
		if w.coreDump {
			status |= wCoreFlag
		}
		return status
	default:
		return w.raw
	}
}

// Kind returns the variant held by w.
func (w WaitState) Kind() Kind {
	return w.kind
}

// ExitCode returns the exit code of an Exited state.
func (w WaitState) ExitCode() (ExitCode, bool) {
	return w.exitCode, w.kind == KindExited
}

// Signal returns the terminating signal of a Signaled state.
func (w WaitState) Signal() (Signal, bool) {
	return w.signal, w.kind == KindSignaled
}

// CoreDump reports whether a Signaled state produced a core dump. It is
// false for the other variants.
func (w WaitState) CoreDump() bool {
	return w.kind == KindSignaled && w.coreDump
}

// UnsupportedStatus returns the raw status of an Unsupported state.
func (w WaitState) UnsupportedStatus() (int32, bool) {
	return w.raw, w.kind == KindUnsupported
}

func (w WaitState) String() string {
	switch w.kind {
	case KindExited:
		return fmt.Sprintf("exited with code %d", w.exitCode)
	case KindSignaled:
		if w.coreDump {
			return fmt.Sprintf("terminated by %s (core dumped)", w.signal)
		}
		return fmt.Sprintf("terminated by %s", w.signal)
	default:
		if wIfStopped(w.raw) {
			return fmt.Sprintf("unsupported status %#x (stopped by %s)", uint32(w.raw), Signal(wStopSig(w.raw)))
		}
		return fmt.Sprintf("unsupported status %#x", uint32(w.raw))
	}
}
