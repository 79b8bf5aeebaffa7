// Package lib holds the platform-erased outcome of a process and the types
// shared with the runner.
package lib

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/crates-lurey-io/proc-result/pkg/lib/unix"
	"github.com/crates-lurey-io/proc-result/pkg/lib/windows"
)

// Platform identifies which family of termination semantics a ProcResult
// carries.
type Platform uint8

const (
	PlatformUnix Platform = iota
	PlatformWindows
)

func (p Platform) String() string {
	switch p {
	case PlatformUnix:
		return "unix"
	case PlatformWindows:
		return "windows"
	default:
		return fmt.Sprintf("platform(%d)", uint8(p))
	}
}

// ProcResult is the outcome of a terminated process: either a Unix wait
// status or a Windows exit code. The zero value is a successful Unix exit.
//
// A failed ProcResult is itself the error describing the failure, see Ok.
type ProcResult struct {
	platform Platform
	unix     unix.WaitStatus
	windows  windows.ExitCode
}

// FromUnix wraps a Unix wait status.
func FromUnix(status unix.WaitStatus) ProcResult {
	return ProcResult{platform: PlatformUnix, unix: status}
}

// FromWindows wraps a Windows exit code.
func FromWindows(code windows.ExitCode) ProcResult {
	return ProcResult{platform: PlatformWindows, windows: code}
}

// Platform returns the variant held by r.
func (r ProcResult) Platform() Platform {
	return r.platform
}

// Unix returns the wait status of a Unix result.
func (r ProcResult) Unix() (unix.WaitStatus, bool) {
	return r.unix, r.platform == PlatformUnix
}

// Windows returns the exit code of a Windows result.
func (r ProcResult) Windows() (windows.ExitCode, bool) {
	return r.windows, r.platform == PlatformWindows
}

// IsSuccess reports whether the process succeeded. A Unix process must have
// exited (not been signaled) with code zero; a Windows process must have
// exit code zero.
func (r ProcResult) IsSuccess() bool {
	switch r.platform {
	case PlatformUnix:
		code, ok := r.unix.ExitCode()
		return ok && code.IsSuccess()
	case PlatformWindows:
		return r.windows.IsSuccess()
	default:
		return false
	}
}

// IsFailure is the negation of IsSuccess.
func (r ProcResult) IsFailure() bool {
	return !r.IsSuccess()
}

// Ok returns nil on success and r itself otherwise.
func (r ProcResult) Ok() error {
	if r.IsSuccess() {
		return nil
	}
	return r
}

// Error implements error.
func (r ProcResult) Error() string {
	switch r.platform {
	case PlatformWindows:
		return fmt.Sprintf("windows exit code: %d", r.windows.ToRaw())
	default:
		return fmt.Sprintf("unix exit status: %d", r.unix.ToRaw())
	}
}

// ExitCode maps r onto the code a shell would report: the exit code of an
// exited process, 128+signal for a signaled one, and 1 for anything else.
func (r ProcResult) ExitCode() int {
	if r.platform == PlatformWindows {
		return int(r.windows.ToRaw())
	}
	state := r.unix.State()
	if code, ok := state.ExitCode(); ok {
		return int(code)
	}
	if sig, ok := state.Signal(); ok {
		return 128 + int(sig)
	}
	return 1
}

// Description explains the outcome in words, e.g. "terminated by SIGKILL".
func (r ProcResult) Description() string {
	switch r.platform {
	case PlatformWindows:
		if name, ok := r.windows.Name(); ok {
			return fmt.Sprintf("exited with code %s (%s)", r.windows, name)
		}
		return fmt.Sprintf("exited with code %s", r.windows)
	default:
		return r.unix.String()
	}
}

// procResultWire is the serialized shape shared by JSON and YAML.
type procResultWire struct {
	Unix    *unix.WaitStatus  `json:"unix,omitempty" yaml:"unix,omitempty"`
	Windows *windows.ExitCode `json:"windows,omitempty" yaml:"windows,omitempty"`
}

func (r ProcResult) wire() procResultWire {
	var v procResultWire
	switch r.platform {
	case PlatformWindows:
		v.Windows = &r.windows
	default:
		v.Unix = &r.unix
	}
	return v
}

func (v procResultWire) result() (ProcResult, error) {
	switch {
	case v.Unix != nil && v.Windows != nil:
		return ProcResult{}, errors.New("decoding proc result: both unix and windows set")
	case v.Unix != nil:
		return FromUnix(*v.Unix), nil
	case v.Windows != nil:
		return FromWindows(*v.Windows), nil
	default:
		return ProcResult{}, errors.New("decoding proc result: neither unix nor windows set")
	}
}

// MarshalJSON encodes r as {"unix": status} or {"windows": code}.
func (r ProcResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// UnmarshalJSON implements json.Unmarshaler. Exactly one key must be set.
func (r *ProcResult) UnmarshalJSON(b []byte) error {
	var v procResultWire
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decoding proc result: %w", err)
	}
	result, err := v.result()
	if err != nil {
		return err
	}
	*r = result
	return nil
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (r ProcResult) MarshalYAML() (any, error) {
	return r.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *ProcResult) UnmarshalYAML(value *yaml.Node) error {
	var v procResultWire
	if err := value.Decode(&v); err != nil {
		return fmt.Errorf("decoding proc result: %w", err)
	}
	result, err := v.result()
	if err != nil {
		return err
	}
	*r = result
	return nil
}
