// Package windows models Windows process exit codes.
//
// The package builds on every platform; conversions to and from the host's
// syscall types are only compiled on Windows.
package windows

import (
	"fmt"
	"strconv"

	"github.com/crates-lurey-io/proc-result/pkg/lib/raw"
)

// ExitCode is the 32-bit value returned by GetExitCodeProcess.
type ExitCode uint32

// Well-known exit codes: Win32 error codes, cmd.exe conventions and the
// NTSTATUS values a crashing process exits with.
const (
	ExitSuccess          ExitCode = 0
	ExitGeneralError     ExitCode = 1
	ExitFileNotFound     ExitCode = 2   // ERROR_FILE_NOT_FOUND
	ExitPathNotFound     ExitCode = 3   // ERROR_PATH_NOT_FOUND
	ExitAccessDenied     ExitCode = 5   // ERROR_ACCESS_DENIED
	ExitNotEnoughMemory  ExitCode = 8   // ERROR_NOT_ENOUGH_MEMORY
	ExitInvalidParameter ExitCode = 87  // ERROR_INVALID_PARAMETER
	ExitBrokenPipe       ExitCode = 109 // ERROR_BROKEN_PIPE

	// ExitCommandNotRecognized is what cmd.exe returns when a command cannot
	// be found or executed.
	ExitCommandNotRecognized ExitCode = 9009

	ExitTerminatedByCtrlC ExitCode = 0xC000013A // STATUS_CONTROL_C_EXIT
	ExitAccessViolation   ExitCode = 0xC0000005 // STATUS_ACCESS_VIOLATION
	ExitStackOverflow     ExitCode = 0xC00000FD // STATUS_STACK_OVERFLOW
)

var exitCodeNames = map[ExitCode]string{
	ExitSuccess:              "SUCCESS",
	ExitGeneralError:         "GENERAL_ERROR",
	ExitFileNotFound:         "FILE_NOT_FOUND",
	ExitPathNotFound:         "PATH_NOT_FOUND",
	ExitAccessDenied:         "ACCESS_DENIED",
	ExitNotEnoughMemory:      "NOT_ENOUGH_MEMORY",
	ExitInvalidParameter:     "INVALID_PARAMETER",
	ExitBrokenPipe:           "BROKEN_PIPE",
	ExitCommandNotRecognized: "COMMAND_NOT_RECOGNIZED",
	ExitTerminatedByCtrlC:    "TERMINATED_BY_CTRL_C",
	ExitAccessViolation:      "ACCESS_VIOLATION",
	ExitStackOverflow:        "STACK_OVERFLOW",
}

var _ raw.ExitCode[uint32] = ExitCode(0)

var _ = raw.FromRaw[ExitCode, uint32]

// ExitCodeFromRaw wraps a raw exit code.
func ExitCodeFromRaw(code uint32) ExitCode {
	return ExitCode(code)
}

// ToRaw returns the underlying value.
func (c ExitCode) ToRaw() uint32 {
	return uint32(c)
}

// IsSuccess reports whether the code is zero.
func (c ExitCode) IsSuccess() bool {
	return raw.IsSuccess(c.ToRaw())
}

// IsFailure reports whether the code is non-zero.
func (c ExitCode) IsFailure() bool {
	return raw.IsFailure(c.ToRaw())
}

// IsNTStatus reports whether the code lies in the NTSTATUS error range
// (severity bits set), as left behind by crashes and console interrupts.
func (c ExitCode) IsNTStatus() bool {
	return c&0xC0000000 == 0xC0000000
}

// Name returns the catalog name of a well-known code.
func (c ExitCode) Name() (string, bool) {
	name, ok := exitCodeNames[c]
	return name, ok
}

func (c ExitCode) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// Hex formats the code the way Windows tools print NTSTATUS values.
func (c ExitCode) Hex() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// KnownExitCodes returns the catalog in ascending order.
func KnownExitCodes() []ExitCode {
	return []ExitCode{
		ExitSuccess,
		ExitGeneralError,
		ExitFileNotFound,
		ExitPathNotFound,
		ExitAccessDenied,
		ExitNotEnoughMemory,
		ExitInvalidParameter,
		ExitBrokenPipe,
		ExitCommandNotRecognized,
		ExitAccessViolation,
		ExitStackOverflow,
		ExitTerminatedByCtrlC,
	}
}
