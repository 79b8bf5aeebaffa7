// Package unix models POSIX process termination: exit codes, signals and the
// raw wait status returned by waitpid.
//
// Nothing here depends on the host platform, so a Linux status recorded
// elsewhere can be decoded on Windows and vice versa. Conversions to and from
// the host's syscall types are only compiled on unix targets.
package unix

import (
	"strconv"

	"github.com/crates-lurey-io/proc-result/pkg/lib/raw"
)

// ExitCode is the low-order byte a POSIX process passes to exit(3).
type ExitCode uint8

// Well-known exit codes. Values 64 through 78 come from sysexits.h.
const (
	// ExitSuccess is the universal success code.
	ExitSuccess ExitCode = 0
	// ExitGeneralError is the catch-all failure code.
	ExitGeneralError ExitCode = 1
	// ExitInvalidArgs is used by shell builtins for bad usage.
	ExitInvalidArgs ExitCode = 2

	ExitUsage       ExitCode = 64 // EX_USAGE
	ExitDataErr     ExitCode = 65 // EX_DATAERR
	ExitNoInput     ExitCode = 66 // EX_NOINPUT
	ExitNoUser      ExitCode = 67 // EX_NOUSER
	ExitNoHost      ExitCode = 68 // EX_NOHOST
	ExitUnavailable ExitCode = 69 // EX_UNAVAILABLE
	ExitSoftware    ExitCode = 70 // EX_SOFTWARE
	ExitOSErr       ExitCode = 71 // EX_OSERR
	ExitOSFile      ExitCode = 72 // EX_OSFILE
	ExitCantCreate  ExitCode = 73 // EX_CANTCREAT
	ExitIOErr       ExitCode = 74 // EX_IOERR
	ExitTempFail    ExitCode = 75 // EX_TEMPFAIL
	ExitProtocol    ExitCode = 76 // EX_PROTOCOL

	// ExitNoPerm is for insufficient higher-level permissions, not file
	// system problems (see ExitNoInput and ExitCantCreate for those).
	ExitNoPerm ExitCode = 77 // EX_NOPERM
	ExitConfig ExitCode = 78 // EX_CONFIG

	// ExitCommandCannotExecute is returned by shells when a command was found
	// but is not executable.
	ExitCommandCannotExecute ExitCode = 126
	// ExitCommandNotFound is returned by shells when a command is not in PATH.
	ExitCommandNotFound ExitCode = 127
)

var exitCodeNames = map[ExitCode]string{
	ExitSuccess:              "SUCCESS",
	ExitGeneralError:         "GENERAL_ERROR",
	ExitInvalidArgs:          "INVALID_ARGS",
	ExitUsage:                "USAGE",
	ExitDataErr:              "DATA_ERROR",
	ExitNoInput:              "NO_INPUT",
	ExitNoUser:               "NO_USER",
	ExitNoHost:               "NO_HOST",
	ExitUnavailable:          "UNAVAILABLE",
	ExitSoftware:             "SOFTWARE",
	ExitOSErr:                "OS_ERROR",
	ExitOSFile:               "OS_FILE",
	ExitCantCreate:           "CANT_CREATE",
	ExitIOErr:                "IO_ERROR",
	ExitTempFail:             "TEMP_FAIL",
	ExitProtocol:             "PROTOCOL",
	ExitNoPerm:               "NO_PERM",
	ExitConfig:               "CONFIG",
	ExitCommandCannotExecute: "COMMAND_CANNOT_EXECUTE",
	ExitCommandNotFound:      "COMMAND_NOT_FOUND",
}

var _ raw.ExitCode[uint8] = ExitCode(0)

var _ = raw.FromRaw[ExitCode, uint8]

// ExitCodeFromRaw wraps a raw exit byte.
func ExitCodeFromRaw(code uint8) ExitCode {
	return ExitCode(code)
}

// ToRaw returns the underlying byte.
func (c ExitCode) ToRaw() uint8 {
	return uint8(c)
}

// IsSuccess reports whether the code is zero.
func (c ExitCode) IsSuccess() bool {
	return raw.IsSuccess(c.ToRaw())
}

// IsFailure reports whether the code is non-zero.
func (c ExitCode) IsFailure() bool {
	return raw.IsFailure(c.ToRaw())
}

// Name returns the catalog name of a well-known code.
func (c ExitCode) Name() (string, bool) {
	name, ok := exitCodeNames[c]
	return name, ok
}

func (c ExitCode) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// KnownExitCodes returns the catalog in ascending order.
func KnownExitCodes() []ExitCode {
	codes := []ExitCode{ExitSuccess, ExitGeneralError, ExitInvalidArgs}
	for c := ExitUsage; c <= ExitConfig; c++ {
		codes = append(codes, c)
	}
	return append(codes, ExitCommandCannotExecute, ExitCommandNotFound)
}
