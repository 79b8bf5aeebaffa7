// Package raw describes the numeric contract shared by platform exit codes.
//
// Concrete codes live in the unix and windows packages; raw only knows that a
// code has a native integer width and that zero means success.
package raw

// Integer is the set of native widths an exit code may be stored in.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ExitCode is implemented by every platform-specific exit code type. It is a
// plain method set so that conformance can be asserted with a variable.
type ExitCode[C Integer] interface {
	// ToRaw returns the code in its native width.
	ToRaw() C
	IsSuccess() bool
	IsFailure() bool
}

// Code constrains types that store a C verbatim and satisfy ExitCode[C]. Its
// type set is comparable through Integer.
type Code[C Integer] interface {
	Integer
	ExitCode[C]
}

// FromRaw builds a T from its native integer. It never fails.
func FromRaw[T Code[C], C Integer](code C) T {
	return T(code)
}

// IsSuccess reports whether code is zero. Implementations use it for their
// IsSuccess method.
func IsSuccess[C Integer](code C) bool {
	return code == 0
}

// IsFailure is the negation of IsSuccess.
func IsFailure[C Integer](code C) bool {
	return !IsSuccess(code)
}
