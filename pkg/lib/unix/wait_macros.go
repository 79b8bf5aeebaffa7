package unix

// Bit-level copies of the <sys/wait.h> macros. The low 7 bits hold the
// terminating signal (0 when the process exited, 0x7f when it is stopped),
// bit 0x80 is the core dump flag and the next byte is the exit status or stop
// signal.
//
// WIFSIGNALED tests the whole low byte, as the BSD _WSTATUS form does, so a
// low byte of 0xff is signal 127 with a core dump. glibc masks with 0x7f
// there and calls it neither exited nor signaled.
//
// The extractors do not check the state: wExitStatus on a signaled status
// returns garbage rather than failing. Callers go through WaitState instead.

const (
	wSignalMask = 0x7f
	wStatusMask = 0xff
	wStopped    = 0x7f
	wCoreFlag   = 0x80
)

// WIFEXITED
func wIfExited(status int32) bool {
	return status&wSignalMask == 0
}

// WEXITSTATUS
func wExitStatus(status int32) uint8 {
	return uint8((status >> 8) & 0xff)
}

// WIFSIGNALED
func wIfSignaled(status int32) bool {
	s := status & wStatusMask
	return s != 0 && s != wStopped
}

// WTERMSIG
func wTermSig(status int32) uint8 {
	return uint8(status & wSignalMask)
}

// WIFSTOPPED
func wIfStopped(status int32) bool {
	return status&wStatusMask == wStopped
}

// WSTOPSIG
func wStopSig(status int32) uint8 {
	return uint8((status >> 8) & 0xff)
}

// WCOREDUMP. Only meaningful when wIfSignaled is true.
func wCoreDump(status int32) bool {
	return status&wCoreFlag != 0
}
