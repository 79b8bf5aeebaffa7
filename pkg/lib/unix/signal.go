package unix

import "strconv"

// Signal is a POSIX signal number.
//
// Names follow Linux numbering, which is also what most cross-platform tools
// assume. Numbers without a name are still valid Signals: they are reported
// as unrecognized and keep their value.
type Signal uint8

const (
	SIGHUP    Signal = 1
	SIGINT    Signal = 2
	SIGQUIT   Signal = 3
	SIGILL    Signal = 4
	SIGTRAP   Signal = 5
	SIGABRT   Signal = 6
	SIGBUS    Signal = 7
	SIGFPE    Signal = 8
	SIGKILL   Signal = 9
	SIGUSR1   Signal = 10
	SIGSEGV   Signal = 11
	SIGUSR2   Signal = 12
	SIGPIPE   Signal = 13
	SIGALRM   Signal = 14
	SIGTERM   Signal = 15
	SIGSTKFLT Signal = 16
	SIGCHLD   Signal = 17
	SIGCONT   Signal = 18
	SIGSTOP   Signal = 19
	SIGTSTP   Signal = 20
	SIGTTIN   Signal = 21
	SIGTTOU   Signal = 22
	SIGURG    Signal = 23
	SIGXCPU   Signal = 24
	SIGXFSZ   Signal = 25
	SIGVTALRM Signal = 26
	SIGPROF   Signal = 27
	SIGWINCH  Signal = 28
	SIGIO     Signal = 29
	SIGPWR    Signal = 30
	SIGSYS    Signal = 31
)

var signalNames = [...]string{
	SIGHUP:    "SIGHUP",
	SIGINT:    "SIGINT",
	SIGQUIT:   "SIGQUIT",
	SIGILL:    "SIGILL",
	SIGTRAP:   "SIGTRAP",
	SIGABRT:   "SIGABRT",
	SIGBUS:    "SIGBUS",
	SIGFPE:    "SIGFPE",
	SIGKILL:   "SIGKILL",
	SIGUSR1:   "SIGUSR1",
	SIGSEGV:   "SIGSEGV",
	SIGUSR2:   "SIGUSR2",
	SIGPIPE:   "SIGPIPE",
	SIGALRM:   "SIGALRM",
	SIGTERM:   "SIGTERM",
	SIGSTKFLT: "SIGSTKFLT",
	SIGCHLD:   "SIGCHLD",
	SIGCONT:   "SIGCONT",
	SIGSTOP:   "SIGSTOP",
	SIGTSTP:   "SIGTSTP",
	SIGTTIN:   "SIGTTIN",
	SIGTTOU:   "SIGTTOU",
	SIGURG:    "SIGURG",
	SIGXCPU:   "SIGXCPU",
	SIGXFSZ:   "SIGXFSZ",
	SIGVTALRM: "SIGVTALRM",
	SIGPROF:   "SIGPROF",
	SIGWINCH:  "SIGWINCH",
	SIGIO:     "SIGIO",
	SIGPWR:    "SIGPWR",
	SIGSYS:    "SIGSYS",
}

// SignalFromRaw wraps a raw signal number. Unknown numbers are kept as is.
func SignalFromRaw(sig uint8) Signal {
	return Signal(sig)
}

// ToRaw returns the signal number.
func (s Signal) ToRaw() uint8 {
	return uint8(s)
}

// Name returns the symbolic name, e.g. "SIGKILL", for a recognized signal.
func (s Signal) Name() (string, bool) {
	if int(s) >= len(signalNames) || signalNames[s] == "" {
		return "", false
	}
	return signalNames[s], true
}

// IsRecognized reports whether the signal has a name.
func (s Signal) IsRecognized() bool {
	_, ok := s.Name()
	return ok
}

func (s Signal) String() string {
	if name, ok := s.Name(); ok {
		return name
	}
	return "unrecognized(" + strconv.Itoa(int(s)) + ")"
}

// KnownSignals returns every named signal in ascending order.
func KnownSignals() []Signal {
	signals := make([]Signal, 0, len(signalNames)-1)
	for s := SIGHUP; s <= SIGSYS; s++ {
		signals = append(signals, s)
	}
	return signals
}
