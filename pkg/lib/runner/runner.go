// Package runner starts processes and records how they terminated as a
// lib.ProcResult.
package runner

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/crates-lurey-io/proc-result/pkg/lib"
)

var logger logrus.FieldLogger = discardLogger()

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger replaces the package logger, which discards everything by
// default. Call it before starting processes.
func SetLogger(l logrus.FieldLogger) {
	logger = l
}

// Runner manages processes started by this library.
type Runner struct {
	mu        sync.RWMutex
	processes map[string]*processEntry

	workDir string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkDir runs processes in dir instead of the current directory.
func WithWorkDir(dir string) Option {
	return func(r *Runner) { r.workDir = dir }
}

// WithIO connects the standard streams of every started process. Nil
// streams are connected to the null device.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

type processEntry struct {
	id      string
	command lib.Command
	cmd     *exec.Cmd

	// status fields
	mu     sync.RWMutex
	state  lib.ProcessState
	result *lib.ProcResult
	err    error
	start  time.Time
	end    *time.Time
	pid    int

	// closed once the process has been waited for
	done chan struct{}
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) (*Runner, error) {
	r := &Runner{processes: make(map[string]*processEntry)}
	for _, opt := range opts {
		opt(r)
	}

	if r.workDir != "" {
		info, err := os.Stat(r.workDir)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("work dir %s is not a directory", r.workDir)
		}
	}

	return r, nil
}
