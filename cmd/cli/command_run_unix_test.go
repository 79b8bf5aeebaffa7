//go:build unix

package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crates-lurey-io/proc-result/pkg/lib/runner"
	"github.com/crates-lurey-io/proc-result/pkg/lib/unix"
)

func TestRunSuccess(t *testing.T) {
	out, errOut, err := execute(t, "run", "--", "sh", "-c", "echo hi")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
	assert.Contains(t, errOut, "| unix     |")
	assert.Contains(t, errOut, "true")
}

func TestRunExitCode(t *testing.T) {
	_, errOut, err := execute(t, "run", "--", "sh", "-c", "exit 3")
	require.Error(t, err)

	var exitErr *exitCodeError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.code)
	assert.Equal(t, "unix exit status: 768", err.Error())
	assert.Contains(t, errOut, "Exited")
}

func TestRunSignaled(t *testing.T) {
	_, _, err := execute(t, "-o", "json", "run", "--", "sh", "-c", "kill -KILL $$")
	var exitErr *exitCodeError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 137, exitErr.code)
}

func TestRunMissingCommand(t *testing.T) {
	_, _, err := execute(t, "run")
	assert.ErrorContains(t, err, "command to execute is required")

	_, _, err = execute(t, "run", "--", "/nonexistent/binary")
	require.Error(t, err)
	var exitErr *exitCodeError
	assert.False(t, errors.As(err, &exitErr))
}

func TestWaitInterruptibleReleasesHandler(t *testing.T) {
	ready, readyW, err := os.Pipe()
	require.NoError(t, err)
	defer ready.Close()

	r, err := runner.NewRunner(runner.WithIO(nil, readyW, nil))
	require.NoError(t, err)
	res, err := r.Start("sh", "-c", "trap '' TERM; echo ready; sleep 10")
	readyW.Close()
	require.NoError(t, err)

	line, err := bufio.NewReader(ready).ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "ready\n", line)

	// the interrupt has already arrived
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	released := make(chan struct{})
	release := func() {
		close(released)
		// the child ignores SIGTERM, only a second interrupt ends it
		go func() { _, _ = r.Stop(res.ID) }()
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	done := make(chan struct{})
	var waitErr error
	var status unix.WaitStatus
	go func() {
		defer close(done)
		result, err := waitInterruptible(ctx, release, r, res.ID, logger)
		waitErr = err
		status, _ = result.Unix()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("wait blocked without releasing the interrupt handler")
	}
	require.NoError(t, waitErr)

	select {
	case <-released:
	default:
		t.Fatal("release was not called")
	}
	sig, ok := status.Signal()
	require.True(t, ok, "status %s", status)
	assert.Equal(t, unix.SIGKILL, sig)
}
