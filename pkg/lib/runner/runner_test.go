//go:build unix

package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	sysunix "golang.org/x/sys/unix"

	"github.com/crates-lurey-io/proc-result/pkg/lib"
	"github.com/crates-lurey-io/proc-result/pkg/lib/unix"
)

// syncBuffer lets the test read output while os/exec copies into it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitResult(t *testing.T, r *Runner, id string) lib.ProcResult {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.Wait(ctx, id)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	return result
}

func TestStartAndOutput(t *testing.T) {
	var stdout, stderr syncBuffer
	runner, err := NewRunner(WithIO(nil, &stdout, &stderr))
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	res, err := runner.Start("sh", "-c", "echo out; echo err 1>&2")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	st := res.Status
	if st.State != lib.ProcessStateRunning {
		t.Fatalf("expected initial state Running, got %v", st.State)
	}
	if st.Result != nil {
		t.Fatalf("expected no result at start")
	}
	if st.EndTime != nil {
		t.Fatalf("expected no end time at start")
	}

	result := waitResult(t, runner, res.ID)
	if !result.IsSuccess() {
		t.Fatalf("expected success, got %s", result.Description())
	}

	statusResult, err := runner.Status(res.ID)
	if err != nil {
		t.Fatalf("Status error: %v", err)
	}
	if statusResult.Status.State != lib.ProcessStateStopped {
		t.Fatalf("expected state Stopped, got %v", statusResult.Status.State)
	}
	if statusResult.Status.Result == nil || *statusResult.Status.Result != result {
		t.Fatalf("expected result %v in status, got %v", result, statusResult.Status.Result)
	}
	if statusResult.Status.EndTime == nil {
		t.Fatalf("expected end time after completion")
	}
	if statusResult.Command.Command != "sh" || len(statusResult.Command.Args) != 2 {
		t.Fatalf("unexpected command %+v", statusResult.Command)
	}

	if stdout.String() != "out\n" {
		t.Fatalf("stdout: wrong value %q", stdout.String())
	}
	if stderr.String() != "err\n" {
		t.Fatalf("stderr: wrong value %q", stderr.String())
	}
}

func TestExitCodeRecorded(t *testing.T) {
	r, err := NewRunner()
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	res, err := r.Start("sh", "-c", "exit 75")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	result := waitResult(t, r, res.ID)
	if result.IsSuccess() {
		t.Fatalf("expected failure")
	}
	status, ok := result.Unix()
	if !ok {
		t.Fatalf("expected a unix result, got %v", result.Platform())
	}
	code, ok := status.ExitCode()
	if !ok || code != unix.ExitTempFail {
		t.Fatalf("expected exit code %d, got %s", unix.ExitTempFail, status)
	}

	var failed lib.ProcResult
	if err := result.Ok(); !errors.As(err, &failed) || failed != result {
		t.Fatalf("expected Ok to return the result, got %v", err)
	}
}

func TestStopKillsProcess(t *testing.T) {
	r, err := NewRunner()
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	res, err := r.Start("sh", "-c", "sleep 10")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if res.Status.State != lib.ProcessStateRunning {
		t.Fatalf("expected Running, got %v", res.Status.State)
	}

	pgid, err := sysunix.Getpgid(res.pid)
	if err != nil {
		t.Fatalf("Getpgid failed: %v", err)
	}
	if pgid != res.pid {
		t.Fatalf("expected process to lead its own group, pgid %d pid %d", pgid, res.pid)
	}

	stopResult, err := r.Stop(res.ID)
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if stopResult.Status.State != lib.ProcessStateStopped {
		t.Fatalf("expected Stopped after Stop, got %v", stopResult.Status.State)
	}

	result := waitResult(t, r, res.ID)
	status, _ := result.Unix()
	sig, ok := status.Signal()
	if !ok || sig != unix.SIGKILL {
		t.Fatalf("expected SIGKILL, got %s", status)
	}
	if result.ExitCode() != 137 {
		t.Fatalf("expected shell exit code 137, got %d", result.ExitCode())
	}

	// Stopping again returns the final status
	if _, err := r.Stop(res.ID); err != nil {
		t.Fatalf("second Stop failed: %v", err)
	}
}

func TestSignalGroupAfterExit(t *testing.T) {
	r, err := NewRunner()
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	res, err := r.Start("true")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	waitResult(t, r, res.ID)

	// The group has been reaped, as when the child exits between Stop's
	// done check and the kill.
	if err := killProcessGroup(res.pid); err != nil {
		t.Fatalf("killing an exited group failed: %v", err)
	}
	if err := interruptProcessGroup(res.pid); err != nil {
		t.Fatalf("interrupting an exited group failed: %v", err)
	}
	if err := r.Interrupt(res.ID); err != nil {
		t.Fatalf("Interrupt after exit failed: %v", err)
	}
}

func TestInterrupt(t *testing.T) {
	r, err := NewRunner()
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	res, err := r.Start("sleep", "10")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := r.Interrupt(res.ID); err != nil {
		t.Fatalf("Interrupt failed: %v", err)
	}

	result := waitResult(t, r, res.ID)
	status, _ := result.Unix()
	if sig, ok := status.Signal(); !ok || sig != unix.SIGTERM {
		t.Fatalf("expected SIGTERM, got %s", status)
	}
}

func TestWaitContextCancelled(t *testing.T) {
	r, err := NewRunner()
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	res, err := r.Start("sleep", "10")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer r.Stop(res.ID)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := r.Wait(ctx, res.ID); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestWorkDir(t *testing.T) {
	dir := t.TempDir()
	var stdout syncBuffer
	r, err := NewRunner(WithWorkDir(dir), WithIO(nil, &stdout, nil))
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	res, err := r.Start("pwd")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	waitResult(t, r, res.ID)

	want, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	got, err := os.Stat(string(bytes.TrimSpace([]byte(stdout.String()))))
	if err != nil {
		t.Fatalf("Stat of pwd output failed: %v", err)
	}
	if !os.SameFile(want, got) {
		t.Fatalf("expected process to run in %s, got %q", dir, stdout.String())
	}
}

func TestNewRunnerInvalidWorkDir(t *testing.T) {
	if _, err := NewRunner(WithWorkDir("/nonexistent/dir")); err == nil {
		t.Fatalf("expected error for missing work dir")
	}
}

func TestStartInvalidCommand(t *testing.T) {
	r, err := NewRunner()
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	_, err = r.Start("")
	if err == nil {
		t.Fatalf("expected error starting with empty command")
	}
}

func TestUnknownProcess(t *testing.T) {
	r, err := NewRunner()
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	if _, err := r.Status("missing"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist from Status, got %v", err)
	}
	if _, err := r.Stop("missing"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist from Stop, got %v", err)
	}
	if _, err := r.Wait(context.Background(), "missing"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist from Wait, got %v", err)
	}
}
