package runner

import (
	"context"
	"fmt"

	"github.com/crates-lurey-io/proc-result/pkg/lib"
)

// Wait blocks until the process has terminated or ctx is done, and returns
// how it terminated. A failed process is not an error here; check the
// result with IsSuccess or Ok.
func (runner *Runner) Wait(ctx context.Context, id string) (lib.ProcResult, error) {
	pe, err := runner.getProcess(id)
	if err != nil {
		return lib.ProcResult{}, err
	}

	select {
	case <-pe.done:
	case <-ctx.Done():
		return lib.ProcResult{}, ctx.Err()
	}

	pe.mu.RLock()
	defer pe.mu.RUnlock()
	if pe.result == nil {
		return lib.ProcResult{}, fmt.Errorf("process %s: %w", id, pe.err)
	}
	return *pe.result, nil
}
