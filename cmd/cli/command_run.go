package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crates-lurey-io/proc-result/pkg/lib"
	"github.com/crates-lurey-io/proc-result/pkg/lib/runner"
)

// exitCodeError makes main exit with the code of a failed child without
// printing anything else; the result has been reported already.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string {
	return e.err.Error()
}

func (e *exitCodeError) Unwrap() error {
	return e.err
}

func newRunCmd(cfg *config, logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run -- <command> [args...]",
		Short: "Run a command and report how it terminated",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("command to execute is required; use -- to separate CLI flags from the command")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner.NewRunner(runner.WithIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			res, err := r.Start(args[0], args[1:]...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			result, err := waitInterruptible(ctx, stop, r, res.ID, logger)
			if err != nil {
				return err
			}

			if err := printResult(cmd.ErrOrStderr(), cfg.Output, result); err != nil {
				return fmt.Errorf("printing result: %w", err)
			}
			if err := result.Ok(); err != nil {
				return &exitCodeError{code: result.ExitCode(), err: err}
			}
			return nil
		},
	}
	// everything after the command name belongs to the child
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// waitInterruptible waits for the child. The first interrupt cancels ctx and
// is forwarded to the child; release is called before waiting again so that
// a second interrupt gets the default behaviour and terminates the CLI.
func waitInterruptible(ctx context.Context, release context.CancelFunc, r *runner.Runner, id string, logger logrus.FieldLogger) (lib.ProcResult, error) {
	result, err := r.Wait(ctx, id)
	if !errors.Is(err, context.Canceled) {
		return result, err
	}

	logger.WithField("process", id).Info("Interrupted, forwarding to child")
	release()
	if err := r.Interrupt(id); err != nil {
		logger.WithError(err).Warn("Failed to interrupt child")
	}
	return r.Wait(context.Background(), id)
}
