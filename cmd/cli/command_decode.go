package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crates-lurey-io/proc-result/pkg/lib"
	"github.com/crates-lurey-io/proc-result/pkg/lib/unix"
	"github.com/crates-lurey-io/proc-result/pkg/lib/windows"
)

func newDecodeCmd(cfg *config, logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a raw status recorded on any platform",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "unix <status>",
		Short:   "Decode a POSIX wait status, e.g. 0x81 or 256",
		Args:    cobra.ExactArgs(1),
		Example: "  procresult decode unix 0x8b",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid wait status %q: %w", args[0], err)
			}
			status := unix.WaitStatusFromRaw(int32(n))
			logger.WithField("status", n).Debug("Decoding unix wait status")
			return printResult(cmd.OutOrStdout(), cfg.Output, lib.FromUnix(status))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "windows <code>",
		Short:   "Decode a Windows exit code, e.g. 9009 or 0xC0000005",
		Args:    cobra.ExactArgs(1),
		Example: "  procresult decode windows 0xC000013A",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid exit code %q: %w", args[0], err)
			}
			code := windows.ExitCodeFromRaw(uint32(n))
			logger.WithField("code", n).Debug("Decoding windows exit code")
			return printResult(cmd.OutOrStdout(), cfg.Output, lib.FromWindows(code))
		},
	})

	return cmd
}
