package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crates-lurey-io/proc-result/pkg/lib/runner"
)

func NewRootCmd() *cobra.Command {
	cfg := loadConfig()
	logger := logrus.New()

	root := &cobra.Command{
		Use:           "procresult",
		Short:         "Decode and inspect process termination results",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			logger.SetLevel(level)
			logger.SetOutput(cmd.ErrOrStderr())
			runner.SetLogger(logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warning, error) [$PROCRESULT_LOG_LEVEL]")
	root.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "output format: text, json or yaml [$PROCRESULT_OUTPUT]")

	root.AddCommand(newDecodeCmd(cfg, logger))
	root.AddCommand(newCodesCmd(cfg))
	root.AddCommand(newRunCmd(cfg, logger))

	return root
}
