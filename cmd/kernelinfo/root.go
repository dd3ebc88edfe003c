package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Each call returns independent flag
// state.
func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "kernelinfo",
		Short:         "Inspect smoothing kernels and apply them to spike trains",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %s", logLevel)
			}
			logrus.SetLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	root.AddCommand(newListCmd(), newInfoCmd(), newDistanceCmd(), newSmoothCmd())
	return root
}
