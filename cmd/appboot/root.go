package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/a-peyrard/appboot/appconfig"
	"github.com/spf13/cobra"
)

const (
	exitOK = iota
	exitFailure
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "appboot",
		Short:         "Boot the application from its environment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(newRunCmd(), newConfigCmd())
	return rootCmd
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var cfgErr *appconfig.ConfigurationError
		if errors.As(err, &cfgErr) {
			_, _ = fmt.Fprintf(stderr, "appboot: cannot start, fix %s: %v\n", cfgErr.Setting, err)
		} else {
			_, _ = fmt.Fprintf(stderr, "appboot: %v\n", err)
		}
		return exitFailure
	}
	return exitOK
}
