// Command jalmc is the jalm toolchain CLI: parse, fmt, check, new,
// build, test and run.
//
// A package-level *slog.Logger is reconfigured from a persistent flag in
// PersistentPreRunE; SilenceUsage/SilenceErrors let the root command
// control its own error reporting and exit codes.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// logger is reconfigured by rootCmd's PersistentPreRunE once --verbose
// is known; subcommands log through this rather than carrying their
// own handler.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// usageError marks an error that should exit 2 (usage error) instead of
// the default 1 (operational failure).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return usageError{err: fmt.Errorf(format, args...)}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "jalmc",
		Short:         "jalmc is the jalm compiler toolchain",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl := slog.LevelWarn
			if verbose {
				lvl = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     lvl,
				AddSource: verbose,
			})
			logger = slog.New(handler)
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newParseCmd(),
		newFmtCmd(),
		newCheckCmd(),
		newNewCmd(),
		newBuildCmd(),
		newTestCmd(),
		newRunCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var ue usageError
		if errors.As(err, &ue) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
