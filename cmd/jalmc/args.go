package main

import "github.com/spf13/cobra"

// exactArgs wraps cobra.ExactArgs so a wrong argument count reports as
// a usageError (exit 2) instead of the default operational-failure
// exit (1).
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}
