package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jalm-lang/jalmgo/project"
)

// newRunCmd wires the build pipeline up front so diagnostics surface
// before the stub message, then reports that there is no runtime to
// actually execute the program: codegen only targets the i64/bool
// subset, and wiring an interpreter for it would go beyond that scope
// (no closures/async, no support beyond i64/bool).
func newRunCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "build the project, then report that execution isn't implemented",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(dir, project.SrcDir, project.MainFile)
			n, err := buildFile(path)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("build failed: %d diagnostic(s) in %s", n, path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run: ok (no runtime yet)\n")
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	return cmd
}
