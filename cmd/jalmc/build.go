package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jalm-lang/jalmgo/diag"
	"github.com/jalm-lang/jalmgo/internal/sourcemap"
	"github.com/jalm-lang/jalmgo/project"
)

// buildFile reads, parses and checks the jalm source at path, logging
// a one-line summary per diagnostic with its human-facing line/column
// (via sourcemap.Map) rather than a raw byte offset. It returns the
// combined diagnostic count so callers (build, test, run) can decide
// whether to fail.
func buildFile(path string) (diagCount int, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	sm := sourcemap.New(string(src))
	logDiag := func(d diag.Diagnostic) {
		pos := sm.Position(d.Span.Start)
		logger.Error("build", "file", path, "line", pos.Line, "column", pos.Column, "code", d.Code, "message", d.Message)
	}

	typeDiags, effectDiags, parseErrs := checkSource(string(src))
	if len(parseErrs) > 0 {
		for _, d := range parseErrs {
			logDiag(d)
		}
		return len(parseErrs), nil
	}

	all := append(append([]diag.Diagnostic{}, typeDiags...), effectDiags...)
	diag.SortBySpan(all)
	for _, d := range all {
		logDiag(d)
	}
	logger.Debug("build", "file", path, "diagnostics", len(all))
	return len(all), nil
}

func newBuildCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "parse and check the project's main source file",
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
			fmt.Fprintf(cmd.OutOrStdout(), "build: ok\n")
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	return cmd
}
