package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jalm-lang/jalmgo/format"
)

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "rewrite a jalm source file in its canonical form",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			formatted, errs := format.Format(string(src))
			if len(errs) > 0 {
				return fmt.Errorf("%s has parse errors, refusing to format", path)
			}
			if formatted == string(src) {
				logger.Debug("fmt", "file", path, "changed", false)
				return nil
			}

			info, err := os.Stat(path)
			mode := os.FileMode(0o644)
			if err == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(path, []byte(formatted), mode); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			logger.Debug("fmt", "file", path, "changed", true)
			return nil
		},
	}
}
