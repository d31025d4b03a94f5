package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jalm-lang/jalmgo/project"
)

func newTestCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "parse and check every test source file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := project.TestFiles(dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "test: no test files\n")
				return nil
			}

			failed := 0
			for _, f := range files {
				n, err := buildFile(f)
				if err != nil {
					return err
				}
				if n > 0 {
					failed++
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "test: %d/%d passed\n", len(files)-failed, len(files))
			if failed > 0 {
				return fmt.Errorf("%d of %d test file(s) failed", failed, len(files))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	return cmd
}
