package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jalm-lang/jalmgo/project"
)

func newNewCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "scaffold a new jalm project",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := project.New(dir, args[0])
			if err != nil {
				return err
			}
			logger.Debug("new", "root", root)
			fmt.Fprintf(cmd.OutOrStdout(), "created project %s\n", root)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory to create the project under")
	return cmd
}
