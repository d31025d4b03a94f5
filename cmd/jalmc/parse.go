package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jalm-lang/jalmgo/diag"
	"github.com/jalm-lang/jalmgo/syntax"
)

// parseResult is the JSON envelope `parse` prints to stdout:
// `{"errors":[...]}`.
type parseResult struct {
	Errors []diag.Diagnostic `json:"errors"`
}

func newParseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "parse a jalm source file and report syntax errors",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			logger.Debug("parse", "file", args[0], "bytes", len(src))

			_, errs := syntax.Parse(string(src))
			result := parseResult{Errors: make([]diag.Diagnostic, 0, len(errs))}
			for _, e := range errs {
				result.Errors = append(result.Errors, diag.FromParseError(e))
			}
			diag.SortBySpan(result.Errors)

			if format == "text" {
				writeDiagnosticsText(cmd.OutOrStdout(), args[0], string(src), result.Errors)
			} else {
				enc := json.NewEncoder(cmd.OutOrStdout())
				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("%d parse error(s) in %s", len(result.Errors), args[0])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", `output format: "json" or "text"`)
	return cmd
}
