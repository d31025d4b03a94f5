package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jalm-lang/jalmgo/check"
	"github.com/jalm-lang/jalmgo/diag"
)

// checkResult is the JSON envelope `check` prints to stdout:
// `{"type_diagnostics":[...], "effect_diagnostics":[...]}`.
type checkResult struct {
	TypeDiagnostics   []diag.Diagnostic `json:"type_diagnostics"`
	EffectDiagnostics []diag.Diagnostic `json:"effect_diagnostics"`
}

// checkSource parses and checks src, returning type and effect
// diagnostics separately. A non-empty parseErrs return means the
// source never reached type/effect checking; both diagnostic slices
// will be empty in that case.
func checkSource(src string) (typeDiags, effectDiags, parseErrs []diag.Diagnostic) {
	root, errs := parseRoot(src)
	if len(errs) > 0 {
		return nil, nil, errs
	}
	return check.Check(root), check.CheckEffects(root), nil
}

func newCheckCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "type-check and effect-check a jalm source file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			typeDiags, effectDiags, parseErrs := checkSource(string(src))
			if len(parseErrs) > 0 {
				if format == "text" {
					writeDiagnosticsText(cmd.OutOrStdout(), args[0], string(src), parseErrs)
				} else {
					result := checkResult{
						TypeDiagnostics:   parseErrs,
						EffectDiagnostics: []diag.Diagnostic{},
					}
					if err := json.NewEncoder(cmd.OutOrStdout()).Encode(result); err != nil {
						return fmt.Errorf("encode result: %w", err)
					}
				}
				return fmt.Errorf("%s has parse errors", args[0])
			}

			diag.SortBySpan(typeDiags)
			diag.SortBySpan(effectDiags)
			if typeDiags == nil {
				typeDiags = []diag.Diagnostic{}
			}
			if effectDiags == nil {
				effectDiags = []diag.Diagnostic{}
			}

			if format == "text" {
				all := append(append([]diag.Diagnostic{}, typeDiags...), effectDiags...)
				diag.SortBySpan(all)
				writeDiagnosticsText(cmd.OutOrStdout(), args[0], string(src), all)
			} else {
				result := checkResult{TypeDiagnostics: typeDiags, EffectDiagnostics: effectDiags}
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(result); err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
			}
			logger.Debug("check", "file", args[0], "type_diagnostics", len(typeDiags), "effect_diagnostics", len(effectDiags))
			if len(typeDiags) > 0 || len(effectDiags) > 0 {
				return fmt.Errorf("%s has %d type and %d effect diagnostic(s)", args[0], len(typeDiags), len(effectDiags))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", `output format: "json" or "text"`)
	return cmd
}
