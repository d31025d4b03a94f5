package main

import (
	"fmt"
	"io"

	"github.com/jalm-lang/jalmgo/diag"
	"github.com/jalm-lang/jalmgo/internal/sourcemap"
	"github.com/jalm-lang/jalmgo/syntax"
)

// parseRoot parses src and, if it parsed cleanly, returns the red tree
// rooted at it. On parse errors it returns the errors lifted into the
// shared diagnostic shape and a nil root.
func parseRoot(src string) (*syntax.RedNode, []diag.Diagnostic) {
	green, errs := syntax.Parse(src)
	if len(errs) > 0 {
		diags := make([]diag.Diagnostic, 0, len(errs))
		for _, e := range errs {
			diags = append(diags, diag.FromParseError(e))
		}
		diag.SortBySpan(diags)
		return nil, diags
	}
	return syntax.NewRoot(green), nil
}

// writeDiagnosticsText renders ds as human-readable "path:line:col:
// code: message" lines, the `--format=text` counterpart to the JSON
// envelopes `parse`/`check` otherwise emit. Positions are
// computed by sourcemap.Map from src, the same byte-offset-to-line/
// column resolution diagnostics need wherever they're shown to a
// person rather than parsed by another program.
func writeDiagnosticsText(w io.Writer, path, src string, ds []diag.Diagnostic) {
	sm := sourcemap.New(src)
	for _, d := range ds {
		pos := sm.Position(d.Span.Start)
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, pos.Line, pos.Column, d.Code, d.Message)
	}
}
