package check

import (
	"testing"

	"github.com/jalm-lang/jalmgo/diag"
	"github.com/jalm-lang/jalmgo/syntax"
)

// parseEffectBody parses src for the effect-checker tests below without
// requiring a clean parse: `module::call(...)` is valid syntax only in
// use-paths and type paths in this grammar (faithfully ported from
// jalm_parser, which has the same gap), so a bare `net::dial()` call
// expression trips one expect() mismatch even though every token still
// ends up attached inside the enclosing Block — exactly the shape
// CheckEffects's token scan (not a grammar-level path expression) is
// built to tolerate.
func parseEffectBody(src string) *syntax.RedNode {
	green, _ := syntax.Parse(src)
	return syntax.NewRoot(green)
}

func TestCheckEffectsAcceptsDeclaredEffect(t *testing.T) {
	root := parseEffectBody("fn f() -> i64 !{net} {\n  return net::dial();\n}")
	ds := CheckEffects(root)
	if len(ds) != 0 {
		t.Fatalf("expected no diagnostics, got %v", codesOf(ds))
	}
}

func TestCheckEffectsReportsUndeclaredEffect(t *testing.T) {
	root := parseEffectBody("fn f() -> i64 {\n  return net::dial();\n}")
	ds := CheckEffects(root)
	if len(ds) != 1 || ds[0].Code != diag.CodeUndeclaredEffect {
		t.Fatalf("got %v, want exactly [E1001]", codesOf(ds))
	}
	if ds[0].Required == nil || *ds[0].Required != "net" {
		t.Fatalf("got required %v, want \"net\"", ds[0].Required)
	}
}

func TestCheckEffectsFoldsModuleAliases(t *testing.T) {
	// http:: folds into the net effect, log:: into io, per the module
	// prefix table.
	root := parseEffectBody("fn f() -> i64 !{io} {\n  return log::trace();\n}")
	ds := CheckEffects(root)
	if len(ds) != 0 {
		t.Fatalf("expected log:: to satisfy a declared io effect, got %v", codesOf(ds))
	}
}

func TestCheckEffectsDoesNotMisfireInsideComments(t *testing.T) {
	root := mustParse(t, "fn f() -> i64 {\n  // net::dial();\n  return 0;\n}")
	ds := CheckEffects(root)
	if len(ds) != 0 {
		t.Fatalf("expected comment text not to be scanned as code, got %v", codesOf(ds))
	}
}

func TestCheckEffectsIgnoresUnknownModulePrefixes(t *testing.T) {
	root := parseEffectBody("fn f() -> i64 {\n  return widget::make();\n}")
	ds := CheckEffects(root)
	if len(ds) != 0 {
		t.Fatalf("expected no diagnostics for an unrecognized module prefix, got %v", codesOf(ds))
	}
}
