package check

import (
	"testing"

	"github.com/jalm-lang/jalmgo/diag"
	"github.com/jalm-lang/jalmgo/syntax"
)

func mustParse(t *testing.T, src string) *syntax.RedNode {
	t.Helper()
	green, errs := syntax.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return syntax.NewRoot(green)
}

func codesOf(ds []diag.Diagnostic) []diag.Code {
	cs := make([]diag.Code, len(ds))
	for i, d := range ds {
		cs[i] = d.Code
	}
	return cs
}

func TestCheckAcceptsWellTypedFunction(t *testing.T) {
	root := mustParse(t, "fn add(a: i64, b: i64) -> i64 {\n  return a + b;\n}")
	ds := Check(root)
	if len(ds) != 0 {
		t.Fatalf("expected no diagnostics, got %v", codesOf(ds))
	}
}

func TestCheckReportsUndefinedVariable(t *testing.T) {
	root := mustParse(t, "fn f() -> i64 {\n  return x;\n}")
	ds := Check(root)
	if len(ds) != 1 || ds[0].Code != diag.CodeUndefinedVariable {
		t.Fatalf("got %v, want exactly [E0001]", codesOf(ds))
	}
}

func TestCheckReportsReturnMismatch(t *testing.T) {
	root := mustParse(t, "fn f() -> i64 {\n  return true;\n}")
	ds := Check(root)
	if len(ds) != 1 || ds[0].Code != diag.CodeReturnMismatch {
		t.Fatalf("got %v, want exactly [E0004]", codesOf(ds))
	}
}

func TestCheckReportsNonBoolCondition(t *testing.T) {
	root := mustParse(t, "fn f() -> i64 {\n  return if 1 { 2 } else { 3 };\n}")
	ds := Check(root)
	found := false
	for _, d := range ds {
		if d.Code == diag.CodeNonBoolCondition {
			found = true
		}
	}
	if !found {
		t.Fatalf("got %v, want E0005 among them", codesOf(ds))
	}
}

func TestCheckReportsIfBranchMismatch(t *testing.T) {
	root := mustParse(t, "fn f() -> i64 {\n  return if true { 1 } else { true };\n}")
	ds := Check(root)
	found := false
	for _, d := range ds {
		if d.Code == diag.CodeIfBranchMismatch {
			found = true
		}
	}
	if !found {
		t.Fatalf("got %v, want E0006 among them", codesOf(ds))
	}
}

func TestCheckReportsLetAnnotationMismatch(t *testing.T) {
	root := mustParse(t, "fn f() -> i64 {\n  let x: i64 = true;\n  return 0;\n}")
	ds := Check(root)
	if len(ds) != 1 || ds[0].Code != diag.CodeTypeMismatch {
		t.Fatalf("got %v, want exactly [E0003]", codesOf(ds))
	}
}

func TestCheckDiagnosticsAreSpanOrdered(t *testing.T) {
	root := mustParse(t, "fn f() -> i64 {\n  let y: i64 = true;\n  return x;\n}")
	ds := Check(root)
	for i := 1; i < len(ds); i++ {
		if ds[i].Span.Start < ds[i-1].Span.Start {
			t.Fatalf("diagnostics not span-ordered: %+v", ds)
		}
	}
}

func TestTypeFromPathAndCompatible(t *testing.T) {
	if TypeFromPath("i64") != I64 {
		t.Error("i64 should map to I64")
	}
	if TypeFromPath("Widget") != Named("Widget") {
		t.Error("unknown name should map to Named")
	}
	if !Compatible(Unknown, Bool) {
		t.Error("Unknown should be compatible with anything")
	}
	if Compatible(I64, Bool) {
		t.Error("I64 and Bool should not be compatible")
	}
}
