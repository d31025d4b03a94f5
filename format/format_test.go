package format

import (
	"strings"
	"testing"

	"github.com/jalm-lang/jalmgo/syntax"
)

func TestFormatNormalizesSpacing(t *testing.T) {
	src := "fn   add(a:i64,b:i64)->i64{return a+b;}"
	got, diags := Format(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := "fn add(a: i64, b: i64) -> i64 {\n  return a + b;\n}"
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatRefusesParseErrors(t *testing.T) {
	_, diags := Format("fn (")
	if len(diags) == 0 {
		t.Fatal("expected diagnostics for malformed input")
	}
}

func TestFormatParenthesizesByPrecedence(t *testing.T) {
	src := "fn f() -> i64 { return (a + b) * c; }"
	got, diags := Format(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !strings.Contains(got, "(a + b) * c") {
		t.Fatalf("expected parens preserved around lower-precedence subtree, got:\n%s", got)
	}
}

func TestFormatPreservesExplicitParens(t *testing.T) {
	// An explicit ParenExpr in the source is always re-wrapped on
	// output, even where it is not needed to preserve precedence:
	// the formatter never second-guesses parens the user wrote.
	src := "fn f() -> i64 { return (a + b) + c; }"
	got, diags := Format(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !strings.Contains(got, "(a + b) + c") {
		t.Fatalf("expected explicit parens preserved, got:\n%s", got)
	}
}

func TestFormatOmitsParensForNaturalLeftAssociation(t *testing.T) {
	// No explicit ParenExpr here: `a - b - c` parses as a plain
	// left-nested BinExpr chain, so the formatter must not invent
	// parens around the left operand.
	src := "fn f() -> i64 { return a - b - c; }"
	got, diags := Format(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !strings.Contains(got, "a - b - c") {
		t.Fatalf("expected unparenthesized left-associative chain, got:\n%s", got)
	}
	if strings.Contains(got, "(") {
		t.Fatalf("expected no parens to be introduced, got:\n%s", got)
	}
}

func TestFormatUsePathAndAlias(t *testing.T) {
	src := "use   a :: b :: c   as   d ;"
	got, diags := Format(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := "use a::b::c as d;"
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatStructAndEnumBraceOwnLine(t *testing.T) {
	src := "struct Empty {}\nenum Also {}"
	got, diags := Format(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := "struct Empty {\n}\n\nenum Also {\n}"
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	src := "fn f(x: i64) -> i64 {\n  let y = x * 2;\n  return y + 1;\n}"
	once, diags := Format(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	twice, diags := Format(once)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics on reformat: %v", diags)
	}
	if once != twice {
		t.Fatalf("format not idempotent:\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
}

func TestFormatParseEquivalence(t *testing.T) {
	src := "fn f(x: i64, y: i64) -> i64 !{io} {\n  let z = x - y - 1;\n  if z == 0 {\n    return 1;\n  } else {\n    return z;\n  }\n}"
	out, diags := Format(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	origGreen, errs := syntax.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors on original: %v", errs)
	}
	fmtGreen, errs := syntax.Parse(out)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors on formatted output: %v", errs)
	}
	if !origGreen.EqualIgnoringTrivia(fmtGreen) {
		t.Fatalf("formatted tree shape differs from original (ignoring trivia)")
	}
}
