// Package diag defines the diagnostic model shared by every analyzer:
// the parser, type checker, effect checker, and code generator all
// produce []Diagnostic, with a common JSON shape the CLI serializes
// directly to stdout.
package diag

import (
	"sort"

	"github.com/jalm-lang/jalmgo/syntax"
)

// Code is a stable diagnostic identifier, safe to match on across
// jalmgo versions.
type Code string

// The full set of stable codes.
const (
	CodeUndefinedVariable  Code = "E0001"
	CodeTypeMismatch       Code = "E0003"
	CodeReturnMismatch     Code = "E0004"
	CodeNonBoolCondition   Code = "E0005"
	CodeIfBranchMismatch   Code = "E0006"
	CodeMatchArmMismatch   Code = "E0007"
	CodeUndeclaredEffect   Code = "E1001"
	CodeParseErrors        Code = "E2000"
	CodeNoFunctions        Code = "E2001"
	CodeUnsupportedParam   Code = "E2002"
	CodeUnsupportedReturn  Code = "E2003"
	CodeUnknownLocal       Code = "E2004"
	CodeUnknownFunction    Code = "E2005"
)

// Diagnostic is one reported problem: a stable code, a human-readable
// message, the span it applies to, and kind-specific optional fields.
// Expected/Actual are populated by type diagnostics; Required by effect
// diagnostics. Fields are pointers so the JSON encoder omits them
// entirely when not applicable, keeping them nullable rather than empty.
type Diagnostic struct {
	Code     Code        `json:"code"`
	Message  string      `json:"message"`
	Span     SpanJSON    `json:"span"`
	Expected *string     `json:"expected,omitempty"`
	Actual   *string     `json:"actual,omitempty"`
	Required *string     `json:"required,omitempty"`
}

// SpanJSON mirrors syntax.Span's fields with explicit JSON tags, since
// syntax.Span is a plain struct whose field names already happen to
// match but isn't meant to carry a JSON contract of its own.
type SpanJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FromSpan converts a syntax.Span to its JSON representation.
func FromSpan(s syntax.Span) SpanJSON {
	return SpanJSON{Start: s.Start, End: s.End}
}

// Str builds a *string field, for Expected/Actual/Required.
func Str(s string) *string {
	return &s
}

// New creates a diagnostic with no optional fields set.
func New(code Code, message string, span syntax.Span) Diagnostic {
	return Diagnostic{Code: code, Message: message, Span: FromSpan(span)}
}

// FromParseError lifts a syntax.ParseError into the shared diagnostic
// shape, tagging it CodeParseErrors so `check`/`build` can report
// syntax errors alongside type and effect diagnostics with one
// consistent JSON shape.
func FromParseError(pe syntax.ParseError) Diagnostic {
	return New(CodeParseErrors, pe.Message, pe.Span)
}

// WithExpectedActual returns a copy of d with Expected/Actual populated,
// for type-mismatch-shaped diagnostics.
func (d Diagnostic) WithExpectedActual(expected, actual string) Diagnostic {
	d.Expected = Str(expected)
	d.Actual = Str(actual)
	return d
}

// WithRequired returns a copy of d with Required populated, for effect
// diagnostics.
func (d Diagnostic) WithRequired(required string) Diagnostic {
	d.Required = Str(required)
	return d
}

// SortBySpan reorders diagnostics in place so spans are monotonically
// non-decreasing in Start. Stable, so diagnostics that share a start
// position keep their relative emission order.
func SortBySpan(ds []Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Span.Start < ds[j].Span.Start
	})
}
