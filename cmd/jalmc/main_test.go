package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jalm-lang/jalmgo/diag"
)

func execCmd(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

func TestParseReportsNoErrorsForCleanSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.jalm")
	if err := os.WriteFile(file, []byte("fn main() -> i64 { return 0; }"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := execCmd(t, "parse", file)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var result parseResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %+v", result.Errors)
	}
}

func TestParseReportsSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "broken.jalm")
	if err := os.WriteFile(file, []byte("fn main() -> i64 { return"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := execCmd(t, "parse", file)
	if err == nil {
		t.Fatal("expected a non-nil error for malformed input")
	}
	var result parseResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if len(result.Errors) == 0 {
		t.Fatal("expected at least one parse error")
	}
}

func TestParseTextFormatReportsLineAndColumn(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "broken.jalm")
	if err := os.WriteFile(file, []byte("fn main() -> i64 {\n  return enum;\n}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := execCmd(t, "parse", file, "--format", "text")
	if err == nil {
		t.Fatal("expected a non-nil error for malformed input")
	}
	if !strings.Contains(out, file+":2:") {
		t.Fatalf("expected a %s:2:... location in text output, got %q", file, out)
	}
	if !strings.Contains(out, string(diag.CodeParseErrors)) {
		t.Fatalf("expected the diagnostic code in text output, got %q", out)
	}
}

func TestCheckTextFormatReportsLineAndColumn(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.jalm")
	if err := os.WriteFile(file, []byte("fn f() -> i64 {\n  return x;\n}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := execCmd(t, "check", file, "--format", "text")
	if err == nil {
		t.Fatal("expected a non-nil error for an undefined variable")
	}
	if !strings.Contains(out, file+":2:") {
		t.Fatalf("expected a %s:2:... location in text output, got %q", file, out)
	}
	if !strings.Contains(out, string(diag.CodeUndefinedVariable)) {
		t.Fatalf("expected E0001 in text output, got %q", out)
	}
}

func TestCheckReportsDiagnosticsJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.jalm")
	if err := os.WriteFile(file, []byte("fn main() -> i64 { return 0; }"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := execCmd(t, "check", file)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "type_diagnostics") {
		t.Fatalf("expected output to contain type_diagnostics, got %q", out)
	}
}

func TestFmtRewritesFileInPlace(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.jalm")
	if err := os.WriteFile(file, []byte("fn   main ( )  ->  i64  {  return 0 ; }"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := execCmd(t, "fmt", file); err != nil {
		t.Fatalf("fmt: %v", err)
	}
	got, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "fn main() -> i64 {\n  return 0;\n}"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNewCreatesProjectLayout(t *testing.T) {
	dir := t.TempDir()
	if _, err := execCmd(t, "new", "demo", "--dir", dir); err != nil {
		t.Fatalf("new: %v", err)
	}
	for _, rel := range []string{"jalm.toml", "jalm.lock", "src/main.jalm", "tests/basic.jalm"} {
		if _, err := os.Stat(filepath.Join(dir, "demo", rel)); err != nil {
			t.Fatalf("expected %s to exist: %v", rel, err)
		}
	}
}

func TestBuildSucceedsOnScaffoldedProject(t *testing.T) {
	dir := t.TempDir()
	if _, err := execCmd(t, "new", "demo", "--dir", dir); err != nil {
		t.Fatalf("new: %v", err)
	}
	root := filepath.Join(dir, "demo")
	if _, err := execCmd(t, "build", "--dir", root); err != nil {
		t.Fatalf("build: %v", err)
	}
}

func TestTestCommandRunsScaffoldedTests(t *testing.T) {
	dir := t.TempDir()
	if _, err := execCmd(t, "new", "demo", "--dir", dir); err != nil {
		t.Fatalf("new: %v", err)
	}
	root := filepath.Join(dir, "demo")
	out, err := execCmd(t, "test", "--dir", root)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if !strings.Contains(out, "1/1 passed") {
		t.Fatalf("expected 1/1 passed, got %q", out)
	}
}

func TestRunPrintsStubMessage(t *testing.T) {
	dir := t.TempDir()
	if _, err := execCmd(t, "new", "demo", "--dir", dir); err != nil {
		t.Fatalf("new: %v", err)
	}
	root := filepath.Join(dir, "demo")
	out, err := execCmd(t, "run", "--dir", root)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "no runtime yet") {
		t.Fatalf("expected stub message, got %q", out)
	}
}

func TestParseWithWrongArgCountIsUsageError(t *testing.T) {
	_, err := execCmd(t, "parse")
	if err == nil {
		t.Fatal("expected an error for missing argument")
	}
	var ue usageError
	if !errors.As(err, &ue) {
		t.Fatalf("expected a usageError, got %v (%T)", err, err)
	}
}
