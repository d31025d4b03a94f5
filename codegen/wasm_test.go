package codegen

import (
	"bytes"
	"testing"

	"github.com/jalm-lang/jalmgo/diag"
)

var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

func TestCompileToWasmEmitsMagicAndSectionOrder(t *testing.T) {
	mod, diags := CompileToWasm("fn main() -> i64 { return 42; }")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !bytes.HasPrefix(mod, wasmMagic) {
		t.Fatalf("module does not start with the WASM magic/version header: % x", mod[:8])
	}

	rest := mod[8:]
	var sectionIDs []byte
	for len(rest) > 0 {
		id := rest[0]
		sectionIDs = append(sectionIDs, id)
		rest = rest[1:]
		// section length is a ULEB128 varint; single-byte decode is
		// enough for these small test modules (<128 bytes per section).
		length := int(rest[0])
		rest = rest[1+length:]
	}
	want := []byte{sectionType, sectionFunction, sectionExport, sectionCode}
	if !bytes.Equal(sectionIDs, want) {
		t.Fatalf("got section order %v, want %v", sectionIDs, want)
	}
}

func TestCompileToWasmExportsMain(t *testing.T) {
	mod, diags := CompileToWasm("fn main() -> i64 { return 42; }")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !bytes.Contains(mod, []byte("main")) {
		t.Fatal("expected the export section to contain the name \"main\"")
	}
}

func TestCompileToWasmOmitsExportWithoutMain(t *testing.T) {
	mod, diags := CompileToWasm("fn helper() -> i64 { return 1; }")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if bytes.Contains(mod, []byte("helper")) {
		t.Fatal("non-main functions must not appear in the export section")
	}
}

func TestCompileToWasmReportsUnknownFunction(t *testing.T) {
	_, diags := CompileToWasm("fn main() -> i64 { return nope(); }")
	found := false
	for _, d := range diags {
		if d.Code == diag.CodeUnknownFunction {
			found = true
		}
	}
	if !found {
		t.Fatalf("got %v, want E2005 among them", diags)
	}
}

func TestCompileToWasmReportsNoFunctions(t *testing.T) {
	_, diags := CompileToWasm("")
	if len(diags) != 1 || diags[0].Code != diag.CodeNoFunctions {
		t.Fatalf("got %v, want exactly [E2001]", diags)
	}
}

func TestCompileToWasmReportsUnsupportedParamAndReturnTypes(t *testing.T) {
	_, diags := CompileToWasm("fn f(a: bool) -> bool { return a; }")
	var codes []diag.Code
	for _, d := range diags {
		codes = append(codes, d.Code)
	}
	hasParam, hasReturn := false, false
	for _, c := range codes {
		if c == diag.CodeUnsupportedParam {
			hasParam = true
		}
		if c == diag.CodeUnsupportedReturn {
			hasReturn = true
		}
	}
	if !hasParam || !hasReturn {
		t.Fatalf("got %v, want both E2002 and E2003", codes)
	}
}

func TestCompileToWasmEmitsNoModuleWhenDiagnosticsPresent(t *testing.T) {
	mod, diags := CompileToWasm("fn main() -> i64 { return nope(); }")
	if mod != nil {
		t.Fatal("expected no module bytes when diagnostics are present")
	}
	if len(diags) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
}

func TestCompileToWasmPropagatesParseErrors(t *testing.T) {
	_, diags := CompileToWasm("fn main() -> i64 { return")
	if len(diags) == 0 {
		t.Fatal("expected parse errors to surface as diagnostics")
	}
	for _, d := range diags {
		if d.Code != diag.CodeParseErrors {
			t.Fatalf("got code %v, want CodeParseErrors for every diagnostic on malformed input", d.Code)
		}
	}
}
