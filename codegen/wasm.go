package codegen

import (
	"github.com/jalm-lang/jalmgo/diag"
	"github.com/jalm-lang/jalmgo/syntax"
)

// byteBuf is a growable byte buffer with the LEB128 writers the WASM
// binary format needs everywhere: section/function/name lengths, type
// indices, and i64/i32 const operands.
type byteBuf struct{ b []byte }

func (w *byteBuf) byte(v byte) { w.b = append(w.b, v) }

func (w *byteBuf) bytes(v []byte) { w.b = append(w.b, v...) }

// uleb writes v as unsigned LEB128.
func (w *byteBuf) uleb(v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.b = append(w.b, b)
		if v == 0 {
			return
		}
	}
}

// sleb writes v as signed LEB128.
func (w *byteBuf) sleb(v int64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7 // arithmetic shift: sign-extends, which is what makes the termination check below work
		signBitSet := b&0x40 != 0
		done := (v == 0 && !signBitSet) || (v == -1 && signBitSet)
		if !done {
			b |= 0x80
		}
		w.b = append(w.b, b)
		if done {
			return
		}
	}
}

// name writes a length-prefixed UTF-8 string, as used for export names.
func (w *byteBuf) name(s string) {
	w.uleb(uint64(len(s)))
	w.b = append(w.b, s...)
}

// section wraps body with its section id and a ULEB128 byte-length
// prefix, matching every WASM section's framing.
func section(id byte, body []byte) []byte {
	var out byteBuf
	out.byte(id)
	out.uleb(uint64(len(body)))
	out.bytes(body)
	return out.b
}

const (
	valTypeI32 = 0x7F
	valTypeI64 = 0x7E

	sectionType     = 1
	sectionFunction = 3
	sectionExport   = 7
	sectionCode     = 10

	exportKindFunc = 0x00
)

func wasmValType(t ValType) byte {
	if t == ValI32 {
		return valTypeI32
	}
	return valTypeI64
}

// signatureFromFn derives a function's WASM signature, reporting E2002
// for any non-i64 parameter and E2003 for a non-i64 declared return —
// this is codegen's own, stricter type gate, independent of whatever
// the type checker already accepted, since the WASM target's subset is
// narrower than the full checked language.
func signatureFromFn(f *FnDef, diags *[]diag.Diagnostic) (params, result []ValType) {
	for _, p := range f.Params {
		if p.Type != ValI64 {
			*diags = append(*diags, diag.Diagnostic{Code: diag.CodeUnsupportedParam, Message: "only i64 params supported"})
		}
		params = append(params, p.Type)
	}
	if f.Ret != nil && *f.Ret != ValI64 {
		*diags = append(*diags, diag.Diagnostic{Code: diag.CodeUnsupportedReturn, Message: "only i64 return supported"})
	}
	result = []ValType{ValI64}
	return params, result
}

// CompileToWasm parses source, lowers it, and assembles a WASM binary
// module. It returns the module bytes on success, or the full batch of
// diagnostics collected along the way (parse errors as E2000, codegen
// type errors as E2002-E2005) with no partial module emitted.
//
// Grounded on jalm_codegen::compile_to_wasm (original_source); section
// order (Type, Function, Export, Code — no Memory/Import section) and
// the "emit nothing if any diagnostic fired" behavior are both kept
// exactly.
func CompileToWasm(source string) ([]byte, []diag.Diagnostic) {
	green, perrs := syntax.Parse(source)
	if len(perrs) > 0 {
		var diags []diag.Diagnostic
		for _, e := range perrs {
			diags = append(diags, diag.New(diag.CodeParseErrors, e.Message, e.Span))
		}
		return nil, diags
	}
	root := syntax.NewRoot(green)
	return CompileTree(root)
}

// CompileTree is CompileToWasm's post-parse half, split out so callers
// that already have a tree (e.g. `jalmc build` reusing a checked parse)
// don't pay for re-parsing.
func CompileTree(root *syntax.RedNode) ([]byte, []diag.Diagnostic) {
	functions := CollectFunctions(root)
	var diags []diag.Diagnostic
	if len(functions) == 0 {
		diags = append(diags, diag.New(diag.CodeNoFunctions, "no functions found", syntax.Span{}))
		return nil, diags
	}

	funcIndices := make(map[string]uint32, len(functions))
	for i, f := range functions {
		funcIndices[f.Name] = uint32(i)
	}

	var types, funcs, exports, code byteBuf
	types.uleb(uint64(len(functions)))
	funcs.uleb(uint64(len(functions)))
	var exportCount uint64
	var codeEntries [][]byte

	for i, f := range functions {
		params, result := signatureFromFn(f, &diags)

		types.byte(0x60)
		types.uleb(uint64(len(params)))
		for _, p := range params {
			types.byte(wasmValType(p))
		}
		types.uleb(uint64(len(result)))
		for _, r := range result {
			types.byte(wasmValType(r))
		}
		funcs.uleb(uint64(i))

		var fnBody byteBuf
		fnBody.uleb(uint64(len(f.Locals)))
		for _, l := range f.Locals {
			fnBody.uleb(1)
			fnBody.byte(wasmValType(l.Type))
		}

		ctx := &emitCtx{funcIndices: funcIndices, params: f.Params, locals: f.Locals, diagnostics: &diags}
		for _, stmt := range f.Body {
			emitStmt(&fnBody, ctx, stmt)
		}
		if f.Ret == nil || *f.Ret != ValI64 {
			fnBody.byte(opI64Const)
			fnBody.sleb(0)
		}
		fnBody.byte(opEnd)

		var entry byteBuf
		entry.uleb(uint64(len(fnBody.b)))
		entry.bytes(fnBody.b)
		codeEntries = append(codeEntries, entry.b)

		if f.Name == "main" {
			exports.name("main")
			exports.byte(exportKindFunc)
			exports.uleb(uint64(funcIndices["main"]))
			exportCount++
		}
	}

	if len(diags) > 0 {
		diag.SortBySpan(diags)
		return nil, diags
	}

	var exportSection byteBuf
	exportSection.uleb(exportCount)
	exportSection.bytes(exports.b)

	code.uleb(uint64(len(codeEntries)))
	for _, entry := range codeEntries {
		code.bytes(entry)
	}

	var module byteBuf
	module.bytes([]byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00})
	module.bytes(section(sectionType, types.b))
	module.bytes(section(sectionFunction, funcs.b))
	module.bytes(section(sectionExport, exportSection.b))
	module.bytes(section(sectionCode, code.b))
	return module.b, nil
}
