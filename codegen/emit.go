package codegen

import (
	"fmt"

	"github.com/jalm-lang/jalmgo/diag"
)

// Instruction opcodes, hand-encoded straight from the WASM binary spec
// since nothing in the example pack wraps a WASM encoder the way the
// original's wasm_encoder crate does (see DESIGN.md for the
// stdlib-only justification this forces on the whole codegen/wasm.go
// pairing).
const (
	opEnd     = 0x0B
	opElse    = 0x05
	opIf      = 0x04
	opReturn  = 0x0F
	opCall    = 0x10
	opDrop    = 0x1A
	opLocalGet = 0x20
	opLocalSet = 0x21
	opI32Const = 0x41
	opI64Const = 0x42
	opI64Eq    = 0x51
	opI64Ne    = 0x52
	opI64LtS   = 0x53
	opI64GtS   = 0x55
	opI64LeS   = 0x57
	opI64GeS   = 0x59
	opI64Add   = 0x7C
	opI64Sub   = 0x7D
	opI64Mul   = 0x7E
	opI64DivS  = 0x7F

	blockTypeEmpty = 0x40
)

// emitCtx carries the per-function state emitStmt/emitExpr need to turn
// names into WASM indices: params come first (index 0..len(params)),
// then locals in declaration order, then the function-name-to-index
// table shared across the whole module for Call emission.
type emitCtx struct {
	funcIndices map[string]uint32
	params      []Local
	locals      []Local
	diagnostics *[]diag.Diagnostic
}

func (c *emitCtx) localIndex(name string) (uint32, bool) {
	for i, p := range c.params {
		if p.Name == name {
			return uint32(i), true
		}
	}
	base := uint32(len(c.params))
	for i, l := range c.locals {
		if l.Name == name {
			return base + uint32(i), true
		}
	}
	return 0, false
}

func emitStmt(body *byteBuf, ctx *emitCtx, stmt Stmt) {
	switch s := stmt.(type) {
	case LetStmt:
		emitExpr(body, ctx, s.Expr)
		if idx, ok := ctx.localIndex(s.Name); ok {
			body.byte(opLocalSet)
			body.uleb(uint64(idx))
		}
	case ReturnStmt:
		emitExpr(body, ctx, s.Expr)
		body.byte(opReturn)
	case ExprStmt:
		emitExpr(body, ctx, s.Expr)
		body.byte(opDrop)
	case IfStmt:
		emitExpr(body, ctx, s.Cond)
		body.byte(opIf)
		body.byte(blockTypeEmpty)
		for _, st := range s.Then {
			emitStmt(body, ctx, st)
		}
		if len(s.Else) > 0 {
			body.byte(opElse)
			for _, st := range s.Else {
				emitStmt(body, ctx, st)
			}
		}
		body.byte(opEnd)
	}
}

func emitExpr(body *byteBuf, ctx *emitCtx, expr Expr) {
	switch e := expr.(type) {
	case IntExpr:
		body.byte(opI64Const)
		body.sleb(e.Value)
	case BoolExpr:
		body.byte(opI32Const)
		if e.Value {
			body.sleb(1)
		} else {
			body.sleb(0)
		}
	case IdentExpr:
		if idx, ok := ctx.localIndex(e.Name); ok {
			body.byte(opLocalGet)
			body.uleb(uint64(idx))
		} else {
			*ctx.diagnostics = append(*ctx.diagnostics, diag.Diagnostic{
				Code: diag.CodeUnknownLocal, Message: fmt.Sprintf("unknown local %s", e.Name),
			})
			body.byte(opI64Const)
			body.sleb(0)
		}
	case BinOpExpr:
		emitExpr(body, ctx, e.Lhs)
		emitExpr(body, ctx, e.Rhs)
		if op, ok := binOpcode(e.Op); ok {
			body.byte(op)
		}
	case CallExpr:
		for _, arg := range e.Args {
			emitExpr(body, ctx, arg)
		}
		if idx, ok := ctx.funcIndices[e.Name]; ok {
			body.byte(opCall)
			body.uleb(uint64(idx))
		} else {
			*ctx.diagnostics = append(*ctx.diagnostics, diag.Diagnostic{
				Code: diag.CodeUnknownFunction, Message: fmt.Sprintf("unknown function %s", e.Name),
			})
			body.byte(opI64Const)
			body.sleb(0)
		}
	}
}

func binOpcode(op BinOp) (byte, bool) {
	switch op {
	case OpAdd:
		return opI64Add, true
	case OpSub:
		return opI64Sub, true
	case OpMul:
		return opI64Mul, true
	case OpDiv:
		return opI64DivS, true
	case OpEq:
		return opI64Eq, true
	case OpNe:
		return opI64Ne, true
	case OpLt:
		return opI64LtS, true
	case OpLe:
		return opI64LeS, true
	case OpGt:
		return opI64GtS, true
	case OpGe:
		return opI64GeS, true
	default:
		return 0, false
	}
}
