// Package check implements jalmgo's two analyzers: a per-function type
// checker and a token-scan effect checker, both walking the same
// syntax.RedNode tree the parser produced.
package check

import "github.com/jalm-lang/jalmgo/syntax"

// Type is the type checker's internal tagged-union value. Compatibility
// is structural equality plus one rule: Unknown is compatible with
// everything, a soft bottom used to suppress cascading diagnostics after
// an upstream failure already reported. Error is compatible only with
// itself; the checks that compare types test for it explicitly and skip
// reporting a mismatch in whatever expression contains it.
type Type struct {
	kind  typeKind
	named string // populated only when kind == typeNamed
}

type typeKind uint8

const (
	typeI64 typeKind = iota
	typeI32
	typeF64
	typeBool
	typeString
	typeBytes
	typeUnit
	typeNamed
	typeUnknown
	typeError
)

var (
	I64     = Type{kind: typeI64}
	I32     = Type{kind: typeI32}
	F64     = Type{kind: typeF64}
	Bool    = Type{kind: typeBool}
	String  = Type{kind: typeString}
	Bytes   = Type{kind: typeBytes}
	Unit    = Type{kind: typeUnit}
	Unknown = Type{kind: typeUnknown}
	Error   = Type{kind: typeError}
)

// Named constructs a Named(name) type, for type-path spellings the
// checker doesn't otherwise recognize (struct/enum names, mostly —
// structurally opaque in this version, since there is no symbol
// resolution across declarations yet).
func Named(name string) Type {
	return Type{kind: typeNamed, named: name}
}

// Name renders the type the way diagnostics and the type-path parser
// spell it (`i64`, `bool`, `()`, or the bare name for Named).
func (t Type) Name() string {
	switch t.kind {
	case typeI64:
		return "i64"
	case typeI32:
		return "i32"
	case typeF64:
		return "f64"
	case typeBool:
		return "bool"
	case typeString:
		return "string"
	case typeBytes:
		return "bytes"
	case typeUnit:
		return "()"
	case typeNamed:
		return t.named
	case typeUnknown:
		return "<unknown>"
	case typeError:
		return "<error>"
	default:
		return "<invalid>"
	}
}

// IsNumeric reports whether t is one of the arithmetic types.
func (t Type) IsNumeric() bool {
	return t.kind == typeI64 || t.kind == typeI32 || t.kind == typeF64
}

// Equal reports plain structural equality, ignoring the Unknown rule
// (use Compatible for type-checking decisions).
func (t Type) Equal(o Type) bool {
	return t.kind == o.kind && t.named == o.named
}

// Compatible implements the checker's one compatibility rule beyond
// structural equality: Unknown is compatible with any type.
func Compatible(a, b Type) bool {
	if a.kind == typeUnknown || b.kind == typeUnknown {
		return true
	}
	return a.Equal(b)
}

// TypeFromPath converts the text of a parsed Type node (a dotted
// identifier path, e.g. "i64" or "my::Struct") into the internal
// variant. The built-in scalar spellings map to their dedicated variant;
// anything else becomes Named.
func TypeFromPath(text string) Type {
	switch text {
	case "i64":
		return I64
	case "i32":
		return I32
	case "f64":
		return F64
	case "bool":
		return Bool
	case "string":
		return String
	case "bytes":
		return Bytes
	case "()":
		return Unit
	default:
		return Named(text)
	}
}

// LiteralType maps a LiteralNode's token kind to its type: Int -> I64,
// Float -> F64, String -> String, Bytes -> Bytes, true|false -> Bool.
func LiteralType(kind syntax.SyntaxKind) Type {
	switch kind {
	case syntax.IntLit:
		return I64
	case syntax.FloatLit:
		return F64
	case syntax.StringLit:
		return String
	case syntax.ByteStringLit:
		return Bytes
	case syntax.KwTrue, syntax.KwFalse:
		return Bool
	default:
		return Unknown
	}
}

// Scope is one level of name -> type bindings. Scopes are pushed and
// popped on a stack kept by Checker; lookups walk the stack innermost-
// first.
type Scope map[string]Type

// scopeStack implements an ordered list of name->type maps. A fresh
// function starts with exactly one scope (its parameters); nested
// blocks do not push their own scope (see DESIGN.md's single-scope-per-
// function decision), so a `let` anywhere in the function body writes
// into that same function-wide scope.
type scopeStack struct {
	scopes []Scope
}

func newScopeStack() *scopeStack {
	return &scopeStack{scopes: []Scope{make(Scope)}}
}

func (s *scopeStack) insert(name string, ty Type) {
	if len(s.scopes) == 0 {
		return
	}
	s.scopes[len(s.scopes)-1][name] = ty
}

func (s *scopeStack) lookup(name string) (Type, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if ty, ok := s.scopes[i][name]; ok {
			return ty, true
		}
	}
	return Type{}, false
}
