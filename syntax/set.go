package syntax

// SyntaxSet is a set of syntax kinds implemented as a bitset, so the
// parser can test "is the current token one of these?" in O(1) instead of
// chaining `==` comparisons.
//
// Based on rust-analyzer's TokenSet:
// https://github.com/rust-lang/rust-analyzer/blob/master/crates/parser/src/token_set.rs
type SyntaxSet struct {
	lo uint64 // kinds 0-63
	hi uint64 // kinds 64-127
}

const maxSetBit = 128

// NewSyntaxSet creates a new empty set.
func NewSyntaxSet() SyntaxSet {
	return SyntaxSet{}
}

// SyntaxSetOf creates a set containing the given kinds.
func SyntaxSetOf(kinds ...SyntaxKind) SyntaxSet {
	s := SyntaxSet{}
	for _, k := range kinds {
		s = s.Add(k)
	}
	return s
}

// Add inserts a syntax kind into the set and returns the new set.
func (s SyntaxSet) Add(kind SyntaxKind) SyntaxSet {
	if kind >= maxSetBit {
		panic("SyntaxSet.Add: kind discriminator must be < 128")
	}
	if kind < 64 {
		s.lo |= 1 << kind
	} else {
		s.hi |= 1 << (kind - 64)
	}
	return s
}

// Union combines two syntax sets.
func (s SyntaxSet) Union(other SyntaxSet) SyntaxSet {
	return SyntaxSet{lo: s.lo | other.lo, hi: s.hi | other.hi}
}

// Contains returns true if the set contains the given syntax kind.
func (s SyntaxSet) Contains(kind SyntaxKind) bool {
	if kind >= maxSetBit {
		return false
	}
	if kind < 64 {
		return s.lo&(1<<kind) != 0
	}
	return s.hi&(1<<(kind-64)) != 0
}

// IsEmpty returns true if the set contains no kinds.
func (s SyntaxSet) IsEmpty() bool {
	return s.lo == 0 && s.hi == 0
}

// Predefined sets used throughout the parser.

// ItemStartSet contains kinds that can start a top-level item.
var ItemStartSet = SyntaxSetOf(KwMod, KwUse, KwFn, KwAsync, KwStruct, KwEnum, KwPub)

// TypeStartSet contains kinds that can start a type.
var TypeStartSet = SyntaxSetOf(Ident)

// StmtStartSet contains kinds that can start a statement.
var StmtStartSet = SyntaxSetOf(KwLet, KwReturn)

// ExprStartSet contains kinds that can start an expression (primary
// position: block, if, match, identifier, literal, parenthesized).
var ExprStartSet = SyntaxSetOf(LBrace, KwIf, KwMatch, Ident, LParen,
	IntLit, FloatLit, StringLit, ByteStringLit, KwTrue, KwFalse)

// PatternStartSet contains kinds that can start a pattern.
var PatternStartSet = SyntaxSetOf(Ident, Underscore,
	IntLit, FloatLit, StringLit, ByteStringLit, KwTrue, KwFalse)

// BinaryOpSet contains kinds that are binary operators recognized by the
// Pratt core (see infixBindingPower in parser_expr.go).
var BinaryOpSet = SyntaxSetOf(
	OrOr, AndAnd, EqEq, Neq, Lt, LtEq, Gt, GtEq, Plus, Minus, Star, Slash, Percent,
)
