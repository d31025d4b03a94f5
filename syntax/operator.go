package syntax

// Assoc is an operator's associativity. jalm's whole operator table
// happens to be left-associative, but the type still exists so a future
// right-assoc operator (e.g. exponentiation) has somewhere to record it
// without reshaping the table.
type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
)

// BinOpBindingPower returns the (left, right) Pratt binding power of a
// binary operator token kind, and whether kind is a binary operator at
// all. This is the single source of truth the parser's Pratt loop and
// the formatter's parenthesization logic both read from, so the two
// can never disagree about precedence.
func BinOpBindingPower(kind SyntaxKind) (lbp, rbp int, ok bool) {
	switch kind {
	case OrOr:
		return 1, 2, true
	case AndAnd:
		return 3, 4, true
	case EqEq, Neq:
		return 5, 6, true
	case Lt, LtEq, Gt, GtEq:
		return 7, 8, true
	case Plus, Minus:
		return 9, 10, true
	case Star, Slash, Percent:
		return 11, 12, true
	default:
		return 0, 0, false
	}
}

// BinOpAssoc returns kind's associativity. Every jalm binary operator
// is left-associative.
func BinOpAssoc(kind SyntaxKind) Assoc {
	return AssocLeft
}

// BinOpSymbol returns the operator's source-text spelling, for the
// formatter to re-emit when it synthesizes tokens (rather than just
// copying the original's trivia-preserving text verbatim).
func BinOpSymbol(kind SyntaxKind) string {
	switch kind {
	case OrOr:
		return "||"
	case AndAnd:
		return "&&"
	case EqEq:
		return "=="
	case Neq:
		return "!="
	case Lt:
		return "<"
	case LtEq:
		return "<="
	case Gt:
		return ">"
	case GtEq:
		return ">="
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case Percent:
		return "%"
	default:
		return ""
	}
}
