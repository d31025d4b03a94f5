package syntax

// SyntaxKind is the type of a syntax node or token. It spans three
// categories: token kinds produced by the lexer, node kinds produced by
// the parser, and two sentinels (Tombstone, Eof) used only during tree
// construction.
type SyntaxKind uint8

const (
	// Tombstone marks an event whose real kind has not been decided yet.
	// It is always overwritten before the tree is built; it must never
	// appear in a finished tree.
	Tombstone SyntaxKind = iota
	// Eof is the synthetic token the parser sees past the end of input.
	Eof

	// Trivia.
	Whitespace
	LineComment
	BlockComment
	ErrorToken

	// Literals and identifiers.
	Ident
	Underscore
	IntLit
	FloatLit
	StringLit
	ByteStringLit

	// Keywords.
	KwMod
	KwUse
	KwFn
	KwAsync
	KwStruct
	KwEnum
	KwMatch
	KwIf
	KwElse
	KwFor
	KwIn
	KwReturn
	KwLet
	KwMut
	KwTrue
	KwFalse
	KwScope
	KwSpawn
	KwJoin
	KwAwait
	KwAs
	KwPub

	// Punctuation.
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Semi
	Colon
	ColonColon
	Dot
	DotDot
	DotDotEq
	Arrow
	FatArrow
	Bang

	// Operators.
	Plus
	Minus
	Star
	Slash
	Percent
	Eq
	EqEq
	Neq
	Lt
	LtEq
	Gt
	GtEq
	AndAnd
	OrOr
	Shl
	ShlEq

	// Node kinds (non-terminals).
	Root
	ModuleDecl
	UseDecl
	UsePath
	FnDecl
	ParamList
	Param
	Type
	EffectSet
	StructDecl
	StructField
	EnumDecl
	EnumVariant
	Block
	StmtList
	LetStmt
	ReturnStmt
	ExprStmt
	IfExpr
	MatchExpr
	MatchArm
	CallExpr
	MemberExpr
	BinExpr
	ParenExpr
	IdentNode
	LiteralNode
	Pattern
	Error
)

// IsTrivia reports whether kind is whitespace or a comment: syntactically
// insignificant but still preserved as a token in the tree.
func (k SyntaxKind) IsTrivia() bool {
	switch k {
	case Whitespace, LineComment, BlockComment:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether kind is one of the reserved words.
func (k SyntaxKind) IsKeyword() bool {
	switch k {
	case KwMod, KwUse, KwFn, KwAsync, KwStruct, KwEnum, KwMatch, KwIf, KwElse,
		KwFor, KwIn, KwReturn, KwLet, KwMut, KwTrue, KwFalse, KwScope,
		KwSpawn, KwJoin, KwAwait, KwAs, KwPub:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether kind starts a literal expression.
func (k SyntaxKind) IsLiteral() bool {
	switch k {
	case IntLit, FloatLit, StringLit, ByteStringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsToken reports whether kind is a terminal (lexer-produced) kind,
// as opposed to a node kind produced by the parser.
func (k SyntaxKind) IsToken() bool {
	return k < Root
}

// Name returns a human-readable name for the syntax kind, used by String.
// Parser error messages use DebugName instead.
func (k SyntaxKind) Name() string {
	switch k {
	case Tombstone:
		return "tombstone"
	case Eof:
		return "end of file"
	case Whitespace:
		return "whitespace"
	case LineComment:
		return "line comment"
	case BlockComment:
		return "block comment"
	case ErrorToken:
		return "invalid character"
	case Ident:
		return "identifier"
	case Underscore:
		return "`_`"
	case IntLit:
		return "integer literal"
	case FloatLit:
		return "float literal"
	case StringLit:
		return "string literal"
	case ByteStringLit:
		return "byte string literal"
	case KwMod:
		return "`mod`"
	case KwUse:
		return "`use`"
	case KwFn:
		return "`fn`"
	case KwAsync:
		return "`async`"
	case KwStruct:
		return "`struct`"
	case KwEnum:
		return "`enum`"
	case KwMatch:
		return "`match`"
	case KwIf:
		return "`if`"
	case KwElse:
		return "`else`"
	case KwFor:
		return "`for`"
	case KwIn:
		return "`in`"
	case KwReturn:
		return "`return`"
	case KwLet:
		return "`let`"
	case KwMut:
		return "`mut`"
	case KwTrue:
		return "`true`"
	case KwFalse:
		return "`false`"
	case KwScope:
		return "`scope`"
	case KwSpawn:
		return "`spawn`"
	case KwJoin:
		return "`join`"
	case KwAwait:
		return "`await`"
	case KwAs:
		return "`as`"
	case KwPub:
		return "`pub`"
	case LParen:
		return "`(`"
	case RParen:
		return "`)`"
	case LBrace:
		return "`{`"
	case RBrace:
		return "`}`"
	case LBracket:
		return "`[`"
	case RBracket:
		return "`]`"
	case Comma:
		return "`,`"
	case Semi:
		return "`;`"
	case Colon:
		return "`:`"
	case ColonColon:
		return "`::`"
	case Dot:
		return "`.`"
	case DotDot:
		return "`..`"
	case DotDotEq:
		return "`..=`"
	case Arrow:
		return "`->`"
	case FatArrow:
		return "`=>`"
	case Bang:
		return "`!`"
	case Plus:
		return "`+`"
	case Minus:
		return "`-`"
	case Star:
		return "`*`"
	case Slash:
		return "`/`"
	case Percent:
		return "`%`"
	case Eq:
		return "`=`"
	case EqEq:
		return "`==`"
	case Neq:
		return "`!=`"
	case Lt:
		return "`<`"
	case LtEq:
		return "`<=`"
	case Gt:
		return "`>`"
	case GtEq:
		return "`>=`"
	case AndAnd:
		return "`&&`"
	case OrOr:
		return "`||`"
	case Shl:
		return "`<<`"
	case ShlEq:
		return "`<<=`"
	case Root:
		return "root"
	case ModuleDecl:
		return "module declaration"
	case UseDecl:
		return "use declaration"
	case UsePath:
		return "use path"
	case FnDecl:
		return "function declaration"
	case ParamList:
		return "parameter list"
	case Param:
		return "parameter"
	case Type:
		return "type"
	case EffectSet:
		return "effect set"
	case StructDecl:
		return "struct declaration"
	case StructField:
		return "struct field"
	case EnumDecl:
		return "enum declaration"
	case EnumVariant:
		return "enum variant"
	case Block:
		return "block"
	case StmtList:
		return "statement list"
	case LetStmt:
		return "let statement"
	case ReturnStmt:
		return "return statement"
	case ExprStmt:
		return "expression statement"
	case IfExpr:
		return "if expression"
	case MatchExpr:
		return "match expression"
	case MatchArm:
		return "match arm"
	case CallExpr:
		return "call expression"
	case MemberExpr:
		return "member expression"
	case BinExpr:
		return "binary expression"
	case ParenExpr:
		return "parenthesized expression"
	case IdentNode:
		return "identifier"
	case LiteralNode:
		return "literal"
	case Pattern:
		return "pattern"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (k SyntaxKind) String() string {
	return k.Name()
}

// debugNames gives each kind its bare identifier-style name, used only in
// parser error messages ("expected RBrace, found Semi"), mirroring the
// `{:?}` Debug formatting the original Rust parser used for the same
// messages (jalm_parser's `error_here`/`expect`).
var debugNames = [...]string{
	Tombstone: "Tombstone", Eof: "Eof",
	Whitespace: "Whitespace", LineComment: "LineComment", BlockComment: "BlockComment", ErrorToken: "ErrorToken",
	Ident: "Ident", Underscore: "Underscore", IntLit: "IntLit", FloatLit: "FloatLit",
	StringLit: "StringLit", ByteStringLit: "ByteStringLit",
	KwMod: "KwMod", KwUse: "KwUse", KwFn: "KwFn", KwAsync: "KwAsync", KwStruct: "KwStruct",
	KwEnum: "KwEnum", KwMatch: "KwMatch", KwIf: "KwIf", KwElse: "KwElse", KwFor: "KwFor",
	KwIn: "KwIn", KwReturn: "KwReturn", KwLet: "KwLet", KwMut: "KwMut", KwTrue: "KwTrue",
	KwFalse: "KwFalse", KwScope: "KwScope", KwSpawn: "KwSpawn", KwJoin: "KwJoin",
	KwAwait: "KwAwait", KwAs: "KwAs", KwPub: "KwPub",
	LParen: "LParen", RParen: "RParen", LBrace: "LBrace", RBrace: "RBrace",
	LBracket: "LBracket", RBracket: "RBracket", Comma: "Comma", Semi: "Semi",
	Colon: "Colon", ColonColon: "ColonColon", Dot: "Dot", DotDot: "DotDot",
	DotDotEq: "DotDotEq", Arrow: "Arrow", FatArrow: "FatArrow", Bang: "Bang",
	Plus: "Plus", Minus: "Minus", Star: "Star", Slash: "Slash", Percent: "Percent",
	Eq: "Eq", EqEq: "EqEq", Neq: "Neq", Lt: "Lt", LtEq: "LtEq", Gt: "Gt", GtEq: "GtEq",
	AndAnd: "AndAnd", OrOr: "OrOr", Shl: "Shl", ShlEq: "ShlEq",
	Root: "Root", ModuleDecl: "ModuleDecl", UseDecl: "UseDecl", UsePath: "UsePath",
	FnDecl: "FnDecl", ParamList: "ParamList", Param: "Param", Type: "Type",
	EffectSet: "EffectSet", StructDecl: "StructDecl", StructField: "StructField",
	EnumDecl: "EnumDecl", EnumVariant: "EnumVariant", Block: "Block", StmtList: "StmtList",
	LetStmt: "LetStmt", ReturnStmt: "ReturnStmt", ExprStmt: "ExprStmt", IfExpr: "IfExpr",
	MatchExpr: "MatchExpr", MatchArm: "MatchArm", CallExpr: "CallExpr", MemberExpr: "MemberExpr",
	BinExpr: "BinExpr", ParenExpr: "ParenExpr", IdentNode: "IdentNode",
	LiteralNode: "LiteralNode", Pattern: "Pattern", Error: "Error",
}

// DebugName returns the kind's bare identifier name, as used in parser
// diagnostics (e.g. "expected RBrace, found Semi").
func (k SyntaxKind) DebugName() string {
	if int(k) < len(debugNames) && debugNames[k] != "" {
		return debugNames[k]
	}
	return "Unknown"
}
