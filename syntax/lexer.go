package syntax

import "regexp"

// rule is one entry in the lexer's token table: a kind plus the regex
// that recognizes it, anchored at the start of the remaining input.
type rule struct {
	kind SyntaxKind
	re   *regexp.Regexp
}

// tokenTable is tried top-to-bottom at the cursor; the first match wins.
// Fixed multi-character punctuation is listed longest-first so `::`
// matches before `:`, `..=` before `..`, `<<=` before `<<`, `==` before
// `=`, exactly as the lexer's longest-match rule requires — ordering the
// table does the job instead of a maximal-munch scan over alternatives.
//
// Never fails, treats trivia as tokens, and always advances at least one
// byte, but is table-driven with regexp instead of a manual rune switch.
var tokenTable = []rule{
	{Whitespace, regexp.MustCompile(`^[ \t\r\n]+`)},
	{LineComment, regexp.MustCompile(`^//[^\n]*`)},
	{BlockComment, regexp.MustCompile(`^/\*(?s:.*?)\*/`)},

	{FloatLit, regexp.MustCompile(`^[0-9][0-9_]*\.[0-9][0-9_]*`)},
	{IntLit, regexp.MustCompile(`^[0-9][0-9_]*`)},
	{ByteStringLit, regexp.MustCompile(`^b"(?:\\.|[^"\\])*"`)},
	{StringLit, regexp.MustCompile(`^"(?:\\.|[^"\\])*"`)},

	{Underscore, regexp.MustCompile(`^_\b`)},
	{Ident, regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)},

	{ColonColon, regexp.MustCompile(`^::`)},
	{Colon, regexp.MustCompile(`^:`)},
	{DotDotEq, regexp.MustCompile(`^\.\.=`)},
	{DotDot, regexp.MustCompile(`^\.\.`)},
	{Dot, regexp.MustCompile(`^\.`)},
	{Arrow, regexp.MustCompile(`^->`)},
	{FatArrow, regexp.MustCompile(`^=>`)},
	{ShlEq, regexp.MustCompile(`^<<=`)},
	{Shl, regexp.MustCompile(`^<<`)},
	{LtEq, regexp.MustCompile(`^<=`)},
	{Lt, regexp.MustCompile(`^<`)},
	{GtEq, regexp.MustCompile(`^>=`)},
	{Gt, regexp.MustCompile(`^>`)},
	{EqEq, regexp.MustCompile(`^==`)},
	{Eq, regexp.MustCompile(`^=`)},
	{Neq, regexp.MustCompile(`^!=`)},
	{Bang, regexp.MustCompile(`^!`)},
	{AndAnd, regexp.MustCompile(`^&&`)},
	{OrOr, regexp.MustCompile(`^\|\|`)},

	{LParen, regexp.MustCompile(`^\(`)},
	{RParen, regexp.MustCompile(`^\)`)},
	{LBrace, regexp.MustCompile(`^\{`)},
	{RBrace, regexp.MustCompile(`^\}`)},
	{LBracket, regexp.MustCompile(`^\[`)},
	{RBracket, regexp.MustCompile(`^\]`)},
	{Comma, regexp.MustCompile(`^,`)},
	{Semi, regexp.MustCompile(`^;`)},

	{Plus, regexp.MustCompile(`^\+`)},
	{Minus, regexp.MustCompile(`^-`)},
	{Star, regexp.MustCompile(`^\*`)},
	{Slash, regexp.MustCompile(`^/`)},
	{Percent, regexp.MustCompile(`^%`)},
}

// keywords maps reserved identifier text to its keyword kind; the
// identifier rule always matches first, and the lexer downgrades the
// result to a keyword kind by table lookup.
var keywords = map[string]SyntaxKind{
	"mod": KwMod, "use": KwUse, "fn": KwFn, "async": KwAsync,
	"struct": KwStruct, "enum": KwEnum, "match": KwMatch, "if": KwIf,
	"else": KwElse, "for": KwFor, "in": KwIn, "return": KwReturn,
	"let": KwLet, "mut": KwMut, "true": KwTrue, "false": KwFalse,
	"scope": KwScope, "spawn": KwSpawn, "join": KwJoin, "await": KwAwait,
	"as": KwAs, "pub": KwPub,
}

// Lexer turns source text into a flat token stream. It never fails: any
// byte it cannot classify becomes a one-byte ErrorToken, and the cursor
// always advances, so tokenizing any input (however malformed) always
// terminates.
type Lexer struct {
	src string
	pos int
}

// NewLexer creates a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Token is one lexed token with its absolute span.
type Token struct {
	Kind SyntaxKind
	Text string
	Span Span
}

// Next returns the next token, or an Eof token once the input is
// exhausted. Eof is returned forever after that point (callers should
// stop calling once they observe it).
func (l *Lexer) Next() Token {
	if l.pos >= len(l.src) {
		return Token{Kind: Eof, Text: "", Span: Span{Start: l.pos, End: l.pos}}
	}
	rest := l.src[l.pos:]

	for _, r := range tokenTable {
		loc := r.re.FindStringIndex(rest)
		if loc == nil || loc[0] != 0 {
			continue
		}
		text := rest[:loc[1]]
		kind := r.kind
		if kind == Ident {
			if kw, ok := keywords[text]; ok {
				kind = kw
			}
		}
		start := l.pos
		l.pos += len(text)
		return Token{Kind: kind, Text: text, Span: Span{Start: start, End: l.pos}}
	}

	// No rule matched: consume exactly one byte (not one rune) so the
	// reported span always lines up with valid byte offsets even over
	// invalid UTF-8, and the lexer always makes forward progress.
	start := l.pos
	l.pos++
	return Token{Kind: ErrorToken, Text: l.src[start:l.pos], Span: Span{Start: start, End: l.pos}}
}

// Tokenize lexes the entire input into a slice, followed by a single
// trailing Eof token.
func Tokenize(src string) []Token {
	var out []Token
	l := NewLexer(src)
	for {
		tok := l.Next()
		out = append(out, tok)
		if tok.Kind == Eof {
			return out
		}
	}
}
