package syntax

import "testing"

func kinds(toks []Token) []SyntaxKind {
	ks := make([]SyntaxKind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenizeKeywordsDowngradeFromIdent(t *testing.T) {
	toks := Tokenize("fn let mut notakeyword")
	want := []SyntaxKind{KwFn, Whitespace, KwLet, Whitespace, KwMut, Whitespace, Ident, Eof}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeLongestMatchWinsOnMultiCharPunctuation(t *testing.T) {
	cases := []struct {
		src  string
		kind SyntaxKind
	}{
		{"::", ColonColon},
		{":", Colon},
		{"..=", DotDotEq},
		{"..", DotDot},
		{".", Dot},
		{"<<=", ShlEq},
		{"<<", Shl},
		{"<=", LtEq},
		{"<", Lt},
		{"==", EqEq},
		{"=", Eq},
		{"->", Arrow},
		{"=>", FatArrow},
	}
	for _, c := range cases {
		tok := NewLexer(c.src).Next()
		if tok.Kind != c.kind || tok.Text != c.src {
			t.Errorf("lexing %q: got kind %v text %q, want kind %v text %q", c.src, tok.Kind, tok.Text, c.kind, c.src)
		}
	}
}

func TestTokenizeNeverFailsOnUnrecognizedBytes(t *testing.T) {
	toks := Tokenize("@#$")
	for _, tok := range toks[:len(toks)-1] {
		if tok.Kind != ErrorToken {
			t.Fatalf("expected ErrorToken, got %v for %q", tok.Kind, tok.Text)
		}
		if len(tok.Text) != 1 {
			t.Fatalf("expected a single-byte ErrorToken, got %q", tok.Text)
		}
	}
	if toks[len(toks)-1].Kind != Eof {
		t.Fatalf("expected trailing Eof, got %v", toks[len(toks)-1].Kind)
	}
}

func TestTokenizeAlwaysTerminatesAndEndsWithEof(t *testing.T) {
	for _, src := range []string{"", "fn main() -> i64 { return 0; }", "\xff\xfe", "let x = 1.5;"} {
		toks := Tokenize(src)
		if len(toks) == 0 || toks[len(toks)-1].Kind != Eof {
			t.Fatalf("Tokenize(%q) did not end in Eof: %v", src, kinds(toks))
		}
	}
}

func TestTokenizeNumberLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind SyntaxKind
	}{
		{"123", IntLit},
		{"1_000", IntLit},
		{"1.5", FloatLit},
		{"0.0", FloatLit},
	}
	for _, c := range cases {
		tok := NewLexer(c.src).Next()
		if tok.Kind != c.kind || tok.Text != c.src {
			t.Errorf("lexing %q: got kind %v text %q, want kind %v text %q", c.src, tok.Kind, tok.Text, c.kind, c.src)
		}
	}
}

func TestTokenizeStringAndByteStringLiterals(t *testing.T) {
	tok := NewLexer(`"hello\n"`).Next()
	if tok.Kind != StringLit {
		t.Fatalf("got kind %v, want StringLit", tok.Kind)
	}
	tok = NewLexer(`b"raw"`).Next()
	if tok.Kind != ByteStringLit {
		t.Fatalf("got kind %v, want ByteStringLit", tok.Kind)
	}
}
