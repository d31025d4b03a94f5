package sourcemap

import "testing"

func TestPositionFirstLine(t *testing.T) {
	m := New("abc")
	got := m.Position(1)
	want := Position{Line: 1, Column: 2}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPositionAfterNewline(t *testing.T) {
	src := "fn f() {\nreturn 1;\n}"
	m := New(src)
	// offset of 'r' in "return" on the second line
	offset := len("fn f() {\n")
	got := m.Position(offset)
	want := Position{Line: 2, Column: 1}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPositionCountsGraphemeClustersNotBytes(t *testing.T) {
	// A Latin "e" followed by a combining acute accent (U+0301): two
	// runes, three bytes, but a single grapheme cluster. A byte or
	// rune count would place the caret one column too far right
	// after it.
	decomposed := "e\u0301"
	src := decomposed + "x"
	m := New(src)
	got := m.Position(len(decomposed))
	want := Position{Line: 1, Column: 2}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPositionClampsOutOfRangeOffset(t *testing.T) {
	m := New("ab")
	got := m.Position(100)
	want := Position{Line: 1, Column: 3}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPositionMultipleLines(t *testing.T) {
	src := "one\ntwo\nthree"
	m := New(src)
	cases := []struct {
		offset int
		want   Position
	}{
		{0, Position{1, 1}},
		{4, Position{2, 1}},
		{8, Position{3, 1}},
		{12, Position{3, 5}},
	}
	for _, c := range cases {
		got := m.Position(c.offset)
		if got != c.want {
			t.Fatalf("offset %d: got %+v, want %+v", c.offset, got, c.want)
		}
	}
}
