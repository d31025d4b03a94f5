package syntax

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// describeToken renders a token for an error message: ordinary tokens by
// their kind's debug name, but an ErrorToken (a byte the lexer couldn't
// classify into any rule) is described by the character it holds, e.g.
// "U+0040 (COMMERCIAL AT)" for `@`. The lexer emits one ErrorToken per
// byte, so a byte of a multi-byte UTF-8 sequence does not decode on its
// own and is described as e.g. "invalid byte 0xE2".
//
// Uses golang.org/x/text/unicode/runenames to name the decoded rune.
func describeToken(t Token) string {
	if t.Kind != ErrorToken || t.Text == "" {
		return t.Kind.DebugName()
	}
	r, _ := utf8.DecodeRuneInString(t.Text)
	if r == utf8.RuneError {
		return fmt.Sprintf("invalid byte 0x%02X", t.Text[0])
	}
	name := runenames.Name(r)
	if name == "" {
		return fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("U+%04X (%s)", r, name)
}
