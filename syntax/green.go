package syntax

import "strings"

// GreenToken is an immutable leaf: a token's kind and literal text. It
// carries no span — green nodes are meant to be shareable independent of
// where they end up in a tree, so a leaf node carries only kind, text,
// and no parent pointer.
type GreenToken struct {
	Kind SyntaxKind
	Text string
}

// NewGreenToken creates a green token.
func NewGreenToken(kind SyntaxKind, text string) *GreenToken {
	return &GreenToken{Kind: kind, Text: text}
}

// Len returns the byte length of the token's text.
func (t *GreenToken) Len() int {
	return len(t.Text)
}

// GreenChild is one child of a green node: either a nested green node or a
// leaf token. Exactly one of Node/Token is non-nil.
type GreenChild struct {
	Node  *GreenNode
	Token *GreenToken
}

// Kind returns the syntax kind of whichever alternative is populated.
func (c GreenChild) Kind() SyntaxKind {
	if c.Node != nil {
		return c.Node.Kind
	}
	return c.Token.Kind
}

// Len returns the byte length of whichever alternative is populated.
func (c GreenChild) Len() int {
	if c.Node != nil {
		return c.Node.Len()
	}
	return c.Token.Len()
}

// Text concatenates the full source text covered by this child.
func (c GreenChild) Text() string {
	if c.Node != nil {
		return c.Node.Text()
	}
	return c.Token.Text
}

// NodeChild wraps a green node as a child.
func NodeChild(n *GreenNode) GreenChild {
	return GreenChild{Node: n}
}

// TokenChild wraps a green token as a child.
func TokenChild(t *GreenToken) GreenChild {
	return GreenChild{Token: t}
}

// GreenNode is an immutable, content-addressed inner node: a kind plus an
// ordered sequence of children, each either a nested GreenNode or a
// GreenToken. Green nodes carry no parent pointers or absolute offsets —
// those live in the non-owning RedNode overlay (red.go) — so green
// subtrees are freely shareable.
//
// Concatenating the text of every token reachable from a GreenNode, in
// order, reproduces exactly the source span that node covers: this is the
// lossless round-trip invariant the whole pipeline depends on.
type GreenNode struct {
	Kind     SyntaxKind
	Children []GreenChild
	length   int
}

// NewGreenNode creates an inner green node from its children, computing
// and caching the total byte length.
func NewGreenNode(kind SyntaxKind, children []GreenChild) *GreenNode {
	total := 0
	for _, c := range children {
		total += c.Len()
	}
	return &GreenNode{Kind: kind, Children: children, length: total}
}

// Len returns the byte length of the subtree.
func (n *GreenNode) Len() int {
	return n.length
}

// Text reconstructs the full source text covered by this subtree by
// depth-first concatenation of token text.
func (n *GreenNode) Text() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *GreenNode) writeText(b *strings.Builder) {
	for _, c := range n.Children {
		if c.Token != nil {
			b.WriteString(c.Token.Text)
		} else {
			c.Node.writeText(b)
		}
	}
}

// Equal reports whether two green nodes are structurally equal (same
// shape, same token kinds/text), ignoring nothing else since green nodes
// carry no spans to begin with. Trivia counts too; the formatter
// round-trip test compares trees with EqualIgnoringTrivia instead.
func (n *GreenNode) Equal(other *GreenNode) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.Kind != other.Kind || len(n.Children) != len(other.Children) {
		return false
	}
	for i, c := range n.Children {
		o := other.Children[i]
		if (c.Node == nil) != (o.Node == nil) {
			return false
		}
		if c.Node != nil {
			if !c.Node.Equal(o.Node) {
				return false
			}
			continue
		}
		if c.Token.Kind != o.Token.Kind || c.Token.Text != o.Token.Text {
			return false
		}
	}
	return true
}

// EqualIgnoringTrivia is Equal but skips Whitespace/comment children at
// every level, for comparing two trees for shape-equivalence when trivia
// placement may differ (e.g. checking that formatting a tree and
// re-parsing the result produces the same shape).
func (n *GreenNode) EqualIgnoringTrivia(other *GreenNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}
	nc := significantChildren(n)
	oc := significantChildren(other)
	if len(nc) != len(oc) {
		return false
	}
	for i, c := range nc {
		o := oc[i]
		if (c.Node == nil) != (o.Node == nil) {
			return false
		}
		if c.Node != nil {
			if !c.Node.EqualIgnoringTrivia(o.Node) {
				return false
			}
			continue
		}
		if c.Token.Kind != o.Token.Kind || c.Token.Text != o.Token.Text {
			return false
		}
	}
	return true
}

func significantChildren(n *GreenNode) []GreenChild {
	out := make([]GreenChild, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind().IsTrivia() {
			continue
		}
		out = append(out, c)
	}
	return out
}
