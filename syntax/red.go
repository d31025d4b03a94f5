package syntax

// RedNode is the non-owning "red" overlay over a GreenNode: it adds the
// parent pointer and absolute byte offset that green nodes deliberately
// omit so they stay shareable. Walking a tree for diagnostics, formatting,
// or type checking always goes through RedNode, never the bare GreenNode.
type RedNode struct {
	green         *GreenNode
	parent        *RedNode
	indexInParent int
	offset        int
}

// NewRoot wraps a green tree's root as a red tree rooted at offset 0.
func NewRoot(green *GreenNode) *RedNode {
	return &RedNode{green: green, parent: nil, indexInParent: -1, offset: 0}
}

// Green returns the underlying green node.
func (r *RedNode) Green() *GreenNode {
	return r.green
}

// Kind returns the syntax kind of the node.
func (r *RedNode) Kind() SyntaxKind {
	return r.green.Kind
}

// Span returns the node's absolute byte span in the source text.
func (r *RedNode) Span() Span {
	return Span{Start: r.offset, End: r.offset + r.green.length}
}

// Text returns the source text covered by this node.
func (r *RedNode) Text() string {
	return r.green.Text()
}

// Parent returns the enclosing red node, or nil at the root.
func (r *RedNode) Parent() *RedNode {
	return r.parent
}

// IndexInParent returns this node's index among its parent's green
// children (including tokens and trivia), or -1 at the root.
func (r *RedNode) IndexInParent() int {
	return r.indexInParent
}

// child materializes the red wrapper for the green child at index i,
// computing its absolute offset from the offsets of its earlier siblings.
func (r *RedNode) child(i int) *RedNode {
	c := r.green.Children[i]
	if c.Node == nil {
		return nil
	}
	off := r.offset
	for j := 0; j < i; j++ {
		off += r.green.Children[j].Len()
	}
	return &RedNode{green: c.Node, parent: r, indexInParent: i, offset: off}
}

// Children returns the node's direct children that are themselves nodes
// (not tokens), in source order. This mirrors the original tree walker's
// `.children()`, which iterates sub-nodes only; use DirectTokens for the
// token children interleaved among them.
func (r *RedNode) Children() []*RedNode {
	out := make([]*RedNode, 0, len(r.green.Children))
	for i, c := range r.green.Children {
		if c.Node == nil {
			continue
		}
		out = append(out, r.child(i))
	}
	return out
}

// Elem is one direct child, preserving whether it was a node or token and
// its position among siblings of both kinds combined. Mirrors the
// original tree walker's `children_with_tokens()` iterator, used by
// passes that need to find a token relative to a node (e.g. "the Type
// node right after the `->` token").
type Elem struct {
	Node  *RedNode
	Token *RedToken
}

// IsToken reports whether this element is a token rather than a node.
func (e Elem) IsToken() bool {
	return e.Token != nil
}

// ChildrenWithTokens returns every direct child — nodes and tokens alike
// — in source order.
func (r *RedNode) ChildrenWithTokens() []Elem {
	out := make([]Elem, 0, len(r.green.Children))
	off := r.offset
	for i, c := range r.green.Children {
		if c.Node != nil {
			out = append(out, Elem{Node: r.child(i)})
		} else {
			out = append(out, Elem{Token: &RedToken{
				Kind: c.Token.Kind,
				Text: c.Token.Text,
				Span: Span{Start: off, End: off + c.Token.Len()},
			}})
		}
		off += c.Len()
	}
	return out
}

// RedToken is a token directly under a RedNode, with its absolute span.
type RedToken struct {
	Kind SyntaxKind
	Text string
	Span Span
}

// DirectTokens returns the node's direct children that are tokens (not
// sub-nodes), in source order, including trivia. Used for patterns like
// "find the `->` among this FnDecl's immediate children" without
// recursing into nested expressions.
func (r *RedNode) DirectTokens() []RedToken {
	out := make([]RedToken, 0, len(r.green.Children))
	off := r.offset
	for _, c := range r.green.Children {
		if c.Token != nil {
			out = append(out, RedToken{
				Kind: c.Token.Kind,
				Text: c.Token.Text,
				Span: Span{Start: off, End: off + c.Token.Len()},
			})
		}
		off += c.Len()
	}
	return out
}

// DirectTokensIgnoringTrivia is DirectTokens with Whitespace/comment
// tokens filtered out, which is what most parser-tree consumers want.
func (r *RedNode) DirectTokensIgnoringTrivia() []RedToken {
	all := r.DirectTokens()
	out := all[:0:0]
	for _, t := range all {
		if t.Kind.IsTrivia() {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FirstToken returns the first direct token child of the given kind, and
// whether one was found.
func (r *RedNode) FirstToken(kind SyntaxKind) (RedToken, bool) {
	for _, t := range r.DirectTokens() {
		if t.Kind == kind {
			return t, true
		}
	}
	return RedToken{}, false
}

// FirstChild returns the first direct node child of the given kind, and
// whether one was found.
func (r *RedNode) FirstChild(kind SyntaxKind) (*RedNode, bool) {
	for _, c := range r.Children() {
		if c.Kind() == kind {
			return c, true
		}
	}
	return nil, false
}

// ChildrenOf returns all direct node children of the given kind, in
// source order.
func (r *RedNode) ChildrenOf(kind SyntaxKind) []*RedNode {
	var out []*RedNode
	for _, c := range r.Children() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// Ancestors walks up the parent chain, including r itself, and returns
// them innermost-first.
func (r *RedNode) Ancestors() []*RedNode {
	var out []*RedNode
	for n := r; n != nil; n = n.parent {
		out = append(out, n)
	}
	return out
}
