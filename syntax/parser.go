package syntax

import "fmt"

// maxRecoveryDepth bounds how deeply the mutually recursive
// parseExprBP/parseBlock/parseIfExpr/parseMatchExpr entry points
// (parser_expr.go) may nest. Past the bound, the parser gives up
// recursing further and swallows one token as a trailing Error node
// instead — a guard against pathologically deep but syntactically
// valid input (thousands of nested parens, a long `if`/`else if`
// chain) overflowing the Go call stack.
const maxRecoveryDepth = 128

// Parser consumes a flat token stream (lexer output, trivia included)
// and emits a StartNode/FinishNode/Token event stream (event.go) that a
// EventList.BuildTree later replays into a green tree (builder.go). It never
// panics: malformed input is recorded as ParseErrors and wrapped in
// Error nodes, and every list-consuming loop is guarded so it always
// terminates.
type Parser struct {
	tokens []Token
	pos    int
	events EventList
	depth  int
}

// NewParser creates a parser over src.
func NewParser(src string) *Parser {
	return &Parser{tokens: Tokenize(src)}
}

// Parse runs the full grammar (a sequence of top-level items) and
// returns the resulting green tree plus any parse errors, in source
// order per the ordering guarantee.
func Parse(src string) (*GreenNode, []ParseError) {
	p := NewParser(src)
	root := p.events.Start()
	for !p.atEof() {
		before := p.pos
		p.parseItem()
		if p.pos == before {
			// Defensive backstop: every parseItem branch consumes at
			// least one token when not at Eof, so this never triggers
			// in practice, but a list-consuming loop must never spin
			// without making progress.
			p.bump()
		}
	}
	p.eatTrivia()
	p.Complete(root, Root)
	return p.events.BuildTree()
}

// --- token-stream primitives ---

// at returns the i-th significant (non-trivia) token from the cursor
// without consuming anything, 0 being the next one. Past the end of
// input it always returns the trailing Eof token.
func (p *Parser) at(i int) Token {
	idx := p.pos
	skipped := 0
	for idx < len(p.tokens) {
		if p.tokens[idx].Kind.IsTrivia() {
			idx++
			continue
		}
		if skipped == i {
			return p.tokens[idx]
		}
		skipped++
		idx++
	}
	return p.tokens[len(p.tokens)-1]
}

// current is shorthand for at(0).Kind.
func (p *Parser) current() SyntaxKind {
	return p.at(0).Kind
}

// atEof reports whether the next significant token is Eof.
func (p *Parser) atEof() bool {
	return p.current() == Eof
}

// atKind reports whether the next significant token has the given kind.
func (p *Parser) atKind(kind SyntaxKind) bool {
	return p.current() == kind
}

// atSet reports whether the next significant token is in the given set.
func (p *Parser) atSet(set SyntaxSet) bool {
	return set.Contains(p.current())
}

// eatTrivia emits every consecutive trivia token at the cursor as Token
// events, attaching them as children of whatever node is currently open.
// Trivia is never silently discarded: every whitespace and comment byte
// ends up as a token somewhere in the tree.
func (p *Parser) eatTrivia() {
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind.IsTrivia() {
		t := p.tokens[p.pos]
		p.events.Token(t.Kind, t.Text)
		p.pos++
	}
}

// bumpSignificant consumes exactly one non-trivia token, assuming any
// preceding trivia has already been eaten. Does nothing at Eof (Eof is a
// sentinel, never a tree token).
func (p *Parser) bumpSignificant() {
	if p.pos >= len(p.tokens) {
		return
	}
	t := p.tokens[p.pos]
	if t.Kind == Eof {
		return
	}
	p.events.Token(t.Kind, t.Text)
	p.pos++
}

// bump eats any pending trivia, then consumes one significant token.
func (p *Parser) bump() {
	p.eatTrivia()
	p.bumpSignificant()
}

// expect consumes the current token if it matches kind, else records a
// parse error and wraps one recovered token in an Error node. Returns
// whether the expected token was present.
func (p *Parser) expect(kind SyntaxKind) bool {
	if p.atKind(kind) {
		p.bump()
		return true
	}
	p.errorAndRecover(fmt.Sprintf("expected %s, found %s", kind.DebugName(), describeToken(p.at(0))))
	return false
}

// errorAndRecover implements the recovery protocol for `expect`
// mismatches: emit a ParseError at the current span, open an Error
// marker, consume one token unless at EOF, close the marker.
// eatTrivia runs first so the error's span (computed from the builder's
// running position at replay time) lands on the offending token itself,
// not on the trivia preceding it.
func (p *Parser) errorAndRecover(message string) CompletedMarker {
	p.eatTrivia()
	p.events.Error(message)
	m := p.Start()
	if !p.atEof() {
		p.bumpSignificant()
	}
	return p.Complete(m, Error)
}

// enterDepth increments the recursion-depth counter on behalf of one of
// the mutually recursive expression/statement entry points
// (parseExprBP/parseBlock/parseIfExpr/parseMatchExpr in
// parser_expr.go) and returns a cleanup to pop it again, or ok=false if
// maxRecoveryDepth has already been reached. Plays the same role as an
// increaseDepth/depthCheckError pair, adapted to this grammar's single
// Error-node recovery path instead of a stop-set-aware depth check.
func (p *Parser) enterDepth() (leave func(), ok bool) {
	if p.depth >= maxRecoveryDepth {
		return func() {}, false
	}
	p.depth++
	return func() { p.depth-- }, true
}

// tooDeep reports a ParseError for exceeding maxRecoveryDepth instead of
// recursing further, consuming one token through the same Error-wrapping
// protocol as every other recovery path in the grammar.
func (p *Parser) tooDeep() CompletedMarker {
	return p.errorAndRecover("maximum nesting depth exceeded")
}

// --- marker protocol (thin forwarders onto EventList, kept on Parser so
// call sites read as p.Start()/p.Complete(...) rather than threading an
// EventList around separately) ---

// Start opens a new, not-yet-typed node at the current position.
func (p *Parser) Start() Marker {
	p.eatTrivia()
	return p.events.Start()
}

// Complete fixes a marker's kind and closes it.
func (p *Parser) Complete(m Marker, kind SyntaxKind) CompletedMarker {
	return p.events.Complete(m, kind)
}

// Abandon discards a marker that turned out not to correspond to a real
// node.
func (p *Parser) Abandon(m Marker) {
	p.events.Abandon(m)
}

// Precede opens a marker that will retroactively wrap cm once built; see
// EventList.Precede.
func (p *Parser) Precede(cm CompletedMarker) Marker {
	return p.events.Precede(cm)
}
