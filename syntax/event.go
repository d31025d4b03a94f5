package syntax

// Event is one step of a flat, linear recording of tree shape emitted by
// the parser as it consumes tokens. EventList.BuildTree replays the event list
// into an actual GreenNode tree afterward (builder.go).
//
// This indirection — record events, then build — is what lets a Marker
// opened early be retroactively wrapped by a node discovered only later
// (see EventList.Precede): the parser doesn't need to know a node's kind
// before it starts parsing the node's first child, which is exactly the
// situation a Pratt parser is in (it doesn't know whether `a` heads a
// bare expression or the left side of `a + b` until it has peeked past
// it). Modeled on rust-analyzer's parser event mechanism:
// https://github.com/rust-lang/rust-analyzer/blob/master/crates/parser/src/event.rs
type Event struct {
	Kind EventKind

	// StartNode / FinishNode
	NodeKind SyntaxKind
	// ForwardParent, when non-zero, is the distance from this event forward
	// to another StartNode event that this one should be reparented under
	// once that event's kind is resolved (the precede() mechanism). Zero
	// means "no forward parent".
	ForwardParent int

	// Token
	TokenKind SyntaxKind
	Text      string

	// Error (recorded parse errors attach to the event stream at the
	// point they occurred, so they interleave correctly with nodes)
	Message string
}

// EventKind discriminates the Event union.
type EventKind uint8

const (
	// EventTombstone is a placeholder for an event that was later
	// abandoned (e.g. an empty Marker that nothing ever completed).
	EventTombstone EventKind = iota
	EventStartNode
	EventFinishNode
	EventToken
	EventError
)

// Marker denotes a not-yet-completed StartNode event: a position in the
// event list reserved when parsing began but whose final SyntaxKind isn't
// known yet.
type Marker struct {
	pos int // index into Parser.events
}

// CompletedMarker is a Marker after Parser.Complete has fixed its kind. It
// can still be retroactively wrapped by a later, outer node via Precede.
type CompletedMarker struct {
	pos  int
	kind SyntaxKind
}

// Kind returns the node kind this marker was completed with.
func (m CompletedMarker) Kind() SyntaxKind {
	return m.kind
}

// EventList accumulates the flat event stream during parsing and turns it
// into a green tree once parsing finishes. It is embedded in Parser;
// splitting it out keeps the marker/event bookkeeping independent of
// token-stream management.
type EventList struct {
	events []Event
}

// Start opens a new, not-yet-typed node at the current position.
func (el *EventList) Start() Marker {
	pos := len(el.events)
	el.events = append(el.events, Event{Kind: EventStartNode, NodeKind: Tombstone})
	return Marker{pos: pos}
}

// Complete fixes a marker's node kind and closes it, emitting the
// matching FinishNode event.
func (el *EventList) Complete(m Marker, kind SyntaxKind) CompletedMarker {
	el.events[m.pos].NodeKind = kind
	el.events = append(el.events, Event{Kind: EventFinishNode})
	return CompletedMarker{pos: m.pos, kind: kind}
}

// Abandon discards a marker that turned out not to correspond to any
// real node (e.g. speculative lookahead that failed). If nothing else
// was recorded since Start, the reserved slot collapses cleanly; if
// children were recorded in between, they're reparented onto whatever
// encloses this marker by leaving the slot as an inert Tombstone event
// that BuildTree skips over.
func (el *EventList) Abandon(m Marker) {
	if m.pos == len(el.events)-1 {
		el.events = el.events[:m.pos]
		return
	}
	el.events[m.pos].Kind = EventTombstone
}

// Token records a consumed token verbatim.
func (el *EventList) Token(kind SyntaxKind, text string) {
	el.events = append(el.events, Event{Kind: EventToken, TokenKind: kind, Text: text})
}

// Error records a parse error at the current position in the stream.
func (el *EventList) Error(message string) {
	el.events = append(el.events, Event{Kind: EventError, Message: message})
}

// Precede opens a new marker that will wrap the already-completed node cm
// once built, without having to have predicted that wrapping when cm was
// first started. This is what lets a Pratt parser parse `a`, only
// discover the `+ b` after the fact, and still produce a BinExpr node
// that contains `a` as its first child: start() a marker before `+`,
// complete it as BinExpr, and Precede retroactively inserts that new
// marker's StartNode "before" cm's in the replayed tree.
//
// Grounded on rust-analyzer's CompletedMarker::precede:
// https://github.com/rust-lang/rust-analyzer/blob/master/crates/parser/src/parser.rs
func (el *EventList) Precede(cm CompletedMarker) Marker {
	newPos := len(el.events)
	el.events = append(el.events, Event{Kind: EventStartNode, NodeKind: Tombstone})
	switch ev := &el.events[cm.pos]; ev.Kind {
	case EventStartNode:
		ev.ForwardParent = newPos - cm.pos
	default:
		panic("syntax: Precede target is not a StartNode event")
	}
	return Marker{pos: newPos}
}
