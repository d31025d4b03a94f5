package syntax

// ParseError is a syntactical error recorded during parsing. Parsing never
// aborts on one: the parser records it, recovers, and keeps going, so a
// ParseError list is always well-formed even for badly malformed input.
type ParseError struct {
	Message string
	Span    Span
}

// NewParseError creates a parse error at the given span.
func NewParseError(message string, span Span) ParseError {
	return ParseError{Message: message, Span: span}
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return e.Message
}
