package token

// Stream is the ordered, consumable token sequence passed between grammar
// rules. It models a single exclusive cursor: exactly one call chain owns
// it at a time, and it is not safe for concurrent use. Independent inputs
// parsed concurrently each get their own Stream.
type Stream struct {
	// rev holds the unconsumed tokens in reverse source order, so the
	// logical front is rev[len(rev)-1] and Pop is a slice shrink.
	rev []Token
}

// NewStream builds a Stream from tokens in source order, as returned by
// the tokenizer. The sequence is reversed once here; no later operation
// moves a token.
func NewStream(tokens []Token) *Stream {
	rev := make([]Token, len(tokens))
	for i, t := range tokens {
		rev[len(tokens)-1-i] = t
	}
	return &Stream{rev: rev}
}

// Len returns the number of unconsumed tokens.
func (s *Stream) Len() int { return len(s.rev) }

// EOF reports whether every token has been consumed.
func (s *Stream) EOF() bool { return len(s.rev) == 0 }

// Peek returns the logical front token without consuming it.
func (s *Stream) Peek() (Token, bool) {
	if len(s.rev) == 0 {
		return "", false
	}
	return s.rev[len(s.rev)-1], true
}

// Pop consumes and returns the logical front token. It removes from the
// physical end only, so the remaining tokens keep their order.
func (s *Stream) Pop() (Token, bool) {
	if len(s.rev) == 0 {
		return "", false
	}
	t := s.rev[len(s.rev)-1]
	s.rev = s.rev[:len(s.rev)-1]
	return t, true
}
