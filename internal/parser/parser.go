// Package parser implements the consumption contract shared by every
// grammar node of the schema language, plus its two leaf nodes: Literal
// and Identifier.
package parser

import "gdspec/internal/token"

// Node is the contract every grammar node implements. Parse consumes the
// node's tokens from the logical front of the stream.
//
// Obligations on every implementation:
//   - on success, exactly the tokens of this construct are consumed, and
//     the stream is positioned at the first token of the next construct;
//   - on failure, the stream is untouched, so a caller can retry an
//     alternative rule at the same position;
//   - an empty stream fails with EndOfInput when a token was required.
//
// Composite rules are built by implementing Node and calling Parse on
// their children in sequence; the tokenizer never changes when the grammar
// grows.
type Node interface {
	Parse(ts *token.Stream) error
}
