package lexer

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor is a byte position over the source being tokenized.
type Cursor struct {
	src []byte
	off uint32
	// limit is the exclusive upper bound for off.
	limit uint32
}

// NewCursor creates a cursor over the provided source bytes.
func NewCursor(src []byte) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return Cursor{src: src, off: 0, limit: limit}
}

// EOF reports whether the cursor has passed the last byte.
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Peek reads the current byte without consuming it, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.off]
}

// Bump consumes and returns the current byte, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// Mark remembers a position so a scanned fragment can be sliced out later.
type Mark uint32

// Mark saves the current cursor position.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// TextFrom returns the bytes scanned since the mark.
func (c *Cursor) TextFrom(m Mark) []byte {
	return c.src[m:c.off]
}
