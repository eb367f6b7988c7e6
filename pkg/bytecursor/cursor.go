// Package bytecursor provides a forward-only reader over an in-memory byte slice.
package bytecursor

import (
	"errors"
	"fmt"
)

// ErrOutOfData is returned when a read asks for more bytes than remain.
var ErrOutOfData = errors.New("out of data")

// Cursor tracks a read position over a byte slice it does not own.
// A Cursor is not safe for concurrent use.
type Cursor struct {
	buf []byte
	pos int
}

// New returns a cursor positioned at the start of buf.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Take returns the next n bytes and advances the position by n.
// On failure the position is left unchanged.
func (c *Cursor) Take(n uint64) ([]byte, error) {
	if n > uint64(c.Remaining()) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrOutOfData, n, c.pos, c.Remaining())
	}
	end := c.pos + int(n)
	out := c.buf[c.pos:end:end]
	c.pos = end
	return out, nil
}

// ReadByte returns the next byte and advances the position by one.
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Peek returns the next n bytes without advancing.
func (c *Cursor) Peek(n uint64) ([]byte, error) {
	if n > uint64(c.Remaining()) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrOutOfData, n, c.pos, c.Remaining())
	}
	end := c.pos + int(n)
	return c.buf[c.pos:end:end], nil
}

// Position reports how many bytes have been consumed.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining reports how many bytes are left.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}
