package objects

import (
	"bytes"
	"fmt"
)

// Cursor reads an immutable byte buffer left to right.
// A failed read leaves the offset where it was.
type Cursor struct {
	buf    []byte
	offset int
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the index of the next unread byte.
func (c *Cursor) Offset() int {
	return c.offset
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.offset
}

// Done reports whether the buffer is exhausted.
func (c *Cursor) Done() bool {
	return c.offset >= len(c.buf)
}

// ReadUntil returns the bytes before the next delim and advances past the delimiter.
func (c *Cursor) ReadUntil(delim byte) ([]byte, error) {
	i := bytes.IndexByte(c.buf[c.offset:], delim)
	if i == -1 {
		return nil, fmt.Errorf("delimiter %q not found after offset %d", delim, c.offset)
	}
	out := c.buf[c.offset : c.offset+i]
	c.offset += i + 1
	return out, nil
}

// ReadExact returns the next n bytes.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, fmt.Errorf("need %d bytes at offset %d, have %d", n, c.offset, c.Remaining())
	}
	out := c.buf[c.offset : c.offset+n]
	c.offset += n
	return out, nil
}
