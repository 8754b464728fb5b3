package cursor

import (
	"bytes"
	"fmt"

	"github.com/dshills/linedit/internal/engine/buffer"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Cursor is the insertion point and current-line bookkeeping for a buffer.
type Cursor struct {
	buf    *buffer.Buffer
	line   ByteOffset
	pos    ByteOffset
	lineNo int
}

// New creates a cursor at the gap start of buf. The current line is the
// last line of the pre-gap span.
func New(buf *buffer.Buffer) *Cursor {
	pre := buf.Pre()
	line := bytes.LastIndexByte(pre, buffer.LF) + 1
	return &Cursor{
		buf:    buf,
		line:   line,
		pos:    buf.StartGap(),
		lineNo: bytes.Count(pre[:line], []byte{buffer.LF}) + 1,
	}
}

// Restore creates a cursor from raw values without validating them.
func Restore(buf *buffer.Buffer, line, pos ByteOffset, lineNo int) *Cursor {
	return &Cursor{buf: buf, line: line, pos: pos, lineNo: lineNo}
}

// Buffer returns the buffer the cursor moves in.
func (c *Cursor) Buffer() *buffer.Buffer {
	return c.buf
}

// Line returns the offset of the first byte of the current line.
func (c *Cursor) Line() ByteOffset {
	return c.line
}

// Pos returns the insertion point.
func (c *Cursor) Pos() ByteOffset {
	return c.pos
}

// LineNo returns the 1-based number of the current line.
func (c *Cursor) LineNo() int {
	return c.lineNo
}

// Column returns the insertion point relative to the current line start.
func (c *Cursor) Column() int {
	return c.pos - c.line
}

// LineLen returns the length of the current line.
func (c *Cursor) LineLen() int {
	return c.buf.StartGap() - c.line
}

// CurrentLine returns the bytes of the current line. The slice aliases the
// buffer and is only valid until the next edit.
func (c *Cursor) CurrentLine() []byte {
	return c.buf.Pre()[c.line:]
}

// SetPos moves the insertion point without touching the line bookkeeping.
func (c *Cursor) SetPos(pos ByteOffset) {
	c.pos = pos
}

// PrevLine relocates the gap so the previous line becomes current. The
// separator ending the previous line moves into the post-gap span.
// It reports false at the first line.
func (c *Cursor) PrevLine() bool {
	if c.line == 0 {
		return false
	}

	prev := bytes.LastIndexByte(c.buf.Pre()[:c.line-1], buffer.LF) + 1
	c.buf.MoveBackward(c.line - 1)
	c.line = prev
	c.lineNo--
	return true
}

// NextLine relocates the gap so the next line becomes current. It reports
// false when there is no content after the gap.
func (c *Cursor) NextLine() bool {
	if c.buf.AtEnd() {
		return false
	}

	next := c.buf.Cap()
	if i := bytes.IndexByte(c.buf.Post()[1:], buffer.LF); i >= 0 {
		next = c.buf.EndGap() + 1 + i
	}

	saved := c.buf.StartGap()
	c.buf.MoveForward(next)
	c.line = saved + 1
	c.lineNo++
	return true
}

// BeginLine starts a new current line at the insertion point. It is used
// right after a separator has been inserted before pos.
func (c *Cursor) BeginLine() {
	c.line = c.pos
	c.lineNo++
}

// RewindLine recomputes the line start after the separator before it has
// been erased, joining the current line onto the previous one.
func (c *Cursor) RewindLine() {
	if c.line == 0 {
		return
	}
	c.line = bytes.LastIndexByte(c.buf.Pre()[:c.line-1], buffer.LF) + 1
	c.lineNo--
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor(line=%d pos=%d lineno=%d gap=[%d,%d))",
		c.line, c.pos, c.lineNo, c.buf.StartGap(), c.buf.EndGap())
}
