package engine

import (
	"bytes"
	"fmt"

	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/engine/cursor"
)

// Re-export commonly used types for convenience.
type (
	// ByteOffset is a byte position in the buffer.
	ByteOffset = buffer.ByteOffset

	// LineView is a read-only view of one logical line.
	LineView = cursor.LineView
)

// Engine owns the document buffer and the cursor that edits it.
type Engine struct {
	buf *buffer.Buffer
	cur *cursor.Cursor

	// Configuration
	initContent string
	capacity    int
}

// New creates an engine seeded with the configured content. The cursor is
// placed at the end of the seed.
func New(opts ...Option) *Engine {
	e := &Engine{
		capacity: DefaultCapacity,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.NewFromString(e.initContent, buffer.WithCapacity(e.capacity))
	e.cur = cursor.New(e.buf)
	return e
}

// NewFromParts creates an engine around an existing buffer and cursor.
func NewFromParts(buf *buffer.Buffer, cur *cursor.Cursor) *Engine {
	return &Engine{buf: buf, cur: cur, capacity: buf.Cap()}
}

// Buffer returns the underlying gap buffer.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor returns the cursor.
func (e *Engine) Cursor() *cursor.Cursor {
	return e.cur
}

// Text returns the logical document.
func (e *Engine) Text() string {
	return e.buf.String()
}

// State is a snapshot of the engine offsets, used for diagnostics.
type State struct {
	Cap      int
	StartGap ByteOffset
	EndGap   ByteOffset
	Line     ByteOffset
	Pos      ByteOffset
	LineNo   int
}

// String returns a compact representation of the state.
func (s State) String() string {
	return fmt.Sprintf("gap=[%d,%d) cap=%d line=%d pos=%d lineno=%d",
		s.StartGap, s.EndGap, s.Cap, s.Line, s.Pos, s.LineNo)
}

// State returns a snapshot of the current offsets.
func (e *Engine) State() State {
	return State{
		Cap:      e.buf.Cap(),
		StartGap: e.buf.StartGap(),
		EndGap:   e.buf.EndGap(),
		Line:     e.cur.Line(),
		Pos:      e.cur.Pos(),
		LineNo:   e.cur.LineNo(),
	}
}

// Check verifies the buffer and cursor invariants. The returned error wraps
// ErrInvariant.
func (e *Engine) Check() error {
	s := e.State()

	if s.StartGap < 0 || s.StartGap > s.EndGap || s.EndGap > s.Cap {
		return fmt.Errorf("%w: gap bounds: %s", ErrInvariant, s)
	}
	if s.Line < 0 || s.Line > s.Pos || s.Pos > s.StartGap {
		return fmt.Errorf("%w: cursor outside current line: %s", ErrInvariant, s)
	}

	pre := e.buf.Pre()
	if s.Line > 0 && pre[s.Line-1] != buffer.LF {
		return fmt.Errorf("%w: line does not start after a separator: %s", ErrInvariant, s)
	}
	if i := bytes.IndexByte(pre[s.Line:], buffer.LF); i >= 0 {
		return fmt.Errorf("%w: separator inside current line at %d: %s", ErrInvariant, s.Line+i, s)
	}
	if want := bytes.Count(pre[:s.Line], []byte{buffer.LF}) + 1; s.LineNo != want {
		return fmt.Errorf("%w: lineno %d, want %d: %s", ErrInvariant, s.LineNo, want, s)
	}
	if post := e.buf.Post(); len(post) > 0 && post[0] != buffer.LF {
		return fmt.Errorf("%w: current line continues past the gap: %s", ErrInvariant, s)
	}

	return nil
}
