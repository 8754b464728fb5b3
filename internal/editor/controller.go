package editor

import (
	"bytes"

	"github.com/dshills/linedit/internal/engine"
	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/engine/cursor"
	"github.com/dshills/linedit/internal/input/key"
)

// wordSeparator is the only byte word motions treat as a boundary.
const wordSeparator = ' '

// Controller applies keys to an engine.
type Controller struct {
	eng    *engine.Engine
	buf    *buffer.Buffer
	cur    *cursor.Cursor
	keymap Keymap
}

// Option configures a Controller.
type Option func(*Controller)

// WithKeymap replaces the default key bindings.
func WithKeymap(km Keymap) Option {
	return func(c *Controller) {
		if km != nil {
			c.keymap = km
		}
	}
}

// New creates a controller that edits eng.
func New(eng *engine.Engine, opts ...Option) *Controller {
	c := &Controller{
		eng:    eng,
		buf:    eng.Buffer(),
		cur:    eng.Cursor(),
		keymap: DefaultKeymap(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Engine returns the engine being edited.
func (c *Controller) Engine() *engine.Engine {
	return c.eng
}

// Keymap returns the active key bindings.
func (c *Controller) Keymap() Keymap {
	return c.keymap
}

// SetKeymap replaces the key bindings. A nil keymap is ignored.
func (c *Controller) SetKeymap(km Keymap) {
	if km != nil {
		c.keymap = km
	}
}

// Handle resolves k and applies it. The returned action tells the caller
// whether to quit or redraw; both are left to the caller. A non-nil error
// is always a *FatalError.
func (c *Controller) Handle(k key.Key) (Action, error) {
	a := c.keymap.Lookup(k)

	switch a {
	case ActionInsertChar:
		// Bindings may route non-printable bytes here; only printable ones
		// are ever inserted.
		if k.IsPrintable() {
			c.insertChar(k.Byte())
		}
	case ActionInsertNewline:
		c.insertNewline()
	case ActionDeleteCharBack:
		if err := c.deleteCharBack(); err != nil {
			return a, &FatalError{Action: a, Key: k, State: c.eng.State(), Err: err}
		}
	case ActionDeleteChar:
		c.deleteChar()
	case ActionMoveLineStart:
		c.cur.SetPos(c.cur.Line())
	case ActionMoveLineEnd:
		c.cur.SetPos(c.buf.StartGap())
	case ActionMoveLeft:
		c.moveLeft()
	case ActionMoveRight:
		c.moveRight()
	case ActionMoveUp:
		c.moveVertical(c.cur.PrevLine)
	case ActionMoveDown:
		c.moveVertical(c.cur.NextLine)
	case ActionWordBackward:
		c.wordBackward()
	case ActionWordForward:
		c.wordForward()
	}

	return a, nil
}

func (c *Controller) insertChar(b byte) {
	pos := c.cur.Pos()
	if c.buf.Insert(pos, b) {
		c.cur.SetPos(pos + 1)
	}
}

func (c *Controller) insertNewline() {
	pos := c.cur.Pos()
	if !c.buf.Insert(pos, buffer.LF) {
		return
	}
	c.cur.SetPos(pos + 1)
	c.cur.BeginLine()
}

func (c *Controller) deleteCharBack() error {
	pos, line := c.cur.Pos(), c.cur.Line()

	if pos > line {
		c.cur.SetPos(pos - 1)
		c.buf.Erase(pos - 1)
		return nil
	}
	if line == 0 {
		return nil
	}
	if pos != line {
		return ErrCorrupt
	}

	// Erase the separator that ends the previous line and join onto it.
	c.cur.SetPos(pos - 1)
	c.buf.Erase(pos - 1)
	c.cur.RewindLine()
	return nil
}

func (c *Controller) deleteChar() {
	pos := c.cur.Pos()

	if pos < c.buf.StartGap() {
		c.buf.Erase(pos)
		return
	}
	if c.buf.AtEnd() {
		return
	}

	// Drop the separator after the gap and pull the next line in.
	c.buf.Grow(1)
	next := c.buf.Cap()
	if i := bytes.IndexByte(c.buf.Post(), buffer.LF); i >= 0 {
		next = c.buf.EndGap() + i
	}
	c.buf.MoveForward(next)
}

func (c *Controller) moveLeft() {
	pos := c.cur.Pos()
	if pos == 0 {
		return
	}
	c.cur.SetPos(pos - 1)
	if pos-1 < c.cur.Line() {
		c.cur.PrevLine()
	}
}

func (c *Controller) moveRight() {
	pos := c.cur.Pos()
	if pos == c.buf.StartGap() && c.buf.AtEnd() {
		return
	}
	c.cur.SetPos(pos + 1)
	if pos+1 > c.buf.StartGap() {
		c.cur.NextLine()
	}
}

// moveVertical moves to another line with move, keeping the column when
// the new line is long enough and clamping to its end otherwise.
func (c *Controller) moveVertical(move func() bool) {
	col := c.cur.Column()
	move()
	if col > c.cur.LineLen() {
		c.cur.SetPos(c.buf.StartGap())
	} else {
		c.cur.SetPos(c.cur.Line() + col)
	}
}

func (c *Controller) wordBackward() {
	pos, line := c.cur.Pos(), c.cur.Line()

	if pos > line {
		pos--
		for pos > line && c.buf.At(pos) == wordSeparator {
			pos--
		}
		for pos > line && c.buf.At(pos-1) != wordSeparator {
			pos--
		}
		c.cur.SetPos(pos)
		return
	}
	if pos > 0 {
		c.cur.SetPos(pos - 1)
		c.cur.PrevLine()
	}
}

func (c *Controller) wordForward() {
	pos, end := c.cur.Pos(), c.buf.StartGap()

	if pos < end {
		pos++
		for pos < end && c.buf.At(pos) == wordSeparator {
			pos++
		}
		for pos < end && c.buf.At(pos) != wordSeparator {
			pos++
		}
		c.cur.SetPos(pos)
		return
	}
	if !c.buf.AtEnd() {
		c.cur.SetPos(pos + 1)
		c.cur.NextLine()
	}
}
