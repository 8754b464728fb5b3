package renderer

import (
	"bytes"
	"io"
	"strconv"

	"github.com/dshills/linedit/internal/engine/cursor"
)

// DefaultGutterWidth is the minimum width of the line number column.
const DefaultGutterWidth = 6

// bottomRow is a row number past any real terminal; the cursor is clamped
// to the last row.
const bottomRow = 100000

// Painter draws the editor to a terminal.
type Painter struct {
	w           io.Writer
	gutterWidth int
	gutter      Style
	width       func() int
	out         bytes.Buffer
}

// Option configures a Painter.
type Option func(*Painter)

// WithGutterWidth sets the minimum width of the line number column.
func WithGutterWidth(n int) Option {
	return func(p *Painter) {
		if n > 0 {
			p.gutterWidth = n
		}
	}
}

// WithGutterStyle sets the style of line numbers.
func WithGutterStyle(s Style) Option {
	return func(p *Painter) {
		p.gutter = s
	}
}

// WithWidth sets the function reporting the terminal width in columns.
// A width of 0 or less disables truncation.
func WithWidth(fn func() int) Option {
	return func(p *Painter) {
		p.width = fn
	}
}

// New creates a painter writing to w.
func New(w io.Writer, opts ...Option) *Painter {
	p := &Painter{
		w:           w,
		gutterWidth: DefaultGutterWidth,
		gutter:      GutterStyle(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Configure applies opts to an existing painter.
func (p *Painter) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

// Start moves the terminal cursor to the bottom row so the session scrolls
// up from there.
func (p *Painter) Start() error {
	p.out.Reset()
	p.out.WriteByte('\n')
	p.out.WriteString("\x1b[" + strconv.Itoa(bottomRow) + "H")
	return p.flush()
}

// DrawLine redraws the current line in place and positions the terminal
// cursor at the insertion point.
func (p *Painter) DrawLine(c *cursor.Cursor) error {
	p.out.Reset()
	p.out.WriteByte('\r')

	used := p.writeNumber(c.LineNo(), p.gutter)
	p.out.WriteByte(' ')

	text, col := c.CurrentLine(), c.Column()
	if avail := p.available(used); avail > 0 && len(text) > avail {
		// Scroll horizontally so the insertion point stays visible.
		off := max(0, col-avail+1)
		text = text[off:min(len(text), off+avail)]
		col -= off
	}
	p.out.Write(text)
	p.clearToEOL()

	p.out.WriteString("\x1b[" + strconv.Itoa(col+used+2) + "G")
	return p.flush()
}

// Listing prints every line of the document below the current row. The
// line holding the insertion point is drawn in the gutter style.
func (p *Painter) Listing(c *cursor.Cursor) error {
	p.out.Reset()
	p.out.WriteByte('\r')
	p.clearToEOL()

	for v := range c.Lines() {
		if v.Current {
			p.out.WriteString(p.gutter.SGR())
		}
		used := p.writeNumber(v.Number, DefaultStyle())
		p.out.WriteByte(' ')

		text := v.Text
		if avail := p.available(used); avail > 0 && len(text) > avail {
			text = text[:avail]
		}
		p.out.Write(text)
		p.out.WriteString("\r\n")

		if v.Current && !p.gutter.IsPlain() {
			p.out.WriteString(sgrReset)
		}
	}

	p.out.WriteString("\r\n")
	return p.flush()
}

// Finish leaves the terminal cursor at the start of a fresh row.
func (p *Painter) Finish() error {
	p.out.Reset()
	p.out.WriteString("\r\n")
	return p.flush()
}

// writeNumber writes n right-aligned in the gutter and returns the number
// of columns used.
func (p *Painter) writeNumber(n int, s Style) int {
	digits := strconv.Itoa(n)
	sgr := s.SGR()

	p.out.WriteString(sgr)
	for range p.gutterWidth - len(digits) {
		p.out.WriteByte(' ')
	}
	p.out.WriteString(digits)
	if sgr != "" {
		p.out.WriteString(sgrReset)
	}
	return max(p.gutterWidth, len(digits))
}

// available returns the columns left for text after a gutter of width used
// and its separating space, or 0 when the width is unknown.
func (p *Painter) available(used int) int {
	if p.width == nil {
		return 0
	}
	w := p.width()
	if w <= 0 {
		return 0
	}
	return max(1, w-used-1)
}

func (p *Painter) clearToEOL() {
	p.out.WriteString("\x1b[K")
}

func (p *Painter) flush() error {
	_, err := p.w.Write(p.out.Bytes())
	return err
}
