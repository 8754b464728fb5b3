package cursor

import (
	"bytes"
	"iter"

	"github.com/dshills/linedit/internal/engine/buffer"
)

// LineView is a read-only view of one logical line.
type LineView struct {
	// Number is the 1-based line number.
	Number int
	// Text holds the line without its separator. It is only valid for the
	// duration of the iteration step.
	Text []byte
	// Current marks the line that contains the gap.
	Current bool
}

// Lines iterates over every logical line of the document in order. The gap
// is not relocated; the buffer must not be edited during iteration.
func (c *Cursor) Lines() iter.Seq[LineView] {
	return func(yield func(LineView) bool) {
		pre, post := c.buf.Pre(), c.buf.Post()
		n := 1

		emit := func(text []byte, current bool) bool {
			v := LineView{Number: n, Text: text, Current: current}
			n++
			return yield(v)
		}

		rest := pre
		for {
			i := bytes.IndexByte(rest, buffer.LF)
			if i < 0 {
				break
			}
			if !emit(rest[:i], false) {
				return
			}
			rest = rest[i+1:]
		}

		// The line holding the gap may continue into the post-gap span.
		end := bytes.IndexByte(post, buffer.LF)
		if end < 0 {
			end = len(post)
		}
		head := rest
		if end > 0 {
			head = append(append(make([]byte, 0, len(rest)+end), rest...), post[:end]...)
		}
		if !emit(head, true) {
			return
		}
		if end == len(post) {
			return
		}

		rest = post[end+1:]
		for {
			i := bytes.IndexByte(rest, buffer.LF)
			if i < 0 {
				emit(rest, false)
				return
			}
			if !emit(rest[:i], false) {
				return
			}
			rest = rest[i+1:]
		}
	}
}
