package decode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dshills/linedit/internal/input/key"
)

// Matcher walks an escape table one byte at a time. The zero value is not
// usable; create one with NewMatcher.
type Matcher struct {
	table []Entry
	cur   int
	seq   []byte
}

// NewMatcher creates a matcher over a sorted, prefix-free table.
func NewMatcher(table []Entry) *Matcher {
	return &Matcher{table: table, seq: make([]byte, 0, 8)}
}

// Reset prepares the matcher for the bytes following a new ESC.
func (m *Matcher) Reset() {
	m.cur = 0
	m.seq = m.seq[:0]
}

// Pending returns the bytes fed since the last Reset.
func (m *Matcher) Pending() []byte {
	return m.seq
}

// Feed consumes the next byte of an escape sequence. It reports done once
// the sequence is complete (k is the mapped key) or ruled out (k is
// key.Unknown). While done is false more bytes are needed.
func (m *Matcher) Feed(b byte) (k key.Key, done bool) {
	m.seq = append(m.seq, b)

	for ; m.cur < len(m.table); m.cur++ {
		e := m.table[m.cur]
		switch c := comparePrefix(e.Seq, m.seq); {
		case c > 0:
			return key.Unknown, true
		case c == 0:
			if len(e.Seq) == len(m.seq) {
				return e.Key, true
			}
			return key.Unknown, false
		}
	}
	return key.Unknown, true
}

// comparePrefix orders the first len(seq) bytes of entry against seq. An
// entry shorter than seq that matches it so far sorts before it.
func comparePrefix(entry string, seq []byte) int {
	n := min(len(entry), len(seq))
	if c := bytes.Compare([]byte(entry[:n]), seq[:n]); c != 0 {
		return c
	}
	if len(entry) < len(seq) {
		return -1
	}
	return 0
}

// Decoder reads logical keys from a byte stream.
type Decoder struct {
	r       io.ByteReader
	matcher *Matcher

	// OnUnknown, when set, receives the bytes of every escape sequence that
	// matched nothing. The slice is only valid during the call.
	OnUnknown func(seq []byte)
}

// NewDecoder creates a decoder over r using DefaultTable.
func NewDecoder(r io.ByteReader) *Decoder {
	return &Decoder{r: r, matcher: NewMatcher(DefaultTable)}
}

// NewDecoderWithTable creates a decoder with a custom escape table.
func NewDecoderWithTable(r io.ByteReader, table []Entry) (*Decoder, error) {
	if err := Validate(table); err != nil {
		return nil, err
	}
	return &Decoder{r: r, matcher: NewMatcher(table)}, nil
}

// Next blocks until one logical key has been read. Read errors are
// returned as is when no byte was consumed and wrapped otherwise.
func (d *Decoder) Next() (key.Key, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return key.Unknown, err
	}
	if key.Key(b) != key.Escape {
		return key.Byte(b), nil
	}

	d.matcher.Reset()
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return key.Unknown, fmt.Errorf("reading escape sequence %q: %w", d.matcher.Pending(), err)
		}
		k, done := d.matcher.Feed(b)
		if !done {
			continue
		}
		if k == key.Unknown && d.OnUnknown != nil {
			d.OnUnknown(d.matcher.Pending())
		}
		return k, nil
	}
}
