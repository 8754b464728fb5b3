package buffer

import (
	"errors"
	"fmt"
)

// Errors reported when a caller violates a relocation precondition.
// These indicate programming errors and are raised as panics.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrGapRead          = errors.New("read inside gap")
)

// Buffer is a fixed-capacity gap buffer.
type Buffer struct {
	data     []byte
	startGap ByteOffset
	endGap   ByteOffset
	capacity int
}

// New creates an empty buffer. The whole storage is gap.
func New(opts ...Option) *Buffer {
	b := &Buffer{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(b)
	}

	b.data = make([]byte, b.capacity)
	b.startGap = 0
	b.endGap = b.capacity
	return b
}

// NewFromString creates a buffer whose pre-gap span holds s.
// Content that does not fit in the capacity is truncated.
func NewFromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	n := copy(b.data, s)
	b.startGap = n
	return b
}

// Cap returns the fixed storage size.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Len returns the logical document length.
func (b *Buffer) Len() int {
	return len(b.data) - (b.endGap - b.startGap)
}

// StartGap returns the offset of the first gap byte.
func (b *Buffer) StartGap() ByteOffset {
	return b.startGap
}

// EndGap returns the offset one past the last gap byte.
func (b *Buffer) EndGap() ByteOffset {
	return b.endGap
}

// GapLen returns the number of free bytes.
func (b *Buffer) GapLen() int {
	return b.endGap - b.startGap
}

// Full reports whether no more bytes can be inserted.
func (b *Buffer) Full() bool {
	return b.startGap == b.endGap
}

// AtEnd reports whether there is no content after the gap.
func (b *Buffer) AtEnd() bool {
	return b.endGap == len(b.data)
}

// Insert writes c at offset at, shifting data[at:startGap) one slot right.
// It reports false without changing anything when the buffer is full.
func (b *Buffer) Insert(at ByteOffset, c byte) bool {
	if b.Full() {
		return false
	}
	b.checkPre(at)

	copy(b.data[at+1:b.startGap+1], b.data[at:b.startGap])
	b.data[at] = c
	b.startGap++
	return true
}

// Erase removes the byte at offset at, shifting data[at+1:startGap) one
// slot left. It reports false when at is the gap start.
func (b *Buffer) Erase(at ByteOffset) bool {
	b.checkPre(at)
	if at == b.startGap {
		return false
	}

	copy(b.data[at:b.startGap-1], b.data[at+1:b.startGap])
	b.startGap--
	return true
}

// MoveBackward relocates the gap so that it starts at newStart. The bytes
// in data[newStart:startGap) become the head of the post-gap span.
func (b *Buffer) MoveBackward(newStart ByteOffset) {
	b.checkPre(newStart)

	n := b.startGap - newStart
	copy(b.data[b.endGap-n:b.endGap], b.data[newStart:b.startGap])
	b.startGap = newStart
	b.endGap -= n
}

// MoveForward relocates the gap so that it ends at newEnd. The bytes in
// data[endGap:newEnd) become the tail of the pre-gap span.
func (b *Buffer) MoveForward(newEnd ByteOffset) {
	if newEnd < b.endGap || newEnd > len(b.data) {
		panic(fmt.Errorf("%w: move forward to %d, gap [%d,%d) cap %d",
			ErrOffsetOutOfRange, newEnd, b.startGap, b.endGap, len(b.data)))
	}

	n := newEnd - b.endGap
	copy(b.data[b.startGap:b.startGap+n], b.data[b.endGap:newEnd])
	b.endGap = newEnd
	b.startGap += n
}

// Grow widens the gap by dropping up to n bytes from the head of the
// post-gap span. It returns the number of bytes dropped.
func (b *Buffer) Grow(n int) int {
	if n <= 0 {
		return 0
	}
	n = min(n, len(b.data)-b.endGap)
	b.endGap += n
	return n
}

// At returns the byte stored at physical offset i. Reading inside the gap
// panics.
func (b *Buffer) At(i ByteOffset) byte {
	if i >= b.startGap && i < b.endGap {
		panic(fmt.Errorf("%w: offset %d, gap [%d,%d)", ErrGapRead, i, b.startGap, b.endGap))
	}
	return b.data[i]
}

// ByteAt returns the byte at logical offset i.
func (b *Buffer) ByteAt(i int) byte {
	if i < 0 || i >= b.Len() {
		panic(fmt.Errorf("%w: logical offset %d, len %d", ErrOffsetOutOfRange, i, b.Len()))
	}
	if i < b.startGap {
		return b.data[i]
	}
	return b.data[i+b.GapLen()]
}

// Pre returns the pre-gap span. The slice aliases the storage and must not
// be modified or retained across edits.
func (b *Buffer) Pre() []byte {
	return b.data[:b.startGap:b.startGap]
}

// Post returns the post-gap span. The slice aliases the storage and must not
// be modified or retained across edits.
func (b *Buffer) Post() []byte {
	return b.data[b.endGap:]
}

// Bytes returns a copy of the logical document.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, 0, b.Len())
	out = append(out, b.Pre()...)
	return append(out, b.Post()...)
}

// String returns the logical document.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// checkPre panics unless 0 <= at <= startGap.
func (b *Buffer) checkPre(at ByteOffset) {
	if at < 0 || at > b.startGap {
		panic(fmt.Errorf("%w: offset %d, gap start %d", ErrOffsetOutOfRange, at, b.startGap))
	}
}
