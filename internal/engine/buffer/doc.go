// Package buffer provides the fixed-capacity gap buffer that stores the
// whole document.
//
// The document lives in a single byte slice allocated once. Content is split
// into two spans around a movable gap:
//
//	pre  = data[0:startGap)
//	post = data[endGap:cap)
//
// The logical document is pre followed by post; the bytes inside the gap are
// stale capacity and are never read as content.
//
// All edits happen at the gap. Insert and Erase work on the bytes just before
// the gap, while MoveBackward and MoveForward relocate the gap by copying the
// bytes between the old and new positions across it. Relocation cost is
// proportional to the distance moved, not to the document size.
//
// Basic usage:
//
//	buf := buffer.NewFromString("ab\ncd", buffer.WithCapacity(64))
//	buf.Insert(buf.StartGap(), '!')  // "ab\ncd!"
//	buf.MoveBackward(2)               // gap now sits after "ab"
//	buf.String()                      // still "ab\ncd!"
//
// Thread Safety:
//
// Buffer is not safe for concurrent use. It is owned by a single editor
// loop.
package buffer
