// Package cursor tracks the editing position inside a gap buffer.
//
// A Cursor holds three values that move in lock-step with the gap:
//
//   - line: offset of the first byte of the current line
//   - pos: offset of the insertion point
//   - lineNo: 1-based number of the current line
//
// The current line is always the line adjacent to the gap: it occupies
// buf[line:startGap) and the byte at endGap, when present, is the separator
// that ends it. Moving to another line therefore means relocating the gap,
// which is what PrevLine and NextLine do.
//
// Invariants that hold between edits:
//
//	line <= pos <= startGap
//	lineNo == 1 + count of separators in buf[0:line)
//
// PrevLine and NextLine keep the line invariants but do not reposition pos;
// the caller clamps it to the new line.
package cursor
