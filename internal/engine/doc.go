// Package engine bundles the gap buffer and its cursor into the single
// piece of state the editor owns.
//
// # Architecture
//
// The engine is built on two sub-packages:
//
//   - buffer: fixed-capacity gap buffer storing the whole document
//   - cursor: current line, insertion point and line number, kept in
//     lock-step with gap relocations
//
// An Engine is created once with a seed document and lives for the whole
// editing session. It is mutated only by the editor loop that owns it; no
// method is safe for concurrent use.
//
// # Invariants
//
// Check verifies the relations every edit must preserve:
//
//	0 <= startGap <= endGap <= cap
//	line <= pos <= startGap
//	lineNo == 1 + count of separators before line
//	the current line ends at startGap (post is empty or starts with a separator)
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("ab\ncd"), engine.WithCapacity(64))
//	e.Cursor().PrevLine()
//	if err := e.Check(); err != nil {
//	    // state corruption
//	}
package engine
