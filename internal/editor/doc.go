// Package editor maps decoded keys to edits of the engine.
//
// The Controller holds the edge-case policy of the editor: what happens at
// line boundaries, at the buffer start and end, and when the buffer is
// full. Keys are resolved to named actions through a Keymap; printable
// bytes that are not bound insert themselves and everything else is
// ignored.
//
// Boundary conditions are never errors. The only error Handle returns is a
// *FatalError wrapping ErrCorrupt, raised when the cursor and gap disagree
// in a way that can only come from a bug.
package editor
