// Package key defines the logical keys produced by the input decoder.
//
// A Key is either a raw input byte (0-255) or one of a fixed set of named
// navigation and editing keys that arrive as multi-byte escape sequences:
//
//   - Cursor keys: Up, Down, Right, Left
//   - Word-wise cursor keys: CtrlUp, CtrlDown, CtrlRight, CtrlLeft
//   - Editing keys: Delete, Home, End
//
// Unknown is a distinct sentinel for escape sequences that matched nothing.
// It is never confused with the NUL byte.
//
// # Key Specifications
//
// Bindings in configuration files are written as key specifications:
//
//   - Single bytes: "a", "~", "0x1b"
//   - Named keys: "Enter", "Escape", "Tab", "Backspace", "Delete", "Up"
//   - Control combinations: "Ctrl+C", "Ctrl+L", "Ctrl+Up"
//   - Vim-style: "<C-c>", "<CR>", "<Esc>", "<BS>"
package key
