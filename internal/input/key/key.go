package key

import (
	"fmt"
	"strings"
)

// Key represents a logical key. Values below 256 are raw bytes.
type Key uint16

// Control bytes with a dedicated meaning in the editor. Most terminals send
// DEL for the Backspace key, so DEL carries the name "Backspace" and BS
// (Ctrl+H) keeps its control-key name.
const (
	BS     Key = 8
	Tab    Key = 9
	LF     Key = 10
	CR     Key = 13
	Escape Key = 27
	Space  Key = 32
	DEL    Key = 127
)

const (
	// Up is the first named key; everything below it is a raw byte.
	Up Key = 256 + iota
	Down
	Right
	Left
	CtrlUp
	CtrlDown
	CtrlRight
	CtrlLeft
	Delete
	Home
	End

	// Unknown is produced for escape sequences that match no table entry.
	Unknown
)

// Byte returns the key for a raw input byte.
func Byte(b byte) Key {
	return Key(b)
}

// Ctrl returns the control byte produced by holding Ctrl with c.
// Letters are case-insensitive: Ctrl('c') == Ctrl('C') == 3.
func Ctrl(c byte) Key {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return Key(c & 0x1f)
}

// IsByte reports whether k is a raw input byte.
func (k Key) IsByte() bool {
	return k < 256
}

// Byte returns the raw byte value of k. Only meaningful when IsByte is true.
func (k Key) Byte() byte {
	return byte(k)
}

// IsPrintable reports whether k is a printable ASCII byte (0x20-0x7E).
func (k Key) IsPrintable() bool {
	return k >= 0x20 && k < 0x7f
}

// IsControl reports whether k is an ASCII control byte.
func (k Key) IsControl() bool {
	return k < 0x20 || k == DEL
}

// IsNamed reports whether k is a named navigation or editing key.
func (k Key) IsNamed() bool {
	return k >= Up && k < Unknown
}

// IsArrowKey returns true if this is a plain or Ctrl arrow key.
func (k Key) IsArrowKey() bool {
	return k >= Up && k <= CtrlLeft
}

// String returns a human-readable name for the key. The result can be
// parsed back with Parse.
func (k Key) String() string {
	switch k {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Left:
		return "Left"
	case CtrlUp:
		return "Ctrl+Up"
	case CtrlDown:
		return "Ctrl+Down"
	case CtrlRight:
		return "Ctrl+Right"
	case CtrlLeft:
		return "Ctrl+Left"
	case Delete:
		return "Delete"
	case Home:
		return "Home"
	case End:
		return "End"
	case Unknown:
		return "Unknown"
	case Tab:
		return "Tab"
	case CR:
		return "Enter"
	case Escape:
		return "Escape"
	case Space:
		return "Space"
	case DEL:
		return "Backspace"
	}

	switch {
	case k < 0x20:
		return "Ctrl+" + string(rune(k|0x40))
	case k.IsPrintable():
		return string(rune(k))
	case k.IsByte():
		return fmt.Sprintf("0x%02X", uint16(k))
	default:
		return fmt.Sprintf("Key(%d)", uint16(k))
	}
}

// nameMap maps key names (lowercase) to Key values.
var nameMap = map[string]Key{
	"up":        Up,
	"down":      Down,
	"right":     Right,
	"left":      Left,
	"delete":    Delete,
	"del":       Delete,
	"home":      Home,
	"end":       End,
	"enter":     CR,
	"return":    CR,
	"cr":        CR,
	"lf":        LF,
	"nl":        LF,
	"tab":       Tab,
	"escape":    Escape,
	"esc":       Escape,
	"backspace": DEL,
	"bs":        DEL,
	"space":     Space,
	"lt":        '<',
	"gt":        '>',
	"bar":       '|',
	"bslash":    '\\',
}

// FromName returns the Key for a given name (case-insensitive).
// Returns Unknown if the name is not recognized.
func FromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := nameMap[name]; ok {
		return k
	}
	return Unknown
}

// withCtrl returns the Ctrl variant of k, or Unknown when none exists.
func withCtrl(k Key) Key {
	switch k {
	case Up:
		return CtrlUp
	case Down:
		return CtrlDown
	case Right:
		return CtrlRight
	case Left:
		return CtrlLeft
	}
	if k.IsByte() && k >= '@' && k < 0x7f {
		return Ctrl(byte(k))
	}
	return Unknown
}
