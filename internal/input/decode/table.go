package decode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/linedit/internal/input/key"
)

// ErrInvalidTable is returned by Validate for tables the matcher cannot walk.
var ErrInvalidTable = errors.New("invalid escape table")

// Entry maps the bytes following ESC to a logical key.
type Entry struct {
	Seq string
	Key key.Key
}

// DefaultTable holds the CSI and SS3 sequences sent by xterm-compatible
// terminals for the keys the editor understands. Entries must stay sorted
// and prefix-free; see Validate.
var DefaultTable = []Entry{
	{"OA", key.Up},
	{"OB", key.Down},
	{"OC", key.Right},
	{"OD", key.Left},
	{"OF", key.End},
	{"OH", key.Home},
	{"[1;5A", key.CtrlUp},
	{"[1;5B", key.CtrlDown},
	{"[1;5C", key.CtrlRight},
	{"[1;5D", key.CtrlLeft},
	{"[1~", key.Home},
	{"[3~", key.Delete},
	{"[4~", key.End},
	{"[7~", key.Home},
	{"[8~", key.End},
	{"[A", key.Up},
	{"[B", key.Down},
	{"[C", key.Right},
	{"[D", key.Left},
	{"[F", key.End},
	{"[H", key.Home},
}

// Validate checks that table is strictly sorted, that no sequence is a
// prefix of another and that every entry maps to a real key.
func Validate(table []Entry) error {
	for i, e := range table {
		if e.Seq == "" {
			return fmt.Errorf("%w: entry %d has an empty sequence", ErrInvalidTable, i)
		}
		if e.Key == key.Unknown {
			return fmt.Errorf("%w: entry %q maps to Unknown", ErrInvalidTable, e.Seq)
		}
		if i == 0 {
			continue
		}
		prev := table[i-1].Seq
		if prev >= e.Seq {
			return fmt.Errorf("%w: %q is not sorted after %q", ErrInvalidTable, e.Seq, prev)
		}
		// In a sorted table a prefix always sits right before its extensions.
		if strings.HasPrefix(e.Seq, prev) {
			return fmt.Errorf("%w: %q is a prefix of %q", ErrInvalidTable, prev, e.Seq)
		}
	}
	return nil
}
