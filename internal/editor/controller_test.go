package editor

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/dshills/linedit/internal/engine"
	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/engine/cursor"
	"github.com/dshills/linedit/internal/input/key"
)

func newController(text string, capacity int) *Controller {
	return New(engine.New(engine.WithContent(text), engine.WithCapacity(capacity)))
}

func press(t *testing.T, c *Controller, keys ...key.Key) {
	t.Helper()
	for _, k := range keys {
		if _, err := c.Handle(k); err != nil {
			t.Fatalf("Handle(%v) error = %v", k, err)
		}
		if err := c.Engine().Check(); err != nil {
			t.Fatalf("after %v: %v", k, err)
		}
	}
}

func typeText(t *testing.T, c *Controller, s string) {
	t.Helper()
	for i := range len(s) {
		press(t, c, key.Byte(s[i]))
	}
}

func TestTypeIntoEmptyDocument(t *testing.T) {
	c := newController("", 64)
	s := c.Engine().State()
	if s.StartGap != 0 || s.EndGap != 64 || s.Line != 0 || s.Pos != 0 || s.LineNo != 1 {
		t.Fatalf("unexpected initial state %v", s)
	}

	typeText(t, c, "abc")

	if c.Engine().Text() != "abc" {
		t.Errorf("Text() = %q, want %q", c.Engine().Text(), "abc")
	}
	if c.Engine().Cursor().Pos() != 3 {
		t.Errorf("pos = %d, want 3", c.Engine().Cursor().Pos())
	}
}

func TestUpKeepsColumn(t *testing.T) {
	c := newController("ab\ncd", 64)

	press(t, c, key.Up)

	cur := c.Engine().Cursor()
	if cur.Pos() != 2 || cur.Line() != 0 {
		t.Errorf("pos = %d line = %d, want 2 and 0", cur.Pos(), cur.Line())
	}
	if cur.LineNo() != 1 {
		t.Errorf("lineno = %d, want 1", cur.LineNo())
	}
}

func TestDeleteAtEndIsNoop(t *testing.T) {
	c := newController("abc", 64)
	before := c.Engine().State()

	press(t, c, key.Delete)

	if c.Engine().Text() != "abc" {
		t.Errorf("Text() = %q, want %q", c.Engine().Text(), "abc")
	}
	if c.Engine().State() != before {
		t.Errorf("state changed: %v, want %v", c.Engine().State(), before)
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	c := newController("a\nb", 64)
	press(t, c, key.Home)

	cur := c.Engine().Cursor()
	if cur.Pos() != 2 {
		t.Fatalf("pos = %d, want 2", cur.Pos())
	}

	press(t, c, key.DEL)

	if c.Engine().Text() != "ab" {
		t.Errorf("Text() = %q, want %q", c.Engine().Text(), "ab")
	}
	if cur.LineNo() != 1 || cur.Pos() != 1 || cur.Line() != 0 {
		t.Errorf("lineno = %d pos = %d line = %d, want 1, 1, 0", cur.LineNo(), cur.Pos(), cur.Line())
	}
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keys    []key.Key
		want    string
		wantPos int
	}{
		{"inside line", "abc", []key.Key{key.Left}, "ac", 1},
		{"end of line", "abc", nil, "ab", 2},
		{"buffer start", "abc", []key.Key{key.Home}, "abc", 0},
		{"empty document", "", nil, "", 0},
		{"ctrl-h", "abc", nil, "ab", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(tt.text, 64)
			press(t, c, tt.keys...)

			bs := key.DEL
			if tt.name == "ctrl-h" {
				bs = key.BS
			}
			press(t, c, bs)

			if c.Engine().Text() != tt.want {
				t.Errorf("Text() = %q, want %q", c.Engine().Text(), tt.want)
			}
			if c.Engine().Cursor().Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Engine().Cursor().Pos(), tt.wantPos)
			}
		})
	}
}

func TestBackspaceCorruptStateIsFatal(t *testing.T) {
	buf := buffer.NewFromString("a\nb", buffer.WithCapacity(16))
	eng := engine.NewFromParts(buf, cursor.Restore(buf, 2, 1, 2))
	c := New(eng)

	_, err := c.Handle(key.DEL)

	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Handle() error = %v, want ErrCorrupt", err)
	}
	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected *FatalError, got %T", err)
	}
	if fatal.Action != ActionDeleteCharBack || fatal.Key != key.DEL {
		t.Errorf("unexpected fatal error fields: %+v", fatal)
	}
	if fatal.State.Pos != 1 || fatal.State.Line != 2 {
		t.Errorf("fatal state = %v", fatal.State)
	}
	if buf.String() != "a\nb" {
		t.Errorf("buffer modified on fatal path: %q", buf.String())
	}
}

func TestDeleteChar(t *testing.T) {
	c := newController("abc", 64)
	press(t, c, key.Home, key.Delete)

	if c.Engine().Text() != "bc" {
		t.Errorf("Text() = %q, want %q", c.Engine().Text(), "bc")
	}
	if c.Engine().Cursor().Pos() != 0 {
		t.Errorf("pos = %d, want 0", c.Engine().Cursor().Pos())
	}
}

func TestDeleteCharJoinsNextLine(t *testing.T) {
	c := newController("ab\ncd\nef", 64)
	press(t, c, key.Up, key.Up, key.End)

	press(t, c, key.Delete)

	if c.Engine().Text() != "abcd\nef" {
		t.Errorf("Text() = %q, want %q", c.Engine().Text(), "abcd\nef")
	}
	cur := c.Engine().Cursor()
	if cur.Pos() != 2 || cur.LineNo() != 1 {
		t.Errorf("pos = %d lineno = %d, want 2 and 1", cur.Pos(), cur.LineNo())
	}
	if string(cur.CurrentLine()) != "abcd" {
		t.Errorf("current line = %q, want %q", cur.CurrentLine(), "abcd")
	}
}

func TestNewline(t *testing.T) {
	c := newController("abcd", 64)
	press(t, c, key.Left, key.Left, key.CR)

	if c.Engine().Text() != "ab\ncd" {
		t.Errorf("Text() = %q, want %q", c.Engine().Text(), "ab\ncd")
	}
	cur := c.Engine().Cursor()
	if cur.Line() != 3 || cur.Pos() != 3 || cur.LineNo() != 2 {
		t.Errorf("line = %d pos = %d lineno = %d, want 3, 3, 2", cur.Line(), cur.Pos(), cur.LineNo())
	}
	if string(cur.CurrentLine()) != "cd" {
		t.Errorf("current line = %q, want %q", cur.CurrentLine(), "cd")
	}
}

func TestFullBuffer(t *testing.T) {
	c := newController("", 4)
	typeText(t, c, "abcdef")

	if c.Engine().Text() != "abcd" {
		t.Errorf("Text() = %q, want %q", c.Engine().Text(), "abcd")
	}

	press(t, c, key.CR)

	cur := c.Engine().Cursor()
	if cur.LineNo() != 1 || cur.Pos() != 4 {
		t.Errorf("newline on full buffer moved cursor: lineno = %d pos = %d", cur.LineNo(), cur.Pos())
	}

	press(t, c, key.DEL)
	typeText(t, c, "z")
	if c.Engine().Text() != "abcz" {
		t.Errorf("Text() = %q, want %q", c.Engine().Text(), "abcz")
	}
}

func TestHorizontalMovement(t *testing.T) {
	c := newController("ab\ncd", 64)
	cur := c.Engine().Cursor()

	press(t, c, key.Home, key.Left)
	if cur.Pos() != 2 || cur.LineNo() != 1 {
		t.Errorf("after left: pos = %d lineno = %d, want 2 and 1", cur.Pos(), cur.LineNo())
	}

	press(t, c, key.Right)
	if cur.Pos() != 3 || cur.Line() != 3 || cur.LineNo() != 2 {
		t.Errorf("after right: pos = %d line = %d lineno = %d", cur.Pos(), cur.Line(), cur.LineNo())
	}

	press(t, c, key.End, key.Right)
	if cur.Pos() != 5 {
		t.Errorf("right at document end moved to %d", cur.Pos())
	}

	press(t, c, key.Up, key.Home, key.Left)
	if cur.Pos() != 0 || cur.LineNo() != 1 {
		t.Errorf("left at document start: pos = %d lineno = %d", cur.Pos(), cur.LineNo())
	}
}

func TestVerticalMovementClamps(t *testing.T) {
	c := newController("abcd\nx\nabcdef", 64)
	cur := c.Engine().Cursor()

	press(t, c, key.Left) // column 5 on "abcdef"
	press(t, c, key.Up)
	if cur.Pos() != cur.Line()+1 || cur.LineNo() != 2 {
		t.Errorf("up onto short line: column %d lineno %d", cur.Column(), cur.LineNo())
	}

	press(t, c, key.Up)
	if cur.Column() != 1 || cur.LineNo() != 1 {
		t.Errorf("column = %d lineno = %d, want 1 and 1", cur.Column(), cur.LineNo())
	}

	press(t, c, key.End, key.Down)
	if cur.Column() != 1 || cur.LineNo() != 2 {
		t.Errorf("down onto short line: column %d lineno %d", cur.Column(), cur.LineNo())
	}

	press(t, c, key.Down, key.Down)
	if cur.Column() != 1 || cur.LineNo() != 3 {
		t.Errorf("down past last line: column %d lineno %d", cur.Column(), cur.LineNo())
	}
}

func TestUpOnFirstLineKeepsPosition(t *testing.T) {
	c := newController("abc", 64)
	press(t, c, key.Left, key.Up)

	if c.Engine().Cursor().Pos() != 2 {
		t.Errorf("pos = %d, want 2", c.Engine().Cursor().Pos())
	}
}

func TestWordMotion(t *testing.T) {
	c := newController("foo  bar baz", 64)
	cur := c.Engine().Cursor()

	for _, want := range []int{9, 5, 0, 0} {
		press(t, c, key.CtrlLeft)
		if cur.Pos() != want {
			t.Errorf("word backward: pos = %d, want %d", cur.Pos(), want)
		}
	}

	for _, want := range []int{3, 8, 12, 12} {
		press(t, c, key.CtrlRight)
		if cur.Pos() != want {
			t.Errorf("word forward: pos = %d, want %d", cur.Pos(), want)
		}
	}
}

func TestWordMotionCrossesLines(t *testing.T) {
	c := newController("ab\ncd", 64)
	cur := c.Engine().Cursor()

	press(t, c, key.Home, key.CtrlLeft)
	if cur.Pos() != 2 || cur.LineNo() != 1 {
		t.Errorf("word backward across line: pos = %d lineno = %d", cur.Pos(), cur.LineNo())
	}

	press(t, c, key.CtrlRight)
	if cur.Pos() != 3 || cur.LineNo() != 2 {
		t.Errorf("word forward across line: pos = %d lineno = %d", cur.Pos(), cur.LineNo())
	}
}

func TestWordMotionOnlySpaceSeparates(t *testing.T) {
	c := newController("a\tb", 64)
	press(t, c, key.CtrlLeft)

	if c.Engine().Cursor().Pos() != 0 {
		t.Errorf("tab treated as separator: pos = %d", c.Engine().Cursor().Pos())
	}
}

func TestHandleReturnsAction(t *testing.T) {
	c := newController("", 64)

	tests := []struct {
		k    key.Key
		want Action
	}{
		{key.Ctrl('C'), ActionQuit},
		{key.Ctrl('L'), ActionRedraw},
		{'x', ActionInsertChar},
		{key.Byte(0x01), ActionNone},
		{key.Byte(0xe9), ActionNone},
		{key.Unknown, ActionNone},
		{key.CtrlUp, ActionNone},
	}

	for _, tt := range tests {
		got, err := c.Handle(tt.k)
		if err != nil {
			t.Fatalf("Handle(%v) error = %v", tt.k, err)
		}
		if got != tt.want {
			t.Errorf("Handle(%v) = %q, want %q", tt.k, got, tt.want)
		}
	}
	if c.Engine().Text() != "x" {
		t.Errorf("Text() = %q, want %q", c.Engine().Text(), "x")
	}
}

func TestNonPrintableBoundToInsertIsIgnored(t *testing.T) {
	km := DefaultKeymap()
	km.Bind(key.Tab, ActionInsertChar)
	c := New(engine.New(engine.WithCapacity(16)), WithKeymap(km))

	press(t, c, key.Tab)

	if c.Engine().Text() != "" {
		t.Errorf("Text() = %q, want empty", c.Engine().Text())
	}
}

func TestInsertBackspaceRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	docs := []string{"", "abc", "ab\ncd\n\nef gh", "\n\n", "one two\nthree"}
	moves := []key.Key{key.Left, key.Right, key.Up, key.Down, key.Home, key.End}

	for _, doc := range docs {
		for range 50 {
			c := newController(doc, 64)
			for range rng.IntN(10) {
				press(t, c, moves[rng.IntN(len(moves))])
			}

			text, state := c.Engine().Text(), c.Engine().State()
			press(t, c, 'x', key.DEL)

			if c.Engine().Text() != text {
				t.Fatalf("%q: text = %q, want %q", doc, c.Engine().Text(), text)
			}
			if c.Engine().State() != state {
				t.Fatalf("%q: state = %v, want %v", doc, c.Engine().State(), state)
			}
		}
	}
}

func TestRandomEditsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	keys := []key.Key{
		'a', 'b', ' ', ' ', key.CR, key.CR, key.DEL, key.DEL, key.Delete, key.Delete,
		key.Left, key.Right, key.Up, key.Down, key.Home, key.End,
		key.CtrlLeft, key.CtrlRight, key.Unknown, key.Byte(0x01),
	}

	for _, capacity := range []int{1, 8, 64} {
		c := newController("seed\ntext", capacity)
		for range 2000 {
			k := keys[rng.IntN(len(keys))]
			press(t, c, k)

			if got := c.Engine().Buffer().Len(); got > capacity {
				t.Fatalf("length %d exceeds capacity %d", got, capacity)
			}
		}
	}
}
