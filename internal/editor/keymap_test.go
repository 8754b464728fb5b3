package editor

import (
	"slices"
	"testing"

	"github.com/dshills/linedit/internal/input/key"
)

func TestLookup(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name string
		k    key.Key
		want Action
	}{
		{"ctrl-c quits", key.Ctrl('C'), ActionQuit},
		{"ctrl-l redraws", key.Ctrl('L'), ActionRedraw},
		{"printable inserts", 'a', ActionInsertChar},
		{"space inserts", key.Space, ActionInsertChar},
		{"tilde inserts", '~', ActionInsertChar},
		{"carriage return", key.CR, ActionInsertNewline},
		{"line feed", key.LF, ActionInsertNewline},
		{"delete byte", key.DEL, ActionDeleteCharBack},
		{"ctrl-h", key.BS, ActionDeleteCharBack},
		{"delete key", key.Delete, ActionDeleteChar},
		{"unbound control", key.Ctrl('A'), ActionNone},
		{"high byte", key.Byte(0x80), ActionNone},
		{"nul", key.Byte(0), ActionNone},
		{"unknown", key.Unknown, ActionNone},
		{"ctrl-down", key.CtrlDown, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Lookup(tt.k); got != tt.want {
				t.Errorf("Lookup(%v) = %q, want %q", tt.k, got, tt.want)
			}
		})
	}
}

func TestBindOverridesPrintable(t *testing.T) {
	km := DefaultKeymap()
	km.Bind('q', ActionQuit)

	if got := km.Lookup('q'); got != ActionQuit {
		t.Errorf("Lookup('q') = %q, want %q", got, ActionQuit)
	}
}

func TestRebind(t *testing.T) {
	km := DefaultKeymap()
	km.Rebind(ActionQuit, key.Ctrl('Q'))

	if got := km.Lookup(key.Ctrl('Q')); got != ActionQuit {
		t.Errorf("Lookup(Ctrl+Q) = %q, want %q", got, ActionQuit)
	}
	if got := km.Lookup(key.Ctrl('C')); got != ActionNone {
		t.Errorf("Lookup(Ctrl+C) = %q, want none after rebind", got)
	}

	km.Rebind(ActionDeleteCharBack, key.BS)
	if got := km.KeysFor(ActionDeleteCharBack); !slices.Equal(got, []key.Key{key.BS}) {
		t.Errorf("KeysFor(deleteCharBack) = %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	km := DefaultKeymap()
	clone := km.Clone()
	clone.Bind(key.Ctrl('C'), ActionRedraw)

	if km.Lookup(key.Ctrl('C')) != ActionQuit {
		t.Error("modifying clone changed the original")
	}
}

func TestKeysFor(t *testing.T) {
	km := DefaultKeymap()

	got := km.KeysFor(ActionInsertNewline)
	want := []key.Key{key.LF, key.CR}
	if !slices.Equal(got, want) {
		t.Errorf("KeysFor(insertNewline) = %v, want %v", got, want)
	}
	if got := km.KeysFor(ActionInsertChar); len(got) != 0 {
		t.Errorf("KeysFor(insertChar) = %v, want none", got)
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(string(a))
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %q, %v", a, got, err)
		}
	}

	for _, name := range []string{"", "editor.insertChar", "app.exit", "cursor.moveleft"} {
		if _, err := ParseAction(name); err == nil {
			t.Errorf("ParseAction(%q) succeeded, want error", name)
		}
	}
}
