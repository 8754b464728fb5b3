package renderer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dshills/linedit/internal/engine"
	"github.com/dshills/linedit/internal/engine/cursor"
)

func newCursor(text string) *cursor.Cursor {
	return engine.New(engine.WithContent(text), engine.WithCapacity(256)).Cursor()
}

func TestStart(t *testing.T) {
	var out bytes.Buffer
	if err := New(&out).Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if got, want := out.String(), "\n\x1b[100000H"; got != want {
		t.Errorf("Start() wrote %q, want %q", got, want)
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts []Option
		want string
	}{
		{
			name: "underlined gutter",
			text: "ab\ncd",
			want: "\r\x1b[4m     2\x1b[0m cd\x1b[K\x1b[10G",
		},
		{
			name: "plain gutter",
			text: "ab\ncd",
			opts: []Option{WithGutterStyle(DefaultStyle())},
			want: "\r     2 cd\x1b[K\x1b[10G",
		},
		{
			name: "empty document",
			text: "",
			opts: []Option{WithGutterStyle(DefaultStyle())},
			want: "\r     1 \x1b[K\x1b[8G",
		},
		{
			name: "zero width keeps default gutter",
			text: "a\nb\nc",
			opts: []Option{WithGutterStyle(DefaultStyle()), WithGutterWidth(0)},
			want: "\r     3 c\x1b[K\x1b[9G",
		},
		{
			name: "narrow gutter",
			text: "\n\n\n\n\n\n\n\n\nxy",
			opts: []Option{WithGutterStyle(DefaultStyle()), WithGutterWidth(1)},
			want: "\r10 xy\x1b[K\x1b[6G",
		},
		{
			name: "scrolled to insertion point",
			text: "abcdefghij",
			opts: []Option{WithGutterStyle(DefaultStyle()), WithWidth(func() int { return 12 })},
			want: "\r     1 ghij\x1b[K\x1b[12G",
		},
		{
			name: "fits terminal",
			text: "abcd",
			opts: []Option{WithGutterStyle(DefaultStyle()), WithWidth(func() int { return 12 })},
			want: "\r     1 abcd\x1b[K\x1b[12G",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(&out, tt.opts...)

			if err := p.DrawLine(newCursor(tt.text)); err != nil {
				t.Fatalf("DrawLine() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("DrawLine() wrote %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestDrawLineTruncatesAtLineStart(t *testing.T) {
	c := newCursor("abcdefghij")
	c.SetPos(c.Line())

	var out bytes.Buffer
	p := New(&out, WithGutterStyle(DefaultStyle()), WithWidth(func() int { return 12 }))
	if err := p.DrawLine(c); err != nil {
		t.Fatalf("DrawLine() error = %v", err)
	}

	if want := "\r     1 abcde\x1b[K\x1b[8G"; out.String() != want {
		t.Errorf("DrawLine() wrote %q, want %q", out.String(), want)
	}
}

func TestListing(t *testing.T) {
	c := newCursor("ab\ncd")
	var out bytes.Buffer

	if err := New(&out).Listing(c); err != nil {
		t.Fatalf("Listing() error = %v", err)
	}

	want := "\r\x1b[K" +
		"     1 ab\r\n" +
		"\x1b[4m     2 cd\r\n\x1b[0m" +
		"\r\n"
	if out.String() != want {
		t.Errorf("Listing() wrote %q, want %q", out.String(), want)
	}
}

func TestListingHighlightsGapLine(t *testing.T) {
	c := newCursor("one\ntwo\nthree")
	c.PrevLine()

	var out bytes.Buffer
	style, err := ParseStyle("#ff8000")
	if err != nil {
		t.Fatalf("ParseStyle() error = %v", err)
	}
	if err := New(&out, WithGutterStyle(style)).Listing(c); err != nil {
		t.Fatalf("Listing() error = %v", err)
	}

	want := "\r\x1b[K" +
		"     1 one\r\n" +
		"\x1b[38;2;255;128;0m     2 two\r\n\x1b[0m" +
		"     3 three\r\n" +
		"\r\n"
	if out.String() != want {
		t.Errorf("Listing() wrote %q, want %q", out.String(), want)
	}
}

func TestListingTruncates(t *testing.T) {
	c := newCursor("abcdefgh\nxy")
	var out bytes.Buffer

	p := New(&out, WithGutterStyle(DefaultStyle()), WithWidth(func() int { return 10 }))
	if err := p.Listing(c); err != nil {
		t.Fatalf("Listing() error = %v", err)
	}

	want := "\r\x1b[K     1 abc\r\n     2 xy\r\n\r\n"
	if out.String() != want {
		t.Errorf("Listing() wrote %q, want %q", out.String(), want)
	}
}

func TestFinish(t *testing.T) {
	var out bytes.Buffer
	if err := New(&out).Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if out.String() != "\r\n" {
		t.Errorf("Finish() wrote %q", out.String())
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriteErrors(t *testing.T) {
	p := New(failingWriter{})
	c := newCursor("abc")

	if err := p.DrawLine(c); !errors.Is(err, errWrite) {
		t.Errorf("DrawLine() error = %v, want write error", err)
	}
	if err := p.Listing(c); !errors.Is(err, errWrite) {
		t.Errorf("Listing() error = %v, want write error", err)
	}
	if err := p.Start(); !errors.Is(err, errWrite) {
		t.Errorf("Start() error = %v, want write error", err)
	}
}
