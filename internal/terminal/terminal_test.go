package terminal

import (
	"errors"
	"io"
	"os"
	"testing"
)

func pipe(t *testing.T) (r, w *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r, w
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		name    string
		want    Backend
		wantErr bool
	}{
		{"auto", BackendAuto, false},
		{"tty", BackendTTY, false},
		{"stdio", BackendStdio, false},
		{"", "", true},
		{"TTY", "", true},
		{"screen", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBackend(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownBackend) {
					t.Errorf("ParseBackend(%q) error = %v, want ErrUnknownBackend", tt.name, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseBackend(%q) = %q, %v", tt.name, got, err)
			}
		})
	}
}

func TestOpenAutoOnPipeUsesStdio(t *testing.T) {
	in, _ := pipe(t)
	_, out := pipe(t)

	term, err := Open(BackendAuto, in, out)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := term.(*Stdio); !ok {
		t.Errorf("Open(auto) = %T, want *Stdio", term)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	in, out := pipe(t)
	if _, err := Open(Backend("screen"), in, out); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open() error = %v, want ErrUnknownBackend", err)
	}
}

func TestStdioPassThrough(t *testing.T) {
	inR, inW := pipe(t)
	outR, outW := pipe(t)
	s := NewStdio(inR, outW)

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if s.Raw() {
		t.Error("Start() entered raw mode on a pipe")
	}
	if s.Width() != 0 {
		t.Errorf("Width() = %d, want 0 for a pipe", s.Width())
	}

	if _, err := inW.Write([]byte("a\x1b[A")); err != nil {
		t.Fatalf("write input: %v", err)
	}
	inW.Close()
	got, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "a\x1b[A" {
		t.Errorf("read %q, want %q", got, "a\x1b[A")
	}

	if _, err := s.Write([]byte("\r\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	outW.Close()
	echoed, _ := io.ReadAll(outR)
	if string(echoed) != "\r\n" {
		t.Errorf("output %q, want %q", echoed, "\r\n")
	}

	if err := s.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}
