package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Stdio is a terminal on standard input and output.
type Stdio struct {
	in    *os.File
	out   *os.File
	saved *term.State
}

// NewStdio creates a stdio terminal.
func NewStdio(in, out *os.File) *Stdio {
	return &Stdio{in: in, out: out}
}

func (s *Stdio) Read(p []byte) (int, error) {
	return s.in.Read(p)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// Start enters raw mode when standard input is a terminal and does nothing
// otherwise.
func (s *Stdio) Start() error {
	fd := int(s.in.Fd())
	if s.saved != nil || !term.IsTerminal(fd) {
		return nil
	}
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	s.saved = saved
	return nil
}

// Stop restores the terminal mode saved by Start.
func (s *Stdio) Stop() error {
	if s.saved == nil {
		return nil
	}
	saved := s.saved
	s.saved = nil
	if err := term.Restore(int(s.in.Fd()), saved); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// Raw reports whether Start switched the terminal to raw mode.
func (s *Stdio) Raw() bool {
	return s.saved != nil
}

// Width returns the width of standard output, or 0 when it is not a
// terminal.
func (s *Stdio) Width() int {
	fd := int(s.out.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
