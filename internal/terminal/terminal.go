package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal is a raw byte channel to the user.
type Terminal interface {
	io.Reader
	io.Writer

	// Start enters raw mode.
	Start() error
	// Stop restores the mode saved by Start. It is safe to call more than
	// once.
	Stop() error
	// Width returns the width in columns, or 0 when unknown.
	Width() int
}

// Backend selects a terminal implementation.
type Backend string

// Backends.
const (
	BackendAuto  Backend = "auto"
	BackendTTY   Backend = "tty"
	BackendStdio Backend = "stdio"
)

// ErrUnknownBackend is returned for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown terminal backend")

// ParseBackend validates a backend name.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(name); b {
	case BackendAuto, BackendTTY, BackendStdio:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Open creates a terminal for backend. in and out are used by the stdio
// backend and to resolve BackendAuto.
func Open(backend Backend, in, out *os.File) (Terminal, error) {
	if backend == BackendAuto {
		backend = BackendStdio
		if term.IsTerminal(int(in.Fd())) {
			backend = BackendTTY
		}
	}

	switch backend {
	case BackendTTY:
		return newTTY()
	case BackendStdio:
		return NewStdio(in, out), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
