//go:build unix

package terminal

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// TTY is a terminal on the controlling tty device.
type TTY struct {
	tty     tcell.Tty
	width   atomic.Int32
	started bool
}

func newTTY() (Terminal, error) {
	t, err := openTTY("/dev/tty")
	if err != nil {
		return nil, err
	}
	return t, nil
}

// openTTY opens the terminal device at dev without changing its mode.
func openTTY(dev string) (*TTY, error) {
	t, err := tcell.NewDevTtyFromDev(dev)
	if err != nil {
		return nil, fmt.Errorf("open tty %s: %w", dev, err)
	}
	return &TTY{tty: t}, nil
}

func (t *TTY) Read(p []byte) (int, error) {
	return t.tty.Read(p)
}

func (t *TTY) Write(p []byte) (int, error) {
	return t.tty.Write(p)
}

// Start enters raw mode and begins tracking the window width.
func (t *TTY) Start() error {
	if t.started {
		return nil
	}
	if err := t.tty.Start(); err != nil {
		return fmt.Errorf("start tty: %w", err)
	}
	t.started = true
	t.tty.NotifyResize(t.updateWidth)
	t.updateWidth()
	return nil
}

// Stop restores the saved mode and releases the device.
func (t *TTY) Stop() error {
	if !t.started {
		return nil
	}
	t.started = false
	t.tty.NotifyResize(nil)
	if err := t.tty.Stop(); err != nil {
		return fmt.Errorf("stop tty: %w", err)
	}
	return nil
}

// Width returns the last known window width.
func (t *TTY) Width() int {
	return int(t.width.Load())
}

func (t *TTY) updateWidth() {
	ws, err := t.tty.WindowSize()
	if err != nil {
		return
	}
	t.width.Store(int32(ws.Width))
}
