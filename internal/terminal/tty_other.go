//go:build !unix

package terminal

import "errors"

func newTTY() (Terminal, error) {
	return nil, errors.New("tty backend is not supported on this platform")
}
