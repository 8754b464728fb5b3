package editor

import (
	"errors"
	"fmt"

	"github.com/dshills/linedit/internal/engine"
	"github.com/dshills/linedit/internal/input/key"
)

// ErrCorrupt indicates the cursor no longer lies inside the current line.
var ErrCorrupt = errors.New("editor state corrupted")

// FatalError reports an unrecoverable inconsistency found while handling a
// key. The editor must stop after receiving one.
type FatalError struct {
	Action Action       // Action being executed
	Key    key.Key      // Key that triggered it
	State  engine.State // Offsets at the time of the failure
	Err    error        // Underlying error
}

func (e *FatalError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s on %v: %v (%s)", e.Action, e.Key, e.Err, e.State)
}

func (e *FatalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
