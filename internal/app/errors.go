package app

import (
	"errors"
	"fmt"

	"github.com/dshills/linedit/internal/engine"
)

// Session errors.
var (
	// ErrQuit ends a session normally: the quit key was pressed or input
	// ran out between keys.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning is returned by Run while a session is active.
	ErrAlreadyRunning = errors.New("session already running")

	// ErrInitialization is matched by every *InitError.
	ErrInitialization = errors.New("initialization failed")
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitFatal = 1
	ExitUsage = 2
)

// ExitCode maps the error returned by Run to a process exit code.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrQuit) {
		return ExitOK
	}
	return ExitFatal
}

// OperationError reports a failed terminal or file operation.
type OperationError struct {
	Op     string // "read key", "draw line", "open log", ...
	Target string // terminal or file path
	Err    error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg += " " + e.Target
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InitError reports a component that could not be built from the
// configuration.
type InitError struct {
	Component string // terminal, config, keymap or gutter
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Is matches ErrInitialization.
func (e *InitError) Is(target error) bool {
	return target == ErrInitialization
}

// RecoveredPanicError is a panic raised while applying a key, typically a
// buffer precondition failure.
type RecoveredPanicError struct {
	Value any
	State engine.State
	Key   string
	Stack string
}

// NewRecoveredPanicError records value with the engine offsets at the time
// of the panic.
func NewRecoveredPanicError(value any, state engine.State, stack string) *RecoveredPanicError {
	return &RecoveredPanicError{Value: value, State: state, Stack: stack}
}

func (e *RecoveredPanicError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("panic on %s: %v (%s)", e.Key, e.Value, e.State)
	}
	return fmt.Sprintf("panic: %v (%s)", e.Value, e.State)
}

// Unwrap returns the panic value when it is an error.
func (e *RecoveredPanicError) Unwrap() error {
	if e == nil {
		return nil
	}
	err, _ := e.Value.(error)
	return err
}
