package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Errors returned by configuration operations.
var (
	// ErrInvalid is matched by every *ValidationError.
	ErrInvalid = errors.New("invalid setting")

	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// ParseError reports a configuration file that could not be decoded.
type ParseError struct {
	Path    string // file path
	Format  string // toml, yaml or json
	Line    int    // 1-based, 0 when unknown
	Column  int    // 1-based, 0 when unknown
	Message string
	Err     error // decoder error, if any
}

// Error formats the position the way compilers do: path:line:col.
func (e *ParseError) Error() string {
	pos := e.Path
	if e.Line > 0 {
		pos += ":" + strconv.Itoa(e.Line)
		if e.Column > 0 {
			pos += ":" + strconv.Itoa(e.Column)
		}
	}
	return fmt.Sprintf("%s: %s %s", pos, e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a setting with an unusable value. Path is the
// dotted setting name ("gutter.width") or the environment variable that
// supplied it.
type ValidationError struct {
	Path    string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s = %v: %s", e.Path, e.Value, e.Message)
}

// Is matches ErrInvalid.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}
