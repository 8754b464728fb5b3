package engine

import (
	"github.com/dshills/linedit/internal/engine/buffer"
)

// Default configuration values.
const (
	DefaultCapacity = buffer.DefaultCapacity
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithCapacity sets the fixed buffer capacity.
func WithCapacity(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.capacity = n
		}
	}
}
