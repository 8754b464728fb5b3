package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithCapacity sets the fixed storage size of the buffer.
// Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.capacity = n
		}
	}
}
