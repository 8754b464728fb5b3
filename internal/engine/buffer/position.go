package buffer

// ByteOffset represents a physical byte position in the buffer storage.
type ByteOffset = int

// LF is the line separator byte.
const LF byte = '\n'

// DefaultCapacity is the storage size used when no capacity is configured.
const DefaultCapacity = 4096
