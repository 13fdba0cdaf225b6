package storage

// Backend is one named durable slot holding the whole serialized record.
//
// Concurrency note:
//   - Backends are not safe for concurrent writers. Running two moodlog
//     processes against the same path is guarded by internal/lock, not here.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Read returns the stored bytes, or (nil, nil) when nothing was ever written.
	Read() ([]byte, error)
	// Write replaces the stored bytes atomically: a reader sees the old value or
	// the new one, never a mix.
	Write(data []byte) error

	// Utils
	Path() string
}

// SchemaChecker is implemented by backends with a versioned schema.
type SchemaChecker interface {
	CheckSchema() error
}
