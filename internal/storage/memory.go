package storage

import "sync"

// MemoryBackend holds the record in process memory.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte

	// ReadErr and WriteErr, when set, are returned by Read and Write.
	ReadErr  error
	WriteErr error
}

func NewMemoryBackend(initial []byte) *MemoryBackend {
	return &MemoryBackend{data: initial}
}

func (b *MemoryBackend) Init() error  { return nil }
func (b *MemoryBackend) Close() error { return nil }
func (b *MemoryBackend) Path() string { return ":memory:" }

func (b *MemoryBackend) Read() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ReadErr != nil {
		return nil, b.ReadErr
	}
	if b.data == nil {
		return nil, nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

func (b *MemoryBackend) Write(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.WriteErr != nil {
		return b.WriteErr
	}
	b.data = append([]byte(nil), data...)
	return nil
}
