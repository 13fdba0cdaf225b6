package storage

import (
	"fmt"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/storage/badger"
	"github.com/julianstephens/moodlog/internal/storage/sqlite"
)

// NewBackend returns the backend registered under name for path. It does not
// call Init.
func NewBackend(name, path string) (Backend, error) {
	switch name {
	case constants.BackendJSON, "":
		return NewFileBackend(path), nil
	case constants.BackendSQLite:
		return sqlite.New(path), nil
	case constants.BackendBadger:
		return badger.New(badger.DefaultConfig(path)), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q (want %s, %s or %s)",
		name, constants.BackendJSON, constants.BackendSQLite, constants.BackendBadger)
}

// Open creates and initializes a backend and wraps it in a Store.
func Open(name, path string) (*Store, error) {
	backend, err := NewBackend(name, path)
	if err != nil {
		return nil, err
	}
	if err := backend.Init(); err != nil {
		return nil, fmt.Errorf("failed to open %s storage at %s: %w", name, path, err)
	}
	return NewStore(backend), nil
}
