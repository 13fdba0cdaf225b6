package badger

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/logger"
)

// Config configures the BadgerDB backend.
type Config struct {
	// Path is the database directory. Required unless InMemory is set.
	Path string

	InMemory   bool
	SyncWrites bool
}

func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger routes Badger's internal messages into the application log.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	logger.Error(fmt.Sprintf(format, args...), "component", "badger")
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	logger.Warn(fmt.Sprintf(format, args...), "component", "badger")
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	logger.Debug(fmt.Sprintf(format, args...), "component", "badger")
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	logger.Debug(fmt.Sprintf(format, args...), "component", "badger")
}

// Backend stores the record under a single key.
type Backend struct {
	cfg Config
	key []byte
	db  *badger.DB
}

func New(cfg Config) *Backend {
	return &Backend{cfg: cfg, key: []byte(constants.StorageKey)}
}

func (b *Backend) Init() error {
	if b.db != nil {
		return nil
	}
	if !b.cfg.InMemory && b.cfg.Path == "" {
		return errors.New("path is required for persistent database")
	}

	var opts badger.Options
	if b.cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(b.cfg.Path, 0700); err != nil {
			return fmt.Errorf("create database directory %s: %w", b.cfg.Path, err)
		}
		opts = badger.DefaultOptions(b.cfg.Path)
	}
	opts = opts.
		WithSyncWrites(b.cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(badgerLogger{})

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("open badger database: %w", err)
	}
	b.db = db
	return nil
}

func (b *Backend) Read() ([]byte, error) {
	if b.db == nil {
		return nil, errors.New("database not open")
	}

	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.key)
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	return out, nil
}

func (b *Backend) Write(data []byte) error {
	if b.db == nil {
		return errors.New("database not open")
	}
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(b.key, data)
	})
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

func (b *Backend) Path() string {
	if b.cfg.InMemory {
		return ":memory:"
	}
	return b.cfg.Path
}
