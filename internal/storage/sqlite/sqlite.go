package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/migration"
	"github.com/julianstephens/moodlog/migrations"
	_ "modernc.org/sqlite"
)

// Backend stores the record as one row of a key/value table.
type Backend struct {
	path string
	key  string
	db   *sql.DB
}

func New(path string) *Backend {
	return &Backend{
		path: path,
		key:  constants.StorageKey,
	}
}

// Init opens the database and applies pending migrations.
func (b *Backend) Init() error {
	if b.db != nil {
		return nil
	}

	// Create config directory if it doesn't exist
	if b.path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(b.path), 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent and serializes writes.
	db.SetMaxOpenConns(1)
	b.db = db

	if _, err := b.runner().Apply(); err != nil {
		db.Close()
		b.db = nil
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (b *Backend) runner() *migration.Runner {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return migration.NewRunner(b.db, sub)
}

// CheckSchema reports whether the database is at the schema version this build expects.
func (b *Backend) CheckSchema() error {
	if b.db == nil {
		return fmt.Errorf("database not open")
	}
	return b.runner().ValidateVersion()
}

func (b *Backend) Read() ([]byte, error) {
	if b.db == nil {
		return nil, fmt.Errorf("database not open")
	}

	var value []byte
	err := b.db.QueryRow("SELECT value FROM records WHERE key = ?", b.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	return value, nil
}

func (b *Backend) Write(data []byte) error {
	if b.db == nil {
		return fmt.Errorf("database not open")
	}

	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		b.key, data, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	return tx.Commit()
}

func (b *Backend) Close() error {
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		return err
	}
	return nil
}

func (b *Backend) Path() string {
	return b.path
}
