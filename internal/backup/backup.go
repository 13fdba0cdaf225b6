package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/logger"
	"github.com/julianstephens/moodlog/internal/storage"
)

// Record is the journal as raw bytes. *storage.Store satisfies it.
type Record interface {
	Raw() ([]byte, error)
	Restore(raw []byte) error
}

// ErrNothingToBackup is returned when the journal has never been written.
var ErrNothingToBackup = errors.New("journal is empty, nothing to back up")

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots the journal record into timestamped JSON files. Snapshots
// are backend independent: a backup taken from sqlite restores into badger.
type Manager struct {
	record    Record
	backupDir string
	max       int
	now       func() time.Time
}

// NewManager keeps at most max backups in backupDir; max <= 0 means constants.MaxBackups.
func NewManager(record Record, backupDir string, max int) *Manager {
	if max <= 0 {
		max = constants.MaxBackups
	}
	return &Manager{
		record:    record,
		backupDir: backupDir,
		max:       max,
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup writes a snapshot of the current record and rotates old ones.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup skips rotation for the safety snapshot taken during restore, so
// restoring never deletes the backup being restored.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	raw, err := m.record.Raw()
	if err != nil {
		return "", fmt.Errorf("failed to read journal: %w", err)
	}
	if raw == nil {
		return "", ErrNothingToBackup
	}

	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	backupPath, err := m.uniqueName()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(backupPath, raw, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("failed to rotate old backups", "error", err)
		}
	}

	logger.Debug("backup created", "path", backupPath, "bytes", len(raw))
	return backupPath, nil
}

// uniqueName tries minute precision, then seconds, then a counter suffix.
func (m *Manager) uniqueName() (string, error) {
	now := m.now()
	candidate := func(stamp string, counter int) string {
		name := constants.BackupFilePrefix + stamp
		if counter > 0 {
			name += "-" + strconv.Itoa(counter)
		}
		return filepath.Join(m.backupDir, name+constants.BackupFileSuffix)
	}

	path := candidate(now.Format("20060102-1504"), 0)
	if !exists(path) {
		return path, nil
	}
	stamp := now.Format("20060102-150405")
	for counter := 0; counter <= 100; counter++ {
		path = candidate(stamp, counter)
		if !exists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListBackups returns a list of all available backups, sorted by timestamp (newest first)
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		timestamp, counter, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: timestamp.Add(time.Duration(counter) * time.Nanosecond),
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseName reads the timestamp and optional counter out of a backup file name.
// The counter only orders backups taken in the same second.
func parseName(name string) (time.Time, int, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		return time.Time{}, 0, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)

	counter := 0
	parts := strings.Split(stamp, "-")
	if len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return time.Time{}, 0, false
		}
		counter = n + 1
		stamp = parts[0] + "-" + parts[1]
	}

	for _, layout := range []string{"20060102-1504", "20060102-150405"} {
		if len(stamp) != len(layout) {
			continue
		}
		if t, err := time.ParseInLocation(layout, stamp, time.Local); err == nil {
			return t, counter, true
		}
	}
	return time.Time{}, 0, false
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := m.max; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the journal with the snapshot at backupPath. The
// current journal is snapshotted first. Returns the safety snapshot path, or
// "" when the journal was empty.
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	raw, err := os.ReadFile(backupPath)
	if err != nil {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if _, err := storage.Decode(raw); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	safety, err := m.createBackup(true)
	if err != nil && !errors.Is(err, ErrNothingToBackup) {
		return "", fmt.Errorf("failed to backup current journal before restore: %w", err)
	}

	if err := m.record.Restore(raw); err != nil {
		return safety, fmt.Errorf("failed to restore journal: %w", err)
	}
	logger.Info("journal restored", "from", backupPath, "safety", safety)
	return safety, nil
}
