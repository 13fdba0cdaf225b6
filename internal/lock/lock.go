// Package lock keeps a second moodlog process from writing the same journal.
package lock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/logger"
)

// ErrLocked means a live moodlog process holds the lock.
var ErrLocked = errors.New("journal is locked by another moodlog process")

var (
	findProcessFunc = ps.FindProcess
	getpid          = os.Getpid
)

// Lock is a held lockfile. The file holds "<pid>|<holder>".
type Lock struct {
	path string
	pid  int
}

// Acquire creates the lockfile in dir. A lockfile left by a process that is no
// longer running, or by something that is not moodlog, is replaced.
func Acquire(dir, holder string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	path := filepath.Join(dir, constants.LockfileName)
	pid := getpid()
	content := fmt.Sprintf("%d|%s", pid, holder)

	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if err == nil {
			_, werr := f.WriteString(content)
			cerr := f.Close()
			if werr != nil || cerr != nil {
				os.Remove(path)
				return nil, fmt.Errorf("failed to write lockfile: %w", errors.Join(werr, cerr))
			}
			return &Lock{path: path, pid: pid}, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("failed to create lockfile: %w", err)
		}

		owner, err := liveOwner(path)
		if err != nil {
			logger.Info("replacing stale lockfile", "path", path, "reason", err)
			if rerr := os.Remove(path); rerr != nil && !errors.Is(rerr, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to remove stale lockfile: %w", rerr)
			}
			continue
		}
		return nil, fmt.Errorf("%w (pid %d)", ErrLocked, owner)
	}
	return nil, fmt.Errorf("%w: lockfile keeps reappearing at %s", ErrLocked, path)
}

// liveOwner returns the pid recorded in the lockfile if that process is a
// running moodlog, otherwise an error describing why the lock is stale.
func liveOwner(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	parts := strings.SplitN(strings.TrimSpace(string(content)), "|", 2)
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return 0, errors.New("invalid process ID in lockfile")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return 0, fmt.Errorf("process %d not running", pid)
	}
	if !strings.HasPrefix(process.Executable(), constants.AppName) {
		return 0, fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.AppName, process.Executable())
	}
	return pid, nil
}

// Release removes the lockfile if it still belongs to this lock.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	content, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !strings.HasPrefix(string(content), strconv.Itoa(l.pid)+"|") {
		return nil
	}
	return os.Remove(l.path)
}

func (l *Lock) Path() string {
	return l.path
}
