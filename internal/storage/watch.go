package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/julianstephens/moodlog/internal/logger"
)

// Watch calls onChange whenever the record at path changes on disk, coalescing
// bursts of events that arrive within debounce of each other. For a file the
// parent directory is watched, so atomic renames and sqlite side files
// (-wal, -journal) are seen. For a directory every event counts.
//
// Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	target := path
	match := func(string) bool { return true }
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		target = filepath.Dir(path)
		base := filepath.Base(path)
		match = func(name string) bool {
			return strings.HasPrefix(filepath.Base(name), base)
		}
	}
	if err := watcher.Add(target); err != nil {
		return fmt.Errorf("watching %s: %w", target, err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !match(ev.Name) || ev.Op == fsnotify.Chmod {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", "path", path, "error", err)
		case <-fire:
			fire = nil
			onChange()
		}
	}
}
