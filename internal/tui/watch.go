package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/logger"
	"github.com/julianstephens/moodlog/internal/storage"
)

type tickMsg time.Time

type recordChangedMsg struct{}

// tick fires the periodic time-of-day check.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// startWatch runs the record watcher until ctx ends, dropping notifications
// while one is already pending.
func startWatch(ctx context.Context, path string, changes chan<- struct{}) tea.Cmd {
	return func() tea.Msg {
		go func() {
			err := storage.Watch(ctx, path, constants.WatchDebounce, func() {
				select {
				case changes <- struct{}{}:
				default:
				}
			})
			if err != nil {
				logger.Warn("journal watcher stopped", "path", path, "error", err)
			}
		}()
		return nil
	}
}

// waitForChange turns the next notification into a message.
func waitForChange(ctx context.Context, changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-changes:
			return recordChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}
