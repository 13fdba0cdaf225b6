package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/moodlog/internal/backup"
	"github.com/julianstephens/moodlog/internal/config"
	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/lock"
	"github.com/julianstephens/moodlog/internal/logger"
	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/query"
	"github.com/julianstephens/moodlog/internal/session"
	"github.com/julianstephens/moodlog/internal/storage"
	"github.com/julianstephens/moodlog/internal/utils"
)

type Context struct {
	Config     *config.Config
	ConfigPath string
	Store      *storage.Store
	Engine     *query.Engine
	Location   *time.Location

	// Now defaults to time.Now in Location. Tests pin it.
	Now func() time.Time
	Out io.Writer
	In  io.Reader
}

// NewContext wires a command context around an opened store.
func NewContext(cfg *config.Config, configPath string, store *storage.Store, loc *time.Location) *Context {
	if loc == nil {
		loc = time.Local
	}
	return &Context{
		Config:     cfg,
		ConfigPath: configPath,
		Store:      store,
		Engine:     query.NewEngine(store),
		Location:   loc,
		Now:        func() time.Time { return time.Now().In(loc) },
		Out:        os.Stdout,
		In:         os.Stdin,
	}
}

// Session starts an interactive session on today.
func (c *Context) Session() *session.Session {
	return session.New(c.Store, session.WithClock(c.Now))
}

// AcquireLock takes the single-writer lock for the journal's config directory.
func (c *Context) AcquireLock(holder string) (*lock.Lock, error) {
	return lock.Acquire(c.Config.Dir, holder)
}

func (c *Context) Backups() *backup.Manager {
	return backup.NewManager(c.Store, filepath.Join(c.Config.Dir, constants.BackupDirName), c.Config.Backups.Max)
}

// PerformAutomaticBackup snapshots the journal, logging rather than failing.
func (c *Context) PerformAutomaticBackup() {
	path, err := c.Backups().CreateBackup()
	if err != nil {
		if err != backup.ErrNothingToBackup {
			logger.Warn("automatic backup failed", "error", err)
		}
		return
	}
	logger.Debug("automatic backup created", "path", path)
}

// ParseDate accepts "", "today", "yesterday" or YYYY-MM-DD and returns local midnight.
func (c *Context) ParseDate(s string) (time.Time, error) {
	now := c.Now()
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return utils.StartOfDay(now), nil
	case "yesterday":
		return utils.AddDays(utils.StartOfDay(now), -1), nil
	}
	t, err := utils.ParseDayKey(s, c.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a day, 'today' or 'yesterday'", models.ErrInvalidDate, s)
	}
	return t, nil
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}
