// Package session holds the journal's interactive state: the day being viewed,
// the current time-of-day bucket and the day and week views derived from them.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/moodlog/internal/logger"
	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/query"
	"github.com/julianstephens/moodlog/internal/utils"
)

// Store is the persistence the session writes through.
type Store interface {
	query.Loader
	UpsertMood(models.MoodEntry) error
	UpsertReflection(models.ReflectionEntry) error
}

type Option func(*Session)

// WithClock replaces time.Now. The clock's location defines "local" days.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Session is not safe for concurrent use; the TUI drives it from its update loop.
type Session struct {
	id     string
	store  Store
	engine *query.Engine
	now    func() time.Time

	current   time.Time
	timeOfDay models.TimeOfDay

	daily    models.DailyMood
	weekDays []string
	weekly   map[string]models.DailyMood
}

// New starts a session on today with the bucket of the current wall clock time.
func New(store Store, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		store:  store,
		engine: query.NewEngine(store),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	now := s.now()
	s.current = utils.StartOfDay(now)
	s.timeOfDay = utils.TimeOfDayBucket(now)
	s.Refresh()

	logger.Debug("session started", "session", s.id, "date", s.CurrentDateKey(), "timeOfDay", s.timeOfDay)
	return s
}

func (s *Session) ID() string             { return s.id }
func (s *Session) Engine() *query.Engine  { return s.engine }
func (s *Session) Now() time.Time         { return s.now() }
func (s *Session) CurrentDate() time.Time { return s.current }

func (s *Session) CurrentDateKey() string {
	return utils.DayKey(s.current)
}

func (s *Session) CurrentTimeOfDay() models.TimeOfDay {
	return s.timeOfDay
}

// Daily is the view of the cursor day as of the last reload.
func (s *Session) Daily() models.DailyMood {
	return s.daily
}

// WeekDays lists the Monday to Sunday keys of the cursor's week.
func (s *Session) WeekDays() []string {
	return s.weekDays
}

// Weekly is the view of the cursor's week as of the last reload.
func (s *Session) Weekly() map[string]models.DailyMood {
	return s.weekly
}

// IsToday reports whether the cursor is on the current wall clock day.
func (s *Session) IsToday() bool {
	return s.CurrentDateKey() == utils.DayKey(s.now())
}

// SetCurrentDate moves the cursor to t's day, future or not, and reloads.
func (s *Session) SetCurrentDate(t time.Time) {
	s.current = utils.StartOfDay(t.In(s.now().Location()))
	s.Refresh()
}

// Refresh reloads the day and week views from one snapshot of the store.
func (s *Session) Refresh() {
	snap := s.engine.Snapshot()
	key := s.CurrentDateKey()
	s.daily = snap.DailyMood(key)
	s.weekDays = utils.DayKeys(utils.WeekDays(s.current))
	s.weekly = snap.DailyMoods(s.weekDays)
}

// SaveMood records mood for bucket on the cursor day. An invalid mood or bucket
// is an error. When the cursor is in the future nothing is written and saved is
// false; this is logged but not an error.
func (s *Session) SaveMood(mood models.MoodLevel, bucket models.TimeOfDay, notes string) (bool, error) {
	entry := models.NewMoodEntry(s.CurrentDateKey(), bucket, mood, notes)
	if err := entry.Validate(); err != nil {
		return false, err
	}

	if utils.IsFuture(s.current, s.now()) {
		logger.Warn("refusing to record a mood for a future day", "session", s.id, "date", entry.Date, "timeOfDay", bucket)
		return false, nil
	}

	if err := s.store.UpsertMood(entry); err != nil {
		return false, err
	}
	logger.Debug("mood saved", "session", s.id, "id", entry.ID, "mood", mood)
	s.reload()
	return true, nil
}

// SaveReflection records the reflection for the cursor day.
func (s *Session) SaveReflection(completed bool, notes string) error {
	entry := models.NewReflectionEntry(s.CurrentDateKey(), completed, notes)
	if err := s.store.UpsertReflection(entry); err != nil {
		return err
	}
	logger.Debug("reflection saved", "session", s.id, "date", entry.Date, "completed", completed)
	s.reload()
	return nil
}

// reload runs after a write: the bucket is re-sampled along with the views.
func (s *Session) reload() {
	if !s.CheckTimeOfDay() {
		s.Refresh()
	}
}

// CheckTimeOfDay re-samples the wall clock bucket and reloads when it changed.
// Safe to call at any rate.
func (s *Session) CheckTimeOfDay() bool {
	bucket := utils.TimeOfDayBucket(s.now())
	if bucket == s.timeOfDay {
		return false
	}
	logger.Info("time of day changed", "session", s.id, "from", s.timeOfDay, "to", bucket)
	s.timeOfDay = bucket
	s.Refresh()
	return true
}
